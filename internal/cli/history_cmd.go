package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/phoenix/internal/cli/formatter"
	"github.com/alexanderramin/phoenix/internal/db"
	"github.com/alexanderramin/phoenix/internal/store"
)

func newHistoryCmd(app *App) *cobra.Command {
	var (
		dbPath string
		month  string
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List archived decision records",
		RunE: func(cmd *cobra.Command, args []string) error {
			if dbPath == "" {
				dbPath = app.DefaultDBPath
			}
			database, err := db.OpenDB(dbPath)
			if err != nil {
				return err
			}
			defer database.Close()
			decisions := store.NewSQLiteDecisionStore(database)

			if month != "" {
				dec, err := decisions.GetLatest(context.Background(), month)
				if err != nil {
					return err
				}
				fmt.Fprintf(app.Out, "%s\n", dec.Record)
				return nil
			}

			all, err := decisions.List(context.Background())
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(all))
			for _, d := range all {
				rows = append(rows, []string{d.Month, d.CreatedAt.Format(time.RFC3339), d.ID})
			}
			fmt.Fprint(app.Out, formatter.FormatHistory(rows))
			return nil
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "", "Decision archive path (default ~/.phoenix/phoenix.db)")
	cmd.Flags().StringVar(&month, "month", "", "Print the latest archived record for one month")

	return cmd
}
