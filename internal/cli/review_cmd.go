package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexanderramin/phoenix/internal/db"
	"github.com/alexanderramin/phoenix/internal/store"
)

func newReviewCmd(app *App) *cobra.Command {
	var dbPath string

	cmd := &cobra.Command{
		Use:   "review",
		Short: "Browse archived decision records interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && !app.IsInteractive() {
				return fmt.Errorf("review requires an interactive terminal")
			}
			if dbPath == "" {
				dbPath = app.DefaultDBPath
			}
			database, err := db.OpenDB(dbPath)
			if err != nil {
				return err
			}
			defer database.Close()

			decisions, err := store.NewSQLiteDecisionStore(database).List(context.Background())
			if err != nil {
				return err
			}

			_, err = tea.NewProgram(newReviewModel(decisions), tea.WithAltScreen()).Run()
			return err
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "", "Decision archive path (default ~/.phoenix/phoenix.db)")

	return cmd
}
