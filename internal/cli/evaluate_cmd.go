package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/alexanderramin/phoenix/internal/cli/formatter"
	"github.com/alexanderramin/phoenix/internal/config"
	"github.com/alexanderramin/phoenix/internal/db"
	"github.com/alexanderramin/phoenix/internal/engine"
	"github.com/alexanderramin/phoenix/internal/mapper"
	"github.com/alexanderramin/phoenix/internal/provider"
	"github.com/alexanderramin/phoenix/internal/record"
	"github.com/alexanderramin/phoenix/internal/store"
	"github.com/alexanderramin/phoenix/internal/validate"
)

func newEvaluateCmd(app *App) *cobra.Command {
	var (
		rowsPath   string
		configPath string
		month      string
		annualYTD  string
		asJSON     bool
		save       bool
		dbPath     string
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Evaluate one month of ledger rows against the SGA rules",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			if month == "" {
				if app.IsInteractive == nil || !app.IsInteractive() {
					return fmt.Errorf("--month is required (YYYY-MM)")
				}
				month, annualYTD, err = runMonthForm(month, annualYTD)
				if err != nil {
					return err
				}
			}

			var annual *decimal.Decimal
			if annualYTD != "" {
				d, err := validate.EnsureDecimal(annualYTD)
				if err != nil {
					return fmt.Errorf("--annual-w2-ytd: %w", err)
				}
				annual = &d
			}

			csvProvider := provider.NewCSVProvider(rowsPath)
			raws, err := csvProvider.FetchRows()
			if err != nil {
				return err
			}
			rows, err := mapper.MapRows(raws)
			if err != nil {
				return err
			}

			var obs engine.Observer = engine.NoopObserver{}
			if verbose {
				obs = engine.NewLogObserver(os.Stderr)
			}
			rec, err := engine.Observe(obs, engine.Input{
				Rows:        rows,
				Config:      cfg,
				TargetMonth: month,
				AnnualW2YTD: annual,
			})
			if err != nil {
				return err
			}

			data, err := record.ToJSON(rec)
			if err != nil {
				return err
			}

			if save {
				if dbPath == "" {
					dbPath = app.DefaultDBPath
				}
				database, err := db.OpenDB(dbPath)
				if err != nil {
					return err
				}
				defer database.Close()
				saved, err := store.NewSQLiteDecisionStore(database).Save(context.Background(), rec.Month, data)
				if err != nil {
					return err
				}
				fmt.Fprintf(app.Out, "%s\n", formatter.StyleDim.Render("archived decision "+saved.ID))
			}

			if asJSON {
				fmt.Fprintf(app.Out, "%s\n", data)
				return nil
			}
			fmt.Fprint(app.Out, formatter.FormatDecision(rec))
			return nil
		},
	}

	cmd.Flags().StringVar(&rowsPath, "rows", "", "Path to the ledger CSV export")
	cmd.Flags().StringVar(&configPath, "config", "phoenix.yaml", "Path to the Phoenix config file")
	cmd.Flags().StringVar(&month, "month", "", "Target month (YYYY-MM)")
	cmd.Flags().StringVar(&annualYTD, "annual-w2-ytd", "", "Year-to-date W-2 total for the advisory check")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the raw decision record JSON")
	cmd.Flags().BoolVar(&save, "save", false, "Archive the decision record")
	cmd.Flags().StringVar(&dbPath, "db", "", "Decision archive path (default ~/.phoenix/phoenix.db)")
	cmd.Flags().BoolVar(&verbose, "verbose", false, "Log evaluation telemetry to stderr")
	cmd.MarkFlagRequired("rows")

	return cmd
}
