package cli

import (
	"io"

	"github.com/spf13/cobra"
)

// App holds the shared dependencies CLI commands need.
type App struct {
	// Out receives all command output.
	Out io.Writer

	// DefaultDBPath is the decision archive used when --db is not given.
	DefaultDBPath string

	// IsInteractive reports whether stdin is an interactive terminal;
	// gates the huh month form.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "phoenix" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "phoenix",
		Short:         "Monthly SSDI/SGA compliance decisions from a business ledger",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newEvaluateCmd(app),
		newHistoryCmd(app),
		newReviewCmd(app),
	)

	return root
}
