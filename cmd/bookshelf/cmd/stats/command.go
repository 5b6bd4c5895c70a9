// Package stats provides the command for library reading statistics.
package stats

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/bookshelf/internal/appcontext"
	"github.com/agentstation/bookshelf/internal/cmd/output"
)

// NewCommand creates the stats command with app dependencies.
func NewCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show reading statistics",
		Long: `Stats reports the total number of books and the share of them
marked as read. An empty library reports zero for both.`,
		Example: `  bookshelf stats
  bookshelf stats -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			shelf, err := app.Shelf()
			if err != nil {
				return err
			}

			formatter, data := output.ForStats(app.OutputFormat(), shelf.Stats())
			return formatter.Format(cmd.OutOrStdout(), data)
		},
	}
}
