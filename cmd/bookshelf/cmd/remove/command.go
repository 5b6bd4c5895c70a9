// Package remove provides the command for removing books from the library.
package remove

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/agentstation/bookshelf/internal/appcontext"
	"github.com/agentstation/bookshelf/pkg/logging"
)

// NewCommand creates the remove command with app dependencies.
func NewCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <title>",
		Short: "Remove a book from the library by title",
		Long: `Remove deletes every book whose title matches the given title,
ignoring case. The library file is saved immediately after removal.`,
		Example: `  bookshelf remove "Dune"
  bookshelf remove "the hobbit"      # matching ignores case`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			title := strings.Join(args, " ")

			shelf, err := app.Shelf()
			if err != nil {
				return err
			}

			removed, err := shelf.Remove(title)
			if err != nil {
				return err
			}

			if !removed {
				cmd.Printf("No book titled %q was found.\n", title)
				return nil
			}

			ctx := logging.WithLogger(cmd.Context(), app.Logger())
			ctx = logging.WithOperation(ctx, "remove")
			ctx = logging.WithTitle(ctx, title)
			logging.Ctx(ctx).Debug().Msg("Book removed")

			cmd.Printf("Removed %q from the library.\n", title)
			return nil
		},
	}
}
