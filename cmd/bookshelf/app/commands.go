package app

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/bookshelf/cmd/bookshelf/cmd/add"
	"github.com/agentstation/bookshelf/cmd/bookshelf/cmd/list"
	"github.com/agentstation/bookshelf/cmd/bookshelf/cmd/remove"
	"github.com/agentstation/bookshelf/cmd/bookshelf/cmd/search"
	"github.com/agentstation/bookshelf/cmd/bookshelf/cmd/stats"
)

// CreateAddCommand creates the add command with app dependencies.
func (a *App) CreateAddCommand() *cobra.Command {
	return add.NewCommand(a)
}

// CreateRemoveCommand creates the remove command with app dependencies.
func (a *App) CreateRemoveCommand() *cobra.Command {
	return remove.NewCommand(a)
}

// CreateSearchCommand creates the search command with app dependencies.
func (a *App) CreateSearchCommand() *cobra.Command {
	return search.NewCommand(a)
}

// CreateListCommand creates the list command with app dependencies.
func (a *App) CreateListCommand() *cobra.Command {
	return list.NewCommand(a)
}

// CreateStatsCommand creates the stats command with app dependencies.
func (a *App) CreateStatsCommand() *cobra.Command {
	return stats.NewCommand(a)
}

// CreateVersionCommand creates the version command.
func (a *App) CreateVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("bookshelf %s\n", a.version)
			if a.config.Verbose {
				cmd.Printf("  commit:   %s\n", a.commit)
				cmd.Printf("  built:    %s\n", a.date)
				cmd.Printf("  built by: %s\n", a.builtBy)
			}
		},
	}
}
