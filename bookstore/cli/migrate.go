package cli

import (
	"fmt"

	"github.com/kimnamhyeong01/bookstore-service/bookstore/app"
	"github.com/kimnamhyeong01/bookstore-service/pkg/migrate"

	"github.com/spf13/cobra"
)

var migrateCommands = []migrate.Command{migrate.Up, migrate.Down, migrate.Status}

func NewMigrateCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:       "migrate [up|down|status]",
		Short:     "Apply, roll back or list schema migrations",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{string(migrate.Up), string(migrate.Down), string(migrate.Status)},
		RunE: func(cmd *cobra.Command, args []string) error {
			command := migrate.Up
			if len(args) == 1 {
				command = migrate.Command(args[0])
			}
			if !validMigrateCommand(command) {
				return fmt.Errorf("invalid migrate command %q: must be one of %v", command, migrateCommands)
			}
			cfg, err := rootOpts.config()
			if err != nil {
				return err
			}
			return app.Migrate(cmd.Context(), cfg, command)
		},
	}
}

func validMigrateCommand(c migrate.Command) bool {
	for _, m := range migrateCommands {
		if m == c {
			return true
		}
	}
	return false
}
