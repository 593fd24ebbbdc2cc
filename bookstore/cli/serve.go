package cli

import (
	"github.com/kimnamhyeong01/bookstore-service/bookstore/app"

	"github.com/spf13/cobra"
)

func NewServeCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API until SIGTERM",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := rootOpts.config()
			if err != nil {
				return err
			}
			app.Run(cfg)
			return nil
		},
	}
}
