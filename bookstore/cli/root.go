package cli

import (
	"os"
	"time"

	"github.com/kimnamhyeong01/bookstore-service/bookstore/config"

	"github.com/spf13/cobra"
	"go.uber.org/zap/zapcore"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	ConfigFile string
	Driver     string
	Debug      bool
}

func (o *RootOptions) config() (*config.Config, error) {
	path := o.ConfigFile
	if path == "" {
		path = os.Getenv(config.FileEnv)
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	opts := []config.Option{
		config.WithDriver(o.Driver),
		config.WithWriteTimeout(time.Minute),
	}
	if o.Debug {
		opts = append(opts, config.WithLogLevel(zapcore.DebugLevel))
	}
	for _, op := range opts {
		op(cfg)
	}
	return cfg, nil
}

// NewRootCommand creates the bookstore command. Without a subcommand it serves HTTP.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}
	serve := NewServeCommand(opts)

	cmd := &cobra.Command{
		Use:           "bookstore",
		Short:         "Bookstore storefront service",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          serve.RunE,
	}

	cmd.PersistentFlags().StringVarP(&opts.ConfigFile, "config", "c", "", "YAML config file (default $"+config.FileEnv+")")
	cmd.PersistentFlags().StringVar(&opts.Driver, "driver", "", "database driver override (pgx|sqlite)")
	cmd.PersistentFlags().BoolVar(&opts.Debug, "debug", false, "debug logging")

	cmd.AddCommand(serve)
	cmd.AddCommand(NewMigrateCommand(opts))
	cmd.AddCommand(NewUserCommand(opts))

	return cmd
}
