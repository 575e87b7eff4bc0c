package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvtrace/config"
	"github.com/katalvlaran/lvtrace/server"
)

// serveCommand creates the serve command.
func (c *CLI) serveCommand() *cobra.Command {
	var configPath, addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the trace engines over HTTP",
		Long: `Serve the trace engines over HTTP.

Settings come from the TOML file given by --config (see config.Default for the
built-in values). --addr overrides server.addr.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			verbose, _ := cmd.Flags().GetBool("verbose")
			return c.runServe(cmd.Context(), configPath, addr, verbose)
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "TOML configuration file")
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config)")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, configPath, addr string, verbose bool) error {
	logger := loggerFromContext(ctx)

	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
		logger.Debug("loaded config", "path", configPath)
	}
	if addr != "" {
		cfg.Server.Addr = addr
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if !verbose {
		level, _ := cfg.Log.ParseLevel() // checked by Validate
		c.SetLogLevel(level)
	}

	srv := server.New(cfg.Server, logger, version)
	if err := srv.ListenAndServe(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	return nil
}
