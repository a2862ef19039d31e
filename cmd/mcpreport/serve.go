package main

import (
	"context"
	"fmt"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"

	"github.com/unbound-force/mcpreport/internal/server"
)

const envPrefix = "MCPREPORT"

// loadServeConfig resolves serve settings from flags and MCPREPORT_*
// environment variables. Flags set explicitly take precedence.
func loadServeConfig(cmd *cobra.Command) (server.Config, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return server.Config{}, fmt.Errorf("binding flags: %w", err)
	}

	var cfg server.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return server.Config{}, fmt.Errorf("decoding serve config: %w", err)
	}
	cfg.Version = version
	return cfg, nil
}

// runServe starts the report server and blocks until ctx is done.
func runServe(ctx context.Context, cfg server.Config) error {
	srv := server.New(cfg, logger)
	if err := srv.Start(ctx); err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")
		return srv.Stop()
	})
	return g.Wait()
}

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the test report over HTTP",
		Long: `Serve the HTML report at /, JSON at /report.json, YAML at
/report.yaml and per-component coverage badges at
/badges/{component}.svg until interrupted.

Settings can also come from MCPREPORT_LISTEN and
MCPREPORT_CORS_ORIGINS.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadServeConfig(cmd)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return runServe(ctx, cfg)
		},
	}

	cmd.Flags().String("listen", "127.0.0.1:8080", "address to listen on")
	cmd.Flags().StringSlice("cors-origins", nil, "allowed CORS origins (default: any)")

	return cmd
}
