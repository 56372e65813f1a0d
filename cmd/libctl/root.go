package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/library-backend/internal/adapter/postgres"
	"github.com/heartmarshall/library-backend/internal/app"
	"github.com/heartmarshall/library-backend/internal/config"
)

type rootOptions struct {
	configPath string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "libctl",
		Short:         "Operate the library backend",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to YAML config (default $CONFIG_PATH or ./config.yaml)")

	root.AddCommand(
		newMigrateCmd(opts),
		newSweepCmd(opts),
		newStatsCmd(opts),
		newAskCmd(opts),
		newVersionCmd(),
	)
	return root
}

// env is what a subcommand gets after config and database are up.
type env struct {
	cfg    *config.Config
	logger *slog.Logger
	pool   *pgxpool.Pool
}

func (o *rootOptions) load() (*config.Config, error) {
	if o.configPath != "" {
		return config.LoadFrom(o.configPath)
	}
	return config.Load()
}

// withEnv loads config, connects to the database and calls fn.
func (o *rootOptions) withEnv(ctx context.Context, fn func(e *env) error) error {
	cfg, err := o.load()
	if err != nil {
		return err
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	return fn(&env{cfg: cfg, logger: app.NewLogger(cfg.Log), pool: pool})
}

// withServices is withEnv plus the wired service layer, without metrics.
func (o *rootOptions) withServices(ctx context.Context, fn func(e *env, svc *app.Services) error) error {
	return o.withEnv(ctx, func(e *env) error {
		svc, err := app.NewServices(e.cfg, e.logger, e.pool, nil)
		if err != nil {
			return err
		}
		defer svc.Close()
		return fn(e, svc)
	})
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return nil
}
