// Command plannerctl is the operator CLI: migrations, admin bootstrap, the
// initial catalog import, scheduled digests, log cleanup and a terminal
// report.
//
// It reads the same configuration as the server (config.yaml, .env and
// the environment). Digest and report sends are meant to be run by cron.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	_ "time/tzdata"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/planner-backend/internal/adapter/postgres"
	"github.com/heartmarshall/planner-backend/internal/app"
	"github.com/heartmarshall/planner-backend/internal/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "plannerctl",
	Short:         "Operate the 5W2H planner backend",
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() {
	rootCmd.AddCommand(migrateCmd, seedCmd, importCmd, notifyCmd, reportCmd, cleanupCmd, versionCmd)
}

// env is everything a command needs to talk to the database. The
// caller must defer Close.
type env struct {
	cfg    *config.Config
	logger *slog.Logger
	pool   *pgxpool.Pool
	c      *app.Container
}

func openEnv(ctx context.Context) (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	logger := app.NewLogger(cfg.Log)

	pool, err := postgres.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	c, err := app.NewContainer(cfg, logger, pool, clockwork.NewRealClock())
	if err != nil {
		pool.Close()
		return nil, err
	}
	return &env{cfg: cfg, logger: logger, pool: pool, c: c}, nil
}

func (e *env) Close() {
	e.pool.Close()
}
