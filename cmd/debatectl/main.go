// Command debatectl is the operator CLI: it applies migrations, forfeits
// participants whose time ran out, prints standings and issues dev tokens.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/debate-backend/internal/adapter/postgres"
	"github.com/heartmarshall/debate-backend/internal/app"
	"github.com/heartmarshall/debate-backend/internal/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "debatectl",
		Short:         "Operate the debate backend",
		Version:       app.BuildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newMigrateCmd(),
		newForfeitCmd(),
		newTallyCmd(),
		newRunningCmd(),
		newTokenCmd(),
	)
	return root
}

// runtime is what database-backed commands share.
type runtime struct {
	cfg  *config.Config
	log  *slog.Logger
	pool *pgxpool.Pool
}

func openRuntime(ctx context.Context) (*runtime, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	logger := app.NewLogger(cfg.Log)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	return &runtime{cfg: cfg, log: logger, pool: pool}, nil
}

func (r *runtime) Close() {
	r.pool.Close()
}

func (r *runtime) stack() (*app.Stack, error) {
	return app.NewStack(r.cfg, r.log, r.pool)
}

func parseID(name, raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid %s %q: %w", name, raw, err)
	}
	return id, nil
}
