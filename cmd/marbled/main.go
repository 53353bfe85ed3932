// Command marbled serves the solver and leaderboard over HTTP. The CLI in
// cmd/marble remains the primary, spec-mandated way to play; this binary is
// an optional front-end for a browser client.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	"github.com/lmittmann/tint"
	"github.com/tinkersmith/marble-solitaire/internal/app"
	"github.com/tinkersmith/marble-solitaire/internal/config"
	"github.com/tinkersmith/marble-solitaire/internal/database"
	"golang.org/x/sync/errgroup"
)

func main() {
	var logger *slog.Logger
	if config.Development() {
		logger = slog.New(tint.NewHandler(os.Stderr, nil))
	} else {
		logger = slog.New(slog.NewJSONHandler(os.Stderr, nil))
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	a := app.New(logger, database.Migrations)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return a.Start(ctx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("marbled exited with error", slog.Any("error", err))
		os.Exit(1)
	}
}
