package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/lmittmann/tint"

	nonogramserver "github.com/vancomm/nonogram-server"
	"github.com/vancomm/nonogram-server/internal/app"
	"github.com/vancomm/nonogram-server/internal/config"
)

func main() {
	var handler slog.Handler = slog.NewJSONHandler(os.Stderr, nil)
	if config.Development() {
		handler = tint.NewHandler(os.Stderr, &tint.Options{
			Level: slog.LevelDebug,
		})
	}
	logger := slog.New(handler)

	ctx, cancel := signal.NotifyContext(
		context.Background(), os.Interrupt, syscall.SIGTERM,
	)
	defer cancel()

	if err := app.New(logger, nonogramserver.Migrations).Start(ctx); err != nil {
		logger.Error("fatal", slog.Any("error", err))
		os.Exit(1)
	}
}
