package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/reshetovitsme/telewaves/internal/di"
	downloadService "github.com/reshetovitsme/telewaves/internal/modules/download/service"
	"github.com/reshetovitsme/telewaves/internal/shared/config"
	"github.com/reshetovitsme/telewaves/internal/shared/logging"
	httpServer "github.com/reshetovitsme/telewaves/internal/transport/http"
	"github.com/samber/do/v2"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

func main() {
	// Until the configured level is known, log at info
	slog.SetDefault(logging.New(config.DefaultLogLevel))

	if err := run(); err != nil {
		slog.Error("TeleWaves stopped with an error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	injector, err := di.Setup()
	if err != nil {
		return err
	}

	cfg, err := do.Invoke[*config.Config](injector)
	if err != nil {
		return err
	}
	logger := do.MustInvoke[*slog.Logger](injector)

	monitor, err := do.Invoke[*downloadService.Monitor](injector)
	if err != nil {
		return err
	}
	defer func() {
		if err := di.Shutdown(injector); err != nil {
			logger.Error("Error during shutdown", "error", err)
		}
	}()

	logger.Info("Starting TeleWaves",
		"download_dir", cfg.DownloadDir,
		"session", cfg.SessionPath(),
		"chat_filter", lo.Ternary(cfg.Chats.IsEmpty(), "all chats", cfg.Chats.String()),
		"extensions_filter", lo.Ternary(cfg.Extensions.IsEmpty(), "all files", cfg.Extensions.String()),
	)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Resolve everything before the monitor starts prompting for sign-in
	var server *httpServer.Server
	if cfg.FeedEnabled() {
		server, err = do.Invoke[*httpServer.Server](injector)
		if err != nil {
			return err
		}
	}

	group, ctx := errgroup.WithContext(ctx)

	group.Go(func() error {
		return monitor.Run(ctx)
	})

	if server != nil {
		group.Go(func() error {
			return server.Start(ctx)
		})
	}

	err = group.Wait()
	logger.Info("Shutting down...")
	return err
}
