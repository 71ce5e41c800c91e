package di

import (
	"log/slog"

	"github.com/go-telegram/bot"
	downloadRepo "github.com/reshetovitsme/telewaves/internal/modules/download/repository"
	downloadService "github.com/reshetovitsme/telewaves/internal/modules/download/service"
	feedService "github.com/reshetovitsme/telewaves/internal/modules/feed/service"
	"github.com/reshetovitsme/telewaves/internal/shared/config"
	"github.com/reshetovitsme/telewaves/internal/shared/logging"
	httpServer "github.com/reshetovitsme/telewaves/internal/transport/http"
	"github.com/reshetovitsme/telewaves/internal/transport/notify"
	telegramClient "github.com/reshetovitsme/telewaves/internal/transport/telegram"
	"github.com/samber/do/v2"
	"github.com/samber/oops"
)

// Setup initializes the dependency injection container
func Setup() (do.Injector, error) {
	injector := do.New()

	// Register Config
	do.Provide(injector, func(i do.Injector) (*config.Config, error) {
		cfg, err := config.Load()
		if err != nil {
			return nil, oops.With("context", "failed to load config").Wrap(err)
		}
		return cfg, nil
	})

	// Register Logger; it also becomes the process default
	do.Provide(injector, func(i do.Injector) (*slog.Logger, error) {
		cfg := do.MustInvoke[*config.Config](i)
		logger := logging.New(cfg.LogLevel)
		slog.SetDefault(logger)
		return logger, nil
	})

	// Register Download Repository
	do.Provide(injector, func(i do.Injector) (downloadRepo.Repository, error) {
		cfg := do.MustInvoke[*config.Config](i)
		repo, err := downloadRepo.NewFileStorage(cfg.DataDir)
		if err != nil {
			return nil, oops.With("data_dir", cfg.DataDir, "context", "failed to initialize download repository").Wrap(err)
		}
		return repo, nil
	})

	// Register Telegram Client
	do.Provide(injector, func(i do.Injector) (*telegramClient.Client, error) {
		cfg := do.MustInvoke[*config.Config](i)
		logger := do.MustInvoke[*slog.Logger](i)
		client, err := telegramClient.NewClient(cfg)
		if err != nil {
			return nil, err
		}
		client.SetLogger(logger.With("component", "telegram"))
		return client, nil
	})

	// Register Notification Bot
	do.Provide(injector, func(i do.Injector) (*bot.Bot, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return notify.NewBot(cfg)
	})

	// Register Notifier
	do.Provide(injector, func(i do.Injector) (*notify.Notifier, error) {
		cfg := do.MustInvoke[*config.Config](i)
		logger := do.MustInvoke[*slog.Logger](i)
		b := do.MustInvoke[*bot.Bot](i)
		notifier := notify.New(b, cfg.NotifyChatID)
		notifier.SetLogger(logger.With("component", "notify"))
		return notifier, nil
	})

	// Register Download Service
	do.Provide(injector, func(i do.Injector) (*downloadService.Service, error) {
		cfg := do.MustInvoke[*config.Config](i)
		logger := do.MustInvoke[*slog.Logger](i)
		repo := do.MustInvoke[downloadRepo.Repository](i)
		client := do.MustInvoke[*telegramClient.Client](i)

		var notifier downloadService.Notifier
		if cfg.NotifyEnabled() {
			notifier = do.MustInvoke[*notify.Notifier](i)
		}

		service := downloadService.New(cfg, client, repo, notifier)
		service.SetLogger(logger.With("component", "download"))
		return service, nil
	})

	// Register Monitor
	do.Provide(injector, func(i do.Injector) (*downloadService.Monitor, error) {
		logger := do.MustInvoke[*slog.Logger](i)
		client := do.MustInvoke[*telegramClient.Client](i)
		service := do.MustInvoke[*downloadService.Service](i)
		monitor := downloadService.NewMonitor(client, service)
		monitor.SetLogger(logger.With("component", "monitor"))
		return monitor, nil
	})

	// Register Feed Service
	do.Provide(injector, func(i do.Injector) (*feedService.Service, error) {
		repo := do.MustInvoke[downloadRepo.Repository](i)
		return feedService.New(repo), nil
	})

	// Register HTTP Server
	do.Provide(injector, func(i do.Injector) (*httpServer.Server, error) {
		cfg := do.MustInvoke[*config.Config](i)
		logger := do.MustInvoke[*slog.Logger](i)
		feedService := do.MustInvoke[*feedService.Service](i)
		server := httpServer.New(cfg, feedService)
		server.SetLogger(logger.With("component", "http"))
		return server, nil
	})

	return injector, nil
}

// Shutdown releases the Telegram session
func Shutdown(injector do.Injector) error {
	client, err := do.Invoke[*telegramClient.Client](injector)
	if err != nil || client == nil {
		return nil
	}
	return client.Close()
}
