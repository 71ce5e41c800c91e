package service

import (
	"context"
	"log/slog"

	mediaDomain "github.com/reshetovitsme/telewaves/internal/modules/media/domain"
	"github.com/samber/oops"
)

// Monitor connects the Telegram client's message stream to the download service
type Monitor struct {
	client  Client
	service *Service
	logger  *slog.Logger
}

// NewMonitor creates a new monitor
func NewMonitor(client Client, service *Service) *Monitor {
	return &Monitor{
		client:  client,
		service: service,
		logger:  slog.Default(),
	}
}

// SetLogger sets the logger
func (m *Monitor) SetLogger(logger *slog.Logger) {
	m.logger = logger
}

// Run signs in, subscribes to new messages and blocks until ctx is cancelled.
// The client is closed on return so the session is persisted.
func (m *Monitor) Run(ctx context.Context) error {
	defer func() {
		if err := m.client.Close(); err != nil {
			m.logger.Error("Failed to close Telegram client", "error", err)
		}
	}()

	m.logger.Info("Starting Telegram client (you may be prompted for authentication)")

	account, err := m.client.Authenticate(ctx)
	if err != nil && ctx.Err() != nil {
		m.logger.Info("Sign-in interrupted, stopping Telegram client")
		return nil
	}
	if err != nil {
		return oops.With("context", "telegram authentication failed").Wrap(err)
	}
	m.logger.Info("Logged in", "account", account.String())

	m.client.Subscribe(func(ctx context.Context, event *mediaDomain.Event) {
		m.service.HandleEvent(ctx, event)
	})

	m.logger.Info("Monitoring Telegram messages for media files")

	<-ctx.Done()
	m.logger.Info("Stopping Telegram client")
	return nil
}
