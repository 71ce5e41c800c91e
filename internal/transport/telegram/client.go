package telegram

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/amarnathcjd/gogram/telegram"
	downloadService "github.com/reshetovitsme/telewaves/internal/modules/download/service"
	mediaDomain "github.com/reshetovitsme/telewaves/internal/modules/media/domain"
	"github.com/reshetovitsme/telewaves/internal/shared/config"
	"github.com/samber/oops"
)

// Client is the user-account MTProto session backed by gogram
type Client struct {
	cfg    *config.Config
	client *telegram.Client
	logger *slog.Logger

	// signIn and stop wrap the blocking gogram calls so sign-in can be abandoned
	signIn func() error
	stop   func() error

	mu        sync.RWMutex
	ctx       context.Context
	closeOnce sync.Once
	closeErr  error
}

// NewClient creates a Telegram client. The session is stored under the data directory
// so that authentication survives restarts.
func NewClient(cfg *config.Config) (*Client, error) {
	client, err := telegram.NewClient(telegram.ClientConfig{
		AppID:    int32(cfg.TelegramAPIID),
		AppHash:  cfg.TelegramAPIHash,
		Session:  cfg.SessionPath(),
		LogLevel: clientLogLevel(cfg.LogLevel),
	})
	if err != nil {
		return nil, oops.With("session", cfg.SessionPath(), "context", "failed to create telegram client").Wrap(err)
	}

	return &Client{
		cfg:    cfg,
		client: client,
		logger: slog.Default(),
		ctx:    context.Background(),
		signIn: func() error {
			if _, err := client.Conn(); err != nil {
				return oops.With("context", "failed to connect to telegram").Wrap(err)
			}
			if err := client.AuthPrompt(); err != nil {
				return oops.With("context", "interactive sign-in failed").Wrap(err)
			}
			return nil
		},
		stop: client.Stop,
	}, nil
}

// SetLogger sets the logger
func (c *Client) SetLogger(logger *slog.Logger) {
	c.logger = logger
}

// Authenticate connects and signs in, prompting on the terminal for the phone number,
// login code and 2FA password when the stored session is not authorized yet.
// Cancelling ctx while connecting or prompting stops the client and returns ctx.Err().
func (c *Client) Authenticate(ctx context.Context) (*mediaDomain.Account, error) {
	c.mu.Lock()
	c.ctx = ctx
	c.mu.Unlock()

	if err := c.waitSignIn(ctx); err != nil {
		return nil, err
	}

	me, err := c.client.GetMe()
	if err != nil {
		return nil, oops.With("context", "failed to fetch signed-in account").Wrap(err)
	}

	return &mediaDomain.Account{
		ID:        me.ID,
		FirstName: me.FirstName,
		LastName:  me.LastName,
		Username:  me.Username,
	}, nil
}

// Subscribe registers handler for every new incoming message
func (c *Client) Subscribe(handler downloadService.Handler) {
	c.client.On(telegram.OnMessage, func(m *telegram.NewMessage) error {
		event := EventFromMessage(m)
		if event == nil {
			return nil
		}
		handler(c.context(), event)
		return nil
	})
}

// FetchMedia downloads the media behind handle to path
func (c *Client) FetchMedia(ctx context.Context, handle mediaDomain.Handle, path string) (string, error) {
	media, ok := handle.(telegram.MessageMedia)
	if !ok || media == nil {
		return "", oops.With("path", path).Errorf("unsupported media handle %T", handle)
	}

	got, err := c.client.DownloadMedia(media, &telegram.DownloadOptions{
		FileName: path,
		Ctx:      ctx,
	})
	if err != nil {
		return "", oops.With("path", path).Wrap(err)
	}
	return got, nil
}

// Close stops the client and flushes the session. Later calls are no-ops.
func (c *Client) Close() error {
	c.closeOnce.Do(func() {
		if err := c.stop(); err != nil {
			c.closeErr = oops.With("context", "failed to stop telegram client").Wrap(err)
		}
	})
	return c.closeErr
}

func (c *Client) waitSignIn(ctx context.Context) error {
	done := make(chan error, 1)
	go func() {
		done <- c.signIn()
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		// unblocks the pending dial or terminal prompt
		if err := c.Close(); err != nil {
			c.logger.Warn("failed to stop telegram client after cancelled sign-in", "error", err)
		}
		return oops.With("context", "sign-in interrupted").Wrap(ctx.Err())
	}
}

func (c *Client) context() context.Context {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.ctx
}

func clientLogLevel(level string) telegram.LogLevel {
	switch strings.ToLower(level) {
	case "debug":
		return telegram.LogDebug
	case "warn":
		return telegram.LogWarn
	case "error":
		return telegram.LogError
	default:
		return telegram.LogInfo
	}
}
