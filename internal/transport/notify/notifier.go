package notify

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dustin/go-humanize"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/reshetovitsme/telewaves/internal/modules/download/domain"
	"github.com/reshetovitsme/telewaves/internal/shared/config"
	"github.com/samber/oops"
)

// MessageSender is the part of the Bot API the notifier needs
type MessageSender interface {
	SendMessage(ctx context.Context, params *bot.SendMessageParams) (*models.Message, error)
}

// Notifier posts a short message to a chat through a Bot API bot after every download
type Notifier struct {
	sender MessageSender
	chatID int64
	logger *slog.Logger
}

// New creates a notifier that sends to chatID
func New(sender MessageSender, chatID int64) *Notifier {
	return &Notifier{
		sender: sender,
		chatID: chatID,
		logger: slog.Default(),
	}
}

// NewBot creates the Bot API client used for notifications.
func NewBot(cfg *config.Config, opts ...bot.Option) (*bot.Bot, error) {
	opts = append([]bot.Option{bot.WithSkipGetMe()}, opts...)

	b, err := bot.New(cfg.NotifyBotToken, opts...)
	if err != nil {
		return nil, oops.With("context", "failed to create notification bot").Wrap(err)
	}
	return b, nil
}

// SetLogger sets the logger
func (n *Notifier) SetLogger(logger *slog.Logger) {
	n.logger = logger
}

// NotifyDownloaded announces a completed download
func (n *Notifier) NotifyDownloaded(ctx context.Context, record *domain.Record) error {
	_, err := n.sender.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: n.chatID,
		Text:   FormatDownloaded(record),
	})
	if err != nil {
		return oops.With("chat_id", n.chatID, "file_name", record.FileName).Wrap(err)
	}

	n.logger.Debug("Sent download notification", "chat_id", n.chatID, "file_name", record.FileName)
	return nil
}

// FormatDownloaded renders the notification text for record
func FormatDownloaded(record *domain.Record) string {
	sender := fmt.Sprintf("user %d", record.SenderID)
	if record.SenderUsername != "" {
		sender = "@" + record.SenderUsername
	}

	size := uint64(0)
	if record.Size > 0 {
		size = uint64(record.Size)
	}

	return fmt.Sprintf("Downloaded %s (%s) from %s", record.FileName, humanize.Bytes(size), sender)
}
