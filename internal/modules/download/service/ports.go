package service

import (
	"context"

	"github.com/reshetovitsme/telewaves/internal/modules/download/domain"
	mediaDomain "github.com/reshetovitsme/telewaves/internal/modules/media/domain"
)

// Handler receives every new message delivered by the Telegram client.
type Handler func(ctx context.Context, event *mediaDomain.Event)

// Fetcher retrieves the bytes behind an attachment handle and writes them to path.
// It returns the path the file actually ended up at.
type Fetcher interface {
	FetchMedia(ctx context.Context, handle mediaDomain.Handle, path string) (string, error)
}

// Client is the boundary to the Telegram user session: authentication,
// the new-message stream and media retrieval.
type Client interface {
	Fetcher
	Authenticate(ctx context.Context) (*mediaDomain.Account, error)
	Subscribe(handler Handler)
	Close() error
}

// Notifier is told about every completed download.
type Notifier interface {
	NotifyDownloaded(ctx context.Context, record *domain.Record) error
}
