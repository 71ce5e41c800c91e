package service

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/reshetovitsme/telewaves/internal/modules/download/domain"
	"github.com/reshetovitsme/telewaves/internal/modules/download/repository"
	mediaDomain "github.com/reshetovitsme/telewaves/internal/modules/media/domain"
	"github.com/reshetovitsme/telewaves/internal/shared/config"
	"github.com/reshetovitsme/telewaves/internal/shared/errors"
	"github.com/samber/oops"
)

// Service decides which incoming messages carry media worth keeping and downloads them
type Service struct {
	cfg      *config.Config
	fetcher  Fetcher
	repo     repository.Repository
	notifier Notifier
	logger   *slog.Logger
}

// New creates a new download service. notifier may be nil.
func New(cfg *config.Config, fetcher Fetcher, repo repository.Repository, notifier Notifier) *Service {
	return &Service{
		cfg:      cfg,
		fetcher:  fetcher,
		repo:     repo,
		notifier: notifier,
		logger:   slog.Default(),
	}
}

// SetLogger sets the logger
func (s *Service) SetLogger(logger *slog.Logger) {
	s.logger = logger
}

// HandleEvent runs one message through the chat filter, the media check and the
// extension filter, and downloads the attachment if all of them pass.
// Failures are logged and reported through the outcome; they never propagate.
func (s *Service) HandleEvent(ctx context.Context, event *mediaDomain.Event) (outcome domain.Outcome) {
	if event == nil {
		return domain.OutcomeSkippedNoMedia
	}

	logger := s.logger.With("chat_id", event.ChatID, "sender", event.SenderLabel(), "message_id", event.MessageID)

	defer func() {
		if r := recover(); r != nil {
			logger.Error("Panic while handling message", "panic", r)
			outcome = domain.OutcomeFailed
		}
	}()

	if !s.cfg.Chats.Matches(event.Subject()) {
		logger.Debug("Skipping message (filtered out)")
		return domain.OutcomeSkippedChat
	}

	if event.Attachment == nil {
		logger.Debug("Skipping message without media")
		return domain.OutcomeSkippedNoMedia
	}

	fileName := event.Attachment.ResolvedName()
	if !s.cfg.Extensions.Matches(fileName) {
		logger.Debug("File does not match extension filter", "file_name", fileName, "mime_type", event.Attachment.MimeType)
		return domain.OutcomeSkippedExtension
	}

	logger.Info("Found matching file", "file_name", fileName, "mime_type", event.Attachment.MimeType)

	if _, err := s.Download(ctx, event, fileName); err != nil {
		logger.Error("Failed to download file", "file_name", fileName, "error", err)
		return domain.OutcomeFailed
	}

	return domain.OutcomeDownloaded
}

// Download fetches the event's attachment into the download directory under fileName,
// renaming on collision, and records the result.
func (s *Service) Download(ctx context.Context, event *mediaDomain.Event, fileName string) (*domain.Record, error) {
	if event.Attachment == nil {
		return nil, oops.With("message_id", event.MessageID).Wrap(errors.ErrNoAttachment)
	}

	path, err := reservePath(s.cfg.DownloadDir, fileName)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Downloading file", "path", path)

	got, err := s.fetcher.FetchMedia(ctx, event.Attachment.Handle, path)
	if err != nil {
		s.discard(path)
		return nil, oops.With("file_name", fileName, "path", path, "context", "failed to fetch media").Wrap(err)
	}
	if got == "" {
		got = path
	}
	if filepath.Clean(got) != filepath.Clean(path) {
		s.discardPlaceholder(path)
	}

	if !s.cfg.Extensions.Matches(got) {
		s.discard(got)
		s.logger.Warn("Removed file not matching extension filter", "path", got)
		return nil, oops.With("path", got).Wrap(errors.ErrFilteredExtension)
	}

	info, err := os.Stat(got)
	if err != nil {
		return nil, oops.With("path", got, "context", "downloaded file does not exist").Wrap(err)
	}

	s.logger.Info("Successfully downloaded", "path", got, "size", fmt.Sprintf("%.2f MB", float64(info.Size())/(1024*1024)))

	record := &domain.Record{
		MessageID:      event.MessageID,
		ChatID:         event.ChatID,
		SenderID:       event.Sender.ID,
		SenderUsername: event.Sender.Username,
		FileName:       info.Name(),
		Path:           got,
		MimeType:       event.Attachment.MimeType,
		Size:           info.Size(),
		Type:           event.Attachment.Type,
		DownloadedAt:   time.Now(),
	}

	if err := s.repo.Save(record); err != nil {
		s.logger.Error("Failed to save download record", "path", got, "error", err)
	}

	if s.notifier != nil {
		if err := s.notifier.NotifyDownloaded(ctx, record); err != nil {
			s.logger.Warn("Failed to send download notification", "path", got, "error", err)
		}
	}

	return record, nil
}

func (s *Service) discard(path string) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		s.logger.Warn("Failed to remove file", "path", path, "error", err)
	}
}

// discardPlaceholder removes a reserved destination the client did not write to.
func (s *Service) discardPlaceholder(path string) {
	if info, err := os.Stat(path); err == nil && info.Size() == 0 {
		s.discard(path)
	}
}
