package service

import (
	"fmt"
	"html"
	"mime"
	"net/url"
	"path/filepath"
	"time"

	"github.com/gorilla/feeds"
	downloadDomain "github.com/reshetovitsme/telewaves/internal/modules/download/domain"
	downloadRepo "github.com/reshetovitsme/telewaves/internal/modules/download/repository"
	"github.com/reshetovitsme/telewaves/internal/modules/feed/domain"
	"github.com/samber/lo"
	"github.com/samber/oops"
)

// Service renders the download history as a podcast-style feed
type Service struct {
	downloadRepo downloadRepo.Repository
}

// New creates a new feed service
func New(downloadRepo downloadRepo.Repository) *Service {
	return &Service{
		downloadRepo: downloadRepo,
	}
}

// GenerateFeed builds a feed of the newest downloads. Each item carries an enclosure
// pointing at the file under baseURL.
func (s *Service) GenerateFeed(cfg domain.FeedConfig) (*feeds.Feed, error) {
	limit := cfg.Limit
	if limit <= 0 {
		limit = domain.DefaultItemLimit
	}

	records, err := s.downloadRepo.List(limit)
	if err != nil {
		return nil, oops.With("context", "failed to list downloads").Wrap(err)
	}

	feed := &feeds.Feed{
		Title:       cfg.Title,
		Link:        &feeds.Link{Href: cfg.BaseURL + "/feed"},
		Description: fmt.Sprintf("Media files collected by %s", cfg.Title),
		Created:     time.Now(),
	}
	if len(records) > 0 {
		feed.Updated = records[0].DownloadedAt
	}

	feed.Items = lo.Map(records, func(record *downloadDomain.Record, _ int) *feeds.Item {
		return s.recordToFeedItem(record, cfg.BaseURL)
	})

	return feed, nil
}

func (s *Service) recordToFeedItem(record *downloadDomain.Record, baseURL string) *feeds.Item {
	fileURL := FileURL(baseURL, record.FileName)

	author := fmt.Sprintf("user %d", record.SenderID)
	if record.SenderUsername != "" {
		author = "@" + record.SenderUsername
	}

	return &feeds.Item{
		Title:       record.FileName,
		Link:        &feeds.Link{Href: fileURL},
		Description: fmt.Sprintf("%s from %s", record.Type, author),
		Content:     fmt.Sprintf("<p>%s from %s</p>", html.EscapeString(record.FileName), html.EscapeString(author)),
		Author:      &feeds.Author{Name: author},
		Created:     record.DownloadedAt,
		Id:          record.ID,
		Enclosure: &feeds.Enclosure{
			Url:    fileURL,
			Length: fmt.Sprintf("%d", record.Size),
			Type:   enclosureType(record),
		},
	}
}

// FileURL is where the file server exposes a downloaded file
func FileURL(baseURL, fileName string) string {
	return baseURL + "/files/" + url.PathEscape(fileName)
}

func enclosureType(record *downloadDomain.Record) string {
	if record.MimeType != "" {
		return record.MimeType
	}
	if t := mime.TypeByExtension(filepath.Ext(record.FileName)); t != "" {
		return t
	}
	return "application/octet-stream"
}
