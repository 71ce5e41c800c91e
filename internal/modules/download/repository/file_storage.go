package repository

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/reshetovitsme/telewaves/internal/modules/download/domain"
	"github.com/samber/lo"
	"github.com/samber/oops"
)

// FileStorage implements Repository with one JSON file per download
type FileStorage struct {
	basePath string
	mu       sync.RWMutex
}

// NewFileStorage creates a new file-based download repository under basePath/downloads
func NewFileStorage(basePath string) (Repository, error) {
	recordPath := filepath.Join(basePath, "downloads")
	if err := os.MkdirAll(recordPath, 0755); err != nil {
		return nil, oops.With("base_path", basePath, "context", "failed to create downloads directory").Wrap(err)
	}

	return &FileStorage{basePath: recordPath}, nil
}

func (s *FileStorage) Save(record *domain.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if record.ID == "" {
		record.ID = fmt.Sprintf("%d-%d-%d", record.DownloadedAt.UnixNano(), record.ChatID, record.MessageID)
	}

	path := filepath.Join(s.basePath, record.ID+".json")
	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return oops.With("record_id", record.ID, "context", "failed to marshal record").Wrap(err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return oops.With("record_id", record.ID, "path", path, "context", "failed to write record").Wrap(err)
	}
	return nil
}

// List returns up to limit records, newest first. A non-positive limit returns all of them.
func (s *FileStorage) List(limit int) ([]*domain.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries, err := os.ReadDir(s.basePath)
	if err != nil {
		return nil, oops.With("directory", s.basePath, "context", "failed to read downloads directory").Wrap(err)
	}

	records := lo.FilterMap(entries, func(entry os.DirEntry, _ int) (*domain.Record, bool) {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			return nil, false
		}

		data, err := os.ReadFile(filepath.Join(s.basePath, entry.Name()))
		if err != nil {
			return nil, false
		}

		var record domain.Record
		if err := json.Unmarshal(data, &record); err != nil {
			return nil, false
		}

		return &record, true
	})

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].DownloadedAt.After(records[j].DownloadedAt)
	})

	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}
	return records, nil
}
