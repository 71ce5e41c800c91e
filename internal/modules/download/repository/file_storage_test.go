package repository_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/reshetovitsme/telewaves/internal/modules/download/domain"
	"github.com/reshetovitsme/telewaves/internal/modules/download/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStorageSaveAndList(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	repo, err := repository.NewFileStorage(dir)
	require.NoError(t, err)

	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	saved := []struct {
		name   string
		offset time.Duration
	}{
		{name: "old.mp3", offset: 0},
		{name: "newest.mp3", offset: 2 * time.Hour},
		{name: "middle.mp3", offset: time.Hour},
	}
	for i, s := range saved {
		require.NoError(t, repo.Save(&domain.Record{
			MessageID:    int64(i + 1),
			ChatID:       100,
			FileName:     s.name,
			DownloadedAt: base.Add(s.offset),
		}))
	}

	all, err := repo.List(0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "newest.mp3", all[0].FileName)
	assert.Equal(t, "middle.mp3", all[1].FileName)
	assert.Equal(t, "old.mp3", all[2].FileName)

	limited, err := repo.List(2)
	require.NoError(t, err)
	require.Len(t, limited, 2)
	assert.Equal(t, "newest.mp3", limited[0].FileName)
}

func TestFileStorageAssignsIDAndSkipsGarbage(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	repo, err := repository.NewFileStorage(dir)
	require.NoError(t, err)

	record := &domain.Record{MessageID: 7, ChatID: 3, FileName: "a.mp3", DownloadedAt: time.Unix(10, 0)}
	require.NoError(t, repo.Save(record))
	assert.NotEmpty(t, record.ID)
	assert.FileExists(t, filepath.Join(dir, "downloads", record.ID+".json"))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "downloads", "broken.json"), []byte("{"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "downloads", "notes.txt"), []byte("x"), 0644))

	records, err := repo.List(10)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, int64(7), records[0].MessageID)
}
