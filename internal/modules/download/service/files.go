package service

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/samber/oops"
)

var unsafeFileNameChars = strings.NewReplacer(
	"<", "_", ">", "_", ":", "_", `"`, "_",
	"/", "_", `\`, "_", "|", "_", "?", "_", "*", "_",
)

// SanitizeFileName makes an attachment name safe to use as a file name on any platform.
func SanitizeFileName(name string) string {
	name = unsafeFileNameChars.Replace(name)
	name = strings.Trim(name, " .")
	if name == "" {
		return "untitled"
	}
	return name
}

// reservePath picks a free path for name inside dir and creates an empty placeholder
// there, so concurrent downloads of equally named files never share a destination.
// Taken names get a numeric suffix: song.mp3, song_1.mp3, song_2.mp3, ...
func reservePath(dir, name string) (string, error) {
	name = SanitizeFileName(name)
	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)

	candidate := name
	for counter := 1; ; counter++ {
		path := filepath.Join(dir, candidate)
		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
		if err == nil {
			if err := f.Close(); err != nil {
				return "", oops.With("path", path).Wrap(err)
			}
			return path, nil
		}
		if !errors.Is(err, fs.ErrExist) {
			return "", oops.With("path", path, "context", "failed to reserve destination").Wrap(err)
		}
		candidate = fmt.Sprintf("%s_%d%s", stem, counter, ext)
	}
}
