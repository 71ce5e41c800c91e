package domain

import (
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/reshetovitsme/telewaves/internal/shared/errors"
	"github.com/samber/lo"
	"github.com/samber/oops"
)

var extensionToken = regexp.MustCompile(`^[a-z0-9]+$`)

// ExtensionFilter is the allow-list of file extensions to download.
// The zero value matches everything.
type ExtensionFilter struct {
	extensions map[string]struct{}
}

// ParseExtensionFilter parses a comma-separated list of extensions and preset names.
func ParseExtensionFilter(raw string) (ExtensionFilter, error) {
	f := ExtensionFilter{extensions: map[string]struct{}{}}

	for _, token := range splitTokens(raw) {
		ext := NormalizeExtension(token)

		if preset, ok := Presets[Preset(ext)]; ok {
			for _, e := range preset {
				f.extensions[e] = struct{}{}
			}
			continue
		}

		if !extensionToken.MatchString(ext) {
			return ExtensionFilter{}, oops.With("token", token).Wrapf(errors.ErrInvalidExtensionFilter, "%q is not a file extension", token)
		}
		f.extensions[ext] = struct{}{}
	}

	return f, nil
}

// NormalizeExtension lower-cases an extension and strips a leading ".".
func NormalizeExtension(s string) string {
	return strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), "."))
}

// Extension returns the normalized extension of a file name, or "" when it has none.
func Extension(fileName string) string {
	return NormalizeExtension(filepath.Ext(filepath.Base(fileName)))
}

// IsEmpty reports whether the filter lets every file through.
func (f ExtensionFilter) IsEmpty() bool {
	return len(f.extensions) == 0
}

// Matches reports whether fileName may be downloaded.
// A name without an extension only passes an empty filter.
func (f ExtensionFilter) Matches(fileName string) bool {
	if f.IsEmpty() {
		return true
	}

	ext := Extension(fileName)
	if ext == "" {
		return false
	}
	_, ok := f.extensions[ext]
	return ok
}

// String lists the allowed extensions in sorted order, for logging.
func (f ExtensionFilter) String() string {
	exts := lo.Keys(f.extensions)
	sort.Strings(exts)
	return strings.Join(exts, ", ")
}
