package domain

import (
	"strings"

	"github.com/samber/lo"
)

// splitTokens splits a comma-separated filter string, trimming whitespace and dropping empty tokens.
func splitTokens(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return []string{}
	}
	return lo.FilterMap(strings.Split(raw, ","), func(part string, _ int) (string, bool) {
		part = strings.TrimSpace(part)
		return part, part != ""
	})
}
