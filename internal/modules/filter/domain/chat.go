package domain

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/reshetovitsme/telewaves/internal/shared/errors"
	"github.com/samber/lo"
	"github.com/samber/oops"
)

var (
	numericToken  = regexp.MustCompile(`^-?[0-9]+$`)
	usernameToken = regexp.MustCompile(`^[a-z][a-z0-9_]{0,31}$`)
)

// ChatFilter is the allow-list of chats and senders whose messages are processed.
// The zero value matches everything.
type ChatFilter struct {
	ids       map[int64]struct{}
	usernames map[string]struct{}
}

// Subject describes who a message comes from, as far as the chat filter cares.
type Subject struct {
	ChatID         int64
	SenderID       int64
	ChatUsername   string
	SenderUsername string
}

// ParseChatFilter parses a comma-separated list of numeric chat IDs and usernames.
// Usernames may carry a leading "@" and are compared case-insensitively.
func ParseChatFilter(raw string) (ChatFilter, error) {
	f := ChatFilter{
		ids:       map[int64]struct{}{},
		usernames: map[string]struct{}{},
	}

	for _, token := range splitTokens(raw) {
		if numericToken.MatchString(token) {
			id, err := strconv.ParseInt(token, 10, 64)
			if err != nil {
				return ChatFilter{}, oops.With("token", token).Wrapf(errors.ErrInvalidChatFilter, "%v", err)
			}
			f.ids[id] = struct{}{}
			continue
		}

		name := NormalizeUsername(token)
		if !usernameToken.MatchString(name) {
			return ChatFilter{}, oops.With("token", token).Wrapf(errors.ErrInvalidChatFilter, "%q is neither a chat ID nor a username", token)
		}
		f.usernames[name] = struct{}{}
	}

	return f, nil
}

// NormalizeUsername lower-cases a username and strips a leading "@".
func NormalizeUsername(s string) string {
	return strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), "@"))
}

// IsEmpty reports whether the filter has no tokens and therefore allows every chat.
func (f ChatFilter) IsEmpty() bool {
	return len(f.ids) == 0 && len(f.usernames) == 0
}

// Matches reports whether a message from s passes the filter.
// Numeric identities are checked before usernames.
func (f ChatFilter) Matches(s Subject) bool {
	if f.IsEmpty() {
		return true
	}

	if f.hasID(s.ChatID) || f.hasID(s.SenderID) {
		return true
	}

	return f.hasUsername(s.SenderUsername) || f.hasUsername(s.ChatUsername)
}

func (f ChatFilter) hasID(id int64) bool {
	if id == 0 {
		return false
	}
	_, ok := f.ids[id]
	return ok
}

func (f ChatFilter) hasUsername(name string) bool {
	name = NormalizeUsername(name)
	if name == "" {
		return false
	}
	_, ok := f.usernames[name]
	return ok
}

// String renders the normalized tokens, IDs first.
func (f ChatFilter) String() string {
	ids := lo.Keys(f.ids)
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	names := lo.Keys(f.usernames)
	sort.Strings(names)

	tokens := lo.Map(ids, func(id int64, _ int) string { return strconv.FormatInt(id, 10) })
	tokens = append(tokens, lo.Map(names, func(n string, _ int) string { return "@" + n })...)
	return strings.Join(tokens, ", ")
}
