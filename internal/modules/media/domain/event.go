package domain

import (
	"fmt"
	"strings"
	"time"

	filterDomain "github.com/reshetovitsme/telewaves/internal/modules/filter/domain"
)

// Handle is an opaque reference to a remote media object.
// Only the Telegram client that produced it knows how to fetch it.
type Handle any

// Sender identifies the author of a message
type Sender struct {
	ID       int64  `json:"id"`
	Username string `json:"username,omitempty"`
}

// Attachment is the single downloadable document carried by a message
type Attachment struct {
	DocumentID int64     `json:"document_id"`
	FileName   string    `json:"file_name,omitempty"`
	MimeType   string    `json:"mime_type,omitempty"`
	Size       int64     `json:"size"`
	Type       MediaType `json:"type"`
	Handle     Handle    `json:"-"`
}

// Event is a new incoming message as delivered by the Telegram client
type Event struct {
	MessageID    int64       `json:"message_id"`
	ChatID       int64       `json:"chat_id"`
	ChatUsername string      `json:"chat_username,omitempty"`
	Sender       Sender      `json:"sender"`
	Date         time.Time   `json:"date"`
	Attachment   *Attachment `json:"attachment,omitempty"`
}

// Account is the signed-in Telegram user
type Account struct {
	ID        int64
	FirstName string
	LastName  string
	Username  string
}

func (a *Account) String() string {
	name := strings.TrimSpace(a.FirstName + " " + a.LastName)
	if a.Username == "" {
		return fmt.Sprintf("%s (no username handle)", name)
	}
	return fmt.Sprintf("%s (@%s)", name, a.Username)
}

// Subject returns the identities the chat filter is evaluated against.
func (e *Event) Subject() filterDomain.Subject {
	return filterDomain.Subject{
		ChatID:         e.ChatID,
		SenderID:       e.Sender.ID,
		ChatUsername:   e.ChatUsername,
		SenderUsername: e.Sender.Username,
	}
}

// SenderLabel is "@username" when known, the numeric ID otherwise.
func (e *Event) SenderLabel() string {
	if e.Sender.Username != "" {
		return "@" + e.Sender.Username
	}
	return fmt.Sprintf("%d", e.Sender.ID)
}

var mimeExtensions = map[string]string{
	"audio/mpeg":      ".mp3",
	"audio/mp4":       ".m4a",
	"audio/x-m4a":     ".m4a",
	"audio/flac":      ".flac",
	"audio/ogg":       ".ogg",
	"audio/wav":       ".wav",
	"audio/x-wav":     ".wav",
	"video/mp4":       ".mp4",
	"video/webm":      ".webm",
	"application/pdf": ".pdf",
}

// ResolvedName is the attachment's declared file name, or a name derived from the
// document ID and MIME type when the sender did not supply one.
func (a *Attachment) ResolvedName() string {
	if a.FileName != "" {
		return a.FileName
	}
	return fmt.Sprintf("document_%d%s", a.DocumentID, mimeExtensions[strings.ToLower(a.MimeType)])
}
