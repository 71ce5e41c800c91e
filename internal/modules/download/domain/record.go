package domain

import (
	"time"

	mediaDomain "github.com/reshetovitsme/telewaves/internal/modules/media/domain"
)

// Record represents a media file saved to the download directory
type Record struct {
	ID             string                `json:"id"`
	MessageID      int64                 `json:"message_id"`
	ChatID         int64                 `json:"chat_id"`
	SenderID       int64                 `json:"sender_id"`
	SenderUsername string                `json:"sender_username,omitempty"`
	FileName       string                `json:"file_name"`
	Path           string                `json:"path"`
	MimeType       string                `json:"mime_type,omitempty"`
	Size           int64                 `json:"size"`
	Type           mediaDomain.MediaType `json:"type"`
	DownloadedAt   time.Time             `json:"downloaded_at"`
}
