package errors

import "errors"

var (
	ErrMissingAPIID           = errors.New("TELEGRAM_API_ID environment variable is required")
	ErrInvalidAPIID           = errors.New("TELEGRAM_API_ID must be a valid integer")
	ErrMissingAPIHash         = errors.New("TELEGRAM_API_HASH environment variable is required")
	ErrInvalidChatFilter      = errors.New("invalid chat filter token")
	ErrInvalidExtensionFilter = errors.New("invalid extension filter token")
	ErrFilteredExtension      = errors.New("downloaded file does not match extension filter")
	ErrNoAttachment           = errors.New("message has no downloadable attachment")
)
