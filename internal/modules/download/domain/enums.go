//go:generate go run github.com/abice/go-enum --file=$GOFILE --names --nocase

package domain

// Outcome represents what the event handler did with a message
// ENUM(skipped_chat,skipped_no_media,skipped_extension,downloaded,failed)
type Outcome string
