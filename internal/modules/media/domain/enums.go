//go:generate go run github.com/abice/go-enum --file=$GOFILE --names --nocase

package domain

// MediaType represents the kind of document attached to a message
// ENUM(audio,voice,video,animation,sticker,document)
type MediaType string
