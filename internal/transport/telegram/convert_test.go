package telegram

import (
	"testing"

	"github.com/amarnathcjd/gogram/telegram"
	filterDomain "github.com/reshetovitsme/telewaves/internal/modules/filter/domain"
	mediaDomain "github.com/reshetovitsme/telewaves/internal/modules/media/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttachmentFromDocument(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		attrs    []telegram.DocumentAttribute
		wantType mediaDomain.MediaType
		wantName string
	}{
		{
			name:     "plain document",
			attrs:    []telegram.DocumentAttribute{&telegram.DocumentAttributeFilename{FileName: "book.pdf"}},
			wantType: mediaDomain.MediaTypeDocument,
			wantName: "book.pdf",
		},
		{
			name: "audio track",
			attrs: []telegram.DocumentAttribute{
				&telegram.DocumentAttributeAudio{Title: "Song"},
				&telegram.DocumentAttributeFilename{FileName: "song.mp3"},
			},
			wantType: mediaDomain.MediaTypeAudio,
			wantName: "song.mp3",
		},
		{
			name:     "voice note without name",
			attrs:    []telegram.DocumentAttribute{&telegram.DocumentAttributeAudio{Voice: true}},
			wantType: mediaDomain.MediaTypeVoice,
		},
		{
			name:     "video",
			attrs:    []telegram.DocumentAttribute{&telegram.DocumentAttributeVideo{}, &telegram.DocumentAttributeFilename{FileName: "clip.mp4"}},
			wantType: mediaDomain.MediaTypeVideo,
			wantName: "clip.mp4",
		},
		{
			name:     "animation wins over video",
			attrs:    []telegram.DocumentAttribute{&telegram.DocumentAttributeVideo{}, &telegram.DocumentAttributeAnimated{}},
			wantType: mediaDomain.MediaTypeAnimation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			media := &telegram.MessageMediaDocument{}
			doc := &telegram.DocumentObj{ID: 42, MimeType: "audio/mpeg", Size: 2048, Attributes: tt.attrs}

			got := AttachmentFromDocument(doc, media)
			assert.Equal(t, tt.wantType, got.Type)
			assert.Equal(t, tt.wantName, got.FileName)
			assert.Equal(t, int64(42), got.DocumentID)
			assert.Equal(t, int64(2048), got.Size)
			assert.Equal(t, "audio/mpeg", got.MimeType)
			assert.Same(t, media, got.Handle)
		})
	}
}

func TestEventFromMessage(t *testing.T) {
	t.Parallel()

	doc := &telegram.DocumentObj{
		ID:         7,
		MimeType:   "audio/flac",
		Attributes: []telegram.DocumentAttribute{&telegram.DocumentAttributeFilename{FileName: "track.flac"}},
	}
	m := &telegram.NewMessage{
		ID:     99,
		Sender: &telegram.UserObj{ID: 555, Username: "friend"},
		Message: &telegram.MessageObj{
			ID:     99,
			Date:   1700000000,
			PeerID: &telegram.PeerUser{UserID: 555},
			Media:  &telegram.MessageMediaDocument{Document: doc},
		},
	}

	event := EventFromMessage(m)
	require.NotNil(t, event)
	assert.Equal(t, int64(99), event.MessageID)
	assert.Equal(t, int64(555), event.ChatID)
	assert.Equal(t, "friend", event.Sender.Username)
	assert.Equal(t, int64(1700000000), event.Date.Unix())
	require.NotNil(t, event.Attachment)
	assert.Equal(t, "track.flac", event.Attachment.FileName)
}

func TestEventFromMessageWithoutDocument(t *testing.T) {
	t.Parallel()

	m := &telegram.NewMessage{
		ID:      1,
		Message: &telegram.MessageObj{ID: 1, Message: "hello", PeerID: &telegram.PeerUser{UserID: 3}},
	}

	event := EventFromMessage(m)
	require.NotNil(t, event)
	assert.Nil(t, event.Attachment)

	photo := &telegram.NewMessage{
		ID:      2,
		Message: &telegram.MessageObj{ID: 2, PeerID: &telegram.PeerUser{UserID: 3}, Media: &telegram.MessageMediaPhoto{}},
	}
	assert.Nil(t, EventFromMessage(photo).Attachment)

	assert.Nil(t, EventFromMessage(nil))
}

func TestMarkedPeerID(t *testing.T) {
	t.Parallel()

	assert.Equal(t, int64(555), MarkedPeerID(&telegram.PeerUser{UserID: 555}))
	assert.Equal(t, int64(-4242), MarkedPeerID(&telegram.PeerChat{ChatID: 4242}))
	assert.Equal(t, int64(-1001234567890), MarkedPeerID(&telegram.PeerChannel{ChannelID: 1234567890}))
	assert.Zero(t, MarkedPeerID(nil))
}

func TestEventFromMessageMatchesMarkedChatFilter(t *testing.T) {
	t.Parallel()

	filter, err := filterDomain.ParseChatFilter("-1001234567890,-4242")
	require.NoError(t, err)

	tests := []struct {
		name       string
		message    *telegram.MessageObj
		wantChat   int64
		wantSender int64
	}{
		{
			name:       "channel post",
			message:    &telegram.MessageObj{ID: 1, PeerID: &telegram.PeerChannel{ChannelID: 1234567890}},
			wantChat:   -1001234567890,
			wantSender: -1001234567890,
		},
		{
			name: "basic group message",
			message: &telegram.MessageObj{
				ID:     2,
				PeerID: &telegram.PeerChat{ChatID: 4242},
				FromID: &telegram.PeerUser{UserID: 777},
			},
			wantChat:   -4242,
			wantSender: 777,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			event := EventFromMessage(&telegram.NewMessage{ID: tt.message.ID, Message: tt.message})
			require.NotNil(t, event)
			assert.Equal(t, tt.wantChat, event.ChatID)
			assert.Equal(t, tt.wantSender, event.Sender.ID)
			assert.True(t, filter.Matches(event.Subject()))
		})
	}

	user := EventFromMessage(&telegram.NewMessage{
		ID:      3,
		Message: &telegram.MessageObj{ID: 3, PeerID: &telegram.PeerUser{UserID: 1234567890}},
	})
	assert.False(t, filter.Matches(user.Subject()))
}
