package telegram

import (
	"time"

	"github.com/amarnathcjd/gogram/telegram"
	mediaDomain "github.com/reshetovitsme/telewaves/internal/modules/media/domain"
)

// EventFromMessage converts an incoming gogram message into a domain event.
// Messages without a document attachment yield an event with a nil Attachment.
func EventFromMessage(m *telegram.NewMessage) *mediaDomain.Event {
	if m == nil || m.Message == nil {
		return nil
	}

	chatID := MarkedPeerID(m.Message.PeerID)
	senderID := MarkedPeerID(m.Message.FromID)
	if senderID == 0 {
		// private chats and channel posts carry no separate author
		senderID = chatID
	}

	event := &mediaDomain.Event{
		MessageID: int64(m.ID),
		ChatID:    chatID,
		Sender:    mediaDomain.Sender{ID: senderID},
		Date:      time.Unix(int64(m.Message.Date), 0),
	}
	if m.Sender != nil {
		event.Sender.Username = m.Sender.Username
	}
	if m.Channel != nil {
		event.ChatUsername = m.Channel.Username
	}

	if doc, ok := documentOf(m.Message.Media); ok {
		event.Attachment = AttachmentFromDocument(doc, m.Message.Media)
	}

	return event
}

// AttachmentFromDocument describes a document for the download pipeline.
// handle is what FetchMedia later receives.
func AttachmentFromDocument(doc *telegram.DocumentObj, handle telegram.MessageMedia) *mediaDomain.Attachment {
	attachment := &mediaDomain.Attachment{
		DocumentID: doc.ID,
		MimeType:   doc.MimeType,
		Size:       int64(doc.Size),
		Type:       mediaDomain.MediaTypeDocument,
		Handle:     handle,
	}

	for _, attr := range doc.Attributes {
		switch a := attr.(type) {
		case *telegram.DocumentAttributeFilename:
			attachment.FileName = a.FileName
		case *telegram.DocumentAttributeAudio:
			if a.Voice {
				attachment.Type = mediaDomain.MediaTypeVoice
			} else {
				attachment.Type = mediaDomain.MediaTypeAudio
			}
		case *telegram.DocumentAttributeVideo:
			if attachment.Type == mediaDomain.MediaTypeDocument {
				attachment.Type = mediaDomain.MediaTypeVideo
			}
		case *telegram.DocumentAttributeAnimated:
			attachment.Type = mediaDomain.MediaTypeAnimation
		case *telegram.DocumentAttributeSticker:
			attachment.Type = mediaDomain.MediaTypeSticker
		}
	}

	return attachment
}

// channelIDOffset turns a channel ID into its marked form: -100<id>.
const channelIDOffset = 1_000_000_000_000

// MarkedPeerID returns the ID in the marked form users see and put in CHAT_FILTER:
// users are positive, basic groups are negated and channels get the -100 prefix.
// Unknown or missing peers yield 0.
func MarkedPeerID(peer any) int64 {
	switch p := peer.(type) {
	case *telegram.PeerUser:
		return p.UserID
	case *telegram.PeerChat:
		return -p.ChatID
	case *telegram.PeerChannel:
		return -(channelIDOffset + p.ChannelID)
	default:
		return 0
	}
}

func documentOf(media telegram.MessageMedia) (*telegram.DocumentObj, bool) {
	mediaDoc, ok := media.(*telegram.MessageMediaDocument)
	if !ok || mediaDoc.Document == nil {
		return nil, false
	}
	doc, ok := mediaDoc.Document.(*telegram.DocumentObj)
	return doc, ok
}
