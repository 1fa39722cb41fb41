// Package botapi decodes the file identifiers carried by bot API messages.
//
// The bot API reports every file as a pair of strings. This package decodes both,
// checks that they describe the same file and returns the typed records.
package botapi

import (
	"fmt"

	"github.com/go-telegram/bot/models"

	"github.com/dcdunkan/tgfileid/errs"
	"github.com/dcdunkan/tgfileid/fileid"
)

// Attachment is one file referenced by a message.
type Attachment struct {
	// Field is the message field the file was taken from, e.g. "voice".
	Field    string
	FileID   fileid.FileID
	UniqueID fileid.FileUniqueID
}

type fileRef struct {
	field    string
	fileID   string
	uniqueID string
}

// Attachments decodes every file attached to msg in field order.
//
// Only the largest size of a photo is returned. A nil message has no attachments.
//
// Returns:
//   - []Attachment: Decoded files
//   - error: A decode error for a malformed identifier, or ErrUniqueIDMismatch
//     when a file's unique id does not resolve from its file id
func Attachments(msg *models.Message) ([]Attachment, error) {
	if msg == nil {
		return nil, nil
	}

	refs := fileRefs(msg)
	if len(refs) == 0 {
		return nil, nil
	}

	out := make([]Attachment, 0, len(refs))
	for _, ref := range refs {
		a, err := decodeRef(ref)
		if err != nil {
			return nil, fmt.Errorf("message %d %s: %w", msg.ID, ref.field, err)
		}
		out = append(out, a)
	}

	return out, nil
}

// HasAttachments reports whether msg carries any file.
func HasAttachments(msg *models.Message) bool {
	return msg != nil && len(fileRefs(msg)) > 0
}

func decodeRef(ref fileRef) (Attachment, error) {
	id, err := fileid.Decode(ref.fileID)
	if err != nil {
		return Attachment{}, fmt.Errorf("file id: %w", err)
	}

	u, err := fileid.DecodeUnique(ref.uniqueID)
	if err != nil {
		return Attachment{}, fmt.Errorf("unique id: %w", err)
	}

	if derived := id.UniqueID(); !derived.Equal(u) {
		return Attachment{}, fmt.Errorf("%w: %s resolves to %s, message has %s",
			errs.ErrUniqueIDMismatch, ref.fileID, derived, ref.uniqueID)
	}

	return Attachment{Field: ref.field, FileID: id, UniqueID: u}, nil
}

func fileRefs(msg *models.Message) []fileRef {
	var refs []fileRef

	if n := len(msg.Photo); n > 0 {
		largest := msg.Photo[n-1]
		refs = append(refs, fileRef{"photo", largest.FileID, largest.FileUniqueID})
	}
	if msg.Animation != nil {
		refs = append(refs, fileRef{"animation", msg.Animation.FileID, msg.Animation.FileUniqueID})
	}
	if msg.Audio != nil {
		refs = append(refs, fileRef{"audio", msg.Audio.FileID, msg.Audio.FileUniqueID})
	}
	if msg.Document != nil {
		refs = append(refs, fileRef{"document", msg.Document.FileID, msg.Document.FileUniqueID})
	}
	if msg.Sticker != nil {
		refs = append(refs, fileRef{"sticker", msg.Sticker.FileID, msg.Sticker.FileUniqueID})
	}
	if msg.Video != nil {
		refs = append(refs, fileRef{"video", msg.Video.FileID, msg.Video.FileUniqueID})
	}
	if msg.VideoNote != nil {
		refs = append(refs, fileRef{"video_note", msg.VideoNote.FileID, msg.VideoNote.FileUniqueID})
	}
	if msg.Voice != nil {
		refs = append(refs, fileRef{"voice", msg.Voice.FileID, msg.Voice.FileUniqueID})
	}

	return refs
}
