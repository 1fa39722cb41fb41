package fileid

import (
	"fmt"

	"github.com/gotd/td/tg"

	"github.com/dcdunkan/tgfileid/category"
	"github.com/dcdunkan/tgfileid/errs"
)

// Bot API dialog ids encode the peer kind in their range.
const (
	channelDialogOffset = -1000000000000
	minChatDialogID     = -999999999999
)

// InputLocation builds the MTProto download location for id.
//
// Web files are fetched by URL and temp files are never downloadable; both fail
// with errs.ErrInvalidRecord.
func InputLocation(id FileID) (tg.InputFileLocationClass, error) {
	remote, ok := id.Location.(RemoteLocation)
	if !ok {
		return nil, fmt.Errorf("%w: %s has no remote location", errs.ErrInvalidRecord, id.Category)
	}

	switch id.Category {
	case category.Encrypted, category.EncryptedThumbnail:
		return &tg.InputEncryptedFileLocation{ID: remote.ID, AccessHash: remote.AccessHash}, nil
	case category.Secure, category.SecureRaw:
		return &tg.InputSecureFileLocation{ID: remote.ID, AccessHash: remote.AccessHash}, nil
	case category.Temp:
		return nil, fmt.Errorf("%w: temp files have no download location", errs.ErrInvalidRecord)
	}

	if !id.Category.IsPhotoLike() {
		return &tg.InputDocumentFileLocation{
			ID:            remote.ID,
			AccessHash:    remote.AccessHash,
			FileReference: id.Reference,
		}, nil
	}

	if remote.Photo == nil {
		return nil, fmt.Errorf("%w: %s needs photo geometry", errs.ErrIncompleteRecord, id.Category)
	}

	switch source := remote.Photo.Source.(type) {
	case LegacySource:
		return &tg.InputPhotoLegacyFileLocation{
			ID:            remote.ID,
			AccessHash:    remote.AccessHash,
			FileReference: id.Reference,
			VolumeID:      remote.Photo.VolumeID,
			LocalID:       int(remote.Photo.LocalID),
			Secret:        source.Secret,
		}, nil

	case ThumbnailSource:
		if source.FileType == category.Photo || source.FileType == category.ProfilePhoto {
			return &tg.InputPhotoFileLocation{
				ID:            remote.ID,
				AccessHash:    remote.AccessHash,
				FileReference: id.Reference,
				ThumbSize:     source.ThumbType,
			}, nil
		}

		return &tg.InputDocumentFileLocation{
			ID:            remote.ID,
			AccessHash:    remote.AccessHash,
			FileReference: id.Reference,
			ThumbSize:     source.ThumbType,
		}, nil

	case DialogPhotoSource:
		return &tg.InputPeerPhotoFileLocation{
			Big:     source.Big,
			Peer:    dialogPeer(source.DialogID, source.DialogAccessHash),
			PhotoID: remote.ID,
		}, nil

	case StickerSetThumbnailSource:
		return &tg.InputStickerSetThumb{
			Stickerset:   &tg.InputStickerSetID{ID: source.SetID, AccessHash: source.SetAccessHash},
			ThumbVersion: int(remote.Photo.LocalID),
		}, nil

	default:
		return nil, fmt.Errorf("%w: photo geometry has no source", errs.ErrIncompleteRecord)
	}
}

func dialogPeer(dialogID, accessHash int64) tg.InputPeerClass {
	switch {
	case dialogID > 0:
		return &tg.InputPeerUser{UserID: dialogID, AccessHash: accessHash}
	case dialogID >= minChatDialogID:
		return &tg.InputPeerChat{ChatID: -dialogID}
	default:
		return &tg.InputPeerChannel{ChannelID: channelDialogOffset - dialogID, AccessHash: accessHash}
	}
}
