package fileid

import (
	"fmt"
	"strings"

	"github.com/dcdunkan/tgfileid/category"
	"github.com/dcdunkan/tgfileid/errs"
	"github.com/dcdunkan/tgfileid/internal/tl"
)

// PhotoSizeSourceKind names a photo size source variant.
type PhotoSizeSourceKind uint8

const (
	SourceLegacy PhotoSizeSourceKind = iota
	SourceThumbnail
	SourceDialogPhoto
	SourceStickerSetThumbnail
)

func (k PhotoSizeSourceKind) String() string {
	switch k {
	case SourceLegacy:
		return "legacy"
	case SourceThumbnail:
		return "thumbnail"
	case SourceDialogPhoto:
		return "dialogPhoto"
	case SourceStickerSetThumbnail:
		return "stickerSetThumbnail"
	default:
		return "unknown"
	}
}

// Discriminant values as stored in version 4 records.
const (
	sourceCodeLegacy              uint32 = 0
	sourceCodeThumbnail           uint32 = 1
	sourceCodeDialogPhotoSmall    uint32 = 2
	sourceCodeDialogPhotoBig      uint32 = 3
	sourceCodeStickerSetThumbnail uint32 = 4
)

// thumbTypeSize is the fixed width of a thumbnail type name, zero padded.
const thumbTypeSize = 4

// PhotoSizeSource describes where a photo-like file comes from. It is one of
// LegacySource, ThumbnailSource, DialogPhotoSource or StickerSetThumbnailSource;
// the set is closed.
type PhotoSizeSource interface {
	Kind() PhotoSizeSourceKind

	code() uint32
	put(enc *tl.Encoder)
}

// LegacySource is the source of photos stored before sources were recorded.
type LegacySource struct {
	Secret int64
}

// ThumbnailSource is a thumbnail of another file.
type ThumbnailSource struct {
	// FileType is the category of the file the thumbnail belongs to.
	FileType category.Category
	// ThumbType is the thumbnail size name, at most 4 bytes ("s", "m", "x", ...).
	ThumbType string
}

// DialogPhotoSource is a chat or user profile picture.
type DialogPhotoSource struct {
	DialogID         int64
	DialogAccessHash int64
	// Big selects the big variant of the picture; false means small.
	Big bool
}

// StickerSetThumbnailSource is the thumbnail of a sticker set.
type StickerSetThumbnailSource struct {
	SetID         int64
	SetAccessHash int64
}

var (
	_ PhotoSizeSource = LegacySource{}
	_ PhotoSizeSource = ThumbnailSource{}
	_ PhotoSizeSource = DialogPhotoSource{}
	_ PhotoSizeSource = StickerSetThumbnailSource{}
)

func (LegacySource) Kind() PhotoSizeSourceKind { return SourceLegacy }
func (LegacySource) code() uint32              { return sourceCodeLegacy }

func (s LegacySource) put(enc *tl.Encoder) {
	enc.PutInt64(s.Secret)
}

func (ThumbnailSource) Kind() PhotoSizeSourceKind { return SourceThumbnail }
func (ThumbnailSource) code() uint32              { return sourceCodeThumbnail }

func (s ThumbnailSource) put(enc *tl.Encoder) {
	var name [thumbTypeSize]byte
	copy(name[:], s.ThumbType)

	enc.PutUint32(uint32(s.FileType))
	enc.PutRaw(name[:])
}

func (DialogPhotoSource) Kind() PhotoSizeSourceKind { return SourceDialogPhoto }

func (s DialogPhotoSource) code() uint32 {
	if s.Big {
		return sourceCodeDialogPhotoBig
	}

	return sourceCodeDialogPhotoSmall
}

func (s DialogPhotoSource) put(enc *tl.Encoder) {
	enc.PutInt64(s.DialogID)
	enc.PutInt64(s.DialogAccessHash)
}

func (StickerSetThumbnailSource) Kind() PhotoSizeSourceKind { return SourceStickerSetThumbnail }
func (StickerSetThumbnailSource) code() uint32              { return sourceCodeStickerSetThumbnail }

func (s StickerSetThumbnailSource) put(enc *tl.Encoder) {
	enc.PutInt64(s.SetID)
	enc.PutInt64(s.SetAccessHash)
}

// readSource reads the variant fields selected by code.
func readSource(dec *tl.Decoder, code uint32) (PhotoSizeSource, error) {
	switch code {
	case sourceCodeLegacy:
		secret, err := dec.Int64()
		if err != nil {
			return nil, fmt.Errorf("legacy secret: %w", err)
		}

		return LegacySource{Secret: secret}, nil

	case sourceCodeThumbnail:
		fileType, err := dec.Uint32()
		if err != nil {
			return nil, fmt.Errorf("thumbnail file type: %w", err)
		}
		name, err := dec.Raw(thumbTypeSize)
		if err != nil {
			return nil, fmt.Errorf("thumbnail type: %w", err)
		}

		return ThumbnailSource{
			FileType:  category.Category(fileType),
			ThumbType: strings.TrimRight(string(name), "\x00"),
		}, nil

	case sourceCodeDialogPhotoSmall, sourceCodeDialogPhotoBig:
		dialogID, err := dec.Int64()
		if err != nil {
			return nil, fmt.Errorf("dialog id: %w", err)
		}
		accessHash, err := dec.Int64()
		if err != nil {
			return nil, fmt.Errorf("dialog access hash: %w", err)
		}

		return DialogPhotoSource{
			DialogID:         dialogID,
			DialogAccessHash: accessHash,
			Big:              code == sourceCodeDialogPhotoBig,
		}, nil

	case sourceCodeStickerSetThumbnail:
		setID, err := dec.Int64()
		if err != nil {
			return nil, fmt.Errorf("sticker set id: %w", err)
		}
		accessHash, err := dec.Int64()
		if err != nil {
			return nil, fmt.Errorf("sticker set access hash: %w", err)
		}

		return StickerSetThumbnailSource{SetID: setID, SetAccessHash: accessHash}, nil

	default:
		return nil, fmt.Errorf("%w: code %d", errs.ErrUnknownGeometryVariant, code)
	}
}
