package fileid

import (
	"fmt"

	"github.com/dcdunkan/tgfileid/category"
	"github.com/dcdunkan/tgfileid/compress"
	"github.com/dcdunkan/tgfileid/errs"
	"github.com/dcdunkan/tgfileid/internal/b64"
	"github.com/dcdunkan/tgfileid/internal/pool"
	"github.com/dcdunkan/tgfileid/internal/tl"
)

// Encode produces the text form of id.
//
// The output is deterministic, and decoding it yields a FileID equal to id.
//
// Returns:
//   - string: Base64url text without padding
//   - error: errs.ErrIncompleteRecord when a required component is missing,
//     errs.ErrInvalidRecord when a field cannot be represented
func Encode(id FileID) (string, error) {
	bb := pool.GetRecordBuffer()
	defer pool.PutRecordBuffer(bb)

	record, err := appendRecord(bb.B, id)
	if err != nil {
		return "", err
	}
	bb.B = record

	return EncodeRecord(bb.B), nil
}

// EncodeRecord turns a raw record of either identifier family into its text form.
func EncodeRecord(record []byte) string {
	bb := pool.GetRecordBuffer()
	defer pool.PutRecordBuffer(bb)

	bb.B = compress.AppendZeroRLE(bb.B, record)

	return b64.Encode(bb.B)
}

// MarshalBinary implements encoding.BinaryMarshaler. The result is the raw record,
// before zero-run and base64 encoding.
func (id FileID) MarshalBinary() ([]byte, error) {
	bb := pool.GetRecordBuffer()
	defer pool.PutRecordBuffer(bb)

	record, err := appendRecord(bb.B, id)
	if err != nil {
		return nil, err
	}
	bb.B = record

	return bb.Copy(), nil
}

func validate(id FileID) error {
	if !id.Category.Valid() {
		return fmt.Errorf("%w: category %d overlaps the flag bits", errs.ErrInvalidRecord, id.Category)
	}

	switch loc := id.Location.(type) {
	case nil:
		return fmt.Errorf("%w: no location", errs.ErrIncompleteRecord)

	case WebLocation:
		if loc.URL == "" {
			return fmt.Errorf("%w: web location has no url", errs.ErrIncompleteRecord)
		}

	case RemoteLocation:
		if !id.Category.IsPhotoLike() {
			if loc.Photo != nil {
				return fmt.Errorf("%w: %s carries no photo geometry", errs.ErrInvalidRecord, id.Category)
			}

			return nil
		}
		if loc.Photo == nil {
			return fmt.Errorf("%w: %s needs photo geometry", errs.ErrIncompleteRecord, id.Category)
		}
		if loc.Photo.Source == nil {
			return fmt.Errorf("%w: photo geometry has no source", errs.ErrIncompleteRecord)
		}
		if id.Version < sourceVersion && loc.Photo.Source.Kind() != SourceLegacy {
			return fmt.Errorf("%w: %s source needs version %d, have %d",
				errs.ErrInvalidRecord, loc.Photo.Source.Kind(), sourceVersion, id.Version)
		}
		if thumb, ok := loc.Photo.Source.(ThumbnailSource); ok && len(thumb.ThumbType) > thumbTypeSize {
			return fmt.Errorf("%w: thumbnail type %q is longer than %d bytes",
				errs.ErrInvalidRecord, thumb.ThumbType, thumbTypeSize)
		}

	default:
		return fmt.Errorf("%w: unsupported location %T", errs.ErrInvalidRecord, loc)
	}

	return nil
}

// appendRecord appends the raw record of id to dst.
func appendRecord(dst []byte, id FileID) ([]byte, error) {
	if err := validate(id); err != nil {
		return nil, err
	}

	tag := uint32(id.Category)
	if id.Reference != nil {
		tag |= FileReferenceFlag
	}

	web, isWeb := id.Location.(WebLocation)
	if isWeb {
		tag |= WebLocationFlag
	}

	enc := tl.NewEncoder(dst)
	enc.PutUint32(tag)
	enc.PutInt32(id.DCID)

	if id.Reference != nil {
		enc.PutBytes(id.Reference)
	}

	if isWeb {
		enc.PutString(web.URL)
		if web.HasAccessHash {
			enc.PutInt64(web.AccessHash)
		}
	} else {
		putRemoteLocation(enc, id.Location.(RemoteLocation), id.Category, id.Version)
	}

	if id.Version >= sourceVersion {
		enc.PutByte(id.SubVersion)
	}
	enc.PutByte(id.Version)

	return enc.Bytes(), nil
}

func putRemoteLocation(enc *tl.Encoder, loc RemoteLocation, c category.Category, version uint8) {
	enc.PutInt64(loc.ID)
	enc.PutInt64(loc.AccessHash)

	if !c.IsPhotoLike() {
		return
	}

	enc.PutInt64(loc.Photo.VolumeID)
	if version >= sourceVersion {
		enc.PutUint32(loc.Photo.Source.code())
	}
	loc.Photo.Source.put(enc)
	enc.PutInt32(loc.Photo.LocalID)
}
