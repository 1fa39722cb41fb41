package fileid

import (
	"bytes"
	"fmt"

	"github.com/dcdunkan/tgfileid/category"
	"github.com/dcdunkan/tgfileid/errs"
	"github.com/dcdunkan/tgfileid/internal/hash"
	"github.com/dcdunkan/tgfileid/internal/pool"
	"github.com/dcdunkan/tgfileid/internal/tl"
)

// FileUniqueID is a decoded short-form identifier. It names the file itself, so two
// file ids issued for the same file reduce to equal FileUniqueIDs.
//
// Which fields are meaningful depends on Category:
//   - UniqueWeb: URL
//   - UniquePhoto: VolumeID and LocalID
//   - all others: ID
//
// Fields outside that set are not encoded and take no part in identity. A unique id
// derived from a photo keeps the photo's ID while a decoded one has ID 0, so compare
// with Equal or Key rather than ==.
type FileUniqueID struct {
	Category category.UniqueCategory
	ID       int64
	VolumeID int64
	LocalID  int32
	URL      string
}

// UniqueFromFileID reduces id to its unique id. It never fails: every FileID,
// encodable or not, has a projection.
func UniqueFromFileID(id FileID) FileUniqueID {
	switch loc := id.Location.(type) {
	case WebLocation:
		return FileUniqueID{Category: category.UniqueWeb, URL: loc.URL}

	case RemoteLocation:
		u := FileUniqueID{Category: id.Category.Unique(), ID: loc.ID}
		if loc.Photo != nil {
			u.VolumeID = loc.Photo.VolumeID
			u.LocalID = loc.Photo.LocalID
		}

		return u

	default:
		return FileUniqueID{Category: id.Category.Unique()}
	}
}

// DecodeUnique parses the text form of a unique id.
func DecodeUnique(s string) (FileUniqueID, error) {
	record, err := DecodeRecord(s)
	if err != nil {
		return FileUniqueID{}, err
	}

	return parseUniqueRecord(record)
}

// EncodeUnique produces the text form of u.
func EncodeUnique(u FileUniqueID) (string, error) {
	if u.Category == category.UniqueWeb && u.URL == "" {
		return "", fmt.Errorf("%w: web unique id has no url", errs.ErrIncompleteRecord)
	}

	bb := pool.GetRecordBuffer()
	defer pool.PutRecordBuffer(bb)

	bb.B = appendUniqueRecord(bb.B, u)

	return EncodeRecord(bb.B), nil
}

// Key returns a 64-bit hash of the unique record, stable across processes. Equal
// unique ids have equal keys.
func (u FileUniqueID) Key() uint64 {
	bb := pool.GetRecordBuffer()
	defer pool.PutRecordBuffer(bb)

	bb.B = appendUniqueRecord(bb.B, u)

	return hash.Sum(bb.B)
}

// Equal reports whether u and v encode to the same unique record.
func (u FileUniqueID) Equal(v FileUniqueID) bool {
	a, b := pool.GetRecordBuffer(), pool.GetRecordBuffer()
	defer pool.PutRecordBuffer(a)
	defer pool.PutRecordBuffer(b)

	a.B = appendUniqueRecord(a.B, u)
	b.B = appendUniqueRecord(b.B, v)

	return bytes.Equal(a.B, b.B)
}

// String returns the text form of u, or "" if u cannot be encoded.
func (u FileUniqueID) String() string {
	s, err := EncodeUnique(u)
	if err != nil {
		return ""
	}

	return s
}

// MarshalText implements encoding.TextMarshaler.
func (u FileUniqueID) MarshalText() ([]byte, error) {
	s, err := EncodeUnique(u)
	if err != nil {
		return nil, err
	}

	return []byte(s), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (u *FileUniqueID) UnmarshalText(text []byte) error {
	decoded, err := DecodeUnique(string(text))
	if err != nil {
		return err
	}
	*u = decoded

	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler over the raw unique record.
func (u FileUniqueID) MarshalBinary() ([]byte, error) {
	if u.Category == category.UniqueWeb && u.URL == "" {
		return nil, fmt.Errorf("%w: web unique id has no url", errs.ErrIncompleteRecord)
	}

	return appendUniqueRecord(nil, u), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler over the raw unique record.
func (u *FileUniqueID) UnmarshalBinary(data []byte) error {
	decoded, err := parseUniqueRecord(data)
	if err != nil {
		return err
	}
	*u = decoded

	return nil
}

func appendUniqueRecord(dst []byte, u FileUniqueID) []byte {
	enc := tl.NewEncoder(dst)
	enc.PutUint32(uint32(u.Category))

	switch u.Category {
	case category.UniqueWeb:
		enc.PutString(u.URL)
	case category.UniquePhoto:
		enc.PutInt64(u.VolumeID)
		enc.PutInt32(u.LocalID)
	default:
		enc.PutInt64(u.ID)
	}

	return enc.Bytes()
}

func parseUniqueRecord(record []byte) (FileUniqueID, error) {
	dec := tl.NewDecoder(record)

	header, err := dec.Uint32()
	if err != nil {
		return FileUniqueID{}, fmt.Errorf("unique type: %w", err)
	}

	u := FileUniqueID{Category: category.UniqueCategory(header)}

	switch u.Category {
	case category.UniqueWeb:
		if u.URL, err = dec.String(); err != nil {
			return FileUniqueID{}, fmt.Errorf("web url: %w", err)
		}

	case category.UniquePhoto:
		if u.VolumeID, err = dec.Int64(); err != nil {
			return FileUniqueID{}, fmt.Errorf("volume id: %w", err)
		}
		if u.LocalID, err = dec.Int32(); err != nil {
			return FileUniqueID{}, fmt.Errorf("local id: %w", err)
		}

	default:
		if u.ID, err = dec.Int64(); err != nil {
			return FileUniqueID{}, fmt.Errorf("id: %w", err)
		}
	}

	if dec.Len() != 0 {
		return FileUniqueID{}, fmt.Errorf("%w: %d unexpected bytes after unique record", errs.ErrCorruptEncoding, dec.Len())
	}

	return u, nil
}
