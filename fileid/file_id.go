package fileid

import (
	"encoding/hex"

	"github.com/dcdunkan/tgfileid/category"
)

// Type tag flag bits. The category occupies the bits below them.
const (
	WebLocationFlag   uint32 = 1 << 24
	FileReferenceFlag uint32 = 1 << 25

	reservedTagBits = ^uint32(category.MaxValue) &^ (WebLocationFlag | FileReferenceFlag)
)

// ownerIDMask selects the bits of a sticker id that embed its owner.
const ownerIDMask uint64 = 72057589742960640

// FileID is a decoded long-form file identifier.
//
// A FileID is a plain value: the zero value is not encodable (it has no Location),
// and two FileIDs are the same identifier when their fields are equal.
type FileID struct {
	// Version is the record format version, stored as the last byte.
	Version uint8
	// SubVersion is stored before Version when Version >= 4.
	SubVersion uint8
	DCID       int32
	Category   category.Category
	// Reference is the file reference blob; nil when absent. An empty non-nil
	// slice is a present, zero-length reference.
	Reference []byte
	// Location is either a WebLocation or a RemoteLocation.
	Location Location
}

// Web returns the web location of id, if it has one.
func (id FileID) Web() (WebLocation, bool) {
	loc, ok := id.Location.(WebLocation)
	return loc, ok
}

// Remote returns the remote location of id, if it has one.
func (id FileID) Remote() (RemoteLocation, bool) {
	loc, ok := id.Location.(RemoteLocation)
	return loc, ok
}

// Geometry returns the photo geometry of id, if it has one.
func (id FileID) Geometry() (PhotoGeometry, bool) {
	loc, ok := id.Location.(RemoteLocation)
	if !ok || loc.Photo == nil {
		return PhotoGeometry{}, false
	}

	return *loc.Photo, true
}

// ReferenceHex returns the file reference as lowercase hex, or "" when absent.
func (id FileID) ReferenceHex() string {
	return hex.EncodeToString(id.Reference)
}

// OwnerID returns the id of the user that owns a sticker.
//
// Only sticker records of version 2 or 4 embed an owner; every other record
// returns 0.
func (id FileID) OwnerID() uint32 {
	if id.Category != category.Sticker || (id.Version != 2 && id.Version != 4) {
		return 0
	}

	remote, ok := id.Location.(RemoteLocation)
	if !ok {
		return 0
	}

	return uint32((uint64(remote.ID) & ownerIDMask) >> 32) //nolint:gosec
}

// UniqueID returns the unique id that id reduces to.
func (id FileID) UniqueID() FileUniqueID {
	return UniqueFromFileID(id)
}

// String returns the text form of id, or "" if id cannot be encoded.
func (id FileID) String() string {
	s, err := Encode(id)
	if err != nil {
		return ""
	}

	return s
}

// MarshalText implements encoding.TextMarshaler.
func (id FileID) MarshalText() ([]byte, error) {
	s, err := Encode(id)
	if err != nil {
		return nil, err
	}

	return []byte(s), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *FileID) UnmarshalText(text []byte) error {
	decoded, err := Decode(string(text))
	if err != nil {
		return err
	}
	*id = decoded

	return nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler over the raw record, the
// form before zero-run and base64 encoding.
func (id *FileID) UnmarshalBinary(data []byte) error {
	decoded, err := parseRecord(data)
	if err != nil {
		return err
	}
	*id = decoded

	return nil
}
