package fileid

import (
	"fmt"

	"github.com/dcdunkan/tgfileid/category"
	"github.com/dcdunkan/tgfileid/compress"
	"github.com/dcdunkan/tgfileid/errs"
	"github.com/dcdunkan/tgfileid/internal/b64"
	"github.com/dcdunkan/tgfileid/internal/tl"
)

// sourceVersion is the first record version that stores the photo size source
// discriminant and the sub-version byte.
const sourceVersion = 4

var zeroRLE = compress.NewZeroRLECompressor()

// Decode parses the text form of a file id.
//
// Decoding is all or nothing: on error the returned FileID is the zero value, never
// a partially filled record.
//
// Returns:
//   - FileID: The decoded record
//   - error: one of errs.ErrInvalidEncoding, errs.ErrCorruptEncoding,
//     errs.ErrTruncatedInput or errs.ErrUnknownGeometryVariant, wrapped with the
//     field that failed
func Decode(s string) (FileID, error) {
	record, err := DecodeRecord(s)
	if err != nil {
		return FileID{}, err
	}

	return parseRecord(record)
}

// DecodeRecord turns the text form of either identifier family into its raw record.
func DecodeRecord(s string) ([]byte, error) {
	packed, err := b64.Decode(s)
	if err != nil {
		return nil, err
	}

	return zeroRLE.Decompress(packed)
}

// splitTrailer separates the version trailer from the record body.
//
// The version is the last byte, and the sub-version precedes it from version 4 on.
// Both are needed before the body can be read because the version decides whether
// a geometry discriminant is present.
func splitTrailer(record []byte) (body []byte, version, subVersion uint8, err error) {
	if len(record) == 0 {
		return nil, 0, 0, fmt.Errorf("%w: empty record has no version", errs.ErrTruncatedInput)
	}

	version = record[len(record)-1]
	if version < sourceVersion {
		return record[:len(record)-1], version, 0, nil
	}

	if len(record) < 2 {
		return nil, 0, 0, fmt.Errorf("%w: version %d record has no sub-version", errs.ErrTruncatedInput, version)
	}

	return record[:len(record)-2], version, record[len(record)-2], nil
}

func parseRecord(record []byte) (FileID, error) {
	body, version, subVersion, err := splitTrailer(record)
	if err != nil {
		return FileID{}, err
	}

	dec := tl.NewDecoder(body)

	tag, err := dec.Uint32()
	if err != nil {
		return FileID{}, fmt.Errorf("type tag: %w", err)
	}
	if tag&reservedTagBits != 0 {
		return FileID{}, fmt.Errorf("%w: type tag %#08x has reserved bits set", errs.ErrCorruptEncoding, tag)
	}

	dcID, err := dec.Int32()
	if err != nil {
		return FileID{}, fmt.Errorf("dc id: %w", err)
	}

	id := FileID{
		Version:    version,
		SubVersion: subVersion,
		DCID:       dcID,
		Category:   category.Category(tag &^ (WebLocationFlag | FileReferenceFlag)),
	}

	if tag&FileReferenceFlag != 0 {
		if id.Reference, err = dec.Bytes(); err != nil {
			return FileID{}, fmt.Errorf("file reference: %w", err)
		}
	}

	if tag&WebLocationFlag != 0 {
		id.Location, err = readWebLocation(dec)
	} else {
		id.Location, err = readRemoteLocation(dec, id.Category, version)
	}
	if err != nil {
		return FileID{}, err
	}

	if dec.Len() != 0 {
		return FileID{}, fmt.Errorf("%w: %d unexpected bytes before the version trailer", errs.ErrCorruptEncoding, dec.Len())
	}

	return id, nil
}

func readWebLocation(dec *tl.Decoder) (WebLocation, error) {
	url, err := dec.String()
	if err != nil {
		return WebLocation{}, fmt.Errorf("web url: %w", err)
	}

	loc := WebLocation{URL: url}
	if dec.Len() >= 8 {
		if loc.AccessHash, err = dec.Int64(); err != nil {
			return WebLocation{}, fmt.Errorf("web access hash: %w", err)
		}
		loc.HasAccessHash = true
	}

	return loc, nil
}

func readRemoteLocation(dec *tl.Decoder, c category.Category, version uint8) (RemoteLocation, error) {
	var loc RemoteLocation
	var err error

	if loc.ID, err = dec.Int64(); err != nil {
		return RemoteLocation{}, fmt.Errorf("id: %w", err)
	}
	if loc.AccessHash, err = dec.Int64(); err != nil {
		return RemoteLocation{}, fmt.Errorf("access hash: %w", err)
	}

	if !c.IsPhotoLike() {
		return loc, nil
	}

	geometry, err := readGeometry(dec, version)
	if err != nil {
		return RemoteLocation{}, err
	}
	loc.Photo = &geometry

	return loc, nil
}

// readGeometry reads the photo geometry. Records older than version 4 carry no
// discriminant; their only layout is the legacy one.
func readGeometry(dec *tl.Decoder, version uint8) (PhotoGeometry, error) {
	var geometry PhotoGeometry
	var err error

	if geometry.VolumeID, err = dec.Int64(); err != nil {
		return PhotoGeometry{}, fmt.Errorf("volume id: %w", err)
	}

	code := sourceCodeLegacy
	if version >= sourceVersion {
		if code, err = dec.Uint32(); err != nil {
			return PhotoGeometry{}, fmt.Errorf("photo size source: %w", err)
		}
	}

	if geometry.Source, err = readSource(dec, code); err != nil {
		return PhotoGeometry{}, err
	}

	if geometry.LocalID, err = dec.Int32(); err != nil {
		return PhotoGeometry{}, fmt.Errorf("local id: %w", err)
	}

	return geometry, nil
}
