// Package tgfileid converts between the messaging platform's bot API media
// identifiers and structured records.
//
// Two identifier families exist. A file id (the long form) carries everything needed
// to download or re-send a file: data center, file reference, location and, for
// photos, the size variant. A file unique id (the short form) names the file itself
// and is only good for equality and deduplication.
//
// # Basic Usage
//
// Decoding a file id and reducing it to its unique id:
//
//	import "github.com/dcdunkan/tgfileid"
//
//	id, err := tgfileid.DecodeFileID(message.Voice.FileID)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(id.Category, id.DCID)
//
//	unique := tgfileid.UniqueIDFromFileID(id)
//	text, _ := tgfileid.EncodeFileUniqueID(unique) // equals message.Voice.FileUniqueID
//
// Encoding is the exact inverse of decoding: EncodeFileID(DecodeFileID(s)) == s for
// every identifier the platform issues.
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the fileid package.
// Byte layouts, photo size sources and the MTProto location builder live in fileid;
// the category registry lives in category; bundle stores many identifiers at once.
// botapi decodes the identifier pairs attached to bot API messages.
package tgfileid

import (
	"github.com/gotd/td/tg"

	"github.com/dcdunkan/tgfileid/bundle"
	"github.com/dcdunkan/tgfileid/fileid"
	"github.com/dcdunkan/tgfileid/format"
)

// DecodeFileID parses the text form of a file id.
//
// Returns:
//   - fileid.FileID: The decoded record
//   - error: errs.ErrInvalidEncoding, errs.ErrCorruptEncoding, errs.ErrTruncatedInput
//     or errs.ErrUnknownGeometryVariant
func DecodeFileID(text string) (fileid.FileID, error) {
	return fileid.Decode(text)
}

// EncodeFileID produces the text form of a file id.
//
// Returns:
//   - string: URL-safe base64 without padding
//   - error: errs.ErrIncompleteRecord or errs.ErrInvalidRecord
func EncodeFileID(id fileid.FileID) (string, error) {
	return fileid.Encode(id)
}

// DecodeFileUniqueID parses the text form of a file unique id.
func DecodeFileUniqueID(text string) (fileid.FileUniqueID, error) {
	return fileid.DecodeUnique(text)
}

// EncodeFileUniqueID produces the text form of a file unique id.
func EncodeFileUniqueID(u fileid.FileUniqueID) (string, error) {
	return fileid.EncodeUnique(u)
}

// UniqueIDFromFileID reduces a file id to the unique id of the file it names.
//
// Example:
//
//	id, _ := tgfileid.DecodeFileID(a)
//	other, _ := tgfileid.DecodeFileID(b)
//	same := tgfileid.UniqueIDFromFileID(id) == tgfileid.UniqueIDFromFileID(other)
func UniqueIDFromFileID(id fileid.FileID) fileid.FileUniqueID {
	return fileid.UniqueFromFileID(id)
}

// OwnerIDOf returns the id of the user that owns a sticker, or 0 for records that do
// not embed one.
func OwnerIDOf(id fileid.FileID) uint32 {
	return id.OwnerID()
}

// InputLocationOf builds the MTProto download location of a file id.
func InputLocationOf(id fileid.FileID) (tg.InputFileLocationClass, error) {
	return fileid.InputLocation(id)
}

var defaultBundleOptions = []bundle.EncoderOption{
	bundle.WithCompression(format.CompressionZstd),
}

// NewBundleEncoder creates a bundle encoder with the given options.
//
// Available options:
//   - bundle.WithCompression(format.CompressionNone|Zstd|S2|LZ4|ZeroRLE)
//   - bundle.WithEntryCapacity(n)
func NewBundleEncoder(opts ...bundle.EncoderOption) (*bundle.Encoder, error) {
	all := make([]bundle.EncoderOption, 0, len(defaultBundleOptions)+len(opts))
	all = append(all, defaultBundleOptions...)
	all = append(all, opts...)

	return bundle.NewEncoder(all...)
}

// DecodeBundle decodes a bundle produced by a bundle encoder.
func DecodeBundle(data []byte) (*bundle.Bundle, error) {
	return bundle.Decode(data)
}
