// Package errs defines the sentinel errors returned by the tgfileid packages.
//
// Every error returned by a codec wraps exactly one of these sentinels, so callers
// can branch with errors.Is:
//
//	id, err := fileid.Decode(s)
//	if errors.Is(err, errs.ErrTruncatedInput) {
//	    // the identifier was cut short
//	}
package errs

import "errors"

// Text and stream level errors.
var (
	// ErrInvalidEncoding is returned when the text form contains characters outside
	// the URL-safe base64 alphabet or has an impossible length.
	ErrInvalidEncoding = errors.New("invalid base64url encoding")
	// ErrCorruptEncoding is returned when the zero-run stream is malformed or when a
	// record carries bytes its layout does not account for.
	ErrCorruptEncoding = errors.New("corrupt record encoding")
	// ErrTruncatedInput is returned when a field needs more bytes than remain.
	ErrTruncatedInput = errors.New("truncated input")
)

// Record level errors.
var (
	// ErrUnknownGeometryVariant is returned when a photo record names a size source
	// code with no known layout.
	ErrUnknownGeometryVariant = errors.New("unknown photo size source")
	// ErrUnknownCategory is returned when a category name is not in the registry.
	ErrUnknownCategory = errors.New("unknown category")
	// ErrIncompleteRecord is returned by encoders when a field required by the
	// selected layout is absent.
	ErrIncompleteRecord = errors.New("incomplete record")
	// ErrInvalidRecord is returned by encoders when a field holds a value the
	// layout cannot represent.
	ErrInvalidRecord = errors.New("invalid record")
	// ErrUniqueIDMismatch is returned when a unique id does not match the one
	// derived from its file id.
	ErrUniqueIDMismatch = errors.New("unique id does not match file id")
)

// Bundle errors.
var (
	ErrInvalidHeaderSize  = errors.New("invalid bundle header size")
	ErrInvalidHeaderFlags = errors.New("invalid bundle header flags")
	ErrChecksumMismatch   = errors.New("bundle checksum mismatch")
	ErrInvalidEntryKind   = errors.New("invalid bundle entry kind")
	ErrNoEntriesAdded     = errors.New("no entries added to bundle")
	ErrEncoderFinished    = errors.New("bundle encoder already finished")
	ErrBundleTooLarge     = errors.New("bundle payload too large")
)
