// Package b64 implements the URL-safe base64 form used by identifier strings.
//
// Output never carries padding. Input may carry up to two trailing '=' characters,
// which are ignored.
package b64

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/dcdunkan/tgfileid/errs"
)

// strictEncoding rejects non-zero trailing bits, so every accepted string is the
// one Encode produces for its bytes.
var strictEncoding = base64.RawURLEncoding.Strict()

// Encode returns the unpadded URL-safe base64 form of data.
func Encode(data []byte) string {
	return base64.RawURLEncoding.EncodeToString(data)
}

// Decode decodes s, with or without padding.
//
// It fails with errs.ErrInvalidEncoding on characters outside the URL-safe alphabet,
// on lengths no base64 encoder can produce and on non-zero trailing bits.
func Decode(s string) ([]byte, error) {
	trimmed := strings.TrimSuffix(s, "=")
	trimmed = strings.TrimSuffix(trimmed, "=")

	for i := 0; i < len(trimmed); i++ {
		if !isURLSafe(trimmed[i]) {
			return nil, fmt.Errorf("%w: unexpected character %q at offset %d", errs.ErrInvalidEncoding, trimmed[i], i)
		}
	}

	if len(trimmed)%4 == 1 {
		return nil, fmt.Errorf("%w: length %d is not a valid base64 length", errs.ErrInvalidEncoding, len(trimmed))
	}

	data, err := strictEncoding.DecodeString(trimmed)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrInvalidEncoding, err)
	}

	return data, nil
}

func isURLSafe(c byte) bool {
	switch {
	case c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z', c >= '0' && c <= '9':
		return true
	case c == '-' || c == '_':
		return true
	default:
		return false
	}
}
