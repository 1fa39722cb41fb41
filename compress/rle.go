package compress

import (
	"fmt"

	"github.com/dcdunkan/tgfileid/errs"
)

// MaxZeroRun is the longest zero run a single (0x00, n) pair can describe.
const MaxZeroRun = 254

// ZeroRLECompressor implements the zero-run encoding applied to every identifier
// record before it is base64 encoded.
//
// A run of n zero bytes (1 <= n <= 254) becomes the pair (0x00, n). Longer runs are
// split into consecutive pairs of at most 254. All other bytes are copied as-is.
type ZeroRLECompressor struct{}

var _ Codec = (*ZeroRLECompressor)(nil)

// NewZeroRLECompressor creates a new zero-run compressor.
func NewZeroRLECompressor() ZeroRLECompressor {
	return ZeroRLECompressor{}
}

// Compress zero-run encodes data. It never fails.
func (c ZeroRLECompressor) Compress(data []byte) ([]byte, error) {
	return AppendZeroRLE(make([]byte, 0, len(data)), data), nil
}

// Decompress expands every (0x00, n) pair into n zero bytes.
//
// The count byte is taken as-is, as the platform does: counts of 0 and 255 are
// accepted even though Compress never emits them.
//
// Returns:
//   - []byte: Expanded record (empty for empty input)
//   - error: errs.ErrCorruptEncoding if the stream ends on a zero byte with no count
//     or expands past maxDecodedSize
func (c ZeroRLECompressor) Decompress(data []byte) ([]byte, error) {
	return appendZeroRLEDecoded(make([]byte, 0, len(data)*2), data, maxDecodedSize)
}

// AppendZeroRLE appends the zero-run encoding of src to dst and returns the
// extended slice.
func AppendZeroRLE(dst, src []byte) []byte {
	run := 0
	for _, b := range src {
		if b == 0 {
			run++
			if run == MaxZeroRun {
				dst = append(dst, 0x00, MaxZeroRun)
				run = 0
			}

			continue
		}

		if run > 0 {
			dst = append(dst, 0x00, byte(run))
			run = 0
		}
		dst = append(dst, b)
	}

	if run > 0 {
		dst = append(dst, 0x00, byte(run))
	}

	return dst
}

// AppendZeroRLEDecoded appends the expansion of src to dst and returns the extended
// slice. The output is bounded only by the 255x expansion of src.
func AppendZeroRLEDecoded(dst, src []byte) ([]byte, error) {
	return appendZeroRLEDecoded(dst, src, -1)
}

// appendZeroRLEDecoded fails once the output would exceed limit bytes; a negative
// limit disables the check.
func appendZeroRLEDecoded(dst, src []byte, limit int) ([]byte, error) {
	for i := 0; i < len(src); i++ {
		if src[i] != 0 {
			dst = append(dst, src[i])
		} else {
			if i+1 >= len(src) {
				return nil, fmt.Errorf("%w: zero byte at offset %d has no run length", errs.ErrCorruptEncoding, i)
			}

			i++
			for n := int(src[i]); n > 0; n-- {
				dst = append(dst, 0x00)
			}
		}

		if limit >= 0 && len(dst) > limit {
			return nil, fmt.Errorf("%w: zero runs expand past %d bytes", errs.ErrCorruptEncoding, limit)
		}
	}

	return dst, nil
}
