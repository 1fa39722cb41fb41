package bundle

import (
	"github.com/dcdunkan/tgfileid/endian"
	"github.com/dcdunkan/tgfileid/errs"
	"github.com/dcdunkan/tgfileid/format"
)

const (
	// HeaderSize is the fixed size of a bundle header in bytes.
	HeaderSize = 24

	// MagicV1 identifies the bundle format.
	MagicV1 uint16 = 0x1DF1
	// FormatVersion is the only layout version this package reads and writes.
	FormatVersion uint8 = 1
)

var validCompressions = map[format.CompressionType]struct{}{
	format.CompressionNone:    {},
	format.CompressionZstd:    {},
	format.CompressionS2:      {},
	format.CompressionLZ4:     {},
	format.CompressionZeroRLE: {},
}

// Header is the fixed-size header at the front of every bundle.
// All fields are little-endian.
type Header struct {
	Magic       uint16 // 2 bytes, offset 0-1
	Version     uint8  // 1 byte, offset 2
	Compression uint8  // 1 byte, offset 3
	// EntryCount is the number of entries in the payload.
	EntryCount uint32 // 4 bytes, offset 4-7
	// PayloadSize is the uncompressed size of the payload in bytes.
	PayloadSize uint32 // 4 bytes, offset 8-11

	Reserved [4]byte // Reserved for future use, must be zero, offset 12-15

	// Checksum is the xxHash64 of the uncompressed payload.
	Checksum uint64 // 8 bytes, offset 16-23
}

// NewHeader creates a header for a bundle compressed with compression.
func NewHeader(compression format.CompressionType) *Header {
	return &Header{
		Magic:       MagicV1,
		Version:     FormatVersion,
		Compression: uint8(compression),
	}
}

// Parse parses the header from a byte slice.
// It returns an error if the data is not exactly HeaderSize bytes or if the flags are invalid.
func (h *Header) Parse(data []byte) error {
	if len(data) != HeaderSize {
		return errs.ErrInvalidHeaderSize
	}

	engine := h.GetEndianEngine()

	h.Magic = engine.Uint16(data[0:2])
	h.Version = data[2]
	h.Compression = data[3]
	h.EntryCount = engine.Uint32(data[4:8])
	h.PayloadSize = engine.Uint32(data[8:12])
	copy(h.Reserved[:], data[12:16])
	h.Checksum = engine.Uint64(data[16:24])

	return h.Validate()
}

// Bytes serializes the header into a new HeaderSize byte slice.
func (h *Header) Bytes() []byte {
	return h.AppendTo(make([]byte, 0, HeaderSize))
}

// AppendTo appends the serialized header to dst.
func (h *Header) AppendTo(dst []byte) []byte {
	engine := h.GetEndianEngine()

	dst = engine.AppendUint16(dst, h.Magic)
	dst = append(dst, h.Version, h.Compression)
	dst = engine.AppendUint32(dst, h.EntryCount)
	dst = engine.AppendUint32(dst, h.PayloadSize)
	dst = append(dst, h.Reserved[:]...)
	dst = engine.AppendUint64(dst, h.Checksum)

	return dst
}

// GetCompression returns the payload compression type.
func (h *Header) GetCompression() format.CompressionType {
	return format.CompressionType(h.Compression)
}

// GetEndianEngine returns the byte order of the header fields.
func (h *Header) GetEndianEngine() endian.EndianEngine {
	return endian.GetLittleEndianEngine()
}

// Validate checks the magic number, the version, the reserved bytes and the
// compression type.
func (h *Header) Validate() error {
	if h.Magic != MagicV1 || h.Version != FormatVersion {
		return errs.ErrInvalidHeaderFlags
	}

	if h.Reserved != [4]byte{} {
		return errs.ErrInvalidHeaderFlags
	}

	if _, ok := validCompressions[h.GetCompression()]; !ok {
		return errs.ErrInvalidHeaderFlags
	}

	return nil
}
