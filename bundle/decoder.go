package bundle

import (
	"fmt"

	"github.com/dcdunkan/tgfileid/compress"
	"github.com/dcdunkan/tgfileid/errs"
	"github.com/dcdunkan/tgfileid/format"
	"github.com/dcdunkan/tgfileid/internal/hash"
	"github.com/dcdunkan/tgfileid/internal/tl"
)

// Decoder decodes an encoded bundle.
//
// Note: The Decoder is NOT reusable. After calling Decode, a new decoder must be created for further decoding.
type Decoder struct {
	data   []byte
	header Header
}

// NewDecoder creates a Decoder for data and validates its header.
//
// Returns:
//   - *Decoder: Decoder ready to decode the payload
//   - error: ErrInvalidHeaderSize or ErrInvalidHeaderFlags
func NewDecoder(data []byte) (*Decoder, error) {
	if len(data) < HeaderSize {
		return nil, errs.ErrInvalidHeaderSize
	}

	decoder := &Decoder{data: data}
	if err := decoder.header.Parse(data[:HeaderSize]); err != nil {
		return nil, err
	}

	return decoder, nil
}

// Header returns the parsed header.
func (d *Decoder) Header() Header {
	return d.header
}

// Decode decompresses the payload, verifies it and parses every entry.
//
// Returns:
//   - *Bundle: The decoded bundle
//   - error: ErrCorruptEncoding on a payload that does not decompress to the
//     recorded size or holds a different number of entries, ErrChecksumMismatch,
//     ErrInvalidEntryKind, or the record error of a malformed entry
func (d *Decoder) Decode() (*Bundle, error) {
	payload, err := d.decompressPayload()
	if err != nil {
		return nil, err
	}

	if sum := hash.Sum(payload); sum != d.header.Checksum {
		return nil, fmt.Errorf("%w: have 0x%016x, header says 0x%016x", errs.ErrChecksumMismatch, sum, d.header.Checksum)
	}

	entries, err := d.parseEntries(payload)
	if err != nil {
		return nil, err
	}

	return newBundle(d.header, entries), nil
}

func (d *Decoder) decompressPayload() ([]byte, error) {
	codec, err := compress.GetCodec(d.header.GetCompression())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrInvalidHeaderFlags, err)
	}

	payload, err := codec.Decompress(d.data[HeaderSize:])
	if err != nil {
		return nil, fmt.Errorf("%w: failed to decompress payload: %w", errs.ErrCorruptEncoding, err)
	}

	if len(payload) != int(d.header.PayloadSize) {
		return nil, fmt.Errorf("%w: payload is %d bytes, header says %d",
			errs.ErrCorruptEncoding, len(payload), d.header.PayloadSize)
	}

	return payload, nil
}

func (d *Decoder) parseEntries(payload []byte) ([]Entry, error) {
	// The count is untrusted until the entries are read, so it only caps the
	// initial capacity.
	capacity := min(int(d.header.EntryCount), len(payload)/minEntrySize)
	entries := make([]Entry, 0, capacity)

	dec := tl.NewDecoder(payload)
	for dec.Len() > 0 {
		entry, err := readEntry(dec)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", len(entries), err)
		}
		entries = append(entries, entry)
	}

	if len(entries) != int(d.header.EntryCount) {
		return nil, fmt.Errorf("%w: payload holds %d entries, header says %d",
			errs.ErrCorruptEncoding, len(entries), d.header.EntryCount)
	}

	return entries, nil
}

// minEntrySize is the smallest possible entry: a kind byte and an empty string.
const minEntrySize = 5

func readEntry(dec *tl.Decoder) (Entry, error) {
	kind, err := dec.Raw(1)
	if err != nil {
		return Entry{}, err
	}

	record, err := dec.Bytes()
	if err != nil {
		return Entry{}, fmt.Errorf("record: %w", err)
	}

	entry := Entry{Kind: format.EntryKind(kind[0])}
	switch entry.Kind {
	case format.EntryFileID:
		err = entry.FileID.UnmarshalBinary(record)
	case format.EntryUniqueID:
		err = entry.UniqueID.UnmarshalBinary(record)
	default:
		return Entry{}, fmt.Errorf("%w: %d", errs.ErrInvalidEntryKind, kind[0])
	}
	if err != nil {
		return Entry{}, err
	}

	return entry, nil
}

// Decode decodes an encoded bundle in one call.
func Decode(data []byte) (*Bundle, error) {
	decoder, err := NewDecoder(data)
	if err != nil {
		return nil, err
	}

	return decoder.Decode()
}
