package bundle

import (
	"fmt"
	"math"

	"github.com/dcdunkan/tgfileid/errs"
	"github.com/dcdunkan/tgfileid/fileid"
	"github.com/dcdunkan/tgfileid/format"
	"github.com/dcdunkan/tgfileid/internal/hash"
	"github.com/dcdunkan/tgfileid/internal/options"
	"github.com/dcdunkan/tgfileid/internal/pool"
	"github.com/dcdunkan/tgfileid/internal/tl"
)

// Encoder collects identifiers into a bundle.
//
// Each entry is stored as its kind byte followed by the raw record in string form.
// The payload is compressed as a single unit in Finish.
//
// Note: The Encoder is NOT thread-safe. Each encoder instance should be used by a single goroutine at a time.
//
// Note: The Encoder is NOT reusable. After calling Finish, a new encoder must be created for further encoding.
type Encoder struct {
	*EncoderConfig

	count   int
	scratch []byte // entry being framed

	// Pooled buffer holding the uncompressed payload
	buf *pool.ByteBuffer
}

// NewEncoder creates a new bundle encoder.
//
// Parameters:
//   - opts: Optional configuration (compression, entry capacity)
//
// Returns:
//   - *Encoder: New encoder instance ready for entries
//   - error: Configuration error if invalid options provided
func NewEncoder(opts ...EncoderOption) (*Encoder, error) {
	config := NewEncoderConfig()

	if err := options.Apply(config, opts...); err != nil {
		return nil, err
	}

	if err := config.setCodec(); err != nil {
		return nil, err
	}

	encoder := &Encoder{
		EncoderConfig: config,
		buf:           pool.GetBundleBuffer(),
	}
	encoder.buf.Grow(config.entryCapacity * averageEntrySize)

	return encoder, nil
}

// AddFileID appends a file id entry.
//
// Returns:
//   - error: ErrEncoderFinished after Finish, or the record error of an
//     unencodable id (ErrIncompleteRecord, ErrInvalidRecord)
func (e *Encoder) AddFileID(id fileid.FileID) error {
	if e.buf == nil {
		return errs.ErrEncoderFinished
	}

	record, err := id.MarshalBinary()
	if err != nil {
		return fmt.Errorf("file id entry %d: %w", e.count, err)
	}

	e.appendEntry(format.EntryFileID, record)

	return nil
}

// AddUniqueID appends a unique id entry.
func (e *Encoder) AddUniqueID(u fileid.FileUniqueID) error {
	if e.buf == nil {
		return errs.ErrEncoderFinished
	}

	record, err := u.MarshalBinary()
	if err != nil {
		return fmt.Errorf("unique id entry %d: %w", e.count, err)
	}

	e.appendEntry(format.EntryUniqueID, record)

	return nil
}

func (e *Encoder) appendEntry(kind format.EntryKind, record []byte) {
	enc := tl.NewEncoder(e.scratch)
	enc.PutByte(byte(kind))
	enc.PutBytes(record)
	e.scratch = enc.Bytes()

	_, _ = e.buf.Write(e.scratch)
	e.count++
}

// Len returns the number of entries added so far.
func (e *Encoder) Len() int {
	return e.count
}

// Finish compresses the payload and returns the encoded bundle.
//
// Returns:
//   - []byte: Header followed by the compressed payload
//   - error: ErrNoEntriesAdded, ErrEncoderFinished, ErrBundleTooLarge or a
//     compression error
func (e *Encoder) Finish() ([]byte, error) {
	if e.buf == nil {
		return nil, errs.ErrEncoderFinished
	}

	// Return buffer to pool even on error paths
	defer func() {
		pool.PutBundleBuffer(e.buf)
		e.buf = nil
	}()

	if e.count == 0 {
		return nil, errs.ErrNoEntriesAdded
	}

	payload := e.buf.Bytes()
	if uint64(len(payload)) > math.MaxUint32 || uint64(e.count) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: %d bytes in %d entries", errs.ErrBundleTooLarge, len(payload), e.count)
	}

	// Clone header for immutability
	header := *e.header
	header.EntryCount = uint32(e.count)       //nolint:gosec
	header.PayloadSize = uint32(len(payload)) //nolint:gosec
	header.Checksum = hash.Sum(payload)

	compressed, err := e.codec.Compress(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to compress payload: %w", err)
	}

	// Exact-size buffer for the final bundle, returned directly to the caller
	out := make([]byte, 0, HeaderSize+len(compressed))
	out = header.AppendTo(out)
	out = append(out, compressed...)

	return out, nil
}
