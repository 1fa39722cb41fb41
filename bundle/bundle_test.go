package bundle

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dcdunkan/tgfileid/category"
	"github.com/dcdunkan/tgfileid/errs"
	"github.com/dcdunkan/tgfileid/fileid"
	"github.com/dcdunkan/tgfileid/format"
	"github.com/dcdunkan/tgfileid/internal/hash"
)

var sampleTexts = []string{
	"CAACAgEAAxkBAAEE3SRgO-OW-HDMHW5rOGsSFWhZScQl4AAC8BIAApa4VwXGFC4AAaCSsQMeBA",
	"AwACAgQAAxkBAAEE3SZgO-PbHlWtxRt5cPWvXlGRWHXM3AACuwgAAj0d4FF_jv-i_-7iQR4E",
	"AgACAgQAAxkBAAEE3SJgO-GfzTTuFpKFCl4JYBFqpugg6gAC6bYxGzqI4FEpgFjCLHbVHA-lgCddAAMBAAMCAAN4AAM2rwUAAR4E",
	"AQADBAADwawxGxMjtgcACDvytxsABAIAAxMjtgcABPqM9f80seQ8I7wHAAEeBA",
	"BQACAQQAAx1odHRwczovL2V4YW1wbGUuY29tL2ltYWdlLmpwZwACywT7cR8BAAIeBA",
}

func sampleFileIDs(t *testing.T) []fileid.FileID {
	t.Helper()

	ids := make([]fileid.FileID, 0, len(sampleTexts))
	for _, text := range sampleTexts {
		id, err := fileid.Decode(text)
		require.NoError(t, err)
		ids = append(ids, id)
	}

	return ids
}

func encodeSamples(t *testing.T, opts ...EncoderOption) ([]byte, []fileid.FileID, fileid.FileUniqueID) {
	t.Helper()

	encoder, err := NewEncoder(opts...)
	require.NoError(t, err)

	ids := sampleFileIDs(t)
	for _, id := range ids {
		require.NoError(t, encoder.AddFileID(id))
	}

	audio, err := fileid.DecodeUnique("AgADqQkAAjp72FE")
	require.NoError(t, err)
	require.NoError(t, encoder.AddUniqueID(audio))
	require.Equal(t, len(ids)+1, encoder.Len())

	data, err := encoder.Finish()
	require.NoError(t, err)

	return data, ids, audio
}

func TestBundle_RoundTrip(t *testing.T) {
	compressions := []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
		format.CompressionZeroRLE,
	}

	for _, compression := range compressions {
		t.Run(compression.String(), func(t *testing.T) {
			data, ids, audio := encodeSamples(t, WithCompression(compression), WithEntryCapacity(8))

			b, err := Decode(data)
			require.NoError(t, err)
			header := b.Header()
			require.Equal(t, compression, header.GetCompression())
			require.Equal(t, len(ids)+1, b.Len())
			require.Equal(t, ids, b.FileIDs())
			require.Equal(t, []fileid.FileUniqueID{audio}, b.UniqueIDs())

			for i, id := range b.FileIDs() {
				text, err := fileid.Encode(id)
				require.NoError(t, err)
				require.Equal(t, sampleTexts[i], text)
			}
		})
	}
}

func TestBundle_All(t *testing.T) {
	data, ids, audio := encodeSamples(t)

	b, err := Decode(data)
	require.NoError(t, err)

	var kinds []format.EntryKind
	for i, entry := range b.All() {
		require.Equal(t, len(kinds), i)
		kinds = append(kinds, entry.Kind)

		if entry.Kind == format.EntryFileID {
			require.Equal(t, ids[i], entry.FileID)
		} else {
			require.Equal(t, audio, entry.UniqueID)
		}
	}
	require.Len(t, kinds, len(ids)+1)
	require.Equal(t, format.EntryUniqueID, kinds[len(kinds)-1])

	// Early break stops the iteration.
	seen := 0
	for range b.All() {
		seen++
		break
	}
	require.Equal(t, 1, seen)
}

func TestBundle_Contains(t *testing.T) {
	data, _, _ := encodeSamples(t)

	b, err := Decode(data)
	require.NoError(t, err)

	voice, err := fileid.DecodeUnique("AgADuwgAAj0d4FE")
	require.NoError(t, err)
	photo, err := fileid.DecodeUnique("AQADD6WAJ10AAzavBQAB")
	require.NoError(t, err)
	audio, err := fileid.DecodeUnique("AgADqQkAAjp72FE")
	require.NoError(t, err)

	require.True(t, b.Contains(voice))
	require.True(t, b.Contains(photo))
	require.True(t, b.Contains(audio))
	require.True(t, b.Contains(fileid.FileUniqueID{Category: category.UniqueWeb, URL: "https://example.com/image.jpg"}))
	require.False(t, b.Contains(fileid.FileUniqueID{Category: category.UniqueDocument, ID: 1}))
}

func TestEncoder_Errors(t *testing.T) {
	t.Run("Invalid compression", func(t *testing.T) {
		_, err := NewEncoder(WithCompression(format.CompressionType(0)))
		require.Error(t, err)
	})

	t.Run("No entries", func(t *testing.T) {
		encoder, err := NewEncoder()
		require.NoError(t, err)

		_, err = encoder.Finish()
		require.ErrorIs(t, err, errs.ErrNoEntriesAdded)
	})

	t.Run("Unencodable entries", func(t *testing.T) {
		encoder, err := NewEncoder()
		require.NoError(t, err)

		require.ErrorIs(t, encoder.AddFileID(fileid.FileID{Category: category.Voice}), errs.ErrIncompleteRecord)
		require.ErrorIs(t, encoder.AddUniqueID(fileid.FileUniqueID{Category: category.UniqueWeb}), errs.ErrIncompleteRecord)
		require.Zero(t, encoder.Len())
	})

	t.Run("Finished", func(t *testing.T) {
		encoder, err := NewEncoder()
		require.NoError(t, err)
		require.NoError(t, encoder.AddUniqueID(fileid.FileUniqueID{Category: category.UniqueDocument, ID: 1}))

		_, err = encoder.Finish()
		require.NoError(t, err)

		_, err = encoder.Finish()
		require.ErrorIs(t, err, errs.ErrEncoderFinished)
		require.ErrorIs(t, encoder.AddFileID(fileid.FileID{}), errs.ErrEncoderFinished)
		require.ErrorIs(t, encoder.AddUniqueID(fileid.FileUniqueID{}), errs.ErrEncoderFinished)
	})
}

func TestDecode_Errors(t *testing.T) {
	valid, _, _ := encodeSamples(t, WithCompression(format.CompressionNone))

	clone := func() []byte {
		return append([]byte(nil), valid...)
	}

	t.Run("Short header", func(t *testing.T) {
		_, err := Decode(valid[:HeaderSize-1])
		require.ErrorIs(t, err, errs.ErrInvalidHeaderSize)
	})

	t.Run("Bad magic", func(t *testing.T) {
		data := clone()
		data[1] = 0x00
		_, err := Decode(data)
		require.ErrorIs(t, err, errs.ErrInvalidHeaderFlags)
	})

	t.Run("Unknown compression", func(t *testing.T) {
		data := clone()
		data[3] = 0x7f
		_, err := Decode(data)
		require.ErrorIs(t, err, errs.ErrInvalidHeaderFlags)
	})

	t.Run("Checksum mismatch", func(t *testing.T) {
		data := clone()
		data[len(data)-1] ^= 0xff
		_, err := Decode(data)
		require.ErrorIs(t, err, errs.ErrChecksumMismatch)
	})

	t.Run("Payload size mismatch", func(t *testing.T) {
		data := clone()
		binary.LittleEndian.PutUint32(data[8:12], uint32(len(data)-HeaderSize+1))
		_, err := Decode(data)
		require.ErrorIs(t, err, errs.ErrCorruptEncoding)
	})

	t.Run("Entry count mismatch", func(t *testing.T) {
		data := clone()
		binary.LittleEndian.PutUint32(data[4:8], 99)
		_, err := Decode(data)
		require.ErrorIs(t, err, errs.ErrCorruptEncoding)
	})

	t.Run("Unknown entry kind", func(t *testing.T) {
		data := clone()
		data[HeaderSize] = 0x09
		resum(data)
		_, err := Decode(data)
		require.ErrorIs(t, err, errs.ErrInvalidEntryKind)
	})

	t.Run("Zero runs past the size limit", func(t *testing.T) {
		data, _, _ := encodeSamples(t, WithCompression(format.CompressionZeroRLE))
		bomb := bytes.Repeat([]byte{0x00, 0xff}, 64<<20/255+1)
		_, err := Decode(append(data[:HeaderSize:HeaderSize], bomb...))
		require.ErrorIs(t, err, errs.ErrCorruptEncoding)
	})

	t.Run("Corrupt zstd payload", func(t *testing.T) {
		data, _, _ := encodeSamples(t, WithCompression(format.CompressionZstd))
		_, err := Decode(append(data[:HeaderSize:HeaderSize], 0x01, 0x02, 0x03))
		require.ErrorIs(t, err, errs.ErrCorruptEncoding)
	})
}

// resum recomputes the checksum of an uncompressed bundle after a payload edit.
func resum(data []byte) {
	header := &Header{}
	_ = header.Parse(data[:HeaderSize])
	header.Checksum = hash.Sum(data[HeaderSize:])
	copy(data, header.Bytes())
}

func BenchmarkDecode(b *testing.B) {
	encoder, err := NewEncoder(WithEntryCapacity(1000))
	require.NoError(b, err)

	id, err := fileid.Decode(sampleTexts[2])
	require.NoError(b, err)
	for i := range 1000 {
		id.Location = fileid.RemoteLocation{ID: int64(i), Photo: id.Location.(fileid.RemoteLocation).Photo}
		require.NoError(b, encoder.AddFileID(id))
	}

	data, err := encoder.Finish()
	require.NoError(b, err)

	b.ReportAllocs()
	b.ResetTimer()
	for b.Loop() {
		if _, err := Decode(data); err != nil {
			b.Fatal(err)
		}
	}
}
