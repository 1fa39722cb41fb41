package compress

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dcdunkan/tgfileid/errs"
)

func TestZeroRLECompressor_Compress(t *testing.T) {
	tests := []struct {
		name     string
		input    []byte
		expected []byte
	}{
		{name: "empty", input: nil, expected: []byte{}},
		{name: "no zeros", input: []byte{1, 2, 3}, expected: []byte{1, 2, 3}},
		{name: "single zero", input: []byte{0}, expected: []byte{0, 1}},
		{name: "leading run", input: []byte{0, 0, 0, 4}, expected: []byte{0, 3, 4}},
		{name: "trailing run", input: []byte{8, 0, 0}, expected: []byte{8, 0, 2}},
		{name: "interleaved", input: []byte{8, 0, 0, 2, 0, 3}, expected: []byte{8, 0, 2, 2, 0, 1, 3}},
		{name: "max run", input: make([]byte, 254), expected: []byte{0, 254}},
		{name: "max run plus one", input: make([]byte, 255), expected: []byte{0, 254, 0, 1}},
		{name: "two full runs", input: make([]byte, 508), expected: []byte{0, 254, 0, 254}},
	}

	codec := NewZeroRLECompressor()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := codec.Compress(tt.input)
			require.NoError(t, err)
			require.Equal(t, tt.expected, out)
		})
	}
}

func TestZeroRLECompressor_Decompress(t *testing.T) {
	tests := []struct {
		name     string
		input    []byte
		expected []byte
	}{
		{name: "empty", input: nil, expected: []byte{}},
		{name: "no zeros", input: []byte{1, 2, 3}, expected: []byte{1, 2, 3}},
		{name: "run", input: []byte{8, 0, 3, 2}, expected: []byte{8, 0, 0, 0, 2}},
		{name: "zero count", input: []byte{8, 0, 0, 2}, expected: []byte{8, 2}},
		{name: "count 255", input: []byte{0, 255}, expected: make([]byte, 255)},
	}

	codec := NewZeroRLECompressor()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := codec.Decompress(tt.input)
			require.NoError(t, err)
			require.Equal(t, tt.expected, out)
		})
	}
}

func TestZeroRLECompressor_DecompressBareZero(t *testing.T) {
	codec := NewZeroRLECompressor()

	for _, input := range [][]byte{{0}, {1, 2, 0}, {0, 3, 0}} {
		out, err := codec.Decompress(input)
		require.ErrorIs(t, err, errs.ErrCorruptEncoding)
		require.Nil(t, out)
	}
}

func TestZeroRLECompressor_DecompressLimit(t *testing.T) {
	codec := NewZeroRLECompressor()

	atLimit := bytes.Repeat([]byte{0x00, 0xff}, maxDecodedSize/255)
	out, err := codec.Decompress(atLimit)
	require.NoError(t, err)
	require.Len(t, out, maxDecodedSize/255*255)

	overLimit := append(atLimit, 0x00, 0xff)
	out, err = codec.Decompress(overLimit)
	require.ErrorIs(t, err, errs.ErrCorruptEncoding)
	require.Nil(t, out)

	// The append form used for single records has no limit.
	out, err = AppendZeroRLEDecoded(nil, overLimit)
	require.NoError(t, err)
	require.Len(t, out, (maxDecodedSize/255+1)*255)
}

func TestZeroRLECompressor_RoundTrip(t *testing.T) {
	inputs := map[string][]byte{
		"empty":          {},
		"all zero":       make([]byte, 64),
		"long zero run":  make([]byte, 1000),
		"no zero":        bytes.Repeat([]byte{0xab}, 300),
		"record-like":    {0x08, 0, 0, 0x02, 0x01, 0, 0, 0, 0x19, 0x01, 0, 0x04, 0xdd, 0x24, 0x1e, 0x04},
		"alternating":    bytes.Repeat([]byte{0, 1}, 200),
		"runs over 254":  append(append([]byte{7}, make([]byte, 600)...), 9),
		"trailing zeros": append([]byte{1, 2, 3}, make([]byte, 255)...),
	}

	codec := NewZeroRLECompressor()
	for name, input := range inputs {
		t.Run(name, func(t *testing.T) {
			packed, err := codec.Compress(input)
			require.NoError(t, err)

			unpacked, err := codec.Decompress(packed)
			require.NoError(t, err)
			require.Equal(t, input, unpacked)

			// Compressing the expansion again yields the same packed form.
			repacked, err := codec.Compress(unpacked)
			require.NoError(t, err)
			require.Equal(t, packed, repacked)
		})
	}
}

func TestAppendZeroRLE_ReusesDestination(t *testing.T) {
	dst := make([]byte, 0, 16)
	dst = append(dst, 0xff)

	out := AppendZeroRLE(dst, []byte{0, 0, 5})
	require.Equal(t, []byte{0xff, 0, 2, 5}, out)
	require.Same(t, &dst[0], &out[0])
}

func BenchmarkZeroRLECompressor_Compress(b *testing.B) {
	record := make([]byte, 64)
	for i := range record {
		if i%3 == 0 {
			record[i] = byte(i)
		}
	}
	codec := NewZeroRLECompressor()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = codec.Compress(record)
	}
}

func BenchmarkZeroRLECompressor_Decompress(b *testing.B) {
	record := make([]byte, 64)
	for i := range record {
		if i%3 == 0 {
			record[i] = byte(i)
		}
	}
	codec := NewZeroRLECompressor()
	packed, _ := codec.Compress(record)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = codec.Decompress(packed)
	}
}
