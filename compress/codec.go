package compress

import (
	"fmt"

	"github.com/dcdunkan/tgfileid/format"
)

// maxDecodedSize bounds the memory a single corrupt or hostile payload can claim.
const maxDecodedSize = 64 << 20

// Compressor compresses identifier payloads.
//
// Implementations return a newly allocated slice owned by the caller and never
// modify the input.
type Compressor interface {
	// Compress compresses the input data and returns the compressed result.
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores payloads produced by the matching Compressor.
//
// Thread Safety: Decompressor implementations must be safe for concurrent use.
type Decompressor interface {
	// Decompress fails when data is corrupt, was produced by another algorithm, or
	// would expand past maxDecodedSize.
	Decompress(data []byte) ([]byte, error)
}

// Codec is a Compressor and Decompressor pair for one algorithm.
type Codec interface {
	Compressor
	Decompressor
}

// builtinCodecs holds one shared instance per compression type. Every codec is
// stateless or guards its own state, so sharing is safe across goroutines.
var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone:    NewNoOpCompressor(),
	format.CompressionZstd:    NewZstdCompressor(),
	format.CompressionS2:      NewS2Compressor(),
	format.CompressionLZ4:     NewLZ4Compressor(),
	format.CompressionZeroRLE: NewZeroRLECompressor(),
}

// CreateCodec returns the codec for compressionType. target names the component
// asking for it and only appears in the error.
//
// Example:
//
//	codec, err := CreateCodec(format.CompressionS2, "bundle")
//	if err != nil {
//	    return err // invalid bundle compression: Unknown
//	}
func CreateCodec(compressionType format.CompressionType, target string) (Codec, error) {
	codec, err := GetCodec(compressionType)
	if err != nil {
		return nil, fmt.Errorf("invalid %s compression: %s", target, compressionType)
	}

	return codec, nil
}

// GetCodec looks up the built-in codec for compressionType.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	codec, ok := builtinCodecs[compressionType]
	if !ok {
		return nil, fmt.Errorf("unsupported compression type: %s", compressionType)
	}

	return codec, nil
}
