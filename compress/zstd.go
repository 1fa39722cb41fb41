package compress

// ZstdCompressor provides Zstandard compression for identifier bundles.
//
// Zstd gives the best ratio of the built-in codecs. Bundles of file ids compress
// well because references, data center ids and trailers repeat across entries.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
//
// Example:
//
//	compressor := NewZstdCompressor()
//	compressed, err := compressor.Compress(data)
//	if err != nil {
//		return err
//	}
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
