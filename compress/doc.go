// Package compress provides the compression codecs used by identifier records and
// identifier bundles.
//
// # Zero-run encoding
//
// Every identifier string is zero-run encoded before it is base64 encoded. Records
// are full of zero bytes (small integers in wide fields, string padding), and the
// platform collapses each run of up to 254 zero bytes into the pair (0x00, n):
//
//	codec := compress.NewZeroRLECompressor()
//	packed, _ := codec.Compress(record)
//	record, err := codec.Decompress(packed)
//
// Non-zero bytes pass through unchanged, so the encoding never fails and only grows
// input that contains isolated zero bytes.
//
// # General-purpose codecs
//
// Bundles of many identifiers may additionally be compressed as a whole:
//   - None: no compression
//   - Zstd: best ratio (klauspost/compress/zstd, or valyala/gozstd when built with
//     the cgo and gozstd tags)
//   - S2: balanced speed and ratio
//   - LZ4: fastest decompression
//
// Use CreateCodec or GetCodec to pick a codec by format.CompressionType.
//
// # Thread Safety
//
// All codec implementations are stateless values and safe for concurrent use.
package compress
