// Package endian provides the byte order used by identifier records and bundles.
//
// Identifier records are little-endian throughout, and so are bundle headers. The
// package exists so that encoders can take a single EndianEngine value that both
// reads and appends, instead of juggling binary.ByteOrder and
// binary.AppendByteOrder separately:
//
//	engine := endian.GetLittleEndianEngine()
//	buf = engine.AppendUint32(buf, tag)
//	tag = engine.Uint32(buf[0:4])
//
// All functions and methods in this package are safe for concurrent use.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from encoding/binary
// into a single interface for convenient byte order operations.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}
