// Package bundle stores many identifiers in one compact, checksummed blob.
//
// A bot that caches the files it has already uploaded can keep their ids in a
// bundle and ship or persist it as a single value:
//
//	encoder, err := bundle.NewEncoder(bundle.WithCompression(format.CompressionZstd))
//	if err != nil {
//	    return err
//	}
//	for _, id := range ids {
//	    if err := encoder.AddFileID(id); err != nil {
//	        return err
//	    }
//	}
//	data, err := encoder.Finish()
//
// Layout:
//
//	header   24 bytes, see Header
//	payload  compressed as a single unit
//	entry    kind (1 byte) followed by the raw record in string form
//
// The header records the entry count, the uncompressed payload size and an xxHash64
// checksum of the uncompressed payload, all verified on decode.
package bundle
