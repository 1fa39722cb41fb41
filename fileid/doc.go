// Package fileid encodes and decodes the platform's bot API media identifiers.
//
// A FileID is the long form: it carries the data center, the file reference and the
// location needed to fetch the file again. A FileUniqueID is the short form, stable
// for the life of the file and only good for comparing files.
//
// Both travel as URL-safe base64 over a zero-run encoded binary record:
//
//	id, err := fileid.Decode(text)
//	if err != nil {
//	    return err
//	}
//	unique := id.UniqueID()
//
// Encoding a decoded identifier reproduces the original text byte for byte.
package fileid
