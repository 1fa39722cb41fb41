package bundle

import (
	"iter"

	"github.com/dcdunkan/tgfileid/fileid"
	"github.com/dcdunkan/tgfileid/format"
)

// Entry is one decoded bundle entry. Exactly one of FileID and UniqueID is set,
// as selected by Kind.
type Entry struct {
	Kind     format.EntryKind
	FileID   fileid.FileID
	UniqueID fileid.FileUniqueID
}

// Unique returns the unique id the entry resolves to. File id entries are reduced
// with fileid.UniqueFromFileID.
func (e Entry) Unique() fileid.FileUniqueID {
	if e.Kind == format.EntryFileID {
		return fileid.UniqueFromFileID(e.FileID)
	}

	return e.UniqueID
}

// Bundle is a decoded, read-only set of identifier entries in insertion order.
//
// Thread Safety: a Bundle is safe for concurrent reads.
type Bundle struct {
	header  Header
	entries []Entry
	keys    map[uint64]struct{}
}

func newBundle(header Header, entries []Entry) *Bundle {
	b := &Bundle{
		header:  header,
		entries: entries,
		keys:    make(map[uint64]struct{}, len(entries)),
	}
	for _, entry := range entries {
		b.keys[entry.Unique().Key()] = struct{}{}
	}

	return b
}

// Header returns a copy of the bundle header.
func (b *Bundle) Header() Header {
	return b.header
}

// Len returns the number of entries.
func (b *Bundle) Len() int {
	return len(b.entries)
}

// FileIDs returns the file id entries in insertion order.
func (b *Bundle) FileIDs() []fileid.FileID {
	ids := make([]fileid.FileID, 0, len(b.entries))
	for _, entry := range b.entries {
		if entry.Kind == format.EntryFileID {
			ids = append(ids, entry.FileID)
		}
	}

	return ids
}

// UniqueIDs returns the unique id entries in insertion order. Unique ids derived
// from file id entries are not included.
func (b *Bundle) UniqueIDs() []fileid.FileUniqueID {
	ids := make([]fileid.FileUniqueID, 0, len(b.entries))
	for _, entry := range b.entries {
		if entry.Kind == format.EntryUniqueID {
			ids = append(ids, entry.UniqueID)
		}
	}

	return ids
}

// All returns an iterator over the entries and their positions.
func (b *Bundle) All() iter.Seq2[int, Entry] {
	return func(yield func(int, Entry) bool) {
		for i, entry := range b.entries {
			if !yield(i, entry) {
				return
			}
		}
	}
}

// Contains reports whether any entry resolves to u, directly or through its file id.
func (b *Bundle) Contains(u fileid.FileUniqueID) bool {
	_, ok := b.keys[u.Key()]
	return ok
}
