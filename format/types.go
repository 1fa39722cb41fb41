package format

type (
	EntryKind       uint8
	CompressionType uint8
)

const (
	EntryFileID   EntryKind = 0x1 // EntryFileID marks a long-form file id record.
	EntryUniqueID EntryKind = 0x2 // EntryUniqueID marks a short-form unique id record.

	CompressionNone    CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd    CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2      CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4     CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
	CompressionZeroRLE CompressionType = 0x5 // CompressionZeroRLE represents zero-run length encoding.
)

func (e EntryKind) String() string {
	switch e {
	case EntryFileID:
		return "FileID"
	case EntryUniqueID:
		return "UniqueID"
	default:
		return "Unknown"
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	case CompressionZeroRLE:
		return "ZeroRLE"
	default:
		return "Unknown"
	}
}
