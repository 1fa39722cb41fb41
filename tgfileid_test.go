package tgfileid

import (
	"testing"

	"github.com/gotd/td/tg"
	"github.com/stretchr/testify/require"

	"github.com/dcdunkan/tgfileid/bundle"
	"github.com/dcdunkan/tgfileid/category"
	"github.com/dcdunkan/tgfileid/errs"
	"github.com/dcdunkan/tgfileid/fileid"
	"github.com/dcdunkan/tgfileid/format"
)

const (
	voiceFileID   = "AwACAgQAAxkBAAEE3SZgO-PbHlWtxRt5cPWvXlGRWHXM3AACuwgAAj0d4FF_jv-i_-7iQR4E"
	voiceUniqueID = "AgADuwgAAj0d4FE"
	stickerFileID = "CAACAgIAAxkBAAIEVF9Do80olppb0490gLH2I1cszuoMAALcCQACAoujAAEqUB3Wl6aD6BsE"
)

func TestDecodeEncodeFileID(t *testing.T) {
	id, err := DecodeFileID(voiceFileID)
	require.NoError(t, err)
	require.Equal(t, category.Voice, id.Category)
	require.Equal(t, int32(4), id.DCID)

	text, err := EncodeFileID(id)
	require.NoError(t, err)
	require.Equal(t, voiceFileID, text)
}

func TestUniqueIDFromFileID(t *testing.T) {
	id, err := DecodeFileID(voiceFileID)
	require.NoError(t, err)

	unique, err := DecodeFileUniqueID(voiceUniqueID)
	require.NoError(t, err)
	require.Equal(t, unique, UniqueIDFromFileID(id))

	text, err := EncodeFileUniqueID(UniqueIDFromFileID(id))
	require.NoError(t, err)
	require.Equal(t, voiceUniqueID, text)
}

func TestOwnerIDOf(t *testing.T) {
	id, err := DecodeFileID(stickerFileID)
	require.NoError(t, err)
	require.Equal(t, uint32(10717954), OwnerIDOf(id))

	voice, err := DecodeFileID(voiceFileID)
	require.NoError(t, err)
	require.Zero(t, OwnerIDOf(voice))
}

func TestInputLocationOf(t *testing.T) {
	id, err := DecodeFileID(voiceFileID)
	require.NoError(t, err)

	location, err := InputLocationOf(id)
	require.NoError(t, err)

	doc, ok := location.(*tg.InputDocumentFileLocation)
	require.True(t, ok)
	require.Equal(t, int64(5899747659685562555), doc.ID)
	require.Equal(t, id.Reference, doc.FileReference)
}

func TestErrors(t *testing.T) {
	_, err := DecodeFileID("not base64!")
	require.ErrorIs(t, err, errs.ErrInvalidEncoding)

	_, err = EncodeFileID(fileid.FileID{})
	require.ErrorIs(t, err, errs.ErrIncompleteRecord)

	_, err = EncodeFileUniqueID(fileid.FileUniqueID{Category: category.UniqueWeb})
	require.ErrorIs(t, err, errs.ErrIncompleteRecord)
}

func TestBundle(t *testing.T) {
	encoder, err := NewBundleEncoder()
	require.NoError(t, err)
	require.Equal(t, format.CompressionZstd, encoder.Compression())

	id, err := DecodeFileID(voiceFileID)
	require.NoError(t, err)
	require.NoError(t, encoder.AddFileID(id))

	data, err := encoder.Finish()
	require.NoError(t, err)

	b, err := DecodeBundle(data)
	require.NoError(t, err)
	require.Equal(t, []fileid.FileID{id}, b.FileIDs())
	require.True(t, b.Contains(UniqueIDFromFileID(id)))

	lz4, err := NewBundleEncoder(bundle.WithCompression(format.CompressionLZ4))
	require.NoError(t, err)
	require.Equal(t, format.CompressionLZ4, lz4.Compression())
}
