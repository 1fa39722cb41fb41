package fileid

import (
	"testing"

	"github.com/gotd/td/tg"
	"github.com/stretchr/testify/require"

	"github.com/dcdunkan/tgfileid/category"
	"github.com/dcdunkan/tgfileid/errs"
)

// fromDocument seeds a FileID the way a bot does after the platform hands it a
// document object.
func fromDocument(doc *tg.Document, c category.Category) FileID {
	return FileID{
		Version:    4,
		SubVersion: 30,
		DCID:       int32(doc.DCID), //nolint:gosec
		Category:   c,
		Reference:  doc.FileReference,
		Location:   RemoteLocation{ID: doc.ID, AccessHash: doc.AccessHash},
	}
}

func TestFromDocument(t *testing.T) {
	doc := &tg.Document{
		ID:            1592756632805186045,
		AccessHash:    8648091647552727112,
		FileReference: mustHex(t, "0100000263622609e8c06dc71034991c70c43eb4792837f3e1"),
		DCID:          5,
		MimeType:      "image/webp",
	}

	text, err := Encode(fromDocument(doc, category.Sticker))
	require.NoError(t, err)
	require.Equal(t, "CAACAgUAAxkBAAICY2ImCejAbccQNJkccMQ-tHkoN_PhAAL9GQACuJsaFkgoZ62IMQR4HgQ", text)
}

func TestInputLocation(t *testing.T) {
	decode := func(text string) FileID {
		id, err := Decode(text)
		require.NoError(t, err)

		return id
	}

	tests := []struct {
		name     string
		id       FileID
		expected tg.InputFileLocationClass
	}{
		{
			name: "voice",
			id:   decode(platformSamples[1].text),
			expected: &tg.InputDocumentFileLocation{
				ID:            5899747659685562555,
				AccessHash:    4747619738920652415,
				FileReference: mustHex(t, "010004dd26603be3db1e55adc51b7970f5af5e51915875ccdc"),
			},
		},
		{
			name: "photo thumbnail",
			id:   decode(platformSamples[2].text),
			expected: &tg.InputPhotoFileLocation{
				ID:            5899865295001073385,
				AccessHash:    2077696737712570409,
				FileReference: mustHex(t, "010004dd22603be19fcd34ee1692850a5e0960116aa6e820ea"),
				ThumbSize:     "x",
			},
		},
		{
			name: "profile photo",
			id:   decode(platformSamples[5].text),
			expected: &tg.InputPeerPhotoFileLocation{
				Big:     true,
				Peer:    &tg.InputPeerUser{UserID: 129377043, AccessHash: 4387826778156403962},
				PhotoID: 555670168994426049,
			},
		},
		{
			name: "sticker set thumbnail",
			id:   decode(platformSamples[6].text),
			expected: &tg.InputStickerSetThumb{
				Stickerset:   &tg.InputStickerSetID{ID: 1435798118124748815, AccessHash: 3124985936679981409},
				ThumbVersion: 17982,
			},
		},
		{
			name: "legacy photo",
			id:   decode(layoutSamples[2].text),
			expected: &tg.InputPhotoLegacyFileLocation{
				ID:         1234567,
				AccessHash: -99,
				VolumeID:   400094700815,
				LocalID:    -12,
				Secret:     777,
			},
		},
		{
			name:     "encrypted",
			id:       FileID{Category: category.Encrypted, Location: RemoteLocation{ID: 1, AccessHash: 2}},
			expected: &tg.InputEncryptedFileLocation{ID: 1, AccessHash: 2},
		},
		{
			name:     "secure",
			id:       FileID{Category: category.SecureRaw, Location: RemoteLocation{ID: 1, AccessHash: 2}},
			expected: &tg.InputSecureFileLocation{ID: 1, AccessHash: 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			location, err := InputLocation(tt.id)
			require.NoError(t, err)
			require.Equal(t, tt.expected, location)
		})
	}
}

func TestInputLocation_DialogPeers(t *testing.T) {
	require.Equal(t, &tg.InputPeerChat{ChatID: 4242}, dialogPeer(-4242, 7))
	require.Equal(t, &tg.InputPeerChannel{ChannelID: 1234, AccessHash: 7}, dialogPeer(-1000000001234, 7))
	require.Equal(t, &tg.InputPeerUser{UserID: 1, AccessHash: 7}, dialogPeer(1, 7))
}

func TestInputLocation_Errors(t *testing.T) {
	web, err := Decode(layoutSamples[0].text)
	require.NoError(t, err)
	_, err = InputLocation(web)
	require.ErrorIs(t, err, errs.ErrInvalidRecord)

	_, err = InputLocation(FileID{Category: category.Temp, Location: RemoteLocation{ID: 1}})
	require.ErrorIs(t, err, errs.ErrInvalidRecord)

	_, err = InputLocation(FileID{Category: category.Photo, Location: RemoteLocation{ID: 1}})
	require.ErrorIs(t, err, errs.ErrIncompleteRecord)
}
