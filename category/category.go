// Package category holds the registry of media categories carried in identifier
// type tags.
//
// The registry is ordered and stable: a category's value is its index in the
// platform's file type table and never changes. Values outside the table are still
// valid categories (the platform adds new ones over time) and print as their
// decimal value.
package category

import (
	"fmt"
	"strconv"

	"github.com/dcdunkan/tgfileid/errs"
)

// Category is the media category of a long-form file id.
type Category uint32

const (
	Thumbnail Category = iota
	ProfilePhoto
	Photo
	Voice
	Video
	Document
	Encrypted
	Temp
	Sticker
	Audio
	Animation
	EncryptedThumbnail
	Wallpaper
	VideoNote
	SecureRaw
	Secure
	Background
	DocumentAsFile
)

// MaxValue is the largest value that fits in a type tag below its flag bits.
const MaxValue Category = 1<<24 - 1

var names = [...]string{
	Thumbnail:          "thumbnail",
	ProfilePhoto:       "profile_photo",
	Photo:              "photo",
	Voice:              "voice",
	Video:              "video",
	Document:           "document",
	Encrypted:          "encrypted",
	Temp:               "temp",
	Sticker:            "sticker",
	Audio:              "audio",
	Animation:          "animation",
	EncryptedThumbnail: "encrypted_thumbnail",
	Wallpaper:          "wallpaper",
	VideoNote:          "video_note",
	SecureRaw:          "secure_raw",
	Secure:             "secure",
	Background:         "background",
	DocumentAsFile:     "document_as_file",
}

var byName = func() map[string]Category {
	m := make(map[string]Category, len(names))
	for i, name := range names {
		m[name] = Category(i) //nolint:gosec
	}

	return m
}()

// Parse returns the category registered under name.
//
// Returns:
//   - Category: The registered category
//   - error: errs.ErrUnknownCategory if no category has that name
func Parse(name string) (Category, error) {
	if c, ok := byName[name]; ok {
		return c, nil
	}

	return 0, fmt.Errorf("%w: %q", errs.ErrUnknownCategory, name)
}

// All returns every registered category in table order.
func All() []Category {
	out := make([]Category, len(names))
	for i := range names {
		out[i] = Category(i) //nolint:gosec
	}

	return out
}

// String returns the registered name, or the decimal value for unregistered
// categories.
func (c Category) String() string {
	if c.Registered() {
		return names[c]
	}

	return strconv.FormatUint(uint64(c), 10)
}

// Registered reports whether c has a name in the table.
func (c Category) Registered() bool {
	return int(c) < len(names)
}

// Valid reports whether c can be packed into a type tag.
func (c Category) Valid() bool {
	return c <= MaxValue
}

// IsPhotoLike reports whether records of this category carry photo geometry.
func (c Category) IsPhotoLike() bool {
	return c <= Photo
}

// Unique returns the unique-id category that file ids of this category reduce to.
// Unregistered categories reduce to UniqueDocument.
func (c Category) Unique() UniqueCategory {
	switch c {
	case Thumbnail, ProfilePhoto, Photo:
		return UniquePhoto
	case Encrypted, EncryptedThumbnail:
		return UniqueEncrypted
	case Temp:
		return UniqueTemp
	case SecureRaw, Secure:
		return UniqueSecure
	default:
		return UniqueDocument
	}
}
