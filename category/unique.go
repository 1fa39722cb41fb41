package category

import (
	"fmt"
	"strconv"

	"github.com/dcdunkan/tgfileid/errs"
)

// UniqueCategory is the category of a short-form unique id. It is coarser than
// Category: every file id category reduces to one of these.
type UniqueCategory uint32

const (
	UniqueWeb UniqueCategory = iota
	UniquePhoto
	UniqueDocument
	UniqueSecure
	UniqueEncrypted
	UniqueTemp
)

var uniqueNames = [...]string{
	UniqueWeb:       "web",
	UniquePhoto:     "photo",
	UniqueDocument:  "document",
	UniqueSecure:    "secure",
	UniqueEncrypted: "encrypted",
	UniqueTemp:      "temp",
}

// ParseUnique returns the unique category registered under name.
func ParseUnique(name string) (UniqueCategory, error) {
	for i, n := range uniqueNames {
		if n == name {
			return UniqueCategory(i), nil //nolint:gosec
		}
	}

	return 0, fmt.Errorf("%w: unique %q", errs.ErrUnknownCategory, name)
}

// String returns the registered name, or the decimal value for unregistered
// categories.
func (c UniqueCategory) String() string {
	if int(c) < len(uniqueNames) {
		return uniqueNames[c]
	}

	return strconv.FormatUint(uint64(c), 10)
}
