package util

import (
	"regexp"

	"github.com/oklog/ulid/v2"
)

var ulidPattern = regexp.MustCompile(`^[0-9A-HJKMNP-TV-Z]{26}$`)

// NewULID returns a new lexically sortable id. ulid.Make is safe for
// concurrent use and monotonic within a millisecond.
func NewULID() string {
	return ulid.Make().String()
}

// IsULID reports whether s looks like a canonical ULID string.
func IsULID(s string) bool {
	return ulidPattern.MatchString(s)
}
