package ident

import (
	"strconv"
	"strings"
)

// ParseID parses a numeric resource identifier. It accepts only a full base-10
// integer token ("12abc" is rejected, unlike a lenient prefix parse) and
// requires a positive value, since store-generated identifiers start at 1.
func ParseID(raw string) (int64, bool) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// Username normalizes a username path parameter. Surrounding whitespace is
// trimmed; an empty result is rejected.
func Username(raw string) (string, bool) {
	name := strings.TrimSpace(raw)
	return name, name != ""
}
