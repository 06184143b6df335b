package posts

import (
	"strings"

	"blog-api/core/utils"
)

// tagDelimiter separates tags in the flat storage column. Tag values that
// contain the delimiter are not supported and are not escaped; an empty list
// and an absent stored value are indistinguishable (both mean "no tags").
const tagDelimiter = ","

// EncodeTags flattens a tag list into its storage form.
func EncodeTags(tags []string) string {
	return strings.Join(tags, tagDelimiter)
}

// DecodeTags restores the tag list from a stored value. Absent and empty
// values both decode to an empty list, never nil, so responses always carry a
// JSON array.
func DecodeTags(v any) []string {
	if v == nil {
		return []string{}
	}
	s := utils.ToString(v)
	if s == "" {
		return []string{}
	}
	return strings.Split(s, tagDelimiter)
}
