package common

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	dashSeparatorRe = regexp.MustCompile(`-([a-zA-Z0-9])`)
	invalidCharRe   = regexp.MustCompile(`[^a-zA-Z0-9_]`)
)

// ToTitleCase converts a tag-name style string into a concatenated
// title-cased identifier. Segments are split on dashes and whitespace and
// only the first character of each segment is upper-cased; the rest of the
// segment is kept as-is.
// Examples: "my-button" => "MyButton", "MY-button" => "MYButton".
func ToTitleCase(s string) string {
	if s == "" {
		return ""
	}

	words := strings.FieldsFunc(s, func(r rune) bool {
		return r == '-' || unicode.IsSpace(r)
	})

	var result strings.Builder
	for _, word := range words {
		result.WriteString(strings.ToUpper(word[:1]))
		result.WriteString(word[1:])
	}

	return result.String()
}

// ToSafeIdentifier converts an arbitrary event name into a valid TypeScript
// identifier. Dash separators are camel-cased ("item-selected" =>
// "itemSelected"), every remaining character outside [a-zA-Z0-9_] is
// dropped ("item.updated" => "itemupdated"), an empty result falls back to
// "event", and a leading non-letter is shielded with an underscore
// ("123-invalid" => "_123Invalid").
func ToSafeIdentifier(s string) string {
	id := dashSeparatorRe.ReplaceAllStringFunc(s, func(m string) string {
		return strings.ToUpper(m[1:])
	})
	id = invalidCharRe.ReplaceAllString(id, "")

	if id == "" {
		return "event"
	}
	first := id[0]
	if !(first == '_' || (first >= 'a' && first <= 'z') || (first >= 'A' && first <= 'Z')) {
		id = "_" + id
	}
	return id
}

// UpperFirst upper-cases the first character of s and leaves the rest
// untouched.
func UpperFirst(s string) string {
	if s == "" {
		return ""
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
