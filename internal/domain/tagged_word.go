package domain

import (
	"regexp"
	"strings"
)

// UnknownPOS is the group key for entries whose left word carries no tags.
const UnknownPOS = "unknown"

var tagPattern = regexp.MustCompile(`<([^>]+)>`)

// TaggedWord is a lexical form followed by zero or more bracketed tags,
// e.g. "cat<n><sg>".
type TaggedWord struct {
	Raw  string
	Base string
	Tags []string
}

// ParseTaggedWord splits raw into its base form and tags. It never fails:
// a word without brackets is all base and no tags.
func ParseTaggedWord(raw string) TaggedWord {
	return TaggedWord{
		Raw:  raw,
		Base: BaseForm(raw),
		Tags: ExtractTags(raw),
	}
}

// ExtractTags returns the bodies of all non-overlapping <...> groups in
// order of appearance. An empty pair "<>" is not a tag.
func ExtractTags(word string) []string {
	matches := tagPattern.FindAllStringSubmatch(word, -1)
	if len(matches) == 0 {
		return nil
	}
	tags := make([]string, 0, len(matches))
	for _, m := range matches {
		tags = append(tags, m[1])
	}
	return tags
}

// BaseForm returns everything before the first '<', or word itself.
func BaseForm(word string) string {
	base, _, _ := strings.Cut(word, "<")
	return base
}

// PadWord rewrites word as its base form followed by one <s n="TAG"> element
// per tag. Tag text is copied verbatim, without escaping.
func PadWord(word string) string {
	return ParseTaggedWord(word).Padded()
}

// Padded renders w in bidix symbol notation.
func (w TaggedWord) Padded() string {
	var b strings.Builder
	b.Grow(len(w.Base) + len(w.Tags)*10)
	b.WriteString(w.Base)
	for _, tag := range w.Tags {
		b.WriteString(`<s n="`)
		b.WriteString(tag)
		b.WriteString(`">`)
	}
	return b.String()
}

// FirstTag returns the first tag, or fallback when w has none.
func (w TaggedWord) FirstTag(fallback string) string {
	if len(w.Tags) == 0 {
		return fallback
	}
	return w.Tags[0]
}
