package domain

import "strings"

// Entry is one left/right word pair read from an input line.
type Entry struct {
	Left  TaggedWord
	Right TaggedWord
}

// NewEntry parses both sides of a pair.
func NewEntry(left, right string) Entry {
	return Entry{
		Left:  ParseTaggedWord(left),
		Right: ParseTaggedWord(right),
	}
}

// POS is the part-of-speech key used for grouping: the first tag of the
// left word, or UnknownPOS. Tags on the right word are ignored.
func (e Entry) POS() string {
	return e.Left.FirstTag(UnknownPOS)
}

// Format renders e as a single bidix <e> element terminated by a newline:
//
//	<e>\t<p><l>LEFT</l><r>RIGHT</r></p></e>\n
func (e Entry) Format() string {
	var b strings.Builder
	b.WriteString("<e>\t<p><l>")
	b.WriteString(e.Left.Padded())
	b.WriteString("</l><r>")
	b.WriteString(e.Right.Padded())
	b.WriteString("</r></p></e>\n")
	return b.String()
}
