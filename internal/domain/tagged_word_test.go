package domain

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestExtractTags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		word string
		want []string
	}{
		{name: "two tags", word: "run<vblex><pri>", want: []string{"vblex", "pri"}},
		{name: "three tags", word: "gato<n><m><sg>", want: []string{"n", "m", "sg"}},
		{name: "no tags", word: "foo", want: nil},
		{name: "empty string", word: "", want: nil},
		{name: "empty brackets skipped", word: "a<><n>", want: []string{"n"}},
		{name: "unclosed bracket", word: "a<n", want: nil},
		{name: "tag with symbols", word: "x<adj:comp>", want: []string{"adj:comp"}},
		{name: "text between tags", word: "a<n>b<sg>", want: []string{"n", "sg"}},
		{name: "nested opening bracket", word: "a<<n>", want: []string{"<n"}},
		{name: "non-ascii", word: "ёж<n><ма>", want: []string{"n", "ма"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if diff := cmp.Diff(tt.want, ExtractTags(tt.word)); diff != "" {
				t.Errorf("ExtractTags(%q) mismatch (-want +got):\n%s", tt.word, diff)
			}
		})
	}
}

func TestBaseForm(t *testing.T) {
	t.Parallel()

	tests := []struct {
		word string
		want string
	}{
		{"run<vblex><pri>", "run"},
		{"foo", "foo"},
		{"<n>", ""},
		{"", ""},
		{"a<n>b<sg>", "a"},
		{"x>y<n>", "x>y"},
	}

	for _, tt := range tests {
		if got := BaseForm(tt.word); got != tt.want {
			t.Errorf("BaseForm(%q) = %q, want %q", tt.word, got, tt.want)
		}
	}
}

func TestPadWord(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		word string
		want string
	}{
		{name: "two tags", word: "word<tag1><tag2>", want: `word<s n="tag1"><s n="tag2">`},
		{name: "untagged", word: "bar", want: "bar"},
		{name: "left of cat example", word: "cat<n><sg>", want: `cat<s n="n"><s n="sg">`},
		{name: "quote left unescaped", word: `a<x"y>`, want: `a<s n="x"y">`},
		{name: "tags only", word: "<n>", want: `<s n="n">`},
		{name: "empty brackets dropped", word: "a<>", want: "a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := PadWord(tt.word); got != tt.want {
				t.Errorf("PadWord(%q) = %q, want %q", tt.word, got, tt.want)
			}
		})
	}
}

func TestPadWord_TagsRecoverableFromOutput(t *testing.T) {
	t.Parallel()

	word := "word<tag1><tag2>"
	padded := PadWord(word)

	// Each emitted element is itself a bracket group; its n attribute holds the tag.
	var recovered []string
	for _, el := range ExtractTags(padded) {
		recovered = append(recovered, el[len(`s n="`):len(el)-1])
	}
	if diff := cmp.Diff(ExtractTags(word), recovered); diff != "" {
		t.Errorf("tags mismatch (-want +got):\n%s", diff)
	}
}

func TestParseTaggedWord(t *testing.T) {
	t.Parallel()

	got := ParseTaggedWord("run<vblex><pri>")
	want := TaggedWord{Raw: "run<vblex><pri>", Base: "run", Tags: []string{"vblex", "pri"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ParseTaggedWord mismatch (-want +got):\n%s", diff)
	}

	if got := got.FirstTag(UnknownPOS); got != "vblex" {
		t.Errorf("FirstTag = %q, want vblex", got)
	}
	if got := ParseTaggedWord("foo").FirstTag(UnknownPOS); got != UnknownPOS {
		t.Errorf("FirstTag on untagged word = %q, want %q", got, UnknownPOS)
	}
}
