// Package patcher turns a bilingual word-pair list into a bidix patch file.
// Parsing is a pure function of its input: reader in, domain entries out.
package patcher

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"

	"github.com/heartmarshall/bidix-patch/internal/domain"
)

// Stats holds parser statistics for logging.
type Stats struct {
	TotalLines int
	Skipped    int
	Entries    int
}

// ParseResult holds the entries of one input, in input order.
type ParseResult struct {
	Entries []domain.Entry
	Stats   Stats
}

// ParseFile opens path and parses it with Parse.
func ParseFile(path string) (ParseResult, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return ParseResult{}, fmt.Errorf("open %s: %w", path, domain.ErrInputNotFound)
		}
		return ParseResult{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	res, err := Parse(f)
	if err != nil {
		return ParseResult{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return res, nil
}

// Parse reads one word pair per line. Lines end at "\n", "\r\n" or a lone
// "\r" and may be of any length. The first two whitespace-separated tokens
// of a line become the left and right words; anything after them is
// ignored. Lines with fewer than two tokens are skipped silently.
// Input must be valid UTF-8.
func Parse(r io.Reader) (ParseResult, error) {
	br := bufio.NewReader(transform.NewReader(r, encoding.UTF8Validator))

	var res ParseResult

	for {
		chunk, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			if errors.Is(err, encoding.ErrInvalidUTF8) {
				return ParseResult{}, fmt.Errorf("line %d: %w", res.Stats.TotalLines+1, domain.ErrInvalidEncoding)
			}
			return ParseResult{}, fmt.Errorf("read input: %w", err)
		}

		if chunk != "" {
			for _, line := range splitLines(chunk) {
				res.Stats.TotalLines++

				fields := strings.FieldsFunc(line, isSeparator)
				if len(fields) < 2 {
					res.Stats.Skipped++
					continue
				}

				res.Entries = append(res.Entries, domain.NewEntry(fields[0], fields[1]))
			}
		}

		if err != nil {
			break
		}
	}

	res.Stats.Entries = len(res.Entries)
	return res, nil
}

// splitLines breaks a chunk ending in at most one "\n" into lines,
// treating "\r\n" and a lone "\r" as terminators too.
func splitLines(chunk string) []string {
	chunk = strings.TrimSuffix(chunk, "\n")
	chunk = strings.TrimSuffix(chunk, "\r")
	return strings.Split(chunk, "\r")
}

// isSeparator reports Unicode white space plus the ASCII information
// separators U+001C..U+001F, which also delimit tokens.
func isSeparator(r rune) bool {
	return unicode.IsSpace(r) || ('\x1c' <= r && r <= '\x1f')
}
