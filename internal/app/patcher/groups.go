package patcher

import (
	"bufio"
	"io"
	"maps"
	"slices"

	"github.com/heartmarshall/bidix-patch/internal/domain"
)

// PatchGroups buckets formatted entries by part of speech. Each bucket is
// append-only and keeps the order in which entries were added.
type PatchGroups struct {
	byPOS map[string][]string
	total int
}

// NewPatchGroups creates an empty PatchGroups.
func NewPatchGroups() *PatchGroups {
	return &PatchGroups{byPOS: make(map[string][]string)}
}

// GroupEntries formats and groups entries in the given order.
func GroupEntries(entries []domain.Entry) *PatchGroups {
	g := NewPatchGroups()
	for _, e := range entries {
		g.Add(e)
	}
	return g
}

// Add appends the formatted entry to the group of its POS key.
func (g *PatchGroups) Add(e domain.Entry) {
	pos := e.POS()
	g.byPOS[pos] = append(g.byPOS[pos], e.Format())
	g.total++
}

// Keys returns the POS keys in ascending byte-wise order.
func (g *PatchGroups) Keys() []string {
	return slices.Sorted(maps.Keys(g.byPOS))
}

// Len is the total number of entries across all groups.
func (g *PatchGroups) Len() int {
	return g.total
}

// Counts returns the number of entries per POS key.
func (g *PatchGroups) Counts() map[string]int {
	counts := make(map[string]int, len(g.byPOS))
	for pos, lines := range g.byPOS {
		counts[pos] = len(lines)
	}
	return counts
}

// WriteTo writes every group in key order, each group's entries in
// insertion order.
func (g *PatchGroups) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)

	var n int64
	for _, pos := range g.Keys() {
		for _, line := range g.byPOS[pos] {
			written, err := bw.WriteString(line)
			n += int64(written)
			if err != nil {
				return n, err
			}
		}
	}

	return n, bw.Flush()
}
