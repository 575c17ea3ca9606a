// Package edit turns tag insertions and comment stubs into concrete text
// edits against a source buffer.
package edit

import (
	"bytes"
	"sort"

	"github.com/javelin-dev/javelin/errors"
)

// TextEdit replaces Length bytes at Offset with Text. Length zero is a pure
// insertion.
type TextEdit struct {
	Offset int
	Length int
	Text   string
}

// Apply applies edits to src and returns the rewritten buffer. Edits must
// not overlap; edits at the identical offset are applied in the order given.
func Apply(src []byte, edits []TextEdit) ([]byte, error) {
	sorted := make([]TextEdit, len(edits))
	copy(sorted, edits)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Offset < sorted[j].Offset
	})

	var out bytes.Buffer
	pos := 0
	for _, e := range sorted {
		if e.Offset < pos || e.Offset+e.Length > len(src) {
			return nil, errors.AssertionFailedf(
				"overlapping or out-of-range edit at offset %d (length %d, buffer %d)",
				e.Offset, e.Length, len(src))
		}
		out.Write(src[pos:e.Offset])
		out.WriteString(e.Text)
		pos = e.Offset + e.Length
	}
	out.Write(src[pos:])
	return out.Bytes(), nil
}
