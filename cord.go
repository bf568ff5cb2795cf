package charsub

import (
	"github.com/npillmayer/cords"
)

// SubstituteCord applies a table to rope-structured text. The cord's text
// fragments are streamed through a substitution machine in order, so the
// cord is never materialized as one contiguous string. The fragment
// organization of the resulting cord roughly mirrors the input cord's,
// except where a match spans a fragment boundary.
func SubstituteCord(t *Table, text cords.Cord) (cords.Cord, error) {
	if t.Len() == 0 {
		return text, nil
	}
	m := NewMachine(t)
	b := cords.NewBuilder()
	err := text.EachLeaf(func(l cords.Leaf, pos uint64) error {
		if fragment := m.Process(l.String()); fragment != "" {
			b.Append(textLeaf(fragment))
		}
		return nil
	})
	if err != nil {
		return cords.Cord{}, WrapError(err, EINTERNAL, "cannot traverse text cord")
	}
	if tail := m.Flush(); tail != "" {
		b.Append(textLeaf(tail))
	}
	return b.Cord(), nil
}

// --- Cord leafs ------------------------------------------------------------

// textLeaf is the cord leaf type produced by SubstituteCord.
type textLeaf string

// Weight of a leaf is its string length in bytes.
func (l textLeaf) Weight() uint64 {
	return uint64(len(l))
}

func (l textLeaf) String() string {
	return string(l)
}

// Split splits a leaf at position i, resulting in 2 new leafs.
func (l textLeaf) Split(i uint64) (cords.Leaf, cords.Leaf) {
	return l[:i], l[i:]
}

// Substring returns a string segment of the leaf's text fragment.
func (l textLeaf) Substring(i, j uint64) []byte {
	return []byte(l[i:j])
}

var _ cords.Leaf = textLeaf("")
