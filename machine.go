package charsub

import (
	"io"
	"strings"
	"unicode/utf8"
)

// A Machine applies a compiled table to text arriving in chunks, e.g.
// from a formatting-command interpreter which produces output piecemeal.
// Process substitutes as much of the text seen so far as is already
// decidable; a trailing portion which is still a live prefix of some
// pattern is held back until more input (or Flush) resolves it. The
// held-back tail never exceeds the longest match in progress.
//
// A Machine owns its buffering state and must not be used from multiple
// goroutines; the underlying Table may be shared between machines.
type Machine struct {
	table   *Table
	pending string
}

// NewMachine creates a substitution machine for a compiled table.
func NewMachine(t *Table) *Machine {
	return &Machine{table: t}
}

// Process appends chunk to the machine's input and returns all output
// which no further input can change any more.
func (m *Machine) Process(chunk string) string {
	if m.table.Len() == 0 {
		return chunk
	}
	buf := m.pending + chunk
	limit := len(buf) - incompleteTail(buf)
	var out strings.Builder
	i := 0
	for i < limit {
		n, replacement, open := m.table.matchPrefix(buf[i:limit])
		if open {
			break // tail may still extend to a longer match
		}
		if n > 0 {
			out.WriteString(replacement)
			i += n
			continue
		}
		_, size := utf8.DecodeRuneInString(buf[i:])
		out.WriteString(buf[i : i+size])
		i += size
	}
	m.pending = buf[i:]
	return out.String()
}

// Flush resolves the held-back tail as if the input had ended there,
// returns the remaining output and resets the machine. After Flush the
// machine starts over from scratch; an interrupted stream cannot be
// resumed mid-match.
func (m *Machine) Flush() string {
	rest := m.pending
	m.pending = ""
	return m.table.Substitute(rest)
}

// SubstituteReader drives the machine from a stream of code points until
// EOF and returns the substituted text. The machine is flushed, so it can
// be reused for another stream afterwards.
func (m *Machine) SubstituteReader(r io.RuneReader) (string, error) {
	var out strings.Builder
	var rbuf [utf8.UTFMax]byte
	for {
		ch, _, err := r.ReadRune()
		if err == io.EOF {
			break
		}
		if err != nil {
			return out.String(), WrapError(err, EINTERNAL, "cannot read input text")
		}
		n := utf8.EncodeRune(rbuf[:], ch)
		out.WriteString(m.Process(string(rbuf[:n])))
	}
	out.WriteString(m.Flush())
	return out.String(), nil
}

// SubstituteReader applies the table to a stream of code points; see
// Machine.SubstituteReader.
func (t *Table) SubstituteReader(r io.RuneReader) (string, error) {
	return NewMachine(t).SubstituteReader(r)
}

// incompleteTail returns the length in bytes of a trailing partial UTF-8
// encoding, so that chunk boundaries inside a code point do not confuse
// the matcher.
func incompleteTail(s string) int {
	for n := 1; n < utf8.UTFMax && n <= len(s); n++ {
		b := s[len(s)-n]
		if utf8.RuneStart(b) {
			if utf8.FullRuneInString(s[len(s)-n:]) {
				return 0
			}
			return n
		}
	}
	return 0
}
