package charsub

import (
	"bufio"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/derekparker/trie"
	"github.com/npillmayer/charsub/escape"
	"golang.org/x/text/unicode/norm"
)

// Entry is one pattern→replacement pair of a definition table, with all
// escape sequences already decoded. The list of entries is retained for
// diagnostics and introspection; matching uses the compiled form only.
type Entry struct {
	Pattern     string
	Replacement string
	Line        int // rule line in the definition document, 1-based
}

// Table is a compiled substitution table. It holds the patterns of a
// definition table in a prefix-searchable structure, so that the engine
// can find the longest pattern matching at an input position in time
// proportional to the match attempted, independent of the table size.
//
// A Table is immutable after BuildTable returns and may be shared
// read-only by any number of concurrent substitution calls.
type Table struct {
	patterns *trie.Trie
	entries  []Entry
}

// Option configures table building.
type Option func(*tableOptions)

type tableOptions struct {
	form *norm.Form
}

// Normalize lets BuildTable apply a Unicode normal form to every decoded
// replacement. Substitution itself never normalizes; this only fixes the
// shape replacements are stored in.
func Normalize(f norm.Form) Option {
	return func(o *tableOptions) {
		o.form = &f
	}
}

// BuildTable parses a definition document into a compiled table. The
// document is line-oriented; see the package documentation for the table
// format. Rule order is preserved, and the first occurrence of a pattern
// wins over later duplicates.
//
// All errors of this package surface here: substitution with a built
// table is total. Errors carry the offending line number (and column
// side, for escape errors) as a TableError.
func BuildTable(document string, opts ...Option) (*Table, error) {
	return ReadTable(strings.NewReader(document), opts...)
}

// maxLineLength caps the length of a single definition-table line.
// Rule lines are short by nature; a megabyte line is a broken file.
const maxLineLength = 1024 * 1024

// ReadTable is BuildTable for a definition document read from r.
// Lines longer than one megabyte are rejected.
func ReadTable(r io.Reader, opts ...Option) (*Table, error) {
	o := tableOptions{}
	for _, opt := range opts {
		opt(&o)
	}
	t := &Table{patterns: trie.New()}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineLength)
	lineno := 0
	for scanner.Scan() {
		lineno++
		if err := t.addLine(scanner.Text(), lineno, o); err != nil {
			return nil, WrapError(err, EINVALID, "%v", err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, WrapError(err, EINTERNAL, "cannot read definition table")
	}
	tracer().Infof("definition table compiled, %d substitutions", t.Len())
	return t, nil
}

// addLine processes a single line of a definition document. Commentary
// lines are skipped silently.
func (t *Table) addLine(line string, lineno int, o tableOptions) error {
	if line == "" {
		return nil
	}
	if first, _ := utf8.DecodeRuneInString(line); unicode.IsSpace(first) {
		return nil // rule lines start in column 0, commentary does not
	}
	rawpat, rawrepl, ok := splitColumns(line)
	if !ok {
		return TableError{Line: lineno, err: ErrMalformedLine}
	}
	pattern, err := escape.Decode(rawpat)
	if err != nil {
		return TableError{Line: lineno, Column: PatternColumn, err: err}
	}
	replacement, err := escape.Decode(rawrepl)
	if err != nil {
		return TableError{Line: lineno, Column: ReplacementColumn, err: err}
	}
	if o.form != nil {
		replacement = o.form.String(replacement)
	}
	return t.insert(pattern, replacement, lineno)
}

// splitColumns splits a rule line into its pattern and replacement
// columns on the first runs of unescaped whitespace. Escape sequences are
// carried over verbatim; decoding them is the caller's business. Text
// after the replacement column is a trailing comment and dropped.
func splitColumns(line string) (pattern string, replacement string, ok bool) {
	var fields []string
	var field strings.Builder
	escaped := false
	for _, r := range line {
		if escaped {
			field.WriteRune(r)
			escaped = false
			continue
		}
		switch {
		case r == '\\':
			field.WriteRune(r)
			escaped = true
		case unicode.IsSpace(r):
			if field.Len() > 0 {
				fields = append(fields, field.String())
				field.Reset()
				if len(fields) == 2 {
					return fields[0], fields[1], true
				}
			}
		default:
			field.WriteRune(r)
		}
	}
	if field.Len() > 0 {
		fields = append(fields, field.String())
	}
	if len(fields) < 2 {
		return "", "", false
	}
	return fields[0], fields[1], true
}

// insert records a decoded entry. The first occurrence of a pattern wins;
// later duplicates are dropped.
func (t *Table) insert(pattern string, replacement string, lineno int) error {
	if pattern == "" {
		return TableError{Line: lineno, Column: PatternColumn, err: ErrEmptyPattern}
	}
	if _, ok := t.patterns.Find(pattern); ok {
		tracer().Infof("line %d: duplicate pattern %q dropped, first mapping wins",
			lineno, pattern)
		return nil
	}
	t.patterns.Add(pattern, replacement)
	t.entries = append(t.entries, Entry{
		Pattern:     pattern,
		Replacement: replacement,
		Line:        lineno,
	})
	return nil
}

// Len returns the number of substitutions the table performs.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.entries)
}

// Entries returns the definition entries of the table in rule order, for
// diagnostic purposes.
func (t *Table) Entries() []Entry {
	if t == nil {
		return nil
	}
	entries := make([]Entry, len(t.entries))
	copy(entries, t.entries)
	return entries
}
