package charsub

import (
	"strings"
	"unicode/utf8"
)

// Substitute applies the table to the input text and returns the
// substituted text. At every position the longest pattern matching there
// is replaced; where no pattern matches, the input character passes
// through unchanged. Substitution is total and never re-examines output
// it has already produced, i.e. there is no backtracking across the
// boundary of an earlier replacement.
//
// An empty (or nil) table reproduces the input unchanged.
func (t *Table) Substitute(input string) string {
	if t.Len() == 0 {
		return input
	}
	var out strings.Builder
	out.Grow(len(input))
	for i := 0; i < len(input); {
		n, replacement, _ := t.matchPrefix(input[i:])
		if n > 0 {
			out.WriteString(replacement)
			i += n
			continue
		}
		_, size := utf8.DecodeRuneInString(input[i:])
		out.WriteString(input[i : i+size])
		i += size
	}
	return out.String()
}

// matchPrefix matches table patterns against the start of s, extending
// the candidate code-point by code-point as long as the pattern trie
// holds keys with that prefix. It returns the byte length and the
// replacement of the longest complete match (n = 0 if none), and whether
// a longer pattern could still complete beyond the end of s, the case a
// streaming machine has to hold input back for.
//
// s need not be valid UTF-8; a stray byte advances the candidate by one
// byte and will simply never extend to a pattern.
func (t *Table) matchPrefix(s string) (n int, replacement string, open bool) {
	if t == nil || t.patterns == nil {
		return 0, "", false
	}
	prefix := ""
	for i := 0; i < len(s); {
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
		prefix = s[:i]
		if !t.patterns.HasKeysWithPrefix(prefix) {
			return n, replacement, false
		}
		if node, ok := t.patterns.Find(prefix); ok {
			n = len(prefix)
			replacement, _ = node.Meta().(string)
		}
	}
	if prefix == "" {
		return 0, "", false
	}
	// ran out of input with the trie still tracking our prefix
	for _, key := range t.patterns.PrefixSearch(prefix) {
		if len(key) > len(prefix) {
			return n, replacement, true
		}
	}
	return n, replacement, false
}
