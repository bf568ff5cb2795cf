/*
Package charsub performs character-sequence substitution on text, driven
by a user-supplied definition table. It rewrites ASCII-friendly input
conventions (ligature-style multi-character sequences, diacritic combos,
transliteration schemes for classical languages) into their target Unicode
representation. The package is intended as a preprocessing stage of a
typesetting pipeline: it runs after formatting commands have been resolved
and before text runs are handed to glyph shaping.

Substitution is greedy longest-match: at every input position the longest
table pattern matching there is replaced, or the input character passes
through unchanged. Patterns may share prefixes (a table may map both "`"
and "``"), and ties between patterns of equal length cannot arise because
the first occurrence of a pattern in the table wins.

Definition Tables

A definition table is line-oriented text. A rule line starts in column 0
and has the form

	PATTERN  REPLACEMENT

where the separator is a run of unescaped horizontal whitespace. Anything
after the replacement column is a trailing comment. A blank line, or a
line whose first character is whitespace, is commentary and skipped; this
permits literate definition files with prose paragraphs between the rules
(rules start in column 0, commentary does not).

Both columns may use escape syntax to denote characters that cannot
conveniently appear literally, most importantly \u{H+} for an arbitrary
code point by hex value, and "\ " for a literal space (which otherwise
would collide with the column separator); see package escape. A typical
table for TeX-style input conventions reads

	`	\u{2018}
	``	\u{201c}
	--	\u{2013}
	---	\u{2014}
	~	\u{a0}

Compiled tables are immutable and may be shared by any number of
concurrent substitution calls. Substitution itself is total: once a table
has been built, every input yields a defined output, and all error
reporting happens at table-build time.

This package has no notion of case context, fonts or glyphs; it operates
on code points only. Locating and reading table files from disk is left
to the client.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package charsub

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'charsub'.
func tracer() tracing.Trace {
	return tracing.Select("charsub")
}
