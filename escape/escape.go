/*
Package escape decodes the escape notation of charsub definition tables.

Patterns and replacements in a definition table frequently need characters
which cannot appear literally in a table column: whitespace would collide
with the column separator, and exotic code points are easier to audit in
hex notation than as raw text. The escape forms recognized are

	\u{H+}   an arbitrary Unicode scalar value by hex digits
	\t \n \r tab, newline, carriage return
	\  \\    a literal space, a literal backslash
	\' \"    literal quote characters

Everything else passes through unchanged. Decoding is a pure function of
its input token.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package escape

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ErrInvalidEscape flags an escape introducer followed by an unrecognized
// escape form, or a \u{…} body which does not denote a Unicode scalar
// value (non-hex digits, a value beyond U+10FFFF, or a surrogate).
var ErrInvalidEscape = errors.New("invalid escape sequence")

// ErrUnterminatedEscape flags a token which ends in the middle of an
// escape sequence, e.g. an unclosed \u{ or a trailing lone backslash.
var ErrUnterminatedEscape = errors.New("unterminated escape sequence")

// DecodeError describes a failure to decode a token. It unwraps to one of
// the sentinel errors of this package.
type DecodeError struct {
	Token string // the token being decoded
	Pos   int    // byte offset at which decoding failed
	err   error
}

func (e DecodeError) Error() string {
	return fmt.Sprintf("%v at offset %d in %q", e.err, e.Pos, e.Token)
}

func (e DecodeError) Unwrap() error {
	return e.err
}

type state int8

const (
	stateText    state = iota
	stateEscape        // after '\'
	stateOpenHex       // after '\u', expecting '{'
	stateHex           // inside '\u{…}'
)

// Decode resolves all escape sequences in token and returns the resulting
// sequence of code points. Unescaped characters pass through unchanged.
func Decode(token string) (string, error) {
	if !strings.ContainsRune(token, '\\') {
		return token, nil
	}
	var out strings.Builder
	out.Grow(len(token)) // decoding never grows a token
	st := stateText
	var value rune
	ndigits := 0
	for i, r := range token {
		switch st {
		case stateText:
			if r == '\\' {
				st = stateEscape
			} else {
				out.WriteRune(r)
			}
		case stateEscape:
			st = stateText
			switch r {
			case 't':
				out.WriteByte('\t')
			case 'n':
				out.WriteByte('\n')
			case 'r':
				out.WriteByte('\r')
			case '\\', '\'', '"', ' ':
				out.WriteRune(r)
			case 'u':
				st = stateOpenHex
			default:
				return "", DecodeError{Token: token, Pos: i, err: ErrInvalidEscape}
			}
		case stateOpenHex:
			if r != '{' {
				return "", DecodeError{Token: token, Pos: i, err: ErrInvalidEscape}
			}
			value, ndigits = 0, 0
			st = stateHex
		case stateHex:
			if r == '}' {
				if ndigits == 0 || !utf8.ValidRune(value) {
					return "", DecodeError{Token: token, Pos: i, err: ErrInvalidEscape}
				}
				out.WriteRune(value)
				st = stateText
				continue
			}
			d, ok := hexDigit(r)
			if !ok {
				return "", DecodeError{Token: token, Pos: i, err: ErrInvalidEscape}
			}
			value = value<<4 + d
			ndigits++
			if value > unicode.MaxRune {
				return "", DecodeError{Token: token, Pos: i, err: ErrInvalidEscape}
			}
		}
	}
	if st != stateText {
		return "", DecodeError{Token: token, Pos: len(token), err: ErrUnterminatedEscape}
	}
	return out.String(), nil
}

func hexDigit(r rune) (rune, bool) {
	switch {
	case r >= '0' && r <= '9':
		return r - '0', true
	case r >= 'a' && r <= 'f':
		return r - 'a' + 10, true
	case r >= 'A' && r <= 'F':
		return r - 'A' + 10, true
	}
	return 0, false
}
