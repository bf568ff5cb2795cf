package charsub

import (
	"errors"
	"fmt"
)

// General error codes, aligned with the tyse core error codes.
const (
	NOERROR   int = 0
	EMISSING  int = 122 // resource does not exist
	EINVALID  int = 123 // validation failed
	EINTERNAL int = 125 // internal error
)

func errorText(ecode int) string {
	switch ecode {
	case NOERROR:
		return "OK"
	case EMISSING:
		return "not found"
	case EINVALID:
		return "invalid"
	case EINTERNAL:
		return "internal error"
	}
	return "undefined error"
}

// AppError is an error with an associated error code and a user-message.
type AppError interface {
	error
	ErrorCode() int
	UserMessage() string
}

type subError struct {
	error
	code int
	msg  string
}

func (e subError) Unwrap() error {
	return e.error
}

func (e subError) Error() string {
	return fmt.Sprintf("[%d] %v", e.code, e.error)
}

func (e subError) ErrorCode() int {
	return e.code
}

func (e subError) UserMessage() string {
	return e.msg
}

var _ AppError = subError{}

// WrapError wraps an error in a charsub error, featuring an error code and
// a user message.
// If err is nil, an error denoting NOERROR is returned.
func WrapError(err error, code int, format string, v ...interface{}) error {
	if err == nil {
		err = errors.New(errorText(code))
	}
	msg := fmt.Sprintf(format, v...)
	return subError{err, code, msg}
}

// Code returns the status code associated with an error.
// If no status code is found, it returns EINTERNAL.
// If err is nil, NOERROR is returned.
func Code(err error) (code int) {
	if err == nil {
		return NOERROR
	}
	if e := AppError(nil); errors.As(err, &e) {
		return e.ErrorCode()
	}
	return EINTERNAL
}

// UserMessage returns the user message associated with an error.
// If no message is found, it checks Code and returns that code's message.
// If err is nil, it returns "".
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	if e := AppError(nil); errors.As(err, &e) {
		return e.UserMessage()
	}
	return errorText(Code(err))
}

// Error creates an error with an error code and a user-message.
func Error(code int, format string, v ...interface{}) error {
	return subError{
		errors.New(errorText(code)),
		code,
		fmt.Sprintf(format, v...),
	}
}

// --- Definition table errors -----------------------------------------------

// ErrMalformedLine flags a rule line which cannot be split into a pattern
// column and a replacement column.
var ErrMalformedLine = errors.New("malformed rule line")

// ErrEmptyPattern flags a rule whose pattern decodes to the empty sequence.
// Such a rule can never match and indicates an error in the table.
var ErrEmptyPattern = errors.New("empty pattern")

// Column identifies the side of a rule line an error refers to.
type Column int8

// Columns of a rule line.
const (
	NoColumn Column = iota
	PatternColumn
	ReplacementColumn
)

func (c Column) String() string {
	switch c {
	case PatternColumn:
		return "pattern column"
	case ReplacementColumn:
		return "replacement column"
	}
	return "line"
}

// TableError describes a failure to build a table from a definition
// document. It carries the number of the offending line (1-based) and,
// for escape errors, the column side the error occurred in. TableError
// unwraps to one of the sentinel errors of this package or of package
// escape, so callers can decide per error class whether to abort the
// table load or to skip the bad rule.
type TableError struct {
	Line   int
	Column Column
	err    error
}

func (e TableError) Error() string {
	if e.Column == NoColumn {
		return fmt.Sprintf("definition table line %d: %v", e.Line, e.err)
	}
	return fmt.Sprintf("definition table line %d, %s: %v", e.Line, e.Column, e.err)
}

func (e TableError) Unwrap() error {
	return e.err
}
