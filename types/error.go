package types

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorKind classifies a runtime or load-time failure
type ErrorKind int

const (
	ErrNone ErrorKind = iota
	ErrUndeclaredVariable
	ErrDuplicateDeclaration
	ErrTypeMismatch
	ErrUndeclaredFunction
	ErrArityMismatch
	ErrMissingReturn
	ErrEmptyReturn
	ErrInvalidOperation
	ErrDivisionByZero
	ErrMissingMain
	ErrSyntax
)

var errorKindNames = map[ErrorKind]string{
	ErrNone:                 "None",
	ErrUndeclaredVariable:   "UndeclaredVariable",
	ErrDuplicateDeclaration: "DuplicateDeclaration",
	ErrTypeMismatch:         "TypeMismatch",
	ErrUndeclaredFunction:   "UndeclaredFunction",
	ErrArityMismatch:        "ArityMismatch",
	ErrMissingReturn:        "MissingReturn",
	ErrEmptyReturn:          "EmptyReturn",
	ErrInvalidOperation:     "InvalidOperation",
	ErrDivisionByZero:       "DivisionByZero",
	ErrMissingMain:          "MissingMain",
	ErrSyntax:               "SyntaxError",
}

// String returns the name of the error kind
func (k ErrorKind) String() string {
	if name, ok := errorKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// ErrorKindFromString converts a name like "TypeMismatch" to an ErrorKind
func ErrorKindFromString(s string) (ErrorKind, bool) {
	for k, name := range errorKindNames {
		if strings.EqualFold(name, s) {
			return k, true
		}
	}
	return ErrNone, false
}

// Position is a 1-based source location
type Position struct {
	Line   int
	Column int
}

// IsValid reports whether the position was set
func (p Position) IsValid() bool {
	return p.Line > 0
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Frame is one function activation in an error traceback
type Frame struct {
	Function string
	Pos      Position // call site
}

// Error is the failure value surfaced by every evaluator entry point
type Error struct {
	Kind   ErrorKind
	Msg    string
	Pos    Position // where the failure was detected (zero if unknown)
	Frames []Frame  // active calls, innermost first
}

// NewError creates an error of the given kind
func NewError(kind ErrorKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Kind.String())
	if e.Pos.IsValid() {
		b.WriteString(" at ")
		b.WriteString(e.Pos.String())
	}
	b.WriteString(": ")
	b.WriteString(e.Msg)
	return b.String()
}

// At sets the position if none was recorded yet and returns e
func (e *Error) At(pos Position) *Error {
	if !e.Pos.IsValid() {
		e.Pos = pos
	}
	return e
}

// Traceback formats the error followed by its call frames
//
//	TypeMismatch at 4:9: cannot convert "a" to 'int'
//	  in f called at 10:3
//	  in main
func (e *Error) Traceback() string {
	lines := []string{e.Error()}
	for _, f := range e.Frames {
		if f.Pos.IsValid() {
			lines = append(lines, fmt.Sprintf("  in %s called at %s", f.Function, f.Pos))
		} else {
			lines = append(lines, fmt.Sprintf("  in %s", f.Function))
		}
	}
	return strings.Join(lines, "\n")
}

// KindOf extracts the ErrorKind from err, or ErrNone if err is not an *Error
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ErrNone
}
