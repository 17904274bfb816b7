package types

import "strings"

// StrValue represents a string
type StrValue struct {
	val string
}

// NewStr creates a new string value
func NewStr(s string) StrValue {
	return StrValue{val: s}
}

// Type returns the type name for strings
func (s StrValue) Type() TypeName {
	return TypeString
}

// String returns the raw text, as print writes it
func (s StrValue) String() string {
	return s.val
}

// Literal returns the quoted form used by the globals report
func (s StrValue) Literal() string {
	var b strings.Builder
	b.WriteByte('"')
	b.WriteString(s.val)
	b.WriteByte('"')
	return b.String()
}

// Equal compares two values for equality (case-sensitive)
func (s StrValue) Equal(other Value) bool {
	o, ok := other.(StrValue)
	return ok && o.val == s.val
}

// Value returns the internal string value
func (s StrValue) Value() string {
	return s.val
}
