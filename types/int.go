package types

import "strconv"

// Int32Value represents an int
type Int32Value struct {
	Val int32
}

// NewInt creates a new Int32Value
func NewInt(val int32) Int32Value {
	return Int32Value{Val: val}
}

// Type returns the type name for ints
func (i Int32Value) Type() TypeName {
	return TypeInt
}

// String returns the decimal representation
func (i Int32Value) String() string {
	return strconv.FormatInt(int64(i.Val), 10)
}

// Literal is the same as String for ints
func (i Int32Value) Literal() string {
	return i.String()
}

// Equal checks variant and payload equality
func (i Int32Value) Equal(other Value) bool {
	o, ok := other.(Int32Value)
	return ok && o.Val == i.Val
}
