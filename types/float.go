package types

import (
	"math"
	"strconv"
)

// Float32Value represents a float
type Float32Value struct {
	Val float32
}

// NewFloat creates a new Float32Value
func NewFloat(val float32) Float32Value {
	return Float32Value{Val: val}
}

// Type returns the type name for floats
func (f Float32Value) Type() TypeName {
	return TypeFloat
}

// String returns the shortest representation that round-trips at 32 bits
func (f Float32Value) String() string {
	return formatFloat(float64(f.Val), 32)
}

// Literal is the same as String for floats
func (f Float32Value) Literal() string {
	return f.String()
}

// Equal checks variant and payload equality.
// NaN is never equal to anything (IEEE 754 semantics).
func (f Float32Value) Equal(other Value) bool {
	o, ok := other.(Float32Value)
	return ok && o.Val == f.Val
}

// Float64Value represents a double
type Float64Value struct {
	Val float64
}

// NewDouble creates a new Float64Value
func NewDouble(val float64) Float64Value {
	return Float64Value{Val: val}
}

// Type returns the type name for doubles
func (d Float64Value) Type() TypeName {
	return TypeDouble
}

// String returns the shortest representation that round-trips at 64 bits
func (d Float64Value) String() string {
	return formatFloat(d.Val, 64)
}

// Literal is the same as String for doubles
func (d Float64Value) Literal() string {
	return d.String()
}

// Equal checks variant and payload equality
func (d Float64Value) Equal(other Value) bool {
	o, ok := other.(Float64Value)
	return ok && o.Val == d.Val
}

// formatFloat renders a floating point number the way the general
// numeric format does: plain digits for moderate magnitudes, exponent
// notation for very large or very small ones. Whole numbers print
// without a trailing ".0".
func formatFloat(v float64, bits int) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	}
	abs := math.Abs(v)
	if abs != 0 && (abs >= 1e15 || abs < 1e-5) {
		return strconv.FormatFloat(v, 'E', -1, bits)
	}
	return strconv.FormatFloat(v, 'f', -1, bits)
}
