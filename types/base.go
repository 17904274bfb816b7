package types

// Value is the interface all runtime values implement.
// The set of implementations is closed: Int32Value, Float32Value,
// Float64Value and StrValue. A nil Value stands for the absent value
// produced by calling a void function in expression position.
type Value interface {
	Type() TypeName
	String() string   // display form, as written by print
	Literal() string  // literal form, as written by the globals report
	Equal(Value) bool // same variant and same payload
}

// TypeOf returns the type name of v, or TypeVoid for the absent value.
func TypeOf(v Value) TypeName {
	if v == nil {
		return TypeVoid
	}
	return v.Type()
}

// IsString reports whether v is a string value.
// The String/non-String split drives most coercion and operator rules.
func IsString(v Value) bool {
	_, ok := v.(StrValue)
	return ok
}

// Display returns the print form of v; the absent value prints as an empty line.
func Display(v Value) string {
	if v == nil {
		return ""
	}
	return v.String()
}
