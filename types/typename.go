package types

// TypeName is a declared type of the language
type TypeName string

const (
	TypeInt    TypeName = "int"
	TypeFloat  TypeName = "float"
	TypeDouble TypeName = "double"
	TypeString TypeName = "string"
	TypeVoid   TypeName = "void"
)

// String returns the keyword spelling of the type
func (t TypeName) String() string {
	return string(t)
}

// IsNumeric returns true for int, float and double
func (t TypeName) IsNumeric() bool {
	return t == TypeInt || t == TypeFloat || t == TypeDouble
}

// ParseTypeName converts a type keyword to a TypeName.
// Returns false for unknown names.
func ParseTypeName(s string) (TypeName, bool) {
	switch s {
	case "int":
		return TypeInt, true
	case "float":
		return TypeFloat, true
	case "double":
		return TypeDouble, true
	case "string":
		return TypeString, true
	case "void":
		return TypeVoid, true
	default:
		return "", false
	}
}

// rank orders numeric types on the promotion ladder: double > float > int
func (t TypeName) rank() int {
	switch t {
	case TypeDouble:
		return 3
	case TypeFloat:
		return 2
	case TypeInt:
		return 1
	default:
		return 0
	}
}

// Promote returns the result type of a numeric binary operation
// between operands of types a and b
func Promote(a, b TypeName) TypeName {
	if a.rank() >= b.rank() {
		return a
	}
	return b
}
