package types

import "math"

// Coerce converts v to the target declared type.
//
// Rules:
//   - string targets accept only strings; nil becomes ""
//   - numeric targets reject strings; nil becomes the zero of the target
//   - void discards the value
func Coerce(target TypeName, v Value) (Value, *Error) {
	switch target {
	case TypeString:
		if v == nil {
			return NewStr(""), nil
		}
		s, ok := v.(StrValue)
		if !ok {
			return nil, NewError(ErrTypeMismatch, "cannot convert %s to 'string'", v.Literal())
		}
		return s, nil
	case TypeInt:
		if v == nil {
			return NewInt(0), nil
		}
		return ToInt32(v)
	case TypeFloat:
		if v == nil {
			return NewFloat(0), nil
		}
		f, err := ToFloat32(v)
		if err != nil {
			return nil, err
		}
		return NewFloat(f), nil
	case TypeDouble:
		if v == nil {
			return NewDouble(0), nil
		}
		d, err := ToFloat64(v)
		if err != nil {
			return nil, err
		}
		return NewDouble(d), nil
	case TypeVoid:
		return nil, nil
	default:
		return nil, NewError(ErrTypeMismatch, "unknown type '%s'", target)
	}
}

// ToInt32 converts a numeric value to an int.
// Fractions round half to even; values outside the int range fail.
func ToInt32(v Value) (Int32Value, *Error) {
	switch n := v.(type) {
	case Int32Value:
		return n, nil
	case Float32Value:
		return roundToInt32(float64(n.Val))
	case Float64Value:
		return roundToInt32(n.Val)
	case StrValue:
		return Int32Value{}, NewError(ErrTypeMismatch, "cannot convert %s to 'int'", n.Literal())
	default:
		return Int32Value{}, NewError(ErrInvalidOperation, "value has no type")
	}
}

func roundToInt32(f float64) (Int32Value, *Error) {
	r := math.RoundToEven(f)
	if math.IsNaN(r) || r > math.MaxInt32 || r < math.MinInt32 {
		return Int32Value{}, NewError(ErrTypeMismatch, "value %s is out of range for 'int'", formatFloat(f, 64))
	}
	return NewInt(int32(r)), nil
}

// ToFloat32 converts a numeric value to float precision
func ToFloat32(v Value) (float32, *Error) {
	switch n := v.(type) {
	case Int32Value:
		return float32(n.Val), nil
	case Float32Value:
		return n.Val, nil
	case Float64Value:
		return float32(n.Val), nil
	case StrValue:
		return 0, NewError(ErrTypeMismatch, "cannot convert %s to 'float'", n.Literal())
	default:
		return 0, NewError(ErrInvalidOperation, "value has no type")
	}
}

// ToFloat64 converts a numeric value to double precision
func ToFloat64(v Value) (float64, *Error) {
	switch n := v.(type) {
	case Int32Value:
		return float64(n.Val), nil
	case Float32Value:
		return float64(n.Val), nil
	case Float64Value:
		return n.Val, nil
	case StrValue:
		return 0, NewError(ErrTypeMismatch, "cannot convert %s to 'double'", n.Literal())
	default:
		return 0, NewError(ErrInvalidOperation, "value has no type")
	}
}

// ToBool implements condition truthiness.
// Any string is true, the absent value is false, numbers are true when nonzero.
func ToBool(v Value) bool {
	switch n := v.(type) {
	case nil:
		return false
	case StrValue:
		return true
	case Int32Value:
		return n.Val != 0
	case Float32Value:
		return n.Val != 0
	case Float64Value:
		return n.Val != 0
	default:
		return false
	}
}
