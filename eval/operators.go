package eval

import (
	"math"

	"minilang/types"
)

// ============================================================================
// UNARY OPERATORS
// ============================================================================

// evalUnaryMinus implements unary negation: -x
// Negates in the operand's own numeric type
func evalUnaryMinus(operand types.Value) types.Result {
	switch v := operand.(type) {
	case types.Int32Value:
		return types.Ok(types.NewInt(-v.Val))
	case types.Float32Value:
		return types.Ok(types.NewFloat(-v.Val))
	case types.Float64Value:
		return types.Ok(types.NewDouble(-v.Val))
	case types.StrValue:
		return types.Failf(types.ErrInvalidOperation, "cannot negate string %s", v.Literal())
	default:
		return types.Failf(types.ErrInvalidOperation, "cannot negate a value with no type")
	}
}

// ============================================================================
// ARITHMETIC OPERATORS
// ============================================================================

// evalArithmetic implements + - * / % ^ **
//
// Strings only support + between two strings; mixing a string with
// anything else is a type mismatch. Numbers are promoted along
// double > float > int, except that % requires two ints and
// exponentiation always computes in double.
func evalArithmetic(op string, left, right types.Value) types.Result {
	if op == "^" || op == "**" {
		return evalPower(left, right)
	}

	leftStr, rightStr := types.IsString(left), types.IsString(right)
	switch {
	case leftStr && rightStr:
		if op != "+" {
			return types.Failf(types.ErrInvalidOperation, "operator %s is not defined on strings", op)
		}
		return types.Ok(types.NewStr(left.String() + right.String()))
	case leftStr || rightStr:
		return types.Failf(types.ErrTypeMismatch, "cannot apply %s to %s and %s",
			op, types.TypeOf(left), types.TypeOf(right))
	}

	if left == nil || right == nil {
		return types.Failf(types.ErrInvalidOperation, "operand of %s has no value", op)
	}

	if op == "%" {
		return evalModulo(left, right)
	}

	switch types.Promote(left.Type(), right.Type()) {
	case types.TypeDouble:
		l, _ := types.ToFloat64(left)
		r, _ := types.ToFloat64(right)
		return types.Ok(types.NewDouble(applyFloat(op, l, r)))
	case types.TypeFloat:
		l, _ := types.ToFloat32(left)
		r, _ := types.ToFloat32(right)
		return types.Ok(types.NewFloat(applyFloat32(op, l, r)))
	default:
		return evalIntArithmetic(op, left.(types.Int32Value).Val, right.(types.Int32Value).Val)
	}
}

// evalIntArithmetic computes in int with two's-complement wrap-around
func evalIntArithmetic(op string, l, r int32) types.Result {
	switch op {
	case "+":
		return types.Ok(types.NewInt(l + r))
	case "-":
		return types.Ok(types.NewInt(l - r))
	case "*":
		return types.Ok(types.NewInt(l * r))
	case "/":
		if r == 0 {
			return types.Failf(types.ErrDivisionByZero, "integer division by zero")
		}
		return types.Ok(types.NewInt(l / r))
	case "%":
		if r == 0 {
			return types.Failf(types.ErrDivisionByZero, "integer modulo by zero")
		}
		return types.Ok(types.NewInt(l % r))
	}
	return types.Failf(types.ErrInvalidOperation, "unknown operator %s", op)
}

func applyFloat(op string, l, r float64) float64 {
	switch op {
	case "+":
		return l + r
	case "-":
		return l - r
	case "*":
		return l * r
	default: // "/"
		return l / r
	}
}

func applyFloat32(op string, l, r float32) float32 {
	switch op {
	case "+":
		return l + r
	case "-":
		return l - r
	case "*":
		return l * r
	default: // "/"
		return l / r
	}
}

// evalModulo implements %: both operands must be ints
func evalModulo(left, right types.Value) types.Result {
	l, lok := left.(types.Int32Value)
	r, rok := right.(types.Int32Value)
	if !lok || !rok {
		return types.Failf(types.ErrTypeMismatch, "%% requires int operands, got %s and %s",
			types.TypeOf(left), types.TypeOf(right))
	}
	return evalIntArithmetic("%", l.Val, r.Val)
}

// evalPower implements ^ and **, always computing in double
func evalPower(left, right types.Value) types.Result {
	if types.IsString(left) || types.IsString(right) {
		return types.Failf(types.ErrInvalidOperation, "cannot exponentiate a string")
	}
	base, err := types.ToFloat64(left)
	if err != nil {
		return types.Fail(err)
	}
	exp, err := types.ToFloat64(right)
	if err != nil {
		return types.Fail(err)
	}
	return types.Ok(types.NewDouble(math.Pow(base, exp)))
}

// ============================================================================
// COMPARISON OPERATORS
// ============================================================================

// evalCompare implements < <= > >= == != in the promoted numeric type
func evalCompare(op string, left, right types.Value) (bool, *types.Error) {
	if types.IsString(left) || types.IsString(right) {
		return false, types.NewError(types.ErrInvalidOperation, "cannot compare strings with %s", op)
	}
	if left == nil || right == nil {
		return false, types.NewError(types.ErrInvalidOperation, "operand of %s has no value", op)
	}

	// NaN compares unequal to everything
	var cmp int
	switch types.Promote(left.Type(), right.Type()) {
	case types.TypeDouble:
		l, _ := types.ToFloat64(left)
		r, _ := types.ToFloat64(right)
		if math.IsNaN(l) || math.IsNaN(r) {
			return op == "!=", nil
		}
		cmp = compareOrdered(l, r)
	case types.TypeFloat:
		l, _ := types.ToFloat32(left)
		r, _ := types.ToFloat32(right)
		if l != l || r != r {
			return op == "!=", nil
		}
		cmp = compareOrdered(l, r)
	default:
		cmp = compareOrdered(left.(types.Int32Value).Val, right.(types.Int32Value).Val)
	}

	switch op {
	case "<":
		return cmp < 0, nil
	case "<=":
		return cmp <= 0, nil
	case ">":
		return cmp > 0, nil
	case ">=":
		return cmp >= 0, nil
	case "==":
		return cmp == 0, nil
	case "!=":
		return cmp != 0, nil
	}
	return false, types.NewError(types.ErrInvalidOperation, "unknown operator %s", op)
}

func compareOrdered[T int32 | float32 | float64](l, r T) int {
	switch {
	case l < r:
		return -1
	case l > r:
		return 1
	default:
		return 0
	}
}

// ============================================================================
// INCREMENT / DECREMENT
// ============================================================================

// evalStep adds delta (+1 or -1) to a numeric value, keeping its type
func evalStep(v types.Value, delta int32) types.Result {
	switch n := v.(type) {
	case types.StrValue:
		return types.Failf(types.ErrInvalidOperation, "cannot increment or decrement string %s", n.Literal())
	case nil:
		return types.Failf(types.ErrInvalidOperation, "cannot increment or decrement a value with no type")
	}
	return evalArithmetic("+", v, types.NewInt(delta))
}
