package types

import (
	"math"
	"testing"
)

func TestValueFormatting(t *testing.T) {
	tests := []struct {
		v       Value
		display string
		literal string
	}{
		{NewInt(42), "42", "42"},
		{NewInt(-7), "-7", "-7"},
		{NewDouble(3.5), "3.5", "3.5"},
		{NewDouble(3), "3", "3"},
		{NewFloat(0.1), "0.1", "0.1"},
		{NewDouble(1e20), "1E+20", "1E+20"},
		{NewDouble(math.Inf(1)), "Infinity", "Infinity"},
		{NewStr("hi"), "hi", `"hi"`},
	}

	for _, tt := range tests {
		t.Run(tt.display, func(t *testing.T) {
			if got := tt.v.String(); got != tt.display {
				t.Errorf("String() = %q, want %q", got, tt.display)
			}
			if got := tt.v.Literal(); got != tt.literal {
				t.Errorf("Literal() = %q, want %q", got, tt.literal)
			}
		})
	}
}

func TestValueEqualRequiresSameVariant(t *testing.T) {
	if NewInt(1).Equal(NewDouble(1)) {
		t.Error("int 1 should not equal double 1")
	}
	if NewFloat(2).Equal(NewDouble(2)) {
		t.Error("float 2 should not equal double 2")
	}
	if !NewStr("a").Equal(NewStr("a")) {
		t.Error("equal strings should be equal")
	}
	if NewStr("a").Equal(NewStr("A")) {
		t.Error("strings compare case-sensitively")
	}
}

func TestTypeOfAndDisplayNil(t *testing.T) {
	if TypeOf(nil) != TypeVoid {
		t.Errorf("TypeOf(nil) = %s, want void", TypeOf(nil))
	}
	if Display(nil) != "" {
		t.Errorf("Display(nil) = %q, want empty", Display(nil))
	}
	if !IsString(NewStr("")) || IsString(NewInt(0)) {
		t.Error("IsString misclassifies values")
	}
}

func TestParseTypeName(t *testing.T) {
	for _, name := range []string{"int", "float", "double", "string", "void"} {
		tn, ok := ParseTypeName(name)
		if !ok || tn.String() != name {
			t.Errorf("ParseTypeName(%q) = %q, %v", name, tn, ok)
		}
	}
	if _, ok := ParseTypeName("bool"); ok {
		t.Error("bool is not a type of the language")
	}
}
