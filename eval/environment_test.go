package eval

import (
	"testing"

	"minilang/types"
)

func TestEnvironmentDeclareAndLookup(t *testing.T) {
	global := NewEnvironment()
	if err := global.Declare("x", types.NewInt(1)); err != nil {
		t.Fatalf("Declare(x) error = %v", err)
	}

	child := NewNestedEnvironment(global)
	val, err := child.Lookup("x")
	if err != nil {
		t.Fatalf("child.Lookup(x) error = %v", err)
	}
	if !val.Equal(types.NewInt(1)) {
		t.Errorf("child.Lookup(x) = %v, want 1", val)
	}

	if _, err := child.Lookup("missing"); err == nil || err.Kind != types.ErrUndeclaredVariable {
		t.Errorf("Lookup(missing) error = %v, want UndeclaredVariable", err)
	}
}

func TestEnvironmentDeclareRejectsVisibleNames(t *testing.T) {
	tests := []struct {
		name  string
		setup func() *Environment
	}{
		{
			name: "same scope",
			setup: func() *Environment {
				env := NewEnvironment()
				env.Declare("x", types.NewStr("a"))
				return env
			},
		},
		{
			name: "ancestor scope",
			setup: func() *Environment {
				global := NewEnvironment()
				global.Declare("x", types.NewDouble(1))
				return NewNestedEnvironment(NewNestedEnvironment(global))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := tt.setup()
			err := env.Declare("x", types.NewInt(2))
			if err == nil || err.Kind != types.ErrDuplicateDeclaration {
				t.Errorf("Declare(x) error = %v, want DuplicateDeclaration", err)
			}
		})
	}
}

func TestEnvironmentAssignKeepsVariableType(t *testing.T) {
	global := NewEnvironment()
	global.Declare("n", types.NewInt(0))
	global.Declare("f", types.NewFloat(0))
	global.Declare("s", types.NewStr(""))
	child := NewNestedEnvironment(global)

	tests := []struct {
		name  string
		value types.Value
		want  types.Value
		kind  types.ErrorKind
	}{
		{"n", types.NewDouble(2.5), types.NewInt(2), types.ErrNone},
		{"n", types.NewDouble(3.5), types.NewInt(4), types.ErrNone},
		{"f", types.NewInt(7), types.NewFloat(7), types.ErrNone},
		{"s", types.NewStr("hi"), types.NewStr("hi"), types.ErrNone},
		{"s", types.NewInt(1), nil, types.ErrTypeMismatch},
		{"n", types.NewStr("1"), nil, types.ErrTypeMismatch},
		{"missing", types.NewInt(1), nil, types.ErrUndeclaredVariable},
	}

	for _, tt := range tests {
		t.Run(tt.name+"="+tt.value.String(), func(t *testing.T) {
			err := child.Assign(tt.name, tt.value)
			if tt.kind != types.ErrNone {
				if err == nil || err.Kind != tt.kind {
					t.Fatalf("Assign error = %v, want %s", err, tt.kind)
				}
				return
			}
			if err != nil {
				t.Fatalf("Assign error = %v", err)
			}
			got, _ := global.Get(tt.name)
			if !got.Equal(tt.want) {
				t.Errorf("%s = %v (%s), want %v (%s)", tt.name, got, got.Type(), tt.want, tt.want.Type())
			}
		})
	}

	if len(child.Bindings()) != 0 {
		t.Errorf("Assign created bindings in the child scope: %v", child.Bindings())
	}
}

func TestEnvironmentBindingsOrder(t *testing.T) {
	env := NewEnvironment()
	for _, name := range []string{"zeta", "alpha", "mid"} {
		env.Declare(name, types.NewInt(0))
	}

	got := env.Bindings()
	want := []string{"zeta", "alpha", "mid"}
	for i, b := range got {
		if b.Name != want[i] {
			t.Errorf("Bindings()[%d] = %s, want %s", i, b.Name, want[i])
		}
	}
}
