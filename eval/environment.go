package eval

import "minilang/types"

// Binding is a declared variable as seen by reports
type Binding struct {
	Name  string
	Value types.Value
}

// Environment manages variable bindings with lexical scoping.
// Each scope owns its bindings and points at its parent; the global
// scope has no parent.
type Environment struct {
	vars   map[string]types.Value
	order  []string // declaration order
	parent *Environment
}

// NewEnvironment creates a new environment with no parent (global scope)
func NewEnvironment() *Environment {
	return &Environment{
		vars: make(map[string]types.Value),
	}
}

// NewNestedEnvironment creates a new environment with a parent scope
func NewNestedEnvironment(parent *Environment) *Environment {
	return &Environment{
		vars:   make(map[string]types.Value),
		parent: parent,
	}
}

// Parent returns the enclosing scope, or nil for the global scope
func (e *Environment) Parent() *Environment {
	return e.parent
}

// Get looks up a variable by name
// Searches current scope, then parent scopes
// Returns (value, true) if found, (nil, false) if not found
func (e *Environment) Get(name string) (types.Value, bool) {
	if owner := e.owner(name); owner != nil {
		return owner.vars[name], true
	}
	return nil, false
}

// owner returns the nearest scope that declares name
func (e *Environment) owner(name string) *Environment {
	for env := e; env != nil; env = env.parent {
		if _, ok := env.vars[name]; ok {
			return env
		}
	}
	return nil
}

// Declare binds name in this scope.
// Fails if name is visible here or in any enclosing scope.
func (e *Environment) Declare(name string, value types.Value) *types.Error {
	if e.owner(name) != nil {
		return types.NewError(types.ErrDuplicateDeclaration, "variable '%s' is already declared", name)
	}
	e.vars[name] = value
	e.order = append(e.order, name)
	return nil
}

// Lookup returns the value bound to name in the nearest scope
func (e *Environment) Lookup(name string) (types.Value, *types.Error) {
	val, ok := e.Get(name)
	if !ok {
		return nil, types.NewError(types.ErrUndeclaredVariable, "variable '%s' is not declared", name)
	}
	return val, nil
}

// Assign stores value into the nearest scope that owns name, converted
// to the type of the variable already bound there
func (e *Environment) Assign(name string, value types.Value) *types.Error {
	owner := e.owner(name)
	if owner == nil {
		return types.NewError(types.ErrUndeclaredVariable, "variable '%s' is not declared", name)
	}

	current := owner.vars[name]
	if value != nil && types.IsString(current) != types.IsString(value) {
		return types.NewError(types.ErrTypeMismatch, "cannot assign %s value to %s variable '%s'",
			value.Type(), current.Type(), name)
	}

	converted, err := types.Coerce(current.Type(), value)
	if err != nil {
		return err
	}
	owner.vars[name] = converted
	return nil
}

// Bindings returns the variables of this scope in declaration order
func (e *Environment) Bindings() []Binding {
	out := make([]Binding, len(e.order))
	for i, name := range e.order {
		out[i] = Binding{Name: name, Value: e.vars[name]}
	}
	return out
}
