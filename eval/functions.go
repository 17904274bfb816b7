package eval

import (
	"strings"

	"minilang/parser"
	"minilang/types"
)

// FunctionEntry is one declared function: signature plus unevaluated body
type FunctionEntry struct {
	Name       string
	ReturnType types.TypeName
	Params     []parser.Param
	Decl       *parser.FuncDecl
}

// Body returns the statements of the function
func (f *FunctionEntry) Body() []parser.Stmt {
	return f.Decl.Body
}

// Signature renders the parameter types, e.g. "(int, float)"
func (f *FunctionEntry) Signature() string {
	names := make([]string, len(f.Params))
	for i, p := range f.Params {
		names[i] = string(p.Type)
	}
	return "(" + strings.Join(names, ", ") + ")"
}

// sameSignature reports whether both entries have identical parameter types
func (f *FunctionEntry) sameSignature(other *FunctionEntry) bool {
	if len(f.Params) != len(other.Params) {
		return false
	}
	for i := range f.Params {
		if f.Params[i].Type != other.Params[i].Type {
			return false
		}
	}
	return true
}

// FunctionTable maps names to their declared overloads.
// It is filled during the load phase and read-only afterwards.
type FunctionTable struct {
	entries map[string][]*FunctionEntry
	order   []*FunctionEntry
}

// NewFunctionTable creates an empty table
func NewFunctionTable() *FunctionTable {
	return &FunctionTable{
		entries: make(map[string][]*FunctionEntry),
	}
}

// Declare registers a function declaration.
// Overloads of a name must share the arity and differ in parameter types.
func (t *FunctionTable) Declare(decl *parser.FuncDecl) *types.Error {
	entry := &FunctionEntry{
		Name:       decl.Name,
		ReturnType: decl.ReturnType,
		Params:     decl.Params,
		Decl:       decl,
	}

	seen := make(map[string]bool, len(decl.Params))
	for _, p := range decl.Params {
		if seen[p.Name] {
			return types.NewError(types.ErrDuplicateDeclaration,
				"parameter '%s' is declared twice in function '%s'", p.Name, decl.Name).At(p.Pos)
		}
		seen[p.Name] = true
	}

	for _, existing := range t.entries[decl.Name] {
		if len(existing.Params) != len(entry.Params) {
			return types.NewError(types.ErrDuplicateDeclaration,
				"function '%s' is already declared with %d parameters", decl.Name, len(existing.Params)).At(decl.Pos)
		}
		if existing.sameSignature(entry) {
			return types.NewError(types.ErrDuplicateDeclaration,
				"function '%s%s' is already declared", decl.Name, entry.Signature()).At(decl.Pos)
		}
	}

	t.entries[decl.Name] = append(t.entries[decl.Name], entry)
	t.order = append(t.order, entry)
	return nil
}

// Has reports whether any function is declared under name
func (t *FunctionTable) Has(name string) bool {
	return len(t.entries[name]) > 0
}

// Lookup returns the overloads declared under name in declaration order
func (t *FunctionTable) Lookup(name string) []*FunctionEntry {
	return t.entries[name]
}

// Resolve selects the overload of name to run for args
func (t *FunctionTable) Resolve(name string, args []types.Value) (*FunctionEntry, *types.Error) {
	overloads := t.entries[name]
	if len(overloads) == 0 {
		return nil, types.NewError(types.ErrUndeclaredFunction, "function '%s' is not declared", name)
	}
	if arity := len(overloads[0].Params); arity != len(args) {
		return nil, types.NewError(types.ErrArityMismatch,
			"function '%s' expects %d arguments, got %d", name, arity, len(args))
	}
	if len(overloads) == 1 {
		return overloads[0], nil
	}

	// Exact parameter types
	for _, f := range overloads {
		if matches(f, args, func(p parser.Param, v types.Value) bool {
			return types.TypeOf(v) == p.Type
		}) {
			return f, nil
		}
	}

	// Convertible: string parameters take strings, numeric take numbers
	for _, f := range overloads {
		if matches(f, args, func(p parser.Param, v types.Value) bool {
			return (p.Type == types.TypeString) == types.IsString(v)
		}) {
			return f, nil
		}
	}

	return overloads[len(overloads)-1], nil
}

func matches(f *FunctionEntry, args []types.Value, ok func(parser.Param, types.Value) bool) bool {
	for i, p := range f.Params {
		if !ok(p, args[i]) {
			return false
		}
	}
	return true
}

// Entries returns every declared function in declaration order
func (t *FunctionTable) Entries() []*FunctionEntry {
	return t.order
}
