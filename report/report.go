// Package report writes the static dumps produced alongside a run: the
// lexeme listing, the global variables after load, and per-function
// metadata.
package report

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"

	"minilang/eval"
	"minilang/parser"
	"minilang/types"
)

// GlobalSource exposes the global scope of a loaded program
type GlobalSource interface {
	Globals() []eval.Binding
}

// FunctionSource exposes the declared functions of a loaded program
type FunctionSource interface {
	Functions() []*eval.FunctionEntry
}

// WriteLexemes writes one `<TYPE, 'text', line>` line per token
func WriteLexemes(w io.Writer, tokens []parser.Token) error {
	bw := bufio.NewWriter(w)
	for _, tok := range tokens {
		fmt.Fprintf(bw, "<%s, '%s', %d>\n", tok.Type, tok.Value, tok.Position.Line)
	}
	return bw.Flush()
}

// WriteGlobals writes one line per global variable in declaration order.
// String values are quoted.
func WriteGlobals(w io.Writer, src GlobalSource) error {
	bw := bufio.NewWriter(w)
	for _, b := range src.Globals() {
		fmt.Fprintf(bw, "Name: %s, Type: %s, Value: %s\n", b.Name, types.TypeOf(b.Value), b.Value.Literal())
	}
	return bw.Flush()
}

// Kind classifies a function for the function report
type Kind string

const (
	KindMain      Kind = "main"
	KindRecursive Kind = "recursive"
	KindIterative Kind = "iterative"
)

// Structure is one control structure occurrence
type Structure struct {
	Keyword string // if, else, for, while
	Pos     types.Position
}

// FunctionInfo is the static metadata reported for one function
type FunctionInfo struct {
	Name       string
	Kind       Kind
	ReturnType types.TypeName
	Params     []parser.Param
	Locals     []*parser.DeclStmt
	Structures []Structure
}

// Describe collects the metadata of fn by scanning its body
func Describe(fn *eval.FunctionEntry) FunctionInfo {
	info := FunctionInfo{
		Name:       fn.Name,
		Kind:       KindIterative,
		ReturnType: fn.ReturnType,
		Params:     fn.Params,
	}

	recursive := false
	parser.Inspect(fn.Decl, func(n parser.Node) bool {
		switch node := n.(type) {
		case *parser.CallExpr:
			if node.Name == fn.Name {
				recursive = true
			}
		case *parser.DeclStmt:
			info.Locals = append(info.Locals, node)
		case *parser.IfStmt:
			info.Structures = append(info.Structures, Structure{"if", node.Pos})
			if node.Else != nil {
				info.Structures = append(info.Structures, Structure{"else", node.ElsePos})
			}
		case *parser.ForStmt:
			info.Structures = append(info.Structures, Structure{"for", node.Pos})
		case *parser.WhileStmt:
			info.Structures = append(info.Structures, Structure{"while", node.Pos})
		}
		return true
	})

	// else is collected with its if; restore source order
	sort.SliceStable(info.Structures, func(i, j int) bool {
		a, b := info.Structures[i].Pos, info.Structures[j].Pos
		if a.Line != b.Line {
			return a.Line < b.Line
		}
		return a.Column < b.Column
	})

	switch {
	case fn.Name == "main":
		info.Kind = KindMain
	case recursive:
		info.Kind = KindRecursive
	}
	return info
}

// WriteFunctions writes the metadata block of every declared function
func WriteFunctions(w io.Writer, src FunctionSource) error {
	bw := bufio.NewWriter(w)
	for _, fn := range src.Functions() {
		writeFunction(bw, Describe(fn))
	}
	return bw.Flush()
}

func writeFunction(w io.Writer, info FunctionInfo) {
	params := make([]string, len(info.Params))
	for i, p := range info.Params {
		params[i] = string(p.Type) + " " + p.Name
	}

	fmt.Fprintf(w, "Function: %s\n", info.Name)
	fmt.Fprintf(w, "  Type: %s\n", info.Kind)
	fmt.Fprintf(w, "  Return Type: %s\n", info.ReturnType)
	fmt.Fprintf(w, "  Parameters: %s\n", strings.Join(params, ", "))

	fmt.Fprintln(w, "  Local variables:")
	for _, d := range info.Locals {
		fmt.Fprintf(w, "    %s %s\n", d.Type, d.Name)
	}

	fmt.Fprintln(w, "  Control Structures:")
	for _, s := range info.Structures {
		fmt.Fprintf(w, "    <%s, %d>\n", s.Keyword, s.Pos.Line)
	}

	fmt.Fprintln(w)
}
