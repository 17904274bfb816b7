package eval

import (
	"fmt"
	"io"
	"os"

	"minilang/parser"
	"minilang/trace"
	"minilang/types"
)

// Evaluator walks the AST and evaluates expressions/statements
type Evaluator struct {
	globals  *Environment
	env      *Environment // innermost scope of the running code
	funcs    *FunctionTable
	out      io.Writer
	maxDepth int
}

// Option configures an Evaluator
type Option func(*Evaluator)

// WithOutput sets where print writes; the default is os.Stdout
func WithOutput(w io.Writer) Option {
	return func(e *Evaluator) {
		e.out = w
	}
}

// WithMaxDepth bounds nested function calls; n <= 0 disables the limit
func WithMaxDepth(n int) Option {
	return func(e *Evaluator) {
		e.maxDepth = n
	}
}

// New creates an evaluator with an empty global scope and function table
func New(opts ...Option) *Evaluator {
	globals := NewEnvironment()
	e := &Evaluator{
		globals:  globals,
		env:      globals,
		funcs:    NewFunctionTable(),
		out:      os.Stdout,
		maxDepth: types.DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// newContext creates the call context for one entry into the evaluator
func (e *Evaluator) newContext() *types.CallContext {
	ctx := types.NewCallContext()
	ctx.MaxDepth = e.maxDepth
	return ctx
}

// Load runs the load phase: global declarations are evaluated in the
// global scope and functions are registered, both in source order
func (e *Evaluator) Load(prog *parser.Program) error {
	ctx := e.newContext()
	for _, line := range prog.Lines {
		switch n := line.(type) {
		case *parser.FuncDecl:
			if err := e.funcs.Declare(n); err != nil {
				return err
			}
		case *parser.DeclStmt:
			if r := e.execDecl(n, ctx); r.IsError() {
				return r.Err.At(n.Pos)
			}
		default:
			return types.NewError(types.ErrInvalidOperation, "unexpected %T at top level", line).At(line.Position())
		}
	}
	return nil
}

// LoadSource parses and loads src
func (e *Evaluator) LoadSource(src string) error {
	prog, err := parser.Parse(src)
	if err != nil {
		return err
	}
	return e.Load(prog)
}

// RunMain invokes main with no arguments and discards its value
func (e *Evaluator) RunMain() error {
	if !e.funcs.Has("main") {
		return types.NewError(types.ErrMissingMain, "no function named 'main' is declared")
	}
	_, err := e.Call("main", nil)
	return err
}

// Call invokes a declared function through the full call protocol
func (e *Evaluator) Call(name string, args []types.Value) (types.Value, error) {
	r := e.callFunction(name, args, types.Position{}, e.newContext())
	if r.IsError() {
		return nil, r.Err
	}
	return r.Val, nil
}

// Exec runs statements directly in the global scope. Declarations become
// globals; a return statement stops execution and its value is returned.
func (e *Evaluator) Exec(stmts []parser.Stmt) (types.Value, error) {
	r := e.EvalStatements(stmts, e.newContext())
	if r.IsError() {
		return nil, r.Err
	}
	return r.Val, nil
}

// Globals returns the global variables in declaration order
func (e *Evaluator) Globals() []Binding {
	return e.globals.Bindings()
}

// Functions returns the declared functions in declaration order
func (e *Evaluator) Functions() []*FunctionEntry {
	return e.funcs.Entries()
}

// Lookup returns the current value of a global variable
func (e *Evaluator) Lookup(name string) (types.Value, bool) {
	return e.globals.Get(name)
}

// Eval evaluates an expression in value context and returns a Result.
// Relational, logical and not expressions are conditions; they are only
// meaningful where a condition is expected and fail here.
func (e *Evaluator) Eval(node parser.Expr, ctx *types.CallContext) types.Result {
	r := e.eval(node, ctx)
	if r.IsError() {
		r.Err.At(node.Position())
	}
	return r
}

func (e *Evaluator) eval(node parser.Expr, ctx *types.CallContext) types.Result {
	switch n := node.(type) {
	case *parser.LiteralExpr:
		return types.Ok(n.Value)
	case *parser.IdentifierExpr:
		return e.evalIdentifier(n)
	case *parser.ParenExpr:
		return e.Eval(n.Expr, ctx)
	case *parser.UnaryExpr:
		return e.evalUnary(n, ctx)
	case *parser.BinaryExpr:
		return e.evalBinary(n, ctx)
	case *parser.CallExpr:
		return e.evalCall(n, ctx)
	case *parser.IncDecExpr:
		return e.evalIncDec(n)
	case *parser.PrintExpr:
		return e.evalPrint(n, ctx)
	default:
		return types.Failf(types.ErrInvalidOperation, "cannot evaluate %T", node)
	}
}

// evalIdentifier looks up a variable by name
func (e *Evaluator) evalIdentifier(node *parser.IdentifierExpr) types.Result {
	val, err := e.env.Lookup(node.Name)
	if err != nil {
		return types.Fail(err)
	}
	return types.Ok(val)
}

// evalUnary evaluates negation; ! is a condition
func (e *Evaluator) evalUnary(node *parser.UnaryExpr, ctx *types.CallContext) types.Result {
	if node.Operator != "-" {
		return conditionAsValue(node.Operator)
	}

	operand := e.Eval(node.Operand, ctx)
	if !operand.IsNormal() {
		return operand
	}
	return evalUnaryMinus(operand.Val)
}

// evalBinary evaluates arithmetic; relational and logical operators are conditions
func (e *Evaluator) evalBinary(node *parser.BinaryExpr, ctx *types.CallContext) types.Result {
	if parser.IsCondition(node) {
		return conditionAsValue(node.Operator)
	}

	left := e.Eval(node.Left, ctx)
	if !left.IsNormal() {
		return left
	}
	right := e.Eval(node.Right, ctx)
	if !right.IsNormal() {
		return right
	}
	return evalArithmetic(node.Operator, left.Val, right.Val)
}

func conditionAsValue(op string) types.Result {
	return types.Failf(types.ErrInvalidOperation, "condition operator %s used where a value is expected", op)
}

// evalCondition evaluates an if/while/for condition
func (e *Evaluator) evalCondition(node parser.Expr, ctx *types.CallContext) (bool, *types.Error) {
	ok, err := e.condition(node, ctx)
	if err != nil {
		err.At(node.Position())
	}
	return ok, err
}

func (e *Evaluator) condition(node parser.Expr, ctx *types.CallContext) (bool, *types.Error) {
	switch n := node.(type) {
	case *parser.ParenExpr:
		return e.evalCondition(n.Expr, ctx)

	case *parser.UnaryExpr:
		if n.Operator == "!" {
			ok, err := e.evalCondition(n.Operand, ctx)
			return !ok, err
		}

	case *parser.BinaryExpr:
		switch n.Operator {
		case "&&", "||":
			// Both sides are always evaluated
			left, err := e.evalCondition(n.Left, ctx)
			if err != nil {
				return false, err
			}
			right, err := e.evalCondition(n.Right, ctx)
			if err != nil {
				return false, err
			}
			if n.Operator == "&&" {
				return left && right, nil
			}
			return left || right, nil

		case "<", ">", "<=", ">=", "==", "!=":
			left := e.Eval(n.Left, ctx)
			if left.IsError() {
				return false, left.Err
			}
			right := e.Eval(n.Right, ctx)
			if right.IsError() {
				return false, right.Err
			}
			return evalCompare(n.Operator, left.Val, right.Val)
		}
	}

	r := e.Eval(node, ctx)
	if r.IsError() {
		return false, r.Err
	}
	return types.ToBool(r.Val), nil
}

// evalCall evaluates arguments in the caller's scope, then calls
func (e *Evaluator) evalCall(node *parser.CallExpr, ctx *types.CallContext) types.Result {
	args := make([]types.Value, len(node.Args))
	for i, arg := range node.Args {
		r := e.Eval(arg, ctx)
		if !r.IsNormal() {
			return r
		}
		args[i] = r.Val
	}
	return e.callFunction(node.Name, args, node.Pos, ctx)
}

// evalIncDec implements ++x, --x, x++ and x--
func (e *Evaluator) evalIncDec(node *parser.IncDecExpr) types.Result {
	current, err := e.env.Lookup(node.Name)
	if err != nil {
		return types.Fail(err)
	}

	delta := int32(1)
	if node.Operator == "--" {
		delta = -1
	}
	updated := evalStep(current, delta)
	if !updated.IsNormal() {
		return updated
	}
	if err := e.env.Assign(node.Name, updated.Val); err != nil {
		return types.Fail(err)
	}

	if node.Prefix {
		return types.Ok(updated.Val)
	}
	return types.Ok(current)
}

// evalPrint writes the display form of its operand and yields the operand
func (e *Evaluator) evalPrint(node *parser.PrintExpr, ctx *types.CallContext) types.Result {
	r := e.Eval(node.Expr, ctx)
	if !r.IsNormal() {
		return r
	}

	text := types.Display(r.Val)
	trace.Print(text)
	if _, err := fmt.Fprintln(e.out, text); err != nil {
		return types.Failf(types.ErrInvalidOperation, "print: %v", err)
	}
	return r
}
