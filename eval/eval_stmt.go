package eval

import (
	"minilang/parser"
	"minilang/types"
)

// EvalStatements executes statements in order in the current scope.
// Execution stops at the first statement that returns or fails.
func (e *Evaluator) EvalStatements(stmts []parser.Stmt, ctx *types.CallContext) types.Result {
	for _, stmt := range stmts {
		result := e.EvalStmt(stmt, ctx)
		if !result.IsNormal() {
			return result
		}
	}
	return types.Continue()
}

// EvalStmt executes a single statement
func (e *Evaluator) EvalStmt(stmt parser.Stmt, ctx *types.CallContext) types.Result {
	r := e.evalStmt(stmt, ctx)
	if r.IsError() {
		r.Err.At(stmt.Position())
	}
	return r
}

func (e *Evaluator) evalStmt(stmt parser.Stmt, ctx *types.CallContext) types.Result {
	switch s := stmt.(type) {
	case *parser.DeclStmt:
		return e.execDecl(s, ctx)
	case *parser.AssignStmt:
		return e.execAssign(s, ctx)
	case *parser.ExprStmt:
		if s.Expr == nil {
			return types.Continue()
		}
		r := e.Eval(s.Expr, ctx)
		if !r.IsNormal() {
			return r
		}
		return types.Continue()
	case *parser.ReturnStmt:
		return e.execReturn(s, ctx)
	case *parser.IfStmt:
		return e.execIf(s, ctx)
	case *parser.WhileStmt:
		return e.execWhile(s, ctx)
	case *parser.ForStmt:
		return e.execFor(s, ctx)
	case *parser.BlockStmt:
		return e.withScope(func() types.Result {
			return e.EvalStatements(s.Body, ctx)
		})
	default:
		return types.Failf(types.ErrInvalidOperation, "cannot execute %T", stmt)
	}
}

// withScope runs fn inside a fresh child of the current scope.
// The previous scope is restored on every exit path.
func (e *Evaluator) withScope(fn func() types.Result) types.Result {
	return e.withEnv(NewNestedEnvironment(e.env), fn)
}

// withEnv runs fn with env as the current scope
func (e *Evaluator) withEnv(env *Environment, fn func() types.Result) types.Result {
	saved := e.env
	e.env = env
	defer func() { e.env = saved }()
	return fn()
}

// execBody runs a branch or loop body in the current scope. A block body
// shares the scope its caller pushed instead of nesting another one.
func (e *Evaluator) execBody(body parser.Stmt, ctx *types.CallContext) types.Result {
	if block, ok := body.(*parser.BlockStmt); ok {
		return e.EvalStatements(block.Body, ctx)
	}
	return e.EvalStmt(body, ctx)
}

// execDecl declares a variable in the current scope.
// The initializer is evaluated first, then converted to the declared
// type; without one the variable starts at zero or "".
func (e *Evaluator) execDecl(s *parser.DeclStmt, ctx *types.CallContext) types.Result {
	var init types.Value
	if s.Init != nil {
		r := e.Eval(s.Init, ctx)
		if !r.IsNormal() {
			return r
		}
		init = r.Val
		if init != nil && types.IsString(init) != (s.Type == types.TypeString) {
			return types.Failf(types.ErrTypeMismatch, "cannot initialize %s variable '%s' with %s value",
				s.Type, s.Name, init.Type())
		}
	}

	val, err := types.Coerce(s.Type, init)
	if err != nil {
		return types.Fail(err)
	}
	if err := e.env.Declare(s.Name, val); err != nil {
		return types.Fail(err)
	}
	return types.Continue()
}

// execAssign implements = += -= *= /= %=
//
// Numeric variables convert the right operand to the variable's type
// before applying the operator. String variables accept = with a
// string and += with anything, appending its display form.
func (e *Evaluator) execAssign(s *parser.AssignStmt, ctx *types.CallContext) types.Result {
	current, err := e.env.Lookup(s.Name)
	if err != nil {
		return types.Fail(err)
	}

	rhs := e.Eval(s.Value, ctx)
	if !rhs.IsNormal() {
		return rhs
	}

	if s.Operator == "=" {
		if err := e.env.Assign(s.Name, rhs.Val); err != nil {
			return types.Fail(err)
		}
		return types.Continue()
	}

	var updated types.Value
	if str, ok := current.(types.StrValue); ok {
		if s.Operator != "+=" {
			return types.Failf(types.ErrTypeMismatch, "operator %s cannot be applied to string variable '%s'",
				s.Operator, s.Name)
		}
		updated = types.NewStr(str.Value() + types.Display(rhs.Val))
	} else {
		if types.IsString(rhs.Val) {
			return types.Failf(types.ErrTypeMismatch, "cannot apply %s with string to %s variable '%s'",
				s.Operator, current.Type(), s.Name)
		}
		if s.Operator == "%=" && current.Type() != types.TypeInt {
			return types.Failf(types.ErrTypeMismatch, "operator %%= requires an int variable, '%s' is %s",
				s.Name, current.Type())
		}
		operand, err := types.Coerce(current.Type(), rhs.Val)
		if err != nil {
			return types.Fail(err)
		}
		r := evalArithmetic(s.Operator[:1], current, operand)
		if !r.IsNormal() {
			return r
		}
		updated = r.Val
	}

	if err := e.env.Assign(s.Name, updated); err != nil {
		return types.Fail(err)
	}
	return types.Continue()
}

// execReturn evaluates the returned expression and signals the return
func (e *Evaluator) execReturn(s *parser.ReturnStmt, ctx *types.CallContext) types.Result {
	if s.Value == nil {
		return types.Return(nil)
	}
	r := e.Eval(s.Value, ctx)
	if !r.IsNormal() {
		return r
	}
	return types.Return(r.Val)
}

// execIf runs exactly one branch, each in its own scope
func (e *Evaluator) execIf(s *parser.IfStmt, ctx *types.CallContext) types.Result {
	ok, err := e.evalCondition(s.Condition, ctx)
	if err != nil {
		return types.Fail(err)
	}

	branch := s.Then
	if !ok {
		branch = s.Else
	}
	if branch == nil {
		return types.Continue()
	}
	return e.withScope(func() types.Result {
		return e.execBody(branch, ctx)
	})
}

// execWhile runs the body in a fresh scope per iteration
func (e *Evaluator) execWhile(s *parser.WhileStmt, ctx *types.CallContext) types.Result {
	for {
		ok, err := e.evalCondition(s.Condition, ctx)
		if err != nil {
			return types.Fail(err)
		}
		if !ok {
			return types.Continue()
		}

		bodyResult := e.withScope(func() types.Result {
			return e.execBody(s.Body, ctx)
		})
		if !bodyResult.IsNormal() {
			return bodyResult
		}
	}
}

// execFor runs for(init; cond; update) body.
// The initializer runs in the enclosing scope, so a variable it declares
// stays visible after the loop. Each iteration's body gets a fresh scope.
// A missing condition loops until the body returns or fails.
func (e *Evaluator) execFor(s *parser.ForStmt, ctx *types.CallContext) types.Result {
	if s.Init != nil {
		if r := e.EvalStmt(s.Init, ctx); !r.IsNormal() {
			return r
		}
	}

	for {
		if s.Condition != nil {
			ok, err := e.evalCondition(s.Condition, ctx)
			if err != nil {
				return types.Fail(err)
			}
			if !ok {
				return types.Continue()
			}
		}

		bodyResult := e.withScope(func() types.Result {
			return e.execBody(s.Body, ctx)
		})
		if !bodyResult.IsNormal() {
			return bodyResult
		}

		if s.Update != nil {
			if r := e.EvalStmt(s.Update, ctx); !r.IsNormal() {
				return r
			}
		}
	}
}
