package eval

import (
	"minilang/trace"
	"minilang/types"
)

// callFunction implements the call protocol:
//
//  1. resolve name and check the argument count
//  2. open a scope whose parent is the global scope, not the caller's
//  3. bind each parameter to its argument converted to the parameter type
//  4. run the body until it completes or returns
//  5. check the return signal against the declared return type
func (e *Evaluator) callFunction(name string, args []types.Value, pos types.Position, ctx *types.CallContext) types.Result {
	fn, err := e.funcs.Resolve(name, args)
	if err != nil {
		return types.Fail(err)
	}

	if !ctx.PushFrame(types.Frame{Function: name, Pos: pos}) {
		return types.Failf(types.ErrInvalidOperation, "maximum call depth %d exceeded calling '%s'", ctx.MaxDepth, name)
	}
	defer ctx.PopFrame()

	depth := ctx.Depth()
	trace.Call(name, args, depth)

	result := e.invoke(fn, args, ctx)
	if result.IsError() {
		if result.Err.Frames == nil {
			result.Err.Frames = ctx.Traceback()
		}
		trace.Exception(name, result.Err, depth)
		return result
	}

	trace.Return(name, result.Val, depth)
	return result
}

// invoke binds parameters and runs the body of fn
func (e *Evaluator) invoke(fn *FunctionEntry, args []types.Value, ctx *types.CallContext) types.Result {
	scope := NewNestedEnvironment(e.globals)

	for i, param := range fn.Params {
		val, err := types.Coerce(param.Type, args[i])
		if err != nil {
			return types.Fail(err.At(param.Pos))
		}
		if err := scope.Declare(param.Name, val); err != nil {
			return types.Fail(err.At(param.Pos))
		}
	}

	bodyResult := e.withEnv(scope, func() types.Result {
		return e.EvalStatements(fn.Body(), ctx)
	})

	switch bodyResult.Flow {
	case types.FlowException:
		return bodyResult
	case types.FlowNormal:
		if fn.ReturnType == types.TypeVoid {
			return types.Ok(nil)
		}
		return types.Fail(types.NewError(types.ErrMissingReturn,
			"function '%s' must return a %s value", fn.Name, fn.ReturnType).At(fn.Decl.EndPos))
	}

	if bodyResult.Val == nil {
		return types.Failf(types.ErrEmptyReturn, "return in function '%s' carries no value", fn.Name)
	}
	val, err := types.Coerce(fn.ReturnType, bodyResult.Val)
	if err != nil {
		return types.Fail(err)
	}
	return types.Ok(val)
}
