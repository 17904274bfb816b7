package types

// ControlFlow represents the control flow state of evaluation
type ControlFlow int

const (
	FlowNormal    ControlFlow = iota // Running: keep executing
	FlowReturn                       // A return fired; Val holds its value (nil if empty)
	FlowException                    // A failure is unwinding; Err is set
)

func (f ControlFlow) String() string {
	switch f {
	case FlowNormal:
		return "normal"
	case FlowReturn:
		return "return"
	case FlowException:
		return "exception"
	default:
		return "unknown"
	}
}

// Result represents the outcome of evaluating an expression or statement.
// It is the per-call control signal: statements hand it back to their
// caller, which checks Flow after every nested execution.
type Result struct {
	Val  Value       // The value (expressions, or the value carried by a return)
	Flow ControlFlow // Control flow state
	Err  *Error      // Only set when Flow == FlowException
}

// Ok creates a Result for normal execution with a value
func Ok(v Value) Result {
	return Result{Val: v, Flow: FlowNormal}
}

// Continue is the Result of a statement that completed without signaling
func Continue() Result {
	return Result{Flow: FlowNormal}
}

// Return creates a Result for a return statement; v may be nil for `return;`
func Return(v Value) Result {
	return Result{Val: v, Flow: FlowReturn}
}

// Fail creates a Result carrying a failure
func Fail(err *Error) Result {
	return Result{Flow: FlowException, Err: err}
}

// Failf creates a failure Result of the given kind
func Failf(kind ErrorKind, format string, args ...any) Result {
	return Fail(NewError(kind, format, args...))
}

// IsNormal returns true if this is normal execution
func (r Result) IsNormal() bool {
	return r.Flow == FlowNormal
}

// IsError returns true if this is a failure
func (r Result) IsError() bool {
	return r.Flow == FlowException
}

// IsReturn returns true if a return fired
func (r Result) IsReturn() bool {
	return r.Flow == FlowReturn
}
