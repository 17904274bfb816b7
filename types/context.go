package types

// DefaultMaxDepth bounds nested function calls
const DefaultMaxDepth = 10000

// CallContext holds the execution context for one program run.
// It is passed through all evaluator methods to track the active
// function calls (for depth limiting and tracebacks).
type CallContext struct {
	MaxDepth int     // Maximum number of nested calls; <= 0 means unlimited
	frames   []Frame // Active calls, outermost first
}

// NewCallContext creates a new context with default values
func NewCallContext() *CallContext {
	return &CallContext{MaxDepth: DefaultMaxDepth}
}

// Depth returns the number of active calls
func (ctx *CallContext) Depth() int {
	return len(ctx.frames)
}

// PushFrame records entry into a function.
// Returns false if the depth limit would be exceeded.
func (ctx *CallContext) PushFrame(f Frame) bool {
	if ctx.MaxDepth > 0 && len(ctx.frames) >= ctx.MaxDepth {
		return false
	}
	ctx.frames = append(ctx.frames, f)
	return true
}

// PopFrame records exit from the innermost function
func (ctx *CallContext) PopFrame() {
	if len(ctx.frames) > 0 {
		ctx.frames = ctx.frames[:len(ctx.frames)-1]
	}
}

// Current returns the innermost frame, or false at top level
func (ctx *CallContext) Current() (Frame, bool) {
	if len(ctx.frames) == 0 {
		return Frame{}, false
	}
	return ctx.frames[len(ctx.frames)-1], true
}

// Traceback returns a copy of the active frames, innermost first
func (ctx *CallContext) Traceback() []Frame {
	out := make([]Frame, len(ctx.frames))
	for i, f := range ctx.frames {
		out[len(ctx.frames)-1-i] = f
	}
	return out
}
