package trace

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"minilang/types"
)

// Tracer reports function calls, returns, failures and program output
// as they happen during evaluation
type Tracer struct {
	enabled bool
	filters []string
	writer  io.Writer
	mu      sync.Mutex
}

// Global tracer instance
var globalTracer *Tracer

// Init initializes the global tracer
func Init(enabled bool, filters []string, writer io.Writer) {
	if writer == nil {
		writer = os.Stderr
	}
	globalTracer = &Tracer{
		enabled: enabled,
		filters: filters,
		writer:  writer,
	}
}

// IsEnabled returns whether tracing is enabled
func IsEnabled() bool {
	if globalTracer == nil {
		return false
	}
	return globalTracer.enabled
}

// matchesFilter checks if a function name matches any of the filter patterns
func (t *Tracer) matchesFilter(funcName string) bool {
	if len(t.filters) == 0 {
		return true // No filters = trace everything
	}

	for _, pattern := range t.filters {
		if matched, _ := filepath.Match(pattern, funcName); matched {
			return true
		}
	}
	return false
}

// indent returns two spaces per nesting level below the outermost call
func indent(depth int) string {
	if depth <= 1 {
		return ""
	}
	return strings.Repeat("  ", depth-1)
}

// Call logs entry into a function
func (t *Tracer) Call(funcName string, args []types.Value, depth int) {
	if !t.enabled || !t.matchesFilter(funcName) {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	argStrs := make([]string, len(args))
	for i, arg := range args {
		if arg == nil {
			argStrs[i] = "void"
			continue
		}
		argStrs[i] = arg.Literal()
	}

	fmt.Fprintf(t.writer, "[TRACE] %sCALL %s(%s) depth=%d\n",
		indent(depth), funcName, strings.Join(argStrs, ", "), depth)
}

// Return logs a function's result; nil means the call produced no value
func (t *Tracer) Return(funcName string, result types.Value, depth int) {
	if !t.enabled || !t.matchesFilter(funcName) {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	resultStr := "void"
	if result != nil {
		resultStr = result.Literal()
	}

	fmt.Fprintf(t.writer, "[TRACE] %sRETURN %s => %s\n", indent(depth), funcName, resultStr)
}

// Exception logs a failure unwinding out of a function
func (t *Tracer) Exception(funcName string, err *types.Error, depth int) {
	if !t.enabled || !t.matchesFilter(funcName) {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	fmt.Fprintf(t.writer, "[TRACE] %sEXCEPTION %s %s\n", indent(depth), funcName, err.Error())
}

// Print logs a line written by print()
func (t *Tracer) Print(text string) {
	if !t.enabled {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	// Truncate long output for readability
	display := text
	if len(display) > 60 {
		display = display[:57] + "..."
	}

	fmt.Fprintf(t.writer, "[TRACE]   PRINT %q\n", display)
}

// Global convenience functions

// Call logs a function call using the global tracer
func Call(funcName string, args []types.Value, depth int) {
	if globalTracer != nil {
		globalTracer.Call(funcName, args, depth)
	}
}

// Return logs a function return using the global tracer
func Return(funcName string, result types.Value, depth int) {
	if globalTracer != nil {
		globalTracer.Return(funcName, result, depth)
	}
}

// Exception logs a failure using the global tracer
func Exception(funcName string, err *types.Error, depth int) {
	if globalTracer != nil {
		globalTracer.Exception(funcName, err, depth)
	}
}

// Print logs print() output using the global tracer
func Print(text string) {
	if globalTracer != nil {
		globalTracer.Print(text)
	}
}
