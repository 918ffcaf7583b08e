package interpreter

import "smalljs/interpreter-go/pkg/runtime"

// returnSignal unwinds evaluation from a return statement to the nearest
// enclosing function invocation, which catches it and yields the value.
// It is control flow, not an error; only the invocation boundary (and the
// top-level guard in EvaluateScript) may observe it.
type returnSignal struct {
	value runtime.Value
	line  int
}

func (returnSignal) Error() string {
	return "return"
}
