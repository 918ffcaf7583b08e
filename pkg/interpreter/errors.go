package interpreter

import "fmt"

// ScriptError is a fatal script error: unrecoverable, unwinding the whole
// current evaluation. It carries the human-readable message and the
// originating source line, both preserved end-to-end to the caller.
type ScriptError struct {
	Line    int
	Message string
}

func (e *ScriptError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, e.Message)
	}
	return e.Message
}

func failf(line int, format string, args ...any) *ScriptError {
	return &ScriptError{Line: line, Message: fmt.Sprintf(format, args...)}
}

// stampLine attaches a call-site line to script errors raised inside an
// invocation behaviour, which has no node of its own to tag.
func stampLine(err error, line int) error {
	if scriptErr, ok := err.(*ScriptError); ok && scriptErr.Line == 0 {
		scriptErr.Line = line
	}
	return err
}
