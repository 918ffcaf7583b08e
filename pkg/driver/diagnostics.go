package driver

import (
	"errors"
	"fmt"

	"smalljs/interpreter-go/pkg/interpreter"
	"smalljs/interpreter-go/pkg/parser"
)

// DescribeError formats a fatal error for CLI output, keeping the
// message and source line together. Path may be empty (REPL input).
func DescribeError(path string, err error) string {
	var scriptErr *interpreter.ScriptError
	if errors.As(err, &scriptErr) {
		return formatLocated(path, scriptErr.Line, scriptErr.Message)
	}
	var parseErr *parser.Error
	if errors.As(err, &parseErr) {
		return formatLocated(path, parseErr.Line, parseErr.Msg)
	}
	if path != "" {
		return fmt.Sprintf("%s: %s", path, err.Error())
	}
	return err.Error()
}

func formatLocated(path string, line int, message string) string {
	switch {
	case path != "" && line > 0:
		return fmt.Sprintf("%s:%d: %s", path, line, message)
	case line > 0:
		return fmt.Sprintf("line %d: %s", line, message)
	case path != "":
		return fmt.Sprintf("%s: %s", path, message)
	default:
		return message
	}
}
