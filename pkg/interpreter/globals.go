package interpreter

import (
	"fmt"
	"io"
	"strings"

	"smalljs/interpreter-go/pkg/runtime"
)

// newGlobalObject builds the root environment: globalThis bound to the
// root itself, the print builtin, and the binary operator builtins.
func newGlobalObject(out io.Writer) *runtime.Object {
	global := runtime.NewObject(nil)
	global.Register("globalThis", global)
	global.Register("print", runtime.NewFunction("print", func(_ runtime.Value, args []runtime.Value) (runtime.Value, error) {
		parts := make([]string, len(args))
		for idx, arg := range args {
			parts[idx] = runtime.FormatValue(arg)
		}
		fmt.Fprintln(out, strings.Join(parts, " "))
		return runtime.Undefined, nil
	}))

	registerArithmetic(global, "+", func(a, b int) (int, error) { return a + b, nil })
	registerArithmetic(global, "-", func(a, b int) (int, error) { return a - b, nil })
	registerArithmetic(global, "*", func(a, b int) (int, error) { return a * b, nil })
	registerArithmetic(global, "/", func(a, b int) (int, error) {
		if b == 0 {
			return 0, failf(0, "division by zero")
		}
		return a / b, nil
	})
	registerArithmetic(global, "%", func(a, b int) (int, error) {
		if b == 0 {
			return 0, failf(0, "modulo by zero")
		}
		return a % b, nil
	})

	registerBinary(global, "==", func(a, b runtime.Value) (runtime.Value, error) {
		return boolInt(equalValues(a, b)), nil
	})
	registerBinary(global, "!=", func(a, b runtime.Value) (runtime.Value, error) {
		return boolInt(!equalValues(a, b)), nil
	})

	registerOrdering(global, "<", func(cmp int) bool { return cmp < 0 })
	registerOrdering(global, "<=", func(cmp int) bool { return cmp <= 0 })
	registerOrdering(global, ">", func(cmp int) bool { return cmp > 0 })
	registerOrdering(global, ">=", func(cmp int) bool { return cmp >= 0 })

	return global
}

// registerBinary installs a builtin operator taking exactly two arguments.
func registerBinary(global *runtime.Object, name string, apply func(a, b runtime.Value) (runtime.Value, error)) {
	global.Register(name, runtime.NewFunction(name, func(_ runtime.Value, args []runtime.Value) (runtime.Value, error) {
		if len(args) != 2 {
			return nil, failf(0, "wrong number of arguments for %s", name)
		}
		return apply(args[0], args[1])
	}))
}

func registerArithmetic(global *runtime.Object, name string, apply func(a, b int) (int, error)) {
	registerBinary(global, name, func(a, b runtime.Value) (runtime.Value, error) {
		left, ok := a.(runtime.IntValue)
		if !ok {
			return nil, failf(0, "type error %s is not an int", runtime.FormatValue(a))
		}
		right, ok := b.(runtime.IntValue)
		if !ok {
			return nil, failf(0, "type error %s is not an int", runtime.FormatValue(b))
		}
		result, err := apply(left.Val, right.Val)
		if err != nil {
			return nil, err
		}
		return runtime.IntValue{Val: result}, nil
	})
}

func registerOrdering(global *runtime.Object, name string, accept func(cmp int) bool) {
	registerBinary(global, name, func(a, b runtime.Value) (runtime.Value, error) {
		cmp, err := compareValues(a, b)
		if err != nil {
			return nil, err
		}
		return boolInt(accept(cmp)), nil
	})
}

// equalValues is value equality for ints and strings, identity for
// objects and functions.
func equalValues(a, b runtime.Value) bool {
	switch left := a.(type) {
	case runtime.IntValue:
		right, ok := b.(runtime.IntValue)
		return ok && left.Val == right.Val
	case runtime.StringValue:
		right, ok := b.(runtime.StringValue)
		return ok && left.Val == right.Val
	case runtime.UndefinedValue:
		_, ok := b.(runtime.UndefinedValue)
		return ok
	default:
		return a == b
	}
}

// compareValues orders two ints or two strings; anything else is a fatal
// error.
func compareValues(a, b runtime.Value) (int, error) {
	switch left := a.(type) {
	case runtime.IntValue:
		if right, ok := b.(runtime.IntValue); ok {
			switch {
			case left.Val < right.Val:
				return -1, nil
			case left.Val > right.Val:
				return 1, nil
			default:
				return 0, nil
			}
		}
	case runtime.StringValue:
		if right, ok := b.(runtime.StringValue); ok {
			return strings.Compare(left.Val, right.Val), nil
		}
	}
	return 0, failf(0, "can not compare %s with %s", runtime.FormatValue(a), runtime.FormatValue(b))
}

func boolInt(value bool) runtime.Value {
	if value {
		return runtime.IntValue{Val: 1}
	}
	return runtime.IntValue{Val: 0}
}
