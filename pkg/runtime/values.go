package runtime

import "fmt"

// Kind identifies the runtime value category.
type Kind int

const (
	KindUndefined Kind = iota
	KindInt
	KindString
	KindObject
	KindFunction
)

func (k Kind) String() string {
	switch k {
	case KindUndefined:
		return "undefined"
	case KindInt:
		return "int"
	case KindString:
		return "string"
	case KindObject:
		return "object"
	case KindFunction:
		return "function"
	default:
		return fmt.Sprintf("unknown_kind_%d", int(k))
	}
}

// Value is the shared behaviour for all runtime values.
type Value interface {
	Kind() Kind
}

// UndefinedValue is the sentinel bound by hoisting, read from absent
// fields, and returned by functions that never hit a return statement.
type UndefinedValue struct{}

func (UndefinedValue) Kind() Kind { return KindUndefined }

// Undefined is the shared sentinel instance.
var Undefined Value = UndefinedValue{}

// IntValue is the single numeric representation. It doubles as the truth
// representation: zero is false, any other value is true.
type IntValue struct {
	Val int
}

func (IntValue) Kind() Kind { return KindInt }

type StringValue struct {
	Val string
}

func (StringValue) Kind() Kind { return KindString }

// Invoker is the invocation behaviour wrapped by a function value. The
// receiver is the implicit `this` (Undefined for plain calls).
type Invoker func(receiver Value, args []Value) (Value, error)

// FunctionValue is a callable value: a name kept for diagnostics plus the
// invocation behaviour, either a native builtin or a user-defined closure.
type FunctionValue struct {
	Name   string
	Invoke Invoker
}

func (*FunctionValue) Kind() Kind { return KindFunction }

// NewFunction wraps an invocation behaviour as a callable value.
func NewFunction(name string, invoke Invoker) *FunctionValue {
	return &FunctionValue{Name: name, Invoke: invoke}
}
