package interpreter

import (
	"io"

	"smalljs/interpreter-go/pkg/ast"
	"smalljs/interpreter-go/pkg/runtime"
)

// Interpreter executes a parsed script tree against a global environment
// bootstrapped with the builtin operators. Evaluation is single-threaded
// plain recursive descent; program recursion depth is bounded by the host
// stack.
type Interpreter struct {
	out    io.Writer
	global *runtime.Object
}

// New creates an interpreter whose print builtin writes to out.
func New(out io.Writer) *Interpreter {
	return &Interpreter{out: out, global: newGlobalObject(out)}
}

// GlobalObject exposes the root environment (also bound as globalThis).
func (i *Interpreter) GlobalObject() *runtime.Object {
	return i.global
}

// EvaluateScript executes a top-level block against the global
// environment. The block's own result is discarded; observable behaviour
// is the print output plus mutations of the global environment. A return
// statement at top level has no invocation boundary to catch it and is
// reported as a fatal error, never swallowed.
func (i *Interpreter) EvaluateScript(body *ast.Block) error {
	_, err := i.execute(body, i.global)
	if sig, ok := err.(returnSignal); ok {
		return failf(sig.line, "return outside of a function")
	}
	return err
}

// EvaluateInteractive is the REPL entry point: it executes a block the
// same way EvaluateScript does but reports the value of the final
// statement so the session can echo it.
func (i *Interpreter) EvaluateInteractive(body *ast.Block) (runtime.Value, error) {
	if err := hoistDeclarations(body, i.global); err != nil {
		return nil, err
	}
	var last runtime.Value = runtime.Undefined
	for _, stmt := range body.Body {
		val, err := i.evaluate(stmt, i.global)
		if err != nil {
			if sig, ok := err.(returnSignal); ok {
				return nil, failf(sig.line, "return outside of a function")
			}
			return nil, err
		}
		last = val
	}
	return last, nil
}

// execute runs the two passes over a block: pre-declare the hoisted
// variables, then evaluate the statements.
func (i *Interpreter) execute(body *ast.Block, env *runtime.Object) (runtime.Value, error) {
	if err := hoistDeclarations(body, env); err != nil {
		return nil, err
	}
	return i.evaluate(body, env)
}

// hoistDeclarations pre-binds every variable the block will declare to
// the undefined sentinel, so forward references inside the same scope
// read as undefined instead of failing. It recurses into blocks and both
// branches of a conditional, but never into nested function bodies or
// other expression kinds: a nested function hoists its own declarations
// when it is invoked.
func hoistDeclarations(node ast.Node, env *runtime.Object) error {
	switch n := node.(type) {
	case *ast.Block:
		for _, stmt := range n.Body {
			if err := hoistDeclarations(stmt, env); err != nil {
				return err
			}
		}
	case *ast.VarAssignment:
		if n.Declaration {
			env.Register(n.Name, runtime.Undefined)
		}
	case *ast.If:
		if err := hoistDeclarations(n.TrueBlock, env); err != nil {
			return err
		}
		if err := hoistDeclarations(n.FalseBlock, env); err != nil {
			return err
		}
	case *ast.Literal, *ast.Call, *ast.Identifier, *ast.Fun, *ast.Return,
		*ast.ObjectLiteral, *ast.FieldAccess, *ast.FieldAssignment, *ast.MethodCall:
		// no declarations to surface
	default:
		return failf(node.Line(), "unsupported node type %s", node.NodeType())
	}
	return nil
}

func (i *Interpreter) evaluate(node ast.Node, env *runtime.Object) (runtime.Value, error) {
	switch n := node.(type) {
	case *ast.Block:
		for _, stmt := range n.Body {
			if _, err := i.evaluate(stmt, env); err != nil {
				return nil, err
			}
		}
		return runtime.Undefined, nil

	case *ast.Literal:
		switch v := n.Value.(type) {
		case int:
			return runtime.IntValue{Val: v}, nil
		case string:
			return runtime.StringValue{Val: v}, nil
		default:
			return nil, failf(n.Line(), "unsupported literal %v", n.Value)
		}

	case *ast.Call:
		callee, err := i.evaluate(n.Callee, env)
		if err != nil {
			return nil, err
		}
		fn, ok := callee.(*runtime.FunctionValue)
		if !ok {
			return nil, failf(n.Line(), "not a function %s", runtime.FormatValue(callee))
		}
		args, err := i.evaluateArgs(n.Args, env)
		if err != nil {
			return nil, err
		}
		result, err := fn.Invoke(runtime.Undefined, args)
		if err != nil {
			return nil, stampLine(err, n.Line())
		}
		return result, nil

	case *ast.Identifier:
		value, ok := env.Lookup(n.Name)
		if !ok {
			return nil, failf(n.Line(), "undefined variable %s", n.Name)
		}
		return value, nil

	case *ast.VarAssignment:
		if !n.Declaration {
			if _, ok := env.Lookup(n.Name); !ok {
				return nil, failf(n.Line(), "redefined variable %s", n.Name)
			}
		}
		value, err := i.evaluate(n.Expr, env)
		if err != nil {
			return nil, err
		}
		env.Register(n.Name, value)
		return value, nil

	case *ast.Fun:
		return i.evaluateFun(n, env), nil

	case *ast.Return:
		value, err := i.evaluate(n.Expr, env)
		if err != nil {
			return nil, err
		}
		return nil, returnSignal{value: value, line: n.Line()}

	case *ast.If:
		cond, err := i.evaluate(n.Condition, env)
		if err != nil {
			return nil, err
		}
		truth, ok := cond.(runtime.IntValue)
		if !ok {
			return nil, failf(n.Line(), "non boolean expression %s", runtime.FormatValue(cond))
		}
		if truth.Val != 0 {
			return i.evaluate(n.TrueBlock, env)
		}
		return i.evaluate(n.FalseBlock, env)

	case *ast.ObjectLiteral:
		object := runtime.NewObject(nil)
		for _, field := range n.Fields {
			value, err := i.evaluate(field.Expr, env)
			if err != nil {
				return nil, err
			}
			object.Register(field.Name, value)
		}
		return object, nil

	case *ast.FieldAccess:
		object, err := i.evaluateReceiver(n.Receiver, env, n.Line())
		if err != nil {
			return nil, err
		}
		return object.LookupOrDefault(n.Name, runtime.Undefined), nil

	case *ast.FieldAssignment:
		object, err := i.evaluateReceiver(n.Receiver, env, n.Line())
		if err != nil {
			return nil, err
		}
		value, err := i.evaluate(n.Expr, env)
		if err != nil {
			return nil, err
		}
		object.Register(n.Name, value)
		return value, nil

	case *ast.MethodCall:
		object, err := i.evaluateReceiver(n.Receiver, env, n.Line())
		if err != nil {
			return nil, err
		}
		member := object.LookupOrDefault(n.Name, runtime.Undefined)
		fn, ok := member.(*runtime.FunctionValue)
		if !ok {
			return nil, failf(n.Line(), "can not call method on non function field %s", n.Name)
		}
		args, err := i.evaluateArgs(n.Args, env)
		if err != nil {
			return nil, err
		}
		// The receiver expression is evaluated a second time to produce
		// the bound `this`. A side-effecting receiver expression runs twice.
		receiver, err := i.evaluate(n.Receiver, env)
		if err != nil {
			return nil, err
		}
		result, err := fn.Invoke(receiver, args)
		if err != nil {
			return nil, stampLine(err, n.Line())
		}
		return result, nil

	default:
		return nil, failf(node.Line(), "unsupported node type %s", node.NodeType())
	}
}

// evaluateFun builds the callable value for a function literal. The
// invocation behaviour closes over the defining environment, not the call
// site, which is what makes user functions closures.
func (i *Interpreter) evaluateFun(n *ast.Fun, env *runtime.Object) *runtime.FunctionValue {
	fn := runtime.NewFunction(n.Name, func(receiver runtime.Value, args []runtime.Value) (runtime.Value, error) {
		if len(args) != len(n.Params) {
			return nil, failf(0, "wrong number of arguments for %s", n.Name)
		}
		functionEnv := runtime.NewObject(env)
		functionEnv.Register("this", receiver)
		for idx, param := range n.Params {
			functionEnv.Register(param, args[idx])
		}
		if _, err := i.execute(n.Body, functionEnv); err != nil {
			if sig, ok := err.(returnSignal); ok {
				return sig.value, nil
			}
			return nil, err
		}
		return runtime.Undefined, nil
	})
	if n.Toplevel {
		env.Register(n.Name, fn)
	}
	return fn
}

func (i *Interpreter) evaluateArgs(exprs []ast.Node, env *runtime.Object) ([]runtime.Value, error) {
	args := make([]runtime.Value, len(exprs))
	for idx, expr := range exprs {
		value, err := i.evaluate(expr, env)
		if err != nil {
			return nil, err
		}
		args[idx] = value
	}
	return args, nil
}

func (i *Interpreter) evaluateReceiver(expr ast.Node, env *runtime.Object, line int) (*runtime.Object, error) {
	value, err := i.evaluate(expr, env)
	if err != nil {
		return nil, err
	}
	object, ok := value.(*runtime.Object)
	if !ok {
		return nil, failf(line, "can not access non object %s", runtime.FormatValue(value))
	}
	return object, nil
}
