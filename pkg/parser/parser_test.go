package parser

import (
	"testing"

	"smalljs/interpreter-go/pkg/ast"
)

func parseProgram(t *testing.T, src string) *ast.Block {
	t.Helper()
	block, err := Parse(src)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	return block
}

func TestParseVarDeclaration(t *testing.T) {
	block := parseProgram(t, "var x = 3")
	if len(block.Body) != 1 {
		t.Fatalf("unexpected statement count %d", len(block.Body))
	}
	decl, ok := block.Body[0].(*ast.VarAssignment)
	if !ok || decl.Name != "x" || !decl.Declaration {
		t.Fatalf("unexpected statement %#v", block.Body[0])
	}
	lit, ok := decl.Expr.(*ast.Literal)
	if !ok || lit.Value != 3 {
		t.Fatalf("unexpected initializer %#v", decl.Expr)
	}
}

func TestParseBareAssignmentIsNotDeclaration(t *testing.T) {
	block := parseProgram(t, "x = 3")
	assign, ok := block.Body[0].(*ast.VarAssignment)
	if !ok || assign.Declaration {
		t.Fatalf("unexpected statement %#v", block.Body[0])
	}
}

func TestParseBinaryOperatorsDesugarToCalls(t *testing.T) {
	block := parseProgram(t, "var r = 1 + 2 * 3")
	decl := block.Body[0].(*ast.VarAssignment)
	add, ok := decl.Expr.(*ast.Call)
	if !ok {
		t.Fatalf("expected call, got %#v", decl.Expr)
	}
	if callee, ok := add.Callee.(*ast.Identifier); !ok || callee.Name != "+" {
		t.Fatalf("expected '+' callee, got %#v", add.Callee)
	}
	mul, ok := add.Args[1].(*ast.Call)
	if !ok {
		t.Fatalf("multiplication should bind tighter, got %#v", add.Args[1])
	}
	if callee, ok := mul.Callee.(*ast.Identifier); !ok || callee.Name != "*" {
		t.Fatalf("expected '*' callee, got %#v", mul.Callee)
	}
}

func TestParseComparisonPrecedence(t *testing.T) {
	block := parseProgram(t, "var r = 1 + 2 < 4")
	decl := block.Body[0].(*ast.VarAssignment)
	cmp := decl.Expr.(*ast.Call)
	if callee := cmp.Callee.(*ast.Identifier); callee.Name != "<" {
		t.Fatalf("expected '<' at the top, got %q", callee.Name)
	}
	if inner := cmp.Args[0].(*ast.Call).Callee.(*ast.Identifier); inner.Name != "+" {
		t.Fatalf("expected '+' below '<', got %q", inner.Name)
	}
}

func TestParseFunctionStatementIsToplevel(t *testing.T) {
	block := parseProgram(t, "function add(a, b) { return a + b }")
	fun, ok := block.Body[0].(*ast.Fun)
	if !ok {
		t.Fatalf("expected fun node, got %#v", block.Body[0])
	}
	if fun.Name != "add" || !fun.Toplevel {
		t.Fatalf("unexpected fun %#v", fun)
	}
	if len(fun.Params) != 2 || fun.Params[0] != "a" || fun.Params[1] != "b" {
		t.Fatalf("unexpected params %v", fun.Params)
	}
	if _, ok := fun.Body.Body[0].(*ast.Return); !ok {
		t.Fatalf("expected return in body, got %#v", fun.Body.Body[0])
	}
}

func TestParseFunctionExpressionIsNotToplevel(t *testing.T) {
	block := parseProgram(t, "var f = function(a) { return a }")
	decl := block.Body[0].(*ast.VarAssignment)
	fun, ok := decl.Expr.(*ast.Fun)
	if !ok {
		t.Fatalf("expected fun expression, got %#v", decl.Expr)
	}
	if fun.Toplevel || fun.Name != "lambda" {
		t.Fatalf("unexpected fun %#v", fun)
	}
}

func TestParseIfElse(t *testing.T) {
	block := parseProgram(t, "if (x < 1) { print(1) } else { print(2) }")
	ifNode, ok := block.Body[0].(*ast.If)
	if !ok {
		t.Fatalf("expected if node, got %#v", block.Body[0])
	}
	if len(ifNode.TrueBlock.Body) != 1 || len(ifNode.FalseBlock.Body) != 1 {
		t.Fatalf("unexpected branch shapes %#v", ifNode)
	}
}

func TestParseIfWithoutElseHasEmptyFalseBlock(t *testing.T) {
	block := parseProgram(t, "if (x) { }")
	ifNode := block.Body[0].(*ast.If)
	if len(ifNode.FalseBlock.Body) != 0 {
		t.Fatalf("expected empty false block, got %#v", ifNode.FalseBlock)
	}
}

func TestParseObjectLiteralKeepsFieldOrder(t *testing.T) {
	block := parseProgram(t, `var o = { b: 2, a: 1, "with space": 3 }`)
	decl := block.Body[0].(*ast.VarAssignment)
	lit, ok := decl.Expr.(*ast.ObjectLiteral)
	if !ok {
		t.Fatalf("expected object literal, got %#v", decl.Expr)
	}
	names := []string{lit.Fields[0].Name, lit.Fields[1].Name, lit.Fields[2].Name}
	if names[0] != "b" || names[1] != "a" || names[2] != "with space" {
		t.Fatalf("fields out of order: %v", names)
	}
}

func TestParseFieldAccessAndMethodCall(t *testing.T) {
	block := parseProgram(t, "o.x\no.m(1, 2)")
	if _, ok := block.Body[0].(*ast.FieldAccess); !ok {
		t.Fatalf("expected field access, got %#v", block.Body[0])
	}
	method, ok := block.Body[1].(*ast.MethodCall)
	if !ok {
		t.Fatalf("expected method call, got %#v", block.Body[1])
	}
	if method.Name != "m" || len(method.Args) != 2 {
		t.Fatalf("unexpected method call %#v", method)
	}
}

func TestParseFieldAssignment(t *testing.T) {
	block := parseProgram(t, "o.x = 1")
	assign, ok := block.Body[0].(*ast.FieldAssignment)
	if !ok || assign.Name != "x" {
		t.Fatalf("expected field assignment, got %#v", block.Body[0])
	}
}

func TestParseChainedCalls(t *testing.T) {
	block := parseProgram(t, "f(1)(2)")
	outer, ok := block.Body[0].(*ast.Call)
	if !ok {
		t.Fatalf("expected call, got %#v", block.Body[0])
	}
	if _, ok := outer.Callee.(*ast.Call); !ok {
		t.Fatalf("expected chained call, got %#v", outer.Callee)
	}
}

func TestParseLineNumbers(t *testing.T) {
	block := parseProgram(t, "var a = 1\n\nprint(a)")
	if got := block.Body[0].Line(); got != 1 {
		t.Fatalf("var line = %d, want 1", got)
	}
	if got := block.Body[1].Line(); got != 3 {
		t.Fatalf("call line = %d, want 3", got)
	}
}

func TestParseInvalidAssignmentTarget(t *testing.T) {
	_, err := Parse("f() = 1")
	if err == nil || IsIncomplete(err) {
		t.Fatalf("expected hard parse error, got %v", err)
	}
}

func TestParseIncompleteConstructs(t *testing.T) {
	for _, src := range []string{
		"function f() {",
		"var x =",
		"if (x) {",
		"var o = { a: 1,",
		"f(1,",
	} {
		_, err := Parse(src)
		if err == nil || !IsIncomplete(err) {
			t.Fatalf("%q: expected incomplete error, got %v", src, err)
		}
	}
}

func TestParseHardErrorIsNotIncomplete(t *testing.T) {
	_, err := Parse("var x = )")
	if err == nil || IsIncomplete(err) {
		t.Fatalf("expected hard parse error, got %v", err)
	}
}
