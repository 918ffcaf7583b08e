package ast

// Builder helpers used by tests and tooling. Nodes built here carry line
// zero; use the New* constructors when a specific line matters.

func ID(name string) *Identifier {
	return NewIdentifier(name, 0)
}

func Int(value int) *Literal {
	return NewLiteral(value, 0)
}

func Str(value string) *Literal {
	return NewLiteral(value, 0)
}

func Blk(body ...Node) *Block {
	return NewBlock(body, 0)
}

func CallExpr(callee Node, args ...Node) *Call {
	return NewCall(callee, args, 0)
}

func Var(name string, expr Node) *VarAssignment {
	return NewVarAssignment(name, expr, true, 0)
}

func Assign(name string, expr Node) *VarAssignment {
	return NewVarAssignment(name, expr, false, 0)
}

func FunDef(name string, params []string, body *Block) *Fun {
	return NewFun(name, params, true, body, 0)
}

func FunExpr(params []string, body *Block) *Fun {
	return NewFun("lambda", params, false, body, 0)
}

func Ret(expr Node) *Return {
	return NewReturn(expr, 0)
}

func IfExpr(condition Node, trueBlock, falseBlock *Block) *If {
	return NewIf(condition, trueBlock, falseBlock, 0)
}

func ObjLit(fields ...ObjectField) *ObjectLiteral {
	return NewObjectLiteral(fields, 0)
}

func FieldInit(name string, expr Node) ObjectField {
	return ObjectField{Name: name, Expr: expr}
}

func Field(receiver Node, name string) *FieldAccess {
	return NewFieldAccess(receiver, name, 0)
}

func SetField(receiver Node, name string, expr Node) *FieldAssignment {
	return NewFieldAssignment(receiver, name, expr, 0)
}

func Method(receiver Node, name string, args ...Node) *MethodCall {
	return NewMethodCall(receiver, name, args, 0)
}

// Bin desugars a binary operator application into a call of the
// like-named global builtin, the same shape the parser produces.
func Bin(op string, left, right Node) *Call {
	return NewCall(ID(op), []Node{left, right}, 0)
}
