package ast

// NodeType identifies one of the closed set of expression variants.
type NodeType string

const (
	NodeBlock           NodeType = "Block"
	NodeLiteral         NodeType = "Literal"
	NodeCall            NodeType = "Call"
	NodeIdentifier      NodeType = "Identifier"
	NodeVarAssignment   NodeType = "VarAssignment"
	NodeFun             NodeType = "Fun"
	NodeReturn          NodeType = "Return"
	NodeIf              NodeType = "If"
	NodeObjectLiteral   NodeType = "ObjectLiteral"
	NodeFieldAccess     NodeType = "FieldAccess"
	NodeFieldAssignment NodeType = "FieldAssignment"
	NodeMethodCall      NodeType = "MethodCall"
)

// Node is the shared behaviour of every expression variant. Nodes are
// immutable once produced by the parser; the line number is carried for
// diagnostics only.
type Node interface {
	NodeType() NodeType
	Line() int
	isNode()
}

type nodeImpl struct {
	kind NodeType
	line int
}

func newNodeImpl(kind NodeType, line int) nodeImpl {
	return nodeImpl{kind: kind, line: line}
}

func (n nodeImpl) NodeType() NodeType { return n.kind }
func (n nodeImpl) Line() int          { return n.line }
func (nodeImpl) isNode()              {}

// Block is an ordered sequence of statements. Blocks are not expressions;
// evaluating one yields undefined.
type Block struct {
	nodeImpl
	Body []Node
}

func NewBlock(body []Node, line int) *Block {
	return &Block{nodeImpl: newNodeImpl(NodeBlock, line), Body: body}
}

// Literal embeds a constant value, either an int or a string.
type Literal struct {
	nodeImpl
	Value any
}

func NewLiteral(value any, line int) *Literal {
	return &Literal{nodeImpl: newNodeImpl(NodeLiteral, line), Value: value}
}

// Call applies a callee expression to an ordered argument list with no
// implicit receiver.
type Call struct {
	nodeImpl
	Callee Node
	Args   []Node
}

func NewCall(callee Node, args []Node, line int) *Call {
	return &Call{nodeImpl: newNodeImpl(NodeCall, line), Callee: callee, Args: args}
}

// Identifier references a name resolved through the lexical scope chain.
type Identifier struct {
	nodeImpl
	Name string
}

func NewIdentifier(name string, line int) *Identifier {
	return &Identifier{nodeImpl: newNodeImpl(NodeIdentifier, line), Name: name}
}

// VarAssignment binds a name in the current scope. Declaration marks the
// `var` form, which participates in hoisting; the bare form is only legal
// for names already declared somewhere in the scope chain.
type VarAssignment struct {
	nodeImpl
	Name        string
	Expr        Node
	Declaration bool
}

func NewVarAssignment(name string, expr Node, declaration bool, line int) *VarAssignment {
	return &VarAssignment{nodeImpl: newNodeImpl(NodeVarAssignment, line), Name: name, Expr: expr, Declaration: declaration}
}

// Fun is a function literal. Toplevel marks the statement form, which
// additionally self-registers under Name in the enclosing scope.
type Fun struct {
	nodeImpl
	Name     string
	Params   []string
	Toplevel bool
	Body     *Block
}

func NewFun(name string, params []string, toplevel bool, body *Block, line int) *Fun {
	return &Fun{nodeImpl: newNodeImpl(NodeFun, line), Name: name, Params: params, Toplevel: toplevel, Body: body}
}

// Return delivers a value to the nearest enclosing function invocation.
type Return struct {
	nodeImpl
	Expr Node
}

func NewReturn(expr Node, line int) *Return {
	return &Return{nodeImpl: newNodeImpl(NodeReturn, line), Expr: expr}
}

// If selects one of two blocks on an integer condition (zero is false).
type If struct {
	nodeImpl
	Condition  Node
	TrueBlock  *Block
	FalseBlock *Block
}

func NewIf(condition Node, trueBlock, falseBlock *Block, line int) *If {
	return &If{nodeImpl: newNodeImpl(NodeIf, line), Condition: condition, TrueBlock: trueBlock, FalseBlock: falseBlock}
}

// ObjectField is a single name/initializer pair of an object literal.
// Fields keep their listed order so initializers evaluate left to right.
type ObjectField struct {
	Name string
	Expr Node
}

// ObjectLiteral allocates a fresh object with no prototype, with each
// initializer evaluated against the enclosing environment.
type ObjectLiteral struct {
	nodeImpl
	Fields []ObjectField
}

func NewObjectLiteral(fields []ObjectField, line int) *ObjectLiteral {
	return &ObjectLiteral{nodeImpl: newNodeImpl(NodeObjectLiteral, line), Fields: fields}
}

// FieldAccess reads a field from an object; unset fields read as undefined.
type FieldAccess struct {
	nodeImpl
	Receiver Node
	Name     string
}

func NewFieldAccess(receiver Node, name string, line int) *FieldAccess {
	return &FieldAccess{nodeImpl: newNodeImpl(NodeFieldAccess, line), Receiver: receiver, Name: name}
}

// FieldAssignment writes a field on an object.
type FieldAssignment struct {
	nodeImpl
	Receiver Node
	Name     string
	Expr     Node
}

func NewFieldAssignment(receiver Node, name string, expr Node, line int) *FieldAssignment {
	return &FieldAssignment{nodeImpl: newNodeImpl(NodeFieldAssignment, line), Receiver: receiver, Name: name, Expr: expr}
}

// MethodCall invokes a function stored in a field of the receiver, passing
// the receiver as the implicit `this`.
type MethodCall struct {
	nodeImpl
	Receiver Node
	Name     string
	Args     []Node
}

func NewMethodCall(receiver Node, name string, args []Node, line int) *MethodCall {
	return &MethodCall{nodeImpl: newNodeImpl(NodeMethodCall, line), Receiver: receiver, Name: name, Args: args}
}
