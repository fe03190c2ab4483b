package parser

import "github.com/akshat2474/Interpreter/token"

// Expr is any expression AST node.
type Expr interface {
	exprNode()
}

// Stmt is any statement AST node.
type Stmt interface {
	stmtNode()
}

// LiteralExpr wraps a scanned literal value (number, string, bool,
// or nil).
type LiteralExpr struct {
	Value interface{}
}

func (*LiteralExpr) exprNode() {}

// VariableExpr reads the value bound to Name.
type VariableExpr struct {
	Name token.Token
}

func (*VariableExpr) exprNode() {}

// AssignExpr overwrites an existing binding named Name with Value.
type AssignExpr struct {
	Name  token.Token
	Value Expr
}

func (*AssignExpr) exprNode() {}

// UnaryExpr applies a prefix operator to Right.
type UnaryExpr struct {
	Operator token.Token
	Right    Expr
}

func (*UnaryExpr) exprNode() {}

// BinaryExpr applies an infix operator to Left and Right.
type BinaryExpr struct {
	Left     Expr
	Operator token.Token
	Right    Expr
}

func (*BinaryExpr) exprNode() {}

// LogicalExpr is `and`/`or`, evaluated with short-circuiting.
type LogicalExpr struct {
	Left     Expr
	Operator token.Token
	Right    Expr
}

func (*LogicalExpr) exprNode() {}

// GroupingExpr is a parenthesized sub-expression.
type GroupingExpr struct {
	Expression Expr
}

func (*GroupingExpr) exprNode() {}

// CallExpr invokes Callee with Arguments. Paren is the closing
// parenthesis token, kept for line reporting on arity errors.
type CallExpr struct {
	Callee    Expr
	Paren     token.Token
	Arguments []Expr
}

func (*CallExpr) exprNode() {}

// ExpressionStmt evaluates Expression and discards the result.
type ExpressionStmt struct {
	Expression Expr
}

func (*ExpressionStmt) stmtNode() {}

// PrintStmt evaluates Expression and writes its stringified form
// followed by a newline.
type PrintStmt struct {
	Expression Expr
}

func (*PrintStmt) stmtNode() {}

// LetStmt declares Name in the current scope, bound to the value of
// Initializer, or nil if Initializer is nil.
type LetStmt struct {
	Name        token.Token
	Initializer Expr
}

func (*LetStmt) stmtNode() {}

// BlockStmt executes Statements inside a fresh child environment.
type BlockStmt struct {
	Statements []Stmt
}

func (*BlockStmt) stmtNode() {}

// IfStmt executes Then when Condition is truthy, else Else (which may
// be nil).
type IfStmt struct {
	Condition Expr
	Then      Stmt
	Else      Stmt
}

func (*IfStmt) stmtNode() {}

// WhileStmt repeatedly executes Body while Condition is truthy.
type WhileStmt struct {
	Condition Expr
	Body      Stmt
}

func (*WhileStmt) stmtNode() {}

// FunctionStmt declares a named function, capturing the defining
// environment as its closure when evaluated.
type FunctionStmt struct {
	Name   token.Token
	Params []token.Token
	Body   []Stmt
}

func (*FunctionStmt) stmtNode() {}

// ReturnStmt raises a non-local control transfer to the nearest
// enclosing function call, carrying the value of Value (nil if
// absent).
type ReturnStmt struct {
	Keyword token.Token
	Value   Expr
}

func (*ReturnStmt) stmtNode() {}
