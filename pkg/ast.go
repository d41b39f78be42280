package lume

type Expr interface{}

// LiteralExpr is a compile-time constant: a number, string, boolean, or nil.
type LiteralExpr struct {
	Value interface{}
}

// GroupingExpr is a parenthesized sub-expression. The grouping is kept in the
// tree so later stages can still tell `(a)` apart from `a`.
type GroupingExpr struct {
	Inner Expr
}

type UnaryExpr struct {
	Operator Token
	Operand  Expr
}

type BinaryExpr struct {
	Left     Expr
	Operator Token
	Right    Expr
}

// VariableExpr is a reference to an identifier.
type VariableExpr struct {
	Name Token
}

// AssignExpr assigns Value to the identifier Name. Assignment is
// right-associative, so `a = b = c` nests on the right.
type AssignExpr struct {
	Name  Token
	Value Expr
}

type Stmt interface{}

type ExprStmt struct {
	Expr Expr
}

type PrintStmt struct {
	Expr Expr
}

// VarStmt declares a variable. Initializer is nil when the declaration has
// no `= expression` part.
type VarStmt struct {
	Name        Token
	Initializer Expr
}
