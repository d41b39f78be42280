package lume

import (
	"fmt"
	"strings"
)

// Format renders an expression tree in fully parenthesized prefix form, for
// example "(+ 1 (* 2 3))". The output makes precedence and associativity
// visible, which is its whole point; it is not meant to round-trip.
func Format(expr Expr) string {
	switch e := expr.(type) {
	case *LiteralExpr:
		if e.Value == nil {
			return "nil"
		}

		return fmt.Sprintf("%v", e.Value)
	case *GroupingExpr:
		return parenthesize("group", e.Inner)
	case *UnaryExpr:
		return parenthesize(e.Operator.Lexeme, e.Operand)
	case *BinaryExpr:
		return parenthesize(e.Operator.Lexeme, e.Left, e.Right)
	case *VariableExpr:
		return e.Name.Lexeme
	case *AssignExpr:
		return parenthesize("= "+e.Name.Lexeme, e.Value)
	default:
		return fmt.Sprintf("%v", expr)
	}
}

// FormatStmt renders a statement tree in the same prefix form.
func FormatStmt(stmt Stmt) string {
	switch s := stmt.(type) {
	case *ExprStmt:
		return parenthesize(";", s.Expr)
	case *PrintStmt:
		return parenthesize("print", s.Expr)
	case *VarStmt:
		if s.Initializer == nil {
			return "(var " + s.Name.Lexeme + ")"
		}

		return parenthesize("var "+s.Name.Lexeme, s.Initializer)
	default:
		return fmt.Sprintf("%v", stmt)
	}
}

func parenthesize(name string, exprs ...Expr) string {
	var b strings.Builder
	b.WriteByte('(')
	b.WriteString(name)

	for _, expr := range exprs {
		b.WriteByte(' ')
		b.WriteString(Format(expr))
	}

	b.WriteByte(')')
	return b.String()
}
