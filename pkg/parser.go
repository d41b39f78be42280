package lume

import (
	"errors"
	"fmt"
)

// ErrSyntax marks a pass during which at least one syntax error was reported.
// The statements that did parse are still returned alongside it.
var ErrSyntax = errors.New("syntax error")

// SyntaxError is the structured failure produced when the input does not
// match the grammar. It has already been reported to the Reporter by the time
// a caller sees it.
type SyntaxError struct {
	Token   Token
	Message string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at %s: %s", e.Token, e.Message)
}

// Parser turns a scanned token sequence into statement trees. It is a
// recursive-descent parser over a fixed precedence chain; each production is
// one method returning either a node or a *SyntaxError. A Parser is good for
// a single Run over the sequence it was built with.
type Parser struct {
	cursor
	reporter Reporter
	hadError bool
}

// NewParser builds a parser over tokens, which must be terminated by a
// TokenEOF marker. Every syntax error found during the run is passed to
// reporter; a nil reporter discards the messages but still fails the pass.
func NewParser(tokens []Token, reporter Reporter) *Parser {
	return &Parser{
		cursor:   cursor{tokens: tokens},
		reporter: reporter,
	}
}

// Run parses declarations until the end of input. Statements are collected in
// order; a declaration that fails to parse is discarded whole and the cursor
// resynchronized at the next statement boundary, so one error costs at most
// one statement. If anything was reported the returned error is ErrSyntax,
// with the surviving statements still in the slice.
func (p *Parser) Run() ([]Stmt, error) {
	var stmts []Stmt
	for !p.atEnd() {
		stmt, err := p.declaration()
		if err != nil {
			p.synchronize()
			continue
		}

		stmts = append(stmts, stmt)
	}

	if p.hadError {
		return stmts, ErrSyntax
	}

	return stmts, nil
}

func (p *Parser) declaration() (Stmt, error) {
	if p.match(TokenVar) {
		return p.varDeclaration()
	}

	return p.statement()
}

func (p *Parser) varDeclaration() (Stmt, error) {
	name, err := p.consume(TokenIdentifier, "Expect variable name.")
	if err != nil {
		return nil, err
	}

	var initializer Expr
	if p.match(TokenEqual) {
		if initializer, err = p.expression(); err != nil {
			return nil, err
		}
	}

	if _, err := p.consume(TokenSemicolon, "Expect ';' after variable declaration."); err != nil {
		return nil, err
	}

	return &VarStmt{Name: name, Initializer: initializer}, nil
}

func (p *Parser) statement() (Stmt, error) {
	if p.match(TokenPrint) {
		return p.printStatement()
	}

	return p.expressionStatement()
}

func (p *Parser) printStatement() (Stmt, error) {
	value, err := p.expression()
	if err != nil {
		return nil, err
	}

	if _, err := p.consume(TokenSemicolon, "Expect ; after value."); err != nil {
		return nil, err
	}

	return &PrintStmt{Expr: value}, nil
}

func (p *Parser) expressionStatement() (Stmt, error) {
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}

	if _, err := p.consume(TokenSemicolon, "Expect ; after expression."); err != nil {
		return nil, err
	}

	return &ExprStmt{Expr: expr}, nil
}

func (p *Parser) expression() (Expr, error) {
	return p.assignment()
}

func (p *Parser) assignment() (Expr, error) {
	expr, err := p.equality()
	if err != nil {
		return nil, err
	}

	if p.match(TokenEqual) {
		equals := p.previous()

		// Right-associative: `a = b = c` parses the value as another
		// assignment.
		value, err := p.assignment()
		if err != nil {
			return nil, err
		}

		if target, ok := expr.(*VariableExpr); ok {
			return &AssignExpr{Name: target.Name, Value: value}, nil
		}

		// Reported but not raised: the surrounding expression keeps
		// parsing with the left-hand side unchanged.
		p.report(equals, "Invalid assignment target.")
	}

	return expr, nil
}

func (p *Parser) equality() (Expr, error) {
	return p.binary(p.comparison, TokenBangEqual, TokenEqualEqual)
}

func (p *Parser) comparison() (Expr, error) {
	return p.binary(p.term, TokenGreater, TokenGreaterEqual, TokenLess, TokenLessEqual)
}

func (p *Parser) term() (Expr, error) {
	return p.binary(p.factor, TokenMinus, TokenPlus)
}

func (p *Parser) factor() (Expr, error) {
	return p.binary(p.unary, TokenSlash, TokenStar)
}

// binary is the shared shape of every binary precedence level: one operand
// from the next-tighter level, then a left-associative fold while the current
// token is one of this level's operators.
func (p *Parser) binary(next func() (Expr, error), types ...TokenType) (Expr, error) {
	expr, err := next()
	if err != nil {
		return nil, err
	}

	for p.match(types...) {
		operator := p.previous()

		right, err := next()
		if err != nil {
			return nil, err
		}

		expr = &BinaryExpr{Left: expr, Operator: operator, Right: right}
	}

	return expr, nil
}

func (p *Parser) unary() (Expr, error) {
	if p.match(TokenBang, TokenMinus) {
		operator := p.previous()

		operand, err := p.unary()
		if err != nil {
			return nil, err
		}

		return &UnaryExpr{Operator: operator, Operand: operand}, nil
	}

	return p.primary()
}

func (p *Parser) primary() (Expr, error) {
	switch {
	case p.match(TokenFalse):
		return &LiteralExpr{Value: false}, nil
	case p.match(TokenTrue):
		return &LiteralExpr{Value: true}, nil
	case p.match(TokenNil):
		return &LiteralExpr{Value: nil}, nil
	case p.match(TokenNumber, TokenString):
		return &LiteralExpr{Value: p.previous().Literal}, nil
	case p.match(TokenIdentifier):
		return &VariableExpr{Name: p.previous()}, nil
	case p.match(TokenLeftParen):
		inner, err := p.expression()
		if err != nil {
			return nil, err
		}

		if _, err := p.consume(TokenRightParen, "Expect ')' after expression."); err != nil {
			return nil, err
		}

		return &GroupingExpr{Inner: inner}, nil
	}

	return nil, p.syntaxError(p.peek(), "Expect expression.")
}

// consume takes the current token when it has the expected type, and
// otherwise raises a syntax error carrying message and the offending token.
func (p *Parser) consume(typ TokenType, message string) (Token, error) {
	if p.check(typ) {
		return p.advance(), nil
	}

	return Token{}, p.syntaxError(p.peek(), message)
}

func (p *Parser) report(tok Token, message string) {
	p.hadError = true
	if p.reporter != nil {
		p.reporter.Report(tok, message)
	}
}

// syntaxError reports once at the raise site and hands back the error value
// that unwinds the current declaration. Recovery boundaries must not report
// it again.
func (p *Parser) syntaxError(tok Token, message string) error {
	p.report(tok, message)
	return &SyntaxError{Token: tok, Message: message}
}

// synchronize skips ahead to the next statement boundary after a failed
// declaration: past a `;`, or stopped at (not past) a keyword that can begin
// a statement, or at the end of input.
func (p *Parser) synchronize() {
	p.advance()

	for !p.atEnd() {
		if p.previous().Typ == TokenSemicolon {
			return
		}

		switch p.peek().Typ {
		case TokenClass, TokenFun, TokenVar, TokenFor, TokenIf, TokenWhile, TokenPrint, TokenReturn:
			return
		}

		p.advance()
	}
}
