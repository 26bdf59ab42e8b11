package ast

import (
	"testing"

	"github.com/funvibe/golox/internal/token"
)

func ident(name string) *Identifier {
	return &Identifier{Token: token.Token{Type: token.IDENT, Lexeme: name}, Value: name}
}

func TestForDesugaredShape(t *testing.T) {
	initStmt := &VarStatement{Name: ident("i"), Value: &NumberLiteral{Value: 0}}
	cond := &InfixExpression{Left: ident("i"), Operator: "<", Right: &NumberLiteral{Value: 3}}
	incr := &AssignExpression{Name: ident("i"), Value: ident("i")}
	body := &PrintStatement{Value: ident("i")}
	fs := &ForStatement{Init: initStmt, Condition: cond, Increment: incr, Body: body}

	block := fs.Desugared()
	if len(block.Statements) != 2 || block.Statements[0] != Statement(initStmt) {
		t.Fatalf("outer block should hold init then loop, got %d statements", len(block.Statements))
	}
	loop, ok := block.Statements[1].(*WhileStatement)
	if !ok {
		t.Fatalf("expected *WhileStatement, got %T", block.Statements[1])
	}
	if loop.Condition != Expression(cond) {
		t.Error("loop condition should be the original condition")
	}
	inner, ok := loop.Body.(*BlockStatement)
	if !ok || len(inner.Statements) != 2 || inner.Statements[0] != Statement(body) {
		t.Fatalf("loop body should be { body; incr; }, got %#v", loop.Body)
	}
	if es, ok := inner.Statements[1].(*ExpressionStatement); !ok || es.Expression != Expression(incr) {
		t.Error("second statement of loop body should evaluate the increment")
	}

	if fs.Desugared() != block {
		t.Error("Desugared should return the cached block")
	}
}

func TestForDesugaredEmptyClauses(t *testing.T) {
	body := &BlockStatement{}
	fs := &ForStatement{Token: token.Token{Type: token.FOR, Lexeme: "for"}, Body: body}
	block := fs.Desugared()
	if len(block.Statements) != 1 {
		t.Fatalf("expected only the loop, got %d statements", len(block.Statements))
	}
	loop := block.Statements[0].(*WhileStatement)
	lit, ok := loop.Condition.(*BooleanLiteral)
	if !ok || !lit.Value {
		t.Errorf("missing condition should become true, got %#v", loop.Condition)
	}
	if loop.Body != Statement(body) {
		t.Error("body without increment should be used as is")
	}
}
