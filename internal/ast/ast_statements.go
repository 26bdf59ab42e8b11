package ast

import "github.com/funvibe/golox/internal/token"

// ExpressionStatement is a statement that consists of a single expression.
type ExpressionStatement struct {
	Token      token.Token // the first token of the expression
	Expression Expression
}

func (es *ExpressionStatement) Accept(v Visitor)      { v.VisitExpressionStatement(es) }
func (es *ExpressionStatement) statementNode()        {}
func (es *ExpressionStatement) TokenLiteral() string  { return es.Token.Lexeme }
func (es *ExpressionStatement) GetToken() token.Token { return es.Token }

// PrintStatement: print expr;
type PrintStatement struct {
	Token token.Token // 'print'
	Value Expression
}

func (ps *PrintStatement) Accept(v Visitor)      { v.VisitPrintStatement(ps) }
func (ps *PrintStatement) statementNode()        {}
func (ps *PrintStatement) TokenLiteral() string  { return ps.Token.Lexeme }
func (ps *PrintStatement) GetToken() token.Token { return ps.Token }

// VarStatement: var name = value; Value is nil when the initializer is omitted.
type VarStatement struct {
	Token token.Token // 'var'
	Name  *Identifier
	Value Expression
}

func (vs *VarStatement) Accept(v Visitor)      { v.VisitVarStatement(vs) }
func (vs *VarStatement) statementNode()        {}
func (vs *VarStatement) TokenLiteral() string  { return vs.Token.Lexeme }
func (vs *VarStatement) GetToken() token.Token { return vs.Token }

// BlockStatement represents a list of statements within curly braces.
type BlockStatement struct {
	Token       token.Token // {
	Statements  []Statement
	RBraceToken token.Token // }
}

func (bs *BlockStatement) Accept(v Visitor)      { v.VisitBlockStatement(bs) }
func (bs *BlockStatement) statementNode()        {}
func (bs *BlockStatement) TokenLiteral() string  { return bs.Token.Lexeme }
func (bs *BlockStatement) GetToken() token.Token { return bs.Token }

type IfStatement struct {
	Token       token.Token // 'if'
	Condition   Expression
	Consequence Statement
	Alternative Statement // nil without else
}

func (is *IfStatement) Accept(v Visitor)      { v.VisitIfStatement(is) }
func (is *IfStatement) statementNode()        {}
func (is *IfStatement) TokenLiteral() string  { return is.Token.Lexeme }
func (is *IfStatement) GetToken() token.Token { return is.Token }

type WhileStatement struct {
	Token     token.Token // 'while'
	Condition Expression
	Body      Statement
}

func (ws *WhileStatement) Accept(v Visitor)      { v.VisitWhileStatement(ws) }
func (ws *WhileStatement) statementNode()        {}
func (ws *WhileStatement) TokenLiteral() string  { return ws.Token.Lexeme }
func (ws *WhileStatement) GetToken() token.Token { return ws.Token }

// ForStatement keeps the surface form of a for loop. Any clause may be nil.
// Only the formatter looks at the clauses; everything else walks Desugared().
type ForStatement struct {
	Token     token.Token // 'for'
	Init      Statement   // *VarStatement or *ExpressionStatement
	Condition Expression
	Increment Expression
	Body      Statement

	desugared *BlockStatement
}

func (fs *ForStatement) Accept(v Visitor)      { v.VisitForStatement(fs) }
func (fs *ForStatement) statementNode()        {}
func (fs *ForStatement) TokenLiteral() string  { return fs.Token.Lexeme }
func (fs *ForStatement) GetToken() token.Token { return fs.Token }

// Desugared returns the loop rewritten as
//
//	{ init; while (cond) { body; incr; } }
//
// A missing condition becomes true. The result is built once and reused, so
// every walk of the loop sees the same nodes.
func (fs *ForStatement) Desugared() *BlockStatement {
	if fs.desugared != nil {
		return fs.desugared
	}
	body := fs.Body
	if fs.Increment != nil {
		body = &BlockStatement{
			Token: fs.Body.GetToken(),
			Statements: []Statement{
				fs.Body,
				&ExpressionStatement{Token: fs.Increment.GetToken(), Expression: fs.Increment},
			},
		}
	}
	var cond Expression = fs.Condition
	if cond == nil {
		cond = &BooleanLiteral{Token: fs.Token, Value: true}
	}
	loop := &WhileStatement{Token: fs.Token, Condition: cond, Body: body}

	outer := &BlockStatement{Token: fs.Token}
	if fs.Init != nil {
		outer.Statements = append(outer.Statements, fs.Init)
	}
	outer.Statements = append(outer.Statements, loop)
	fs.desugared = outer
	return outer
}

// FunctionStatement is a named function, or a method when it appears in a class body.
type FunctionStatement struct {
	Token      token.Token // 'fun', or the name token for methods
	Name       *Identifier
	Parameters []*Identifier
	Body       *BlockStatement
}

func (fs *FunctionStatement) Accept(v Visitor)      { v.VisitFunctionStatement(fs) }
func (fs *FunctionStatement) statementNode()        {}
func (fs *FunctionStatement) TokenLiteral() string  { return fs.Token.Lexeme }
func (fs *FunctionStatement) GetToken() token.Token { return fs.Token }

// ReturnStatement: return value; Value is nil for a bare return.
type ReturnStatement struct {
	Token token.Token // 'return'
	Value Expression
}

func (rs *ReturnStatement) Accept(v Visitor)      { v.VisitReturnStatement(rs) }
func (rs *ReturnStatement) statementNode()        {}
func (rs *ReturnStatement) TokenLiteral() string  { return rs.Token.Lexeme }
func (rs *ReturnStatement) GetToken() token.Token { return rs.Token }

// ClassStatement: class Name < Superclass { methods }
type ClassStatement struct {
	Token      token.Token // 'class'
	Name       *Identifier
	Superclass *Identifier // nil without '<'
	Methods    []*FunctionStatement
}

func (cs *ClassStatement) Accept(v Visitor)      { v.VisitClassStatement(cs) }
func (cs *ClassStatement) statementNode()        {}
func (cs *ClassStatement) TokenLiteral() string  { return cs.Token.Lexeme }
func (cs *ClassStatement) GetToken() token.Token { return cs.Token }
