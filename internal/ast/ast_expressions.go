package ast

import "github.com/funvibe/golox/internal/token"

type Identifier struct {
	Token token.Token
	Value string
}

func (i *Identifier) Accept(v Visitor)      { v.VisitIdentifier(i) }
func (i *Identifier) expressionNode()       {}
func (i *Identifier) TokenLiteral() string  { return i.Token.Lexeme }
func (i *Identifier) GetToken() token.Token { return i.Token }

type NumberLiteral struct {
	Token token.Token
	Value float64
}

func (nl *NumberLiteral) Accept(v Visitor)      { v.VisitNumberLiteral(nl) }
func (nl *NumberLiteral) expressionNode()       {}
func (nl *NumberLiteral) TokenLiteral() string  { return nl.Token.Lexeme }
func (nl *NumberLiteral) GetToken() token.Token { return nl.Token }

type StringLiteral struct {
	Token token.Token
	Value string
}

func (sl *StringLiteral) Accept(v Visitor)      { v.VisitStringLiteral(sl) }
func (sl *StringLiteral) expressionNode()       {}
func (sl *StringLiteral) TokenLiteral() string  { return sl.Token.Lexeme }
func (sl *StringLiteral) GetToken() token.Token { return sl.Token }

type BooleanLiteral struct {
	Token token.Token
	Value bool
}

func (bl *BooleanLiteral) Accept(v Visitor)      { v.VisitBooleanLiteral(bl) }
func (bl *BooleanLiteral) expressionNode()       {}
func (bl *BooleanLiteral) TokenLiteral() string  { return bl.Token.Lexeme }
func (bl *BooleanLiteral) GetToken() token.Token { return bl.Token }

type NilLiteral struct {
	Token token.Token
}

func (nl *NilLiteral) Accept(v Visitor)      { v.VisitNilLiteral(nl) }
func (nl *NilLiteral) expressionNode()       {}
func (nl *NilLiteral) TokenLiteral() string  { return nl.Token.Lexeme }
func (nl *NilLiteral) GetToken() token.Token { return nl.Token }

// GroupedExpression is a parenthesized expression. It only matters for
// assignment targets: (a) = 1 is rejected, a = 1 is not.
type GroupedExpression struct {
	Token      token.Token // '('
	Expression Expression
}

func (ge *GroupedExpression) Accept(v Visitor)      { v.VisitGroupedExpression(ge) }
func (ge *GroupedExpression) expressionNode()       {}
func (ge *GroupedExpression) TokenLiteral() string  { return ge.Token.Lexeme }
func (ge *GroupedExpression) GetToken() token.Token { return ge.Token }

// PrefixExpression: -x, !x
type PrefixExpression struct {
	Token    token.Token // The prefix token, e.g. !
	Operator string
	Right    Expression
}

func (pe *PrefixExpression) Accept(v Visitor)      { v.VisitPrefixExpression(pe) }
func (pe *PrefixExpression) expressionNode()       {}
func (pe *PrefixExpression) TokenLiteral() string  { return pe.Token.Lexeme }
func (pe *PrefixExpression) GetToken() token.Token { return pe.Token }

// InfixExpression is an arithmetic, comparison or equality operator.
type InfixExpression struct {
	Token    token.Token // The operator token, e.g. +
	Left     Expression
	Operator string
	Right    Expression
}

func (ie *InfixExpression) Accept(v Visitor)      { v.VisitInfixExpression(ie) }
func (ie *InfixExpression) expressionNode()       {}
func (ie *InfixExpression) TokenLiteral() string  { return ie.Token.Lexeme }
func (ie *InfixExpression) GetToken() token.Token { return ie.Token }

// LogicalExpression is a short-circuit "and" or "or".
type LogicalExpression struct {
	Token    token.Token
	Left     Expression
	Operator string // "and" or "or"
	Right    Expression
}

func (le *LogicalExpression) Accept(v Visitor)      { v.VisitLogicalExpression(le) }
func (le *LogicalExpression) expressionNode()       {}
func (le *LogicalExpression) TokenLiteral() string  { return le.Token.Lexeme }
func (le *LogicalExpression) GetToken() token.Token { return le.Token }

// AssignExpression: name = value
type AssignExpression struct {
	Token token.Token // '='
	Name  *Identifier
	Value Expression
}

func (ae *AssignExpression) Accept(v Visitor)      { v.VisitAssignExpression(ae) }
func (ae *AssignExpression) expressionNode()       {}
func (ae *AssignExpression) TokenLiteral() string  { return ae.Token.Lexeme }
func (ae *AssignExpression) GetToken() token.Token { return ae.Token }

type CallExpression struct {
	Token     token.Token // '(' token
	Function  Expression  // Identifier, GetExpression, SuperExpression or another call
	Arguments []Expression
}

func (ce *CallExpression) Accept(v Visitor)      { v.VisitCallExpression(ce) }
func (ce *CallExpression) expressionNode()       {}
func (ce *CallExpression) TokenLiteral() string  { return ce.Token.Lexeme }
func (ce *CallExpression) GetToken() token.Token { return ce.Token }

// GetExpression is property access, e.g. obj.field
type GetExpression struct {
	Token  token.Token // The '.' token
	Object Expression
	Name   *Identifier
}

func (ge *GetExpression) Accept(v Visitor)      { v.VisitGetExpression(ge) }
func (ge *GetExpression) expressionNode()       {}
func (ge *GetExpression) TokenLiteral() string  { return ge.Token.Lexeme }
func (ge *GetExpression) GetToken() token.Token { return ge.Token }

// SetExpression is property assignment, e.g. obj.field = value
type SetExpression struct {
	Token  token.Token // '='
	Object Expression
	Name   *Identifier
	Value  Expression
}

func (se *SetExpression) Accept(v Visitor)      { v.VisitSetExpression(se) }
func (se *SetExpression) expressionNode()       {}
func (se *SetExpression) TokenLiteral() string  { return se.Token.Lexeme }
func (se *SetExpression) GetToken() token.Token { return se.Token }

type ThisExpression struct {
	Token token.Token
}

func (te *ThisExpression) Accept(v Visitor)      { v.VisitThisExpression(te) }
func (te *ThisExpression) expressionNode()       {}
func (te *ThisExpression) TokenLiteral() string  { return te.Token.Lexeme }
func (te *ThisExpression) GetToken() token.Token { return te.Token }

// SuperExpression: super.method
type SuperExpression struct {
	Token  token.Token // 'super'
	Method *Identifier
}

func (se *SuperExpression) Accept(v Visitor)      { v.VisitSuperExpression(se) }
func (se *SuperExpression) expressionNode()       {}
func (se *SuperExpression) TokenLiteral() string  { return se.Token.Lexeme }
func (se *SuperExpression) GetToken() token.Token { return se.Token }
