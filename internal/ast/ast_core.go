package ast

import "github.com/funvibe/golox/internal/token"

// TokenProvider is an interface for any AST node that can provide its primary token.
// This is useful for error reporting.
type TokenProvider interface {
	GetToken() token.Token
}

// Node is the base interface for all AST nodes.
type Node interface {
	TokenLiteral() string
	Accept(v Visitor)
}

// Statement is a Node that represents a statement.
type Statement interface {
	Node
	statementNode()
	GetToken() token.Token
}

// Expression is a Node that represents an expression.
type Expression interface {
	Node
	expressionNode()
	GetToken() token.Token
}

// Program is the root node of every AST our parser produces.
type Program struct {
	File       string // Source file path
	Statements []Statement
}

func (p *Program) Accept(v Visitor) { v.VisitProgram(p) }
func (p *Program) TokenLiteral() string {
	if len(p.Statements) > 0 {
		return p.Statements[0].TokenLiteral()
	}
	return ""
}

// Visitor walks the tree. Each node's Accept calls the matching method;
// visitors recurse into children themselves.
type Visitor interface {
	VisitProgram(node *Program)

	VisitExpressionStatement(node *ExpressionStatement)
	VisitPrintStatement(node *PrintStatement)
	VisitVarStatement(node *VarStatement)
	VisitBlockStatement(node *BlockStatement)
	VisitIfStatement(node *IfStatement)
	VisitWhileStatement(node *WhileStatement)
	VisitForStatement(node *ForStatement)
	VisitFunctionStatement(node *FunctionStatement)
	VisitReturnStatement(node *ReturnStatement)
	VisitClassStatement(node *ClassStatement)

	VisitIdentifier(node *Identifier)
	VisitNumberLiteral(node *NumberLiteral)
	VisitStringLiteral(node *StringLiteral)
	VisitBooleanLiteral(node *BooleanLiteral)
	VisitNilLiteral(node *NilLiteral)
	VisitGroupedExpression(node *GroupedExpression)
	VisitPrefixExpression(node *PrefixExpression)
	VisitInfixExpression(node *InfixExpression)
	VisitLogicalExpression(node *LogicalExpression)
	VisitAssignExpression(node *AssignExpression)
	VisitCallExpression(node *CallExpression)
	VisitGetExpression(node *GetExpression)
	VisitSetExpression(node *SetExpression)
	VisitThisExpression(node *ThisExpression)
	VisitSuperExpression(node *SuperExpression)
}
