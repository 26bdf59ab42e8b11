package parser

import (
	"fmt"

	"github.com/funvibe/golox/internal/ast"
	"github.com/funvibe/golox/internal/config"
	"github.com/funvibe/golox/internal/diagnostics"
	"github.com/funvibe/golox/internal/token"
)

func maxArgs() int { return config.MaxArgs }

func (p *Parser) parseExpression(precedence int) ast.Expression {
	prefix := p.prefixParseFns[p.curToken.Type]
	if prefix == nil {
		p.noPrefixParseFnError(p.curToken)
		return nil
	}
	leftExp := prefix()
	if leftExp == nil {
		return nil
	}

	for precedence < p.peekPrecedence() {
		infix := p.infixParseFns[p.peekToken.Type]
		if infix == nil {
			return leftExp
		}
		p.nextToken()
		if leftExp = infix(leftExp); leftExp == nil {
			return nil
		}
	}

	return leftExp
}

func (p *Parser) noPrefixParseFnError(tok token.Token) {
	p.errorAt(diagnostics.ErrP002, tok, "Expect expression.")
}

func (p *Parser) parseIdentifier() ast.Expression {
	return p.identifierFromCur()
}

func (p *Parser) parseNumberLiteral() ast.Expression {
	value, ok := p.curToken.Literal.(float64)
	if !ok {
		p.errorAt(diagnostics.ErrP002, p.curToken, fmt.Sprintf("Could not parse %q as number.", p.curToken.Lexeme))
		return nil
	}
	return &ast.NumberLiteral{Token: p.curToken, Value: value}
}

func (p *Parser) parseStringLiteral() ast.Expression {
	value, _ := p.curToken.Literal.(string)
	return &ast.StringLiteral{Token: p.curToken, Value: value}
}

func (p *Parser) parseBooleanLiteral() ast.Expression {
	return &ast.BooleanLiteral{Token: p.curToken, Value: p.curTokenIs(token.TRUE)}
}

func (p *Parser) parseNilLiteral() ast.Expression {
	return &ast.NilLiteral{Token: p.curToken}
}

func (p *Parser) parseThisExpression() ast.Expression {
	return &ast.ThisExpression{Token: p.curToken}
}

func (p *Parser) parseSuperExpression() ast.Expression {
	exp := &ast.SuperExpression{Token: p.curToken}
	if !p.expectPeek(token.DOT, "Expect '.' after 'super'.") {
		return nil
	}
	method, ok := p.expectName("superclass method")
	if !ok {
		return nil
	}
	exp.Method = method
	return exp
}

func (p *Parser) parseGroupedExpression() ast.Expression {
	exp := &ast.GroupedExpression{Token: p.curToken}
	p.nextToken()
	if exp.Expression = p.parseExpression(LOWEST); exp.Expression == nil {
		return nil
	}
	if !p.expectPeek(token.RPAREN, "Expect ')' after expression.") {
		return nil
	}
	return exp
}

func (p *Parser) parsePrefixExpression() ast.Expression {
	exp := &ast.PrefixExpression{Token: p.curToken, Operator: p.curToken.Lexeme}
	p.nextToken()
	if exp.Right = p.parseExpression(PREFIX); exp.Right == nil {
		return nil
	}
	return exp
}

func (p *Parser) parseInfixExpression(left ast.Expression) ast.Expression {
	exp := &ast.InfixExpression{Token: p.curToken, Operator: p.curToken.Lexeme, Left: left}
	precedence := p.curPrecedence()
	p.nextToken()
	if exp.Right = p.parseExpression(precedence); exp.Right == nil {
		return nil
	}
	return exp
}

func (p *Parser) parseLogicalExpression(left ast.Expression) ast.Expression {
	exp := &ast.LogicalExpression{Token: p.curToken, Operator: p.curToken.Lexeme, Left: left}
	precedence := p.curPrecedence()
	p.nextToken()
	if exp.Right = p.parseExpression(precedence); exp.Right == nil {
		return nil
	}
	return exp
}

// parseAssignExpression is right associative: a = b = c is a = (b = c).
func (p *Parser) parseAssignExpression(left ast.Expression) ast.Expression {
	tok := p.curToken
	p.nextToken()
	value := p.parseExpression(LOWEST)
	if value == nil {
		return nil
	}

	switch target := left.(type) {
	case *ast.Identifier:
		return &ast.AssignExpression{Token: tok, Name: target, Value: value}
	case *ast.GetExpression:
		return &ast.SetExpression{Token: tok, Object: target.Object, Name: target.Name, Value: value}
	}
	p.errorAt(diagnostics.ErrP003, tok, "Invalid assignment target.")
	return nil
}

func (p *Parser) parseCallExpression(function ast.Expression) ast.Expression {
	exp := &ast.CallExpression{Token: p.curToken, Function: function, Arguments: []ast.Expression{}}

	if !p.peekTokenIs(token.RPAREN) {
		for {
			p.nextToken()
			if len(exp.Arguments) == maxArgs() {
				p.tooMany(p.curToken, "arguments")
			}
			arg := p.parseExpression(LOWEST)
			if arg == nil {
				return nil
			}
			exp.Arguments = append(exp.Arguments, arg)
			if !p.peekTokenIs(token.COMMA) {
				break
			}
			p.nextToken()
		}
	}

	if !p.expectPeek(token.RPAREN, "Expect ')' after arguments.") {
		return nil
	}
	return exp
}

func (p *Parser) parseGetExpression(object ast.Expression) ast.Expression {
	exp := &ast.GetExpression{Token: p.curToken, Object: object}
	name, ok := p.expectName("property")
	if !ok {
		return nil
	}
	exp.Name = name
	return exp
}
