package parser

import (
	"github.com/funvibe/golox/internal/ast"
	"github.com/funvibe/golox/internal/diagnostics"
	"github.com/funvibe/golox/internal/token"
)

// Every statement parser starts with curToken on the statement's first
// token and leaves it on the last one.

func (p *Parser) parseDeclaration() ast.Statement {
	switch p.curToken.Type {
	case token.CLASS:
		return nilSafe(p.parseClassStatement())
	case token.FUN:
		tok := p.curToken
		name, ok := p.expectName("function")
		if !ok {
			return nil
		}
		return nilSafe(p.parseFunction(tok, name, "function"))
	case token.VAR:
		return nilSafe(p.parseVarStatement())
	default:
		return p.parseStatement()
	}
}

func (p *Parser) parseStatement() ast.Statement {
	switch p.curToken.Type {
	case token.PRINT:
		return nilSafe(p.parsePrintStatement())
	case token.RETURN:
		return nilSafe(p.parseReturnStatement())
	case token.IF:
		return nilSafe(p.parseIfStatement())
	case token.WHILE:
		return nilSafe(p.parseWhileStatement())
	case token.FOR:
		return nilSafe(p.parseForStatement())
	case token.LBRACE:
		return nilSafe(p.parseBlockStatement())
	default:
		return nilSafe(p.parseExpressionStatement())
	}
}

// nilSafe turns a typed nil statement into an untyped nil interface.
func nilSafe[T interface {
	ast.Statement
	comparable
}](stmt T) ast.Statement {
	var zero T
	if stmt == zero {
		return nil
	}
	return stmt
}

func (p *Parser) parseVarStatement() *ast.VarStatement {
	stmt := &ast.VarStatement{Token: p.curToken}

	name, ok := p.expectName("variable")
	if !ok {
		return nil
	}
	stmt.Name = name

	if p.peekTokenIs(token.ASSIGN) {
		p.nextToken()
		p.nextToken()
		if stmt.Value = p.parseExpression(LOWEST); stmt.Value == nil {
			return nil
		}
	}

	if !p.expectPeek(token.SEMICOLON, "Expect ';' after variable declaration.") {
		return nil
	}
	return stmt
}

func (p *Parser) parseExpressionStatement() *ast.ExpressionStatement {
	stmt := &ast.ExpressionStatement{Token: p.curToken}
	if stmt.Expression = p.parseExpression(LOWEST); stmt.Expression == nil {
		return nil
	}
	if !p.expectPeek(token.SEMICOLON, "Expect ';' after expression.") {
		return nil
	}
	return stmt
}

func (p *Parser) parsePrintStatement() *ast.PrintStatement {
	stmt := &ast.PrintStatement{Token: p.curToken}
	p.nextToken()
	if stmt.Value = p.parseExpression(LOWEST); stmt.Value == nil {
		return nil
	}
	if !p.expectPeek(token.SEMICOLON, "Expect ';' after value.") {
		return nil
	}
	return stmt
}

func (p *Parser) parseReturnStatement() *ast.ReturnStatement {
	stmt := &ast.ReturnStatement{Token: p.curToken}
	if !p.peekTokenIs(token.SEMICOLON) {
		p.nextToken()
		if stmt.Value = p.parseExpression(LOWEST); stmt.Value == nil {
			return nil
		}
	}
	if !p.expectPeek(token.SEMICOLON, "Expect ';' after return value.") {
		return nil
	}
	return stmt
}

func (p *Parser) parseBlockStatement() *ast.BlockStatement {
	block := &ast.BlockStatement{Token: p.curToken, Statements: []ast.Statement{}}
	p.blockDepth++
	defer func() { p.blockDepth-- }()

	p.nextToken()
	for !p.curTokenIs(token.RBRACE) && !p.curTokenIs(token.EOF) {
		if stmt := p.parseDeclaration(); stmt != nil {
			block.Statements = append(block.Statements, stmt)
		} else {
			p.synchronize()
		}
		p.nextToken()
	}

	if p.curTokenIs(token.EOF) {
		p.errorAt(diagnostics.ErrP001, p.curToken, "Expect '}' after block.")
		return nil
	}
	block.RBraceToken = p.curToken
	return block
}

func (p *Parser) parseIfStatement() *ast.IfStatement {
	stmt := &ast.IfStatement{Token: p.curToken}

	if !p.expectPeek(token.LPAREN, "Expect '(' after 'if'.") {
		return nil
	}
	p.nextToken()
	if stmt.Condition = p.parseExpression(LOWEST); stmt.Condition == nil {
		return nil
	}
	if !p.expectPeek(token.RPAREN, "Expect ')' after if condition.") {
		return nil
	}

	p.nextToken()
	if stmt.Consequence = p.parseStatement(); stmt.Consequence == nil {
		return nil
	}

	if p.peekTokenIs(token.ELSE) {
		p.nextToken()
		p.nextToken()
		if stmt.Alternative = p.parseStatement(); stmt.Alternative == nil {
			return nil
		}
	}
	return stmt
}

func (p *Parser) parseWhileStatement() *ast.WhileStatement {
	stmt := &ast.WhileStatement{Token: p.curToken}

	if !p.expectPeek(token.LPAREN, "Expect '(' after 'while'.") {
		return nil
	}
	p.nextToken()
	if stmt.Condition = p.parseExpression(LOWEST); stmt.Condition == nil {
		return nil
	}
	if !p.expectPeek(token.RPAREN, "Expect ')' after condition.") {
		return nil
	}

	p.nextToken()
	if stmt.Body = p.parseStatement(); stmt.Body == nil {
		return nil
	}
	return stmt
}

func (p *Parser) parseForStatement() *ast.ForStatement {
	stmt := &ast.ForStatement{Token: p.curToken}

	if !p.expectPeek(token.LPAREN, "Expect '(' after 'for'.") {
		return nil
	}

	p.nextToken()
	switch p.curToken.Type {
	case token.SEMICOLON:
	case token.VAR:
		if stmt.Init = nilSafe(p.parseVarStatement()); stmt.Init == nil {
			return nil
		}
	default:
		if stmt.Init = nilSafe(p.parseExpressionStatement()); stmt.Init == nil {
			return nil
		}
	}

	if !p.peekTokenIs(token.SEMICOLON) {
		p.nextToken()
		if stmt.Condition = p.parseExpression(LOWEST); stmt.Condition == nil {
			return nil
		}
	}
	if !p.expectPeek(token.SEMICOLON, "Expect ';' after loop condition.") {
		return nil
	}

	if !p.peekTokenIs(token.RPAREN) {
		p.nextToken()
		if stmt.Increment = p.parseExpression(LOWEST); stmt.Increment == nil {
			return nil
		}
	}
	if !p.expectPeek(token.RPAREN, "Expect ')' after for clauses.") {
		return nil
	}

	p.nextToken()
	if stmt.Body = p.parseStatement(); stmt.Body == nil {
		return nil
	}
	return stmt
}

// parseFunction parses the parameter list and body that follow name.
// tok is 'fun' for declarations and the name itself for methods.
func (p *Parser) parseFunction(tok token.Token, name *ast.Identifier, kind string) *ast.FunctionStatement {
	fn := &ast.FunctionStatement{Token: tok, Name: name, Parameters: []*ast.Identifier{}}

	if !p.expectPeek(token.LPAREN, "Expect '(' after "+kind+" name.") {
		return nil
	}

	if !p.peekTokenIs(token.RPAREN) {
		for {
			param, ok := p.expectName("parameter")
			if !ok {
				return nil
			}
			if len(fn.Parameters) == maxArgs() {
				p.tooMany(param.Token, "parameters")
			}
			fn.Parameters = append(fn.Parameters, param)
			if !p.peekTokenIs(token.COMMA) {
				break
			}
			p.nextToken()
		}
	}
	if !p.expectPeek(token.RPAREN, "Expect ')' after parameters.") {
		return nil
	}

	if !p.expectPeek(token.LBRACE, "Expect '{' before "+kind+" body.") {
		return nil
	}
	if fn.Body = p.parseBlockStatement(); fn.Body == nil {
		return nil
	}
	return fn
}

func (p *Parser) parseClassStatement() *ast.ClassStatement {
	stmt := &ast.ClassStatement{Token: p.curToken, Methods: []*ast.FunctionStatement{}}

	name, ok := p.expectName("class")
	if !ok {
		return nil
	}
	stmt.Name = name

	if p.peekTokenIs(token.LT) {
		p.nextToken()
		if stmt.Superclass, ok = p.expectName("superclass"); !ok {
			return nil
		}
	}

	if !p.expectPeek(token.LBRACE, "Expect '{' before class body.") {
		return nil
	}

	p.nextToken()
	for !p.curTokenIs(token.RBRACE) && !p.curTokenIs(token.EOF) {
		if !isNameToken(p.curToken) {
			p.errorAt(diagnostics.ErrP001, p.curToken, "Expect method name.")
			return nil
		}
		name := p.identifierFromCur()
		method := p.parseFunction(p.curToken, name, "method")
		if method == nil {
			return nil
		}
		stmt.Methods = append(stmt.Methods, method)
		p.nextToken()
	}

	if p.curTokenIs(token.EOF) {
		p.errorAt(diagnostics.ErrP001, p.curToken, "Expect '}' after class body.")
		return nil
	}
	return stmt
}
