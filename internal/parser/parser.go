package parser

import (
	"fmt"

	"github.com/funvibe/golox/internal/ast"
	"github.com/funvibe/golox/internal/config"
	"github.com/funvibe/golox/internal/diagnostics"
	"github.com/funvibe/golox/internal/lexer"
	"github.com/funvibe/golox/internal/pipeline"
	"github.com/funvibe/golox/internal/token"
)

const (
	_ int = iota
	LOWEST
	ASSIGN      // =
	OR          // or
	AND         // and
	EQUALS      // == !=
	LESSGREATER // > >= < <=
	SUM         // + -
	PRODUCT     // * /
	PREFIX      // -x !x
	CALL        // f(x) obj.x
)

var precedences = map[token.TokenType]int{
	token.ASSIGN:   ASSIGN,
	token.OR:       OR,
	token.AND:      AND,
	token.EQ:       EQUALS,
	token.NOT_EQ:   EQUALS,
	token.LT:       LESSGREATER,
	token.LT_EQ:    LESSGREATER,
	token.GT:       LESSGREATER,
	token.GT_EQ:    LESSGREATER,
	token.PLUS:     SUM,
	token.MINUS:    SUM,
	token.SLASH:    PRODUCT,
	token.ASTERISK: PRODUCT,
	token.LPAREN:   CALL,
	token.DOT:      CALL,
}

type (
	prefixParseFn func() ast.Expression
	infixParseFn  func(ast.Expression) ast.Expression
)

type Parser struct {
	stream *token.Stream
	ctx    *pipeline.PipelineContext

	curToken  token.Token
	peekToken token.Token

	prefixParseFns map[token.TokenType]prefixParseFn
	infixParseFns  map[token.TokenType]infixParseFn

	blockDepth int
}

func New(stream *token.Stream, ctx *pipeline.PipelineContext) *Parser {
	p := &Parser{stream: stream, ctx: ctx}

	p.prefixParseFns = map[token.TokenType]prefixParseFn{
		token.IDENT:  p.parseIdentifier,
		token.NUMBER: p.parseNumberLiteral,
		token.STRING: p.parseStringLiteral,
		token.TRUE:   p.parseBooleanLiteral,
		token.FALSE:  p.parseBooleanLiteral,
		token.NIL:    p.parseNilLiteral,
		token.THIS:   p.parseThisExpression,
		token.SUPER:  p.parseSuperExpression,
		token.LPAREN: p.parseGroupedExpression,
		token.BANG:   p.parsePrefixExpression,
		token.MINUS:  p.parsePrefixExpression,
	}

	p.infixParseFns = make(map[token.TokenType]infixParseFn)
	for _, tt := range []token.TokenType{
		token.PLUS, token.MINUS, token.SLASH, token.ASTERISK,
		token.EQ, token.NOT_EQ, token.LT, token.LT_EQ, token.GT, token.GT_EQ,
	} {
		p.infixParseFns[tt] = p.parseInfixExpression
	}
	p.infixParseFns[token.AND] = p.parseLogicalExpression
	p.infixParseFns[token.OR] = p.parseLogicalExpression
	p.infixParseFns[token.ASSIGN] = p.parseAssignExpression
	p.infixParseFns[token.LPAREN] = p.parseCallExpression
	p.infixParseFns[token.DOT] = p.parseGetExpression

	// Read two tokens, so curToken and peekToken are both set
	p.nextToken()
	p.nextToken()
	return p
}

// Parse lexes and parses source outside of a pipeline. Lexer and parser
// diagnostics are returned together.
func Parse(source string) (*ast.Program, []*diagnostics.DiagnosticError) {
	ctx := pipeline.NewPipelineContext(source)
	ctx = (&lexer.LexerProcessor{}).Process(ctx)
	ctx = (&ParserProcessor{}).Process(ctx)
	program, _ := ctx.AstRoot.(*ast.Program)
	return program, ctx.Errors
}

// IsIncomplete reports whether errs only mean the input stopped too early,
// e.g. an open block or a missing semicolon at the end. The REPL uses it to
// ask for another line instead of failing.
func IsIncomplete(errs []*diagnostics.DiagnosticError) bool {
	if len(errs) == 0 {
		return false
	}
	for _, err := range errs {
		if err.Code == diagnostics.ErrL002 {
			continue
		}
		if err.Code.Phase() == "parser" && err.Token.Type == token.EOF {
			continue
		}
		return false
	}
	return true
}

func (p *Parser) ParseProgram() *ast.Program {
	program := &ast.Program{Statements: []ast.Statement{}}
	for !p.curTokenIs(token.EOF) {
		if stmt := p.parseDeclaration(); stmt != nil {
			program.Statements = append(program.Statements, stmt)
		} else {
			p.synchronize()
		}
		p.nextToken()
	}
	return program
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.stream.Next()
}

func (p *Parser) curTokenIs(t token.TokenType) bool {
	return p.curToken.Type == t
}

func (p *Parser) peekTokenIs(t token.TokenType) bool {
	return p.peekToken.Type == t
}

// expectPeek advances when the next token has type t, and records msg
// against the next token otherwise.
func (p *Parser) expectPeek(t token.TokenType, msg string) bool {
	if p.peekTokenIs(t) {
		p.nextToken()
		return true
	}
	p.errorAt(diagnostics.ErrP001, p.peekToken, msg)
	return false
}

// expectName advances onto the next token if it can name something.
// Keywords are accepted so that the analyzer can report them as reserved
// words with a precise message.
func (p *Parser) expectName(what string) (*ast.Identifier, bool) {
	if !isNameToken(p.peekToken) {
		p.errorAt(diagnostics.ErrP001, p.peekToken, fmt.Sprintf("Expect %s name.", what))
		return nil, false
	}
	p.nextToken()
	return p.identifierFromCur(), true
}

func isNameToken(tok token.Token) bool {
	return tok.Type == token.IDENT || token.IsKeyword(tok.Lexeme)
}

func (p *Parser) identifierFromCur() *ast.Identifier {
	return &ast.Identifier{Token: p.curToken, Value: p.curToken.Lexeme}
}

func (p *Parser) peekPrecedence() int {
	if p, ok := precedences[p.peekToken.Type]; ok {
		return p
	}
	return LOWEST
}

func (p *Parser) curPrecedence() int {
	if p, ok := precedences[p.curToken.Type]; ok {
		return p
	}
	return LOWEST
}

func (p *Parser) errorAt(code diagnostics.ErrorCode, tok token.Token, msg string) {
	// The lexer has already reported illegal tokens.
	if tok.Type == token.ILLEGAL {
		return
	}
	where := " at end"
	if tok.Type != token.EOF {
		where = fmt.Sprintf(" at '%s'", tok.Lexeme)
	}
	p.ctx.AddError(diagnostics.NewError(code, tok, "Error%s: %s", where, msg))
}

func (p *Parser) tooMany(tok token.Token, what string) {
	p.errorAt(diagnostics.ErrP004, tok, fmt.Sprintf("Can't have more than %d %s.", config.MaxArgs, what))
}

// synchronize skips tokens after an error until the end of the current
// statement, or until the next token starts a new one.
func (p *Parser) synchronize() {
	for !p.curTokenIs(token.EOF) {
		if p.curTokenIs(token.SEMICOLON) {
			return
		}
		switch p.peekToken.Type {
		case token.CLASS, token.FUN, token.VAR, token.FOR, token.IF,
			token.WHILE, token.PRINT, token.RETURN, token.EOF:
			return
		case token.RBRACE:
			if p.blockDepth > 0 {
				return
			}
		}
		p.nextToken()
	}
}
