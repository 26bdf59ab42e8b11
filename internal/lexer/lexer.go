package lexer

import (
	"strconv"
	"unicode"
	"unicode/utf8"

	"github.com/funvibe/golox/internal/diagnostics"
	"github.com/funvibe/golox/internal/token"
)

type Lexer struct {
	input        string
	position     int  // current position in input (points to current char)
	readPosition int  // current reading position in input (after current char)
	ch           rune // current char under examination
	line         int  // current line number
	column       int  // current column number

	errors []*diagnostics.DiagnosticError
}

func New(input string) *Lexer {
	l := &Lexer{input: input, line: 1, column: 0}
	l.readChar()
	return l
}

// Errors returns the diagnostics recorded so far. Every ILLEGAL token has one.
func (l *Lexer) Errors() []*diagnostics.DiagnosticError {
	return l.errors
}

func (l *Lexer) readChar() {
	if l.ch == '\n' {
		l.line++
		l.column = 0
	}

	if l.readPosition >= len(l.input) {
		l.ch = 0
		l.position = len(l.input)
		l.readPosition = len(l.input) + 1
		l.column++
		return
	}

	r, w := utf8.DecodeRuneInString(l.input[l.readPosition:])
	l.ch = r
	l.position = l.readPosition
	l.readPosition += w
	l.column++
}

func (l *Lexer) NextToken() token.Token {
	var tok token.Token

	l.skipWhitespace()

	switch l.ch {
	case '(':
		tok = newToken(token.LPAREN, l.ch, l.line, l.column)
	case ')':
		tok = newToken(token.RPAREN, l.ch, l.line, l.column)
	case '{':
		tok = newToken(token.LBRACE, l.ch, l.line, l.column)
	case '}':
		tok = newToken(token.RBRACE, l.ch, l.line, l.column)
	case ',':
		tok = newToken(token.COMMA, l.ch, l.line, l.column)
	case '.':
		tok = newToken(token.DOT, l.ch, l.line, l.column)
	case '-':
		tok = newToken(token.MINUS, l.ch, l.line, l.column)
	case '+':
		tok = newToken(token.PLUS, l.ch, l.line, l.column)
	case ';':
		tok = newToken(token.SEMICOLON, l.ch, l.line, l.column)
	case '/':
		tok = newToken(token.SLASH, l.ch, l.line, l.column)
	case '*':
		tok = newToken(token.ASTERISK, l.ch, l.line, l.column)
	case '!':
		tok = l.oneOrTwo(token.BANG, token.NOT_EQ)
	case '=':
		tok = l.oneOrTwo(token.ASSIGN, token.EQ)
	case '>':
		tok = l.oneOrTwo(token.GT, token.GT_EQ)
	case '<':
		tok = l.oneOrTwo(token.LT, token.LT_EQ)
	case '"':
		return l.readString()
	case 0:
		tok.Lexeme = ""
		tok.Type = token.EOF
		tok.Line = l.line
		tok.Column = l.column
		return tok
	default:
		if isLetter(l.ch) {
			startLine, startCol := l.line, l.column
			lexeme := l.readIdentifier()
			tok.Lexeme = lexeme
			tok.Type = token.LookupIdent(lexeme)
			tok.Literal = lexeme
			tok.Line = startLine
			tok.Column = startCol
			return tok
		} else if isDigit(l.ch) {
			return l.readNumber()
		}
		tok = newToken(token.ILLEGAL, l.ch, l.line, l.column)
		l.errorf(diagnostics.ErrL001, tok, "Unexpected character '%s'.", tok.Lexeme)
	}

	l.readChar()
	return tok
}

// oneOrTwo returns the two-character token when the next char is '='.
func (l *Lexer) oneOrTwo(single, double token.TokenType) token.Token {
	if l.peekChar() == '=' {
		line, col := l.line, l.column
		ch := l.ch
		l.readChar()
		literal := string(ch) + string(l.ch)
		return token.Token{Type: double, Lexeme: literal, Literal: literal, Line: line, Column: col}
	}
	return newToken(single, l.ch, l.line, l.column)
}

// readString reads a double-quoted string. Strings may span lines and have
// no escape sequences.
func (l *Lexer) readString() token.Token {
	startLine, startCol := l.line, l.column
	start := l.position
	for {
		l.readChar()
		if l.ch == '"' || l.ch == 0 {
			break
		}
	}
	if l.ch == 0 {
		tok := token.Token{Type: token.ILLEGAL, Lexeme: l.input[start:], Line: startLine, Column: startCol}
		tok.Literal = "Unterminated string."
		l.errorf(diagnostics.ErrL002, tok, "Unterminated string.")
		return tok
	}
	lexeme := l.input[start : l.position+1]
	l.readChar() // closing quote
	return token.Token{
		Type:    token.STRING,
		Lexeme:  lexeme,
		Literal: lexeme[1 : len(lexeme)-1],
		Line:    startLine,
		Column:  startCol,
	}
}

func (l *Lexer) readIdentifier() string {
	position := l.position
	for isLetter(l.ch) || isDigit(l.ch) {
		l.readChar()
	}
	return l.input[position:l.position]
}

// readNumber reads 123 or 12.5. A trailing dot is not part of the number,
// so 1.foo lexes as NUMBER DOT IDENT.
func (l *Lexer) readNumber() token.Token {
	startLine, startCol := l.line, l.column
	position := l.position
	for isDigit(l.ch) {
		l.readChar()
	}
	if l.ch == '.' && isDigit(l.peekChar()) {
		l.readChar()
		for isDigit(l.ch) {
			l.readChar()
		}
	}
	lexeme := l.input[position:l.position]
	tok := token.Token{Type: token.NUMBER, Lexeme: lexeme, Line: startLine, Column: startCol}
	value, err := strconv.ParseFloat(lexeme, 64)
	if err != nil {
		// Only reachable for literals beyond float64 range.
		tok.Type = token.ILLEGAL
		tok.Literal = err.Error()
		l.errorf(diagnostics.ErrL001, tok, "Invalid number literal '%s'.", lexeme)
		return tok
	}
	tok.Literal = value
	return tok
}

func (l *Lexer) errorf(code diagnostics.ErrorCode, tok token.Token, format string, args ...interface{}) {
	l.errors = append(l.errors, diagnostics.NewError(code, tok, format, args...))
}

func isLetter(ch rune) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_' || (ch >= 0x80 && unicode.IsLetter(ch))
}

func isDigit(ch rune) bool {
	return '0' <= ch && ch <= '9'
}

func (l *Lexer) peekChar() rune {
	if l.readPosition >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.readPosition:])
	return r
}

func newToken(tokenType token.TokenType, ch rune, line, col int) token.Token {
	literal := string(ch)
	return token.Token{Type: tokenType, Lexeme: literal, Literal: literal, Line: line, Column: col}
}

func (l *Lexer) skipWhitespace() {
	for {
		for l.ch == ' ' || l.ch == '\t' || l.ch == '\r' || l.ch == '\n' {
			l.readChar()
		}
		if l.ch == '/' && l.peekChar() == '/' {
			for l.ch != '\n' && l.ch != 0 {
				l.readChar()
			}
			continue
		}
		break
	}
}

// Tokenize runs the lexer to completion. The result always ends with EOF.
func Tokenize(input string) ([]token.Token, []*diagnostics.DiagnosticError) {
	l := New(input)
	var tokens []token.Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == token.EOF {
			break
		}
	}
	return tokens, l.Errors()
}
