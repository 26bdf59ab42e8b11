// Package diagnostics defines the coded errors every pipeline stage reports.
package diagnostics

import (
	"fmt"

	"github.com/funvibe/golox/internal/token"
)

type ErrorCode string

const (
	// Lexer
	ErrL001 ErrorCode = "L001" // unexpected character
	ErrL002 ErrorCode = "L002" // unterminated string

	// Parser
	ErrP001 ErrorCode = "P001" // expected token
	ErrP002 ErrorCode = "P002" // expected expression
	ErrP003 ErrorCode = "P003" // invalid assignment target
	ErrP004 ErrorCode = "P004" // too many parameters or arguments

	// Analyzer
	ErrA001 ErrorCode = "A001" // reserved word used as identifier
	ErrA002 ErrorCode = "A002" // duplicate declaration in local scope
	ErrA003 ErrorCode = "A003" // variable read in its own initializer
	ErrA004 ErrorCode = "A004" // this outside of a class
	ErrA005 ErrorCode = "A005" // super outside of a class
	ErrA006 ErrorCode = "A006" // super in a class without superclass
	ErrA007 ErrorCode = "A007" // return outside of a function
	ErrA008 ErrorCode = "A008" // class inherits from itself
	ErrA009 ErrorCode = "A009" // duplicate parameter

	// Runtime
	ErrR001 ErrorCode = "R001" // internal
	ErrR002 ErrorCode = "R002" // undefined variable
	ErrR003 ErrorCode = "R003" // operand type mismatch
	ErrR004 ErrorCode = "R004" // division by zero
	ErrR005 ErrorCode = "R005" // not callable
	ErrR006 ErrorCode = "R006" // arity mismatch
	ErrR007 ErrorCode = "R007" // undefined property
	ErrR008 ErrorCode = "R008" // property access on non-instance
	ErrR009 ErrorCode = "R009" // stack overflow
)

// Phase returns the pipeline stage that owns the code.
func (c ErrorCode) Phase() string {
	if len(c) == 0 {
		return "unknown"
	}
	switch c[0] {
	case 'L':
		return "lexer"
	case 'P':
		return "parser"
	case 'A':
		return "analyzer"
	case 'R':
		return "runtime"
	}
	return "unknown"
}

// IsStatic reports whether the error was raised before evaluation started.
func (c ErrorCode) IsStatic() bool {
	return c.Phase() != "runtime"
}

type DiagnosticError struct {
	Code    ErrorCode
	Token   token.Token
	Message string
	File    string
}

func NewError(code ErrorCode, tok token.Token, format string, args ...interface{}) *DiagnosticError {
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	return &DiagnosticError{Code: code, Token: tok, Message: msg}
}

func (e *DiagnosticError) Error() string {
	prefix := ""
	switch {
	case e.File != "" && e.Token.Line > 0:
		prefix = fmt.Sprintf("%s:%d:%d: ", e.File, e.Token.Line, e.Token.Column)
	case e.File != "":
		prefix = e.File + ": "
	case e.Token.Line > 0:
		prefix = fmt.Sprintf("%d:%d: ", e.Token.Line, e.Token.Column)
	}
	return fmt.Sprintf("%s[%s] %s", prefix, e.Code, e.Message)
}
