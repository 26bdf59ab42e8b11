// Package analyzer checks a parsed program for errors that can be found
// without running it: misplaced this/super/return, duplicate local
// declarations, reserved words used as names and similar.
//
// The evaluator relies on these checks having passed.
package analyzer

import (
	"github.com/funvibe/golox/internal/ast"
	"github.com/funvibe/golox/internal/config"
	"github.com/funvibe/golox/internal/diagnostics"
	"github.com/funvibe/golox/internal/token"
)

type functionKind int

const (
	noFunction functionKind = iota
	plainFunction
	methodFunction
	initializerFunction
)

type classKind int

const (
	noClass classKind = iota
	plainClass
	subClass
)

// scope maps a local name to whether its initializer has finished.
type scope map[string]bool

// Analyzer performs semantic analysis on the AST.
type Analyzer struct {
	// scopes holds local scopes only; the global scope is not tracked
	// because globals may be redeclared.
	scopes          []scope
	currentFunction functionKind
	currentClass    classKind
	errors          []*diagnostics.DiagnosticError
}

func New() *Analyzer {
	return &Analyzer{}
}

// Analyze walks node and returns every error found.
func (a *Analyzer) Analyze(node ast.Node) []*diagnostics.DiagnosticError {
	a.errors = nil
	node.Accept(a)
	return a.errors
}

func (a *Analyzer) errorf(code diagnostics.ErrorCode, tok token.Token, format string, args ...interface{}) {
	a.errors = append(a.errors, diagnostics.NewError(code, tok, format, args...))
}

func (a *Analyzer) beginScope() {
	a.scopes = append(a.scopes, scope{})
}

func (a *Analyzer) endScope() {
	a.scopes = a.scopes[:len(a.scopes)-1]
}

func (a *Analyzer) checkName(name *ast.Identifier) {
	if token.IsKeyword(name.Value) {
		a.errorf(diagnostics.ErrA001, name.Token, "Can't use reserved word '%s' as a name.", name.Value)
	}
}

// declare adds name to the innermost local scope as not yet initialized.
func (a *Analyzer) declare(name *ast.Identifier) {
	a.checkName(name)
	if len(a.scopes) == 0 {
		return
	}
	current := a.scopes[len(a.scopes)-1]
	if _, exists := current[name.Value]; exists {
		a.errorf(diagnostics.ErrA002, name.Token, "Already a variable named '%s' in this scope.", name.Value)
	}
	current[name.Value] = false
}

func (a *Analyzer) define(name *ast.Identifier) {
	if len(a.scopes) == 0 {
		return
	}
	a.scopes[len(a.scopes)-1][name.Value] = true
}

// defineReserved binds an implicit name such as this or super.
func (a *Analyzer) defineReserved(name string) {
	a.scopes[len(a.scopes)-1][name] = true
}

func (a *Analyzer) analyzeFunction(fn *ast.FunctionStatement, kind functionKind) {
	enclosing := a.currentFunction
	a.currentFunction = kind
	defer func() { a.currentFunction = enclosing }()

	// Parameters and body statements share one scope, mirroring the
	// single environment a call creates.
	a.beginScope()
	seen := make(map[string]bool, len(fn.Parameters))
	for _, param := range fn.Parameters {
		a.checkName(param)
		if seen[param.Value] {
			a.errorf(diagnostics.ErrA009, param.Token, "Duplicate parameter name '%s'.", param.Value)
			continue
		}
		seen[param.Value] = true
		a.scopes[len(a.scopes)-1][param.Value] = true
	}
	for _, stmt := range fn.Body.Statements {
		stmt.Accept(a)
	}
	a.endScope()
}

func (a *Analyzer) VisitProgram(n *ast.Program) {
	for _, stmt := range n.Statements {
		stmt.Accept(a)
	}
}

func (a *Analyzer) VisitExpressionStatement(n *ast.ExpressionStatement) {
	n.Expression.Accept(a)
}

func (a *Analyzer) VisitPrintStatement(n *ast.PrintStatement) {
	n.Value.Accept(a)
}

func (a *Analyzer) VisitVarStatement(n *ast.VarStatement) {
	a.declare(n.Name)
	if n.Value != nil {
		n.Value.Accept(a)
	}
	a.define(n.Name)
}

func (a *Analyzer) VisitBlockStatement(n *ast.BlockStatement) {
	a.beginScope()
	for _, stmt := range n.Statements {
		stmt.Accept(a)
	}
	a.endScope()
}

func (a *Analyzer) VisitIfStatement(n *ast.IfStatement) {
	n.Condition.Accept(a)
	n.Consequence.Accept(a)
	if n.Alternative != nil {
		n.Alternative.Accept(a)
	}
}

func (a *Analyzer) VisitWhileStatement(n *ast.WhileStatement) {
	n.Condition.Accept(a)
	n.Body.Accept(a)
}

func (a *Analyzer) VisitForStatement(n *ast.ForStatement) {
	n.Desugared().Accept(a)
}

func (a *Analyzer) VisitFunctionStatement(n *ast.FunctionStatement) {
	// Declared and defined before the body so the function can recurse.
	a.declare(n.Name)
	a.define(n.Name)
	a.analyzeFunction(n, plainFunction)
}

func (a *Analyzer) VisitReturnStatement(n *ast.ReturnStatement) {
	if a.currentFunction == noFunction {
		a.errorf(diagnostics.ErrA007, n.Token, "Can't return from top-level code.")
	}
	if n.Value != nil {
		n.Value.Accept(a)
	}
}

func (a *Analyzer) VisitClassStatement(n *ast.ClassStatement) {
	enclosing := a.currentClass
	a.currentClass = plainClass
	defer func() { a.currentClass = enclosing }()

	a.declare(n.Name)
	a.define(n.Name)

	if n.Superclass != nil {
		if n.Superclass.Value == n.Name.Value {
			a.errorf(diagnostics.ErrA008, n.Superclass.Token, "A class can't inherit from itself.")
		} else {
			a.currentClass = subClass
			n.Superclass.Accept(a)
		}
		a.beginScope()
		a.defineReserved(config.SuperName)
		defer a.endScope()
	}

	a.beginScope()
	a.defineReserved(config.ThisName)
	for _, method := range n.Methods {
		kind := methodFunction
		if method.Name.Value == config.InitializerName {
			kind = initializerFunction
		}
		a.checkName(method.Name)
		a.analyzeFunction(method, kind)
	}
	a.endScope()
}

func (a *Analyzer) VisitIdentifier(n *ast.Identifier) {
	if len(a.scopes) == 0 {
		return
	}
	if ready, ok := a.scopes[len(a.scopes)-1][n.Value]; ok && !ready {
		a.errorf(diagnostics.ErrA003, n.Token, "Can't read local variable '%s' in its own initializer.", n.Value)
	}
}

func (a *Analyzer) VisitNumberLiteral(n *ast.NumberLiteral)   {}
func (a *Analyzer) VisitStringLiteral(n *ast.StringLiteral)   {}
func (a *Analyzer) VisitBooleanLiteral(n *ast.BooleanLiteral) {}
func (a *Analyzer) VisitNilLiteral(n *ast.NilLiteral)         {}

func (a *Analyzer) VisitGroupedExpression(n *ast.GroupedExpression) {
	n.Expression.Accept(a)
}

func (a *Analyzer) VisitPrefixExpression(n *ast.PrefixExpression) {
	n.Right.Accept(a)
}

func (a *Analyzer) VisitInfixExpression(n *ast.InfixExpression) {
	n.Left.Accept(a)
	n.Right.Accept(a)
}

func (a *Analyzer) VisitLogicalExpression(n *ast.LogicalExpression) {
	n.Left.Accept(a)
	n.Right.Accept(a)
}

func (a *Analyzer) VisitAssignExpression(n *ast.AssignExpression) {
	n.Value.Accept(a)
}

func (a *Analyzer) VisitCallExpression(n *ast.CallExpression) {
	n.Function.Accept(a)
	for _, arg := range n.Arguments {
		arg.Accept(a)
	}
}

func (a *Analyzer) VisitGetExpression(n *ast.GetExpression) {
	a.checkName(n.Name)
	n.Object.Accept(a)
}

func (a *Analyzer) VisitSetExpression(n *ast.SetExpression) {
	a.checkName(n.Name)
	n.Value.Accept(a)
	n.Object.Accept(a)
}

func (a *Analyzer) VisitThisExpression(n *ast.ThisExpression) {
	if a.currentClass == noClass {
		a.errorf(diagnostics.ErrA004, n.Token, "Can't use 'this' outside of a class.")
	}
}

func (a *Analyzer) VisitSuperExpression(n *ast.SuperExpression) {
	switch a.currentClass {
	case noClass:
		a.errorf(diagnostics.ErrA005, n.Token, "Can't use 'super' outside of a class.")
	case plainClass:
		a.errorf(diagnostics.ErrA006, n.Token, "Can't use 'super' in a class with no superclass.")
	}
	a.checkName(n.Method)
}
