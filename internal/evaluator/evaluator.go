package evaluator

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/funvibe/golox/internal/ast"
	"github.com/funvibe/golox/internal/config"
)

type Evaluator struct {
	// Context for cancellation. Nil means the run cannot be interrupted.
	Context context.Context

	Out io.Writer
	// Global environment, pre-populated with the natives
	GlobalEnv *Environment
	// CallStack for stack traces on errors
	CallStack []CallFrame
	// CurrentFile being evaluated
	CurrentFile string
	// MaxCallDepth bounds CallStack; zero means unbounded.
	MaxCallDepth int

	logger     *slog.Logger
	traceCalls bool
}

func New() *Evaluator {
	e := &Evaluator{
		Out:          os.Stdout,
		GlobalEnv:    NewEnvironment(),
		CallStack:    make([]CallFrame, 0),
		MaxCallDepth: config.DefaultMaxCallDepth,
	}
	e.SetLogger(slog.Default())
	RegisterBuiltins(e.GlobalEnv)
	return e
}

// SetLogger sets the logger used for call tracing. Calls are logged only
// when it has debug level enabled.
func (e *Evaluator) SetLogger(l *slog.Logger) {
	e.logger = l
	e.traceCalls = l.Enabled(context.Background(), slog.LevelDebug)
}

// Run executes program in the global environment and returns the value of
// the last statement, or the runtime error that stopped it.
func (e *Evaluator) Run(program *ast.Program) Object {
	e.CallStack = e.CallStack[:0]
	return e.Eval(program, e.GlobalEnv)
}

func (e *Evaluator) Eval(node ast.Node, env *Environment) Object {
	// Check for cancellation
	if e.Context != nil {
		select {
		case <-e.Context.Done():
			return newError(InternalError, "execution cancelled: %v", e.Context.Err())
		default:
		}
	}

	obj := e.evalCore(node, env)
	if err, ok := obj.(*Error); ok {
		if err.Line == 0 && node != nil {
			if provider, ok := node.(ast.TokenProvider); ok {
				tok := provider.GetToken()
				err.Line = tok.Line
				err.Column = tok.Column
			}
		}
		e.captureStack(err)
	}
	return obj
}

func (e *Evaluator) evalCore(node ast.Node, env *Environment) Object {
	switch node := node.(type) {
	// Statements
	case *ast.Program:
		return e.evalProgram(node, env)
	case *ast.ExpressionStatement:
		return e.Eval(node.Expression, env)
	case *ast.PrintStatement:
		return e.evalPrintStatement(node, env)
	case *ast.VarStatement:
		return e.evalVarStatement(node, env)
	case *ast.BlockStatement:
		return e.evalBlockStatement(node, env)
	case *ast.IfStatement:
		return e.evalIfStatement(node, env)
	case *ast.WhileStatement:
		return e.evalWhileStatement(node, env)
	case *ast.ForStatement:
		return e.Eval(node.Desugared(), env)
	case *ast.FunctionStatement:
		return e.evalFunctionStatement(node, env)
	case *ast.ReturnStatement:
		return e.evalReturnStatement(node, env)
	case *ast.ClassStatement:
		return e.evalClassStatement(node, env)

	// Expressions
	case *ast.NumberLiteral:
		return &Number{Value: node.Value}
	case *ast.StringLiteral:
		return &String{Value: node.Value}
	case *ast.BooleanLiteral:
		return nativeBoolToBooleanObject(node.Value)
	case *ast.NilLiteral:
		return NIL
	case *ast.GroupedExpression:
		return e.Eval(node.Expression, env)
	case *ast.Identifier:
		return e.evalIdentifier(node, env)
	case *ast.PrefixExpression:
		right := e.Eval(node.Right, env)
		if isError(right) {
			return right
		}
		return ApplyPrefix(node.Operator, right)
	case *ast.InfixExpression:
		return e.evalInfixExpression(node, env)
	case *ast.LogicalExpression:
		return e.evalLogicalExpression(node, env)
	case *ast.AssignExpression:
		return e.evalAssignExpression(node, env)
	case *ast.CallExpression:
		return e.evalCallExpression(node, env)
	case *ast.GetExpression:
		return e.evalGetExpression(node, env)
	case *ast.SetExpression:
		return e.evalSetExpression(node, env)
	case *ast.ThisExpression:
		return e.evalThisExpression(node, env)
	case *ast.SuperExpression:
		return e.evalSuperExpression(node, env)
	}
	return newError(InternalError, "unknown node type: %T", node)
}
