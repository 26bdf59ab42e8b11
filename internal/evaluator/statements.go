package evaluator

import (
	"errors"
	"fmt"

	"github.com/funvibe/golox/internal/ast"
	"github.com/funvibe/golox/internal/config"
)

func (e *Evaluator) evalProgram(program *ast.Program, env *Environment) Object {
	var result Object = NIL
	for _, statement := range program.Statements {
		result = e.Eval(statement, env)
		switch result := result.(type) {
		case *Error:
			return result
		case *ReturnValue:
			return newError(InternalError, "return outside of a function")
		}
	}
	return result
}

// execStatements runs statements in env and stops at the first return
// signal or error, handing it back to the caller.
func (e *Evaluator) execStatements(statements []ast.Statement, env *Environment) Object {
	for _, statement := range statements {
		result := e.Eval(statement, env)
		if result != nil {
			rt := result.Type()
			if rt == RETURN_VALUE_OBJ || rt == ERROR_OBJ {
				return result
			}
		}
	}
	return NIL
}

func (e *Evaluator) evalBlockStatement(block *ast.BlockStatement, env *Environment) Object {
	return e.execStatements(block.Statements, NewEnclosedEnvironment(env))
}

func (e *Evaluator) evalPrintStatement(node *ast.PrintStatement, env *Environment) Object {
	value := e.Eval(node.Value, env)
	if isError(value) {
		return value
	}
	if _, err := fmt.Fprintln(e.Out, value.Inspect()); err != nil {
		return newError(InternalError, "writing output: %v", err)
	}
	return NIL
}

// define binds name in env. A repeated local declaration is rejected
// before evaluation, so hitting it here means the tree was not validated.
func (e *Evaluator) define(env *Environment, name string, value Object) Object {
	if err := env.Define(name, value); err != nil {
		if errors.Is(err, ErrAlreadyDeclared) {
			return newError(InternalError, "Already a variable named '%s' in this scope.", name)
		}
		return newError(InternalError, "%v", err)
	}
	return nil
}

func (e *Evaluator) evalVarStatement(node *ast.VarStatement, env *Environment) Object {
	var value Object = NIL
	if node.Value != nil {
		value = e.Eval(node.Value, env)
		if isError(value) {
			return value
		}
	}
	if err := e.define(env, node.Name.Value, value); err != nil {
		return err
	}
	return NIL
}

func (e *Evaluator) evalIfStatement(node *ast.IfStatement, env *Environment) Object {
	condition := e.Eval(node.Condition, env)
	if isError(condition) {
		return condition
	}
	if IsTruthy(condition) {
		return e.Eval(node.Consequence, env)
	}
	if node.Alternative != nil {
		return e.Eval(node.Alternative, env)
	}
	return NIL
}

func (e *Evaluator) evalWhileStatement(node *ast.WhileStatement, env *Environment) Object {
	for {
		condition := e.Eval(node.Condition, env)
		if isError(condition) {
			return condition
		}
		if !IsTruthy(condition) {
			return NIL
		}
		result := e.Eval(node.Body, env)
		if result != nil {
			rt := result.Type()
			if rt == RETURN_VALUE_OBJ || rt == ERROR_OBJ {
				return result
			}
		}
	}
}

func newFunction(node *ast.FunctionStatement, env *Environment) *Function {
	return &Function{
		Name:       node.Name.Value,
		Parameters: node.Parameters,
		Body:       node.Body,
		Env:        env, // Closure
		Line:       node.Token.Line,
		Column:     node.Token.Column,
	}
}

// evalFunctionStatement binds the closure under its own name and also
// yields it as the statement's value.
func (e *Evaluator) evalFunctionStatement(node *ast.FunctionStatement, env *Environment) Object {
	fn := newFunction(node, env)
	if err := e.define(env, fn.Name, fn); err != nil {
		return err
	}
	return fn
}

func (e *Evaluator) evalReturnStatement(node *ast.ReturnStatement, env *Environment) Object {
	var value Object = NIL
	if node.Value != nil {
		value = e.Eval(node.Value, env)
		if isError(value) {
			return value
		}
	}
	return &ReturnValue{Value: value}
}

// evalClassStatement builds the class. Methods close over the declaring
// environment; this and super are added when a method is bound.
func (e *Evaluator) evalClassStatement(node *ast.ClassStatement, env *Environment) Object {
	var superclass *Class
	if node.Superclass != nil {
		value := e.Eval(node.Superclass, env)
		if isError(value) {
			return value
		}
		class, ok := value.(*Class)
		if !ok {
			err := newError(TypeMismatch, "Superclass must be a class.")
			err.Line, err.Column = node.Superclass.Token.Line, node.Superclass.Token.Column
			return err
		}
		superclass = class
	}

	methods := make(map[string]*Function, len(node.Methods))
	for _, m := range node.Methods {
		fn := newFunction(m, env)
		fn.IsInitializer = fn.Name == config.InitializerName
		methods[fn.Name] = fn
	}

	class := &Class{Name: node.Name.Value, Methods: methods, Superclass: superclass}
	if err := e.define(env, class.Name, class); err != nil {
		return err
	}
	return class
}
