package evaluator

import (
	"github.com/funvibe/golox/internal/ast"
	"github.com/funvibe/golox/internal/config"
)

func (e *Evaluator) evalIdentifier(node *ast.Identifier, env *Environment) Object {
	if val, ok := env.Get(node.Value); ok {
		return val
	}
	return newError(UndefinedVariable, "Undefined variable '%s'.", node.Value)
}

// evalInfixExpression evaluates the left operand fully before the right.
func (e *Evaluator) evalInfixExpression(node *ast.InfixExpression, env *Environment) Object {
	left := e.Eval(node.Left, env)
	if isError(left) {
		return left
	}
	right := e.Eval(node.Right, env)
	if isError(right) {
		return right
	}
	return ApplyInfix(node.Operator, left, right)
}

// evalLogicalExpression short-circuits and yields an operand, not a boolean.
func (e *Evaluator) evalLogicalExpression(node *ast.LogicalExpression, env *Environment) Object {
	left := e.Eval(node.Left, env)
	if isError(left) {
		return left
	}
	switch node.Operator {
	case "or":
		if IsTruthy(left) {
			return left
		}
	case "and":
		if !IsTruthy(left) {
			return left
		}
	default:
		return newError(InternalError, "unknown logical operator: %s", node.Operator)
	}
	return e.Eval(node.Right, env)
}

func (e *Evaluator) evalAssignExpression(node *ast.AssignExpression, env *Environment) Object {
	value := e.Eval(node.Value, env)
	if isError(value) {
		return value
	}
	if !env.Assign(node.Name.Value, value) {
		return newError(UndefinedVariable, "Undefined variable '%s'.", node.Name.Value)
	}
	return value
}

func (e *Evaluator) evalCallExpression(node *ast.CallExpression, env *Environment) Object {
	callee := e.Eval(node.Function, env)
	if isError(callee) {
		return callee
	}

	args := make([]Object, 0, len(node.Arguments))
	for _, a := range node.Arguments {
		arg := e.Eval(a, env)
		if isError(arg) {
			return arg
		}
		args = append(args, arg)
	}

	return e.ApplyFunction(callee, args, node.Token.Line, node.Token.Column)
}

func (e *Evaluator) evalGetExpression(node *ast.GetExpression, env *Environment) Object {
	object := e.Eval(node.Object, env)
	if isError(object) {
		return object
	}
	instance, ok := object.(*Instance)
	if !ok {
		return newError(NoFields, "Only instances have properties.")
	}
	value, kind := instance.Get(node.Name.Value)
	if kind == PropertyNotFound {
		return newError(UndefinedProperty, "Undefined property '%s'.", node.Name.Value)
	}
	return value
}

func (e *Evaluator) evalSetExpression(node *ast.SetExpression, env *Environment) Object {
	object := e.Eval(node.Object, env)
	if isError(object) {
		return object
	}
	value := e.Eval(node.Value, env)
	if isError(value) {
		return value
	}
	instance, ok := object.(*Instance)
	if !ok {
		return newError(NoFields, "Only instances have fields.")
	}
	instance.Set(node.Name.Value, value)
	return value
}

func (e *Evaluator) evalThisExpression(node *ast.ThisExpression, env *Environment) Object {
	if this, ok := env.Get(config.ThisName); ok {
		return this
	}
	return newError(InternalError, "'this' used outside of a method")
}

func (e *Evaluator) evalSuperExpression(node *ast.SuperExpression, env *Environment) Object {
	value, ok := env.Get(config.SuperName)
	if !ok {
		return newError(InternalError, "'super' used outside of a subclass method")
	}
	proxy, ok := value.(*SuperProxy)
	if !ok {
		return newError(InternalError, "'super' is bound to %s", value.Inspect())
	}
	method := proxy.Get(node.Method.Value)
	if method == nil {
		return newError(UndefinedProperty, "Undefined property '%s'.", node.Method.Value)
	}
	return method
}
