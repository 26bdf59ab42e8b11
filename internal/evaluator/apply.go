package evaluator

import (
	"log/slog"

	"github.com/funvibe/golox/internal/config"
)

// ApplyFunction calls fn with already evaluated args. line and column are
// the call site, used for the call frame.
func (e *Evaluator) ApplyFunction(fn Object, args []Object, line, column int) Object {
	callable, ok := fn.(Callable)
	if !ok {
		return newError(NotCallable, "Can only call functions and classes.")
	}
	if err := checkArity(callable.Arity(), len(args)); err != nil {
		return err
	}

	name := callableName(fn)
	if err := e.PushCall(name, line, column); err != nil {
		return err
	}
	defer e.PopCall()
	if e.traceCalls {
		e.logger.Debug("call", slog.String("name", name), slog.Int("depth", len(e.CallStack)))
	}

	switch fn := callable.(type) {
	case *Function:
		return e.callFunction(fn, fn.Env, args, nil)
	case *BoundMethod:
		return e.callFunction(fn.Method, fn.Env, args, fn.Receiver)
	case *Builtin:
		return fn.Fn(e, args...)
	case *Class:
		return e.instantiate(fn, args)
	}
	return newError(NotCallable, "Can only call functions and classes.")
}

func checkArity(arity, got int) *Error {
	if arity < 0 {
		if got == 0 {
			return newError(ArityMismatch, "Expected at least 1 argument but got 0.")
		}
		return nil
	}
	if arity != got {
		return newError(ArityMismatch, "Expected %d arguments but got %d.", arity, got)
	}
	return nil
}

// callFunction runs fn's body in a fresh child of closure holding the
// parameters. Initializers always yield their receiver.
func (e *Evaluator) callFunction(fn *Function, closure *Environment, args []Object, receiver *Instance) Object {
	env := NewEnclosedEnvironment(closure)
	for i, param := range fn.Parameters {
		env.store[param.Value] = args[i]
	}

	result := e.execStatements(fn.Body.Statements, env)
	if isError(result) {
		return result
	}
	if fn.IsInitializer && receiver != nil {
		return receiver
	}
	return unwrapReturnValue(result)
}

// instantiate creates an instance and runs init, if the class chain has
// one. The call yields the instance whatever init returns.
func (e *Evaluator) instantiate(class *Class, args []Object) Object {
	instance := NewInstance(class)
	initializer, defining := class.FindMethod(config.InitializerName)
	if initializer == nil {
		return instance
	}
	bound := bind(initializer, defining, instance)
	if result := e.callFunction(bound.Method, bound.Env, args, instance); isError(result) {
		return result
	}
	return instance
}
