package evaluator

import (
	"github.com/funvibe/golox/internal/ast"
)

// Callable is any value that can appear before a call's parentheses.
// Arity is the exact argument count, or -1 for natives taking one or more.
type Callable interface {
	Object
	Arity() int
}

// Function is a user-defined closure. Env is the environment active where
// it was declared, shared, not copied.
type Function struct {
	Name          string
	Parameters    []*ast.Identifier
	Body          *ast.BlockStatement
	Env           *Environment
	IsInitializer bool
	Line          int // Source location for stack traces
	Column        int
}

func (f *Function) Type() ObjectType { return FUNCTION_OBJ }
func (f *Function) Inspect() string  { return "<fn " + f.Name + ">" }
func (f *Function) Arity() int       { return len(f.Parameters) }

// BoundMethod is a method fetched off an instance. Env is a child of the
// method's closure holding this and, when the defining class has a
// superclass, super.
type BoundMethod struct {
	Method   *Function
	Defining *Class // class whose body declares Method
	Receiver *Instance
	Env      *Environment
}

func (bm *BoundMethod) Type() ObjectType { return BOUND_METHOD_OBJ }
func (bm *BoundMethod) Inspect() string  { return bm.Method.Inspect() }
func (bm *BoundMethod) Arity() int       { return bm.Method.Arity() }

// BuiltinFunction implements a native. Arguments are already checked
// against the declared arity.
type BuiltinFunction func(e *Evaluator, args ...Object) Object

type Builtin struct {
	Fn       BuiltinFunction
	Name     string // Name of the builtin
	ArgCount int    // -1 for one or more
}

func (b *Builtin) Type() ObjectType { return BUILTIN_OBJ }
func (b *Builtin) Inspect() string  { return "<native fn>" }
func (b *Builtin) Arity() int       { return b.ArgCount }

// callableName is the name a call frame shows for fn.
func callableName(fn Object) string {
	switch fn := fn.(type) {
	case *Function:
		return fn.Name
	case *BoundMethod:
		return fn.Defining.Name + "." + fn.Method.Name
	case *Builtin:
		return fn.Name
	case *Class:
		return fn.Name
	}
	return fn.Inspect()
}
