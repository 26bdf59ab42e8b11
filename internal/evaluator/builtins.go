package evaluator

import (
	"math"
	"time"

	"github.com/funvibe/golox/internal/config"
)

// Builtins are the natives every global environment starts with.
var Builtins = map[string]*Builtin{
	config.ClockFuncName: {
		Name:     config.ClockFuncName,
		ArgCount: 0,
		Fn: func(e *Evaluator, args ...Object) Object {
			return &Number{Value: float64(time.Now().UnixNano()) / float64(time.Second)}
		},
	},
	config.SqrtFuncName: {
		Name:     config.SqrtFuncName,
		ArgCount: 1,
		Fn: func(e *Evaluator, args ...Object) Object {
			n, ok := args[0].(*Number)
			if !ok {
				return newError(TypeMismatch, msgNumberOperand)
			}
			return &Number{Value: math.Sqrt(n.Value)}
		},
	},
	config.MaxFuncName: {
		Name:     config.MaxFuncName,
		ArgCount: -1,
		Fn: func(e *Evaluator, args ...Object) Object {
			var best *Number
			for _, arg := range args {
				n, ok := arg.(*Number)
				if !ok {
					return newError(TypeMismatch, msgNumberOperands)
				}
				if best == nil || n.Value > best.Value {
					best = n
				}
			}
			return best
		},
	},
}

// RegisterBuiltins defines the natives in env. Scripts may redefine them,
// since globals can be redeclared.
func RegisterBuiltins(env *Environment) {
	for name, builtin := range Builtins {
		env.store[name] = builtin
	}
}
