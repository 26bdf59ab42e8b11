package evaluator

// The operator library. Every function is pure: it returns a value or an
// *Error and touches nothing else. Booleans are never numbers here.

const (
	msgNumberOperands = "Operands must be numbers."
	msgAddOperands    = "Operands must be two numbers or two strings."
	msgNumberOperand  = "Operand must be a number."
	msgDivisionByZero = "Division by zero."
)

func numberOperands(left, right Object) (float64, float64, bool) {
	l, ok := left.(*Number)
	if !ok {
		return 0, 0, false
	}
	r, ok := right.(*Number)
	if !ok {
		return 0, 0, false
	}
	return l.Value, r.Value, true
}

func Add(left, right Object) Object {
	if l, r, ok := numberOperands(left, right); ok {
		return &Number{Value: l + r}
	}
	if l, ok := left.(*String); ok {
		if r, ok := right.(*String); ok {
			return &String{Value: l.Value + r.Value}
		}
	}
	return newError(TypeMismatch, msgAddOperands)
}

func Subtract(left, right Object) Object {
	l, r, ok := numberOperands(left, right)
	if !ok {
		return newError(TypeMismatch, msgNumberOperands)
	}
	return &Number{Value: l - r}
}

func Multiply(left, right Object) Object {
	l, r, ok := numberOperands(left, right)
	if !ok {
		return newError(TypeMismatch, msgNumberOperands)
	}
	return &Number{Value: l * r}
}

// Divide fails on a zero divisor whatever the sign of the dividend.
func Divide(left, right Object) Object {
	l, r, ok := numberOperands(left, right)
	if !ok {
		return newError(TypeMismatch, msgNumberOperands)
	}
	if r == 0 {
		return newError(DivisionByZero, msgDivisionByZero)
	}
	return &Number{Value: l / r}
}

func Negate(operand Object) Object {
	n, ok := operand.(*Number)
	if !ok {
		return newError(TypeMismatch, msgNumberOperand)
	}
	return &Number{Value: -n.Value}
}

func Not(operand Object) Object {
	return nativeBoolToBooleanObject(!IsTruthy(operand))
}

func compare(left, right Object, cmp func(l, r float64) bool) Object {
	l, r, ok := numberOperands(left, right)
	if !ok {
		return newError(TypeMismatch, msgNumberOperands)
	}
	return nativeBoolToBooleanObject(cmp(l, r))
}

func Greater(left, right Object) Object {
	return compare(left, right, func(l, r float64) bool { return l > r })
}

func GreaterEqual(left, right Object) Object {
	return compare(left, right, func(l, r float64) bool { return l >= r })
}

func Less(left, right Object) Object {
	return compare(left, right, func(l, r float64) bool { return l < r })
}

func LessEqual(left, right Object) Object {
	return compare(left, right, func(l, r float64) bool { return l <= r })
}

// Equal never fails. Values of different kinds are unequal; numbers follow
// float64 equality, so nan != nan. Callables, classes and instances are
// equal only to themselves.
func Equal(left, right Object) Object {
	return nativeBoolToBooleanObject(valuesEqual(left, right))
}

func NotEqual(left, right Object) Object {
	return nativeBoolToBooleanObject(!valuesEqual(left, right))
}

func valuesEqual(left, right Object) bool {
	switch l := left.(type) {
	case *Number:
		r, ok := right.(*Number)
		return ok && l.Value == r.Value
	case *String:
		r, ok := right.(*String)
		return ok && l.Value == r.Value
	case *Boolean:
		r, ok := right.(*Boolean)
		return ok && l.Value == r.Value
	case *Nil:
		_, ok := right.(*Nil)
		return ok
	}
	return left == right
}

// IsTruthy: only nil and false are falsey.
func IsTruthy(obj Object) bool {
	switch obj := obj.(type) {
	case *Nil:
		return false
	case *Boolean:
		return obj.Value
	}
	return true
}

var infixOperators = map[string]func(left, right Object) Object{
	"+":  Add,
	"-":  Subtract,
	"*":  Multiply,
	"/":  Divide,
	">":  Greater,
	">=": GreaterEqual,
	"<":  Less,
	"<=": LessEqual,
	"==": Equal,
	"!=": NotEqual,
}

// ApplyInfix dispatches a binary operator by its source spelling.
func ApplyInfix(operator string, left, right Object) Object {
	fn, ok := infixOperators[operator]
	if !ok {
		return newError(InternalError, "unknown operator: %s", operator)
	}
	return fn(left, right)
}

// ApplyPrefix dispatches a unary operator by its source spelling.
func ApplyPrefix(operator string, operand Object) Object {
	switch operator {
	case "-":
		return Negate(operand)
	case "!":
		return Not(operand)
	}
	return newError(InternalError, "unknown operator: %s", operator)
}
