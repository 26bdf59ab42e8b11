package evaluator_test

import (
	"math"
	"testing"
	"testing/quick"

	"github.com/funvibe/golox/internal/evaluator"
)

func num(v float64) *evaluator.Number   { return &evaluator.Number{Value: v} }
func str(v string) *evaluator.String    { return &evaluator.String{Value: v} }
func boolean(v bool) *evaluator.Boolean { return &evaluator.Boolean{Value: v} }

func expectKind(t *testing.T, obj evaluator.Object, kind evaluator.ErrorKind) {
	t.Helper()
	err, ok := obj.(*evaluator.Error)
	if !ok {
		t.Fatalf("expected %s error, got %s", kind, obj.Inspect())
	}
	if err.Kind != kind {
		t.Fatalf("expected %s error, got %s (%s)", kind, err.Kind, err.Message)
	}
}

func TestEquality(t *testing.T) {
	tests := []struct {
		name        string
		left, right evaluator.Object
		expected    bool
	}{
		{"number vs string", num(1), str("1"), false},
		{"nil vs false", evaluator.NIL, evaluator.FALSE, false},
		{"true vs true", evaluator.TRUE, evaluator.TRUE, true},
		{"distinct booleans", boolean(true), boolean(true), true},
		{"integral floats", num(0), num(0.0), true},
		{"strings", str("ab"), str("ab"), true},
		{"different strings", str("ab"), str("ba"), false},
		{"nil vs nil", evaluator.NIL, &evaluator.Nil{}, true},
		{"zero vs false", num(0), evaluator.FALSE, false},
		{"empty string vs nil", str(""), evaluator.NIL, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := evaluator.Equal(tt.left, tt.right).(*evaluator.Boolean).Value
			if got != tt.expected {
				t.Errorf("Equal = %v, want %v", got, tt.expected)
			}
			if neg := evaluator.NotEqual(tt.left, tt.right).(*evaluator.Boolean).Value; neg == got {
				t.Errorf("NotEqual = %v, expected the opposite of Equal", neg)
			}
		})
	}
}

func TestNaNIsNotEqualToItself(t *testing.T) {
	v := num(math.NaN())
	if evaluator.Equal(v, v) != evaluator.FALSE {
		t.Error("expected nan != nan")
	}
	if got := v.Inspect(); got != "nan" {
		t.Errorf("expected nan, got %s", got)
	}
}

func TestAdd(t *testing.T) {
	if got := evaluator.Add(str("a"), str("b")); got.Inspect() != "ab" {
		t.Errorf("expected ab, got %s", got.Inspect())
	}
	if got := evaluator.Add(num(1), num(2)); got.Inspect() != "3" {
		t.Errorf("expected 3, got %s", got.Inspect())
	}
	expectKind(t, evaluator.Add(num(1), str("a")), evaluator.TypeMismatch)
	expectKind(t, evaluator.Add(evaluator.TRUE, num(1)), evaluator.TypeMismatch)
	expectKind(t, evaluator.Add(evaluator.NIL, evaluator.NIL), evaluator.TypeMismatch)
}

func TestArithmeticRejectsNonNumbers(t *testing.T) {
	binary := map[string]func(l, r evaluator.Object) evaluator.Object{
		"-":  evaluator.Subtract,
		"*":  evaluator.Multiply,
		"/":  evaluator.Divide,
		">":  evaluator.Greater,
		">=": evaluator.GreaterEqual,
		"<":  evaluator.Less,
		"<=": evaluator.LessEqual,
	}
	operands := []evaluator.Object{evaluator.TRUE, evaluator.FALSE, evaluator.NIL, str("1")}

	for name, fn := range binary {
		for _, bad := range operands {
			expectKind(t, fn(num(1), bad), evaluator.TypeMismatch)
			expectKind(t, fn(bad, num(1)), evaluator.TypeMismatch)
		}
		if msg := fn(evaluator.TRUE, num(1)).(*evaluator.Error).Message; msg != "Operands must be numbers." {
			t.Errorf("%s: unexpected message %q", name, msg)
		}
	}

	neg := evaluator.Negate(evaluator.TRUE)
	expectKind(t, neg, evaluator.TypeMismatch)
	if msg := neg.(*evaluator.Error).Message; msg != "Operand must be a number." {
		t.Errorf("unexpected message %q", msg)
	}
}

func TestDivisionByZero(t *testing.T) {
	expectKind(t, evaluator.Divide(num(1), num(0)), evaluator.DivisionByZero)
	expectKind(t, evaluator.Divide(num(-1), num(0)), evaluator.DivisionByZero)
	expectKind(t, evaluator.ApplyInfix("/", num(0), num(0)), evaluator.DivisionByZero)
}

func TestTruthiness(t *testing.T) {
	falsey := []evaluator.Object{evaluator.NIL, evaluator.FALSE}
	truthy := []evaluator.Object{evaluator.TRUE, num(0), str(""), str("false")}
	for _, v := range falsey {
		if evaluator.IsTruthy(v) {
			t.Errorf("%s should be falsey", v.Inspect())
		}
		if evaluator.Not(v) != evaluator.TRUE {
			t.Errorf("!%s should be true", v.Inspect())
		}
	}
	for _, v := range truthy {
		if !evaluator.IsTruthy(v) {
			t.Errorf("%q should be truthy", v.Inspect())
		}
	}
}

func TestApplyUnknownOperator(t *testing.T) {
	expectKind(t, evaluator.ApplyInfix("%", num(1), num(2)), evaluator.InternalError)
	expectKind(t, evaluator.ApplyPrefix("+", num(1)), evaluator.InternalError)
}

func TestOperatorProperties(t *testing.T) {
	addCommutes := func(a, b float64) bool {
		return evaluator.Equal(evaluator.Add(num(a), num(b)), evaluator.Add(num(b), num(a))) == evaluator.TRUE
	}
	equalReflexive := func(a float64, s string) bool {
		return evaluator.Equal(num(a), num(a)) == evaluator.TRUE &&
			evaluator.Equal(str(s), str(s)) == evaluator.TRUE
	}
	crossKindUnequal := func(a float64, s string, b bool) bool {
		return evaluator.Equal(num(a), str(s)) == evaluator.FALSE &&
			evaluator.Equal(boolean(b), num(a)) == evaluator.FALSE &&
			evaluator.Equal(evaluator.NIL, boolean(b)) == evaluator.FALSE
	}
	concatLength := func(a, b string) bool {
		return evaluator.Add(str(a), str(b)).(*evaluator.String).Value == a+b
	}
	numbersAreTruthy := func(a float64) bool {
		return evaluator.IsTruthy(num(a))
	}
	ordering := func(a, b float64) bool {
		less := evaluator.Less(num(a), num(b)) == evaluator.TRUE
		greaterEq := evaluator.GreaterEqual(num(a), num(b)) == evaluator.TRUE
		return less != greaterEq
	}
	negateTwice := func(a float64) bool {
		return evaluator.Negate(evaluator.Negate(num(a))).(*evaluator.Number).Value == a
	}

	for name, prop := range map[string]interface{}{
		"add commutes":       addCommutes,
		"equal reflexive":    equalReflexive,
		"cross kind unequal": crossKindUnequal,
		"concat":             concatLength,
		"numbers truthy":     numbersAreTruthy,
		"ordering total":     ordering,
		"negate twice":       negateTwice,
	} {
		if err := quick.Check(prop, nil); err != nil {
			t.Errorf("%s: %v", name, err)
		}
	}
}
