package evaluator_test

import (
	"errors"
	"testing"
	"testing/quick"

	"github.com/go-test/deep"

	"github.com/funvibe/golox/internal/evaluator"
)

func TestEnvironmentLookupAndAssign(t *testing.T) {
	global := evaluator.NewEnvironment()
	outer := evaluator.NewEnclosedEnvironment(global)
	inner := evaluator.NewEnclosedEnvironment(outer)

	mustDefine(t, global, "a", num(1))
	mustDefine(t, outer, "a", num(2))

	if got, _ := inner.Get("a"); got.Inspect() != "2" {
		t.Fatalf("expected innermost binding 2, got %s", got.Inspect())
	}

	if !inner.Assign("a", num(3)) {
		t.Fatal("expected assignment to find a")
	}
	if got, _ := outer.Get("a"); got.Inspect() != "3" {
		t.Errorf("expected outer a = 3, got %s", got.Inspect())
	}
	if got, _ := global.Get("a"); got.Inspect() != "1" {
		t.Errorf("expected global a untouched, got %s", got.Inspect())
	}

	// A child created after the assignment sees it as well.
	if got, _ := evaluator.NewEnclosedEnvironment(inner).Get("a"); got.Inspect() != "3" {
		t.Errorf("expected 3 from a new descendant, got %s", got.Inspect())
	}
}

func TestAssignNeverCreates(t *testing.T) {
	env := evaluator.NewEnclosedEnvironment(evaluator.NewEnvironment())
	if env.Assign("missing", num(1)) {
		t.Fatal("expected assignment to an unbound name to fail")
	}
	if _, ok := env.Get("missing"); ok {
		t.Fatal("assignment must not create a binding")
	}
}

func TestRedeclaration(t *testing.T) {
	global := evaluator.NewEnvironment()
	mustDefine(t, global, "x", num(1))
	mustDefine(t, global, "x", num(2))
	if got, _ := global.Get("x"); got.Inspect() != "2" {
		t.Errorf("expected global redeclaration to rebind, got %s", got.Inspect())
	}

	local := evaluator.NewEnclosedEnvironment(global)
	mustDefine(t, local, "x", num(3))
	err := local.Define("x", num(4))
	if !errors.Is(err, evaluator.ErrAlreadyDeclared) {
		t.Fatalf("expected ErrAlreadyDeclared, got %v", err)
	}
	if got, _ := local.Get("x"); got.Inspect() != "3" {
		t.Errorf("failed redeclaration must keep the old value, got %s", got.Inspect())
	}
}

func TestEnvironmentIntrospection(t *testing.T) {
	global := evaluator.NewEnvironment()
	mustDefine(t, global, "b", str("two"))
	mustDefine(t, global, "a", num(1))
	local := evaluator.NewEnclosedEnvironment(global)
	mustDefine(t, local, "c", evaluator.NIL)

	if diff := deep.Equal(global.Names(), []string{"a", "b"}); diff != nil {
		t.Error(diff)
	}
	if local.Depth() != 2 || local.IsGlobal() || !global.IsGlobal() || local.Outer() != global {
		t.Errorf("unexpected chain shape: depth=%d", local.Depth())
	}

	want := "[0] local\n" +
		"    c = nil\n" +
		"[1] global\n" +
		"    a = 1\n" +
		"    b = \"two\"\n"
	if got := local.Pretty(); got != want {
		t.Errorf("Pretty:\n%s\nwant:\n%s", got, want)
	}
}

func TestEnvironmentProperties(t *testing.T) {
	defineThenGet := func(name string, v float64) bool {
		env := evaluator.NewEnclosedEnvironment(evaluator.NewEnvironment())
		if err := env.Define(name, num(v)); err != nil {
			return false
		}
		got, ok := env.Get(name)
		return ok && got.(*evaluator.Number).Value == v
	}
	shadowing := func(name string, a, b float64) bool {
		outer := evaluator.NewEnclosedEnvironment(evaluator.NewEnvironment())
		inner := evaluator.NewEnclosedEnvironment(outer)
		_ = outer.Define(name, num(a))
		_ = inner.Define(name, num(b))
		fromInner, _ := inner.Get(name)
		fromOuter, _ := outer.Get(name)
		return fromInner.(*evaluator.Number).Value == b && fromOuter.(*evaluator.Number).Value == a
	}

	if err := quick.Check(defineThenGet, nil); err != nil {
		t.Error(err)
	}
	if err := quick.Check(shadowing, nil); err != nil {
		t.Error(err)
	}
}

func mustDefine(t *testing.T, env *evaluator.Environment, name string, val evaluator.Object) {
	t.Helper()
	if err := env.Define(name, val); err != nil {
		t.Fatalf("Define(%s): %v", name, err)
	}
}
