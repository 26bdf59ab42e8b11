package prettyprinter_test

import (
	"testing"

	"github.com/funvibe/golox/internal/parser"
	"github.com/funvibe/golox/internal/prettyprinter"
)

func TestCodePrinter(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{"var_and_print", "var a=1;print a+2*3;", "var a = 1;\nprint a + 2 * 3;\n"},
		{"needed_parens", "print (1+2)*3;", "print (1 + 2) * 3;\n"},
		{"right_operand_parens", "print 1-(2-3);", "print 1 - (2 - 3);\n"},
		{"redundant_parens", "print ((1-2))-3;", "print 1 - 2 - 3;\n"},
		{"chained_assign", "a = b = c;", "a = b = c;\n"},
		{"logical", "print !(a and b) or c;", "print !(a and b) or c;\n"},
		{"number_format", "print 2.50;", "print 2.5;\n"},
		{"string", `print "hi there";`, "print \"hi there\";\n"},
		{"calls", "f(1,2)(3).g;", "f(1, 2)(3).g;\n"},
		{"set_on_group", "(a+b).c = 1;", "(a + b).c = 1;\n"},
		{"function", "fun f(a,b){return a;}", "fun f(a, b) {\n    return a;\n}\n"},
		{"bare_return", "fun f(){return;}", "fun f() {\n    return;\n}\n"},
		{
			"class",
			"class B<A{init(x){this.x=x;} get(){return super.get();}}",
			"class B < A {\n    init(x) {\n        this.x = x;\n    }\n\n    get() {\n        return super.get();\n    }\n}\n",
		},
		{"empty_class", "class A{}", "class A {}\n"},
		{"for", "for(var i=0;i<3;i=i+1)print i;", "for (var i = 0; i < 3; i = i + 1)\n    print i;\n"},
		{"for_empty", "for(;;){}", "for (;;) {}\n"},
		{"while", "while(x<10)x=x+1;", "while (x < 10)\n    x = x + 1;\n"},
		{
			"else_if",
			"if(a)print 1;else if(b){print 2;}else print 3;",
			"if (a)\n    print 1;\nelse if (b) {\n    print 2;\n} else\n    print 3;\n",
		},
		{"nested_block", "{var a;{a=1;}}", "{\n    var a;\n    {\n        a = 1;\n    }\n}\n"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			program, errs := parser.Parse(tc.input)
			if len(errs) > 0 {
				t.Fatalf("parse errors: %v", errs)
			}
			got := prettyprinter.NewCodePrinter().Print(program)
			if got != tc.expected {
				t.Fatalf("expected:\n%s\ngot:\n%s", tc.expected, got)
			}

			// Formatting is idempotent.
			again, errs := parser.Parse(got)
			if len(errs) > 0 {
				t.Fatalf("formatted output does not parse: %v", errs)
			}
			if second := prettyprinter.NewCodePrinter().Print(again); second != got {
				t.Errorf("second pass differs:\n%s\nvs\n%s", second, got)
			}
		})
	}
}

func TestTreePrinter(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{
			"var x = 1 + 2;",
			"Program\n  VarStatement x\n    InfixExpression +\n      NumberLiteral 1\n      NumberLiteral 2\n",
		},
		{
			"if (a) print b;",
			"Program\n  IfStatement\n    cond:\n      Identifier a\n    then:\n      PrintStatement\n        Identifier b\n",
		},
		{
			"o.f(\"s\");",
			"Program\n  ExpressionStatement\n    CallExpression\n      callee:\n        GetExpression .f\n          Identifier o\n      arg:\n        StringLiteral \"s\"\n",
		},
	}

	for _, tc := range testCases {
		program, errs := parser.Parse(tc.input)
		if len(errs) > 0 {
			t.Fatalf("%q: parse errors: %v", tc.input, errs)
		}
		if got := prettyprinter.NewTreePrinter().Print(program); got != tc.expected {
			t.Errorf("%q: expected:\n%s\ngot:\n%s", tc.input, tc.expected, got)
		}
	}
}
