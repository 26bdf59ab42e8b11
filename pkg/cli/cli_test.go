package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/funvibe/golox/internal/config"
)

func runMain(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := Main(args, strings.NewReader(stdin), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func writeScript(t *testing.T, name, source string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(source), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunFile(t *testing.T) {
	path := writeScript(t, "hello.lox", `var greeting = "hello"; print greeting + " world";`)

	for _, args := range [][]string{{path}, {"run", path}} {
		code, stdout, stderr := runMain(t, "", args...)
		if code != ExitOK || stderr != "" {
			t.Fatalf("%v: exit %d, stderr %q", args, code, stderr)
		}
		if stdout != "hello world\n" {
			t.Errorf("%v: unexpected output %q", args, stdout)
		}
	}
}

func TestRunFileErrors(t *testing.T) {
	path := writeScript(t, "bad.lox", "print 1;\nprint nope;\n")
	code, stdout, stderr := runMain(t, "", path)
	if code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
	if stdout != "1\n" {
		t.Errorf("unexpected output %q", stdout)
	}
	want := path + ":2:7: [R002] Undefined variable 'nope'.\n"
	if stderr != want {
		t.Errorf("stderr = %q, want %q", stderr, want)
	}

	path = writeScript(t, "static.lox", "print 1;\n{ var a = 1; var a = 2; }\n")
	code, stdout, stderr = runMain(t, "", path)
	if code != ExitError || stdout != "" {
		t.Fatalf("static errors must stop the run: exit %d, stdout %q", code, stdout)
	}
	if !strings.Contains(stderr, "[A002] Already a variable named 'a' in this scope.") {
		t.Errorf("unexpected stderr %q", stderr)
	}
}

func TestEvalFlag(t *testing.T) {
	code, stdout, _ := runMain(t, "", "-e", "print 6 * 7;")
	if code != ExitOK || stdout != "42\n" {
		t.Errorf("exit %d, stdout %q", code, stdout)
	}

	code, _, _ = runMain(t, "", "-e", "print 1;", "extra")
	if code != ExitUsage {
		t.Errorf("expected usage error, got %d", code)
	}
}

func TestStdinProgram(t *testing.T) {
	code, stdout, stderr := runMain(t, "print \"from stdin\";\n")
	if code != ExitOK || stdout != "from stdin\n" {
		t.Errorf("exit %d, stdout %q, stderr %q", code, stdout, stderr)
	}
}

func TestCheck(t *testing.T) {
	good := writeScript(t, "good.lox", "fun f(a) { return a; }")
	code, stdout, _ := runMain(t, "", "check", good)
	if code != ExitOK || stdout != good+": ok\n" {
		t.Errorf("exit %d, stdout %q", code, stdout)
	}

	bad := writeScript(t, "bad.lox", "return 1;")
	code, _, stderr := runMain(t, "", "check", bad)
	if code != ExitError || !strings.Contains(stderr, "[A007]") {
		t.Errorf("exit %d, stderr %q", code, stderr)
	}
}

func TestFmtAndAst(t *testing.T) {
	path := writeScript(t, "messy.lox", "var  a=1;print a+2;")
	code, stdout, _ := runMain(t, "", "fmt", path)
	if code != ExitOK || stdout != "var a = 1;\nprint a + 2;\n" {
		t.Errorf("fmt: exit %d, stdout %q", code, stdout)
	}

	code, stdout, _ = runMain(t, "", "ast", path)
	if code != ExitOK || !strings.Contains(stdout, "VarStatement a") {
		t.Errorf("ast: exit %d, stdout %q", code, stdout)
	}

	broken := writeScript(t, "broken.lox", "print ;")
	code, _, stderr := runMain(t, "", "fmt", broken)
	if code != ExitError || !strings.Contains(stderr, "[P002]") {
		t.Errorf("fmt on broken input: exit %d, stderr %q", code, stderr)
	}
}

func TestUsage(t *testing.T) {
	tests := []struct {
		args []string
		code int
	}{
		{[]string{"version"}, ExitOK},
		{[]string{"help"}, ExitOK},
		{[]string{"-h"}, ExitOK},
		{[]string{"-nope"}, ExitUsage},
		{[]string{"frobnicate"}, ExitUsage},
		{[]string{"run"}, ExitUsage},
		{[]string{"check", "a.lox", "b.lox"}, ExitUsage},
		{[]string{"repl", "extra"}, ExitUsage},
	}
	for _, tt := range tests {
		if code, _, _ := runMain(t, "", tt.args...); code != tt.code {
			t.Errorf("%v: exit %d, want %d", tt.args, code, tt.code)
		}
	}

	_, stdout, _ := runMain(t, "", "version")
	if stdout != "lox "+config.Version+"\n" {
		t.Errorf("unexpected version output %q", stdout)
	}
}

func TestMissingFile(t *testing.T) {
	code, _, stderr := runMain(t, "", "run", filepath.Join(t.TempDir(), "missing.lox"))
	if code != ExitError || !strings.Contains(stderr, "reading input") {
		t.Errorf("exit %d, stderr %q", code, stderr)
	}
}

func TestTraceFlag(t *testing.T) {
	code, _, stderr := runMain(t, "", "-trace", "-e", "fun f() {} f();")
	if code != ExitOK {
		t.Fatalf("exit %d", code)
	}
	for _, want := range []string{"pipeline stage done", "msg=call", "name=f", "run done"} {
		if !strings.Contains(stderr, want) {
			t.Errorf("expected %q in trace output:\n%s", want, stderr)
		}
	}
}

func newTestSession(t *testing.T) (*session, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	r := &runner{stdin: strings.NewReader(""), stdout: &stdout, stderr: &stderr}
	if err := r.setup(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	return r.newSession(), &stdout, &stderr
}

func TestSessionEcho(t *testing.T) {
	s, stdout, stderr := newTestSession(t)

	s.eval("var a = 1;")
	s.eval("a + 1;")
	s.eval(`"a" + "b";`)
	s.eval("print a;")
	s.eval("nope;")

	if got, want := stdout.String(), "2\n\"ab\"\n1\n"; got != want {
		t.Errorf("stdout = %q, want %q", got, want)
	}
	if !strings.Contains(stderr.String(), "Undefined variable 'nope'.") {
		t.Errorf("unexpected stderr %q", stderr.String())
	}

	// Globals survive errors and may be redeclared.
	stdout.Reset()
	s.eval("var a = \"again\";")
	s.eval("a;")
	if got := stdout.String(); got != "\"again\"\n" {
		t.Errorf("unexpected output %q", got)
	}
}

func TestSessionCommands(t *testing.T) {
	s, stdout, _ := newTestSession(t)
	s.eval("var answer = 42;")

	if s.command(":env") {
		t.Fatal(":env must not exit")
	}
	if !strings.Contains(stdout.String(), "    answer = 42\n") {
		t.Errorf("unexpected :env output %q", stdout.String())
	}
	if s.command(":help") || !strings.Contains(stdout.String(), ":quit") {
		t.Error("expected help text")
	}
	if s.command(":bogus") || !strings.Contains(stdout.String(), "unknown command :bogus") {
		t.Error("expected an unknown command message")
	}
	if !s.command(":quit") {
		t.Error(":quit must exit")
	}
}

type scriptedPrompter struct {
	lines   []string
	prompts []string
}

func (p *scriptedPrompter) Prompt(prompt string) (string, error) {
	p.prompts = append(p.prompts, prompt)
	if len(p.lines) == 0 {
		return "", io.EOF
	}
	line := p.lines[0]
	p.lines = p.lines[1:]
	return line, nil
}

func TestReadByParseProbe(t *testing.T) {
	p := &scriptedPrompter{lines: []string{"fun f() {", "  return 1;", "}", "print 1;", ":env"}}

	code, ok := readByParseProbe(p, "> ", "... ")
	if !ok || code != "fun f() {\n  return 1;\n}" {
		t.Fatalf("unexpected block input %q", code)
	}
	if strings.Join(p.prompts, "|") != "> |... |... " {
		t.Errorf("unexpected prompts %q", p.prompts)
	}

	if code, ok = readByParseProbe(p, "> ", "... "); !ok || code != "print 1;" {
		t.Errorf("unexpected input %q", code)
	}
	if code, ok = readByParseProbe(p, "> ", "... "); !ok || code != ":env" {
		t.Errorf("unexpected command %q", code)
	}
	if _, ok = readByParseProbe(p, "> ", "... "); ok {
		t.Error("expected end of input")
	}
}

func TestBlankLineEndsContinuation(t *testing.T) {
	p := &scriptedPrompter{lines: []string{"print 1", ""}}
	code, ok := readByParseProbe(p, "> ", "... ")
	if !ok || code != "print 1\n" {
		t.Errorf("unexpected input %q", code)
	}
}
