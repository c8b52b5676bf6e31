package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/peterh/liner"
)

func TestReadEvalPrint(t *testing.T) {
	in, _ := newTestInterpreter()
	env := in.NewGlobalEnv()

	tests := []struct {
		input  string
		output string
	}{
		{"(+ 1 2)", "3"},
		{"(def :x 5)", "()"},
		{"x", "5"},
		{"(list x :k \"s\")", "'(5 :k \"s\")"},
		{"(error \"bad\")", "Error: bad"},
		{"y", "Error: Unbound symbol 'y'"},
		{"", "()"},
	}
	for _, tt := range tests {
		_, output := ReadEvalPrint(in, env, tt.input)
		if output != tt.output {
			t.Errorf("\nExpr: %s\nExpected: %s\nActual: %s\n", tt.input, tt.output, output)
		}
	}

	val, output := ReadEvalPrint(in, env, "(+ 1")
	if !isError(val) || !strings.HasPrefix(output, "Error: <stdin>:") {
		t.Errorf("Expected parse error, got %s", output)
	}
}

func TestRunFile(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.idl")
	writeFile(t, good, `(print "hello") (def :x 1)`)
	bad := filepath.Join(dir, "bad.idl")
	writeFile(t, bad, `(print "before") (error "bad") (print "after")`)

	in, out := newTestInterpreter()
	var w bytes.Buffer
	if code := RunFile(in, in.NewGlobalEnv(), good, &w); code != 0 {
		t.Errorf("Expected exit code 0, got %d", code)
	}
	if out.String() != "\"hello\" \n" || w.Len() != 0 {
		t.Errorf("Unexpected output %q %q", out.String(), w.String())
	}

	in, out = newTestInterpreter()
	w.Reset()
	if code := RunFile(in, in.NewGlobalEnv(), bad, &w); code != 1 {
		t.Errorf("Expected exit code 1, got %d", code)
	}
	if out.String() != "\"before\" \n" {
		t.Errorf("Unexpected output %q", out.String())
	}
	if w.String() != "Error: bad\n" {
		t.Errorf("Unexpected error output %q", w.String())
	}

	w.Reset()
	if code := RunFile(in, in.NewGlobalEnv(), filepath.Join(dir, "missing.idl"), &w); code != 1 {
		t.Errorf("Expected exit code 1, got %d", code)
	}
	if !strings.HasPrefix(w.String(), "Error: Could not load module") {
		t.Errorf("Unexpected error output %q", w.String())
	}
}

func TestRun(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	prog := filepath.Join(home, "prog.idl")
	writeFile(t, prog, `
		(defn :fact '(n) '(if (<= n 1) '(1) '(* n (fact (- n 1)))))
		(print (fact 5))`)

	var stdout, stderr bytes.Buffer
	if code := run([]string{"-f", prog}, &stdout, &stderr); code != 0 {
		t.Fatalf("Expected exit code 0, got %d: %s", code, stderr.String())
	}
	if stdout.String() != "120 \n" {
		t.Errorf("Unexpected output %q", stdout.String())
	}

	failing := filepath.Join(home, "failing.idl")
	writeFile(t, failing, `(head '())`)
	stdout.Reset()
	if code := run([]string{"-f", failing}, &stdout, &stderr); code != 1 {
		t.Errorf("Expected exit code 1, got %d", code)
	}
	if stdout.String() != "Error: Function 'head' passed '() for argument 0.\n" {
		t.Errorf("Unexpected output %q", stdout.String())
	}
}

func TestRunPrelude(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	writeFile(t, filepath.Join(home, "std.idl"), `(defn :inc '(x) '(+ x 1))`)
	config := filepath.Join(home, "config.yaml")
	writeFile(t, config, "prelude:\n  - std.idl\nmax_depth: 100\n")
	prog := filepath.Join(home, "prog.idl")
	writeFile(t, prog, `(print (inc 41))`)

	var stdout, stderr bytes.Buffer
	if code := run([]string{"-config", config, "-f", prog}, &stdout, &stderr); code != 0 {
		t.Fatalf("Expected exit code 0, got %d: %s", code, stderr.String())
	}
	if stdout.String() != "42 \n" {
		t.Errorf("Unexpected output %q", stdout.String())
	}
}

func TestRunBadArguments(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	var stdout, stderr bytes.Buffer
	if code := run([]string{"-nope"}, &stdout, &stderr); code != 2 {
		t.Errorf("Expected exit code 2, got %d", code)
	}
	if code := run([]string{"-config", filepath.Join(home, "missing.yaml")}, &stdout, &stderr); code != 1 {
		t.Errorf("Expected exit code 1, got %d", code)
	}
}

func TestOnExit(t *testing.T) {
	var steps []string
	in, _ := newTestInterpreter(WithExit(func(code int) {
		steps = append(steps, "exit")
	}))
	env := in.NewGlobalEnv()

	restore := onExit(in, func() { steps = append(steps, "cleanup") })
	if _, err := readEval("(exit ())", in, env); err != nil {
		t.Fatal(err)
	}
	shouldEqualStrings(t, steps, []string{"cleanup", "exit"})

	restore()
	steps = nil
	if _, err := readEval("(exit ())", in, env); err != nil {
		t.Fatal(err)
	}
	shouldEqualStrings(t, steps, []string{"exit"})
}

func TestOnExitSavesHistory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history")
	ln := liner.NewLiner()
	defer ln.Close()
	ln.AppendHistory("(+ 1 2)")

	code := -1
	in, _ := newTestInterpreter(WithExit(func(c int) { code = c }))
	defer onExit(in, func() { saveHistory(ln, path) })()

	if _, err := readEval("(exit ())", in, in.NewGlobalEnv()); err != nil {
		t.Fatal(err)
	}
	if code != 0 {
		t.Errorf("Expected exit code 0, got %d", code)
	}
	history, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(history), "(+ 1 2)") {
		t.Errorf("Expected saved history, got %q", history)
	}
}

func TestPrintResultSharesOutput(t *testing.T) {
	in, out := newTestInterpreter()
	env := in.NewGlobalEnv()

	printResult(in, env, `(print "hi")`)
	printResult(in, env, "(+ 1 2)")
	printResult(in, env, "(+ 1")

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("Unexpected output %q", out.String())
	}
	shouldEqualStrings(t, lines[:3], []string{`"hi" `, "()", "3"})
	if !strings.HasPrefix(lines[3], "Error: <stdin>:") {
		t.Errorf("Expected parse error, got %q", lines[3])
	}
}
