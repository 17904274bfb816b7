package main

import (
	"bytes"
	"testing"

	"minilang/config"
	"minilang/parser"
	"minilang/types"
)

func TestSessionAccumulatesState(t *testing.T) {
	var out bytes.Buffer
	s := newSession(config.Default(), &out)

	steps := []struct {
		input string
		want  string
		kind  types.ErrorKind
	}{
		{input: "int n = 4;"},
		{input: "int sq(int x) {\n  return x * x;\n}"},
		{input: "print(sq(n));", want: "16\n"},
		{input: "n += 1;"},
		{input: "void main() { print(n); }"},
		{input: ":run", want: "5\n"},
		{input: ":globals", want: "Name: n, Type: int, Value: 5\n"},
		{input: "print(m);", kind: types.ErrUndeclaredVariable},
		{input: "int n = 2;", kind: types.ErrDuplicateDeclaration},
		{input: ":reset"},
		{input: "int n = 2;"},
		{input: ":run", kind: types.ErrMissingMain},
	}

	for _, step := range steps {
		out.Reset()
		quit, err := s.handle(step.input)
		if quit {
			t.Fatalf("handle(%q) ended the session", step.input)
		}
		if types.KindOf(err) != step.kind {
			t.Fatalf("handle(%q) error = %v, want kind %s", step.input, err, step.kind)
		}
		if out.String() != step.want {
			t.Errorf("handle(%q) wrote %q, want %q", step.input, out.String(), step.want)
		}
	}
}

func TestSessionCommands(t *testing.T) {
	s := newSession(config.Default(), &bytes.Buffer{})

	if quit, err := s.handle(":quit"); !quit || err != nil {
		t.Errorf(":quit = %v, %v; want true, nil", quit, err)
	}
	if _, err := s.handle(":bogus"); err == nil {
		t.Error(":bogus succeeded, want error")
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		input      string
		program    bool
		statements bool
		incomplete bool
	}{
		{input: "int x = 1;", program: true},
		{input: "void main() { }", program: true},
		{input: "x = 1;", statements: true},
		{input: "print(1);", statements: true},
		{input: "void main() {", incomplete: true},
		{input: "print(1", incomplete: true},
		{input: "int f(int a) {\n  return a;", incomplete: true},
		{input: "/* note", incomplete: true},
		{input: "int = 3;"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			prog, stmts, err := classify(tt.input)
			if (prog != nil) != tt.program {
				t.Errorf("program = %v, want %v", prog != nil, tt.program)
			}
			if (stmts != nil) != tt.statements {
				t.Errorf("statements = %v, want %v", stmts != nil, tt.statements)
			}
			if got := parser.IsIncomplete(err); got != tt.incomplete {
				t.Errorf("incomplete = %v (err %v), want %v", got, err, tt.incomplete)
			}
			if !tt.program && !tt.statements && err == nil {
				t.Error("classify succeeded, want error")
			}
		})
	}
}
