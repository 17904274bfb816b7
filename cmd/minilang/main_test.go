package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"minilang/config"
	"minilang/types"
)

const sample = `int total = 0;
string label = "sum";

int add(int a, int b) {
  return a + b;
}

void main() {
  for (int i = 1; i <= 3; i++) {
    total = add(total, i);
  }
  print(label);
  print(total);
}
`

func TestRunWritesReports(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "prog.ml")
	if err := os.WriteFile(src, []byte(sample), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := config.Default()
	cfg.Lexemes = filepath.Join(dir, "lexemes.txt")
	cfg.Globals = filepath.Join(dir, "globals.txt")
	cfg.Functions = filepath.Join(dir, "functions.txt")

	var out bytes.Buffer
	if err := run(cfg, src, &out); err != nil {
		t.Fatalf("run error = %v", err)
	}
	if out.String() != "sum\n6\n" {
		t.Errorf("output = %q, want %q", out.String(), "sum\n6\n")
	}

	tests := []struct {
		file string
		want string
	}{
		{"lexemes.txt", "<TYPE_INT, 'int', 1>\n<IDENTIFIER, 'total', 1>\n"},
		// globals are reported after load, before main runs
		{"globals.txt", "Name: total, Type: int, Value: 0\nName: label, Type: string, Value: \"sum\"\n"},
		{"functions.txt", "Function: add\n  Type: iterative\n  Return Type: int\n  Parameters: int a, int b\n"},
	}
	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			data, err := os.ReadFile(filepath.Join(dir, tt.file))
			if err != nil {
				t.Fatal(err)
			}
			if !strings.HasPrefix(string(data), tt.want) {
				t.Errorf("%s =\n%s\nwant prefix\n%s", tt.file, data, tt.want)
			}
		})
	}
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		kind types.ErrorKind
	}{
		{"syntax", "int x = ;", types.ErrSyntax},
		{"no main", "int x = 1;", types.ErrMissingMain},
		{"load", "int x = \"a\";", types.ErrTypeMismatch},
		{"runtime", "void main() { print(y); }", types.ErrUndeclaredVariable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			src := filepath.Join(dir, "prog.ml")
			if err := os.WriteFile(src, []byte(tt.src), 0o644); err != nil {
				t.Fatal(err)
			}
			err := run(config.Default(), src, &bytes.Buffer{})
			if types.KindOf(err) != tt.kind {
				t.Errorf("run error = %v, want kind %s", err, tt.kind)
			}
		})
	}
}

func TestRunFunctionReportAfterFailure(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "prog.ml")
	if err := os.WriteFile(src, []byte("int f() { }\nvoid main() { f(); }"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := config.Default()
	cfg.Functions = filepath.Join(dir, "functions.txt")

	err := run(cfg, src, &bytes.Buffer{})
	if types.KindOf(err) != types.ErrMissingReturn {
		t.Fatalf("run error = %v, want MissingReturn", err)
	}
	data, err := os.ReadFile(cfg.Functions)
	if err != nil {
		t.Fatalf("function report missing: %v", err)
	}
	if !strings.Contains(string(data), "Function: main") {
		t.Errorf("function report = %q", data)
	}
}
