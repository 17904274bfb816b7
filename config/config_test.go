package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"minilang/types"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Config
		wantErr bool
	}{
		{
			name:  "empty document keeps defaults",
			input: "",
			want:  Default(),
		},
		{
			name: "all fields",
			input: `
lexemes: out/lexemes.txt
globals: out/globals.txt
functions: out/functions.txt
trace: true
trace_filter: ["fib*", "main"]
max_depth: 50
history: /tmp/hist
`,
			want: Config{
				Lexemes:     "out/lexemes.txt",
				Globals:     "out/globals.txt",
				Functions:   "out/functions.txt",
				Trace:       true,
				TraceFilter: []string{"fib*", "main"},
				MaxDepth:    50,
				History:     "/tmp/hist",
			},
		},
		{
			name:  "partial file overrides only named keys",
			input: "trace: true\n",
			want: Config{
				Trace:    true,
				MaxDepth: types.DefaultMaxDepth,
				History:  ".minilang_history",
			},
		},
		{name: "unknown key", input: "tracing: true\n", wantErr: true},
		{name: "negative depth", input: "max_depth: -1\n", wantErr: true},
		{name: "blank filter", input: "trace_filter: [\"\"]\n", wantErr: true},
		{name: "wrong type", input: "max_depth: deep\n", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse([]byte(tt.input))
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Parse() = %+v, want error", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Parse() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "minilang.yaml")
	if err := os.WriteFile(path, []byte("globals: g.txt\nmax_depth: 10\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Globals != "g.txt" || cfg.MaxDepth != 10 {
		t.Errorf("Load() = %+v", cfg)
	}

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Load(missing) error = %v, want fs.ErrNotExist", err)
	}
}

func TestSplitFilters(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"", nil},
		{"fib", []string{"fib"}},
		{"fib*, main ,", []string{"fib*", "main"}},
		{" , ", nil},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := SplitFilters(tt.input); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitFilters(%q) = %#v, want %#v", tt.input, got, tt.want)
			}
		})
	}
}
