package parser

import (
	"strings"
	"testing"
)

func TestUnparseProgram(t *testing.T) {
	src := `int g = 1;
float f(float x, int n) {
  for (int i = 0; i < n; i++) {
    x *= 2.5f;
  }
  if (x > 10.0)
    return x;
  else {
    print("small \"x\"");
  }
  while (n > 0) n--;
  return -x;
}`

	prog, err := Parse(src)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	want := []string{
		"int g = 1;",
		"float f(float x, int n) {",
		"  for (int i = 0; i < n; i++) {",
		"    x *= 2.5f;",
		"  }",
		"  if (x > 10.0)",
		"    return x;",
		"  else {",
		`    print("small \"x\"");`,
		"  }",
		"  while (n > 0)",
		"    n--;",
		"  return -x;",
		"}",
	}

	got := UnparseProgram(prog)
	if strings.Join(got, "\n") != strings.Join(want, "\n") {
		t.Errorf("UnparseProgram() =\n%s\nwant\n%s", strings.Join(got, "\n"), strings.Join(want, "\n"))
	}
}

func TestUnparseRoundTrip(t *testing.T) {
	inputs := []string{
		"int main() { return (1 + 2) * 3; }",
		"void main() { double d = 1.5e20; print(d); }",
		"void main() { for (;;) {} }",
		"string s = \"tab\\there\";",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			first, err := Parse(input)
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			text := strings.Join(UnparseProgram(first), "\n")
			second, err := Parse(text)
			if err != nil {
				t.Fatalf("re-Parse(%q) error = %v", text, err)
			}
			again := strings.Join(UnparseProgram(second), "\n")
			if again != text {
				t.Errorf("round trip changed output:\n%s\n---\n%s", text, again)
			}
		})
	}
}
