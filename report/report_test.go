package report

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"minilang/eval"
	"minilang/parser"
)

const sample = `int count = 3;
double ratio = 0.5;
string name = "mini";

int fact(int n) {
  if (n <= 1)
    return 1;
  else
    return n * fact(n - 1);
}

double mean(int a, int b) {
  double sum = a + b;
  for (int i = 0; i < 1; i++) {
    while (sum > 100) {
      sum -= 100;
    }
  }
  return sum / 2;
}

void main() {
  print(fact(count));
}
`

func load(t *testing.T) *eval.Evaluator {
	t.Helper()
	ev := eval.New(eval.WithOutput(io.Discard))
	if err := ev.LoadSource(sample); err != nil {
		t.Fatalf("LoadSource error = %v", err)
	}
	return ev
}

func TestWriteGlobals(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteGlobals(&buf, load(t)); err != nil {
		t.Fatalf("WriteGlobals error = %v", err)
	}

	want := `Name: count, Type: int, Value: 3
Name: ratio, Type: double, Value: 0.5
Name: name, Type: string, Value: "mini"
`
	if buf.String() != want {
		t.Errorf("WriteGlobals =\n%s\nwant\n%s", buf.String(), want)
	}
}

func TestWriteFunctions(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteFunctions(&buf, load(t)); err != nil {
		t.Fatalf("WriteFunctions error = %v", err)
	}

	want := `Function: fact
  Type: recursive
  Return Type: int
  Parameters: int n
  Local variables:
  Control Structures:
    <if, 6>
    <else, 8>

Function: mean
  Type: iterative
  Return Type: double
  Parameters: int a, int b
  Local variables:
    double sum
    int i
  Control Structures:
    <for, 14>
    <while, 15>

Function: main
  Type: main
  Return Type: void
  Parameters: 
  Local variables:
  Control Structures:

`
	if buf.String() != want {
		t.Errorf("WriteFunctions =\n%s\nwant\n%s", buf.String(), want)
	}
}

func TestDescribeNestedStructuresInSourceOrder(t *testing.T) {
	ev := eval.New(eval.WithOutput(io.Discard))
	err := ev.LoadSource(`void walk(int n) {
  if (n > 0) {
    while (n > 0) { n--; }
  } else {
    for (;;) { return; }
  }
  if (n == 0) print(n);
}`)
	if err != nil {
		t.Fatalf("LoadSource error = %v", err)
	}

	info := Describe(ev.Functions()[0])
	var got []string
	for _, s := range info.Structures {
		got = append(got, s.Keyword)
	}
	if strings.Join(got, " ") != "if while else for if" {
		t.Errorf("structures = %v", got)
	}
	if info.Kind != KindIterative {
		t.Errorf("kind = %s, want iterative", info.Kind)
	}
}

func TestWriteLexemes(t *testing.T) {
	var buf bytes.Buffer
	tokens := parser.Lexemes("int x = 5;\nprint(\"hi\");")
	if err := WriteLexemes(&buf, tokens); err != nil {
		t.Fatalf("WriteLexemes error = %v", err)
	}

	want := `<TYPE_INT, 'int', 1>
<IDENTIFIER, 'x', 1>
<ASSIGN, '=', 1>
<INT, '5', 1>
<SEMICOLON, ';', 1>
<PRINT, 'print', 2>
<LPAREN, '(', 2>
<STRING, '"hi"', 2>
<RPAREN, ')', 2>
<SEMICOLON, ';', 2>
`
	if buf.String() != want {
		t.Errorf("WriteLexemes =\n%s\nwant\n%s", buf.String(), want)
	}
}
