package parser

import (
	"testing"

	"minilang/types"
)

func TestLexerTokens(t *testing.T) {
	input := `int main() { x += 3.5f; y = 2 ** 3; if (a <= b && !c) print("hi\n"); i++; }`

	want := []struct {
		typ   TokenType
		value string
	}{
		{TOKEN_TYPE_INT, "int"},
		{TOKEN_IDENTIFIER, "main"},
		{TOKEN_LPAREN, "("},
		{TOKEN_RPAREN, ")"},
		{TOKEN_LBRACE, "{"},
		{TOKEN_IDENTIFIER, "x"},
		{TOKEN_PLUS_ASSIGN, "+="},
		{TOKEN_FLOAT, "3.5f"},
		{TOKEN_SEMICOLON, ";"},
		{TOKEN_IDENTIFIER, "y"},
		{TOKEN_ASSIGN, "="},
		{TOKEN_INT, "2"},
		{TOKEN_POWER, "**"},
		{TOKEN_INT, "3"},
		{TOKEN_SEMICOLON, ";"},
		{TOKEN_IF, "if"},
		{TOKEN_LPAREN, "("},
		{TOKEN_IDENTIFIER, "a"},
		{TOKEN_LE, "<="},
		{TOKEN_IDENTIFIER, "b"},
		{TOKEN_AND, "&&"},
		{TOKEN_NOT, "!"},
		{TOKEN_IDENTIFIER, "c"},
		{TOKEN_RPAREN, ")"},
		{TOKEN_PRINT, "print"},
		{TOKEN_LPAREN, "("},
		{TOKEN_STRING, `"hi\n"`},
		{TOKEN_RPAREN, ")"},
		{TOKEN_SEMICOLON, ";"},
		{TOKEN_IDENTIFIER, "i"},
		{TOKEN_INCR, "++"},
		{TOKEN_SEMICOLON, ";"},
		{TOKEN_RBRACE, "}"},
		{TOKEN_EOF, ""},
	}

	l := NewLexer(input)
	for i, w := range want {
		tok := l.NextToken()
		if tok.Type != w.typ {
			t.Fatalf("token %d: type = %s, want %s (value %q)", i, tok.Type, w.typ, tok.Value)
		}
		if tok.Value != w.value {
			t.Fatalf("token %d: value = %q, want %q", i, tok.Value, w.value)
		}
	}
}

func TestLexerNumbers(t *testing.T) {
	tests := []struct {
		input string
		typ   TokenType
	}{
		{"42", TOKEN_INT},
		{"3.5", TOKEN_DOUBLE},
		{"3.5d", TOKEN_DOUBLE},
		{"3.5f", TOKEN_FLOAT},
		{"3f", TOKEN_FLOAT},
		{".5", TOKEN_DOUBLE},
		{"1e10", TOKEN_DOUBLE},
		{"1.5E-3", TOKEN_DOUBLE},
		{"12abc", TOKEN_ILLEGAL},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tok := NewLexer(tt.input).NextToken()
			if tok.Type != tt.typ {
				t.Errorf("NextToken(%q) type = %s, want %s", tt.input, tok.Type, tt.typ)
			}
			if tok.Value != tt.input {
				t.Errorf("NextToken(%q) value = %q", tt.input, tok.Value)
			}
		})
	}
}

func TestLexerStrings(t *testing.T) {
	tests := []struct {
		input   string
		literal string
	}{
		{`"hello"`, "hello"},
		{`"a\tb"`, "a\tb"},
		{`"say \"hi\""`, `say "hi"`},
		{`"back\\slash"`, `back\slash`},
		{`""`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tok := NewLexer(tt.input).NextToken()
			if tok.Type != TOKEN_STRING {
				t.Fatalf("type = %s, want STRING", tok.Type)
			}
			if tok.Literal != tt.literal {
				t.Errorf("literal = %q, want %q", tok.Literal, tt.literal)
			}
		})
	}

	if tok := NewLexer(`"open`).NextToken(); tok.Type != TOKEN_ILLEGAL {
		t.Errorf("unterminated string type = %s, want ILLEGAL", tok.Type)
	}
}

func TestLexerCommentsAndPositions(t *testing.T) {
	input := "// header\nint x; /* block\ncomment */ float y;"
	tokens := Lexemes(input)

	if len(tokens) != 6 {
		t.Fatalf("got %d tokens, want 6: %v", len(tokens), tokens)
	}
	if tokens[0].Position.Line != 2 || tokens[0].Position.Column != 1 {
		t.Errorf("int at %s, want 2:1", tokens[0].Position)
	}
	if tokens[3].Type != TOKEN_TYPE_FLOAT || tokens[3].Position.Line != 3 {
		t.Errorf("float token = %v at %s, want TYPE_FLOAT on line 3", tokens[3], tokens[3].Position)
	}
}

func TestLexerIllegalCharacter(t *testing.T) {
	tokens := Lexemes("int x = 3 @ 4;")
	found := false
	for _, tok := range tokens {
		if tok.Type == TOKEN_ILLEGAL && tok.Value == "@" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected ILLEGAL token for '@', got %v", tokens)
	}
}

func TestLexerNulByte(t *testing.T) {
	tokens := Lexemes("\x00int x;")
	if len(tokens) != 4 {
		t.Fatalf("got %d tokens, want 4: %v", len(tokens), tokens)
	}
	if tokens[0].Type != TOKEN_ILLEGAL {
		t.Errorf("first token = %v, want ILLEGAL", tokens[0])
	}
	if tokens[1].Type != TOKEN_TYPE_INT || tokens[1].Position.Column != 2 {
		t.Errorf("second token = %v at %s, want TYPE_INT at 1:2", tokens[1], tokens[1].Position)
	}

	if _, err := Parse("\x00int x;"); err == nil {
		t.Error("Parse succeeded on input starting with NUL")
	}
	if tok := NewLexer("\"a\x00b\"").NextToken(); tok.Type != TOKEN_STRING || tok.Literal != "a\x00b" {
		t.Errorf("string with NUL = %v, want STRING %q", tok, "a\x00b")
	}
}

func TestLexerUnterminatedComment(t *testing.T) {
	tokens := Lexemes("int x; /* open\nstill open")
	if len(tokens) != 4 {
		t.Fatalf("got %d tokens, want 4: %v", len(tokens), tokens)
	}
	last := tokens[3]
	if last.Type != TOKEN_ILLEGAL || last.Position.Line != 1 || last.Position.Column != 8 {
		t.Errorf("last token = %v at %s, want ILLEGAL at 1:8", last, last.Position)
	}

	_, err := Parse("int x; /* open")
	if err == nil {
		t.Fatal("Parse succeeded with an open block comment")
	}
	if !IsIncomplete(err) {
		t.Errorf("IsIncomplete(%v) = false, want true", err)
	}
	if types.KindOf(err) != types.ErrSyntax {
		t.Errorf("kind = %s, want SyntaxError", types.KindOf(err))
	}
}
