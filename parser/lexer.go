package parser

import (
	"unicode"
)

// Lexer tokenizes source code
type Lexer struct {
	input        string
	position     int  // current position in input (points to current char)
	readPosition int  // current reading position in input (after current char)
	ch           byte // current char under examination
	line         int  // line of ch
	column       int  // column of ch

	openComment *Position // start of a block comment that reached end of input
}

// NewLexer creates a new Lexer instance
func NewLexer(input string) *Lexer {
	l := &Lexer{
		input: input,
		line:  1,
	}
	l.readChar()
	return l
}

// readChar reads the next character and advances position
func (l *Lexer) readChar() {
	if l.ch == '\n' {
		l.line++
		l.column = 0
	}
	if l.readPosition >= len(l.input) {
		l.ch = 0 // ASCII NUL
	} else {
		l.ch = l.input[l.readPosition]
	}
	l.position = l.readPosition
	l.readPosition++
	l.column++
}

// peekChar returns the next character without advancing
func (l *Lexer) peekChar() byte {
	if l.readPosition >= len(l.input) {
		return 0
	}
	return l.input[l.readPosition]
}

// atEOF reports whether the whole input has been consumed. A NUL byte
// inside the input is not the end.
func (l *Lexer) atEOF() bool {
	return l.position >= len(l.input)
}

// skipWhitespace skips whitespace and comments
func (l *Lexer) skipWhitespace() {
	for {
		switch {
		case l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r':
			l.readChar()
		case l.ch == '/' && l.peekChar() == '/':
			for l.ch != '\n' && !l.atEOF() {
				l.readChar()
			}
		case l.ch == '/' && l.peekChar() == '*':
			start := Position{Line: l.line, Column: l.column}
			l.readChar()
			l.readChar()
			for !l.atEOF() && !(l.ch == '*' && l.peekChar() == '/') {
				l.readChar()
			}
			if l.atEOF() {
				l.openComment = &start
				return
			}
			l.readChar()
			l.readChar()
		default:
			return
		}
	}
}

// unterminatedComment is the text of the ILLEGAL token for a block
// comment that is still open at end of input
const unterminatedComment = "/*"

// NextToken returns the next token from the input
func (l *Lexer) NextToken() Token {
	l.skipWhitespace()

	pos := Position{Line: l.line, Column: l.column}

	if l.openComment != nil {
		start := *l.openComment
		l.openComment = nil
		return Token{Type: TOKEN_ILLEGAL, Value: unterminatedComment, Position: start}
	}

	switch {
	case l.atEOF():
		return Token{Type: TOKEN_EOF, Position: pos}
	case l.ch == 0:
		l.readChar()
		return Token{Type: TOKEN_ILLEGAL, Value: "\x00", Position: pos}
	case l.ch == '"':
		return l.readString()
	case isDigit(l.ch) || (l.ch == '.' && isDigit(l.peekChar())):
		return l.readNumber()
	case isLetter(l.ch):
		start := l.position
		for isLetter(l.ch) || isDigit(l.ch) {
			l.readChar()
		}
		ident := l.input[start:l.position]
		return Token{Type: LookupKeyword(ident), Value: ident, Position: pos}
	}

	tok := l.readOperator()
	tok.Position = pos
	return tok
}

// operators lists the multi-character operators first so that the
// longest match wins
var operators = []struct {
	text string
	typ  TokenType
}{
	{"**", TOKEN_POWER},
	{"++", TOKEN_INCR},
	{"--", TOKEN_DECR},
	{"+=", TOKEN_PLUS_ASSIGN},
	{"-=", TOKEN_MINUS_ASSIGN},
	{"*=", TOKEN_STAR_ASSIGN},
	{"/=", TOKEN_SLASH_ASSIGN},
	{"%=", TOKEN_PERCENT_ASSIGN},
	{"==", TOKEN_EQ},
	{"!=", TOKEN_NE},
	{"<=", TOKEN_LE},
	{">=", TOKEN_GE},
	{"&&", TOKEN_AND},
	{"||", TOKEN_OR},
	{"+", TOKEN_PLUS},
	{"-", TOKEN_MINUS},
	{"*", TOKEN_STAR},
	{"/", TOKEN_SLASH},
	{"%", TOKEN_PERCENT},
	{"^", TOKEN_CARET},
	{"<", TOKEN_LT},
	{">", TOKEN_GT},
	{"!", TOKEN_NOT},
	{"=", TOKEN_ASSIGN},
	{"(", TOKEN_LPAREN},
	{")", TOKEN_RPAREN},
	{"{", TOKEN_LBRACE},
	{"}", TOKEN_RBRACE},
	{",", TOKEN_COMMA},
	{";", TOKEN_SEMICOLON},
}

// readOperator reads an operator or delimiter token
func (l *Lexer) readOperator() Token {
	rest := l.input[l.position:]
	for _, op := range operators {
		if len(rest) >= len(op.text) && rest[:len(op.text)] == op.text {
			for range op.text {
				l.readChar()
			}
			return Token{Type: op.typ, Value: op.text}
		}
	}
	tok := Token{Type: TOKEN_ILLEGAL, Value: string(l.ch)}
	l.readChar()
	return tok
}

// readNumber reads an integer, float (f suffix) or double (d suffix or bare fraction)
func (l *Lexer) readNumber() Token {
	pos := Position{Line: l.line, Column: l.column}
	start := l.position
	isFraction := false

	for isDigit(l.ch) {
		l.readChar()
	}
	if l.ch == '.' && isDigit(l.peekChar()) {
		isFraction = true
		l.readChar() // consume '.'
		for isDigit(l.ch) {
			l.readChar()
		}
	}
	if (l.ch == 'e' || l.ch == 'E') && isExponentStart(l.input[l.readPosition:]) {
		isFraction = true
		l.readChar() // consume 'e'
		if l.ch == '+' || l.ch == '-' {
			l.readChar()
		}
		for isDigit(l.ch) {
			l.readChar()
		}
	}

	tok := Token{Type: TOKEN_INT, Position: pos}
	switch {
	case l.ch == 'f' || l.ch == 'F':
		tok.Type = TOKEN_FLOAT
		l.readChar()
	case l.ch == 'd' || l.ch == 'D':
		tok.Type = TOKEN_DOUBLE
		l.readChar()
	case isFraction:
		tok.Type = TOKEN_DOUBLE
	}
	tok.Value = l.input[start:l.position]

	// 12abc is one bad token, not a number followed by an identifier
	if isLetter(l.ch) {
		for isLetter(l.ch) || isDigit(l.ch) {
			l.readChar()
		}
		tok.Type = TOKEN_ILLEGAL
		tok.Value = l.input[start:l.position]
	}
	return tok
}

// isExponentStart reports whether s (the text after an 'e') continues an exponent
func isExponentStart(s string) bool {
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		s = s[1:]
	}
	return len(s) > 0 && isDigit(s[0])
}

// isLetter returns true if the character is a letter or underscore
func isLetter(ch byte) bool {
	return unicode.IsLetter(rune(ch)) || ch == '_'
}

// isDigit returns true if the character is a digit
func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

// Lexemes tokenizes the whole input, EOF excluded
func Lexemes(input string) []Token {
	l := NewLexer(input)
	var tokens []Token
	for {
		tok := l.NextToken()
		if tok.Type == TOKEN_EOF {
			return tokens
		}
		tokens = append(tokens, tok)
	}
}
