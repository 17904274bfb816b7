package parser

import "minilang/types"

// TokenType represents different types of lexical tokens
type TokenType int

const (
	// Special tokens
	TOKEN_EOF TokenType = iota
	TOKEN_ILLEGAL

	// Literals
	TOKEN_INT    // 42
	TOKEN_FLOAT  // 3.14f
	TOKEN_DOUBLE // 3.14 or 3.14d
	TOKEN_STRING // "hello"

	// Identifiers
	TOKEN_IDENTIFIER

	// Type keywords
	TOKEN_TYPE_INT    // int
	TOKEN_TYPE_FLOAT  // float
	TOKEN_TYPE_DOUBLE // double
	TOKEN_TYPE_STRING // string
	TOKEN_VOID        // void

	// Keywords
	TOKEN_IF
	TOKEN_ELSE
	TOKEN_WHILE
	TOKEN_FOR
	TOKEN_RETURN
	TOKEN_PRINT

	// Operators
	TOKEN_PLUS    // +
	TOKEN_MINUS   // -
	TOKEN_STAR    // *
	TOKEN_SLASH   // /
	TOKEN_PERCENT // %
	TOKEN_CARET   // ^
	TOKEN_POWER   // **
	TOKEN_INCR    // ++
	TOKEN_DECR    // --

	TOKEN_EQ // ==
	TOKEN_NE // !=
	TOKEN_LT // <
	TOKEN_GT // >
	TOKEN_LE // <=
	TOKEN_GE // >=

	TOKEN_AND // &&
	TOKEN_OR  // ||
	TOKEN_NOT // !

	TOKEN_ASSIGN         // =
	TOKEN_PLUS_ASSIGN    // +=
	TOKEN_MINUS_ASSIGN   // -=
	TOKEN_STAR_ASSIGN    // *=
	TOKEN_SLASH_ASSIGN   // /=
	TOKEN_PERCENT_ASSIGN // %=

	// Delimiters
	TOKEN_LPAREN    // (
	TOKEN_RPAREN    // )
	TOKEN_LBRACE    // {
	TOKEN_RBRACE    // }
	TOKEN_COMMA     // ,
	TOKEN_SEMICOLON // ;
)

// Position represents a position in the source code
type Position = types.Position

// Token represents a lexical token
type Token struct {
	Type     TokenType
	Value    string // Source text of the token
	Literal  string // Decoded string value (for TOKEN_STRING)
	Position Position
}

var tokenNames = map[TokenType]string{
	TOKEN_EOF:            "EOF",
	TOKEN_ILLEGAL:        "ILLEGAL",
	TOKEN_INT:            "INT",
	TOKEN_FLOAT:          "FLOAT",
	TOKEN_DOUBLE:         "DOUBLE",
	TOKEN_STRING:         "STRING",
	TOKEN_IDENTIFIER:     "IDENTIFIER",
	TOKEN_TYPE_INT:       "TYPE_INT",
	TOKEN_TYPE_FLOAT:     "TYPE_FLOAT",
	TOKEN_TYPE_DOUBLE:    "TYPE_DOUBLE",
	TOKEN_TYPE_STRING:    "TYPE_STRING",
	TOKEN_VOID:           "VOID",
	TOKEN_IF:             "IF",
	TOKEN_ELSE:           "ELSE",
	TOKEN_WHILE:          "WHILE",
	TOKEN_FOR:            "FOR",
	TOKEN_RETURN:         "RETURN",
	TOKEN_PRINT:          "PRINT",
	TOKEN_PLUS:           "PLUS",
	TOKEN_MINUS:          "MINUS",
	TOKEN_STAR:           "STAR",
	TOKEN_SLASH:          "SLASH",
	TOKEN_PERCENT:        "PERCENT",
	TOKEN_CARET:          "CARET",
	TOKEN_POWER:          "POWER",
	TOKEN_INCR:           "INCR",
	TOKEN_DECR:           "DECR",
	TOKEN_EQ:             "EQ",
	TOKEN_NE:             "NE",
	TOKEN_LT:             "LT",
	TOKEN_GT:             "GT",
	TOKEN_LE:             "LE",
	TOKEN_GE:             "GE",
	TOKEN_AND:            "AND",
	TOKEN_OR:             "OR",
	TOKEN_NOT:            "NOT",
	TOKEN_ASSIGN:         "ASSIGN",
	TOKEN_PLUS_ASSIGN:    "PLUS_ASSIGN",
	TOKEN_MINUS_ASSIGN:   "MINUS_ASSIGN",
	TOKEN_STAR_ASSIGN:    "STAR_ASSIGN",
	TOKEN_SLASH_ASSIGN:   "SLASH_ASSIGN",
	TOKEN_PERCENT_ASSIGN: "PERCENT_ASSIGN",
	TOKEN_LPAREN:         "LPAREN",
	TOKEN_RPAREN:         "RPAREN",
	TOKEN_LBRACE:         "LBRACE",
	TOKEN_RBRACE:         "RBRACE",
	TOKEN_COMMA:          "COMMA",
	TOKEN_SEMICOLON:      "SEMICOLON",
}

// String returns a string representation of the token type
func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return "UNKNOWN"
}

// Keywords maps keyword strings to their token types
var keywords = map[string]TokenType{
	"int":    TOKEN_TYPE_INT,
	"float":  TOKEN_TYPE_FLOAT,
	"double": TOKEN_TYPE_DOUBLE,
	"string": TOKEN_TYPE_STRING,
	"void":   TOKEN_VOID,
	"if":     TOKEN_IF,
	"else":   TOKEN_ELSE,
	"while":  TOKEN_WHILE,
	"for":    TOKEN_FOR,
	"return": TOKEN_RETURN,
	"print":  TOKEN_PRINT,
}

// LookupKeyword checks if an identifier is a keyword
func LookupKeyword(ident string) TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return TOKEN_IDENTIFIER
}

// IsTypeKeyword reports whether t names a variable type (not void)
func (t TokenType) IsTypeKeyword() bool {
	switch t {
	case TOKEN_TYPE_INT, TOKEN_TYPE_FLOAT, TOKEN_TYPE_DOUBLE, TOKEN_TYPE_STRING:
		return true
	}
	return false
}

// IsAssignOp reports whether t is = or a compound assignment operator
func (t TokenType) IsAssignOp() bool {
	switch t {
	case TOKEN_ASSIGN, TOKEN_PLUS_ASSIGN, TOKEN_MINUS_ASSIGN,
		TOKEN_STAR_ASSIGN, TOKEN_SLASH_ASSIGN, TOKEN_PERCENT_ASSIGN:
		return true
	}
	return false
}
