package parser

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"minilang/types"
)

// Operator precedence levels (higher = tighter binding)
const (
	PREC_LOWEST     = iota
	PREC_OR         // ||
	PREC_AND        // &&
	PREC_RELATIONAL // < <= > >= == !=
	PREC_ADDITIVE   // + -
	PREC_MULTIPLY   // * / %
	PREC_UNARY      // - !
	PREC_EXPONENT   // ^ ** (right associative)
	PREC_POSTFIX    // ++ --
)

var binaryPrecedence = map[TokenType]int{
	TOKEN_OR:      PREC_OR,
	TOKEN_AND:     PREC_AND,
	TOKEN_EQ:      PREC_RELATIONAL,
	TOKEN_NE:      PREC_RELATIONAL,
	TOKEN_LT:      PREC_RELATIONAL,
	TOKEN_GT:      PREC_RELATIONAL,
	TOKEN_LE:      PREC_RELATIONAL,
	TOKEN_GE:      PREC_RELATIONAL,
	TOKEN_PLUS:    PREC_ADDITIVE,
	TOKEN_MINUS:   PREC_ADDITIVE,
	TOKEN_STAR:    PREC_MULTIPLY,
	TOKEN_SLASH:   PREC_MULTIPLY,
	TOKEN_PERCENT: PREC_MULTIPLY,
	TOKEN_CARET:   PREC_EXPONENT,
	TOKEN_POWER:   PREC_EXPONENT,
}

// Parser parses minilang source code into an AST
type Parser struct {
	lexer   *Lexer
	current Token
	peek    Token
}

// NewParser creates a new Parser instance
func NewParser(input string) *Parser {
	p := &Parser{
		lexer: NewLexer(input),
	}
	// Read two tokens to initialize current and peek
	p.nextToken()
	p.nextToken()
	return p
}

// Parse is a convenience wrapper for NewParser(input).ParseProgram()
func Parse(input string) (*Program, error) {
	return NewParser(input).ParseProgram()
}

// nextToken advances to the next token
func (p *Parser) nextToken() {
	p.current = p.peek
	p.peek = p.lexer.NextToken()
}

// errorf builds a syntax error at pos
func (p *Parser) errorf(pos Position, format string, args ...any) error {
	return types.NewError(types.ErrSyntax, format, args...).At(pos)
}

// IncompleteError is a syntax error caused by the input ending early.
// Interactive callers read more input and retry.
type IncompleteError struct {
	Err *types.Error
}

func (e *IncompleteError) Error() string { return e.Err.Error() }
func (e *IncompleteError) Unwrap() error { return e.Err }

// IsIncomplete reports whether err means more input could complete the parse
func IsIncomplete(err error) bool {
	var ie *IncompleteError
	return errors.As(err, &ie)
}

// unexpected reports the current token as a syntax error
func (p *Parser) unexpected(want string) error {
	if p.current.Type == TOKEN_EOF {
		err := types.NewError(types.ErrSyntax, "expected %s, got end of input", want).At(p.current.Position)
		return &IncompleteError{Err: err}
	}
	if p.current.Type == TOKEN_ILLEGAL && p.current.Value == unterminatedComment {
		err := types.NewError(types.ErrSyntax, "unterminated comment").At(p.current.Position)
		return &IncompleteError{Err: err}
	}
	if p.current.Type == TOKEN_ILLEGAL {
		return p.errorf(p.current.Position, "illegal token %q", p.current.Value)
	}
	return p.errorf(p.current.Position, "expected %s, got %q", want, p.current.Value)
}

// expect consumes a token of type t or fails
func (p *Parser) expect(t TokenType, want string) (Token, error) {
	tok := p.current
	if tok.Type != t {
		return tok, p.unexpected(want)
	}
	p.nextToken()
	return tok, nil
}

// ParseExpression parses an expression using precedence climbing
func (p *Parser) ParseExpression(prec int) (Expr, error) {
	left, err := p.parsePrefix()
	if err != nil {
		return nil, err
	}

	for {
		opPrec, ok := binaryPrecedence[p.current.Type]
		if !ok || opPrec <= prec {
			break
		}
		op := p.current
		p.nextToken()

		// ^ and ** are right associative
		rightPrec := opPrec
		if opPrec == PREC_EXPONENT {
			rightPrec = opPrec - 1
		}

		right, err := p.ParseExpression(rightPrec)
		if err != nil {
			return nil, err
		}
		left = &BinaryExpr{
			Pos:      op.Position,
			Left:     left,
			Operator: op.Value,
			Right:    right,
		}
	}

	return left, nil
}

// parsePrefix parses a primary expression or a prefix operator application
func (p *Parser) parsePrefix() (Expr, error) {
	tok := p.current

	switch tok.Type {
	case TOKEN_INT:
		val, err := strconv.ParseInt(tok.Value, 10, 32)
		if err != nil {
			return nil, p.errorf(tok.Position, "integer literal %s out of range", tok.Value)
		}
		p.nextToken()
		return &LiteralExpr{Pos: tok.Position, Value: types.NewInt(int32(val))}, nil

	case TOKEN_FLOAT:
		val, err := strconv.ParseFloat(strings.TrimRight(tok.Value, "fF"), 32)
		if err != nil {
			return nil, p.errorf(tok.Position, "invalid float literal %s", tok.Value)
		}
		p.nextToken()
		return &LiteralExpr{Pos: tok.Position, Value: types.NewFloat(float32(val))}, nil

	case TOKEN_DOUBLE:
		val, err := strconv.ParseFloat(strings.TrimRight(tok.Value, "dD"), 64)
		if err != nil {
			return nil, p.errorf(tok.Position, "invalid double literal %s", tok.Value)
		}
		p.nextToken()
		return &LiteralExpr{Pos: tok.Position, Value: types.NewDouble(val)}, nil

	case TOKEN_STRING:
		p.nextToken()
		return &LiteralExpr{Pos: tok.Position, Value: types.NewStr(tok.Literal)}, nil

	case TOKEN_IDENTIFIER:
		p.nextToken()
		switch p.current.Type {
		case TOKEN_LPAREN:
			return p.parseCallArgs(tok)
		case TOKEN_INCR, TOKEN_DECR:
			op := p.current.Value
			p.nextToken()
			return &IncDecExpr{Pos: tok.Position, Name: tok.Value, Operator: op}, nil
		}
		return &IdentifierExpr{Pos: tok.Position, Name: tok.Value}, nil

	case TOKEN_INCR, TOKEN_DECR:
		p.nextToken()
		name, err := p.expect(TOKEN_IDENTIFIER, "variable name after "+tok.Value)
		if err != nil {
			return nil, err
		}
		return &IncDecExpr{Pos: tok.Position, Name: name.Value, Operator: tok.Value, Prefix: true}, nil

	case TOKEN_MINUS, TOKEN_NOT:
		p.nextToken()
		operand, err := p.ParseExpression(PREC_UNARY)
		if err != nil {
			return nil, err
		}
		return &UnaryExpr{Pos: tok.Position, Operator: tok.Value, Operand: operand}, nil

	case TOKEN_LPAREN:
		p.nextToken()
		inner, err := p.ParseExpression(PREC_LOWEST)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(TOKEN_RPAREN, "')'"); err != nil {
			return nil, err
		}
		return &ParenExpr{Pos: tok.Position, Expr: inner}, nil

	case TOKEN_PRINT:
		p.nextToken()
		if _, err := p.expect(TOKEN_LPAREN, "'(' after print"); err != nil {
			return nil, err
		}
		arg, err := p.ParseExpression(PREC_LOWEST)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(TOKEN_RPAREN, "')' after print argument"); err != nil {
			return nil, err
		}
		return &PrintExpr{Pos: tok.Position, Expr: arg}, nil
	}

	return nil, p.unexpected("expression")
}

// parseCallArgs parses the argument list of a call; current is '('
func (p *Parser) parseCallArgs(name Token) (Expr, error) {
	p.nextToken() // consume '('

	call := &CallExpr{Pos: name.Position, Name: name.Value}
	if p.current.Type == TOKEN_RPAREN {
		p.nextToken()
		return call, nil
	}

	for {
		arg, err := p.ParseExpression(PREC_LOWEST)
		if err != nil {
			return nil, err
		}
		call.Args = append(call.Args, arg)

		if p.current.Type == TOKEN_COMMA {
			p.nextToken()
			continue
		}
		if _, err := p.expect(TOKEN_RPAREN, "',' or ')' in argument list"); err != nil {
			return nil, err
		}
		return call, nil
	}
}

// typeName maps a type keyword token to its TypeName
func typeName(t TokenType) (types.TypeName, bool) {
	switch t {
	case TOKEN_TYPE_INT:
		return types.TypeInt, true
	case TOKEN_TYPE_FLOAT:
		return types.TypeFloat, true
	case TOKEN_TYPE_DOUBLE:
		return types.TypeDouble, true
	case TOKEN_TYPE_STRING:
		return types.TypeString, true
	case TOKEN_VOID:
		return types.TypeVoid, true
	}
	return "", false
}

// ParseExpr parses a single standalone expression
func ParseExpr(input string) (Expr, error) {
	p := NewParser(input)
	expr, err := p.ParseExpression(PREC_LOWEST)
	if err != nil {
		return nil, err
	}
	if p.current.Type != TOKEN_EOF {
		return nil, p.unexpected("end of input")
	}
	return expr, nil
}

// String renders a token for diagnostics
func (t Token) String() string {
	return fmt.Sprintf("%s(%q)", t.Type, t.Value)
}
