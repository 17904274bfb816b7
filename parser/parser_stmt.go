package parser

import "minilang/types"

// ParseProgram parses a complete source file: global declarations and
// function declarations
func (p *Parser) ParseProgram() (*Program, error) {
	prog := &Program{Pos: p.current.Position}

	for p.current.Type != TOKEN_EOF {
		line, err := p.parseGlobalLine()
		if err != nil {
			return nil, err
		}
		prog.Lines = append(prog.Lines, line)
	}

	return prog, nil
}

// ParseStatements parses a sequence of statements, as found in a
// function body, up to the end of input
func ParseStatements(input string) ([]Stmt, error) {
	p := NewParser(input)
	var stmts []Stmt
	for p.current.Type != TOKEN_EOF {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	return stmts, nil
}

// parseGlobalLine parses `type name [= expr];` or a function declaration
func (p *Parser) parseGlobalLine() (Stmt, error) {
	if _, ok := typeName(p.current.Type); !ok {
		return nil, p.unexpected("declaration or function")
	}
	if p.peek.Type != TOKEN_IDENTIFIER {
		p.nextToken()
		return nil, p.unexpected("name")
	}

	typeTok := p.current
	p.nextToken()
	if p.peek.Type == TOKEN_LPAREN {
		return p.parseFunctionDecl(typeTok)
	}

	decl, err := p.parseDeclarationAfterType(typeTok)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(TOKEN_SEMICOLON, "';' after declaration"); err != nil {
		return nil, err
	}
	return decl, nil
}

// parseFunctionDecl parses a function after its return type; current is the name
func (p *Parser) parseFunctionDecl(typeTok Token) (Stmt, error) {
	ret, _ := typeName(typeTok.Type)
	fn := &FuncDecl{
		Pos:        typeTok.Position,
		ReturnType: ret,
		Name:       p.current.Value,
	}
	p.nextToken() // consume name
	p.nextToken() // consume '('

	if p.current.Type != TOKEN_RPAREN {
		for {
			t, ok := typeName(p.current.Type)
			if !ok || t == types.TypeVoid {
				return nil, p.unexpected("parameter type")
			}
			pos := p.current.Position
			p.nextToken()
			name, err := p.expect(TOKEN_IDENTIFIER, "parameter name")
			if err != nil {
				return nil, err
			}
			fn.Params = append(fn.Params, Param{Pos: pos, Type: t, Name: name.Value})

			if p.current.Type != TOKEN_COMMA {
				break
			}
			p.nextToken()
		}
	}
	if _, err := p.expect(TOKEN_RPAREN, "')' after parameters"); err != nil {
		return nil, err
	}

	block, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	fn.Body = block.Body
	fn.EndPos = block.EndPos
	return fn, nil
}

// parseDeclarationAfterType parses `name [= expr]`; current is the name
func (p *Parser) parseDeclarationAfterType(typeTok Token) (*DeclStmt, error) {
	t, _ := typeName(typeTok.Type)
	if t == types.TypeVoid {
		return nil, p.errorf(typeTok.Position, "variable %s cannot be declared void", p.current.Value)
	}

	decl := &DeclStmt{Pos: typeTok.Position, Type: t, Name: p.current.Value}
	p.nextToken() // consume name

	if p.current.Type == TOKEN_ASSIGN {
		p.nextToken()
		init, err := p.ParseExpression(PREC_LOWEST)
		if err != nil {
			return nil, err
		}
		decl.Init = init
	}
	return decl, nil
}

// parseDeclaration parses `type name [= expr]`
func (p *Parser) parseDeclaration() (*DeclStmt, error) {
	typeTok := p.current
	p.nextToken()
	if p.current.Type != TOKEN_IDENTIFIER {
		return nil, p.unexpected("variable name")
	}
	return p.parseDeclarationAfterType(typeTok)
}

// parseAssignment parses `name op expr`
func (p *Parser) parseAssignment() (*AssignStmt, error) {
	name := p.current
	p.nextToken()
	op := p.current
	p.nextToken()

	value, err := p.ParseExpression(PREC_LOWEST)
	if err != nil {
		return nil, err
	}
	return &AssignStmt{Pos: name.Position, Name: name.Value, Operator: op.Value, Value: value}, nil
}

// parseBlock parses { statements }
func (p *Parser) parseBlock() (*BlockStmt, error) {
	open, err := p.expect(TOKEN_LBRACE, "'{'")
	if err != nil {
		return nil, err
	}

	block := &BlockStmt{Pos: open.Position}
	for p.current.Type != TOKEN_RBRACE {
		if p.current.Type == TOKEN_EOF {
			return nil, p.unexpected("'}'")
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		block.Body = append(block.Body, stmt)
	}
	block.EndPos = p.current.Position
	p.nextToken() // consume '}'

	return block, nil
}

// parseStatement parses a single statement
func (p *Parser) parseStatement() (Stmt, error) {
	switch p.current.Type {
	case TOKEN_IF:
		return p.parseIfStatement()
	case TOKEN_WHILE:
		return p.parseWhileStatement()
	case TOKEN_FOR:
		return p.parseForStatement()
	case TOKEN_RETURN:
		return p.parseReturnStatement()
	case TOKEN_LBRACE:
		return p.parseBlock()
	case TOKEN_SEMICOLON:
		// Empty statement
		pos := p.current.Position
		p.nextToken()
		return &ExprStmt{Pos: pos, Expr: nil}, nil
	}

	stmt, err := p.parseSimpleStatement()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(TOKEN_SEMICOLON, "';'"); err != nil {
		return nil, err
	}
	return stmt, nil
}

// parseSimpleStatement parses a declaration, assignment or expression
// without the trailing semicolon
func (p *Parser) parseSimpleStatement() (Stmt, error) {
	switch {
	case p.current.Type.IsTypeKeyword(), p.current.Type == TOKEN_VOID:
		return p.parseDeclaration()
	case p.current.Type == TOKEN_IDENTIFIER && p.peek.Type.IsAssignOp():
		return p.parseAssignment()
	}

	pos := p.current.Position
	expr, err := p.ParseExpression(PREC_LOWEST)
	if err != nil {
		return nil, err
	}
	return &ExprStmt{Pos: pos, Expr: expr}, nil
}

// parseCondition parses '(' cond ')'
func (p *Parser) parseCondition(keyword string) (Expr, error) {
	if _, err := p.expect(TOKEN_LPAREN, "'(' after '"+keyword+"'"); err != nil {
		return nil, err
	}
	cond, err := p.ParseExpression(PREC_LOWEST)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(TOKEN_RPAREN, "')' after "+keyword+" condition"); err != nil {
		return nil, err
	}
	return cond, nil
}

// parseIfStatement parses if/else
func (p *Parser) parseIfStatement() (Stmt, error) {
	pos := p.current.Position
	p.nextToken() // consume 'if'

	condition, err := p.parseCondition("if")
	if err != nil {
		return nil, err
	}

	then, err := p.parseStatement()
	if err != nil {
		return nil, err
	}

	stmt := &IfStmt{Pos: pos, Condition: condition, Then: then}
	if p.current.Type == TOKEN_ELSE {
		stmt.ElsePos = p.current.Position
		p.nextToken() // consume 'else'
		stmt.Else, err = p.parseStatement()
		if err != nil {
			return nil, err
		}
	}
	return stmt, nil
}

// parseWhileStatement parses while loops
func (p *Parser) parseWhileStatement() (Stmt, error) {
	pos := p.current.Position
	p.nextToken() // consume 'while'

	condition, err := p.parseCondition("while")
	if err != nil {
		return nil, err
	}

	body, err := p.parseStatement()
	if err != nil {
		return nil, err
	}

	return &WhileStmt{Pos: pos, Condition: condition, Body: body}, nil
}

// parseForStatement parses for(init; cond; update) body
func (p *Parser) parseForStatement() (Stmt, error) {
	pos := p.current.Position
	p.nextToken() // consume 'for'

	if _, err := p.expect(TOKEN_LPAREN, "'(' after 'for'"); err != nil {
		return nil, err
	}

	stmt := &ForStmt{Pos: pos}

	// Initializer: declaration or assignment
	if p.current.Type != TOKEN_SEMICOLON {
		switch {
		case p.current.Type.IsTypeKeyword():
			decl, err := p.parseDeclaration()
			if err != nil {
				return nil, err
			}
			stmt.Init = decl
		case p.current.Type == TOKEN_IDENTIFIER && p.peek.Type.IsAssignOp():
			assign, err := p.parseAssignment()
			if err != nil {
				return nil, err
			}
			stmt.Init = assign
		default:
			return nil, p.unexpected("declaration or assignment in for initializer")
		}
	}
	if _, err := p.expect(TOKEN_SEMICOLON, "';' after for initializer"); err != nil {
		return nil, err
	}

	if p.current.Type != TOKEN_SEMICOLON {
		cond, err := p.ParseExpression(PREC_LOWEST)
		if err != nil {
			return nil, err
		}
		stmt.Condition = cond
	}
	if _, err := p.expect(TOKEN_SEMICOLON, "';' after for condition"); err != nil {
		return nil, err
	}

	// Update: assignment or expression
	if p.current.Type != TOKEN_RPAREN {
		if p.current.Type == TOKEN_IDENTIFIER && p.peek.Type.IsAssignOp() {
			assign, err := p.parseAssignment()
			if err != nil {
				return nil, err
			}
			stmt.Update = assign
		} else {
			upos := p.current.Position
			expr, err := p.ParseExpression(PREC_LOWEST)
			if err != nil {
				return nil, err
			}
			stmt.Update = &ExprStmt{Pos: upos, Expr: expr}
		}
	}
	if _, err := p.expect(TOKEN_RPAREN, "')' after for clauses"); err != nil {
		return nil, err
	}

	body, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	stmt.Body = body
	return stmt, nil
}

// parseReturnStatement parses return [expr];
func (p *Parser) parseReturnStatement() (Stmt, error) {
	pos := p.current.Position
	p.nextToken() // consume 'return'

	var value Expr
	if p.current.Type != TOKEN_SEMICOLON {
		var err error
		value, err = p.ParseExpression(PREC_LOWEST)
		if err != nil {
			return nil, err
		}
	}

	if _, err := p.expect(TOKEN_SEMICOLON, "';' after return"); err != nil {
		return nil, err
	}
	return &ReturnStmt{Pos: pos, Value: value}, nil
}
