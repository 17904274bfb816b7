package parser

import "minilang/types"

// Node is the base interface for all AST nodes
type Node interface {
	Position() Position
}

// Expr represents an expression node
type Expr interface {
	Node
	exprNode()
}

// Stmt represents a statement node
type Stmt interface {
	Node
	stmtNode()
}

// Program is a parsed source file: global declarations and
// function declarations in source order
type Program struct {
	Pos   Position
	Lines []Stmt // *DeclStmt or *FuncDecl
}

func (p *Program) Position() Position { return p.Pos }

// Expression AST nodes

// LiteralExpr wraps an int, float, double or string constant
type LiteralExpr struct {
	Pos   Position
	Value types.Value
}

func (e *LiteralExpr) Position() Position { return e.Pos }
func (e *LiteralExpr) exprNode()          {}

// IdentifierExpr represents a variable reference
type IdentifierExpr struct {
	Pos  Position
	Name string
}

func (e *IdentifierExpr) Position() Position { return e.Pos }
func (e *IdentifierExpr) exprNode()          {}

// UnaryExpr represents negation (-) or logical not (!)
type UnaryExpr struct {
	Pos      Position
	Operator string
	Operand  Expr
}

func (e *UnaryExpr) Position() Position { return e.Pos }
func (e *UnaryExpr) exprNode()          {}

// BinaryExpr represents an arithmetic, relational or logical operation,
// tagged by its operator symbol
type BinaryExpr struct {
	Pos      Position
	Left     Expr
	Operator string
	Right    Expr
}

func (e *BinaryExpr) Position() Position { return e.Pos }
func (e *BinaryExpr) exprNode()          {}

// ParenExpr represents a parenthesized expression
type ParenExpr struct {
	Pos  Position
	Expr Expr
}

func (e *ParenExpr) Position() Position { return e.Pos }
func (e *ParenExpr) exprNode()          {}

// CallExpr represents a user function call: name(args)
type CallExpr struct {
	Pos  Position
	Name string
	Args []Expr
}

func (e *CallExpr) Position() Position { return e.Pos }
func (e *CallExpr) exprNode()          {}

// IncDecExpr represents ++x, --x, x++ and x--
type IncDecExpr struct {
	Pos      Position
	Name     string
	Operator string // "++" or "--"
	Prefix   bool
}

func (e *IncDecExpr) Position() Position { return e.Pos }
func (e *IncDecExpr) exprNode()          {}

// PrintExpr represents print(expr); it evaluates to its operand
type PrintExpr struct {
	Pos  Position
	Expr Expr
}

func (e *PrintExpr) Position() Position { return e.Pos }
func (e *PrintExpr) exprNode()          {}

// Statement AST nodes

// DeclStmt declares a variable: type name [= init]
type DeclStmt struct {
	Pos  Position
	Type types.TypeName
	Name string
	Init Expr // Can be nil
}

func (s *DeclStmt) Position() Position { return s.Pos }
func (s *DeclStmt) stmtNode()          {}

// AssignStmt represents name op value where op is = += -= *= /= %=
type AssignStmt struct {
	Pos      Position
	Name     string
	Operator string
	Value    Expr
}

func (s *AssignStmt) Position() Position { return s.Pos }
func (s *AssignStmt) stmtNode()          {}

// ExprStmt represents an expression used as a statement
type ExprStmt struct {
	Pos  Position
	Expr Expr // nil for the empty statement
}

func (s *ExprStmt) Position() Position { return s.Pos }
func (s *ExprStmt) stmtNode()          {}

// ReturnStmt represents return statement
type ReturnStmt struct {
	Pos   Position
	Value Expr // Can be nil
}

func (s *ReturnStmt) Position() Position { return s.Pos }
func (s *ReturnStmt) stmtNode()          {}

// IfStmt represents if/else
type IfStmt struct {
	Pos       Position
	Condition Expr
	Then      Stmt
	ElsePos   Position // position of the else keyword
	Else      Stmt     // Can be nil
}

func (s *IfStmt) Position() Position { return s.Pos }
func (s *IfStmt) stmtNode()          {}

// WhileStmt represents while loops
type WhileStmt struct {
	Pos       Position
	Condition Expr
	Body      Stmt
}

func (s *WhileStmt) Position() Position { return s.Pos }
func (s *WhileStmt) stmtNode()          {}

// ForStmt represents for(init; cond; update) loops.
// Each clause may be nil.
type ForStmt struct {
	Pos       Position
	Init      Stmt // *DeclStmt or *AssignStmt
	Condition Expr
	Update    Stmt // *AssignStmt or *ExprStmt
	Body      Stmt
}

func (s *ForStmt) Position() Position { return s.Pos }
func (s *ForStmt) stmtNode()          {}

// BlockStmt represents { statements }
type BlockStmt struct {
	Pos    Position
	Body   []Stmt
	EndPos Position // closing brace
}

func (s *BlockStmt) Position() Position { return s.Pos }
func (s *BlockStmt) stmtNode()          {}

// Param is one typed function parameter
type Param struct {
	Pos  Position
	Type types.TypeName
	Name string
}

// FuncDecl declares a function
type FuncDecl struct {
	Pos        Position
	ReturnType types.TypeName
	Name       string
	Params     []Param
	Body       []Stmt
	EndPos     Position // closing brace
}

func (s *FuncDecl) Position() Position { return s.Pos }
func (s *FuncDecl) stmtNode()          {}

// IsCondition reports whether e is a relational, logical or not
// expression. Those only have meaning where a condition is expected.
func IsCondition(e Expr) bool {
	switch n := e.(type) {
	case *BinaryExpr:
		switch n.Operator {
		case "<", ">", "<=", ">=", "==", "!=", "&&", "||":
			return true
		}
	case *UnaryExpr:
		return n.Operator == "!"
	case *ParenExpr:
		return IsCondition(n.Expr)
	}
	return false
}
