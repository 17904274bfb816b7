package parser

// Inspect traverses the AST rooted at node in depth-first source order.
// It calls fn for each node; if fn returns false the node's children
// are skipped.
func Inspect(node Node, fn func(Node) bool) {
	if node == nil || !fn(node) {
		return
	}

	switch n := node.(type) {
	case *Program:
		for _, s := range n.Lines {
			Inspect(s, fn)
		}
	case *FuncDecl:
		for _, s := range n.Body {
			Inspect(s, fn)
		}
	case *BlockStmt:
		for _, s := range n.Body {
			Inspect(s, fn)
		}
	case *DeclStmt:
		inspectExpr(n.Init, fn)
	case *AssignStmt:
		inspectExpr(n.Value, fn)
	case *ExprStmt:
		inspectExpr(n.Expr, fn)
	case *ReturnStmt:
		inspectExpr(n.Value, fn)
	case *IfStmt:
		inspectExpr(n.Condition, fn)
		inspectStmt(n.Then, fn)
		inspectStmt(n.Else, fn)
	case *WhileStmt:
		inspectExpr(n.Condition, fn)
		inspectStmt(n.Body, fn)
	case *ForStmt:
		inspectStmt(n.Init, fn)
		inspectExpr(n.Condition, fn)
		inspectStmt(n.Update, fn)
		inspectStmt(n.Body, fn)
	case *UnaryExpr:
		inspectExpr(n.Operand, fn)
	case *BinaryExpr:
		inspectExpr(n.Left, fn)
		inspectExpr(n.Right, fn)
	case *ParenExpr:
		inspectExpr(n.Expr, fn)
	case *CallExpr:
		for _, a := range n.Args {
			inspectExpr(a, fn)
		}
	case *PrintExpr:
		inspectExpr(n.Expr, fn)
	}
}

// inspectExpr and inspectStmt guard against typed-nil interface values
func inspectExpr(e Expr, fn func(Node) bool) {
	if e != nil {
		Inspect(e, fn)
	}
}

func inspectStmt(s Stmt, fn func(Node) bool) {
	if s != nil {
		Inspect(s, fn)
	}
}
