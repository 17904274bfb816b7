package parser

import (
	"strconv"
	"strings"

	"minilang/types"
)

// opPrecedence returns the binding strength of a binary operator symbol
func opPrecedence(op string) int {
	switch op {
	case "||":
		return PREC_OR
	case "&&":
		return PREC_AND
	case "<", ">", "<=", ">=", "==", "!=":
		return PREC_RELATIONAL
	case "+", "-":
		return PREC_ADDITIVE
	case "*", "/", "%":
		return PREC_MULTIPLY
	case "^", "**":
		return PREC_EXPONENT
	}
	return PREC_LOWEST
}

// UnparseProgram converts a program back to source code lines
func UnparseProgram(prog *Program) []string {
	var lines []string
	for _, stmt := range prog.Lines {
		lines = append(lines, strings.Split(UnparseStmt(stmt), "\n")...)
	}
	return lines
}

// UnparseStmt converts a statement to source code
func UnparseStmt(stmt Stmt) string {
	return unparseStmt(stmt, 0)
}

// unparseStmt converts a statement to source code
func unparseStmt(stmt Stmt, indent int) string {
	indentStr := strings.Repeat("  ", indent)

	switch s := stmt.(type) {
	case *DeclStmt:
		return indentStr + unparseSimple(s) + ";"

	case *AssignStmt:
		return indentStr + unparseSimple(s) + ";"

	case *ExprStmt:
		if s.Expr == nil {
			return indentStr + ";"
		}
		return indentStr + unparseExpr(s.Expr, PREC_LOWEST) + ";"

	case *ReturnStmt:
		if s.Value == nil {
			return indentStr + "return;"
		}
		return indentStr + "return " + unparseExpr(s.Value, PREC_LOWEST) + ";"

	case *IfStmt:
		var sb strings.Builder
		sb.WriteString(indentStr + "if (" + unparseExpr(s.Condition, PREC_LOWEST) + ")")
		sb.WriteString(unparseBody(s.Then, indent))
		if s.Else != nil {
			sb.WriteString("\n" + indentStr + "else")
			sb.WriteString(unparseBody(s.Else, indent))
		}
		return sb.String()

	case *WhileStmt:
		return indentStr + "while (" + unparseExpr(s.Condition, PREC_LOWEST) + ")" + unparseBody(s.Body, indent)

	case *ForStmt:
		var sb strings.Builder
		sb.WriteString(indentStr + "for (")
		if s.Init != nil {
			sb.WriteString(unparseSimple(s.Init))
		}
		sb.WriteString(";")
		if s.Condition != nil {
			sb.WriteString(" " + unparseExpr(s.Condition, PREC_LOWEST))
		}
		sb.WriteString(";")
		if s.Update != nil {
			sb.WriteString(" " + unparseSimple(s.Update))
		}
		sb.WriteString(")")
		sb.WriteString(unparseBody(s.Body, indent))
		return sb.String()

	case *BlockStmt:
		return indentStr + unparseBlock(s.Body, indent)

	case *FuncDecl:
		params := make([]string, len(s.Params))
		for i, param := range s.Params {
			params[i] = string(param.Type) + " " + param.Name
		}
		return indentStr + string(s.ReturnType) + " " + s.Name + "(" + strings.Join(params, ", ") + ") " + unparseBlock(s.Body, indent)
	}

	return indentStr + "/* unknown statement */"
}

// unparseSimple renders a declaration, assignment or expression without ';'
func unparseSimple(stmt Stmt) string {
	switch s := stmt.(type) {
	case *DeclStmt:
		out := string(s.Type) + " " + s.Name
		if s.Init != nil {
			out += " = " + unparseExpr(s.Init, PREC_LOWEST)
		}
		return out
	case *AssignStmt:
		return s.Name + " " + s.Operator + " " + unparseExpr(s.Value, PREC_LOWEST)
	case *ExprStmt:
		if s.Expr == nil {
			return ""
		}
		return unparseExpr(s.Expr, PREC_LOWEST)
	}
	return strings.TrimSuffix(unparseStmt(stmt, 0), ";")
}

// unparseBody renders a loop or branch body: blocks stay on the header
// line, single statements go on the next line indented
func unparseBody(body Stmt, indent int) string {
	if block, ok := body.(*BlockStmt); ok {
		return " " + unparseBlock(block.Body, indent)
	}
	return "\n" + unparseStmt(body, indent+1)
}

func unparseBlock(body []Stmt, indent int) string {
	if len(body) == 0 {
		return "{}"
	}
	var sb strings.Builder
	sb.WriteString("{\n")
	for _, stmt := range body {
		sb.WriteString(unparseStmt(stmt, indent+1) + "\n")
	}
	sb.WriteString(strings.Repeat("  ", indent) + "}")
	return sb.String()
}

// UnparseExpr converts an expression to source code
func UnparseExpr(expr Expr) string {
	return unparseExpr(expr, PREC_LOWEST)
}

// unparseExpr converts an expression to source code, parenthesizing
// when the expression binds looser than its context
func unparseExpr(expr Expr, parentPrec int) string {
	switch e := expr.(type) {
	case *LiteralExpr:
		return literalSource(e)

	case *IdentifierExpr:
		return e.Name

	case *ParenExpr:
		return "(" + unparseExpr(e.Expr, PREC_LOWEST) + ")"

	case *UnaryExpr:
		out := e.Operator + unparseExpr(e.Operand, PREC_UNARY)
		if parentPrec > PREC_UNARY {
			return "(" + out + ")"
		}
		return out

	case *BinaryExpr:
		prec := opPrecedence(e.Operator)
		leftPrec, rightPrec := prec, prec+1
		if prec == PREC_EXPONENT {
			leftPrec, rightPrec = prec+1, prec
		}
		out := unparseExpr(e.Left, leftPrec) + " " + e.Operator + " " + unparseExpr(e.Right, rightPrec)
		if prec < parentPrec {
			return "(" + out + ")"
		}
		return out

	case *CallExpr:
		args := make([]string, len(e.Args))
		for i, arg := range e.Args {
			args[i] = unparseExpr(arg, PREC_LOWEST)
		}
		return e.Name + "(" + strings.Join(args, ", ") + ")"

	case *IncDecExpr:
		if e.Prefix {
			return e.Operator + e.Name
		}
		return e.Name + e.Operator

	case *PrintExpr:
		return "print(" + unparseExpr(e.Expr, PREC_LOWEST) + ")"
	}

	return "/* unknown expression */"
}

// literalSource renders a literal so that it re-lexes to the same type
func literalSource(e *LiteralExpr) string {
	switch e.Value.(type) {
	case types.Float32Value:
		return e.Value.String() + "f"
	case types.Float64Value:
		s := e.Value.String()
		if !strings.ContainsAny(s, ".eEIN") {
			s += ".0"
		}
		return s
	case types.StrValue:
		return strconv.Quote(e.Value.String())
	}
	return e.Value.Literal()
}
