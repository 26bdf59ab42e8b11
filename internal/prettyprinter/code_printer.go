package prettyprinter

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/funvibe/golox/internal/ast"
)

// --- Code Printer (Output looks like source code) ---

// Binding power of each expression form (higher = binds tighter)
const (
	precAssign = iota + 1
	precOr
	precAnd
	precEquality
	precComparison
	precTerm
	precFactor
	precUnary
	precCall
	precPrimary
)

var operatorPrecedence = map[string]int{
	"or":  precOr,
	"and": precAnd,
	"==":  precEquality,
	"!=":  precEquality,
	"<":   precComparison,
	">":   precComparison,
	"<=":  precComparison,
	">=":  precComparison,
	"+":   precTerm,
	"-":   precTerm,
	"*":   precFactor,
	"/":   precFactor,
}

func getPrecedence(op string) int {
	if p, ok := operatorPrecedence[op]; ok {
		return p
	}
	return precPrimary
}

// exprPrecedence is the binding power of an expression node. Groups are
// transparent: parentheses are re-derived from precedence.
func exprPrecedence(expr ast.Expression) int {
	switch e := expr.(type) {
	case *ast.AssignExpression, *ast.SetExpression:
		return precAssign
	case *ast.LogicalExpression:
		return getPrecedence(e.Operator)
	case *ast.InfixExpression:
		return getPrecedence(e.Operator)
	case *ast.PrefixExpression:
		return precUnary
	case *ast.CallExpression, *ast.GetExpression:
		return precCall
	case *ast.GroupedExpression:
		return exprPrecedence(e.Expression)
	}
	return precPrimary
}

// CodePrinter formats a tree back into canonical source: four-space
// indentation, one statement per line, parentheses only where needed.
type CodePrinter struct {
	buf    bytes.Buffer
	indent int
}

func NewCodePrinter() *CodePrinter {
	return &CodePrinter{}
}

// Print formats node and returns the source text.
func (p *CodePrinter) Print(node ast.Node) string {
	p.buf.Reset()
	p.indent = 0
	node.Accept(p)
	return p.buf.String()
}

func (p *CodePrinter) String() string {
	return p.buf.String()
}

func (p *CodePrinter) write(s string) {
	p.buf.WriteString(s)
}

func (p *CodePrinter) writeIndent() {
	for i := 0; i < p.indent; i++ {
		p.buf.WriteString("    ")
	}
}

// printExpr prints an expression, adding parentheses only if needed.
// Binary operators are left associative, so an operand of equal precedence
// on the right needs parentheses. Assignment is the reverse.
func (p *CodePrinter) printExpr(expr ast.Expression, parentPrec int, isRight bool) {
	if g, ok := expr.(*ast.GroupedExpression); ok {
		p.printExpr(g.Expression, parentPrec, isRight)
		return
	}
	prec := exprPrecedence(expr)
	needParens := prec < parentPrec
	if prec == parentPrec && prec != precAssign && prec < precUnary && isRight {
		needParens = true
	}
	if prec == precAssign && parentPrec == precAssign && !isRight {
		needParens = true
	}
	if needParens {
		p.write("(")
	}
	expr.Accept(p)
	if needParens {
		p.write(")")
	}
}

func (p *CodePrinter) VisitProgram(n *ast.Program) {
	for _, stmt := range n.Statements {
		stmt.Accept(p)
		p.write("\n")
	}
}

// printBody prints a statement nested under if/while/for. Blocks stay on
// the same line; other statements go on their own indented line.
func (p *CodePrinter) printBody(stmt ast.Statement) {
	if _, ok := stmt.(*ast.BlockStatement); ok {
		p.write(" ")
		stmt.Accept(p)
		return
	}
	p.write("\n")
	p.indent++
	p.writeIndent()
	stmt.Accept(p)
	p.indent--
}

func (p *CodePrinter) VisitExpressionStatement(n *ast.ExpressionStatement) {
	p.printExpr(n.Expression, 0, false)
	p.write(";")
}

func (p *CodePrinter) VisitPrintStatement(n *ast.PrintStatement) {
	p.write("print ")
	p.printExpr(n.Value, 0, false)
	p.write(";")
}

func (p *CodePrinter) VisitVarStatement(n *ast.VarStatement) {
	p.write("var ")
	p.write(n.Name.Value)
	if n.Value != nil {
		p.write(" = ")
		p.printExpr(n.Value, 0, false)
	}
	p.write(";")
}

func (p *CodePrinter) VisitBlockStatement(n *ast.BlockStatement) {
	if len(n.Statements) == 0 {
		p.write("{}")
		return
	}
	p.write("{\n")
	p.indent++
	for _, stmt := range n.Statements {
		p.writeIndent()
		stmt.Accept(p)
		p.write("\n")
	}
	p.indent--
	p.writeIndent()
	p.write("}")
}

func (p *CodePrinter) VisitIfStatement(n *ast.IfStatement) {
	p.write("if (")
	p.printExpr(n.Condition, 0, false)
	p.write(")")
	p.printBody(n.Consequence)
	if n.Alternative == nil {
		return
	}
	if _, ok := n.Consequence.(*ast.BlockStatement); ok {
		p.write(" else")
	} else {
		p.write("\n")
		p.writeIndent()
		p.write("else")
	}
	if _, ok := n.Alternative.(*ast.IfStatement); ok {
		p.write(" ")
		n.Alternative.Accept(p)
		return
	}
	p.printBody(n.Alternative)
}

func (p *CodePrinter) VisitWhileStatement(n *ast.WhileStatement) {
	p.write("while (")
	p.printExpr(n.Condition, 0, false)
	p.write(")")
	p.printBody(n.Body)
}

func (p *CodePrinter) VisitForStatement(n *ast.ForStatement) {
	p.write("for (")
	if n.Init != nil {
		n.Init.Accept(p)
	} else {
		p.write(";")
	}
	if n.Condition != nil {
		p.write(" ")
		p.printExpr(n.Condition, 0, false)
	}
	p.write(";")
	if n.Increment != nil {
		p.write(" ")
		p.printExpr(n.Increment, 0, false)
	}
	p.write(")")
	p.printBody(n.Body)
}

func (p *CodePrinter) VisitFunctionStatement(n *ast.FunctionStatement) {
	p.write("fun ")
	p.printFunction(n)
}

func (p *CodePrinter) printFunction(n *ast.FunctionStatement) {
	p.write(n.Name.Value)
	p.write("(")
	for i, param := range n.Parameters {
		if i > 0 {
			p.write(", ")
		}
		p.write(param.Value)
	}
	p.write(") ")
	n.Body.Accept(p)
}

func (p *CodePrinter) VisitReturnStatement(n *ast.ReturnStatement) {
	p.write("return")
	if n.Value != nil {
		p.write(" ")
		p.printExpr(n.Value, 0, false)
	}
	p.write(";")
}

func (p *CodePrinter) VisitClassStatement(n *ast.ClassStatement) {
	p.write("class ")
	p.write(n.Name.Value)
	if n.Superclass != nil {
		p.write(" < ")
		p.write(n.Superclass.Value)
	}
	if len(n.Methods) == 0 {
		p.write(" {}")
		return
	}
	p.write(" {\n")
	p.indent++
	for i, m := range n.Methods {
		if i > 0 {
			p.write("\n")
		}
		p.writeIndent()
		p.printFunction(m)
		p.write("\n")
	}
	p.indent--
	p.writeIndent()
	p.write("}")
}

func (p *CodePrinter) VisitIdentifier(n *ast.Identifier) {
	p.write(n.Value)
}

func (p *CodePrinter) VisitNumberLiteral(n *ast.NumberLiteral) {
	p.write(strconv.FormatFloat(n.Value, 'f', -1, 64))
}

func (p *CodePrinter) VisitStringLiteral(n *ast.StringLiteral) {
	// Lox strings have no escapes, so the value is written back verbatim.
	p.write("\"" + n.Value + "\"")
}

func (p *CodePrinter) VisitBooleanLiteral(n *ast.BooleanLiteral) {
	p.write(strconv.FormatBool(n.Value))
}

func (p *CodePrinter) VisitNilLiteral(n *ast.NilLiteral) {
	p.write("nil")
}

func (p *CodePrinter) VisitGroupedExpression(n *ast.GroupedExpression) {
	p.printExpr(n.Expression, 0, false)
}

func (p *CodePrinter) VisitPrefixExpression(n *ast.PrefixExpression) {
	p.write(n.Operator)
	p.printExpr(n.Right, precUnary, true)
}

func (p *CodePrinter) VisitInfixExpression(n *ast.InfixExpression) {
	prec := getPrecedence(n.Operator)
	p.printExpr(n.Left, prec, false)
	p.write(" " + n.Operator + " ")
	p.printExpr(n.Right, prec, true)
}

func (p *CodePrinter) VisitLogicalExpression(n *ast.LogicalExpression) {
	prec := getPrecedence(n.Operator)
	p.printExpr(n.Left, prec, false)
	p.write(" " + n.Operator + " ")
	p.printExpr(n.Right, prec, true)
}

func (p *CodePrinter) VisitAssignExpression(n *ast.AssignExpression) {
	p.write(n.Name.Value)
	p.write(" = ")
	p.printExpr(n.Value, precAssign, true)
}

func (p *CodePrinter) VisitCallExpression(n *ast.CallExpression) {
	p.printExpr(n.Function, precCall, false)
	args := make([]string, 0, len(n.Arguments))
	for _, arg := range n.Arguments {
		sub := &CodePrinter{}
		sub.printExpr(arg, 0, false)
		args = append(args, sub.String())
	}
	p.write("(" + strings.Join(args, ", ") + ")")
}

func (p *CodePrinter) VisitGetExpression(n *ast.GetExpression) {
	p.printExpr(n.Object, precCall, false)
	p.write("." + n.Name.Value)
}

func (p *CodePrinter) VisitSetExpression(n *ast.SetExpression) {
	p.printExpr(n.Object, precCall, false)
	p.write("." + n.Name.Value + " = ")
	p.printExpr(n.Value, precAssign, true)
}

func (p *CodePrinter) VisitThisExpression(n *ast.ThisExpression) {
	p.write("this")
}

func (p *CodePrinter) VisitSuperExpression(n *ast.SuperExpression) {
	p.write("super." + n.Method.Value)
}
