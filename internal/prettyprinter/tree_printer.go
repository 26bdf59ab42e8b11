package prettyprinter

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/funvibe/golox/internal/ast"
)

// TreePrinter dumps the tree one node per line, children indented by two
// spaces under their parent.
type TreePrinter struct {
	buf   bytes.Buffer
	depth int
}

func NewTreePrinter() *TreePrinter {
	return &TreePrinter{}
}

func (p *TreePrinter) Print(node ast.Node) string {
	p.buf.Reset()
	p.depth = 0
	node.Accept(p)
	return p.buf.String()
}

func (p *TreePrinter) String() string {
	return p.buf.String()
}

func (p *TreePrinter) line(format string, args ...interface{}) {
	p.buf.WriteString(strings.Repeat("  ", p.depth))
	fmt.Fprintf(&p.buf, format, args...)
	p.buf.WriteString("\n")
}

// child prints a labelled child node one level deeper.
func (p *TreePrinter) child(label string, node ast.Node) {
	p.depth++
	defer func() { p.depth-- }()
	if label != "" {
		p.line("%s:", label)
		p.depth++
		defer func() { p.depth-- }()
	}
	node.Accept(p)
}

func (p *TreePrinter) VisitProgram(n *ast.Program) {
	p.line("Program")
	for _, stmt := range n.Statements {
		p.child("", stmt)
	}
}

func (p *TreePrinter) VisitExpressionStatement(n *ast.ExpressionStatement) {
	p.line("ExpressionStatement")
	p.child("", n.Expression)
}

func (p *TreePrinter) VisitPrintStatement(n *ast.PrintStatement) {
	p.line("PrintStatement")
	p.child("", n.Value)
}

func (p *TreePrinter) VisitVarStatement(n *ast.VarStatement) {
	p.line("VarStatement %s", n.Name.Value)
	if n.Value != nil {
		p.child("", n.Value)
	}
}

func (p *TreePrinter) VisitBlockStatement(n *ast.BlockStatement) {
	p.line("BlockStatement")
	for _, stmt := range n.Statements {
		p.child("", stmt)
	}
}

func (p *TreePrinter) VisitIfStatement(n *ast.IfStatement) {
	p.line("IfStatement")
	p.child("cond", n.Condition)
	p.child("then", n.Consequence)
	if n.Alternative != nil {
		p.child("else", n.Alternative)
	}
}

func (p *TreePrinter) VisitWhileStatement(n *ast.WhileStatement) {
	p.line("WhileStatement")
	p.child("cond", n.Condition)
	p.child("body", n.Body)
}

func (p *TreePrinter) VisitForStatement(n *ast.ForStatement) {
	p.line("ForStatement")
	if n.Init != nil {
		p.child("init", n.Init)
	}
	if n.Condition != nil {
		p.child("cond", n.Condition)
	}
	if n.Increment != nil {
		p.child("incr", n.Increment)
	}
	p.child("body", n.Body)
}

func (p *TreePrinter) VisitFunctionStatement(n *ast.FunctionStatement) {
	params := make([]string, len(n.Parameters))
	for i, param := range n.Parameters {
		params[i] = param.Value
	}
	p.line("FunctionStatement %s(%s)", n.Name.Value, strings.Join(params, ", "))
	for _, stmt := range n.Body.Statements {
		p.child("", stmt)
	}
}

func (p *TreePrinter) VisitReturnStatement(n *ast.ReturnStatement) {
	p.line("ReturnStatement")
	if n.Value != nil {
		p.child("", n.Value)
	}
}

func (p *TreePrinter) VisitClassStatement(n *ast.ClassStatement) {
	if n.Superclass != nil {
		p.line("ClassStatement %s < %s", n.Name.Value, n.Superclass.Value)
	} else {
		p.line("ClassStatement %s", n.Name.Value)
	}
	for _, m := range n.Methods {
		p.child("", m)
	}
}

func (p *TreePrinter) VisitIdentifier(n *ast.Identifier) {
	p.line("Identifier %s", n.Value)
}

func (p *TreePrinter) VisitNumberLiteral(n *ast.NumberLiteral) {
	p.line("NumberLiteral %s", strconv.FormatFloat(n.Value, 'f', -1, 64))
}

func (p *TreePrinter) VisitStringLiteral(n *ast.StringLiteral) {
	p.line("StringLiteral %q", n.Value)
}

func (p *TreePrinter) VisitBooleanLiteral(n *ast.BooleanLiteral) {
	p.line("BooleanLiteral %t", n.Value)
}

func (p *TreePrinter) VisitNilLiteral(n *ast.NilLiteral) {
	p.line("NilLiteral")
}

func (p *TreePrinter) VisitGroupedExpression(n *ast.GroupedExpression) {
	p.line("GroupedExpression")
	p.child("", n.Expression)
}

func (p *TreePrinter) VisitPrefixExpression(n *ast.PrefixExpression) {
	p.line("PrefixExpression %s", n.Operator)
	p.child("", n.Right)
}

func (p *TreePrinter) VisitInfixExpression(n *ast.InfixExpression) {
	p.line("InfixExpression %s", n.Operator)
	p.child("", n.Left)
	p.child("", n.Right)
}

func (p *TreePrinter) VisitLogicalExpression(n *ast.LogicalExpression) {
	p.line("LogicalExpression %s", n.Operator)
	p.child("", n.Left)
	p.child("", n.Right)
}

func (p *TreePrinter) VisitAssignExpression(n *ast.AssignExpression) {
	p.line("AssignExpression %s", n.Name.Value)
	p.child("", n.Value)
}

func (p *TreePrinter) VisitCallExpression(n *ast.CallExpression) {
	p.line("CallExpression")
	p.child("callee", n.Function)
	for _, arg := range n.Arguments {
		p.child("arg", arg)
	}
}

func (p *TreePrinter) VisitGetExpression(n *ast.GetExpression) {
	p.line("GetExpression .%s", n.Name.Value)
	p.child("", n.Object)
}

func (p *TreePrinter) VisitSetExpression(n *ast.SetExpression) {
	p.line("SetExpression .%s", n.Name.Value)
	p.child("object", n.Object)
	p.child("value", n.Value)
}

func (p *TreePrinter) VisitThisExpression(n *ast.ThisExpression) {
	p.line("ThisExpression")
}

func (p *TreePrinter) VisitSuperExpression(n *ast.SuperExpression) {
	p.line("SuperExpression .%s", n.Method.Value)
}
