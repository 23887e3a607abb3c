package engine

import (
	"strconv"

	"github.com/sol25-lang/sol25/internal/ast"
)

// Small AST builders that build the tree directly rather than
// round-tripping through XML text. These mirror the AST schema exactly:
// <expr> wraps exactly one of literal/var/block/send, <send> carries the
// receiver as its first <expr> child and each argument as an
// <arg order="n"><expr>...</expr></arg>.

func litInt(n int64) ast.Node {
	return ast.NewNode("literal", map[string]string{"class": "Integer", "value": strconv.FormatInt(n, 10)})
}

func litStr(s string) ast.Node {
	return ast.NewNode("literal", map[string]string{"class": "String", "value": s})
}

func litClassTok(name string) ast.Node {
	return ast.NewNode("literal", map[string]string{"class": "class", "value": name})
}

func varRef(name string) ast.Node {
	return ast.NewNode("var", map[string]string{"name": name})
}

func wrapExpr(child ast.Node) ast.Node {
	return ast.NewNode("expr", nil, child)
}

func argN(order int, value ast.Node) ast.Node {
	return ast.NewNode("arg", map[string]string{"order": strconv.Itoa(order)}, wrapExpr(value))
}

func send(selector string, receiver ast.Node, args ...ast.Node) ast.Node {
	children := make([]ast.Node, 0, len(args)+1)
	children = append(children, wrapExpr(receiver))
	for i, a := range args {
		children = append(children, argN(i+1, a))
	}
	return ast.NewNode("send", map[string]string{"selector": selector}, children...)
}

func assignVar(order int, name string, value ast.Node) ast.Node {
	return ast.NewNode("assign", map[string]string{"order": strconv.Itoa(order)}, varRef(name), wrapExpr(value))
}

func parameter(order int, name string) ast.Node {
	return ast.NewNode("parameter", map[string]string{"order": strconv.Itoa(order), "name": name})
}

func blockLit(arity int, params []ast.Node, assigns []ast.Node) ast.Node {
	children := make([]ast.Node, 0, len(params)+len(assigns))
	children = append(children, params...)
	children = append(children, assigns...)
	return ast.NewNode("block", map[string]string{"arity": strconv.Itoa(arity)}, children...)
}

func methodDef(selector string, body ast.Node) ast.Node {
	return ast.NewNode("method", map[string]string{"selector": selector}, body)
}

func classDef(name, parent string, methods ...ast.Node) ast.Node {
	return ast.NewNode("class", map[string]string{"name": name, "parent": parent}, methods...)
}

func programOf(classes ...ast.Node) ast.Node {
	return ast.NewNode("program", nil, classes...)
}

// fakeIO is an in-memory engine.IO for tests: Write appends to a buffer,
// ReadLine pops from a canned queue of lines.
type fakeIO struct {
	out   []byte
	lines []string
}

func (f *fakeIO) WriteString(s string) error {
	f.out = append(f.out, s...)
	return nil
}

func (f *fakeIO) ReadLine() (string, bool) {
	if len(f.lines) == 0 {
		return "", false
	}
	line := f.lines[0]
	f.lines = f.lines[1:]
	return line, true
}
