// Package ast defines the tree abstraction the interpreter core consumes.
//
// The core never parses a concrete syntax; it walks a Node tree that some
// front end (an XML document loader, a test fixture builder, ...) has
// already produced and validated. A Node exposes only what the evaluator
// needs: a tag, a flat set of string attributes, and an ordered list of
// element children. There is no text-content concept because the AST
// format carries all data as attributes.
package ast

// Node is a single element of the abstract syntax tree.
//
// Implementations are expected to be immutable once built; the evaluator
// never mutates a Node.
type Node interface {
	// Tag returns the element name, e.g. "expr", "send", "literal".
	Tag() string

	// Attr returns the named attribute and whether it was present.
	Attr(name string) (string, bool)

	// Children returns every child element, in document order.
	Children() []Node

	// ChildrenByTag returns the children whose Tag equals tag, in
	// document order.
	ChildrenByTag(tag string) []Node

	// Child returns the first child with the given tag, or nil.
	Child(tag string) Node
}

// AttrString returns the named attribute or "" if absent.
func AttrString(n Node, name string) string {
	v, _ := n.Attr(name)
	return v
}

// MustAttr returns the named attribute, panicking with an *ast.MalformedError
// if it is missing. The parser is expected to guarantee these attributes
// exist; a missing one is a defect in the AST source, not a SOL25 program
// error, so it is reported as a panic the driver converts to an internal
// error (code 99) rather than threaded through every call site.
func MustAttr(n Node, name string) string {
	v, ok := n.Attr(name)
	if !ok {
		panic(&MalformedError{Node: n, Attr: name})
	}
	return v
}

// Only returns the single child of n, panicking with a *MalformedError if n
// does not have exactly one child. Used for <expr> nodes, which the AST
// schema guarantees contain exactly one of literal/var/block/send.
func Only(n Node) Node {
	children := n.Children()
	if len(children) != 1 {
		panic(&MalformedError{Node: n, Attr: "(single child)"})
	}
	return children[0]
}

// MalformedError reports an AST node the core cannot use: a required
// attribute is missing, an "order" attribute does not parse as an
// integer, or (Attr "(single child)") an <expr> does not have exactly one
// child. Error's text says "missing attribute" in every case.
type MalformedError struct {
	Node Node
	Attr string
}

func (e *MalformedError) Error() string {
	return "malformed AST: <" + e.Node.Tag() + "> missing attribute \"" + e.Attr + "\""
}
