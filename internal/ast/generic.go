package ast

import (
	"sort"
	"strconv"
)

// GenericNode is a plain, in-memory Node implementation. The xmlast loader
// builds a tree of these; tests build them directly to avoid round-tripping
// through XML text.
type GenericNode struct {
	tag      string
	attrs    map[string]string
	children []Node
}

// NewNode constructs a GenericNode with the given tag, attributes, and
// children. attrs may be nil.
func NewNode(tag string, attrs map[string]string, children ...Node) *GenericNode {
	if attrs == nil {
		attrs = map[string]string{}
	}
	return &GenericNode{tag: tag, attrs: attrs, children: children}
}

func (n *GenericNode) Tag() string { return n.tag }

func (n *GenericNode) Attr(name string) (string, bool) {
	v, ok := n.attrs[name]
	return v, ok
}

func (n *GenericNode) Children() []Node { return n.children }

func (n *GenericNode) ChildrenByTag(tag string) []Node {
	var out []Node
	for _, c := range n.children {
		if c.Tag() == tag {
			out = append(out, c)
		}
	}
	return out
}

func (n *GenericNode) Child(tag string) Node {
	for _, c := range n.children {
		if c.Tag() == tag {
			return c
		}
	}
	return nil
}

// AddChild appends a child node, preserving document order.
func (n *GenericNode) AddChild(c Node) {
	n.children = append(n.children, c)
}

// ByOrder sorts nodes ascending by their integer "order" attribute. It
// panics with a *MalformedError if any node lacks a parseable "order"
// attribute, since the AST loader is expected to assign one to every
// parameter/assign/arg child.
func ByOrder(nodes []Node) []Node {
	sorted := make([]Node, len(nodes))
	copy(sorted, nodes)
	sort.SliceStable(sorted, func(i, j int) bool {
		return orderOf(sorted[i]) < orderOf(sorted[j])
	})
	return sorted
}

func orderOf(n Node) int {
	raw := MustAttr(n, "order")
	v, err := strconv.Atoi(raw)
	if err != nil {
		panic(&MalformedError{Node: n, Attr: "order"})
	}
	return v
}
