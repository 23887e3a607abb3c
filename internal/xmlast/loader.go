// Package xmlast loads the SOL25 XML AST document into the interpreter
// core's internal/ast.Node abstraction.
//
// This is kept as a separate collaborator from the evaluation core: the
// core never imports encoding/xml itself, it only depends on
// internal/ast.Node. Keeping the conversion in its own package means
// swapping the concrete AST source (a different serialization, a
// test-built tree, ...) never touches the evaluator or dispatcher.
package xmlast

import (
	"encoding/xml"
	"fmt"
	"io"

	"github.com/sol25-lang/sol25/internal/ast"
)

// rawElement mirrors an arbitrary XML element generically, using
// xml.Name-keyed attributes and recursively-typed children. encoding/xml
// supports this via the standard "any element" idiom: a struct field of
// type []rawElement tagged ",any" captures every child regardless of name.
type rawElement struct {
	XMLName  xml.Name
	Attrs    []xml.Attr   `xml:",any,attr"`
	Children []rawElement `xml:",any"`
}

// Load parses an XML document from r and returns its root element as an
// ast.Node tree.
func Load(r io.Reader) (ast.Node, error) {
	dec := xml.NewDecoder(r)
	var root rawElement
	if err := dec.Decode(&root); err != nil {
		return nil, fmt.Errorf("xmlast: parse: %w", err)
	}
	return convert(&root), nil
}

func convert(e *rawElement) ast.Node {
	attrs := make(map[string]string, len(e.Attrs))
	for _, a := range e.Attrs {
		attrs[a.Name.Local] = a.Value
	}

	children := make([]ast.Node, 0, len(e.Children))
	for i := range e.Children {
		children = append(children, convert(&e.Children[i]))
	}

	return ast.NewNode(e.XMLName.Local, attrs, children...)
}
