package classes

import (
	"fmt"

	"github.com/sol25-lang/sol25/internal/ast"
)

// Load extracts every <class> child of the <program> root into r. For
// each method it records only the selector and the method node itself;
// MethodBody resolves the <block> child lazily.
//
// Duplicate selectors within one class are reported as an internal
// error: the AST is expected to have already rejected them, so the core
// treats it as a defect in the AST source rather than a SOL25 program
// error.
func Load(r *Registry, program ast.Node) error {
	for _, classNode := range program.ChildrenByTag("class") {
		name := ast.MustAttr(classNode, "name")
		parent := ast.MustAttr(classNode, "parent")

		methods := make(map[string]ast.Node)
		for _, methodNode := range classNode.ChildrenByTag("method") {
			selector := ast.MustAttr(methodNode, "selector")
			if _, dup := methods[selector]; dup {
				return fmt.Errorf("class %q: duplicate method selector %q", name, selector)
			}
			methods[selector] = methodNode
		}

		if err := r.Register(&Definition{Name: name, ParentName: parent, Methods: methods}); err != nil {
			return err
		}
	}
	return nil
}
