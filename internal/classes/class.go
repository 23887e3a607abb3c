// Package classes implements the class registry: class definitions,
// their parent links, and method-resolution-order lookup. The registry
// never executes anything; it is the single source of truth for
// inheritance relations that the evaluator and dispatcher consult.
package classes

import (
	"github.com/sol25-lang/sol25/internal/ast"
	"github.com/sol25-lang/sol25/internal/runtime"
)

// Definition is a class definition: name, parent name, method table, and
// a flag marking it built-in. Built-ins carry an empty method table;
// their behavior lives in runtime.Natives instead.
type Definition struct {
	Name       string
	ParentName string // "" only for Object
	Methods    map[string]ast.Node // selector -> <method> node
	Builtin    bool
}

// MethodBody returns the <block> child of the named method, if this class
// defines that selector directly (not via inheritance).
func (d *Definition) MethodBody(selector string) (ast.Node, bool) {
	m, ok := d.Methods[selector]
	if !ok {
		return nil, false
	}
	return m.Child("block"), true
}

// builtinDefinition constructs the fixed Definition for one of the seven
// built-in classes.
func builtinDefinition(name string) *Definition {
	parent := runtime.BuiltinParents[name] // "" for Object
	return &Definition{Name: name, ParentName: parent, Methods: map[string]ast.Node{}, Builtin: true}
}
