package classes

import (
	"fmt"

	"github.com/sol25-lang/sol25/internal/ast"
	"github.com/sol25-lang/sol25/internal/runtime"
)

// Registry holds every known class definition and answers method
// resolution order queries. It is read-only once Load has run.
type Registry struct {
	classes map[string]*Definition
}

// NewRegistry constructs a Registry pre-populated with the seven built-in
// classes.
func NewRegistry() *Registry {
	r := &Registry{classes: make(map[string]*Definition)}
	for _, name := range runtime.BuiltinNames {
		r.classes[name] = builtinDefinition(name)
	}
	return r
}

// Register adds a class definition. A duplicate name is a semantic error
// the loader surfaces as an internal error (code 99): the parser is
// expected to have rejected duplicate class names before the core ever
// sees the AST.
func (r *Registry) Register(d *Definition) error {
	if _, exists := r.classes[d.Name]; exists {
		return fmt.Errorf("duplicate class %q", d.Name)
	}
	r.classes[d.Name] = d
	return nil
}

// Find returns the named class definition, or (nil, false).
func (r *Registry) Find(name string) (*Definition, bool) {
	d, ok := r.classes[name]
	return d, ok
}

// Parent returns the parent Definition of name, or (nil, false) if name is
// Object or unknown.
func (r *Registry) Parent(name string) (*Definition, bool) {
	d, ok := r.classes[name]
	if !ok || d.ParentName == "" {
		return nil, false
	}
	return r.Find(d.ParentName)
}

// MRO returns the method resolution order starting at className,
// following parent-name up to and including Object. An unknown className
// or a chain that fails to terminate at Object is reported via ok=false -
// the latter is an internal invariant violation (a cyclic or broken
// parent chain), which the AST loader is expected to prevent.
func (r *Registry) MRO(className string) ([]*Definition, bool) {
	var chain []*Definition
	seen := make(map[string]bool)
	cur := className
	for cur != "" {
		if seen[cur] {
			return nil, false // broken/cyclic chain: internal error
		}
		seen[cur] = true
		d, ok := r.classes[cur]
		if !ok {
			return nil, false
		}
		chain = append(chain, d)
		cur = d.ParentName
	}
	if len(chain) == 0 || chain[len(chain)-1].Name != runtime.ClassObject {
		return nil, false // chain ends somewhere other than Object
	}
	return chain, true
}

// FindMethod walks the MRO from startClass looking for selector, returning
// the defining class and its method body node. Returns ok=false if no
// class in the chain defines selector.
func (r *Registry) FindMethod(startClass, selector string) (owner *Definition, body ast.Node, ok bool) {
	mro, valid := r.MRO(startClass)
	if !valid {
		return nil, nil, false
	}
	for _, d := range mro {
		if m, ok := d.MethodBody(selector); ok {
			return d, m, true
		}
	}
	return nil, nil, false
}

// FindNative walks the MRO from startClass looking for a built-in native
// implementing selector on the receiver's class or any built-in ancestor
// in its MRO. Returns the class name that supplied it.
func (r *Registry) FindNative(startClass, selector string) (ownerClass string, fn runtime.NativeFunc, ok bool) {
	mro, valid := r.MRO(startClass)
	if !valid {
		return "", nil, false
	}
	for _, d := range mro {
		if fn, ok := runtime.Lookup(d.Name, selector); ok {
			return d.Name, fn, true
		}
	}
	return "", nil, false
}

// IsDescendantOf reports whether className's MRO includes ancestorName
// (inclusive - a class is its own descendant for this purpose).
func (r *Registry) IsDescendantOf(className, ancestorName string) bool {
	mro, ok := r.MRO(className)
	if !ok {
		return false
	}
	for _, d := range mro {
		if d.Name == ancestorName {
			return true
		}
	}
	return false
}

// IsAncestorOf reports whether ancestorName appears in className's MRO -
// i.e. className descends from ancestorName (inclusive, as in
// IsDescendantOf). This is IsDescendantOf with swapped arguments; kept as a
// distinct name at call sites in the dispatcher's from: check for
// readability ("is arg an ancestor of target, or a descendant").
func (r *Registry) IsAncestorOf(ancestorName, className string) bool {
	return r.IsDescendantOf(className, ancestorName)
}

// BuiltinAncestor returns the nearest built-in class name in className's
// MRO (Integer, String, Block, Nil, True, False, or Object). Every class
// has one since every chain terminates at Object.
func (r *Registry) BuiltinAncestor(className string) (string, bool) {
	mro, ok := r.MRO(className)
	if !ok {
		return "", false
	}
	for _, d := range mro {
		if d.Builtin {
			return d.Name, true
		}
	}
	return "", false
}
