package classes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sol25-lang/sol25/internal/ast"
	"github.com/sol25-lang/sol25/internal/runtime"
)

func TestNewRegistrySeedsBuiltins(t *testing.T) {
	r := NewRegistry()
	for _, name := range runtime.BuiltinNames {
		d, ok := r.Find(name)
		require.True(t, ok, name)
		assert.True(t, d.Builtin)
	}
	obj, _ := r.Find(runtime.ClassObject)
	assert.Equal(t, "", obj.ParentName)
}

func TestRegisterRejectsDuplicateName(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(&Definition{Name: "A", ParentName: runtime.ClassObject}))
	err := r.Register(&Definition{Name: "A", ParentName: runtime.ClassObject})
	assert.Error(t, err)
}

// TestMROOverrideWins checks that when class C inherits from B inherits
// from A, and a selector is defined on C and A but not B, C's definition
// wins for a receiver of class C.
func TestMROOverrideWins(t *testing.T) {
	r := NewRegistry()
	greetMethod := func() ast.Node {
		return ast.NewNode("method", map[string]string{"selector": "greet"},
			ast.NewNode("block", map[string]string{"arity": "0"}))
	}

	require.NoError(t, r.Register(&Definition{
		Name: "A", ParentName: runtime.ClassObject,
		Methods: map[string]ast.Node{"greet": greetMethod()},
	}))
	require.NoError(t, r.Register(&Definition{
		Name: "B", ParentName: "A", Methods: map[string]ast.Node{},
	}))
	require.NoError(t, r.Register(&Definition{
		Name: "C", ParentName: "B",
		Methods: map[string]ast.Node{"greet": greetMethod()},
	}))

	owner, _, ok := r.FindMethod("C", "greet")
	require.True(t, ok)
	assert.Equal(t, "C", owner.Name)

	owner, _, ok = r.FindMethod("B", "greet")
	require.True(t, ok)
	assert.Equal(t, "A", owner.Name)
}

func TestMRODetectsUnknownClass(t *testing.T) {
	r := NewRegistry()
	_, ok := r.MRO("Ghost")
	assert.False(t, ok)
}

func TestIsDescendantAndAncestor(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(&Definition{Name: "Animal", ParentName: runtime.ClassObject}))
	require.NoError(t, r.Register(&Definition{Name: "Dog", ParentName: "Animal"}))

	assert.True(t, r.IsDescendantOf("Dog", "Animal"))
	assert.True(t, r.IsDescendantOf("Dog", "Dog")) // inclusive
	assert.False(t, r.IsDescendantOf("Animal", "Dog"))
	assert.True(t, r.IsAncestorOf("Animal", "Dog"))
}

func TestBuiltinAncestor(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(&Definition{Name: "Counter", ParentName: runtime.ClassInteger}))

	anc, ok := r.BuiltinAncestor("Counter")
	require.True(t, ok)
	assert.Equal(t, runtime.ClassInteger, anc)
}

func TestLoadExtractsClassesAndMethods(t *testing.T) {
	program := ast.NewNode("program", nil,
		ast.NewNode("class", map[string]string{"name": "Main", "parent": runtime.ClassObject},
			ast.NewNode("method", map[string]string{"selector": "run"},
				ast.NewNode("block", map[string]string{"arity": "0"})),
		),
	)

	r := NewRegistry()
	require.NoError(t, Load(r, program))

	d, ok := r.Find("Main")
	require.True(t, ok)
	_, ok = d.MethodBody("run")
	assert.True(t, ok)
}

func TestLoadRejectsDuplicateSelector(t *testing.T) {
	program := ast.NewNode("program", nil,
		ast.NewNode("class", map[string]string{"name": "Main", "parent": runtime.ClassObject},
			ast.NewNode("method", map[string]string{"selector": "run"}, ast.NewNode("block", map[string]string{"arity": "0"})),
			ast.NewNode("method", map[string]string{"selector": "run"}, ast.NewNode("block", map[string]string{"arity": "0"})),
		),
	)

	r := NewRegistry()
	assert.Error(t, Load(r, program))
}
