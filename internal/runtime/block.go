package runtime

import "github.com/sol25-lang/sol25/internal/ast"

// BlockValue is a captured, unevaluated block literal. DefiningSelf is
// the lexical capture of `self` observed when the literal was evaluated;
// it is nullable only for a block literal appearing at top level before
// any self exists. The capture is an owned, always-live handle since a
// Block may outlive the frame that created it.
type BlockValue struct {
	AttrTable
	class        string
	Node         ast.Node
	Arity        int
	DefiningSelf Value
}

// NewBlock constructs a Block literal value.
func NewBlock(node ast.Node, arity int, definingSelf Value) *BlockValue {
	return &BlockValue{class: ClassBlock, Node: node, Arity: arity, DefiningSelf: definingSelf}
}

// NewBlockAs constructs a Block carrying className as its dynamic class,
// for `new`/`from:` on a user-defined Block subclass.
func NewBlockAs(className string, node ast.Node, arity int, definingSelf Value) *BlockValue {
	return &BlockValue{class: className, Node: node, Arity: arity, DefiningSelf: definingSelf}
}

func (v *BlockValue) ClassName() string { return v.class }
