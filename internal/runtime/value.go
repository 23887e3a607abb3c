// Package runtime implements the SOL25 value model: the six value
// variants (Nil, True, False, Integer, String, Block) plus user-defined
// instances, their dynamic class names, their attribute tables, and the
// native implementations of the built-in selector catalog.
package runtime

// Value is a runtime SOL25 object. Every concrete type in this package
// implements it: the three singletons, Integer, String, Block, and
// ObjectInstance.
//
// Every variant - not only user instances - carries a dynamic class name
// and an attribute table, since new/from: may refine any built-in's
// dynamic class to a user-defined subclass name.
type Value interface {
	// ClassName returns the dynamic class name used for method lookup,
	// DNU messages, and introspection.
	ClassName() string

	// GetAttr reads an attribute. ok is false if the attribute was never
	// written.
	GetAttr(name string) (v Value, ok bool)

	// SetAttr writes an attribute, creating it on first write. It returns
	// false if this value does not support attributes at all (the three
	// singletons), in which case the dispatcher's attribute-write step
	// must fall through to DNU (code 51) instead of succeeding.
	SetAttr(name string, v Value) bool

	// HasAttr reports whether the named attribute has been written.
	HasAttr(name string) bool

	// RangeAttrs calls fn once per written attribute. Used by `from:` to
	// copy every attribute of its argument onto the fresh instance.
	RangeAttrs(fn func(name string, v Value))
}

// AttrTable is the attribute storage embedded by every Value variant
// except the three singletons. Attributes are created on first write.
type AttrTable struct {
	attrs map[string]Value
}

func (t *AttrTable) GetAttr(name string) (Value, bool) {
	if t.attrs == nil {
		return nil, false
	}
	v, ok := t.attrs[name]
	return v, ok
}

func (t *AttrTable) SetAttr(name string, v Value) bool {
	if t.attrs == nil {
		t.attrs = make(map[string]Value)
	}
	t.attrs[name] = v
	return true
}

func (t *AttrTable) HasAttr(name string) bool {
	_, ok := t.attrs[name]
	return ok
}

func (t *AttrTable) RangeAttrs(fn func(name string, v Value)) {
	for name, v := range t.attrs {
		fn(name, v)
	}
}

// noAttrs is embedded by the three singletons: they carry no attribute
// storage, and writing one is rejected so the dispatcher's
// attribute-write fallback can never succeed on them.
type noAttrs struct{}

func (noAttrs) GetAttr(string) (Value, bool)        { return nil, false }
func (noAttrs) SetAttr(string, Value) bool          { return false }
func (noAttrs) HasAttr(string) bool                 { return false }
func (noAttrs) RangeAttrs(func(string, Value))      {}

// IsTruthy reports whether v is the True singleton. It is not a general
// coercion, SOL25 has none.
func IsTruthy(v Value) bool {
	return v == True
}
