package runtime

import "fmt"

// ObjectInstance is a user-defined (or plain Object-rooted) instance
// carrying a mapping from attribute names to Values. There are no
// destructors or reference counting to manage: Values are shared by plain
// Go reference and reclaimed by the Go garbage collector.
type ObjectInstance struct {
	AttrTable
	class string
}

// NewObject constructs a fresh instance with the given dynamic class name
// and no attributes.
func NewObject(className string) *ObjectInstance {
	return &ObjectInstance{class: className}
}

func (o *ObjectInstance) ClassName() string { return o.class }

func (o *ObjectInstance) String() string {
	return fmt.Sprintf("a %s", o.class)
}
