package runtime

// Built-in class names.
const (
	ClassObject  = "Object"
	ClassNil     = "Nil"
	ClassTrue    = "True"
	ClassFalse   = "False"
	ClassInteger = "Integer"
	ClassString  = "String"
	ClassBlock   = "Block"
)

// BuiltinParents maps every built-in class to its fixed parent. Object has
// none.
var BuiltinParents = map[string]string{
	ClassNil:     ClassObject,
	ClassTrue:    ClassObject,
	ClassFalse:   ClassObject,
	ClassInteger: ClassObject,
	ClassString:  ClassObject,
	ClassBlock:   ClassObject,
}

// BuiltinNames lists every built-in class, Object first.
var BuiltinNames = []string{
	ClassObject, ClassNil, ClassTrue, ClassFalse, ClassInteger, ClassString, ClassBlock,
}
