package engine

import (
	"github.com/sol25-lang/sol25/internal/interp/errors"
	"github.com/sol25-lang/sol25/internal/runtime"
)

// dispatchClassMessage handles the only three selectors a class-name
// token understands: new, from:, and String's class-side read.
func (in *Interp) dispatchClassMessage(className, selector string, args []runtime.Value) (runtime.Value, *errors.RuntimeError) {
	switch {
	case selector == "new" && len(args) == 0:
		return in.classNew(className)
	case selector == "from:" && len(args) == 1:
		return in.classFrom(className, args[0])
	case selector == "read" && len(args) == 0 && className == runtime.ClassString:
		return in.classStringRead()
	default:
		return nil, errors.DoesNotUnderstand(className, selector)
	}
}

// classNew builds a fresh instance of className with no attributes. The
// nearest built-in ancestor in its MRO governs the internal carrier type;
// Block cannot be new-ed since a block literal must always come from
// source - there is no default node reference to construct one from.
func (in *Interp) classNew(className string) (runtime.Value, *errors.RuntimeError) {
	if _, ok := in.Registry.Find(className); !ok {
		return nil, errors.Internal("new: unknown class %q", className)
	}
	ancestor, ok := in.Registry.BuiltinAncestor(className)
	if !ok {
		return nil, errors.Internal("new: class %q has no built-in ancestor", className)
	}
	switch ancestor {
	case runtime.ClassInteger:
		return runtime.NewIntegerAs(className, 0), nil
	case runtime.ClassString:
		return runtime.NewStringAs(className, ""), nil
	case runtime.ClassBlock:
		return nil, errors.ValueError("%s may not be instantiated with new", runtime.ClassBlock)
	case runtime.ClassNil:
		return runtime.NewNilLike(className), nil
	case runtime.ClassTrue:
		return runtime.NewTrueLike(className), nil
	case runtime.ClassFalse:
		return runtime.NewFalseLike(className), nil
	default:
		return runtime.NewObject(className), nil
	}
}

// classFrom builds a fresh instance of className copying arg's carrier
// value and every attribute arg carries. arg's class must be className
// itself, an ancestor of it, or a descendant of it; anything else is a
// value error (code 53).
func (in *Interp) classFrom(className string, arg runtime.Value) (runtime.Value, *errors.RuntimeError) {
	argClass := arg.ClassName()
	related := argClass == className ||
		in.Registry.IsAncestorOf(argClass, className) ||
		in.Registry.IsDescendantOf(argClass, className)
	if !related {
		return nil, errors.ValueError("from:: %s is not %s, an ancestor, or a descendant", argClass, className)
	}

	ancestor, ok := in.Registry.BuiltinAncestor(className)
	if !ok {
		return nil, errors.Internal("from:: class %q has no built-in ancestor", className)
	}

	var fresh runtime.Value
	switch ancestor {
	case runtime.ClassInteger:
		iv, ok := arg.(*runtime.IntegerValue)
		if !ok {
			return nil, errors.Internal("from:: %s carrier is not an Integer", argClass)
		}
		fresh = runtime.NewIntegerAs(className, iv.N)
	case runtime.ClassString:
		sv, ok := arg.(*runtime.StringValue)
		if !ok {
			return nil, errors.Internal("from:: %s carrier is not a String", argClass)
		}
		fresh = runtime.NewStringAs(className, sv.S)
	case runtime.ClassBlock:
		bv, ok := arg.(*runtime.BlockValue)
		if !ok {
			return nil, errors.Internal("from:: %s carrier is not a Block", argClass)
		}
		fresh = runtime.NewBlockAs(className, bv.Node, bv.Arity, bv.DefiningSelf)
	case runtime.ClassNil:
		fresh = runtime.NewNilLike(className)
	case runtime.ClassTrue:
		fresh = runtime.NewTrueLike(className)
	case runtime.ClassFalse:
		fresh = runtime.NewFalseLike(className)
	default:
		fresh = runtime.NewObject(className)
	}

	arg.RangeAttrs(func(name string, v runtime.Value) {
		fresh.SetAttr(name, v)
	})
	return fresh, nil
}

// classStringRead implements `String read`: one line of input, or Nil at
// end-of-input.
func (in *Interp) classStringRead() (runtime.Value, *errors.RuntimeError) {
	line, ok := in.IO.ReadLine()
	if !ok {
		return runtime.Nil, nil
	}
	return runtime.NewString(line), nil
}
