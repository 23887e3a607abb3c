package runtime

// NilValue, TrueValue and FalseValue back the three process-wide
// singletons: exactly one instance each of Nil, True and False exists.
// Each holds its own dynamic class name so that a user-defined subclass
// of one of them (produced by new/from: - see ClassName's doc) can still
// satisfy the Value interface without a separate type per subclass depth.
type NilValue struct {
	noAttrs
	class string
}

func (v *NilValue) ClassName() string { return v.class }

type TrueValue struct {
	noAttrs
	class string
}

func (v *TrueValue) ClassName() string { return v.class }

type FalseValue struct {
	noAttrs
	class string
}

func (v *FalseValue) ClassName() string { return v.class }

// Nil, True and False are the three canonical singletons. Identity
// comparisons in the dispatcher use Go pointer equality against these
// exact values; a subclass instance produced by `new`/`from:` is a
// distinct *NilValue/*TrueValue/*FalseValue and is never identicalTo: the
// canonical singleton - the singletons themselves are never subclassed
// in place.
var (
	Nil   = &NilValue{class: ClassNil}
	True  = &TrueValue{class: ClassTrue}
	False = &FalseValue{class: ClassFalse}
)

// BoolFor returns the True or False singleton for a native Go bool. Native
// routines that need to hand back a SOL25 boolean (equalTo:, greaterThan:,
// ...) go through this helper.
func BoolFor(b bool) Value {
	if b {
		return True
	}
	return False
}

// NewNilLike, NewTrueLike and NewFalseLike construct fresh non-singleton
// instances of the respective built-in, for use by `new`/`from:` on a
// subclass. className is the subclass's dynamic class name.
func NewNilLike(className string) Value   { return &NilValue{class: className} }
func NewTrueLike(className string) Value  { return &TrueValue{class: className} }
func NewFalseLike(className string) Value { return &FalseValue{class: className} }
