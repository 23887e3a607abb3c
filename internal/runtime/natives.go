package runtime

// Natives holds, per built-in class name, the selector -> NativeFunc
// table the dispatcher consults when a user method lookup misses. The
// class registry (classes.Registry.FindNative) walks the MRO starting at
// the receiver's dynamic class and looks up Natives[className] for each
// class name visited, so a native
// defined on e.g. Integer is reachable from a user-defined Integer
// subclass without the subclass itself appearing in this map. The map is
// keyed by the selector string itself, e.g. Natives["Integer"]["plus:"].
var Natives = map[string]map[string]NativeFunc{
	ClassObject:  objectNatives,
	ClassNil:     nilNatives,
	ClassTrue:    trueNatives,
	ClassFalse:   falseNatives,
	ClassInteger: integerNatives,
	ClassString:  stringNatives,
	ClassBlock:   blockNatives,
}

// Lookup finds the native routine for selector on className, or (nil,
// false) if className has no such native. The caller still needs to try
// className's parent classes to reach a native defined on a built-in
// ancestor - that walk lives in classes.Registry.FindNative, since the
// registry owns the parent links.
func Lookup(className, selector string) (NativeFunc, bool) {
	table, ok := Natives[className]
	if !ok {
		return nil, false
	}
	fn, ok := table[selector]
	return fn, ok
}
