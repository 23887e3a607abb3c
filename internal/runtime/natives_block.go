package runtime

// blockNatives only overrides isBlock; the value/value:/value:value:...
// family is handled directly by the dispatcher's precedence ladder, not
// through this table, because the expected arity varies with the
// selector's colon count rather than being fixed per selector name.
var blockNatives = map[string]NativeFunc{
	"isBlock": nativeConstTrue,
}
