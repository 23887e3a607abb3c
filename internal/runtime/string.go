package runtime

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// StringValue is a SOL25 string: a sequence of Unicode code points. The
// Go carrier is a UTF-8 string normalized to NFC at construction time.
// Normalizing once at construction, rather than per-operation, keeps
// value-equality and code-point counting consistent regardless of how the
// XML AST encoded an accented character (precomposed vs. a base letter
// plus combining mark).
type StringValue struct {
	AttrTable
	class string
	S     string
}

// NewString constructs a String with the built-in dynamic class.
func NewString(s string) *StringValue {
	return &StringValue{class: ClassString, S: norm.NFC.String(s)}
}

// NewStringAs constructs a String carrying className as its dynamic class,
// for `new`/`from:` on a user-defined String subclass.
func NewStringAs(className, s string) *StringValue {
	return &StringValue{class: className, S: norm.NFC.String(s)}
}

func (v *StringValue) ClassName() string { return v.class }

func (v *StringValue) String() string { return v.S }

// RuneLen returns the code-point length, not the byte length.
func (v *StringValue) RuneLen() int {
	return utf8.RuneCountInString(v.S)
}

// Runes returns the code points as a slice, for 1-based slicing by native
// selectors.
func (v *StringValue) Runes() []rune {
	return []rune(v.S)
}

// unescape decodes the three escape sequences recognized at print time:
// \\, \', and \n. Any other backslash sequence is left verbatim - the
// AST loader is expected to have rejected any other escape already.
func unescape(s string) string {
	if !strings.ContainsRune(s, '\\') {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		if runes[i] == '\\' && i+1 < len(runes) {
			switch runes[i+1] {
			case '\\':
				b.WriteByte('\\')
				i++
				continue
			case '\'':
				b.WriteByte('\'')
				i++
				continue
			case 'n':
				b.WriteByte('\n')
				i++
				continue
			}
		}
		b.WriteRune(runes[i])
	}
	return b.String()
}
