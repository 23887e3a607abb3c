package engine

// isValidIdentifier reports whether s is a legal attribute name for the
// dispatcher's attribute read/write fallback: non-empty, starts with a
// lowercase letter or underscore, continues with ASCII
// letters/digits/underscores, and is never one of the reserved words.
func isValidIdentifier(s string) bool {
	if s == "" {
		return false
	}
	switch s {
	case "class", "self", "super", "nil", "true", "false":
		return false
	}
	for i, r := range s {
		switch {
		case i == 0:
			if !(r == '_' || (r >= 'a' && r <= 'z')) {
				return false
			}
		default:
			if !(r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')) {
				return false
			}
		}
	}
	return true
}
