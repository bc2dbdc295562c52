// Package symbols validates scripting define symbol names.
package symbols

// IsValid reports whether name is a legal define symbol: a letter or
// underscore followed by letters, digits, or underscores.
func IsValid(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		switch {
		case r == '_':
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
