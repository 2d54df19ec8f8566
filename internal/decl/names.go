package decl

// maxNameLen is the Fortran 2008 limit on identifier length.
const maxNameLen = 63

// IsFortranName reports whether s is a valid Fortran identifier:
// a letter followed by letters, digits or underscores, at most 63 long.
func IsFortranName(s string) bool {
	if s == "" || len(s) > maxNameLen || !isLetter(s[0]) {
		return false
	}

	for i := 1; i < len(s); i++ {
		if !isLetter(s[i]) && !isDigit(s[i]) && s[i] != '_' {
			return false
		}
	}

	return true
}

// IsBindName reports whether s is usable as a bind(c) label, that is a C
// identifier.
func IsBindName(s string) bool {
	if s == "" || (!isLetter(s[0]) && s[0] != '_') {
		return false
	}

	for i := 1; i < len(s); i++ {
		if !isLetter(s[i]) && !isDigit(s[i]) && s[i] != '_' {
			return false
		}
	}

	return true
}

func isLetter(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}
