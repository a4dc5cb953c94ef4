package scanner

import "strings"

// isCapturing decides whether the group whose body starts at pos (the
// position just after the '(') captures, and returns its inline name when it
// carries one.
//
// Recognized forms:
//
//	(...)        capturing, unnamed
//	(?P<name>..) capturing, named (Go/Python syntax)
//	(?<name>..)  capturing, named (.NET/Java syntax, accepted by Go 1.22+)
//	(?<=..)      lookbehind assertion, non-capturing
//	(?<!..)      negative lookbehind, non-capturing
//	(?...)       anything else after '?' is a non-capturing or lookaround
//	             construct (flags, (?:, lookaheads)
func isCapturing(pattern string, pos int) (capturing bool, name string) {
	if pos >= len(pattern) || pattern[pos] != '?' {
		return true, ""
	}
	rest := pattern[pos+1:]
	switch {
	case strings.HasPrefix(rest, "P<"):
		return true, groupName(pattern, pos+3)
	case strings.HasPrefix(rest, "<="), strings.HasPrefix(rest, "<!"):
		return false, ""
	case strings.HasPrefix(rest, "<"):
		return true, groupName(pattern, pos+2)
	default:
		return false, ""
	}
}

// groupName returns the text from pos up to the closing '>', or "" when the
// name is unterminated (the engine rejects such patterns before analysis).
func groupName(pattern string, pos int) string {
	if end := strings.IndexByte(pattern[pos:], '>'); end >= 0 {
		return pattern[pos : pos+end]
	}
	return ""
}

// hasZeroOccurrenceQuantifier reports whether the character at pos, just
// after a group's closing ')', quantifies the group to permit zero
// occurrences. '?' and '*' always do. A '{' counts only when the first
// character after it is the digit '0', which covers {0}, {0,} and {0,n}
// without attempting full numeric-range parsing; a malformed bound such as
// {0,abc} is therefore classified optional. That approximation is part of
// the supported grammar subset and is relied on by callers, so do not
// tighten it.
func hasZeroOccurrenceQuantifier(pattern string, pos, bound int) bool {
	if pos >= bound || pos >= len(pattern) {
		return false
	}
	switch pattern[pos] {
	case '?', '*':
		return true
	case '{':
		return pos+1 < len(pattern) && pattern[pos+1] == '0'
	}
	return false
}
