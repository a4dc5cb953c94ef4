package scanner

// Cursor primitives: position-advancing helpers over the pattern text. Each
// one is called exactly where its triggering character was seen and returns
// the position just past the construct it skips. They tolerate truncated
// input by clamping to the end of the pattern; malformed constructs are the
// engine compiler's problem, not re-validated here.

// skipEscape returns the position just past the escape sequence starting at
// pos, where pattern[pos] is the backslash. \Q opens a quoted literal that
// runs to the matching \E.
func skipEscape(pattern string, pos int) int {
	if pos+1 >= len(pattern) {
		return len(pattern)
	}
	if pattern[pos+1] == 'Q' {
		return skipQuotedLiteral(pattern, pos+2)
	}
	return pos + 2
}

// skipQuotedLiteral, starting just after \Q, returns the position just after
// the next \E, or the end of the pattern when the quoting is unterminated.
func skipQuotedLiteral(pattern string, pos int) int {
	for pos < len(pattern) {
		if pattern[pos] == '\\' && pos+1 < len(pattern) && pattern[pos+1] == 'E' {
			return pos + 2
		}
		pos++
	}
	return pos
}

// skipBracketClass, starting just after '[', returns the position just after
// the matching ']'. Bracket classes may nest further bracket syntax and
// contain escapes.
func skipBracketClass(pattern string, pos int) int {
	depth := 1
	for pos < len(pattern) {
		switch pattern[pos] {
		case '\\':
			pos = skipEscape(pattern, pos)
		case '[':
			depth++
			pos++
		case ']':
			depth--
			pos++
			if depth == 0 {
				return pos
			}
		default:
			pos++
		}
	}
	return pos
}

// matchingParenEnd, starting just after a group's opening delimiter, returns
// the position just after the ')' that closes it. Escapes, quoted regions,
// bracket classes and nested groups are skipped as whole units.
func matchingParenEnd(pattern string, pos int) int {
	for pos < len(pattern) {
		switch pattern[pos] {
		case '\\':
			pos = skipEscape(pattern, pos)
		case '[':
			pos = skipBracketClass(pattern, pos+1)
		case '(':
			pos = matchingParenEnd(pattern, pos+1)
		case ')':
			return pos + 1
		default:
			pos++
		}
	}
	return pos
}
