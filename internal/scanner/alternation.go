package scanner

// hasTopLevelAlternation reports whether a '|' occurs between from and bound
// outside any nested group. Escapes, quoted regions, bracket classes and
// parenthesized groups are skipped as opaque units; their interiors are
// never inspected at this call. An unmatched ')' ends the current group's
// body, so the scan answers false the moment one is seen.
func hasTopLevelAlternation(pattern string, from, bound int) bool {
	if bound > len(pattern) {
		bound = len(pattern)
	}
	pos := from
	for pos < bound {
		switch pattern[pos] {
		case '\\':
			pos = skipEscape(pattern, pos)
		case '[':
			pos = skipBracketClass(pattern, pos+1)
		case '(':
			pos = matchingParenEnd(pattern, pos+1)
		case ')':
			return false
		case '|':
			return true
		default:
			pos++
		}
	}
	return false
}
