package scanner

// Analyze walks the pattern once, left to right, and returns the Schema of
// its capturing groups.
//
// The pass maintains a single optionality-depth counter. Zero means the next
// group encountered is not yet known to be conditionally reached; positive
// means the scan is inside a construct whose own occurrence is not
// guaranteed, so every group opened there is Optional regardless of its own
// quantifier. A closing ')' decrements the counter, floored at zero. The
// floor makes a plain counter sound here: on close we only need to know that
// at least one optional context was left, never which one, so no stack of
// per-level flags is kept.
//
// Analyze assumes the pattern has already been accepted by the engine's
// compiler and does not re-validate syntax.
func Analyze(pattern string) Schema {
	var slots []Slot

	depth := 0
	if hasTopLevelAlternation(pattern, 0, len(pattern)) {
		depth = 1
	}

	pos := 0
	for pos < len(pattern) {
		switch pattern[pos] {
		case '\\':
			pos = skipEscape(pattern, pos)
		case '[':
			pos = skipBracketClass(pattern, pos+1)
		case ')':
			if depth > 0 {
				depth--
			}
			pos++
		case '(':
			// matchingParenEnd is lookahead only; the scan still descends
			// into the group body character by character.
			end := matchingParenEnd(pattern, pos+1)
			capturing, name := isCapturing(pattern, pos+1)

			switch {
			case depth > 0:
				// Already inside an optional context: conditionally
				// reached no matter how the group itself is quantified.
				if capturing {
					slots = append(slots, Slot{Index: len(slots) + 1, Kind: Optional, Name: name})
				}
				depth++
			case hasZeroOccurrenceQuantifier(pattern, end, len(pattern)):
				// The group's whole span may be skipped.
				if capturing {
					slots = append(slots, Slot{Index: len(slots) + 1, Kind: Optional, Name: name})
				}
				depth = 1
			default:
				if capturing {
					slots = append(slots, Slot{Index: len(slots) + 1, Kind: Required, Name: name})
				}
				// If the group's own body branches into alternatives,
				// interior groups inherit optionality.
				if hasTopLevelAlternation(pattern, pos+1, len(pattern)) {
					depth = 1
				}
			}
			pos++
		default:
			pos++
		}
	}

	return Schema{Slots: slots, Count: len(slots)}
}
