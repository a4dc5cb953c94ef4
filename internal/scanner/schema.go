// Package scanner derives the capturing-group schema of a regular expression
// from its source text in a single left-to-right pass.
//
// The scanner never executes the pattern and never re-validates syntax; the
// engine's own compiler is expected to have accepted the text before Analyze
// runs. What it computes is the shape of the results a successful match will
// produce: how many capturing groups there are, in engine numbering order,
// and whether each one is guaranteed a value on every successful match
// (Required) or may not have participated (Optional).
package scanner

// Kind classifies one capturing group's presence guarantee.
type Kind uint8

const (
	// Required groups participate in every successful match.
	Required Kind = iota
	// Optional groups sit inside an alternation branch or a construct
	// quantified to occur zero times, and may not participate.
	Optional
)

// String returns "required" or "optional".
func (k Kind) String() string {
	if k == Required {
		return "required"
	}
	return "optional"
}

// MarshalText implements encoding.TextMarshaler so Kind renders as its
// lowercase word in JSON output.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Slot is the classification of one capturing group.
type Slot struct {
	// Index is the group's 1-based ordinal, matching the engine's own
	// numbering (the textual order of opening parentheses).
	Index int `json:"index"`
	// Kind tags the group Required or Optional.
	Kind Kind `json:"kind"`
	// Name is the group's inline name, or "" for an unnamed group.
	Name string `json:"name,omitempty"`
}

// Schema is the ordered collection of Slots for a pattern. It is computed
// once per pattern, is immutable afterwards, and is safe to share across
// concurrent matches.
type Schema struct {
	Slots []Slot `json:"slots"`
	Count int    `json:"count"`
}

// Slot returns the slot for ordinal ord (1-based) and whether it exists.
func (s Schema) Slot(ord int) (Slot, bool) {
	if ord < 1 || ord > s.Count {
		return Slot{}, false
	}
	return s.Slots[ord-1], true
}
