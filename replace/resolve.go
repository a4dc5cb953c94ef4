package replace

import "fmt"

// UnknownNameError reports a template reference to a group name the schema
// does not carry.
type UnknownNameError struct {
	Name string
}

func (e *UnknownNameError) Error() string {
	return fmt.Sprintf("replace: no capture group named %q", e.Name)
}

// OrdinalRangeError reports a template reference to a group ordinal beyond
// the schema's group count.
type OrdinalRangeError struct {
	Ordinal int
	Max     int
}

func (e *OrdinalRangeError) Error() string {
	return fmt.Sprintf("replace: group reference $%d out of range (pattern has %d groups)", e.Ordinal, e.Max)
}

// Resolved is a Template whose references have all been checked against a
// schema: every ordinal is in range and every name maps to an ordinal. A
// Resolved is immutable and may be reused across matches and goroutines.
type Resolved struct {
	segments []segment
}

// Resolve checks the template against a pattern with the given group count,
// using ordinalOf to map reference names to ordinals. Name references are
// rewritten to ordinal references so expansion never needs the name table.
func (t *Template) Resolve(groups int, ordinalOf func(name string) (int, bool)) (*Resolved, error) {
	out := make([]segment, 0, len(t.segments))
	for _, seg := range t.segments {
		switch seg.kind {
		case segName:
			ord, ok := ordinalOf(seg.text)
			if !ok {
				return nil, &UnknownNameError{Name: seg.text}
			}
			seg = segment{kind: segOrdinal, ord: ord}
		case segOrdinal:
			if seg.ord > groups {
				return nil, &OrdinalRangeError{Ordinal: seg.ord, Max: groups}
			}
		}
		out = append(out, seg)
	}
	return &Resolved{segments: out}, nil
}

// Expand appends the template's expansion against one match to dst and
// returns the extended slice. group reports the text of a group ordinal
// (0 = full match) and whether it participated; an absent group expands to
// the empty string.
func (r *Resolved) Expand(dst []byte, group func(ord int) (string, bool)) []byte {
	for _, seg := range r.segments {
		if seg.kind == segLiteral {
			dst = append(dst, seg.text...)
			continue
		}
		if value, ok := group(seg.ord); ok {
			dst = append(dst, value...)
		}
	}
	return dst
}
