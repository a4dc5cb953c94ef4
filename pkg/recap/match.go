package recap

// Match is the result of one successful match attempt: the overall matched
// span plus, per capturing-group ordinal, either a substring value or "did
// not participate". A Match keeps a reference to the input it was produced
// from, so group text is sliced lazily without copying.
type Match struct {
	pattern *Pattern
	input   string
	spans   []int // stdlib submatch-index layout: 2*(NumGroups+1) entries, -1 = absent
}

// Start returns the byte offset of the start of the overall match.
func (m *Match) Start() int { return m.spans[0] }

// End returns the byte offset just past the overall match.
func (m *Match) End() int { return m.spans[1] }

// Text returns the overall matched text (group 0).
func (m *Match) Text() string { return m.input[m.spans[0]:m.spans[1]] }

// Input returns the full input the match was found in.
func (m *Match) Input() string { return m.input }

// Group returns the text of group ord and whether the group participated in
// the match. Ordinal 0 is the overall match; ordinals out of range report
// not-participated.
func (m *Match) Group(ord int) (string, bool) {
	if ord < 0 || 2*ord+1 >= len(m.spans) {
		return "", false
	}
	start, end := m.spans[2*ord], m.spans[2*ord+1]
	if start < 0 {
		return "", false
	}
	return m.input[start:end], true
}

// GroupByName returns the text of the named group and whether it
// participated. A name the pattern does not carry fails with
// *UnknownGroupNameError.
func (m *Match) GroupByName(name string) (string, bool, error) {
	ord, ok := m.pattern.ordinalOf(name)
	if !ok {
		return "", false, &UnknownGroupNameError{Name: name}
	}
	value, present := m.Group(ord)
	return value, present, nil
}

// groupFields collects the raw per-ordinal values (group 0 excluded) for the
// schema-checked extractor.
func (m *Match) groupFields() []Field {
	count := len(m.spans)/2 - 1
	fields := make([]Field, count)
	for ord := 1; ord <= count; ord++ {
		fields[ord-1].Value, fields[ord-1].Present = m.Group(ord)
	}
	return fields
}
