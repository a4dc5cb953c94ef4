package recap

import "fmt"

// Field is one slot's value in a Record: the group text and whether the
// group participated in the match. For a Required slot Present is always
// true once extraction has succeeded.
type Field struct {
	Value   string
	Present bool
}

// Record is the schema-checked view of one Match: a fixed-arity field list
// whose shape mirrors the Pattern's Schema. Records are only produced by
// Extract, so holding one means the Required/Optional contract has been
// verified.
type Record struct {
	schema Schema
	fields []Field
}

// Extract validates m against the Pattern's Schema and assembles the
// structured result.
//
// The two failure kinds are programming-error class, not input errors: a
// *ShapeMismatchError means the raw group count disagrees with the Schema,
// and a *RequiredGroupAbsentError means a Required slot received no value.
// Neither can be fixed by retrying; both indicate a gap in the analyzer or
// its supported-grammar assumptions.
func (p *Pattern) Extract(m *Match) (*Record, error) {
	fields := m.groupFields()
	if len(fields) != p.schema.Count {
		return nil, &ShapeMismatchError{Want: p.schema.Count, Got: len(fields)}
	}
	for _, slot := range p.schema.Slots {
		if slot.Kind == RequiredSlot && !fields[slot.Index-1].Present {
			return nil, &RequiredGroupAbsentError{Ordinal: slot.Index}
		}
	}
	return &Record{schema: p.schema, fields: fields}, nil
}

// FindRecord is Find followed by Extract: the leftmost match anywhere in
// input as a checked Record. The boolean reports whether the pattern
// matched; the error reports extraction defects only.
func (p *Pattern) FindRecord(input string) (*Record, bool, error) {
	m, ok := p.Find(input)
	if !ok {
		return nil, false, nil
	}
	rec, err := p.Extract(m)
	if err != nil {
		return nil, true, err
	}
	return rec, true, nil
}

// Len returns the number of fields, which always equals the Schema count.
func (r *Record) Len() int { return len(r.fields) }

// Required returns the value of a Required slot. It panics when ord does not
// name a Required slot; that is caller misuse of the Schema, analogous to an
// out-of-range index.
func (r *Record) Required(ord int) string {
	slot, ok := r.schema.Slot(ord)
	if !ok {
		panic(fmt.Sprintf("recap: Required(%d): no such slot", ord))
	}
	if slot.Kind != RequiredSlot {
		panic(fmt.Sprintf("recap: Required(%d): slot is optional, use Optional", ord))
	}
	return r.fields[ord-1].Value
}

// Optional returns the value of slot ord and whether the group participated.
// It accepts any slot: a Required slot simply always reports present.
func (r *Record) Optional(ord int) (string, bool) {
	if ord < 1 || ord > len(r.fields) {
		return "", false
	}
	return r.fields[ord-1].Value, r.fields[ord-1].Present
}

// Field returns slot ord's field. The zero Field is returned for ordinals
// out of range.
func (r *Record) Field(ord int) Field {
	if ord < 1 || ord > len(r.fields) {
		return Field{}
	}
	return r.fields[ord-1]
}

// Fields returns a copy of all fields in ordinal order.
func (r *Record) Fields() []Field {
	out := make([]Field, len(r.fields))
	copy(out, r.fields)
	return out
}
