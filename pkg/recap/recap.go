// Package recap gives callers a structured, shape-checked view of the
// capturing groups produced by matching text against a regular expression.
//
// Registering a pattern derives its Schema: the count of capturing groups in
// engine numbering order, each classified Required (participates in every
// successful match) or Optional (sits inside an alternation branch or a
// zero-occurrence-quantified construct). The Schema then drives checked
// extraction of per-group values from a Match, so callers never index into a
// raw submatch slice by hand.
//
// Basic usage:
//
//	p, err := recap.Compile(`(\d{4})-(\d{2})-(\d{2})`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	m, ok := p.Find("today is 2004-01-20")
//	if !ok {
//	    return // no match is a normal outcome, not an error
//	}
//	rec, err := p.Extract(m)
//	if err != nil {
//	    log.Fatal(err) // schema defect, not bad input
//	}
//	year := rec.Required(1) // "2004"
//
// Matching itself is delegated to the standard library regexp engine; this
// package only reconstructs, from the pattern text alone, the shape of the
// results that engine will produce.
package recap

import (
	"fmt"
	"regexp"

	"github.com/recapx/recap/internal/scanner"
)

// Schema is the ordered collection of per-group classifications derived for
// a pattern. See the scanner package for the slot model.
type Schema = scanner.Schema

// Slot is the classification of one capturing group.
type Slot = scanner.Slot

// Kind tags a slot Required or Optional.
type Kind = scanner.Kind

// Slot kinds, re-exported for callers inspecting a Schema.
const (
	RequiredSlot = scanner.Required
	OptionalSlot = scanner.Optional
)

// Pattern is a registered regular expression: the source text, its compiled
// engine handles, and its Schema. A Pattern is immutable after registration
// and safe for concurrent use by multiple goroutines.
type Pattern struct {
	source string
	re     *regexp.Regexp // unanchored, for find-anywhere
	prefix *regexp.Regexp // anchored at start, for prefix matching
	full   *regexp.Regexp // anchored both ends, for full matching
	schema Schema
	names  []string // resolved group names indexed by ordinal; names[0] is ""
}

// Compile registers a pattern: the engine compiles it, and the structure
// analyzer derives its Schema. A pattern the engine rejects fails with a
// *SyntaxError carrying the engine's own diagnostic.
func Compile(pattern string) (*Pattern, error) {
	return CompileWithNames(pattern, nil)
}

// MustCompile is like Compile but panics on error. Use for patterns known
// valid at program start.
func MustCompile(pattern string) *Pattern {
	p, err := Compile(pattern)
	if err != nil {
		panic("recap: Compile(`" + pattern + "`): " + err.Error())
	}
	return p
}

// CompileWithNames registers a pattern with caller-declared names for its
// capturing groups. names[i] applies to ordinal i+1 and is used only for
// groups that carry no inline name; inline names always win. Registration
// fails when a name collides with another resolved name or when more names
// are declared than the pattern has capturing groups.
func CompileWithNames(pattern string, names []string) (*Pattern, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, newSyntaxError(pattern, err)
	}

	schema := scanner.Analyze(pattern)

	// Cross-check the analyzer against the engine's own numbering up front.
	// A disagreement means the pattern uses grammar the scanner does not
	// model, and every later extraction would be wrong.
	if schema.Count != re.NumSubexp() {
		return nil, &ShapeMismatchError{Want: schema.Count, Got: re.NumSubexp()}
	}

	resolved, err := resolveNames(schema, names)
	if err != nil {
		return nil, err
	}

	// Anchored variants are compiled once here so the Pattern never mutates
	// after registration. Wrapping in (?: ) cannot shift group numbering.
	prefix, err := regexp.Compile(`\A(?:` + pattern + `)`)
	if err != nil {
		return nil, newSyntaxError(pattern, err)
	}
	full, err := regexp.Compile(`\A(?:` + pattern + `)\z`)
	if err != nil {
		return nil, newSyntaxError(pattern, err)
	}

	return &Pattern{
		source: pattern,
		re:     re,
		prefix: prefix,
		full:   full,
		schema: schema,
		names:  resolved,
	}, nil
}

// resolveNames builds the per-ordinal name table: inline names first,
// caller-declared names as fallback for unnamed ordinals.
func resolveNames(schema Schema, declared []string) ([]string, error) {
	if len(declared) > schema.Count {
		return nil, &SyntaxError{
			Message: fmt.Sprintf("recap: %d group names declared for %d capturing groups", len(declared), schema.Count),
			Offset:  -1,
		}
	}

	resolved := make([]string, schema.Count+1)
	for _, slot := range schema.Slots {
		name := slot.Name
		if name == "" && slot.Index-1 < len(declared) {
			name = declared[slot.Index-1]
		}
		resolved[slot.Index] = name
	}

	seen := make(map[string]int, schema.Count)
	for ord, name := range resolved {
		if name == "" {
			continue
		}
		if prev, dup := seen[name]; dup {
			return nil, &SyntaxError{
				Message: fmt.Sprintf("recap: duplicate capture group name %q (ordinals %d and %d)", name, prev, ord),
				Offset:  -1,
			}
		}
		seen[name] = ord
	}
	return resolved, nil
}

// Source returns the pattern text the Pattern was registered with.
func (p *Pattern) Source() string { return p.source }

// Schema returns the Pattern's derived Schema. The returned value is shared
// and must not be modified.
func (p *Pattern) Schema() Schema { return p.schema }

// NumGroups returns the number of capturing groups.
func (p *Pattern) NumGroups() int { return p.schema.Count }

// Names returns the resolved group names indexed by ordinal; index 0 is
// always "". The slice is shared and must not be modified.
func (p *Pattern) Names() []string { return p.names }

// ordinalOf resolves a group name to its ordinal.
func (p *Pattern) ordinalOf(name string) (int, bool) {
	if name == "" {
		return 0, false
	}
	for ord, n := range p.names {
		if n == name {
			return ord, true
		}
	}
	return 0, false
}

// Find returns the leftmost match anywhere in input. The second return value
// is false when the pattern does not match; that is a normal outcome, never
// an error.
func (p *Pattern) Find(input string) (*Match, bool) {
	return p.exec(p.re, input)
}

// Prefix returns a match anchored at the start of input.
func (p *Pattern) Prefix(input string) (*Match, bool) {
	return p.exec(p.prefix, input)
}

// Full returns a match only when the whole input matches the pattern.
func (p *Pattern) Full(input string) (*Match, bool) {
	return p.exec(p.full, input)
}

func (p *Pattern) exec(re *regexp.Regexp, input string) (*Match, bool) {
	spans := re.FindStringSubmatchIndex(input)
	if spans == nil {
		return nil, false
	}
	return &Match{pattern: p, input: input, spans: spans}, true
}

// QuoteMeta returns a pattern matching the literal text s. It is a
// passthrough to the engine's own quoting helper.
func QuoteMeta(s string) string { return regexp.QuoteMeta(s) }
