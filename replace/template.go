// Package replace parses $-reference replacement templates and resolves them
// against a pattern's capture schema, so every reference is checked once at
// resolution time instead of on every match.
//
// Template syntax:
//   - $0 or ${0}: the full match
//   - $1, $2, ... or ${1}, ${2}: capture group by ordinal
//   - $name or ${name}: capture group by resolved name
//   - $$: a literal dollar sign
//   - anything else, including a lone or trailing $, is literal text
package replace

import "fmt"

type segKind uint8

const (
	segLiteral segKind = iota
	segOrdinal // group reference by ordinal; 0 is the full match
	segName    // group reference by name; rewritten to an ordinal by Resolve
)

type segment struct {
	kind segKind
	text string // literal text, or the reference name for segName
	ord  int
}

// Template is a parsed replacement template. Parsing checks only the
// template's own grammar; references are validated by Resolve.
type Template struct {
	source   string
	segments []segment
}

// Source returns the original template text.
func (t *Template) Source() string { return t.source }

// Parse splits template into literal and reference segments. Only braced
// references can fail: an unclosed ${, an empty ${}, or brace content that
// is neither a number nor an identifier.
func Parse(template string) (*Template, error) {
	t := &Template{source: template}
	lit := 0 // start of the pending literal run

	flush := func(end int) {
		if end > lit {
			t.segments = append(t.segments, segment{kind: segLiteral, text: template[lit:end]})
		}
	}

	i := 0
	for i < len(template) {
		if template[i] != '$' || i+1 >= len(template) {
			i++
			continue
		}

		c := template[i+1]
		switch {
		case c == '$':
			flush(i)
			t.segments = append(t.segments, segment{kind: segLiteral, text: "$"})
			i += 2
			lit = i
		case c == '{':
			flush(i)
			seg, consumed, err := parseBraced(template[i:])
			if err != nil {
				return nil, fmt.Errorf("replace: at offset %d: %w", i, err)
			}
			t.segments = append(t.segments, seg)
			i += consumed
			lit = i
		case isDigit(c):
			flush(i)
			ord, n := parseNumber(template[i+1:])
			t.segments = append(t.segments, segment{kind: segOrdinal, ord: ord})
			i += 1 + n
			lit = i
		case isNameByte(c):
			flush(i)
			name, n := parseIdent(template[i+1:])
			t.segments = append(t.segments, segment{kind: segName, text: name})
			i += 1 + n
			lit = i
		default:
			// $ followed by something that cannot start a reference stays
			// literal text.
			i++
		}
	}
	flush(len(template))

	return t, nil
}

// parseBraced parses a ${...} reference; s starts at the '$'.
func parseBraced(s string) (segment, int, error) {
	end := -1
	for j := 2; j < len(s); j++ {
		if s[j] == '}' {
			end = j
			break
		}
	}
	if end < 0 {
		return segment{}, 0, fmt.Errorf("unclosed ${")
	}

	content := s[2:end]
	if content == "" {
		return segment{}, 0, fmt.Errorf("empty ${}")
	}

	if isDigit(content[0]) {
		ord := 0
		for j := 0; j < len(content); j++ {
			if !isDigit(content[j]) {
				return segment{}, 0, fmt.Errorf("invalid group reference ${%s}", content)
			}
			ord = ord*10 + int(content[j]-'0')
		}
		return segment{kind: segOrdinal, ord: ord}, end + 1, nil
	}

	for j := 0; j < len(content); j++ {
		if !isNameByte(content[j]) {
			return segment{}, 0, fmt.Errorf("invalid group name ${%s}", content)
		}
	}
	return segment{kind: segName, text: content}, end + 1, nil
}

// parseNumber reads leading digits and returns the value and byte count.
func parseNumber(s string) (int, int) {
	n := 0
	value := 0
	for n < len(s) && isDigit(s[n]) {
		value = value*10 + int(s[n]-'0')
		n++
	}
	return value, n
}

// parseIdent reads a leading identifier and returns it and its byte count.
func parseIdent(s string) (string, int) {
	n := 0
	for n < len(s) && isNameByte(s[n]) {
		n++
	}
	return s[:n], n
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isNameByte(c byte) bool {
	return c == '_' || isDigit(c) ||
		(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
