package recap

import (
	"errors"

	"github.com/recapx/recap/replace"
)

// FindAll returns successive non-overlapping matches of the pattern in
// input. If n > 0, at most n matches are returned; n <= 0 returns all.
// Iteration is the engine's own, so boundary assertions (^, \b) and the
// empty-match suppression rule behave exactly as in a one-shot match.
func (p *Pattern) FindAll(input string, n int) []*Match {
	if n == 0 {
		return nil
	}

	idxs := p.re.FindAllStringSubmatchIndex(input, n)
	if idxs == nil {
		return nil
	}
	out := make([]*Match, 0, len(idxs))
	for _, spans := range idxs {
		out = append(out, &Match{pattern: p, input: input, spans: spans})
	}
	return out
}

// Split slices input around matches of the pattern, returning the substrings
// between them. n follows the FindAll convention: n > 0 limits the result to
// n substrings with the unsplit remainder last, n == 0 yields nil, n < 0
// yields all.
func (p *Pattern) Split(input string, n int) []string {
	if n == 0 {
		return nil
	}

	matches := p.FindAll(input, -1)
	if len(matches) == 0 {
		return []string{input}
	}

	out := make([]string, 0, len(matches)+1)
	last := 0
	for _, m := range matches {
		if n > 0 && len(out) >= n-1 {
			break
		}
		out = append(out, input[last:m.Start()])
		last = m.End()
	}
	return append(out, input[last:])
}

// ReplaceAllString replaces every match of the pattern in input with the
// expansion of template. Template references ($1, ${name}, $0, $$) are
// resolved against the Schema once, before any matching, so an out-of-range
// ordinal or unknown name fails up front rather than per match.
func (p *Pattern) ReplaceAllString(input, template string) (string, error) {
	tmpl, err := replace.Parse(template)
	if err != nil {
		return "", err
	}
	resolved, err := tmpl.Resolve(p.schema.Count, p.ordinalOf)
	if err != nil {
		var unknown *replace.UnknownNameError
		if errors.As(err, &unknown) {
			return "", &UnknownGroupNameError{Name: unknown.Name}
		}
		return "", err
	}

	return p.replaceAll(input, func(dst []byte, m *Match) []byte {
		return resolved.Expand(dst, m.Group)
	}), nil
}

// ReplaceAllStringFunc replaces every match of the pattern in input with the
// return value of fn applied to the Match.
func (p *Pattern) ReplaceAllStringFunc(input string, fn func(*Match) string) string {
	return p.replaceAll(input, func(dst []byte, m *Match) []byte {
		return append(dst, fn(m)...)
	})
}

func (p *Pattern) replaceAll(input string, expand func([]byte, *Match) []byte) string {
	matches := p.FindAll(input, -1)
	if len(matches) == 0 {
		return input
	}

	dst := make([]byte, 0, len(input))
	last := 0
	for _, m := range matches {
		dst = append(dst, input[last:m.Start()]...)
		dst = expand(dst, m)
		last = m.End()
	}
	dst = append(dst, input[last:]...)
	return string(dst)
}
