package recap

import (
	"fmt"
	"regexp/syntax"
	"strings"
)

// SyntaxError reports that pattern text was rejected at registration time.
// Message carries the engine compiler's diagnostic verbatim; the text is part
// of the observable contract, not an implementation detail. Offset is the
// byte offset of the offending portion of the pattern, or -1 when the
// diagnostic does not locate one.
type SyntaxError struct {
	Message string
	Offset  int
}

func (e *SyntaxError) Error() string { return e.Message }

// newSyntaxError wraps an engine compile error. The offset is recovered from
// the diagnostic's offending-expression text, which the engine reports
// instead of a numeric position.
func newSyntaxError(pattern string, err error) *SyntaxError {
	se := &SyntaxError{Message: err.Error(), Offset: -1}
	if parseErr, ok := err.(*syntax.Error); ok && parseErr.Expr != "" {
		se.Offset = strings.Index(pattern, parseErr.Expr)
	}
	return se
}

// ShapeMismatchError reports that a match's group-value count disagrees with
// the Schema's derived count. This is a defect in schema derivation or in the
// supported-grammar assumption, never bad caller input; treat it as fatal.
type ShapeMismatchError struct {
	Want int // Schema.Count
	Got  int
}

func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("recap: match carries %d group values, schema expects %d", e.Got, e.Want)
}

// RequiredGroupAbsentError reports that a group classified Required received
// no value from the engine. Same defect class as ShapeMismatchError: the
// classification has a gap or the pattern uses a feature outside the
// supported grammar subset.
type RequiredGroupAbsentError struct {
	Ordinal int
}

func (e *RequiredGroupAbsentError) Error() string {
	return fmt.Sprintf("recap: group %d is classified required but did not participate in the match", e.Ordinal)
}

// UnknownGroupNameError reports a lookup for a group name the pattern does
// not carry.
type UnknownGroupNameError struct {
	Name string
}

func (e *UnknownGroupNameError) Error() string {
	return fmt.Sprintf("recap: no capture group named %q", e.Name)
}
