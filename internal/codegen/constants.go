// Package codegen provides identifier helpers for the code generator.
package codegen

import "fmt"

// LowerFirst converts the first character of a string to lowercase.
func LowerFirst(s string) string {
	if s == "" {
		return s
	}
	return string(s[0]|0x20) + s[1:]
}

// UpperFirst converts the first character of a string to uppercase.
func UpperFirst(s string) string {
	if s == "" {
		return s
	}
	return string(s[0]&^0x20) + s[1:]
}

// FieldName returns the exported struct field name for a capture group:
// the sanitized, upper-cased group name, or Group<ordinal> for groups
// without a usable name.
func FieldName(name string, ordinal int) string {
	clean := sanitizeIdent(name)
	if clean == "" {
		return fmt.Sprintf("Group%d", ordinal)
	}
	return UpperFirst(clean)
}

// sanitizeIdent strips characters that cannot appear in a Go identifier and
// drops a leading digit run. The empty string means no usable name remains.
func sanitizeIdent(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c == '_':
			out = append(out, c)
		case c >= '0' && c <= '9':
			if len(out) > 0 {
				out = append(out, c)
			}
		}
	}
	if len(out) > 0 && out[0] == '_' && len(out) == 1 {
		return ""
	}
	return string(out)
}
