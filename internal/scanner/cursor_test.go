package scanner

import "testing"

func TestSkipEscape(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		pos     int
		want    int
	}{
		{"simple escape", `a\db`, 1, 3},
		{"escaped backslash", `\\d`, 0, 2},
		{"escape at end", `ab\`, 2, 3},
		{"quoted literal", `\Qa+b\Ec`, 0, 7},
		{"quoted literal unterminated", `\Qa+b`, 0, 5},
		{"quoted literal empty", `\Q\E`, 0, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := skipEscape(tt.pattern, tt.pos)
			if got != tt.want {
				t.Errorf("skipEscape(%q, %d) = %d, want %d", tt.pattern, tt.pos, got, tt.want)
			}
		})
	}
}

func TestSkipQuotedLiteral(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		pos     int
		want    int
	}{
		{"terminated", `\Qabc\Edef`, 2, 7},
		{"unterminated runs to end", `\Qabc`, 2, 5},
		{"backslash without E", `\Qa\nb\Ec`, 2, 8},
		{"immediately terminated", `\Q\E`, 2, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := skipQuotedLiteral(tt.pattern, tt.pos)
			if got != tt.want {
				t.Errorf("skipQuotedLiteral(%q, %d) = %d, want %d", tt.pattern, tt.pos, got, tt.want)
			}
		})
	}
}

func TestSkipBracketClass(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		pos     int
		want    int
	}{
		{"simple class", `[abc]d`, 1, 5},
		{"escaped bracket", `[a\]b]c`, 1, 6},
		{"nested brackets", `[a[b]c]d`, 1, 7},
		{"class with dash", `[a-z0-9]x`, 1, 8},
		{"unterminated runs to end", `[abc`, 1, 4},
		{"paren inside class is literal", `[()|]x`, 1, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := skipBracketClass(tt.pattern, tt.pos)
			if got != tt.want {
				t.Errorf("skipBracketClass(%q, %d) = %d, want %d", tt.pattern, tt.pos, got, tt.want)
			}
		})
	}
}

func TestMatchingParenEnd(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		pos     int
		want    int
	}{
		{"flat group", `(abc)d`, 1, 5},
		{"nested group", `(a(b)c)d`, 1, 7},
		{"doubly nested", `((a)(b))c`, 1, 8},
		{"escaped paren", `(a\)b)c`, 1, 6},
		{"class containing paren", `(a[)]b)c`, 1, 7},
		{"quoted region containing paren", `(\Q)\Eb)c`, 1, 8},
		{"unterminated runs to end", `(ab`, 1, 3},
		{"alternation inside", `(a|b)c`, 1, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := matchingParenEnd(tt.pattern, tt.pos)
			if got != tt.want {
				t.Errorf("matchingParenEnd(%q, %d) = %d, want %d", tt.pattern, tt.pos, got, tt.want)
			}
		})
	}
}
