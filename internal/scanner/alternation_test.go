package scanner

import "testing"

func TestHasTopLevelAlternation(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		from    int
		bound   int
		want    bool
	}{
		{"bare alternation", `a|b`, 0, 3, true},
		{"no alternation", `abc`, 0, 3, false},
		{"alternation inside group is opaque", `(a|b)c`, 0, 6, false},
		{"alternation after group", `(a)b|c`, 0, 6, true},
		{"escaped pipe is literal", `a\|b`, 0, 4, false},
		{"pipe inside class is literal", `[a|b]c`, 0, 6, false},
		{"pipe inside quoted region is literal", `\Qa|b\Ec`, 0, 8, false},
		{"unmatched close ends scope", `a)|b`, 0, 4, false},
		{"group body with branch", `(a|b)`, 1, 5, true},
		{"group body without branch", `(ab)`, 1, 4, false},
		{"bound excludes the pipe", `ab|c`, 0, 2, false},
		{"bound includes the pipe", `ab|c`, 0, 3, true},
		{"bound past end is clamped", `a|b`, 0, 100, true},
		{"nested group then top pipe", `a(b|c)d|e`, 0, 9, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := hasTopLevelAlternation(tt.pattern, tt.from, tt.bound)
			if got != tt.want {
				t.Errorf("hasTopLevelAlternation(%q, %d, %d) = %v, want %v",
					tt.pattern, tt.from, tt.bound, got, tt.want)
			}
		})
	}
}
