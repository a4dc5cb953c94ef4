package scanner

import (
	"reflect"
	"regexp"
	"testing"
)

func TestAnalyze(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		want    []Slot
	}{
		{
			name:    "date pattern all required",
			pattern: `(\d{4})-(\d{2})-(\d{2})`,
			want: []Slot{
				{Index: 1, Kind: Required},
				{Index: 2, Kind: Required},
				{Index: 3, Kind: Required},
			},
		},
		{
			name:    "optional fraction",
			pattern: `(\d+)(?:\.(\d+))?`,
			want: []Slot{
				{Index: 1, Kind: Required},
				{Index: 2, Kind: Optional},
			},
		},
		{
			name:    "top-level alternation",
			pattern: `(a)|(b)`,
			want: []Slot{
				{Index: 1, Kind: Optional},
				{Index: 2, Kind: Optional},
			},
		},
		{
			name:    "quantified outer group",
			pattern: `((?:aaaa|bbbb)cccc)?`,
			want: []Slot{
				{Index: 1, Kind: Optional},
			},
		},
		{
			name:    "no groups",
			pattern: `\d+`,
			want:    nil,
		},
		{
			name:    "non-capturing only",
			pattern: `(?:a|b)+`,
			want:    nil,
		},
		{
			name:    "star quantified group",
			pattern: `(ab)*c`,
			want: []Slot{
				{Index: 1, Kind: Optional},
			},
		},
		{
			name:    "zero repeat group",
			pattern: `(ab){0,3}c`,
			want: []Slot{
				{Index: 1, Kind: Optional},
			},
		},
		{
			name:    "plus quantified group stays required",
			pattern: `(ab)+c`,
			want: []Slot{
				{Index: 1, Kind: Required},
			},
		},
		{
			name:    "group inside optional group",
			pattern: `((a)(b))?`,
			want: []Slot{
				{Index: 1, Kind: Optional},
				{Index: 2, Kind: Optional},
				{Index: 3, Kind: Optional},
			},
		},
		{
			name:    "alternation inside group taints interior",
			pattern: `(a(b)|c(d))`,
			want: []Slot{
				{Index: 1, Kind: Required},
				{Index: 2, Kind: Optional},
				{Index: 3, Kind: Optional},
			},
		},
		{
			name:    "group after branching group",
			pattern: `(a|b)(c)`,
			want: []Slot{
				{Index: 1, Kind: Required},
				{Index: 2, Kind: Required},
			},
		},
		{
			name:    "named groups keep names",
			pattern: `(?P<year>\d{4})-(?P<month>\d{2})`,
			want: []Slot{
				{Index: 1, Kind: Required, Name: "year"},
				{Index: 2, Kind: Required, Name: "month"},
			},
		},
		{
			name:    "optional named group",
			pattern: `(?P<major>\d+)(?:\.(?P<minor>\d+))?`,
			want: []Slot{
				{Index: 1, Kind: Required, Name: "major"},
				{Index: 2, Kind: Optional, Name: "minor"},
			},
		},
		{
			name:    "class and escape are opaque",
			pattern: `[(]\((a)`,
			want: []Slot{
				{Index: 1, Kind: Required},
			},
		},
		{
			name:    "pipe in class does not branch",
			pattern: `[a|b](c)`,
			want: []Slot{
				{Index: 1, Kind: Required},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Analyze(tt.pattern)
			if got.Count != len(tt.want) {
				t.Fatalf("Analyze(%q).Count = %d, want %d", tt.pattern, got.Count, len(tt.want))
			}
			if !reflect.DeepEqual(got.Slots, tt.want) {
				t.Errorf("Analyze(%q).Slots = %+v, want %+v", tt.pattern, got.Slots, tt.want)
			}
		})
	}
}

// Schema.Count must agree with the engine's own capturing-group count, and
// slot ordinals must be contiguous in textual order.
func TestAnalyzeAgreesWithEngine(t *testing.T) {
	patterns := []string{
		`(\d{4})-(\d{2})-(\d{2})`,
		`(\d+)(?:\.(\d+))?`,
		`(a)|(b)`,
		`((?:aaaa|bbbb)cccc)?`,
		`(?P<user>\w+)@(?P<host>[\w.]+)`,
		`(a(b(c)))`,
		`(?i)(hello)\s+(world)`,
		`\[(\d+)\]`,
		`[a-z]+`,
		`(a)(b)?(c)*(d)+`,
		`(x|y(z))`,
	}

	for _, pattern := range patterns {
		t.Run(pattern, func(t *testing.T) {
			re := regexp.MustCompile(pattern)
			schema := Analyze(pattern)
			if schema.Count != re.NumSubexp() {
				t.Errorf("Analyze(%q).Count = %d, engine counts %d", pattern, schema.Count, re.NumSubexp())
			}
			for i, slot := range schema.Slots {
				if slot.Index != i+1 {
					t.Errorf("Analyze(%q): slot %d has ordinal %d", pattern, i, slot.Index)
				}
			}
		})
	}
}

// Every slot classified Required must participate in every successful
// engine match.
func TestRequiredSlotsAlwaysParticipate(t *testing.T) {
	tests := []struct {
		pattern string
		inputs  []string
	}{
		{`(\d{4})-(\d{2})-(\d{2})`, []string{"2004-01-20", "1999-12-31"}},
		{`(\d+)(?:\.(\d+))?`, []string{"3.1415", "3", "42.0"}},
		{`(a)|(b)`, []string{"a", "b"}},
		{`((?:aaaa|bbbb)cccc)?`, []string{"aaaacccc", ""}},
		{`(a(b)|c(d))`, []string{"ab", "cd"}},
		{`(ab)+c`, []string{"ababc"}},
		{`(a|b)(c)`, []string{"ac", "bc"}},
	}

	for _, tt := range tests {
		re := regexp.MustCompile(tt.pattern)
		schema := Analyze(tt.pattern)
		for _, input := range tt.inputs {
			groups := re.FindStringSubmatchIndex(input)
			if groups == nil {
				t.Fatalf("pattern %q did not match input %q", tt.pattern, input)
			}
			for _, slot := range schema.Slots {
				if slot.Kind != Required {
					continue
				}
				if groups[2*slot.Index] < 0 {
					t.Errorf("pattern %q, input %q: required group %d did not participate",
						tt.pattern, input, slot.Index)
				}
			}
		}
	}
}

func TestAnalyzeIdempotent(t *testing.T) {
	pattern := `(?P<a>\d+)(?:-(\w+))?|(x)`
	first := Analyze(pattern)
	second := Analyze(pattern)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Analyze is not idempotent: %+v vs %+v", first, second)
	}
}

func TestSchemaSlotLookup(t *testing.T) {
	schema := Analyze(`(a)(b)?`)
	if _, ok := schema.Slot(0); ok {
		t.Error("Slot(0) should not exist")
	}
	if _, ok := schema.Slot(3); ok {
		t.Error("Slot(3) should not exist")
	}
	slot, ok := schema.Slot(2)
	if !ok || slot.Kind != Optional {
		t.Errorf("Slot(2) = (%+v, %v), want optional slot", slot, ok)
	}
}
