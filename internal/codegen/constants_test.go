package codegen

import "testing"

func TestLowerFirst(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"A", "a"},
		{"ABC", "aBC"},
		{"Hello", "hello"},
		{"hello", "hello"},
		{"X", "x"},
	}

	for _, tt := range tests {
		got := LowerFirst(tt.input)
		if got != tt.want {
			t.Errorf("LowerFirst(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestUpperFirst(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"a", "A"},
		{"abc", "Abc"},
		{"Hello", "Hello"},
		{"x", "X"},
	}

	for _, tt := range tests {
		got := UpperFirst(tt.input)
		if got != tt.want {
			t.Errorf("UpperFirst(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestFieldName(t *testing.T) {
	tests := []struct {
		name    string
		ordinal int
		want    string
	}{
		{"year", 1, "Year"},
		{"Year", 1, "Year"},
		{"", 3, "Group3"},
		{"two_words", 2, "Two_words"},
		{"1digit", 1, "Digit"},
		{"123", 4, "Group4"},
		{"_", 2, "Group2"},
		{"a-b", 1, "Ab"},
	}

	for _, tt := range tests {
		got := FieldName(tt.name, tt.ordinal)
		if got != tt.want {
			t.Errorf("FieldName(%q, %d) = %q, want %q", tt.name, tt.ordinal, got, tt.want)
		}
	}
}
