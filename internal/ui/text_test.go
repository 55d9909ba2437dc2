package ui

import "testing"

func TestEnsureNewline(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty string", "", "\n"},
		{"no trailing newline", "done", "done\n"},
		{"already terminated", "done\n", "done\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EnsureNewline(tt.input); got != tt.want {
				t.Errorf("EnsureNewline(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
