package terminal

import "testing"

func TestCenter(t *testing.T) {
	tests := []struct {
		s     string
		width int
		want  string
	}{
		{"ab", 6, "  ab"},
		{"abc", 6, " abc"},
		{"abcdef", 4, "abcdef"},
		{"", 4, "  "},
	}

	for _, tt := range tests {
		if got := Center(tt.s, tt.width); got != tt.want {
			t.Errorf("Center(%q, %d) = %q, want %q", tt.s, tt.width, got, tt.want)
		}
	}
}

func TestDisplayWidth(t *testing.T) {
	if got := DisplayWidth("abc"); got != 3 {
		t.Errorf("DisplayWidth(abc) = %d, want 3", got)
	}
	if got := DisplayWidth("💰"); got != 2 {
		t.Errorf("DisplayWidth(coin) = %d, want 2", got)
	}
}
