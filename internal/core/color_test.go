package core

import "testing"

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"red", ColorRed},
		{" Bright_Green ", ColorBrightGreen},
		{"gray", ColorGray},
		{"", ColorDefault},
		{"ultraviolet", ColorDefault},
	}
	for _, tt := range tests {
		if got := ParseColor(tt.in); got != tt.want {
			t.Errorf("ParseColor(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
