package core

import "testing"

func TestAtoi(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"0", 0},
		{"42", 42},
		{"-7", -7},
		{"+9", 9},
		{"  12", 12},
		{"\t-3", -3},
		{"80abc", 80},
		{"abc", 0},
		{"-", 0},
		{"1 2", 1},
		{"99999999999999999999999999", maxInt},
	}

	for _, tt := range tests {
		if got := Atoi(tt.in); got != tt.want {
			t.Errorf("Atoi(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
