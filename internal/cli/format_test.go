package cli

import (
	"testing"
	"time"
)

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		cents int64
		want  string
	}{
		{0, "0.00"},
		{5, "0.05"},
		{1234, "12.34"},
		{105000, "1,050.00"},
		{123456789, "1,234,567.89"},
		{-1234, "-12.34"},
		{-123456789, "-1,234,567.89"},
	}

	for _, tt := range tests {
		if got := FormatAmount(tt.cents); got != tt.want {
			t.Errorf("FormatAmount(%d) = %q, want %q", tt.cents, got, tt.want)
		}
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-1234567, "-1,234,567"},
	}

	for _, tt := range tests {
		if got := FormatNumber(tt.n); got != tt.want {
			t.Errorf("FormatNumber(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC)
	if got := FormatDate(d); got != "2024-01-05" {
		t.Errorf("FormatDate = %q, want 2024-01-05", got)
	}
}

func TestTruncateNote(t *testing.T) {
	tests := []struct {
		note string
		max  int
		want string
	}{
		{"short", 20, "short"},
		{"exactly ten chars!", 18, "exactly ten chars!"},
		{"a rather long note about groceries", 12, "a rather ..."},
		{"untouched when max too small", 3, "untouched when max too small"},
		{"", 10, ""},
	}

	for _, tt := range tests {
		if got := TruncateNote(tt.note, tt.max); got != tt.want {
			t.Errorf("TruncateNote(%q, %d) = %q, want %q", tt.note, tt.max, got, tt.want)
		}
	}
}
