package cli

import "testing"

func TestFormatCost(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "$0.00"},
		{4, "$4.00"},
		{27.99, "$27.99"},
		{1234.5, "$1,234.50"},
		{-2.5, "-$2.50"},
	}
	for _, tt := range tests {
		if got := FormatCost(tt.in); got != tt.want {
			t.Errorf("FormatCost(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatDelta(t *testing.T) {
	if got := FormatDelta(24, 26); got != "-$2.00" {
		t.Errorf("FormatDelta(24, 26) = %q, want -$2.00", got)
	}
	if got := FormatDelta(26, 24); got != "+$2.00" {
		t.Errorf("FormatDelta(26, 24) = %q, want +$2.00", got)
	}
	if got := FormatDelta(5, 5); got != "±$0.00" {
		t.Errorf("FormatDelta(5, 5) = %q, want ±$0.00", got)
	}
}

func TestFormatNumberAndMinute(t *testing.T) {
	if got := FormatNumber(1234567); got != "1,234,567" {
		t.Errorf("FormatNumber = %q", got)
	}
	if got := FormatMinute(7); got != "07" {
		t.Errorf("FormatMinute(7) = %q, want 07", got)
	}
}

func TestFormatPercent(t *testing.T) {
	if got := FormatPercent(1.5); got != "150.0%" {
		t.Errorf("FormatPercent(1.5) = %q, want 150.0%%", got)
	}
}
