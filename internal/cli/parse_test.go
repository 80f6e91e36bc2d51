package cli

import "testing"

func TestParseCost(t *testing.T) {
	tests := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"2.50", 2.5, true},
		{" $1,234.5 ", 1234.5, true},
		{"0", 0, true},
		{"-1", 0, false},
		{"NaN", 0, false},
		{"Inf", 0, false},
		{"abc", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, err := ParseCost(tt.in)
		if tt.ok != (err == nil) {
			t.Errorf("ParseCost(%q) err = %v, want ok=%v", tt.in, err, tt.ok)
			continue
		}
		if tt.ok && got != tt.want {
			t.Errorf("ParseCost(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseCountAndPositive(t *testing.T) {
	if n, err := ParseCount(" 12 "); err != nil || n != 12 {
		t.Fatalf("ParseCount(12) = %d, %v", n, err)
	}
	if _, err := ParseCount("-3"); err == nil {
		t.Fatal("ParseCount(-3) succeeded")
	}
	if _, err := ParseCount("1.5"); err == nil {
		t.Fatal("ParseCount(1.5) succeeded")
	}
	if n, err := ParseCount("0"); err != nil || n != 0 {
		t.Fatalf("ParseCount(0) = %d, %v", n, err)
	}
	if _, err := ParsePositive("0"); err == nil {
		t.Fatal("ParsePositive(0) succeeded")
	}
}
