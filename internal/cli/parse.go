package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseCost parses a dollar amount such as "2.50" or "$2.50".
// It rejects negative and non-finite values.
func ParseCost(s string) (float64, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "$")
	s = strings.ReplaceAll(s, ",", "")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a price", s)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0, fmt.Errorf("price must be a non-negative number, got %q", s)
	}
	return v, nil
}

// ParseCount parses a non-negative whole number.
func ParseCount(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%q is not a whole number", s)
	}
	if n < 0 {
		return 0, fmt.Errorf("must not be negative, got %d", n)
	}
	return n, nil
}

// ParsePositive parses a count that must be at least 1.
func ParsePositive(s string) (int, error) {
	n, err := ParseCount(s)
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, fmt.Errorf("must be at least 1")
	}
	return n, nil
}
