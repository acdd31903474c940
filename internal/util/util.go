// Package util provides common field-parsing helpers used by the
// movement-list parser.
package util

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseCount parses a string that may be an integer ("32") or a float
// ("32.00") into a non-negative int. Spreadsheet exports frequently
// serialize whole numbers as floats.
func ParseCount(s string) (int, error) {
	s = strings.TrimSpace(s)
	if v, err := strconv.Atoi(s); err == nil {
		if v < 0 {
			return 0, fmt.Errorf("ParseCount: %q is negative", s)
		}
		return v, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if f < 0 || f != float64(int(f)) {
		return 0, fmt.Errorf("ParseCount: %q is not a valid count", s)
	}
	return int(f), nil
}

// ParseWeight parses a non-negative weight in lbs. Thousands separators
// are tolerated ("12,500").
func ParseWeight(s string) (float64, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if f < 0 {
		return 0, fmt.Errorf("ParseWeight: %q is negative", s)
	}
	return f, nil
}

// ParseDimension parses a non-negative dimension in inches. Empty
// fields read as zero (dimension unknown).
func ParseDimension(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if f < 0 {
		return 0, fmt.Errorf("ParseDimension: %q is negative", s)
	}
	return f, nil
}

// ParseFlag parses the yes/no flag variants that show up in movement
// lists: Y/N, YES/NO, TRUE/FALSE, 1/0. Empty means false.
func ParseFlag(s string) (bool, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "", "N", "NO", "FALSE", "0":
		return false, nil
	case "Y", "YES", "TRUE", "1":
		return true, nil
	}
	return false, fmt.Errorf("ParseFlag: unrecognized flag %q", s)
}
