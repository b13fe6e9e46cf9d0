// Package strutil holds string helpers shared by the fixed-point packages.
package strutil

import (
	"errors"
	"fmt"
)

// SplitDecimal splits a non-negative decimal literal into its whole and
// fractional digit runs. Either run may be empty ("5.", ".5"), but not both.
func SplitDecimal(s string) (whole, frac string, err error) {
	if len(s) == 0 {
		return "", "", errors.New("empty input")
	}
	delim := -1
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case '0' <= c && c <= '9':
		case c == '.':
			if delim >= 0 {
				return "", "", fmt.Errorf("unexpected delimiter at pos %d", i+1)
			}
			delim = i
		default:
			return "", "", fmt.Errorf("unexpected symbol %q at pos %d", c, i+1)
		}
	}
	if delim < 0 {
		return s, "", nil
	}
	whole, frac = s[:delim], s[delim+1:]
	if whole == "" && frac == "" {
		return "", "", errors.New("no digits")
	}
	return whole, frac, nil
}
