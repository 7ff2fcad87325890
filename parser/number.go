/*
File    : loxgo/parser/number.go
Package : parser
*/
package parser

import (
	"fmt"
	"strconv"
	"strings"
)

// parseStrictFloat converts digit text already validated by the scanner
// (a run of digits, optionally '.' followed by further digits) into a
// binary64. The scanner's shape guarantees strconv.ParseFloat succeeds;
// this still rejects anything that doesn't match digits-('.'digits)? in
// case a future scanner change loosens the grammar without updating this
// guard.
func parseStrictFloat(text string) (float64, error) {
	allDigits := func(s string) bool {
		if s == "" {
			return false
		}
		for _, r := range s {
			if r < '0' || r > '9' {
				return false
			}
		}
		return true
	}
	intPart, fracPart, hasDot := strings.Cut(text, ".")
	if !allDigits(intPart) || (hasDot && !allDigits(fracPart)) {
		return 0, fmt.Errorf("not a digits-.-digits literal: %q", text)
	}
	return strconv.ParseFloat(text, 64)
}
