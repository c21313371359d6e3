package match

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
)

// moneyPattern matches "1.234,56": "." groups thousands, "," marks decimals.
var moneyPattern = regexp.MustCompile(`[\d.]+(?:,\d+)?`)

// ParseMoney returns the first amount found in text, or 0 when there is none.
// Later amounts in the same text are ignored.
func ParseMoney(text string) float64 {
	m := moneyPattern.FindString(text)
	if m == "" {
		return 0
	}
	s := strings.ReplaceAll(m, ".", "")
	s = strings.Replace(s, ",", ".", 1)
	v, err := strconv.ParseFloat(s, 64)
	if errors.Is(err, strconv.ErrRange) {
		// +Inf: ranks after every real amount
		return v
	}
	if err != nil {
		// a run of periods with no digits
		return 0
	}
	return v
}
