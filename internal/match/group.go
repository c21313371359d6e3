package match

import (
	"regexp"
	"strconv"
	"strings"
)

var digitRun = regexp.MustCompile(`\d+`)

// ParseGroupSize extracts a traveller count from phrases such as
// "2 pessoas" or "1 pessoa".
//
// A text containing "1 pessoa" is always 1. Otherwise every digit run is
// summed, so "2 a 4 pessoas" yields 6. Text without digits, or whose digits
// sum to zero, yields 1.
func ParseGroupSize(text string) int {
	s := strings.ToLower(text)
	if strings.Contains(s, "1 pessoa") {
		return 1
	}
	sum := 0
	for _, run := range digitRun.FindAllString(s, -1) {
		n, err := strconv.Atoi(run)
		if err != nil {
			continue
		}
		sum += n
	}
	if sum < 1 {
		return 1
	}
	return sum
}
