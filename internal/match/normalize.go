package match

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var (
	tokenSep        = regexp.MustCompile(`,|/|;| e `)
	priceAnnotation = regexp.MustCompile(`(?i)\(r\$\s*[^)]*\)`)
)

// SplitTokens lowercases text and splits it on ",", "/", ";" and the
// conjunction " e ". Pieces are trimmed and empty pieces dropped. Order is
// preserved and duplicates are kept.
func SplitTokens(text string) []string {
	if text == "" {
		return []string{}
	}
	parts := tokenSep.Split(fold(text), -1)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}

// fold puts text in the canonical form tokens are compared in: NFC, lowercase.
func fold(text string) string {
	return strings.ToLower(norm.NFC.String(text))
}

// NormalizeActivities strips inline "(R$ ...)" price annotations before
// tokenizing an activity field.
func NormalizeActivities(text string) []string {
	return SplitTokens(priceAnnotation.ReplaceAllString(text, ""))
}
