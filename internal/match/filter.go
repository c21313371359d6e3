package match

import (
	"strconv"
	"strings"

	"github.com/joaoalves07/SE-Destino-de-viagem/internal/catalog"
)

// Selection is one query over the catalog. Empty fields impose no constraint.
type Selection struct {
	Tier       string
	GroupSize  string
	Climates   []string
	Activities []string
}

// Matches reports whether d satisfies every constraint in sel.
func Matches(d catalog.Destination, sel Selection) bool {
	if sel.Tier != "" && d.Tier != sel.Tier {
		return false
	}
	if sel.GroupSize != "" && strconv.Itoa(ParseGroupSize(d.GroupSize())) != sel.GroupSize {
		return false
	}
	if len(sel.Climates) > 0 && !sharesClimate(d, sel.Climates) {
		return false
	}
	if len(sel.Activities) > 0 && activityHits(NormalizeActivities(d.Activity()), sel.Activities) == 0 {
		return false
	}
	return true
}

// Filter returns the destinations matching sel, in their original order.
func Filter(dests []catalog.Destination, sel Selection) []catalog.Destination {
	out := make([]catalog.Destination, 0, len(dests))
	for _, d := range dests {
		if Matches(d, sel) {
			out = append(out, d)
		}
	}
	return out
}

func sharesClimate(d catalog.Destination, want []string) bool {
	have := make(map[string]struct{})
	for _, tok := range SplitTokens(d.Climate()) {
		have[tok] = struct{}{}
	}
	for _, c := range want {
		if _, ok := have[fold(c)]; ok {
			return true
		}
	}
	return false
}

// activityHits counts keywords contained in at least one activity token.
func activityHits(tokens, keywords []string) int {
	hits := 0
	for _, kw := range keywords {
		kw = fold(kw)
		for _, tok := range tokens {
			if strings.Contains(fold(tok), kw) {
				hits++
				break
			}
		}
	}
	return hits
}
