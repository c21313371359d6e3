package match

import (
	"sort"
	"strconv"

	"github.com/joaoalves07/SE-Destino-de-viagem/internal/catalog"
)

// Menus holds the selectable values of each facet.
type Menus struct {
	Tiers      []string // first-seen order
	GroupSizes []string // ascending numeric order
	Climates   []string // sorted, deduplicated
	Activities []string // sorted, deduplicated
}

// BuildMenus derives the facet menus from the flattened destinations.
func BuildMenus(dests []catalog.Destination) Menus {
	m := Menus{
		Tiers:      []string{},
		GroupSizes: []string{},
	}

	seenTier := make(map[string]struct{})
	groups := make(map[int]struct{})
	climates := make(map[string]struct{})
	activities := make(map[string]struct{})

	for _, d := range dests {
		if _, ok := seenTier[d.Tier]; !ok {
			seenTier[d.Tier] = struct{}{}
			m.Tiers = append(m.Tiers, d.Tier)
		}
		groups[ParseGroupSize(d.GroupSize())] = struct{}{}
		for _, tok := range SplitTokens(d.Climate()) {
			climates[tok] = struct{}{}
		}
		for _, tok := range NormalizeActivities(d.Activity()) {
			activities[tok] = struct{}{}
		}
	}

	sizes := make([]int, 0, len(groups))
	for g := range groups {
		sizes = append(sizes, g)
	}
	sort.Ints(sizes)
	for _, g := range sizes {
		m.GroupSizes = append(m.GroupSizes, strconv.Itoa(g))
	}

	m.Climates = sortedSet(climates)
	m.Activities = sortedSet(activities)
	return m
}

func sortedSet(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
