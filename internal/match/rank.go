package match

import (
	"sort"

	"github.com/joaoalves07/SE-Destino-de-viagem/internal/catalog"
)

// MissingCost ranks destinations without a total cost after any priced one.
const MissingCost = 999999

// SortKey orders ranked destinations: more activity hits first, then
// cheaper, then by city name.
type SortKey struct {
	Hits int
	Cost float64
	City string
}

// Less reports whether k sorts before o.
func (k SortKey) Less(o SortKey) bool {
	if k.Hits != o.Hits {
		return k.Hits > o.Hits
	}
	if k.Cost != o.Cost {
		return k.Cost < o.Cost
	}
	return k.City < o.City
}

// SortKeyFor computes the ranking key of d for the selected activity keywords.
func SortKeyFor(d catalog.Destination, keywords []string) SortKey {
	cost := float64(MissingCost)
	if v, ok := d.Lookup(catalog.FieldTotalCost); ok {
		cost = ParseMoney(v)
	}
	return SortKey{
		Hits: activityHits(NormalizeActivities(d.Activity()), keywords),
		Cost: cost,
		City: d.City(),
	}
}

// Rank returns a new slice of dests ordered by SortKey. Equal keys keep
// their input order.
func Rank(dests []catalog.Destination, keywords []string) []catalog.Destination {
	type keyed struct {
		d   catalog.Destination
		key SortKey
	}
	ks := make([]keyed, len(dests))
	for i, d := range dests {
		ks[i] = keyed{d: d, key: SortKeyFor(d, keywords)}
	}
	sort.SliceStable(ks, func(i, j int) bool {
		return ks[i].key.Less(ks[j].key)
	})
	out := make([]catalog.Destination, len(ks))
	for i, k := range ks {
		out[i] = k.d
	}
	return out
}

// Recommend filters dests by sel and ranks the result by sel.Activities.
func Recommend(dests []catalog.Destination, sel Selection) []catalog.Destination {
	return Rank(Filter(dests, sel), sel.Activities)
}
