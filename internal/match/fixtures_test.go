package match

import "github.com/joaoalves07/SE-Destino-de-viagem/internal/catalog"

func dest(tier string, fields map[string]string) catalog.Destination {
	return catalog.NewDestination(tier, fields)
}

func cities(ds []catalog.Destination) []string {
	out := make([]string, 0, len(ds))
	for _, d := range ds {
		out = append(out, d.City())
	}
	return out
}

// twoCities is the catalog with one destination per tier used across tests.
func twoCities() *catalog.Catalog {
	return &catalog.Catalog{Tiers: []catalog.Tier{
		{Name: "Econômica", Destinations: []catalog.Destination{
			dest("Econômica", map[string]string{
				catalog.FieldCity:      "City A",
				catalog.FieldClimate:   "quente",
				catalog.FieldActivity:  "praia (R$100)",
				catalog.FieldTotalCost: "R$ 500,00",
			}),
		}},
		{Name: "Luxo", Destinations: []catalog.Destination{
			dest("Luxo", map[string]string{
				catalog.FieldCity:      "City B",
				catalog.FieldClimate:   "frio",
				catalog.FieldActivity:  "trilha",
				catalog.FieldTotalCost: "R$ 300,00",
			}),
		}},
	}}
}
