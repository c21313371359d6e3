package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Save writes c to path as an indented JSON document under the exclusive
// catalog lock. Tier order is preserved; record keys are written sorted.
func Save(ctx context.Context, path string, c *Catalog) error {
	data, err := Marshal(c)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("cannot create catalog dir: %w", err)
	}

	unlock, err := acquire(ctx, path, true)
	if err != nil {
		return err
	}
	defer unlock()

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("cannot write catalog %s: %w", path, err)
	}
	return nil
}

// Marshal encodes c keeping tier order, which encoding/json maps would lose.
func Marshal(c *Catalog) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("{\n")
	for i, t := range c.Tiers {
		key, err := json.Marshal(t.Name)
		if err != nil {
			return nil, err
		}
		records := make([]map[string]string, 0, len(t.Destinations))
		for _, d := range t.Destinations {
			records = append(records, d.Fields())
		}
		body, err := json.MarshalIndent(records, "  ", "  ")
		if err != nil {
			return nil, fmt.Errorf("cannot encode tier %q: %w", t.Name, err)
		}
		buf.WriteString("  ")
		buf.Write(key)
		buf.WriteString(": ")
		buf.Write(body)
		if i < len(c.Tiers)-1 {
			buf.WriteByte(',')
		}
		buf.WriteByte('\n')
	}
	buf.WriteString("}\n")
	return buf.Bytes(), nil
}

// Sample returns a small catalog for first-time setup and tests.
func Sample() *Catalog {
	tier := func(name string, recs ...map[string]string) Tier {
		t := Tier{Name: name}
		for _, r := range recs {
			t.Destinations = append(t.Destinations, NewDestination(name, r))
		}
		return t
	}
	return &Catalog{Tiers: []Tier{
		tier("Até R$ 2.000",
			map[string]string{
				FieldCity: "Paraty", FieldArea: "RJ", FieldClimate: "Quente e úmido",
				FieldActivity: "Praia, Passeio de barco (R$ 120), Trilha", FieldAccommodation: "Pousada",
				FieldMeals: "Café da manhã", FieldTotalCost: "R$ 1.850,00", FieldGroupSize: "2 pessoas",
				"Descricao": "Centro histórico colonial cercado de ilhas e cachoeiras.",
			},
			map[string]string{
				FieldCity: "São Thomé das Letras", FieldArea: "MG", FieldClimate: "Ameno/Frio",
				FieldActivity: "Trilha guiada; Cachoeira", FieldAccommodation: "Camping",
				FieldMeals: "Sem refeições", FieldTotalCost: "R$ 900,00", FieldGroupSize: "1 pessoa",
			},
		),
		tier("R$ 2.000 a R$ 5.000",
			map[string]string{
				FieldCity: "Bonito", FieldArea: "MS", FieldClimate: "Quente",
				FieldActivity: "Flutuação (R$ 250), Mergulho, Trilha", FieldAccommodation: "Hotel",
				FieldMeals: "Meia pensão", FieldTotalCost: "R$ 4.200,00", FieldGroupSize: "2 a 4 pessoas",
				"Descrição": "Rios de água cristalina e grutas.",
			},
		),
	}}
}
