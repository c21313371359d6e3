// Package catalog loads the destination catalog: a JSON object whose keys are
// budget tiers and whose values are lists of destination records.
package catalog

// Field names used by the catalog documents.
const (
	FieldCity          = "Cidade"
	FieldArea          = "Local"
	FieldClimate       = "Clima"
	FieldActivity      = "Atividade"
	FieldAccommodation = "Acomodacao"
	FieldMeals         = "Alimentacao"
	FieldTotalCost     = "Valor total"
	FieldGroupSize     = "Integrantes"
)

// descriptionFields are tried in order; the first non-empty one wins.
var descriptionFields = []string{"Descrição", "Descricao", "description"}

// Destination is one catalog record plus the tier it was listed under.
// It is never mutated after loading.
type Destination struct {
	Tier   string
	fields map[string]string
}

// NewDestination copies fields into a new Destination listed under tier.
func NewDestination(tier string, fields map[string]string) Destination {
	cp := make(map[string]string, len(fields))
	for k, v := range fields {
		cp[k] = v
	}
	return Destination{Tier: tier, fields: cp}
}

// Field returns the named field, or "" when the record does not carry it.
func (d Destination) Field(name string) string {
	return d.fields[name]
}

// Lookup returns the named field and whether the record carries it.
func (d Destination) Lookup(name string) (string, bool) {
	v, ok := d.fields[name]
	return v, ok
}

// Fields returns a copy of the raw record fields.
func (d Destination) Fields() map[string]string {
	cp := make(map[string]string, len(d.fields))
	for k, v := range d.fields {
		cp[k] = v
	}
	return cp
}

func (d Destination) City() string      { return d.fields[FieldCity] }
func (d Destination) Area() string      { return d.fields[FieldArea] }
func (d Destination) Climate() string   { return d.fields[FieldClimate] }
func (d Destination) Activity() string  { return d.fields[FieldActivity] }
func (d Destination) GroupSize() string { return d.fields[FieldGroupSize] }
func (d Destination) TotalCost() string { return d.fields[FieldTotalCost] }

// Description returns the free-text description, whichever key it is stored under.
func (d Destination) Description() string {
	for _, k := range descriptionFields {
		if v := d.fields[k]; v != "" {
			return v
		}
	}
	return ""
}

// Tier is one budget range and the destinations listed under it.
type Tier struct {
	Name         string
	Destinations []Destination
}

// Catalog is the loaded document. Tier order follows the order of the keys
// in the source file.
type Catalog struct {
	Tiers []Tier
}

// Destinations flattens the catalog in iteration order.
func (c *Catalog) Destinations() []Destination {
	if c == nil {
		return nil
	}
	n := 0
	for _, t := range c.Tiers {
		n += len(t.Destinations)
	}
	out := make([]Destination, 0, n)
	for _, t := range c.Tiers {
		out = append(out, t.Destinations...)
	}
	return out
}

// TierNames returns the tier keys in document order.
func (c *Catalog) TierNames() []string {
	if c == nil {
		return nil
	}
	out := make([]string, 0, len(c.Tiers))
	for _, t := range c.Tiers {
		out = append(out, t.Name)
	}
	return out
}
