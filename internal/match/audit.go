package match

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/joaoalves07/SE-Destino-de-viagem/internal/catalog"
)

// exactSolo is "1 pessoa" not preceded by another digit.
var exactSolo = regexp.MustCompile(`(^|[^0-9])1 pessoa`)

// Issue is a catalog record that will not behave well in menus or ranking.
type Issue struct {
	Tier    string
	City    string
	Message string
}

func (i Issue) String() string {
	city := i.City
	if city == "" {
		city = "(sem cidade)"
	}
	return fmt.Sprintf("[%s] %s: %s", i.Tier, city, i.Message)
}

// Audit reports empty tiers and records whose fields the parsers can only
// read as defaults.
func Audit(c *catalog.Catalog) []Issue {
	var out []Issue
	if c == nil {
		return out
	}
	for _, t := range c.Tiers {
		if len(t.Destinations) == 0 {
			out = append(out, Issue{Tier: t.Name, Message: "tier has no destinations"})
			continue
		}
		for _, d := range t.Destinations {
			add := func(msg string) {
				out = append(out, Issue{Tier: t.Name, City: d.City(), Message: msg})
			}
			if d.City() == "" {
				add("missing " + catalog.FieldCity)
			}
			if len(SplitTokens(d.Climate())) == 0 {
				add("no climate tokens; never matches a climate selection")
			}
			if len(NormalizeActivities(d.Activity())) == 0 {
				add("no activity tokens")
			}
			if v, ok := d.Lookup(catalog.FieldTotalCost); !ok {
				add(fmt.Sprintf("missing %q; ranked last among equal hits", catalog.FieldTotalCost))
			} else if ParseMoney(v) == 0 {
				add(fmt.Sprintf("%q has no amount (%q); ranked as free", catalog.FieldTotalCost, v))
			}
			if msg := groupSizeIssue(d.GroupSize()); msg != "" {
				add(msg)
			}
		}
	}
	return out
}

// groupSizeIssue explains group-size texts that ParseGroupSize reads as 1
// although they do not describe a solo traveller.
func groupSizeIssue(text string) string {
	field := catalog.FieldGroupSize
	lower := strings.ToLower(text)
	runs := digitRun.FindAllString(text, -1)
	switch {
	case len(runs) == 0:
		return fmt.Sprintf("%q has no count; treated as 1", field)
	case strings.Contains(lower, "1 pessoa") && !exactSolo.MatchString(lower):
		return fmt.Sprintf("%q %q contains \"1 pessoa\" inside a larger number; treated as 1", field, text)
	}
	sum := 0
	for _, r := range runs {
		n, err := strconv.Atoi(r)
		if err != nil {
			continue
		}
		sum += n
	}
	if sum < 1 {
		return fmt.Sprintf("%q %q counts zero people; treated as 1", field, text)
	}
	return ""
}
