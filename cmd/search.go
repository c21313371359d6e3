package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/joaoalves07/SE-Destino-de-viagem/internal/catalog"
	"github.com/joaoalves07/SE-Destino-de-viagem/internal/match"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	flagSearchTier       string
	flagSearchGroup      string
	flagSearchClimates   []string
	flagSearchActivities []string
	flagSearchJSON       bool
	flagSearchK          int
)

var searchCmd = &cobra.Command{
	Use:   "search [catalog.json]",
	Short: "Filter and rank destinations without prompting",
	Long: `Filter and rank destinations from flags. Every flag is optional;
an omitted flag places no constraint on that facet.

  destino search --climate quente --activity praia --activity trilha`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringVar(&flagSearchTier, "tier", "", "Budget tier (exact catalog key)")
	searchCmd.Flags().StringVar(&flagSearchGroup, "group", "", "Group size as listed by 'destino menus'")
	searchCmd.Flags().StringSliceVar(&flagSearchClimates, "climate", nil, "Climate token (repeatable)")
	searchCmd.Flags().StringSliceVar(&flagSearchActivities, "activity", nil, "Activity keyword (repeatable)")
	searchCmd.Flags().BoolVar(&flagSearchJSON, "json", false, "Print results as JSON")
	searchCmd.Flags().IntVar(&flagSearchK, "k", 0, "Number of results to show (0 = all)")
	rootCmd.AddCommand(searchCmd)
}

// searchResult is the JSON shape of one ranked destination.
type searchResult struct {
	Rank   int               `json:"rank"`
	Tier   string            `json:"tier"`
	City   string            `json:"city"`
	Hits   int               `json:"hits"`
	Cost   float64           `json:"cost"`
	Fields map[string]string `json:"fields"`
}

func runSearch(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	c, _, err := loadCatalog(ctx, args)
	if err != nil {
		return err
	}
	sel := match.Selection{
		Tier:       flagSearchTier,
		GroupSize:  flagSearchGroup,
		Climates:   flagSearchClimates,
		Activities: flagSearchActivities,
	}
	found := match.Recommend(c.Destinations(), sel)
	zerolog.Ctx(ctx).Debug().Int("matches", len(found)).Msg("search")

	if flagSearchK > 0 && len(found) > flagSearchK {
		found = found[:flagSearchK]
	}
	if flagSearchJSON {
		return writeSearchJSON(cmd.OutOrStdout(), found, sel.Activities)
	}
	printSearchResults(cmd.OutOrStdout(), found, sel.Activities)
	return nil
}

func writeSearchJSON(w io.Writer, found []catalog.Destination, keywords []string) error {
	out := make([]searchResult, 0, len(found))
	for i, d := range found {
		k := match.SortKeyFor(d, keywords)
		out = append(out, searchResult{
			Rank:   i + 1,
			Tier:   d.Tier,
			City:   d.City(),
			Hits:   k.Hits,
			Cost:   k.Cost,
			Fields: d.Fields(),
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("cannot encode results: %w", err)
	}
	return nil
}

func printSearchResults(w io.Writer, found []catalog.Destination, keywords []string) {
	fmt.Fprintf(w, "Results (%d found):\n", len(found))
	if len(found) == 0 {
		printInfo(w, "", "no destination matches these filters")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for i, d := range found {
		hits := ""
		if len(keywords) > 0 {
			hits = fmt.Sprintf("[%d/%d]", match.SortKeyFor(d, keywords).Hits, len(keywords))
		}
		fmt.Fprintf(tw, "  %d.\t%s\t%s\t%s\t%s\n", i+1, hits, orDash(d, catalog.FieldCity), d.Tier, orDash(d, catalog.FieldTotalCost))
	}
	_ = tw.Flush()
}
