package cmd

import (
	"fmt"

	"github.com/joaoalves07/SE-Destino-de-viagem/internal/match"
	"github.com/spf13/cobra"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor [catalog.json]",
	Short: "Check the catalog for records that will not match or rank well",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(cmd *cobra.Command, args []string) error {
	w := cmd.OutOrStdout()
	c, _, err := loadCatalog(cmd.Context(), args)
	if err != nil {
		return err
	}

	printSection(w, "Catalog")
	dests := c.Destinations()
	printOK(w, "", fmt.Sprintf("%d tier(s), %d destination(s)", len(c.Tiers), len(dests)))

	m := match.BuildMenus(dests)
	printInfo(w, "", fmt.Sprintf("menus: %d group size(s), %d climate(s), %d activit(ies)",
		len(m.GroupSizes), len(m.Climates), len(m.Activities)))

	printSection(w, "Records")
	issues := match.Audit(c)
	if len(issues) == 0 {
		printOK(w, "", "no issues found")
		return nil
	}
	for _, is := range issues {
		city := is.City
		if city == "" {
			city = "?"
		}
		printWarn(w, is.Tier+"/"+city, is.Message)
	}
	printInfo(w, "", fmt.Sprintf("%d issue(s)", len(issues)))
	return nil
}
