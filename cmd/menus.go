package cmd

import (
	"fmt"
	"io"

	"github.com/joaoalves07/SE-Destino-de-viagem/internal/match"
	"github.com/spf13/cobra"
)

var menusCmd = &cobra.Command{
	Use:   "menus [catalog.json]",
	Short: "List the values offered for each question",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runMenus,
}

func init() {
	rootCmd.AddCommand(menusCmd)
}

func runMenus(cmd *cobra.Command, args []string) error {
	c, _, err := loadCatalog(cmd.Context(), args)
	if err != nil {
		return err
	}
	printMenus(cmd.OutOrStdout(), match.BuildMenus(c.Destinations()))
	return nil
}

func printMenus(w io.Writer, m match.Menus) {
	for _, sec := range []struct {
		title string
		items []string
	}{
		{"Faixas", m.Tiers},
		{"Integrantes", m.GroupSizes},
		{"Climas", m.Climates},
		{"Atividades", m.Activities},
	} {
		printSection(w, fmt.Sprintf("%s (%d)", sec.title, len(sec.items)))
		for i, it := range sec.items {
			fmt.Fprintf(w, "  [%d] %s\n", i+1, it)
		}
	}
}
