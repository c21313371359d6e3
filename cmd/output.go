package cmd

import (
	"fmt"
	"io"

	"github.com/joaoalves07/SE-Destino-de-viagem/internal/catalog"
)

// ── Unified output helpers ────────────────────────────────────────────────────
// Icon semantics:
//   ✓  success
//   ⚠  warning
//   ○  skipped / not applicable
//   ~  neutral info

// printSection prints a top-level section header, e.g. "=== Menus ===".
func printSection(w io.Writer, title string) {
	fmt.Fprintf(w, "\n=== %s ===\n", title)
}

// printOK prints a success line.
//   name = "" → "  ✓  msg"
//   name set  → "  ✓  [name] msg"
func printOK(w io.Writer, name, msg string) {
	printIcon(w, "✓", name, msg)
}

// printWarn prints a warning line.
func printWarn(w io.Writer, name, msg string) {
	printIcon(w, "⚠", name, msg)
}

// printSkip prints a skipped / not-applicable line.
func printSkip(w io.Writer, name, msg string) {
	printIcon(w, "○", name, msg)
}

// printInfo prints a neutral informational line.
func printInfo(w io.Writer, name, msg string) {
	printIcon(w, "~", name, msg)
}

func printIcon(w io.Writer, icon, name, msg string) {
	if name == "" {
		fmt.Fprintf(w, "  %s  %s\n", icon, msg)
	} else {
		fmt.Fprintf(w, "  %s  [%s] %s\n", icon, name, msg)
	}
}

// orDash returns the field value, or "-" when the record does not carry it.
func orDash(d catalog.Destination, field string) string {
	if v, ok := d.Lookup(field); ok {
		return v
	}
	return "-"
}

// printMatches prints the numbered result list of a query.
func printMatches(w io.Writer, found []catalog.Destination) {
	printSection(w, fmt.Sprintf("%d destino(s) correspondente(s)", len(found)))
	for i, d := range found {
		fmt.Fprintf(w, "\n[%d] %s (%s)\n", i+1, orDash(d, catalog.FieldCity), orDash(d, catalog.FieldArea))
		fmt.Fprintf(w, "     Faixa: %s  |  Clima: %s\n", d.Tier, orDash(d, catalog.FieldClimate))
		fmt.Fprintf(w, "     Valor total: %s  |  Integrantes típicos: %s\n",
			orDash(d, catalog.FieldTotalCost), orDash(d, catalog.FieldGroupSize))
		fmt.Fprintf(w, "     Atividades: %s\n", orDash(d, catalog.FieldActivity))
	}
}

// printDetails prints every displayed field of one destination.
func printDetails(w io.Writer, d catalog.Destination) {
	printSection(w, "Detalhes do destino selecionado")
	fmt.Fprintf(w, "Cidade: %s  (%s)\n", orDash(d, catalog.FieldCity), orDash(d, catalog.FieldArea))
	fmt.Fprintf(w, "Faixa: %s\n", d.Tier)
	fmt.Fprintf(w, "Clima: %s\n", orDash(d, catalog.FieldClimate))
	fmt.Fprintf(w, "Atividades: %s\n", orDash(d, catalog.FieldActivity))
	fmt.Fprintf(w, "Acomodação: %s\n", orDash(d, catalog.FieldAccommodation))
	fmt.Fprintf(w, "Alimentação: %s\n", orDash(d, catalog.FieldMeals))
	fmt.Fprintf(w, "Valor total: %s\n", orDash(d, catalog.FieldTotalCost))
	fmt.Fprintf(w, "Integrantes típicos: %s\n", orDash(d, catalog.FieldGroupSize))
	if desc := d.Description(); desc != "" {
		fmt.Fprintf(w, "\nDescrição:\n%s\n", desc)
	} else {
		fmt.Fprintln(w, "\n(sem descrição cadastrada para este destino)")
	}
}
