package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/joaoalves07/SE-Destino-de-viagem/internal/catalog"
	"github.com/joaoalves07/SE-Destino-de-viagem/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// resetFlags restores every flag to its default so tests do not leak state
// through the package-level command tree.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

// execute runs the CLI with args in an isolated HOME.
func execute(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv(config.EnvCatalog, "")
	t.Setenv(config.EnvLogLevel, "")
	t.Setenv(config.EnvLogFormat, "")
	resetFlags(rootCmd)

	var out bytes.Buffer
	rootCmd.SetIn(strings.NewReader(input))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func sampleCatalog(t *testing.T) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "destinos.json")
	if err := catalog.Save(context.Background(), p, catalog.Sample()); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestSearchCommand_JSON(t *testing.T) {
	p := sampleCatalog(t)
	out, err := execute(t, "", "search", p, "--climate", "quente", "--activity", "trilha", "--json")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	var got []searchResult
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("invalid JSON %q: %v", out, err)
	}
	if len(got) != 2 || got[0].City != "Paraty" || got[1].City != "Bonito" {
		t.Fatalf("unexpected results: %+v", got)
	}
	if got[0].Hits != 1 || got[0].Cost != 1850 || got[0].Rank != 1 {
		t.Fatalf("unexpected first result: %+v", got[0])
	}
}

func TestSearchCommand_TableAndLimit(t *testing.T) {
	p := sampleCatalog(t)
	out, err := execute(t, "", "search", "--catalog", p, "--k", "1")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if !strings.Contains(out, "Results (1 found):") || !strings.Contains(out, "São Thomé das Letras") {
		t.Fatalf("unexpected output:\n%s", out)
	}

	out, err = execute(t, "", "search", p, "--tier", "Inexistente")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if !strings.Contains(out, "Results (0 found):") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

func TestMenusCommand(t *testing.T) {
	p := sampleCatalog(t)
	out, err := execute(t, "", "menus", p)
	if err != nil {
		t.Fatalf("menus: %v", err)
	}
	for _, want := range []string{
		"=== Faixas (2) ===",
		"  [1] Até R$ 2.000",
		"=== Integrantes (3) ===",
		"  [3] 6",
		"=== Climas (4) ===",
		"=== Atividades (7) ===",
		"  [7] trilha guiada",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestDoctorCommand(t *testing.T) {
	p := filepath.Join(t.TempDir(), "destinos.json")
	body := `{"Luxo": [{"Cidade": "Gramado", "Clima": "frio", "Atividade": "vinícola", "Valor total": "sob consulta", "Integrantes": "2 pessoas"}], "Vazia": []}`
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	out, err := execute(t, "", "doctor", p)
	if err != nil {
		t.Fatalf("doctor: %v", err)
	}
	for _, want := range []string{"2 tier(s), 1 destination(s)", "[Vazia/?] tier has no destinations", "[Luxo/Gramado]", "2 issue(s)"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRecommendCommand_EOFExitsCleanly(t *testing.T) {
	p := sampleCatalog(t)
	out, err := execute(t, "1\n", "recommend", p)
	if err != nil {
		t.Fatalf("recommend: %v", err)
	}
	if !strings.Contains(out, "Encerrando. Até a próxima!") {
		t.Fatalf("expected goodbye:\n%s", out)
	}
}

func TestRootCommand_RunsSession(t *testing.T) {
	p := sampleCatalog(t)
	out, err := execute(t, "0\n0\n2\n0\n1\ns\n", "--allow-skip", p)
	if err != nil {
		t.Fatalf("root: %v", err)
	}
	if !strings.Contains(out, "[1] São Thomé das Letras (MG)") || !strings.Contains(out, "Boas viagens") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

func TestLoadCatalog_MissingFileHint(t *testing.T) {
	_, err := execute(t, "", "menus", filepath.Join(t.TempDir(), "nope.json"))
	if err == nil || !strings.Contains(err.Error(), "destino init --sample") {
		t.Fatalf("expected hint, got %v", err)
	}
}

func TestInitCommand_Sample(t *testing.T) {
	p := filepath.Join(t.TempDir(), "viagens", "destinos.json")
	out, err := execute(t, "", "init", "--sample", "--catalog", p)
	if err != nil {
		t.Fatalf("init: %v", err)
	}
	if !strings.Contains(out, "Sample catalog written") {
		t.Fatalf("unexpected output:\n%s", out)
	}
	c, err := catalog.Load(context.Background(), p)
	if err != nil {
		t.Fatalf("Load sample: %v", err)
	}
	if len(c.Destinations()) != 3 {
		t.Fatalf("expected 3 sample destinations, got %d", len(c.Destinations()))
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "", "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.Contains(out, "Version:    dev") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}
