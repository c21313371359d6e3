package prompt

import (
	"bytes"
	"errors"
	"io"
	"reflect"
	"strings"
	"testing"
)

func newTest(input string) (*Prompter, *bytes.Buffer) {
	var out bytes.Buffer
	return New(strings.NewReader(input), &out), &out
}

func TestSingle_RetriesUntilValid(t *testing.T) {
	p, out := newTest("abc\n9\n0\n2\n")
	got, err := p.Single("Faixa?", []string{"Econômica", "Luxo"})
	if err != nil {
		t.Fatalf("Single: %v", err)
	}
	if got != "Luxo" {
		t.Fatalf("got %q", got)
	}
	if n := strings.Count(out.String(), msgInvalid); n != 3 {
		t.Fatalf("expected 3 invalid messages, got %d:\n%s", n, out.String())
	}
	if !strings.Contains(out.String(), "  [2] Luxo") {
		t.Fatalf("menu not printed:\n%s", out.String())
	}
}

func TestSingle_AllowSkip(t *testing.T) {
	p, out := newTest("0\n")
	p.AllowSkip = true
	got, err := p.Single("Faixa?", []string{"Luxo"})
	if err != nil || got != "" {
		t.Fatalf("got %q, %v", got, err)
	}
	if !strings.Contains(out.String(), "[0] Pular") {
		t.Fatalf("skip option not shown:\n%s", out.String())
	}
}

func TestSingle_NoOptions(t *testing.T) {
	p, _ := newTest("1\n")
	if _, err := p.Single("Faixa?", nil); !errors.Is(err, ErrNoOptions) {
		t.Fatalf("expected ErrNoOptions, got %v", err)
	}
}

func TestSingle_EOF(t *testing.T) {
	p, _ := newTest("x\n")
	if _, err := p.Single("Faixa?", []string{"a"}); !errors.Is(err, io.EOF) {
		t.Fatalf("expected io.EOF, got %v", err)
	}
}

func TestSingleAsList_NeverSkips(t *testing.T) {
	p, out := newTest("0\n1\n")
	p.AllowSkip = true
	got, err := p.SingleAsList("Clima?", []string{"frio", "quente"})
	if err != nil {
		t.Fatalf("SingleAsList: %v", err)
	}
	if !reflect.DeepEqual(got, []string{"frio"}) {
		t.Fatalf("got %v", got)
	}
	if !strings.Contains(out.String(), msgInvalidSingle) {
		t.Fatalf("expected rejection of 0:\n%s", out.String())
	}
	if strings.Contains(out.String(), "Pular") {
		t.Fatalf("climate menu must not offer skip")
	}
}

func TestMulti(t *testing.T) {
	opts := []string{"mergulho", "praia", "trilha"}
	tests := []struct {
		name  string
		input string
		limit int
		want  []string
	}{
		{"single", "2\n", 6, []string{"praia"}},
		{"dedupe keeps first order", "3, 1,3 ,\n", 6, []string{"trilha", "mergulho"}},
		{"empty then valid", "\n1\n", 6, []string{"mergulho"}},
		{"out of range then valid", "1,4\n1,2\n", 6, []string{"mergulho", "praia"}},
		{"over limit then valid", "1,2,3\n1,2\n", 2, []string{"mergulho", "praia"}},
		{"non-digit then valid", "1,x\n3\n", 6, []string{"trilha"}},
		{"no limit", "1,2,3\n", 0, []string{"mergulho", "praia", "trilha"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, _ := newTest(tt.input)
			got, err := p.Multi("Atividades?", opts, tt.limit)
			if err != nil {
				t.Fatalf("Multi: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMulti_AllowSkip(t *testing.T) {
	p, _ := newTest("0\n")
	p.AllowSkip = true
	got, err := p.Multi("Atividades?", []string{"praia"}, 6)
	if err != nil {
		t.Fatalf("Multi: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty selection, got %v", got)
	}
}

func TestLine_LastLineWithoutNewline(t *testing.T) {
	p, _ := newTest("  s  ")
	got, err := p.Line("> ")
	if err != nil || got != "s" {
		t.Fatalf("got %q, %v", got, err)
	}
	if _, err := p.Line("> "); !errors.Is(err, io.EOF) {
		t.Fatalf("expected io.EOF, got %v", err)
	}
}
