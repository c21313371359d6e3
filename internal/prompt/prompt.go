// Package prompt implements the numbered-menu questions of an interactive
// session. Invalid answers are re-asked; only end of input ends a question
// early.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrNoOptions is returned when a menu has nothing to choose from.
var ErrNoOptions = errors.New("no options to choose from")

const (
	msgInvalid       = "Entrada inválida. Tente novamente."
	msgInvalidSingle = "Entrada inválida. Selecione apenas um número."
	skipLabel        = "Pular"
)

// Prompter asks questions on out and reads answers from in.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer

	// AllowSkip adds a "0" answer to Single and Multi that selects nothing.
	// SingleAsList never offers it.
	AllowSkip bool
}

// New returns a Prompter reading from in and writing to out.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// Println writes a line to the prompter's output.
func (p *Prompter) Println(a ...any) {
	fmt.Fprintln(p.out, a...)
}

// Printf writes formatted text to the prompter's output.
func (p *Prompter) Printf(format string, a ...any) {
	fmt.Fprintf(p.out, format, a...)
}

// Out returns the writer questions are printed to.
func (p *Prompter) Out() io.Writer { return p.out }

// Line prints msg and returns the next input line, trimmed. It returns
// io.EOF once input is exhausted.
func (p *Prompter) Line(msg string) (string, error) {
	fmt.Fprint(p.out, msg)
	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// Single asks for exactly one of options. With AllowSkip, "0" returns "".
func (p *Prompter) Single(title string, options []string) (string, error) {
	if len(options) == 0 {
		return "", fmt.Errorf("%s: %w", title, ErrNoOptions)
	}
	p.menu(title, options, p.AllowSkip)
	for {
		ans, err := p.Line("Escolha 1 opção (número): ")
		if err != nil {
			return "", err
		}
		if p.AllowSkip && ans == "0" {
			return "", nil
		}
		if i, ok := index(ans, len(options)); ok {
			return options[i], nil
		}
		p.Println(msgInvalid)
	}
}

// SingleAsList asks for exactly one of options and returns it as a
// one-element slice. There is no skip answer.
func (p *Prompter) SingleAsList(title string, options []string) ([]string, error) {
	if len(options) == 0 {
		return nil, fmt.Errorf("%s: %w", title, ErrNoOptions)
	}
	p.menu(title, options, false)
	for {
		ans, err := p.Line("Sua escolha: ")
		if err != nil {
			return nil, err
		}
		if i, ok := index(ans, len(options)); ok {
			return []string{options[i]}, nil
		}
		p.Println(msgInvalidSingle)
	}
}

// Multi asks for between 1 and limit comma-separated choices. Repeated
// numbers are dropped, keeping the first occurrence. A limit <= 0 allows
// every option. With AllowSkip, "0" returns an empty selection.
func (p *Prompter) Multi(title string, options []string, limit int) ([]string, error) {
	if len(options) == 0 {
		return nil, fmt.Errorf("%s: %w", title, ErrNoOptions)
	}
	if limit <= 0 {
		limit = len(options)
	}
	p.menu(title, options, p.AllowSkip)
	p.Println("Você pode digitar múltiplos números separados por vírgula. Ex.: 1,3,5")
	for {
		ans, err := p.Line("Sua escolha: ")
		if err != nil {
			return nil, err
		}
		if p.AllowSkip && ans == "0" {
			return []string{}, nil
		}
		if picked, ok := multiIndex(ans, len(options), limit); ok {
			out := make([]string, 0, len(picked))
			for _, i := range picked {
				out = append(out, options[i])
			}
			return out, nil
		}
		p.Println(msgInvalid)
	}
}

func (p *Prompter) menu(title string, options []string, skip bool) {
	p.Printf("\n%s\n", title)
	for i, opt := range options {
		p.Printf("  [%d] %s\n", i+1, opt)
	}
	if skip {
		p.Printf("  [0] %s\n", skipLabel)
	}
}

// index parses a 1-based menu answer into a 0-based index.
func index(ans string, n int) (int, bool) {
	if !isDigits(ans) {
		return 0, false
	}
	k, err := strconv.Atoi(ans)
	if err != nil || k < 1 || k > n {
		return 0, false
	}
	return k - 1, true
}

func multiIndex(ans string, n, limit int) ([]int, bool) {
	var parts []string
	for _, s := range strings.Split(ans, ",") {
		if s = strings.TrimSpace(s); s != "" {
			parts = append(parts, s)
		}
	}
	if len(parts) < 1 || len(parts) > limit {
		return nil, false
	}
	seen := make(map[int]struct{}, len(parts))
	out := make([]int, 0, len(parts))
	for _, s := range parts {
		i, ok := index(s, n)
		if !ok {
			return nil, false
		}
		if _, dup := seen[i]; dup {
			continue
		}
		seen[i] = struct{}{}
		out = append(out, i)
	}
	return out, true
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
