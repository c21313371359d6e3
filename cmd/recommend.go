package cmd

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/joaoalves07/SE-Destino-de-viagem/internal/catalog"
	"github.com/joaoalves07/SE-Destino-de-viagem/internal/match"
	"github.com/joaoalves07/SE-Destino-de-viagem/internal/prompt"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	flagLimit     int
	flagAllowSkip bool
)

var recommendCmd = &cobra.Command{
	Use:   "recommend [catalog.json]",
	Short: "Answer four questions and browse the matching destinations",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runRecommend,
}

func init() {
	addSessionFlags(recommendCmd)
	rootCmd.AddCommand(recommendCmd)
}

func addSessionFlags(c *cobra.Command) {
	c.Flags().IntVar(&flagLimit, "limit", 0, "Maximum number of activities per query (default from config, 6)")
	c.Flags().BoolVar(&flagAllowSkip, "allow-skip", false, "Allow answering 0 to skip the tier, group and activity questions")
}

// sessionOptions tune the interactive questions.
type sessionOptions struct {
	ActivityLimit int
	AllowSkip     bool
}

func runRecommend(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	c, cfg, err := loadCatalog(ctx, args)
	if err != nil {
		return err
	}

	opts := sessionOptions{ActivityLimit: cfg.ActivityLimit, AllowSkip: cfg.AllowSkip}
	if cmd.Flags().Changed("limit") {
		opts.ActivityLimit = flagLimit
	}
	if cmd.Flags().Changed("allow-skip") {
		opts.AllowSkip = flagAllowSkip
	}

	p := prompt.New(cmd.InOrStdin(), cmd.OutOrStdout())
	err = runSession(ctx, p, c.Destinations(), opts)
	if errors.Is(err, io.EOF) {
		p.Println("\nEncerrando. Até a próxima!")
		return nil
	}
	return err
}

// runSession runs question rounds until the user leaves. The catalog is
// indexed once; every round filters and ranks it afresh.
func runSession(ctx context.Context, p *prompt.Prompter, dests []catalog.Destination, opts sessionOptions) error {
	log := zerolog.Ctx(ctx)
	p.AllowSkip = opts.AllowSkip

	menus := match.BuildMenus(dests)
	log.Debug().Int("tiers", len(menus.Tiers)).Int("group_sizes", len(menus.GroupSizes)).
		Int("climates", len(menus.Climates)).Int("activities", len(menus.Activities)).Msg("menus built")

	for {
		sel, err := askSelection(p, menus, opts.ActivityLimit)
		if err != nil {
			return err
		}
		found := match.Recommend(dests, sel)
		log.Debug().Str("tier", sel.Tier).Str("group", sel.GroupSize).
			Strs("climates", sel.Climates).Strs("activities", sel.Activities).
			Int("matches", len(found)).Msg("query")

		if len(found) == 0 {
			p.Println("\nInfelizmente não encontramos nenhum destino que se encaixe nos seus critérios :(")
			ans, err := p.Line("Deseja recomeçar? (s/n): ")
			if err != nil {
				return err
			}
			if strings.ToLower(ans) == "s" {
				continue
			}
			p.Println("Encerrando. Até a próxima!")
			return nil
		}

		printMatches(p.Out(), found)
		again, err := browse(p, found)
		if err != nil {
			return err
		}
		if !again {
			return nil
		}
	}
}

func askSelection(p *prompt.Prompter, menus match.Menus, limit int) (match.Selection, error) {
	var (
		sel match.Selection
		err error
	)
	if sel.Tier, err = p.Single("Me informe qual é a sua faixa de orçamento para essa viagem.", menus.Tiers); err != nil {
		return sel, err
	}
	if sel.GroupSize, err = p.Single("Me diga o tamanho do grupo de pessoas que vão na viagem.", menus.GroupSizes); err != nil {
		return sel, err
	}
	if sel.Climates, err = p.SingleAsList("Que tipo de clima você tem preferência?", menus.Climates); err != nil {
		return sel, err
	}
	if sel.Activities, err = p.Multi("Que tipos de atividades você está buscando?", menus.Activities, limit); err != nil {
		return sel, err
	}
	return sel, nil
}

// browse lets the user open destination details. It reports whether a new
// round of questions should start.
func browse(p *prompt.Prompter, found []catalog.Destination) (bool, error) {
	pick := func(ans string) (catalog.Destination, bool) {
		i, ok := choice(ans, len(found))
		if !ok {
			return catalog.Destination{}, false
		}
		return found[i], true
	}

	for {
		ans, err := p.Line("\nDigite o número do destino para ver a descrição (ou 0 para recomeçar): ")
		if err != nil {
			return false, err
		}
		if ans == "0" {
			return true, nil
		}
		d, ok := pick(ans)
		if !ok {
			p.Println("Entrada inválida.")
			continue
		}
		printDetails(p.Out(), d)

		next, err := p.Line("\nVer outro destino desta lista (número), '0' para recomeçar, ou 's' para sair: ")
		if err != nil {
			return false, err
		}
		switch next = strings.ToLower(next); next {
		case "s":
			p.Println("Encerrando. Boas viagens!")
			return false, nil
		case "0":
			return true, nil
		}
		if d, ok := pick(next); ok {
			printDetails(p.Out(), d)
			continue
		}
		return true, nil
	}
}

// choice parses a 1-based list number.
func choice(ans string, n int) (int, bool) {
	if ans == "" {
		return 0, false
	}
	k := 0
	for _, r := range ans {
		if r < '0' || r > '9' {
			return 0, false
		}
		k = k*10 + int(r-'0')
		if k > n {
			return 0, false
		}
	}
	if k < 1 {
		return 0, false
	}
	return k - 1, true
}
