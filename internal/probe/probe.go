package probe

import (
	"fmt"
	"io"

	"go-dexprobe/internal/config"
	"go-dexprobe/internal/dexscreener"
	"go-dexprobe/internal/util"
	"go-dexprobe/pkg/models"
)

type check struct {
	label string
	fetch func() (*models.Envelope, error)
}

// Probe runs the configured API checks strictly in order and writes one
// result line per check. The first failing check aborts the run; later
// checks are never issued.
type Probe struct {
	checks []check
	out    io.Writer
	logger *util.Logger
}

func NewProbe(cfg *config.Config, client *dexscreener.Client, out io.Writer) *Probe {
	p := &Probe{
		out:    out,
		logger: util.NewLogger(),
	}

	symbol, address := cfg.GetToken()
	p.checks = append(p.checks, check{
		label: fmt.Sprintf("Tokens API (%s)", symbol),
		fetch: func() (*models.Envelope, error) {
			return client.TokenPairs(address)
		},
	})

	for _, query := range cfg.GetSearchQueries() {
		query := query
		p.checks = append(p.checks, check{
			label: fmt.Sprintf("Search API (%s)", query),
			fetch: func() (*models.Envelope, error) {
				return client.Search(query)
			},
		})
	}

	return p
}

func (p *Probe) Run() error {
	for _, c := range p.checks {
		p.logger.Debug("Running check", "check", c.label)

		envelope, err := c.fetch()
		if err != nil {
			return fmt.Errorf("%s: %w", c.label, err)
		}

		fmt.Fprintf(p.out, "%s found %d pairs\n", c.label, len(envelope.Pairs))
	}
	return nil
}
