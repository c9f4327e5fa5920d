package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/hrinvest/carteira"
	"github.com/hrinvest/carteira/renderer"
)

type publicCmd struct {
	token string
}

func (*publicCmd) Name() string     { return "public" }
func (*publicCmd) Synopsis() string { return "display a shared dashboard" }
func (*publicCmd) Usage() string {
	return `hrc public -token <token>

  Displays the dashboard behind a share token. Works without a session;
  only the token is sent to the server.
`
}

func (c *publicCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.token, "token", "", "Share token minted with 'hrc share'.")
}

func (c *publicCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.token == "" {
		fmt.Fprintln(os.Stderr, "-token is required")
		return subcommands.ExitUsageError
	}

	dash, err := newClient().FetchPublicDashboard(ctx, c.token)
	if err != nil {
		return fail(err)
	}

	p := &renderer.Public{
		Client:    dash.Client,
		Contracts: dash.Contracts,
		KPIs:      carteira.ComputeKPIs(dash.Contracts, dash.Summary),
		Evolution: carteira.PatrimonyEvolution(dash.Contracts),
	}
	if dash.Summary != nil {
		p.Bars = dash.Summary.Bars
	}
	printMarkdown(renderer.PublicMarkdown(p))
	return subcommands.ExitSuccess
}
