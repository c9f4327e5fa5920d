package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/hrinvest/carteira"
	"github.com/hrinvest/carteira/api"
	"github.com/hrinvest/carteira/renderer"
	"github.com/hrinvest/carteira/session"
	"github.com/hrinvest/carteira/state"
)

// dashboardCmd holds the flags for the 'dashboard' subcommand.
type dashboardCmd struct {
	clientID int64
}

func (*dashboardCmd) Name() string     { return "dashboard" }
func (*dashboardCmd) Synopsis() string { return "display the dashboard of a linked client" }
func (*dashboardCmd) Usage() string {
	return `hrc dashboard [-client <id>]

  Displays the investment dashboard of one of your linked clients: the
  indicators, the monthly rate chart and the contract list. The chosen
  client is remembered for the next call.
`
}

func (c *dashboardCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&c.clientID, "client", 0, "Client to display. Defaults to the last one chosen.")
}

func (c *dashboardCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	client, s, err := authClient()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if c.clientID == 0 {
		c.clientID = s.DashboardClient
	}

	snap, err := state.NewLoader(client).Load(ctx, s.User, c.clientID, api.ContractFilters{})
	if err != nil {
		return fail(err)
	}

	selected, contracts := selectClient(snap, c.clientID)
	if selected == nil && c.clientID != 0 {
		fmt.Fprintf(os.Stderr, "Cliente %d não está vinculado à sua conta.\n", c.clientID)
		return subcommands.ExitFailure
	}

	d := &renderer.Dashboard{
		User:      s.User,
		Client:    selected,
		Contracts: contracts,
		KPIs:      carteira.ComputeKPIs(contracts, snap.Summary),
		Bars:      carteira.MonthlyBars(contracts, snap.Summary),
	}
	printMarkdown(renderer.DashboardMarkdown(d))

	// Remember the choice for the next call.
	if selected != nil && s.DashboardClient != selected.ID {
		s.DashboardClient = selected.ID
		if err := session.Save(sessionPath(), s); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not save session: %v\n", err)
		}
	}
	return subcommands.ExitSuccess
}

// selectClient picks the requested client, or the first linked one when id is
// 0, and filters the contracts down to it.
func selectClient(snap *state.Snapshot, id int64) (*carteira.Client, []carteira.Contract) {
	var selected *carteira.Client
	for i := range snap.Clients {
		if id == 0 || snap.Clients[i].ID == id {
			selected = &snap.Clients[i]
			break
		}
	}
	if selected == nil {
		return nil, nil
	}
	var contracts []carteira.Contract
	for _, ct := range snap.Contracts {
		if ct.ClientID == selected.ID {
			contracts = append(contracts, ct)
		}
	}
	return selected, contracts
}
