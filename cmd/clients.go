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
)

type clientsCmd struct{}

func (*clientsCmd) Name() string     { return "clients" }
func (*clientsCmd) Synopsis() string { return "list the clients linked to your account" }
func (*clientsCmd) Usage() string {
	return `hrc clients

  Lists the clients linked to your account.
`
}

func (*clientsCmd) SetFlags(f *flag.FlagSet) {}

func (*clientsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	client, _, err := authClient()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	clients, err := client.ListClients(ctx)
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.AdminClientsMarkdown(clients, nil))
	return subcommands.ExitSuccess
}

type clientAddCmd struct {
	form clientFormFlags
}

func (*clientAddCmd) Name() string     { return "client-add" }
func (*clientAddCmd) Synopsis() string { return "register a new client" }
func (*clientAddCmd) Usage() string {
	return `hrc client-add -name <name> -surname <surname> [-type INVESTIDOR|ESCRITORIO] [-document <doc>]

  Registers a new client and links it to your account.
`
}

func (c *clientAddCmd) SetFlags(f *flag.FlagSet) { c.form.register(f) }

func (c *clientAddCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	form, err := c.form.build()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	client, _, err := authClient()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := client.CreateClient(ctx, form); err != nil {
		return fail(err)
	}
	fmt.Printf("Cliente %s %s cadastrado.\n", form.FirstName, form.LastName)
	return subcommands.ExitSuccess
}

type clientSetCmd struct {
	id   int64
	form clientFormFlags
}

func (*clientSetCmd) Name() string     { return "client-set" }
func (*clientSetCmd) Synopsis() string { return "update one of your clients" }
func (*clientSetCmd) Usage() string {
	return `hrc client-set -id <id> [client flags...]

  Updates one of your linked clients.
`
}

func (c *clientSetCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&c.id, "id", 0, "Client to update.")
	c.form.register(f)
}

func (c *clientSetCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == 0 {
		fmt.Fprintln(os.Stderr, "-id is required")
		return subcommands.ExitUsageError
	}
	form, err := c.form.build()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	client, _, err := authClient()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := client.UpdateClient(ctx, c.id, form); err != nil {
		return fail(err)
	}
	fmt.Printf("Cliente %d atualizado.\n", c.id)
	return subcommands.ExitSuccess
}

type clientRmCmd struct {
	id int64
}

func (*clientRmCmd) Name() string     { return "client-rm" }
func (*clientRmCmd) Synopsis() string { return "delete one of your clients" }
func (*clientRmCmd) Usage() string {
	return `hrc client-rm -id <id>

  Deletes one of your linked clients and all of its contracts.
`
}

func (c *clientRmCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&c.id, "id", 0, "Client to delete.")
}

func (c *clientRmCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == 0 {
		fmt.Fprintln(os.Stderr, "-id is required")
		return subcommands.ExitUsageError
	}
	client, _, err := authClient()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := client.DeleteClient(ctx, c.id); err != nil {
		return fail(err)
	}
	fmt.Printf("Cliente %d excluído.\n", c.id)
	return subcommands.ExitSuccess
}

// clientFormFlags is the flag set shared by the client-add and
// admin-client-add/set commands.
type clientFormFlags struct {
	name     string
	surname  string
	typ      string
	document string
}

func (c *clientFormFlags) register(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Client first name.")
	f.StringVar(&c.surname, "surname", "", "Client surname.")
	f.StringVar(&c.typ, "type", string(carteira.ClientInvestor), "Client type (INVESTIDOR or ESCRITORIO).")
	f.StringVar(&c.document, "document", "", "CPF or CNPJ.")
}

func (c *clientFormFlags) build() (api.ClientForm, error) {
	if c.name == "" {
		return api.ClientForm{}, fmt.Errorf("-name is required")
	}
	switch carteira.ClientType(c.typ) {
	case carteira.ClientInvestor, carteira.ClientOffice:
	default:
		return api.ClientForm{}, fmt.Errorf("unknown client type %q", c.typ)
	}
	return api.ClientForm{
		FirstName: c.name,
		LastName:  c.surname,
		Type:      carteira.ClientType(c.typ),
		Document:  c.document,
	}, nil
}
