package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/subcommands"
	"github.com/hrinvest/carteira"
	"github.com/hrinvest/carteira/api"
	"github.com/hrinvest/carteira/renderer"
)

// adminContractsCmd holds the flags for the 'admin-contracts' subcommand.
type adminContractsCmd struct {
	status  string
	kind    string
	product string
}

func (*adminContractsCmd) Name() string     { return "admin-contracts" }
func (*adminContractsCmd) Synopsis() string { return "list every contract in the back office" }
func (*adminContractsCmd) Usage() string {
	return `hrc admin-contracts [-status <s>] [-kind <k>] [-product <p>]

  Lists every contract, optionally filtered. Filters are applied by the
  server; an empty flag means no filter on that field.
`
}

func (c *adminContractsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.status, "status", "", "Filter by status (ABERTO or FINALIZADO).")
	f.StringVar(&c.kind, "kind", "", "Filter by kind (ATIVO or PASSIVO).")
	f.StringVar(&c.product, "product", "", "Filter by product (PRECATORIO or RPV).")
}

func (c *adminContractsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	client, _, err := authClient()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	filters := api.ContractFilters{
		Status:  carteira.Status(c.status),
		Kind:    carteira.Kind(c.kind),
		Product: carteira.Product(c.product),
	}
	contracts, err := client.AdminContracts(ctx, filters)
	if err != nil {
		return fail(err)
	}
	clients, err := client.AdminClients(ctx)
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.AdminContractsMarkdown(contracts, clients, time.Now()))
	return subcommands.ExitSuccess
}

type adminContractAddCmd struct {
	form contractFormFlags
}

func (*adminContractAddCmd) Name() string     { return "admin-contract-add" }
func (*adminContractAddCmd) Synopsis() string { return "register a contract for any client" }
func (*adminContractAddCmd) Usage() string {
	return `hrc admin-contract-add -client <id> -title <title> -value <amount> -rate <pct> -invested <date> [-maturity <date>] [-kind <k>] [-product <p>]

  Registers a contract for any client, not only the linked ones.
`
}

func (c *adminContractAddCmd) SetFlags(f *flag.FlagSet) { c.form.register(f) }

func (c *adminContractAddCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	if err := client.AdminCreateContract(ctx, form); err != nil {
		return fail(err)
	}
	fmt.Printf("Contrato %q cadastrado.\n", form.Title)
	return subcommands.ExitSuccess
}

type adminContractSetCmd struct {
	id   int64
	form contractFormFlags
}

func (*adminContractSetCmd) Name() string     { return "admin-contract-set" }
func (*adminContractSetCmd) Synopsis() string { return "update a contract" }
func (*adminContractSetCmd) Usage() string {
	return `hrc admin-contract-set -id <id> [contract flags...]

  Updates a contract. Only the given flags are changed; zero values are
  left out of the patch.
`
}

func (c *adminContractSetCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&c.id, "id", 0, "Contract to update.")
	c.form.register(f)
}

func (c *adminContractSetCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == 0 {
		fmt.Fprintln(os.Stderr, "-id is required")
		return subcommands.ExitUsageError
	}
	form := api.ContractForm{
		ClientID:       c.form.clientID,
		Title:          c.form.title,
		PrincipalValue: carteira.ParseCurrency(c.form.value),
		MonthlyRate:    carteira.ParseCurrency(c.form.rate),
		InvestmentDate: c.form.invested,
		MaturityDate:   c.form.maturity,
		Status:         carteira.Status(c.form.status),
		Kind:           carteira.Kind(c.form.kind),
		Product:        carteira.Product(c.form.product),
	}
	client, _, err := authClient()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := client.AdminUpdateContract(ctx, c.id, form); err != nil {
		return fail(err)
	}
	fmt.Printf("Contrato %d atualizado.\n", c.id)
	return subcommands.ExitSuccess
}

type adminContractRmCmd struct {
	id int64
}

func (*adminContractRmCmd) Name() string     { return "admin-contract-rm" }
func (*adminContractRmCmd) Synopsis() string { return "delete a contract" }
func (*adminContractRmCmd) Usage() string {
	return `hrc admin-contract-rm -id <id>

  Deletes a contract. There is no undo.
`
}

func (c *adminContractRmCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&c.id, "id", 0, "Contract to delete.")
}

func (c *adminContractRmCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == 0 {
		fmt.Fprintln(os.Stderr, "-id is required")
		return subcommands.ExitUsageError
	}
	client, _, err := authClient()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := client.AdminDeleteContract(ctx, c.id); err != nil {
		return fail(err)
	}
	fmt.Printf("Contrato %d excluído.\n", c.id)
	return subcommands.ExitSuccess
}
