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
	"github.com/hrinvest/carteira/date"
	"github.com/hrinvest/carteira/renderer"
)

type contractsCmd struct{}

func (*contractsCmd) Name() string     { return "contracts" }
func (*contractsCmd) Synopsis() string { return "list the contracts of your linked clients" }
func (*contractsCmd) Usage() string {
	return `hrc contracts

  Lists the contracts of every client linked to your account.
`
}

func (*contractsCmd) SetFlags(f *flag.FlagSet) {}

func (*contractsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	client, _, err := authClient()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	contracts, err := client.MyContracts(ctx)
	if err != nil {
		return fail(err)
	}
	clients, err := client.ListClients(ctx)
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.AdminContractsMarkdown(contracts, clients, time.Now()))
	return subcommands.ExitSuccess
}

type contractAddCmd struct {
	form contractFormFlags
}

func (*contractAddCmd) Name() string     { return "contract-add" }
func (*contractAddCmd) Synopsis() string { return "register a contract for one of your clients" }
func (*contractAddCmd) Usage() string {
	return `hrc contract-add -client <id> -title <title> -value <amount> -rate <pct> -invested <date> [-maturity <date>]

  Registers a contract. Amounts use the Brazilian form: "." for thousands
  and "," for decimals, as in 1.234,56.

Usage Examples:
# Registers a contract maturing in two years.
$ hrc contract-add -client 42 -title "Precatório TJSP" -value 10.000,00 -rate 1,5 -invested 2024-01-15 -maturity 2026-01-15

`
}

func (c *contractAddCmd) SetFlags(f *flag.FlagSet) { c.form.register(f) }

func (c *contractAddCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	if err := client.CreateContract(ctx, form); err != nil {
		return fail(err)
	}
	fmt.Printf("Contrato %q cadastrado: %s.\n", form.Title, carteira.BRL(form.PrincipalValue))
	return subcommands.ExitSuccess
}

// contractFormFlags is the flag set shared by the contract-add and
// admin-contract-add/set commands.
type contractFormFlags struct {
	clientID int64
	title    string
	value    string
	rate     string
	invested string
	maturity string
	status   string
	kind     string
	product  string
}

func (c *contractFormFlags) register(f *flag.FlagSet) {
	f.Int64Var(&c.clientID, "client", 0, "Client the contract belongs to.")
	f.StringVar(&c.title, "title", "", "Contract title.")
	f.StringVar(&c.value, "value", "", "Principal value in BRL.")
	f.StringVar(&c.rate, "rate", "", "Monthly rate in percent.")
	f.StringVar(&c.invested, "invested", "", "Investment date (YYYY-MM-DD).")
	f.StringVar(&c.maturity, "maturity", "", "Expected payout date (YYYY-MM-DD).")
	f.StringVar(&c.status, "status", "", "Contract status (ABERTO or FINALIZADO). Resolved from the maturity when empty.")
	f.StringVar(&c.kind, "kind", "", "Contract kind (ATIVO or PASSIVO).")
	f.StringVar(&c.product, "product", "", "Contract product (PRECATORIO or RPV).")
}

func (c *contractFormFlags) build() (api.ContractForm, error) {
	if c.clientID == 0 {
		return api.ContractForm{}, fmt.Errorf("-client is required")
	}
	if c.title == "" {
		return api.ContractForm{}, fmt.Errorf("-title is required")
	}
	for _, d := range []string{c.invested, c.maturity} {
		if d == "" {
			continue
		}
		if _, err := date.Parse(d); err != nil {
			return api.ContractForm{}, fmt.Errorf("invalid date %q: %w", d, err)
		}
	}
	return api.ContractForm{
		ClientID:       c.clientID,
		Title:          c.title,
		PrincipalValue: carteira.ParseCurrency(c.value),
		MonthlyRate:    carteira.ParseCurrency(c.rate),
		InvestmentDate: c.invested,
		MaturityDate:   c.maturity,
		Status:         carteira.Status(c.status),
		Kind:           carteira.Kind(c.kind),
		Product:        carteira.Product(c.product),
	}, nil
}
