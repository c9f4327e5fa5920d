package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/google/subcommands"
	"github.com/hrinvest/carteira/renderer"
	"github.com/hrinvest/carteira/state"
)

type adminClientsCmd struct{}

func (*adminClientsCmd) Name() string     { return "admin-clients" }
func (*adminClientsCmd) Synopsis() string { return "list every client in the back office" }
func (*adminClientsCmd) Usage() string {
	return `hrc admin-clients

  Lists every client, with the user accounts each one is linked to.
`
}

func (*adminClientsCmd) SetFlags(f *flag.FlagSet) {}

func (*adminClientsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	client, _, err := authClient()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	clients, err := client.AdminClients(ctx)
	if err != nil {
		return fail(err)
	}
	users, err := client.AdminUsers(ctx)
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.AdminClientsMarkdown(clients, users))
	return subcommands.ExitSuccess
}

type adminClientAddCmd struct {
	form clientFormFlags
}

func (*adminClientAddCmd) Name() string     { return "admin-client-add" }
func (*adminClientAddCmd) Synopsis() string { return "register a client in the back office" }
func (*adminClientAddCmd) Usage() string {
	return `hrc admin-client-add -name <name> -surname <surname> [-type INVESTIDOR|ESCRITORIO] [-document <doc>]

  Registers a client without linking it to any user. Use 'hrc link' to
  make it visible on a user's dashboard.
`
}

func (c *adminClientAddCmd) SetFlags(f *flag.FlagSet) { c.form.register(f) }

func (c *adminClientAddCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	if err := client.AdminCreateClient(ctx, form); err != nil {
		return fail(err)
	}
	fmt.Printf("Cliente %s %s cadastrado.\n", form.FirstName, form.LastName)
	return subcommands.ExitSuccess
}

type adminClientSetCmd struct {
	id   int64
	form clientFormFlags
}

func (*adminClientSetCmd) Name() string     { return "admin-client-set" }
func (*adminClientSetCmd) Synopsis() string { return "update a client" }
func (*adminClientSetCmd) Usage() string {
	return `hrc admin-client-set -id <id> [client flags...]

  Updates a client's record.
`
}

func (c *adminClientSetCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&c.id, "id", 0, "Client to update.")
	c.form.register(f)
}

func (c *adminClientSetCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	if err := client.AdminUpdateClient(ctx, c.id, form); err != nil {
		return fail(err)
	}
	fmt.Printf("Cliente %d atualizado.\n", c.id)
	return subcommands.ExitSuccess
}

// adminClientRmCmd deletes one or more clients. Each id is attempted on its
// own; one failure does not stop the others.
type adminClientRmCmd struct {
	ids idList
}

func (*adminClientRmCmd) Name() string     { return "admin-client-rm" }
func (*adminClientRmCmd) Synopsis() string { return "delete one or more clients" }
func (*adminClientRmCmd) Usage() string {
	return `hrc admin-client-rm -id <id> [-id <id> ...]

  Deletes clients one by one and reports the outcome per id. An expired
  session aborts the ids not yet attempted.
`
}

func (c *adminClientRmCmd) SetFlags(f *flag.FlagSet) {
	f.Var(&c.ids, "id", "Client to delete. Repeatable.")
}

func (c *adminClientRmCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if len(c.ids) == 0 {
		fmt.Fprintln(os.Stderr, "at least one -id is required")
		return subcommands.ExitUsageError
	}
	client, _, err := authClient()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	res := state.NewLoader(client).DeleteClients(ctx, c.ids)
	for _, id := range res.Deleted {
		fmt.Printf("Cliente %d excluído.\n", id)
	}
	for _, id := range res.Failed {
		fmt.Fprintf(os.Stderr, "Cliente %d não excluído.\n", id)
	}
	if err := res.Err(); err != nil {
		return fail(err)
	}
	return subcommands.ExitSuccess
}

// idList collects a repeatable -id flag.
type idList []int64

func (l *idList) String() string {
	s := make([]string, len(*l))
	for i, id := range *l {
		s[i] = strconv.FormatInt(id, 10)
	}
	return fmt.Sprint(s)
}

func (l *idList) Set(v string) error {
	id, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid id %q", v)
	}
	*l = append(*l, id)
	return nil
}
