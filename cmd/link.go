package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type linkCmd struct {
	clientID int64
	userID   int64
}

func (*linkCmd) Name() string     { return "link" }
func (*linkCmd) Synopsis() string { return "link a client to a user account" }
func (*linkCmd) Usage() string {
	return `hrc link -client <id> -user <id>

  Links a client to a user account, so the client shows up on that
  user's dashboard.
`
}

func (c *linkCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&c.clientID, "client", 0, "Client to link.")
	f.Int64Var(&c.userID, "user", 0, "User account to link the client to.")
}

func (c *linkCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.clientID == 0 || c.userID == 0 {
		fmt.Fprintln(os.Stderr, "link requires -client and -user")
		return subcommands.ExitUsageError
	}
	client, _, err := authClient()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := client.AdminLinkClient(ctx, c.clientID, c.userID); err != nil {
		return fail(err)
	}
	fmt.Printf("Cliente %d vinculado ao usuário %d.\n", c.clientID, c.userID)
	return subcommands.ExitSuccess
}

type linkBulkCmd struct {
	userID    int64
	clientIDs idList
}

func (*linkBulkCmd) Name() string     { return "link-bulk" }
func (*linkBulkCmd) Synopsis() string { return "link several clients to one user account" }
func (*linkBulkCmd) Usage() string {
	return `hrc link-bulk -user <id> -client <id> [-client <id> ...]

  Links several clients to one user account in a single call.
`
}

func (c *linkBulkCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&c.userID, "user", 0, "User account to link the clients to.")
	f.Var(&c.clientIDs, "client", "Client to link. Repeatable.")
}

func (c *linkBulkCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.userID == 0 || len(c.clientIDs) == 0 {
		fmt.Fprintln(os.Stderr, "link-bulk requires -user and at least one -client")
		return subcommands.ExitUsageError
	}
	client, _, err := authClient()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := client.AdminLinkClientsToUser(ctx, c.userID, c.clientIDs); err != nil {
		return fail(err)
	}
	fmt.Printf("%d clientes vinculados ao usuário %d.\n", len(c.clientIDs), c.userID)
	return subcommands.ExitSuccess
}
