package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
)

type shareCmd struct {
	clientID int64
}

func (*shareCmd) Name() string     { return "share" }
func (*shareCmd) Synopsis() string { return "mint a public dashboard link for a client" }
func (*shareCmd) Usage() string {
	return `hrc share -client <id>

  Mints a share token for the client and prints the public link. Anyone
  holding the link can view the client's dashboard without an account.
`
}

func (c *shareCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&c.clientID, "client", 0, "Client to share.")
}

func (c *shareCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.clientID == 0 {
		fmt.Fprintln(os.Stderr, "-client is required")
		return subcommands.ExitUsageError
	}
	client, _, err := authClient()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	token, err := client.AdminShareToken(ctx, c.clientID)
	if err != nil {
		return fail(err)
	}
	fmt.Println(token)
	fmt.Printf("%s/public/%s\n", strings.TrimSuffix(baseURL(), "/api"), token)
	return subcommands.ExitSuccess
}
