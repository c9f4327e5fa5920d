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

type adminUsersCmd struct{}

func (*adminUsersCmd) Name() string     { return "admin-users" }
func (*adminUsersCmd) Synopsis() string { return "list every user account" }
func (*adminUsersCmd) Usage() string {
	return `hrc admin-users

  Lists every user account with its role.
`
}

func (*adminUsersCmd) SetFlags(f *flag.FlagSet) {}

func (*adminUsersCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	client, _, err := authClient()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	users, err := client.AdminUsers(ctx)
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.AdminUsersMarkdown(users))
	return subcommands.ExitSuccess
}

type adminUserSetCmd struct {
	id    int64
	name  string
	email string
	role  string
}

func (*adminUserSetCmd) Name() string     { return "admin-user-set" }
func (*adminUserSetCmd) Synopsis() string { return "update a user account" }
func (*adminUserSetCmd) Usage() string {
	return `hrc admin-user-set -id <id> [-name <name>] [-email <email>] [-role ADMIN|USER]

  Updates a user account, typically to promote or demote its role.
`
}

func (c *adminUserSetCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&c.id, "id", 0, "User to update.")
	f.StringVar(&c.name, "name", "", "Display name.")
	f.StringVar(&c.email, "email", "", "Account email.")
	f.StringVar(&c.role, "role", "", "Account role (ADMIN or USER).")
}

func (c *adminUserSetCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == 0 {
		fmt.Fprintln(os.Stderr, "-id is required")
		return subcommands.ExitUsageError
	}
	switch carteira.Role(c.role) {
	case "", carteira.RoleAdmin, carteira.RoleUser:
	default:
		fmt.Fprintf(os.Stderr, "unknown role %q\n", c.role)
		return subcommands.ExitUsageError
	}
	client, _, err := authClient()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	form := api.UserForm{Name: c.name, Email: c.email, Role: carteira.Role(c.role)}
	user, err := client.AdminUpdateUser(ctx, c.id, form)
	if err != nil {
		return fail(err)
	}
	fmt.Printf("Usuário %d atualizado: %s (%s).\n", user.ID, user.Name, user.Role)
	return subcommands.ExitSuccess
}

type adminUserRmCmd struct {
	id int64
}

func (*adminUserRmCmd) Name() string     { return "admin-user-rm" }
func (*adminUserRmCmd) Synopsis() string { return "delete a user account" }
func (*adminUserRmCmd) Usage() string {
	return `hrc admin-user-rm -id <id>

  Deletes a user account. The clients linked to it are kept.
`
}

func (c *adminUserRmCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&c.id, "id", 0, "User to delete.")
}

func (c *adminUserRmCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == 0 {
		fmt.Fprintln(os.Stderr, "-id is required")
		return subcommands.ExitUsageError
	}
	client, _, err := authClient()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := client.AdminDeleteUser(ctx, c.id); err != nil {
		return fail(err)
	}
	fmt.Printf("Usuário %d excluído.\n", c.id)
	return subcommands.ExitSuccess
}
