package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/hrinvest/carteira/api"
	"github.com/hrinvest/carteira/session"
)

type registerCmd struct {
	name     string
	email    string
	password string
}

func (*registerCmd) Name() string     { return "register" }
func (*registerCmd) Synopsis() string { return "create a new account and log in" }
func (*registerCmd) Usage() string {
	return `hrc register -name <name> -email <email> -password <password>

  Creates a new user account and immediately logs into it. New accounts get
  the USER role; an admin can promote them with 'hrc admin-user-set'.
`
}

func (c *registerCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Display name for the account.")
	f.StringVar(&c.email, "email", "", "Account email.")
	f.StringVar(&c.password, "password", "", "Account password.")
}

func (c *registerCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" || c.email == "" || c.password == "" {
		fmt.Fprintln(os.Stderr, "register requires -name, -email and -password")
		return subcommands.ExitUsageError
	}

	client := newClient()
	form := api.RegisterForm{Name: c.name, Email: c.email, Password: c.password}
	if err := client.Register(ctx, form); err != nil {
		fmt.Fprintf(os.Stderr, "Cadastro falhou: %v\n", err)
		return subcommands.ExitFailure
	}

	resp, err := client.Login(ctx, api.Credentials{Email: c.email, Password: c.password})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Conta criada, mas o login falhou: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := session.Save(sessionPath(), &session.Session{Token: resp.Token, User: resp.User}); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving session: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Conta criada. Logado como %s.\n", resp.User.Name)
	return subcommands.ExitSuccess
}
