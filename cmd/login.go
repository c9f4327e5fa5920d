package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/hrinvest/carteira/api"
	"github.com/hrinvest/carteira/session"
	"golang.org/x/term"
)

type loginCmd struct {
	email    string
	password string
}

func (*loginCmd) Name() string     { return "login" }
func (*loginCmd) Synopsis() string { return "authenticate and store a local session" }
func (*loginCmd) Usage() string {
	return `hrc login [-email <email>] [-password <password>]

  Authenticates against the API and stores the issued token in the session
  file. Credentials not given as flags are prompted for; the password prompt
  does not echo.
`
}

func (c *loginCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.email, "email", "", "Account email.")
	f.StringVar(&c.password, "password", "", "Account password. Prompted when omitted.")
}

func (c *loginCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	email, password, err := c.credentials()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading credentials: %v\n", err)
		return subcommands.ExitFailure
	}

	resp, err := newClient().Login(ctx, api.Credentials{Email: email, Password: password})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Login falhou: %v\n", err)
		return subcommands.ExitFailure
	}

	s := &session.Session{Token: resp.Token, User: resp.User}
	if err := session.Save(sessionPath(), s); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving session: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Logado como %s (%s).\n", resp.User.Name, resp.User.Role)
	return subcommands.ExitSuccess
}

func (c *loginCmd) credentials() (email, password string, err error) {
	email, password = c.email, c.password
	reader := bufio.NewReader(os.Stdin)
	if email == "" {
		fmt.Print("Email: ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return "", "", err
		}
		email = strings.TrimSpace(line)
	}
	if password == "" {
		fmt.Print("Senha: ")
		b, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Println()
		if err != nil {
			return "", "", err
		}
		password = string(b)
	}
	return email, password, nil
}
