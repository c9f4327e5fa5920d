// Package cmd implements the CLI application for the HR Investimentos
// back office.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/hrinvest/carteira/api"
	"github.com/hrinvest/carteira/session"
)

// Commands lists every subcommand.
// A main package ranges over Commands to register them, and Execute() the user-selected one.
var Commands = []subcommands.Command{
	&registerCmd{},
	&loginCmd{},
	&logoutCmd{},
	&whoamiCmd{},

	&dashboardCmd{},
	&clientsCmd{},
	&clientAddCmd{},
	&clientSetCmd{},
	&clientRmCmd{},
	&contractsCmd{},
	&contractAddCmd{},

	&adminContractsCmd{},
	&adminContractAddCmd{},
	&adminContractSetCmd{},
	&adminContractRmCmd{},
	&adminClientsCmd{},
	&adminClientAddCmd{},
	&adminClientSetCmd{},
	&adminClientRmCmd{},
	&adminUsersCmd{},
	&adminUserSetCmd{},
	&adminUserRmCmd{},
	&linkCmd{},
	&linkBulkCmd{},
	&shareCmd{},
	&publicCmd{},

	&assistCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var apiBase = flag.String("api-base", "", "Base URL of the HR Investimentos API. Defaults to $HRC_API_BASE, then "+api.DefaultBase+".")
var sessionFile = flag.String("session-file", "", "Path to the session file. Defaults to $HRC_SESSION_FILE, then the user config dir.")
var Verbose = flag.Bool("v", false, "Log every API request on stderr")

// baseURL resolves the API base: flag, then environment (godotenv loads a
// local .env into it), then the built-in default.
func baseURL() string {
	if *apiBase != "" {
		return *apiBase
	}
	if v := os.Getenv(EnvAPIBase); v != "" {
		return v
	}
	return api.DefaultBase
}

// sessionPath resolves the session file location the same way.
func sessionPath() string {
	if *sessionFile != "" {
		return *sessionFile
	}
	if v := os.Getenv(EnvSessionFile); v != "" {
		return v
	}
	return session.DefaultPath()
}

// newClient returns an unauthenticated API client for the configured base.
func newClient() *api.Client {
	api.Verbose = *Verbose
	return api.New(baseURL())
}

// authClient loads the session and returns a client carrying its token.
func authClient() (*api.Client, *session.Session, error) {
	s, err := session.Load(sessionPath())
	if err != nil {
		return nil, nil, err
	}
	return newClient().WithToken(s.Token), s, nil
}

// fail reports an API error and maps it to an exit status. An expired or
// revoked token also drops the local session, so the next command asks for a
// fresh login instead of failing the same way.
func fail(err error) subcommands.ExitStatus {
	if api.IsUnauthorized(err) {
		session.Clear(sessionPath())
		fmt.Fprintln(os.Stderr, "Sessão expirada. Faça login novamente.")
		return subcommands.ExitFailure
	}
	fmt.Fprintln(os.Stderr, "Error:", err)
	return subcommands.ExitFailure
}
