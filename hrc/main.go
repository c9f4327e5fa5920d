package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/hrinvest/carteira/cmd"
	"github.com/joho/godotenv"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// Local overrides for the API base, session file and GEMINI_API_KEY.
	godotenv.Load()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")

	known := map[string]bool{"help": true, "flags": true, "commands": true}
	sub := map[string]*complete.Command{}
	for _, c := range cmd.Commands {
		commander.Register(c, "")
		known[c.Name()] = true
		sub[c.Name()] = &complete.Command{}
	}

	completer := &complete.Command{
		Sub: sub,
		Flags: map[string]complete.Predictor{
			"api-base":     predict.Something,
			"session-file": predict.Files("*"),
			"v":            predict.Nothing,
		},
	}
	completer.Complete(path.Base(os.Args[0]))

	flag.Parse()

	// Unknown subcommands fall through to hrc-<name> extensions on PATH.
	if flag.NArg() > 0 && !known[flag.Arg(0)] {
		if ran, code := cmd.RunExtension(flag.Arg(0), flag.Args()[1:]); ran {
			os.Exit(code)
		}
	}

	os.Exit(int(commander.Execute(context.Background())))
}
