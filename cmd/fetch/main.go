package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"quotegateway/cmd/fetch/command"
)

func main() {
	app := &cli.App{
		Name:  "fetch",
		Usage: "query the gateway's providers from the command line",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				EnvVars: []string{"CONFIG_FILE"},
				Usage:   "path to config.json or config.toml",
			},
		},
		Commands: []*cli.Command{},
	}

	for _, command := range command.Commands {
		app.Commands = append(app.Commands, command.Command())
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Fatal(err)
	}
}
