package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"

	"github.com/moventis/csob-client/cmd"
)

func main() {
	// Seed CSOB_* variables from a local .env file when one exists.
	_ = godotenv.Load()

	app := &cli.Command{
		Name:  "csob-client",
		Usage: "CSOB Payment Gateway Client",
		Commands: []*cli.Command{
			cmd.EchoCommand(),
			cmd.InitCommand(),
			cmd.ProcessURLCommand(),
			cmd.StatusCommand(),
			cmd.ReverseCommand(),
			cmd.CloseCommand(),
			cmd.RefundCommand(),
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
