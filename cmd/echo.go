package cmd

import (
	"context"

	"github.com/urfave/cli/v3"
)

// EchoCommand creates the echo command
func EchoCommand() *cli.Command {
	return &cli.Command{
		Name:  "echo",
		Usage: "Signed liveness round-trip with the gateway",
		Flags: append(gatewayFlags(),
			&cli.BoolFlag{
				Name:  "get",
				Usage: "Use the GET form of the endpoint",
			},
		),
		Action: runEchoCommand,
	}
}

func runEchoCommand(ctx context.Context, cmd *cli.Command) error {
	client, err := newClient(cmd)
	if err != nil {
		return err
	}

	echo := client.Echo
	if cmd.Bool("get") {
		echo = client.EchoGet
	}
	result, err := echo(ctx)
	if err != nil {
		return err
	}
	return printResult(result)
}
