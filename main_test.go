package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/moventis/csob-client/cmd"
)

func TestMainApp(t *testing.T) {
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

	t.Run("app structure", func(t *testing.T) {
		require.Equal(t, "csob-client", app.Name)
		require.Len(t, app.Commands, 7)

		commandNames := make(map[string]bool)
		for _, c := range app.Commands {
			commandNames[c.Name] = true
		}
		for _, name := range []string{"echo", "init", "process-url", "status", "reverse", "close", "refund"} {
			require.True(t, commandNames[name], name)
		}
		require.False(t, commandNames["invalid-command"])
	})

	t.Run("help command", func(t *testing.T) {
		var buf bytes.Buffer
		app.Writer = &buf

		err := app.Run(context.Background(), []string{"csob-client", "--help"})
		require.NoError(t, err)

		output := buf.String()
		require.Contains(t, output, "csob-client")
		require.Contains(t, output, "COMMANDS:")
	})
}
