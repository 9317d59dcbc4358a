// Package cmd implements the csob-client command line interface.
package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/moventis/csob-client/csob"
	"github.com/moventis/csob-client/gateway"
	"github.com/moventis/csob-client/keys"
)

// gatewayFlags are the connection flags shared by every command. Each falls
// back to its CSOB_* environment variable, which godotenv seeds from a .env
// file when present.
func gatewayFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "merchant-id",
			Usage:   "Merchant identifier assigned by the gateway",
			Sources: cli.EnvVars("CSOB_MERCHANT_ID"),
		},
		&cli.StringFlag{
			Name:    "api-url",
			Usage:   "Gateway API base URL",
			Value:   "https://iapi.iplatebnibrana.csob.cz/api/v1.9",
			Sources: cli.EnvVars("CSOB_API_URL"),
		},
		&cli.StringFlag{
			Name:    "private-key",
			Usage:   "Merchant RSA private key (PEM file path or inline PEM)",
			Sources: cli.EnvVars("CSOB_PRIVATE_KEY"),
		},
		&cli.StringFlag{
			Name:    "gateway-public-key",
			Usage:   "Gateway RSA public key (PEM file path or inline PEM)",
			Sources: cli.EnvVars("CSOB_GATEWAY_PUBLIC_KEY"),
		},
		&cli.BoolFlag{
			Name:  "verbose",
			Usage: "Log requests and responses",
		},
	}
}

// newClient builds a gateway client from the command's flags.
func newClient(cmd *cli.Command) (*csob.Client, error) {
	merchantID := cmd.String("merchant-id")
	privateKey := cmd.String("private-key")
	publicKey := cmd.String("gateway-public-key")
	if merchantID == "" || privateKey == "" || publicKey == "" {
		return nil, errors.New("merchant-id, private-key and gateway-public-key are required (flags or CSOB_* environment)")
	}

	level := slog.LevelWarn
	if cmd.Bool("verbose") {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	return csob.NewClient(csob.Config{
		MerchantID:       merchantID,
		BaseURL:          cmd.String("api-url"),
		PrivateKey:       keys.From(privateKey),
		GatewayPublicKey: keys.From(publicKey),
		Transport:        gateway.NewTransport(&http.Client{}, logger),
		Logger:           logger,
	}), nil
}

// printResult renders a validated response as indented JSON on stdout.
func printResult(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to format result: %w", err)
	}
	fmt.Println(string(out))
	return nil
}
