package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/urfave/cli/v3"

	"github.com/moventis/csob-client/csob"
)

// InitCommand creates the init command
func InitCommand() *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: "Initialize a new payment",
		Flags: append(gatewayFlags(),
			&cli.StringFlag{
				Name:     "order-no",
				Usage:    "E-shop order reference (up to 10 digits)",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "amount",
				Usage:    "Total amount in hundredths of the currency unit",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "currency",
				Usage: "ISO 4217 currency code",
				Value: "CZK",
			},
			&cli.StringFlag{
				Name:     "return-url",
				Usage:    "URL the shopper is redirected back to",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "description",
				Usage: "Payment description shown on the payment page",
			},
			&cli.StringFlag{
				Name:  "merchant-data",
				Usage: "Opaque merchant data echoed back in responses",
			},
			&cli.StringFlag{
				Name:  "customer-id",
				Usage: "Customer identifier for remembered card payments",
			},
			&cli.StringFlag{
				Name:  "language",
				Usage: "Payment page language",
				Value: "CZ",
			},
		),
		Action: runInitCommand,
	}
}

func runInitCommand(ctx context.Context, cmd *cli.Command) error {
	client, err := newClient(cmd)
	if err != nil {
		return err
	}

	amount, err := strconv.ParseInt(cmd.String("amount"), 10, 64)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", cmd.String("amount"), err)
	}

	var merchantData []byte
	if md := cmd.String("merchant-data"); md != "" {
		merchantData = []byte(md)
	}

	result, err := client.PaymentInit(ctx, csob.PaymentInitParams{
		OrderNo:      cmd.String("order-no"),
		TotalAmount:  amount,
		Currency:     cmd.String("currency"),
		Description:  cmd.String("description"),
		ReturnURL:    cmd.String("return-url"),
		MerchantData: merchantData,
		CustomerID:   cmd.String("customer-id"),
		Language:     cmd.String("language"),
	})
	if err != nil {
		return err
	}
	return printResult(result)
}

// ProcessURLCommand creates the process-url command
func ProcessURLCommand() *cli.Command {
	return &cli.Command{
		Name:  "process-url",
		Usage: "Build the signed payment page URL for an initialized payment",
		Flags: append(gatewayFlags(),
			&cli.StringFlag{
				Name:     "pay-id",
				Usage:    "Payment identifier returned by init",
				Required: true,
			},
		),
		Action: runProcessURLCommand,
	}
}

func runProcessURLCommand(ctx context.Context, cmd *cli.Command) error {
	client, err := newClient(cmd)
	if err != nil {
		return err
	}

	url, err := client.PaymentProcessURL(cmd.String("pay-id"))
	if err != nil {
		return err
	}
	fmt.Println(url)
	return nil
}
