package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/urfave/cli/v3"

	"github.com/moventis/csob-client/verify"
)

func payIDFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:     "pay-id",
		Usage:    "Payment identifier returned by init",
		Required: true,
	}
}

// StatusCommand creates the status command
func StatusCommand() *cli.Command {
	return &cli.Command{
		Name:   "status",
		Usage:  "Query the lifecycle status of a payment",
		Flags:  append(gatewayFlags(), payIDFlag()),
		Action: runPayIDCommand(func(ctx context.Context, cmd *cli.Command, payID string) (*verify.Result, error) {
			client, err := newClient(cmd)
			if err != nil {
				return nil, err
			}
			return client.PaymentStatus(ctx, payID)
		}),
	}
}

// ReverseCommand creates the reverse command
func ReverseCommand() *cli.Command {
	return &cli.Command{
		Name:   "reverse",
		Usage:  "Cancel an authorized, not yet settled payment",
		Flags:  append(gatewayFlags(), payIDFlag()),
		Action: runPayIDCommand(func(ctx context.Context, cmd *cli.Command, payID string) (*verify.Result, error) {
			client, err := newClient(cmd)
			if err != nil {
				return nil, err
			}
			return client.PaymentReverse(ctx, payID)
		}),
	}
}

// CloseCommand creates the close command
func CloseCommand() *cli.Command {
	return &cli.Command{
		Name:  "close",
		Usage: "Capture an authorized payment",
		Flags: append(gatewayFlags(), payIDFlag(),
			&cli.StringFlag{
				Name:  "amount",
				Usage: "Capture amount in hundredths of the currency unit (0 captures the authorized amount)",
				Value: "0",
			},
		),
		Action: runPayIDCommand(func(ctx context.Context, cmd *cli.Command, payID string) (*verify.Result, error) {
			client, err := newClient(cmd)
			if err != nil {
				return nil, err
			}
			amount, err := strconv.ParseInt(cmd.String("amount"), 10, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid amount %q: %w", cmd.String("amount"), err)
			}
			return client.PaymentClose(ctx, payID, amount)
		}),
	}
}

// RefundCommand creates the refund command
func RefundCommand() *cli.Command {
	return &cli.Command{
		Name:  "refund",
		Usage: "Refund a settled payment, fully or partially",
		Flags: append(gatewayFlags(), payIDFlag(),
			&cli.StringFlag{
				Name:  "amount",
				Usage: "Refund amount in hundredths of the currency unit (0 refunds everything)",
				Value: "0",
			},
		),
		Action: runPayIDCommand(func(ctx context.Context, cmd *cli.Command, payID string) (*verify.Result, error) {
			client, err := newClient(cmd)
			if err != nil {
				return nil, err
			}
			amount, err := strconv.ParseInt(cmd.String("amount"), 10, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid amount %q: %w", cmd.String("amount"), err)
			}
			return client.PaymentRefund(ctx, payID, amount)
		}),
	}
}

func runPayIDCommand(op func(ctx context.Context, cmd *cli.Command, payID string) (*verify.Result, error)) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		result, err := op(ctx, cmd, cmd.String("pay-id"))
		if err != nil {
			return err
		}
		return printResult(result)
	}
}
