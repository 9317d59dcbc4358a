package csob

import (
	"context"

	"github.com/moventis/csob-client/conf"
	"github.com/moventis/csob-client/payload"
	"github.com/moventis/csob-client/verify"
)

// OneclickInitParams are the parameters of OneclickInit.
type OneclickInitParams struct {
	// OrigPayID is the payId of the template payment the card was stored
	// under.
	OrigPayID string
	// OrderNo is the e-shop order reference for the new payment.
	OrderNo string
	// TotalAmount is the amount in hundredths of the currency unit.
	TotalAmount int64
	// Currency is an ISO 4217 code; defaults to CZK.
	Currency string
	// Description labels the payment.
	Description string
}

// OneclickInit creates a follow-up payment from a template payment made
// with a remembered card.
func (c *Client) OneclickInit(ctx context.Context, p OneclickInitParams) (*verify.Result, error) {
	if p.Currency == "" {
		p.Currency = conf.CurrencyCZK
	}
	fields, err := c.signedPayload(
		payload.Pair("merchantId", payload.String(c.config.MerchantID)),
		payload.Pair("origPayId", payload.String(p.OrigPayID)),
		payload.Pair("orderNo", payload.String(p.OrderNo)),
		payload.Pair("dttm", payload.DTTMNow()),
		payload.Pair("totalAmount", zeroAbsent(p.TotalAmount)),
		payload.Pair("currency", payload.String(p.Currency)),
		payload.Pair("description", payload.String(p.Description)),
	)
	if err != nil {
		return nil, err
	}
	return c.post(ctx, "payment/oneclick/init", fields)
}

// OneclickStart starts the processing of a payment created by OneclickInit.
func (c *Client) OneclickStart(ctx context.Context, payID string) (*verify.Result, error) {
	fields, err := c.merchantPayID(payID)
	if err != nil {
		return nil, err
	}
	return c.post(ctx, "payment/oneclick/start", fields)
}
