package csob

import (
	"context"

	"github.com/moventis/csob-client/payload"
	"github.com/moventis/csob-client/verify"
)

// CustomerInfo asks the gateway whether it remembers any cards for the given
// customer. The answer arrives in the resultCode of the validated payload.
func (c *Client) CustomerInfo(ctx context.Context, customerID string) (*verify.Result, error) {
	fields, err := c.signedPayload(
		payload.Pair("merchantId", payload.String(c.config.MerchantID)),
		payload.Pair("customerId", payload.String(customerID)),
		payload.Pair("dttm", payload.DTTMNow()),
	)
	if err != nil {
		return nil, err
	}
	return c.get(ctx, "customer/info", fields)
}
