package csob

import (
	"context"

	"github.com/moventis/csob-client/payload"
	"github.com/moventis/csob-client/verify"
)

// Echo performs a signed liveness round-trip with the gateway over POST.
func (c *Client) Echo(ctx context.Context) (*verify.Result, error) {
	fields, err := c.echoPayload()
	if err != nil {
		return nil, err
	}
	return c.post(ctx, "echo", fields)
}

// EchoGet performs the liveness round-trip over the GET form of the
// endpoint, with the payload travelling in the URL path.
func (c *Client) EchoGet(ctx context.Context) (*verify.Result, error) {
	fields, err := c.echoPayload()
	if err != nil {
		return nil, err
	}
	return c.get(ctx, "echo", fields)
}

func (c *Client) echoPayload() (payload.Fields, error) {
	return c.signedPayload(
		payload.Pair("merchantId", payload.String(c.config.MerchantID)),
		payload.Pair("dttm", payload.DTTMNow()),
	)
}
