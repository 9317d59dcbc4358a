// Package csob implements a client for the CSOB payment gateway REST API.
//
// Every request carries an RSA signature over a deterministically ordered
// subset of its fields, and every response signature is verified before the
// payload is handed back. The client composes the payload, crypto, gateway
// and verify packages into the typed operations of the gateway API.
//
// # Usage
//
// Create a client and initialize a payment:
//
//	client := csob.NewClient(csob.Config{
//		MerchantID:       "M1MIPS0000",
//		BaseURL:          "https://iapi.iplatebnibrana.csob.cz/api/v1.9",
//		PrivateKey:       keys.FilePath("merchant.key"),
//		GatewayPublicKey: keys.FilePath("mips_iplatebnibrana.csob.cz.pub"),
//	})
//
//	result, err := client.PaymentInit(ctx, csob.PaymentInitParams{
//		OrderNo:     "1234567",
//		TotalAmount: 10000,
//		Description: "Order 1234567",
//		ReturnURL:   "https://eshop.example.com/return",
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	payID, _ := result.Payload.Get("payId")
package csob

import (
	"context"
	"log/slog"

	"github.com/moventis/csob-client/crypto"
	"github.com/moventis/csob-client/gateway"
	"github.com/moventis/csob-client/keys"
	"github.com/moventis/csob-client/payload"
	"github.com/moventis/csob-client/verify"
)

// Config carries the static parameters of a gateway client.
type Config struct {
	// MerchantID is the merchant identifier assigned by the gateway.
	MerchantID string
	// BaseURL is the gateway API root, e.g.
	// "https://iapi.iplatebnibrana.csob.cz/api/v1.9".
	BaseURL string
	// PrivateKey references the merchant RSA private key.
	PrivateKey keys.KeyRef
	// GatewayPublicKey references the gateway RSA public key used to verify
	// responses.
	GatewayPublicKey keys.KeyRef
	// Transport sends the requests. Optional; defaults to a transport over
	// http.DefaultClient.
	Transport *gateway.Transport
	// Logger receives payload diagnostics. Optional; defaults to
	// slog.Default.
	Logger *slog.Logger
}

// Client is a CSOB payment gateway client. It holds no per-call state, so a
// single instance is safe for concurrent use.
type Client struct {
	config    Config
	transport *gateway.Transport
	logger    *slog.Logger
}

// NewClient creates a gateway client from config.
func NewClient(config Config) *Client {
	transport := config.Transport
	if transport == nil {
		transport = gateway.NewTransport(nil, config.Logger)
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{config: config, transport: transport, logger: logger}
}

// signedPayload assembles and signs an outgoing payload, logging the result.
func (c *Client) signedPayload(pairs ...payload.Field) (payload.Fields, error) {
	fields, err := crypto.SignedPayload(c.config.PrivateKey, pairs...)
	if err != nil {
		return nil, err
	}
	c.logger.Debug("payload signed", "payload", fields.String())
	return fields, nil
}

// post sends a signed payload to endpoint and validates the response.
func (c *Client) post(ctx context.Context, endpoint string, fields payload.Fields) (*verify.Result, error) {
	resp, err := c.transport.Post(ctx, gateway.JoinURL(c.config.BaseURL, endpoint), fields)
	if err != nil {
		return nil, err
	}
	return verify.ValidateResponse(resp, c.config.GatewayPublicKey)
}

// put sends a signed payload to endpoint with PUT and validates the
// response.
func (c *Client) put(ctx context.Context, endpoint string, fields payload.Fields) (*verify.Result, error) {
	resp, err := c.transport.Put(ctx, gateway.JoinURL(c.config.BaseURL, endpoint), fields)
	if err != nil {
		return nil, err
	}
	return verify.ValidateResponse(resp, c.config.GatewayPublicKey)
}

// get requests a signed URL built from fields and validates the response.
func (c *Client) get(ctx context.Context, endpoint string, fields payload.Fields) (*verify.Result, error) {
	url, err := gateway.SignedURL(c.config.BaseURL, endpoint, fields)
	if err != nil {
		return nil, err
	}
	resp, err := c.transport.Get(ctx, url)
	if err != nil {
		return nil, err
	}
	return verify.ValidateResponse(resp, c.config.GatewayPublicKey)
}

// merchantPayID builds the signed merchantId|payId|dttm payload shared by
// the payment state operations.
func (c *Client) merchantPayID(payID string) (payload.Fields, error) {
	return c.signedPayload(
		payload.Pair("merchantId", payload.String(c.config.MerchantID)),
		payload.Pair("payId", payload.String(payID)),
		payload.Pair("dttm", payload.DTTMNow()),
	)
}
