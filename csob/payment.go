package csob

import (
	"context"

	"github.com/moventis/csob-client/conf"
	"github.com/moventis/csob-client/gateway"
	"github.com/moventis/csob-client/payload"
	"github.com/moventis/csob-client/verify"
)

// PaymentInitParams are the parameters of PaymentInit. Zero values of the
// optional fields fall back to the gateway defaults: payment operation by
// card, CZK, closed payment, POST return redirect, CZ payment page.
type PaymentInitParams struct {
	// OrderNo is the e-shop order reference, up to 10 digits.
	OrderNo string
	// TotalAmount is the payment amount in hundredths of the currency unit.
	TotalAmount int64
	// Currency is an ISO 4217 code accepted by the gateway.
	Currency string
	// Description labels the payment on the payment page.
	Description string
	// Cart holds 1 or 2 line items. When empty, a single item covering the
	// whole amount is derived from Description.
	Cart payload.Cart
	// OpenPayment leaves the payment uncaptured (closePayment false).
	OpenPayment bool
	// ReturnURL receives the shopper redirect after payment.
	ReturnURL string
	// ReturnMethod is the redirect method, POST or GET.
	ReturnMethod string
	// PayOperation and PayMethod select the payment flow.
	PayOperation string
	PayMethod    string
	// MerchantData is opaque data echoed back in the response, limited to
	// 255 characters after base64 encoding.
	MerchantData []byte
	// CustomerID enables remembered card payments for a known customer.
	CustomerID string
	// Language of the payment page.
	Language string
	// TTLSec is the payment validity window in seconds.
	TTLSec int64
	// LogoVersion and ColorSchemeVersion select merchant branding.
	LogoVersion        int64
	ColorSchemeVersion int64
}

// maxCartItemName is the gateway limit on cart item names.
const maxCartItemName = 20

// PaymentInit creates a new payment. The returned payload carries the payId
// under which the gateway tracks the payment from here on.
func (c *Client) PaymentInit(ctx context.Context, p PaymentInitParams) (*verify.Result, error) {
	merchantData, err := payload.EncodeMerchantData(p.MerchantData)
	if err != nil {
		return nil, err
	}

	if p.PayOperation == "" {
		p.PayOperation = conf.PayOperationPayment
	}
	if p.PayMethod == "" {
		p.PayMethod = conf.PayMethodCard
	}
	if p.Currency == "" {
		p.Currency = conf.CurrencyCZK
	}
	if p.ReturnMethod == "" {
		p.ReturnMethod = conf.ReturnMethodPost
	}
	if p.Language == "" {
		p.Language = conf.LanguageCZ
	}
	if len(p.Cart) == 0 {
		// Truncate by runes, not bytes: a split UTF-8 sequence would
		// marshal differently than it signs.
		name := p.Description
		if runes := []rune(name); len(runes) > maxCartItemName {
			name = string(runes[:maxCartItemName])
		}
		p.Cart = payload.Cart{payload.CartItem(name, 1, p.TotalAmount, "")}
	}

	fields, err := c.signedPayload(
		payload.Pair("merchantId", payload.String(c.config.MerchantID)),
		payload.Pair("orderNo", payload.String(p.OrderNo)),
		payload.Pair("dttm", payload.DTTMNow()),
		payload.Pair("payOperation", payload.String(p.PayOperation)),
		payload.Pair("payMethod", payload.String(p.PayMethod)),
		payload.Pair("totalAmount", payload.Int(p.TotalAmount)),
		payload.Pair("currency", payload.String(p.Currency)),
		payload.Pair("closePayment", payload.Bool(!p.OpenPayment)),
		payload.Pair("returnUrl", payload.String(p.ReturnURL)),
		payload.Pair("returnMethod", payload.String(p.ReturnMethod)),
		payload.Pair("cart", payload.CartValue(p.Cart)),
		payload.Pair("description", payload.String(p.Description)),
		payload.Pair("merchantData", payload.String(merchantData)),
		payload.Pair("customerId", payload.String(p.CustomerID)),
		payload.Pair("language", payload.String(p.Language)),
		payload.Pair("ttlSec", zeroAbsent(p.TTLSec)),
		payload.Pair("logoVersion", zeroAbsent(p.LogoVersion)),
		payload.Pair("colorSchemeVersion", zeroAbsent(p.ColorSchemeVersion)),
	)
	if err != nil {
		return nil, err
	}
	return c.post(ctx, "payment/init", fields)
}

// PaymentProcessURL builds the signed URL the shopper is redirected to for
// entering card details. No request is sent.
func (c *Client) PaymentProcessURL(payID string) (string, error) {
	fields, err := c.merchantPayID(payID)
	if err != nil {
		return "", err
	}
	return gateway.SignedURL(c.config.BaseURL, "payment/process", fields)
}

// PaymentStatus queries the current lifecycle status of a payment.
func (c *Client) PaymentStatus(ctx context.Context, payID string) (*verify.Result, error) {
	fields, err := c.merchantPayID(payID)
	if err != nil {
		return nil, err
	}
	return c.get(ctx, "payment/status", fields)
}

// PaymentReverse cancels an authorized, not yet settled payment.
func (c *Client) PaymentReverse(ctx context.Context, payID string) (*verify.Result, error) {
	fields, err := c.merchantPayID(payID)
	if err != nil {
		return nil, err
	}
	return c.put(ctx, "payment/reverse", fields)
}

// PaymentClose captures an authorized payment. A non-zero totalAmount closes
// the payment for a lower amount than authorized.
func (c *Client) PaymentClose(ctx context.Context, payID string, totalAmount int64) (*verify.Result, error) {
	fields, err := c.signedPayload(
		payload.Pair("merchantId", payload.String(c.config.MerchantID)),
		payload.Pair("payId", payload.String(payID)),
		payload.Pair("dttm", payload.DTTMNow()),
		payload.Pair("totalAmount", zeroAbsent(totalAmount)),
	)
	if err != nil {
		return nil, err
	}
	return c.put(ctx, "payment/close", fields)
}

// PaymentRefund returns a settled payment, fully or, with a non-zero
// amount, partially.
func (c *Client) PaymentRefund(ctx context.Context, payID string, amount int64) (*verify.Result, error) {
	fields, err := c.signedPayload(
		payload.Pair("merchantId", payload.String(c.config.MerchantID)),
		payload.Pair("payId", payload.String(payID)),
		payload.Pair("dttm", payload.DTTMNow()),
		payload.Pair("amount", zeroAbsent(amount)),
	)
	if err != nil {
		return nil, err
	}
	return c.put(ctx, "payment/refund", fields)
}

// zeroAbsent treats a zero integer as an omitted optional field.
func zeroAbsent(n int64) payload.Value {
	if n == 0 {
		return payload.Absent()
	}
	return payload.Int(n)
}
