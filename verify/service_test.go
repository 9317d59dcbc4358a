package verify

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/json"
	"encoding/pem"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/moventis/csob-client/crypto"
	"github.com/moventis/csob-client/gateway"
	"github.com/moventis/csob-client/keys"
	"github.com/moventis/csob-client/payload"
)

func testKeyPair(t *testing.T) (keys.KeyRef, keys.KeyRef) {
	t.Helper()
	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	privPEM := pem.EncodeToMemory(&pem.Block{
		Type:  "RSA PRIVATE KEY",
		Bytes: x509.MarshalPKCS1PrivateKey(priv),
	})
	pubBytes, err := x509.MarshalPKIXPublicKey(&priv.PublicKey)
	require.NoError(t, err)
	pubPEM := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: pubBytes})

	return keys.InlineBytes(privPEM), keys.InlineBytes(pubPEM)
}

// signedBody builds a response body whose signature covers the given fields
// in order, then merges extra unsigned entries in.
func signedBody(t *testing.T, priv keys.KeyRef, fields payload.Fields, extra map[string]any) []byte {
	t.Helper()
	signature, err := crypto.Sign(fields, priv)
	require.NoError(t, err)

	body := make(map[string]any)
	for _, f := range fields {
		var v any
		require.NoError(t, json.Unmarshal(mustJSON(t, f.Value), &v))
		body[f.Key] = v
	}
	body["signature"] = signature
	for k, v := range extra {
		body[k] = v
	}

	raw, err := json.Marshal(body)
	require.NoError(t, err)
	return raw
}

func mustJSON(t *testing.T, v payload.Value) []byte {
	t.Helper()
	raw, err := v.MarshalJSON()
	require.NoError(t, err)
	return raw
}

func paymentFields() payload.Fields {
	return payload.New(
		payload.Pair("payId", payload.String("d165e3c4b624fBD")),
		payload.Pair("dttm", payload.String("20190404091926")),
		payload.Pair("resultCode", payload.Int(0)),
		payload.Pair("resultMessage", payload.String("OK")),
		payload.Pair("paymentStatus", payload.Int(7)),
		payload.Pair("authCode", payload.String("042760")),
	)
}

func response(body []byte) *gateway.Response {
	return &gateway.Response{StatusCode: http.StatusOK, Body: body, Header: http.Header{}}
}

// TestValidateResponse tests a well-formed signed response
func TestValidateResponse(t *testing.T) {
	priv, pub := testKeyPair(t)
	body := signedBody(t, priv, paymentFields(), nil)

	result, err := ValidateResponse(response(body), pub)
	require.NoError(t, err)

	payID, ok := result.Payload.Get("payId")
	require.True(t, ok)
	require.Equal(t, "d165e3c4b624fBD", payID.Text())

	status, ok := result.Payload.Get("paymentStatus")
	require.True(t, ok)
	n, ok := status.Int64()
	require.True(t, ok)
	require.Equal(t, int64(7), n)

	require.Equal(t, time.Date(2019, 4, 4, 9, 19, 26, 0, time.UTC), result.DTTime)
	require.Empty(t, result.Extensions)
}

// TestValidateResponseAllowListOrder tests that verification uses the
// allow-list's order, not the raw body's key order
func TestValidateResponseAllowListOrder(t *testing.T) {
	priv, pub := testKeyPair(t)
	// JSON objects carry no order; the validator must reconstruct the
	// allow-list order. Marshal through a map to scramble any accidental
	// ordering in the test fixture itself.
	body := signedBody(t, priv, paymentFields(), map[string]any{
		"unsignedNoise": "ignored by the allow-list",
	})

	result, err := ValidateResponse(response(body), pub)
	require.NoError(t, err)

	var keysInOrder []string
	for _, f := range result.Payload {
		keysInOrder = append(keysInOrder, f.Key)
	}
	require.Equal(t, []string{"payId", "dttm", "resultCode", "resultMessage", "paymentStatus", "authCode"}, keysInOrder)

	_, ok := result.Payload.Get("unsignedNoise")
	require.False(t, ok)
}

// TestValidateResponseTampered tests that altering a signed field fails
func TestValidateResponseTampered(t *testing.T) {
	priv, pub := testKeyPair(t)
	body := signedBody(t, priv, paymentFields(), nil)

	var data map[string]any
	require.NoError(t, json.Unmarshal(body, &data))
	data["authCode"] = "999999"
	tampered, err := json.Marshal(data)
	require.NoError(t, err)

	result, err := ValidateResponse(response(tampered), pub)
	require.Nil(t, result)

	var verifyErr *VerifyError
	require.ErrorAs(t, err, &verifyErr)
}

// TestValidateResponseMissingSignature tests the missing signature error
func TestValidateResponseMissingSignature(t *testing.T) {
	_, pub := testKeyPair(t)
	body := []byte(`{"payId": "abc", "resultCode": 0}`)

	_, err := ValidateResponse(response(body), pub)
	require.ErrorIs(t, err, ErrNoSignature)
}

// TestValidateResponseHTTPFailure tests transport error propagation
func TestValidateResponseHTTPFailure(t *testing.T) {
	_, pub := testKeyPair(t)

	resp := &gateway.Response{StatusCode: http.StatusBadRequest, Body: []byte("bad request")}
	_, err := ValidateResponse(resp, pub)

	var httpErr *gateway.HTTPError
	require.ErrorAs(t, err, &httpErr)
	require.Equal(t, http.StatusBadRequest, httpErr.StatusCode)

	// A transport failure is not a verification failure.
	var verifyErr *VerifyError
	require.False(t, errors.As(err, &verifyErr))
}

// TestValidateResponseMalformedBody tests JSON decode failure propagation
func TestValidateResponseMalformedBody(t *testing.T) {
	_, pub := testKeyPair(t)

	_, err := ValidateResponse(response([]byte("not json")), pub)
	require.Error(t, err)
}

// TestValidateResponseBadDTTM tests that malformed dttm values are fatal
func TestValidateResponseBadDTTM(t *testing.T) {
	priv, pub := testKeyPair(t)
	fields := payload.New(
		payload.Pair("payId", payload.String("abc")),
		payload.Pair("dttm", payload.String("not-a-timestamp")),
		payload.Pair("resultCode", payload.Int(0)),
	)
	body := signedBody(t, priv, fields, nil)

	_, err := ValidateResponse(response(body), pub)
	require.Error(t, err)
	require.Contains(t, err.Error(), "dttm")
}

func maskClnFields(dttm string) payload.Fields {
	return payload.New(
		payload.Pair("extension", payload.String("maskClnRP")),
		payload.Pair("dttm", payload.String(dttm)),
		payload.Pair("maskedCln", payload.String("****1111")),
		payload.Pair("expiration", payload.String("12/25")),
		payload.Pair("longMaskedCln", payload.String("411111****1111")),
	)
}

// extensionEntry renders a signed extension entry for a response body.
func extensionEntry(t *testing.T, priv keys.KeyRef, fields payload.Fields) map[string]any {
	t.Helper()
	signature, err := crypto.Sign(fields, priv)
	require.NoError(t, err)

	entry := make(map[string]any)
	for _, f := range fields {
		entry[f.Key] = f.Value.Text()
	}
	entry["signature"] = signature
	return entry
}

// TestValidateResponseExtensions tests masked card extension verification
func TestValidateResponseExtensions(t *testing.T) {
	priv, pub := testKeyPair(t)

	ext := extensionEntry(t, priv, maskClnFields("20190404091926"))
	body := signedBody(t, priv, paymentFields(), map[string]any{
		"extensions": []any{ext},
	})

	result, err := ValidateResponse(response(body), pub)
	require.NoError(t, err)
	require.Len(t, result.Extensions, 1)

	masked, ok := result.Extensions[0].Get("maskedCln")
	require.True(t, ok)
	require.Equal(t, "****1111", masked.Text())
}

// TestValidateResponseExtensionTampered tests extension independence: a
// valid parent with a forged extension fails with an extension-specific
// error while the parent payload stays available
func TestValidateResponseExtensionTampered(t *testing.T) {
	priv, pub := testKeyPair(t)

	ext := extensionEntry(t, priv, maskClnFields("20190404091926"))
	ext["maskedCln"] = "****9999"
	body := signedBody(t, priv, paymentFields(), map[string]any{
		"extensions": []any{ext},
	})

	result, err := ValidateResponse(response(body), pub)

	var verifyErr *VerifyError
	require.ErrorAs(t, err, &verifyErr)
	require.Contains(t, err.Error(), "masked card extension")

	// The parent payload verified before the extension failed.
	require.NotNil(t, result)
	payID, ok := result.Payload.Get("payId")
	require.True(t, ok)
	require.Equal(t, "d165e3c4b624fBD", payID.Text())
	require.Empty(t, result.Extensions)
}

// TestValidateResponseUnknownExtensionIgnored tests that extensions of
// other kinds are skipped, not verified
func TestValidateResponseUnknownExtensionIgnored(t *testing.T) {
	priv, pub := testKeyPair(t)

	body := signedBody(t, priv, paymentFields(), map[string]any{
		"extensions": []any{
			map[string]any{"extension": "somethingElse", "value": "x"},
		},
	})

	result, err := ValidateResponse(response(body), pub)
	require.NoError(t, err)
	require.Empty(t, result.Extensions)
}

// TestValidateResponseExtensionMissingSignature tests the missing extension
// signature error
func TestValidateResponseExtensionMissingSignature(t *testing.T) {
	priv, pub := testKeyPair(t)

	entry := make(map[string]any)
	for _, f := range maskClnFields("20190404091926") {
		entry[f.Key] = f.Value.Text()
	}
	body := signedBody(t, priv, paymentFields(), map[string]any{
		"extensions": []any{entry},
	})

	_, err := ValidateResponse(response(body), pub)
	require.ErrorIs(t, err, ErrNoSignature)
}
