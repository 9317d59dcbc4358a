package gateway

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/moventis/csob-client/payload"
)

// TestJoinURL tests base and endpoint joining
func TestJoinURL(t *testing.T) {
	tests := []struct {
		name     string
		base     string
		endpoint string
		expected string
	}{
		{
			name:     "plain join",
			base:     "https://api.example.com/api/v1.9",
			endpoint: "payment/init",
			expected: "https://api.example.com/api/v1.9/payment/init",
		},
		{
			name:     "trailing and leading slashes collapse",
			base:     "https://api.example.com/api/v1.9/",
			endpoint: "/echo/",
			expected: "https://api.example.com/api/v1.9/echo",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, JoinURL(tt.base, tt.endpoint))
		})
	}
}

// TestSignedURL tests payload values travelling as escaped path segments
func TestSignedURL(t *testing.T) {
	fields := payload.New(
		payload.Pair("merchantId", payload.String("M1MIPS0000")),
		payload.Pair("payId", payload.String("d165e3c4b624fBD")),
		payload.Pair("dttm", payload.String("20190404091926")),
	).Append("signature", payload.String("a+b/c=="))

	url, err := SignedURL("https://api.example.com/api/v1.9", "payment/status", fields)
	require.NoError(t, err)
	require.Equal(t,
		"https://api.example.com/api/v1.9/payment/status/M1MIPS0000/d165e3c4b624fBD/20190404091926/a%2Bb%2Fc%3D%3D",
		url)
}

// TestSignedURLRejectsCart tests that cart values cannot travel in a URL
func TestSignedURLRejectsCart(t *testing.T) {
	fields := payload.New(
		payload.Pair("cart", payload.CartValue(payload.Cart{payload.CartItem("x", 1, 100, "")})),
	)

	_, err := SignedURL("https://api.example.com", "payment/status", fields)
	require.Error(t, err)
}
