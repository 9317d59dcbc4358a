package payload

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestEncodeMerchantData tests the size-limited base64 codec
func TestEncodeMerchantData(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		wantErr error
	}{
		{
			name: "short data encodes",
			data: []byte("order metadata"),
		},
		{
			name: "189 raw bytes encode to 252 chars and pass",
			data: bytes.Repeat([]byte{0xAB}, 189),
		},
		{
			name:    "190 raw bytes encode to 256 chars and fail",
			data:    bytes.Repeat([]byte{0xAB}, 190),
			wantErr: ErrMerchantDataTooLong,
		},
		{
			name:    "large data exceeds the limit",
			data:    bytes.Repeat([]byte{0x01}, 1024),
			wantErr: ErrMerchantDataTooLong,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encoded, err := EncodeMerchantData(tt.data)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.LessOrEqual(t, len(encoded), 255)
			require.NotEmpty(t, encoded)
		})
	}
}

// TestEncodeMerchantDataNil tests that absent data passes through
func TestEncodeMerchantDataNil(t *testing.T) {
	encoded, err := EncodeMerchantData(nil)
	require.NoError(t, err)
	require.Empty(t, encoded)
}
