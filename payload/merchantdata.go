package payload

import (
	"encoding/base64"
	"errors"
)

// merchantDataLimit is the gateway's ceiling on the base64 encoded length of
// the merchantData field.
const merchantDataLimit = 255

// ErrMerchantDataTooLong is returned when merchant data exceeds the 255
// character limit after base64 encoding.
var ErrMerchantDataTooLong = errors.New("merchant data exceeds 255 characters when encoded to base64")

// EncodeMerchantData base64-encodes opaque merchant data for the
// merchantData field. Nil data passes through as the empty string. Data
// whose encoded form exceeds the limit is rejected, never truncated.
func EncodeMerchantData(data []byte) (string, error) {
	if data == nil {
		return "", nil
	}
	encoded := base64.StdEncoding.EncodeToString(data)
	if len(encoded) > merchantDataLimit {
		return "", ErrMerchantDataTooLong
	}
	return encoded, nil
}
