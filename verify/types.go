// Package verify validates signed gateway responses.
//
// The validation process checks:
//   - HTTP-level success of the transport response
//   - The response signature over the allow-listed fields in their declared
//     order
//   - Each masked card extension's own signature, independently of the
//     parent payload
//
// # Validation Flow
//
// Call ValidateResponse with a transport response and the gateway public
// key:
//
//	result, err := verify.ValidateResponse(resp, gatewayKey)
//	if err != nil {
//		log.Fatal(err)
//	}
//	status, _ := result.Payload.Get("paymentStatus")
//
// A forged or corrupted response never validates: signature mismatches
// surface as *VerifyError and are always fatal to the call.
package verify

import (
	"errors"
	"time"

	"github.com/moventis/csob-client/payload"
)

// Result is a validated gateway response: the verified payload restricted to
// the allow-listed fields in canonical order, the decoded dttm timestamp,
// and any verified masked card extensions.
type Result struct {
	Payload payload.Fields `json:"payload"`
	// DTTime is the decoded value of the payload's dttm field, zero when
	// the response carries none.
	DTTime     time.Time        `json:"dttime"`
	Extensions []payload.Fields `json:"extensions,omitempty"`
}

// VerifyError reports a response whose signature does not match the
// computed digest. It marks the trust boundary of the client: a response
// failing verification must never be treated as valid.
type VerifyError struct {
	msg string
}

func (e *VerifyError) Error() string {
	return e.msg
}

// ErrNoSignature is returned when a response body carries no signature
// field.
var ErrNoSignature = errors.New("response has no signature field")
