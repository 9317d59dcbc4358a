package verify

import (
	"fmt"

	"github.com/moventis/csob-client/conf"
	"github.com/moventis/csob-client/crypto"
	"github.com/moventis/csob-client/gateway"
	"github.com/moventis/csob-client/keys"
	"github.com/moventis/csob-client/payload"
)

// ValidateResponse extracts and verifies the signed payload of a gateway
// response.
//
// Transport failures (non-2xx status) propagate as *gateway.HTTPError before
// any payload inspection. The body is decoded as JSON, its signature field
// popped, and the remaining fields restricted to conf.ResponseKeys in that
// list's order; the signature is then verified over the restricted payload.
// A present dttm field is decoded into Result.DTTime.
//
// Masked card extensions are verified independently against their own
// embedded signatures. When an extension fails verification the returned
// error is a *VerifyError distinct from the parent failure, and the Result
// still carries the already-verified parent payload.
func ValidateResponse(resp *gateway.Response, key keys.KeyRef) (*Result, error) {
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &gateway.HTTPError{StatusCode: resp.StatusCode, Body: resp.Body}
	}

	var data map[string]any
	if err := resp.JSON(&data); err != nil {
		return nil, err
	}

	signature, ok := data["signature"].(string)
	if !ok {
		return nil, ErrNoSignature
	}
	delete(data, "signature")

	restricted, err := restrict(data, conf.ResponseKeys)
	if err != nil {
		return nil, err
	}

	ok, err = crypto.Verify(restricted, signature, key)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &VerifyError{msg: "cannot verify response"}
	}

	result := &Result{Payload: restricted}

	if dttm, ok := restricted.Get("dttm"); ok {
		t, err := payload.DecodeDTTM(dttm.Text())
		if err != nil {
			return nil, err
		}
		result.DTTime = t
	}

	if raw, ok := data["extensions"].([]any); ok {
		if err := validateExtensions(result, raw, key); err != nil {
			return result, err
		}
	}

	return result, nil
}

// validateExtensions verifies every masked card extension entry against its
// own signature and appends the verified ones to result.Extensions. Entries
// of other extension kinds are ignored.
func validateExtensions(result *Result, raw []any, key keys.KeyRef) error {
	for _, entry := range raw {
		ext, ok := entry.(map[string]any)
		if !ok || ext["extension"] != conf.ExtensionMaskCln {
			continue
		}
		signature, ok := ext["signature"].(string)
		if !ok {
			return fmt.Errorf("masked card extension: %w", ErrNoSignature)
		}
		fields, err := restrict(ext, conf.MaskClnKeys)
		if err != nil {
			return err
		}
		ok, err = crypto.Verify(fields, signature, key)
		if err != nil {
			return err
		}
		if !ok {
			return &VerifyError{msg: "cannot verify masked card extension response"}
		}
		result.Extensions = append(result.Extensions, fields)
	}
	return nil
}

// restrict builds an ordered payload holding every allow-listed key present
// in data, in the allow-list's order. Absent keys are skipped.
func restrict(data map[string]any, allow []string) (payload.Fields, error) {
	var fields payload.Fields
	for _, k := range allow {
		raw, ok := data[k]
		if !ok {
			continue
		}
		v, err := payload.FromJSON(raw)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", k, err)
		}
		fields = fields.Append(k, v)
	}
	return fields, nil
}
