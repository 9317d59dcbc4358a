// Package crypto provides the signing side of the gateway protocol.
//
// This package provides:
//   - RSA-SHA256 signing of canonical payload messages (PKCS#1 v1.5)
//   - Signature verification returning a plain boolean
//   - Signed payload assembly (filter empty fields, sign, append signature)
//
// # Signing
//
// Sign a payload with the merchant private key:
//
//	signature, err := crypto.Sign(fields, keys.FilePath("merchant.key"))
//	if err != nil {
//		log.Fatal(err)
//	}
//
// # Verification
//
// Verify returns false for a mismatched signature and reserves errors for
// malformed key or signature input:
//
//	ok, err := crypto.Verify(fields, signature, gatewayKey)
package crypto

import (
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/moventis/csob-client/keys"
	"github.com/moventis/csob-client/payload"
)

// Sign computes the RSA PKCS#1 v1.5 signature over the SHA-256 digest of the
// canonical message of fields and returns it base64 encoded. The signature
// field itself must not be part of fields.
func Sign(fields payload.Fields, key keys.KeyRef) (string, error) {
	msg, err := payload.Canonical(fields)
	if err != nil {
		return "", err
	}
	material, err := key.Material()
	if err != nil {
		return "", err
	}
	priv, err := keys.ParseRSAPrivateKey(material)
	if err != nil {
		return "", err
	}
	digest := sha256.Sum256(msg)
	sig, err := rsa.SignPKCS1v15(rand.Reader, priv, crypto.SHA256, digest[:])
	if err != nil {
		return "", fmt.Errorf("failed to sign payload: %w", err)
	}
	return base64.StdEncoding.EncodeToString(sig), nil
}

// Verify checks a base64 encoded signature against the canonical message of
// fields. It reconstructs the message with the same canonicalization Sign
// uses, so field order is part of the verified content. A mismatched
// signature yields (false, nil); errors are reserved for malformed key
// material or undecodable signature input.
func Verify(fields payload.Fields, signature string, key keys.KeyRef) (bool, error) {
	msg, err := payload.Canonical(fields)
	if err != nil {
		return false, err
	}
	material, err := key.Material()
	if err != nil {
		return false, err
	}
	pub, err := keys.ParseRSAPublicKey(material)
	if err != nil {
		return false, err
	}
	raw, err := base64.StdEncoding.DecodeString(signature)
	if err != nil {
		return false, fmt.Errorf("failed to decode signature: %w", err)
	}
	digest := sha256.Sum256(msg)
	if err := rsa.VerifyPKCS1v15(pub, crypto.SHA256, digest[:], raw); err != nil {
		if errors.Is(err, rsa.ErrVerification) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// SignedPayload assembles an outgoing payload: pairs with empty values are
// dropped, the remaining ordered fields are signed with the merchant key,
// and the signature is appended as the final "signature" entry.
func SignedPayload(key keys.KeyRef, pairs ...payload.Field) (payload.Fields, error) {
	fields := payload.New(pairs...)
	signature, err := Sign(fields, key)
	if err != nil {
		return nil, err
	}
	return fields.Append("signature", payload.String(signature)), nil
}
