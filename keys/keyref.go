// Package keys provides key reference resolution and RSA key parsing.
//
// The gateway protocol needs two RSA keys: the merchant's private key for
// signing requests and the gateway's public key for verifying responses.
// Both are referenced through a KeyRef, a small closed variant over inline
// PEM material and filesystem paths, resolved once at the call boundary.
//
// # Key References
//
// Use an explicit variant when the origin of the key is known:
//
//	priv := keys.FilePath("/etc/csob/merchant.key")
//	pub := keys.InlineBytes(pemBytes)
//
// Or let From detect it, treating a string that names an existing readable
// file as a path and anything else as already-loaded key material:
//
//	ref := keys.From(os.Getenv("CSOB_PRIVATE_KEY"))
package keys

import (
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"os"
	"strings"
)

// KeyRef is a reference to RSA key material in PEM form.
type KeyRef interface {
	// Material resolves the reference to raw PEM bytes.
	Material() ([]byte, error)
}

// InlineBytes is already-loaded key material.
type InlineBytes []byte

// Material returns the inline bytes unchanged.
func (k InlineBytes) Material() ([]byte, error) {
	return []byte(k), nil
}

// FilePath references a key file on disk. The file is read fully on every
// resolution; no key material is cached across calls.
type FilePath string

// Material reads the referenced file.
func (k FilePath) Material() ([]byte, error) {
	data, err := os.ReadFile(string(k))
	if err != nil {
		return nil, fmt.Errorf("failed to read key file: %w", err)
	}
	return data, nil
}

// From resolves an ambiguous key reference: a string naming an existing
// regular file becomes a FilePath, anything else passes through as inline
// key material. Malformed material is not detected here; it fails later at
// signing or verification.
func From(ref string) KeyRef {
	if info, err := os.Stat(ref); err == nil && info.Mode().IsRegular() {
		return FilePath(ref)
	}
	return InlineBytes(ref)
}

// ParseRSAPrivateKey parses a PEM encoded RSA private key in PKCS#1 or
// PKCS#8 form.
func ParseRSAPrivateKey(pemBytes []byte) (*rsa.PrivateKey, error) {
	block, _ := pem.Decode(pemBytes)
	if block == nil {
		return nil, errors.New("no PEM block found in private key material")
	}
	if key, err := x509.ParsePKCS1PrivateKey(block.Bytes); err == nil {
		return key, nil
	}
	parsed, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse private key: %w", err)
	}
	key, ok := parsed.(*rsa.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("private key is %T, not RSA", parsed)
	}
	return key, nil
}

// ParseRSAPublicKey parses a PEM encoded RSA public key in PKIX or PKCS#1
// form. A private key PEM is accepted too and yields its public half, which
// keeps local round-trip setups to a single key file.
func ParseRSAPublicKey(pemBytes []byte) (*rsa.PublicKey, error) {
	block, _ := pem.Decode(pemBytes)
	if block == nil {
		return nil, errors.New("no PEM block found in public key material")
	}
	if strings.Contains(block.Type, "PRIVATE") {
		priv, err := ParseRSAPrivateKey(pemBytes)
		if err != nil {
			return nil, err
		}
		return &priv.PublicKey, nil
	}
	if key, err := x509.ParsePKCS1PublicKey(block.Bytes); err == nil {
		return key, nil
	}
	parsed, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse public key: %w", err)
	}
	key, ok := parsed.(*rsa.PublicKey)
	if !ok {
		return nil, fmt.Errorf("public key is %T, not RSA", parsed)
	}
	return key, nil
}
