package jwtx

import (
	"crypto"
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/elliptic"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Supported signing algorithms.
const (
	AlgorithmEdDSA = "EdDSA"
	AlgorithmES256 = "ES256"
	AlgorithmRS256 = "RS256"
)

// Signer signs account tokens.
type Signer interface {
	Alg() string
	KID() string
	Sign(Claims) (string, error)
	PublicJWK() JWK
}

type pemSigner struct {
	kid    string
	method jwt.SigningMethod
	key    crypto.Signer
	jwk    JWK
}

// NewSigner parses a PEM private key and returns a Signer for alg. The key
// type must match the algorithm: Ed25519 for EdDSA, P-256 for ES256 and RSA
// (PKCS1 or PKCS8) for RS256.
func NewSigner(alg, kid string, pemKey []byte) (Signer, error) {
	if kid == "" {
		return nil, errors.New("jwtx: key id is required")
	}

	key, err := parsePrivateKey(pemKey)
	if err != nil {
		return nil, err
	}

	s := &pemSigner{kid: kid, key: key}

	switch alg {
	case AlgorithmEdDSA:
		k, ok := key.(ed25519.PrivateKey)
		if !ok {
			return nil, fmt.Errorf("jwtx: %s requires an Ed25519 key, got %T", alg, key)
		}
		s.method = jwt.SigningMethodEdDSA
		s.jwk = NewEd25519JWK(kid, "sig", alg, k.Public().(ed25519.PublicKey))

	case AlgorithmES256:
		k, ok := key.(*ecdsa.PrivateKey)
		if !ok || k.Curve != elliptic.P256() {
			return nil, fmt.Errorf("jwtx: %s requires a P-256 key, got %T", alg, key)
		}
		s.method = jwt.SigningMethodES256
		s.jwk = NewES256JWK(kid, "sig", alg, &k.PublicKey)

	case AlgorithmRS256:
		k, ok := key.(*rsa.PrivateKey)
		if !ok {
			return nil, fmt.Errorf("jwtx: %s requires an RSA key, got %T", alg, key)
		}
		s.method = jwt.SigningMethodRS256
		s.jwk = NewRSAJWK(kid, "sig", alg, &k.PublicKey)

	default:
		return nil, fmt.Errorf("jwtx: unsupported algorithm %q (supported: EdDSA, ES256, RS256)", alg)
	}

	return s, nil
}

func (s *pemSigner) Alg() string    { return s.method.Alg() }
func (s *pemSigner) KID() string    { return s.kid }
func (s *pemSigner) PublicJWK() JWK { return s.jwk }

// Sign serializes the claims as a compact JWS with the kid header set.
func (s *pemSigner) Sign(claims Claims) (string, error) {
	t := jwt.NewWithClaims(s.method, claims)
	t.Header["kid"] = s.kid
	return t.SignedString(s.key)
}

// parsePrivateKey accepts PKCS8 ("PRIVATE KEY") for every algorithm and
// PKCS1 ("RSA PRIVATE KEY") for RSA.
func parsePrivateKey(pemKey []byte) (crypto.Signer, error) {
	block, _ := pem.Decode(pemKey)
	if block == nil {
		return nil, errors.New("jwtx: invalid PEM private key")
	}

	var (
		key any
		err error
	)
	switch block.Type {
	case "PRIVATE KEY":
		key, err = x509.ParsePKCS8PrivateKey(block.Bytes)
	case "RSA PRIVATE KEY":
		key, err = x509.ParsePKCS1PrivateKey(block.Bytes)
	default:
		return nil, fmt.Errorf("jwtx: unsupported PEM type %q", block.Type)
	}
	if err != nil {
		return nil, fmt.Errorf("jwtx: parse private key: %w", err)
	}

	signer, ok := key.(crypto.Signer)
	if !ok {
		return nil, fmt.Errorf("jwtx: %T cannot sign", key)
	}
	return signer, nil
}
