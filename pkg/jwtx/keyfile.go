package jwtx

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/aussiebroadwan/accounts/pkg/cryptox"
)

// GenerateKeyPEM creates a fresh PKCS8 private key suitable for alg.
func GenerateKeyPEM(alg string, rsaBits int) ([]byte, error) {
	switch alg {
	case AlgorithmEdDSA:
		return cryptox.GenerateEd25519Key()
	case AlgorithmES256:
		return cryptox.GenerateES256Key()
	case AlgorithmRS256:
		return cryptox.GenerateRSAKey(rsaBits)
	default:
		return nil, fmt.Errorf("jwtx: unsupported algorithm %q", alg)
	}
}

// LoadOrCreateSigner reads the PEM key at path, generating and persisting a
// new one (mode 0600) when the file does not exist. The returned bool is
// true when a key was generated.
func LoadOrCreateSigner(alg, kid, path string, rsaBits int) (Signer, bool, error) {
	pemKey, err := os.ReadFile(path)
	switch {
	case err == nil:
		s, err := NewSigner(alg, kid, pemKey)
		if err != nil {
			return nil, false, fmt.Errorf("load signing key %s: %w", path, err)
		}
		return s, false, nil

	case errors.Is(err, fs.ErrNotExist):
		pemKey, err = GenerateKeyPEM(alg, rsaBits)
		if err != nil {
			return nil, false, err
		}
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o700); err != nil {
				return nil, false, fmt.Errorf("create key directory: %w", err)
			}
		}
		if err := os.WriteFile(path, pemKey, 0o600); err != nil {
			return nil, false, fmt.Errorf("write signing key: %w", err)
		}
		s, err := NewSigner(alg, kid, pemKey)
		if err != nil {
			return nil, false, err
		}
		return s, true, nil

	default:
		return nil, false, fmt.Errorf("read signing key %s: %w", path, err)
	}
}
