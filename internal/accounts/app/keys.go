package app

import (
	"fmt"
	"log/slog"

	"github.com/aussiebroadwan/accounts/pkg/jwtx"
)

// InitSigningKey loads the signing key from cfg.SigningKeyFile, generating
// it on first start, and returns it with a key set holding its public half.
//
// The key is loaded once; restarting with the same file keeps every issued
// token verifiable. Deleting the file invalidates all stored tokens.
func InitSigningKey(cfg Config, logger *slog.Logger) (jwtx.Signer, *jwtx.KeySet, error) {
	signer, created, err := jwtx.LoadOrCreateSigner(cfg.Algorithm, cfg.KeyID, cfg.SigningKeyFile, cfg.RSABits)
	if err != nil {
		return nil, nil, fmt.Errorf("load signing key: %w", err)
	}
	if created {
		logger.Warn("generated new signing key", "path", cfg.SigningKeyFile, "alg", signer.Alg(), "kid", signer.KID())
	} else {
		logger.Info("loaded signing key", "path", cfg.SigningKeyFile, "alg", signer.Alg(), "kid", signer.KID())
	}

	keys := jwtx.NewKeySet()
	if err := keys.AddSigner(signer); err != nil {
		return nil, nil, fmt.Errorf("publish signing key: %w", err)
	}
	return signer, keys, nil
}
