package authsdk

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/aussiebroadwan/accounts/pkg/jwtx"
)

// SDKClient is a client for the accounts service.
type SDKClient struct {
	BaseURL    string
	HTTPClient *http.Client

	// Language is sent as Accept-Language when non-empty.
	Language string
}

// NewSDKClient creates a client with a 10 second timeout.
func NewSDKClient(baseURL string) *SDKClient {
	return &SDKClient{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Verifier fetches the service's JWKS and returns a verifier for tokens
// it issued. An empty issuer skips the issuer check.
func (c *SDKClient) Verifier(ctx context.Context, issuer string) (jwtx.Verifier, error) {
	jwks, err := c.GetJWKS(ctx)
	if err != nil {
		return nil, err
	}

	keys := jwtx.NewKeySet()
	if err := keys.ResetFromJWKS(jwtx.JWKS(*jwks)); err != nil {
		return nil, err
	}

	alg := jwtx.AlgorithmEdDSA
	if len(jwks.Keys) > 0 && jwks.Keys[0].Alg != "" {
		alg = jwks.Keys[0].Alg
	}
	return jwtx.NewVerifier(keys, alg, issuer), nil
}
