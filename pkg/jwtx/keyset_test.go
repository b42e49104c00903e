package jwtx_test

import (
	"testing"

	"github.com/aussiebroadwan/accounts/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func TestKeySet(t *testing.T) {
	keys := jwtx.NewKeySet()
	require.False(t, keys.IsReady())
	require.Empty(t, keys.PublicJWKS().Keys)

	signer, err := jwtx.NewSigner(jwtx.AlgorithmEdDSA, "k1", keyFor(t, jwtx.AlgorithmEdDSA))
	require.NoError(t, err)
	require.NoError(t, keys.AddSigner(signer))
	require.True(t, keys.IsReady())

	_, err = keys.Get("k1")
	require.NoError(t, err)
	_, err = keys.Get("nope")
	require.ErrorIs(t, err, jwtx.ErrNoKey)

	// Same kid replaces rather than duplicates.
	require.NoError(t, keys.AddSigner(signer))
	require.Len(t, keys.PublicJWKS().Keys, 1)
}

func TestKeySetResetFromJWKS(t *testing.T) {
	a, err := jwtx.NewSigner(jwtx.AlgorithmEdDSA, "a", keyFor(t, jwtx.AlgorithmEdDSA))
	require.NoError(t, err)
	b, err := jwtx.NewSigner(jwtx.AlgorithmES256, "b", keyFor(t, jwtx.AlgorithmES256))
	require.NoError(t, err)

	keys := jwtx.NewKeySet()
	require.NoError(t, keys.AddSigner(a))

	require.NoError(t, keys.ResetFromJWKS(jwtx.JWKS{Keys: []jwtx.JWK{b.PublicJWK()}}))
	_, err = keys.Get("a")
	require.ErrorIs(t, err, jwtx.ErrNoKey)
	_, err = keys.Get("b")
	require.NoError(t, err)

	// A bad key leaves the set untouched.
	err = keys.ResetFromJWKS(jwtx.JWKS{Keys: []jwtx.JWK{{Kty: "oct", Kid: "x"}}})
	require.Error(t, err)
	_, err = keys.Get("b")
	require.NoError(t, err)
}
