//go:build e2e

package accounts_test

import (
	"net/http"
	"testing"

	"github.com/aussiebroadwan/accounts/pkg/authsdk"
	"github.com/stretchr/testify/require"
)

// TestAccountLifecycle walks signup, duplicate signup, signin and /me
// against the containerised service.
func TestAccountLifecycle(t *testing.T) {
	client := authsdk.NewSDKClient(setupAccountsContainer(t, nil))
	ctx := t.Context()

	signup, err := client.Signup(ctx, authsdk.SignupRequest{
		UserName: "alice", Email: "alice@example.com", Pass: "secret1", RePass: "secret1",
	})
	require.NoError(t, err)
	require.Equal(t, "registration succeeded", signup.Msg)
	require.NotEmpty(t, signup.Token)

	_, err = client.Signup(ctx, authsdk.SignupRequest{
		UserName: "ALICE", Email: "alice2@example.com", Pass: "secret1", RePass: "secret1",
	})
	requireRejected(t, err, http.StatusUnprocessableEntity, "username already exists")

	signin, err := client.Signin(ctx, authsdk.SigninRequest{UserName: "alice", Pass: "secret1"})
	require.NoError(t, err)
	require.True(t, signin.Type)
	require.Equal(t, signup.Token, signin.Token)

	_, err = client.Signin(ctx, authsdk.SigninRequest{UserName: "alice", Pass: "wrong"})
	aerr := requireRejected(t, err, http.StatusUnprocessableEntity, "login failed")
	require.NotNil(t, aerr.Type)
	require.False(t, *aerr.Type)

	_, err = client.Signin(ctx, authsdk.SigninRequest{UserName: "bob", Pass: "whatever"})
	requireRejected(t, err, http.StatusUnprocessableEntity, "user not found")

	me, err := client.Me(ctx, signin.Token)
	require.NoError(t, err)
	require.Equal(t, "alice", me.User)
	require.Equal(t, 0, me.Role)

	verifier, err := client.Verifier(ctx, testIssuer)
	require.NoError(t, err)
	claims, err := verifier.Verify(signin.Token)
	require.NoError(t, err)
	require.Equal(t, "alice", claims.UserName)
}

// TestChineseDefaultLocale checks ACCOUNTS_DEFAULT_LOCALE and per-request
// overrides.
func TestChineseDefaultLocale(t *testing.T) {
	baseURL := setupAccountsContainer(t, map[string]string{"ACCOUNTS_DEFAULT_LOCALE": "zh-Hans"})
	ctx := t.Context()

	client := authsdk.NewSDKClient(baseURL)
	_, err := client.Signup(ctx, authsdk.SignupRequest{UserName: "alice"})
	requireRejected(t, err, http.StatusUnprocessableEntity, "信息不完整")

	client.Language = "en-US"
	_, err = client.Signup(ctx, authsdk.SignupRequest{UserName: "alice"})
	requireRejected(t, err, http.StatusUnprocessableEntity, "incomplete information")
}

func TestHealthEndpoints(t *testing.T) {
	client := authsdk.NewSDKClient(setupAccountsContainer(t, nil))

	health, err := client.GetLiveness(t.Context())
	assertHealthy(t, health, err)

	health, err = client.GetReadiness(t.Context())
	assertHealthy(t, health, err)
	require.Equal(t, "ok", health.Checks.Database)
	require.Equal(t, "ok", health.Checks.Signer)

	jwks, err := client.GetJWKS(t.Context())
	require.NoError(t, err)
	require.Len(t, jwks.Keys, 1)
	require.Equal(t, testKeyID, jwks.Keys[0].Kid)
	require.Equal(t, "EdDSA", jwks.Keys[0].Alg)
}
