package authsdk

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aussiebroadwan/accounts/pkg/httpx"
	"github.com/aussiebroadwan/accounts/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func TestSignupSendsJSONAndLanguage(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/v1/accounts/signup", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.Equal(t, "zh-Hans", r.Header.Get("Accept-Language"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, map[string]string{
			"userName": "alice", "email": "alice@example.com", "pass": "p", "repass": "p",
		}, body)

		httpx.WriteJSON(w, http.StatusOK, SignupResponse{Msg: "注册成功", User: "alice", Token: "tok"})
	}))
	defer srv.Close()

	c := NewSDKClient(srv.URL + "/")
	c.Language = "zh-Hans"

	out, err := c.Signup(context.Background(), SignupRequest{
		UserName: "alice", Email: "alice@example.com", Pass: "p", RePass: "p",
	})
	require.NoError(t, err)
	require.Equal(t, "tok", out.Token)
	require.Equal(t, "注册成功", out.Msg)
}

func TestErrorResponses(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v1/accounts/signin":
			f := false
			httpx.WriteJSON(w, http.StatusUnprocessableEntity, MessageResponse{Type: &f, Msg: "login failed"})
		case "/v1/accounts/signup":
			httpx.WriteJSON(w, http.StatusUnprocessableEntity, MessageResponse{Msg: "invalid email"})
		default:
			http.Error(w, "nope", http.StatusBadGateway)
		}
	}))
	defer srv.Close()

	c := NewSDKClient(srv.URL)
	ctx := context.Background()

	_, err := c.Signin(ctx, SigninRequest{UserName: "alice", Pass: "x"})
	var aerr *AccountError
	require.ErrorAs(t, err, &aerr)
	require.Equal(t, http.StatusUnprocessableEntity, aerr.StatusCode)
	require.Equal(t, "login failed", aerr.Msg)
	require.NotNil(t, aerr.Type)
	require.False(t, *aerr.Type)
	require.True(t, IsUnprocessable(err))

	_, err = c.Signup(ctx, SignupRequest{})
	require.ErrorAs(t, err, &aerr)
	require.Equal(t, "invalid email", aerr.Msg)
	require.Nil(t, aerr.Type)

	_, err = c.GetLiveness(ctx)
	require.ErrorAs(t, err, &aerr)
	require.Equal(t, http.StatusBadGateway, aerr.StatusCode)
	require.Equal(t, "nope", aerr.Msg)
	require.False(t, IsUnprocessable(err))
}

func TestVerifier(t *testing.T) {
	t.Parallel()

	pemKey, err := jwtx.GenerateKeyPEM(jwtx.AlgorithmES256, 0)
	require.NoError(t, err)
	signer, err := jwtx.NewSigner(jwtx.AlgorithmES256, "k1", pemKey)
	require.NoError(t, err)
	keys := jwtx.NewKeySet()
	require.NoError(t, keys.AddSigner(signer))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/.well-known/jwks.json", r.URL.Path)
		httpx.WriteJSON(w, http.StatusOK, keys.PublicJWKS())
	}))
	defer srv.Close()

	v, err := NewSDKClient(srv.URL).Verifier(context.Background(), "accounts")
	require.NoError(t, err)

	token, err := signer.Sign(jwtx.NewAccountClaims("alice", 0, "accounts", time.Now()))
	require.NoError(t, err)

	claims, err := v.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "alice", claims.UserName)
}
