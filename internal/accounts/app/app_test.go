package app

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/accounts/pkg/authsdk"
	"github.com/aussiebroadwan/accounts/pkg/jwtx"
	"github.com/aussiebroadwan/accounts/pkg/slogx"
)

func testConfig(t *testing.T, dir string) Config {
	t.Helper()
	clearEnv(t)
	cfg, err := LoadConfig()
	require.NoError(t, err)

	cfg.SigningKeyFile = filepath.Join(dir, "keys", "signing.pem")
	cfg.PepperFile = filepath.Join(dir, "pepper")
	cfg.DatabaseURL = "file:" + filepath.Join(dir, "accounts.db") + "?_pragma=busy_timeout(5000)"
	cfg.LogLevel = "error"
	cfg.ShutdownGracePeriod = 2 * time.Second
	return cfg
}

// serve starts app on a loopback port and returns a client plus a stop
// function that waits for Serve to return.
func serve(t *testing.T, app *Application) (*authsdk.SDKClient, func()) {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Serve(ctx, ln) }()

	client := authsdk.NewSDKClient(fmt.Sprintf("http://%s", ln.Addr()))
	return client, func() {
		cancel()
		select {
		case err := <-done:
			require.NoError(t, err)
		case <-time.After(5 * time.Second):
			t.Fatal("Serve did not return after cancel")
		}
	}
}

func TestApplicationServesAndSurvivesRestart(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig(t, dir)
	ctx := context.Background()

	app, err := New(ctx, cfg)
	require.NoError(t, err)
	client, stop := serve(t, app)

	signup, err := client.Signup(ctx, authsdk.SignupRequest{
		UserName: "alice", Email: "alice@example.com", Pass: "secret1", RePass: "secret1",
	})
	require.NoError(t, err)
	require.FileExists(t, cfg.SigningKeyFile)
	require.FileExists(t, cfg.PepperFile)
	stop()

	// Same key, pepper and database: the stored token still verifies.
	app, err = New(ctx, cfg)
	require.NoError(t, err)
	client, stop = serve(t, app)
	defer stop()

	signin, err := client.Signin(ctx, authsdk.SigninRequest{UserName: "alice", Pass: "secret1"})
	require.NoError(t, err)
	require.Equal(t, signup.Token, signin.Token)

	me, err := client.Me(ctx, signin.Token)
	require.NoError(t, err)
	require.Equal(t, "alice", me.User)

	ready, err := client.GetReadiness(ctx)
	require.NoError(t, err)
	require.Equal(t, "ok", ready.Status)
}

func TestNewRejectsUnsupportedLocale(t *testing.T) {
	cfg := testConfig(t, t.TempDir())
	cfg.DefaultLocale = "fr"

	_, err := New(context.Background(), cfg)
	require.ErrorContains(t, err, "message catalog")
}

func TestInitSigningKey(t *testing.T) {
	for _, alg := range []string{jwtx.AlgorithmEdDSA, jwtx.AlgorithmES256} {
		t.Run(alg, func(t *testing.T) {
			cfg := testConfig(t, t.TempDir())
			cfg.Algorithm = alg

			signer, keys, err := InitSigningKey(cfg, discardLogger())
			require.NoError(t, err)
			require.Equal(t, alg, signer.Alg())
			require.True(t, keys.IsReady())
			require.Len(t, keys.PublicJWKS().Keys, 1)

			again, _, err := InitSigningKey(cfg, discardLogger())
			require.NoError(t, err)
			require.Equal(t, signer.PublicJWK(), again.PublicJWK())
		})
	}
}

func discardLogger() *slog.Logger { return slogx.Discard() }
