/*
Package authsdk is a Go client for the accounts service.

	client := authsdk.NewSDKClient("https://accounts.example.com")

	// Register, then sign in with the same credentials.
	created, err := client.Signup(ctx, authsdk.SignupRequest{
		UserName: "alice",
		Email:    "alice@example.com",
		Pass:     "secret1",
		RePass:   "secret1",
	})
	signed, err := client.Signin(ctx, authsdk.SigninRequest{UserName: "alice", Pass: "secret1"})

	// signed.Token == created.Token: the token is issued once at signup.

Rejected requests come back as *AccountError carrying the HTTP status and
the localized message. Set Language to ask for messages in another locale:

	client.Language = "zh-Hans"

Tokens can be checked without calling the service again:

	v, err := client.Verifier(ctx, "accounts")
	claims, err := v.Verify(signed.Token)
*/
package authsdk
