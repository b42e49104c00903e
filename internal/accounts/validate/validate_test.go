package validate_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/aussiebroadwan/accounts/internal/accounts/i18n"
	"github.com/aussiebroadwan/accounts/internal/accounts/validate"
	"github.com/stretchr/testify/require"
)

func keyOf(t *testing.T, err error) i18n.Key {
	t.Helper()
	var verr *validate.Error
	require.True(t, errors.As(err, &verr), "expected *validate.Error, got %v", err)
	return verr.Key
}

func TestNormalizeSignup(t *testing.T) {
	got := validate.NormalizeSignup(validate.SignupInput{
		UserName: "  Alice \t",
		Email:    " Alice@Example.COM\n",
		Pass:     "  S3cret ",
		RePass:   " S3cret",
	})
	require.Equal(t, validate.SignupInput{
		UserName: "alice",
		Email:    "alice@example.com",
		Pass:     "S3cret",
		RePass:   "S3cret",
	}, got)
}

func TestNormalizeSignin(t *testing.T) {
	got := validate.NormalizeSignin(validate.SigninInput{UserName: "　BOB ", Pass: " PaSS "})
	require.Equal(t, validate.SigninInput{UserName: "bob", Pass: "PaSS"}, got)
}

func validSignup() validate.SignupInput {
	return validate.SignupInput{UserName: "alice", Email: "alice@example.com", Pass: "secret1", RePass: "secret1"}
}

func TestSignup(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*validate.SignupInput)
		want   i18n.Key
	}{
		{"missing user name", func(in *validate.SignupInput) { in.UserName = "" }, i18n.IncompleteInformation},
		{"missing email", func(in *validate.SignupInput) { in.Email = "" }, i18n.IncompleteInformation},
		{"missing pass", func(in *validate.SignupInput) { in.Pass = "" }, i18n.IncompleteInformation},
		{"missing repass", func(in *validate.SignupInput) { in.RePass = "" }, i18n.IncompleteInformation},
		{"short name", func(in *validate.SignupInput) { in.UserName = "al" }, i18n.UserNameTooShort},
		{"bad characters", func(in *validate.SignupInput) { in.UserName = "al ice" }, i18n.InvalidUserName},
		{"dot in name", func(in *validate.SignupInput) { in.UserName = "al.ice" }, i18n.InvalidUserName},
		{"bad email", func(in *validate.SignupInput) { in.Email = "alice" }, i18n.InvalidEmail},
		{"mismatch", func(in *validate.SignupInput) { in.RePass = "secret2" }, i18n.PasswordsMismatch},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validSignup()
			tc.mutate(&in)
			require.Equal(t, tc.want, keyOf(t, validate.Signup(in)))
		})
	}

	require.NoError(t, validate.Signup(validSignup()))
}

func TestSignupFailFastOrder(t *testing.T) {
	// Every rule fails; only the first is reported.
	in := validate.SignupInput{UserName: "a!", Email: "nope", Pass: "x", RePass: "y"}
	require.Equal(t, i18n.UserNameTooShort, keyOf(t, validate.Signup(in)))

	in.UserName = "a!b"
	require.Equal(t, i18n.InvalidUserName, keyOf(t, validate.Signup(in)))

	in.UserName = "abc"
	require.Equal(t, i18n.InvalidEmail, keyOf(t, validate.Signup(in)))

	in.Email = ""
	require.Equal(t, i18n.IncompleteInformation, keyOf(t, validate.Signup(in)))
}

func TestSignin(t *testing.T) {
	require.NoError(t, validate.Signin(validate.SigninInput{UserName: "alice", Pass: "x"}))

	require.Equal(t, i18n.IncompleteInformation, keyOf(t, validate.Signin(validate.SigninInput{UserName: "bob"})))
	require.Equal(t, i18n.IncompleteInformation, keyOf(t, validate.Signin(validate.SigninInput{Pass: "x"})))
	require.Equal(t, i18n.UserNameTooShort, keyOf(t, validate.Signin(validate.SigninInput{UserName: "bo", Pass: "x"})))
	require.Equal(t, i18n.InvalidUserName, keyOf(t, validate.Signin(validate.SigninInput{UserName: "bob@", Pass: "x"})))
}

func TestUserNameCharacters(t *testing.T) {
	ok := []string{"abc", "a-b", "a_b", "A_B-9", "张三丰", "ab张", "龥龥龥", "一二三"}
	for _, name := range ok {
		require.NoError(t, validate.Signin(validate.SigninInput{UserName: name, Pass: "x"}), name)
	}

	bad := []string{"abc!", "ab c", "ünï", "аbc", "ab〇", "日本語ｱ", "ab/c", "emoji🙂"}
	for _, name := range bad {
		require.Equal(t, i18n.InvalidUserName, keyOf(t, validate.Signin(validate.SigninInput{UserName: name, Pass: "x"})), name)
	}
}

func TestUserNameLengthCountsCharacters(t *testing.T) {
	// Two CJK characters are six bytes but still too short.
	require.Equal(t, i18n.UserNameTooShort, keyOf(t, validate.Signin(validate.SigninInput{UserName: "张三", Pass: "x"})))
	require.NoError(t, validate.Signin(validate.SigninInput{UserName: "张三丰", Pass: "x"}))
}

func TestIsEmail(t *testing.T) {
	valid := []string{
		"alice@example.com",
		"a.b+tag@sub.example.co",
		"x@a-b.io",
		"user_name@example.org",
		"a@münchen.de",
		"a@xn--mnchen-3ya.de",
		"a@example.xn--p1ai",
	}
	for _, s := range valid {
		require.True(t, validate.IsEmail(s), s)
	}

	invalid := []string{
		"",
		"alice",
		"alice@",
		"@example.com",
		"alice@example",
		"alice@@example.com",
		"alice@example..com",
		"alice@.example.com",
		"alice@example.com.",
		"alice@-example.com",
		"alice@example-.com",
		"Alice <alice@example.com>",
		"<alice@example.com>",
		"alice example@example.com",
		strings.Repeat("a", 65) + "@example.com",
		"a@" + strings.Repeat("b", 250) + ".com",
		"a@exa!mple.com",
		"a@exa#mple.com",
		"a@ex_ample.com",
		"a@exa~mple.com",
		"a@example.123",
		"a@example.c",
		"a@example.c0m",
		"a@127.0.0.1",
	}
	for _, s := range invalid {
		require.False(t, validate.IsEmail(s), s)
	}
}

func TestErrorMessage(t *testing.T) {
	err := validate.Signup(validate.SignupInput{})
	require.EqualError(t, err, "validate: incomplete_information")
}
