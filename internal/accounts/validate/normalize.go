// Package validate normalizes and checks the fields of signup and signin
// requests.
package validate

import "strings"

// SignupInput is the signup form. Absent JSON fields decode to "".
type SignupInput struct {
	UserName string `json:"userName"`
	Email    string `json:"email"`
	Pass     string `json:"pass"`
	RePass   string `json:"repass"`
}

// SigninInput is the signin form.
type SigninInput struct {
	UserName string `json:"userName"`
	Pass     string `json:"pass"`
}

// NormalizeSignup trims every field and lowercases the identifying ones.
// Passwords keep their case.
func NormalizeSignup(in SignupInput) SignupInput {
	return SignupInput{
		UserName: normalizeIdentifier(in.UserName),
		Email:    normalizeIdentifier(in.Email),
		Pass:     strings.TrimSpace(in.Pass),
		RePass:   strings.TrimSpace(in.RePass),
	}
}

// NormalizeSignin is NormalizeSignup for the signin form.
func NormalizeSignin(in SigninInput) SigninInput {
	return SigninInput{
		UserName: normalizeIdentifier(in.UserName),
		Pass:     strings.TrimSpace(in.Pass),
	}
}

func normalizeIdentifier(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
