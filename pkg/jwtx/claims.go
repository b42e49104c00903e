package jwtx

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the payload of an account token. The token is minted once at
// signup and persisted, so it deliberately carries no expiry.
type Claims struct {
	jwt.RegisteredClaims

	// UserName is the normalized account name.
	UserName string `json:"userName"`

	// Role is the account's role flag. No omitempty: 0 is a real role.
	Role int `json:"role"`
}

// NewAccountClaims builds the claims embedded in a freshly issued token.
func NewAccountClaims(userName string, role int, issuer string, now time.Time) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:   issuer,
			Subject:  userName,
			IssuedAt: jwt.NewNumericDate(now),
		},
		UserName: userName,
		Role:     role,
	}
}

// ValidateIssuer checks the issuer. An empty expectation accepts anything.
func (c *Claims) ValidateIssuer(expected string) error {
	if expected == "" || c.Issuer == expected {
		return nil
	}
	return ErrIssuer
}

// ValidateSubject makes sure the token is bound to a user name, and that the
// subject and userName claims agree.
func (c *Claims) ValidateSubject() error {
	if c.UserName == "" {
		return ErrInvalidClaim
	}
	if c.Subject != "" && c.Subject != c.UserName {
		return ErrInvalidClaim
	}
	return nil
}
