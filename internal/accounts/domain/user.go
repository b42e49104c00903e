package domain

import (
	"errors"
	"time"

	"github.com/aussiebroadwan/accounts/pkg/cryptox"
)

// RoleMember is the role every account gets at signup.
const RoleMember = 0

type User struct {
	ID           string
	UserName     string
	Email        string
	PasswordHash string // argon2id PHC string
	Token        string // minted at signup, never reissued
	Role         int
	CreatedAt    time.Time
}

// ComparePassword reports whether candidate matches the stored hash. An
// error means the stored hash itself is unusable.
func (u User) ComparePassword(candidate string) (bool, error) {
	err := cryptox.VerifyPassword(candidate, u.PasswordHash)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, cryptox.ErrPasswordMismatch):
		return false, nil
	default:
		return false, err
	}
}
