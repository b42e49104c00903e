package store

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/accounts/internal/accounts/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface implemented by the sqlite and
// postgres drivers. Uniqueness is enforced by the schema, so no flow needs
// an explicit transaction.
type Store interface {
	Users() Users

	ApplyMigrations(ctx context.Context) error

	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

type Users interface {
	// GetUserByUserName returns ErrNotFound when no user has that name.
	// The match is exact; callers normalize first.
	GetUserByUserName(ctx context.Context, userName string) (domain.User, error)

	// CreateUser inserts u. ID is set by the caller. A user name collision
	// returns ErrAlreadyExists.
	CreateUser(ctx context.Context, u domain.User) error

	// CountUsers returns the number of accounts.
	CountUsers(ctx context.Context) (int64, error)
}
