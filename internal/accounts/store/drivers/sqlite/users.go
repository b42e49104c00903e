package sqlite

import (
	"context"
	"time"

	"github.com/aussiebroadwan/accounts/internal/accounts/domain"
)

type usersRepo struct {
	q *queries
}

func (r *usersRepo) GetUserByUserName(ctx context.Context, userName string) (domain.User, error) {
	row, err := r.q.GetUserByUserName(ctx, userName)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return mapUser(row), nil
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	created := u.CreatedAt
	if created.IsZero() {
		created = time.Now()
	}
	err := r.q.CreateUser(ctx, userRow{
		ID:           u.ID,
		UserName:     u.UserName,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Token:        u.Token,
		Role:         int64(u.Role),
		CreatedAt:    created.UTC(),
	})
	return mapConstraint(err)
}

func (r *usersRepo) CountUsers(ctx context.Context) (int64, error) {
	return r.q.CountUsers(ctx)
}
