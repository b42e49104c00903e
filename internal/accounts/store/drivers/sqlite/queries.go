package sqlite

import (
	"context"
	"database/sql"
	"time"
)

// DBTX is satisfied by *sql.DB, *sql.Conn and *sql.Tx.
type DBTX interface {
	ExecContext(context.Context, string, ...any) (sql.Result, error)
	QueryRowContext(context.Context, string, ...any) *sql.Row
}

type queries struct {
	db DBTX
}

type userRow struct {
	ID           string
	UserName     string
	Email        string
	PasswordHash string
	Token        string
	Role         int64
	CreatedAt    time.Time
}

const getUserByUserName = `
SELECT id, user_name, email, password_hash, token, role, created_at
FROM users
WHERE user_name = ?`

func (q *queries) GetUserByUserName(ctx context.Context, userName string) (userRow, error) {
	var u userRow
	err := q.db.QueryRowContext(ctx, getUserByUserName, userName).Scan(
		&u.ID,
		&u.UserName,
		&u.Email,
		&u.PasswordHash,
		&u.Token,
		&u.Role,
		&u.CreatedAt,
	)
	return u, err
}

const createUser = `
INSERT INTO users (id, user_name, email, password_hash, token, role, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?)`

func (q *queries) CreateUser(ctx context.Context, u userRow) error {
	_, err := q.db.ExecContext(ctx, createUser,
		u.ID,
		u.UserName,
		u.Email,
		u.PasswordHash,
		u.Token,
		u.Role,
		u.CreatedAt,
	)
	return err
}

const countUsers = `SELECT COUNT(*) FROM users`

func (q *queries) CountUsers(ctx context.Context) (int64, error) {
	var n int64
	err := q.db.QueryRowContext(ctx, countUsers).Scan(&n)
	return n, err
}
