package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/accounts/internal/accounts/domain"
	"github.com/aussiebroadwan/accounts/internal/accounts/store"
	"github.com/aussiebroadwan/accounts/internal/accounts/validate"
	"github.com/aussiebroadwan/accounts/pkg/cryptox"
	"github.com/aussiebroadwan/accounts/pkg/idx"
	"github.com/aussiebroadwan/accounts/pkg/jwtx"
	"github.com/aussiebroadwan/accounts/pkg/slogx"
)

var (
	ErrUserNameTaken = errors.New("username already taken")
	ErrUserNotFound  = errors.New("user not found")
	ErrLoginFailed   = errors.New("login failed")

	// ErrPersistence wraps a failed insert that was not a name collision.
	ErrPersistence = errors.New("could not persist user")
)

// AccountService runs the signup and signin flows. Validation failures are
// returned as *validate.Error.
type AccountService struct {
	Store  store.Store
	Signer jwtx.Signer
	Issuer string

	// Now defaults to time.Now.
	Now func() time.Time
}

func (s *AccountService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Signup normalizes and validates in, then creates the account and mints
// its token. The token is stored with the user and never reissued.
func (s *AccountService) Signup(ctx context.Context, in validate.SignupInput) (domain.User, error) {
	log := slogx.FromContext(ctx)

	// 1. Normalize and validate; nothing touches the store before this passes.
	in = validate.NormalizeSignup(in)
	if err := validate.Signup(in); err != nil {
		return domain.User{}, err
	}

	// 2. Early exit for names we already know are taken. The insert below is
	// still the authority.
	_, err := s.Store.Users().GetUserByUserName(ctx, in.UserName)
	switch {
	case err == nil:
		log.Info("signup with taken username", slog.String("user_name", in.UserName))
		return domain.User{}, ErrUserNameTaken
	case !errors.Is(err, store.ErrNotFound):
		log.Error("failed to look up user", slog.Any("error", err))
		return domain.User{}, fmt.Errorf("look up user: %w", err)
	}

	// 3. Mint the token.
	now := s.now()
	token, err := s.Signer.Sign(jwtx.NewAccountClaims(in.UserName, domain.RoleMember, s.Issuer, now))
	if err != nil {
		log.Error("failed to sign token", slog.Any("error", err))
		return domain.User{}, fmt.Errorf("sign token: %w", err)
	}

	// 4. Hash and persist.
	hash, err := cryptox.HashPassword(in.Pass)
	if err != nil {
		log.Error("failed to hash password", slog.Any("error", err))
		return domain.User{}, fmt.Errorf("hash password: %w", err)
	}

	user := domain.User{
		ID:           idx.NewAt(now.UTC()).String(),
		UserName:     in.UserName,
		Email:        in.Email,
		PasswordHash: hash,
		Token:        token,
		Role:         domain.RoleMember,
		CreatedAt:    now.UTC(),
	}

	if err := s.Store.Users().CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			log.Info("signup lost username race", slog.String("user_name", in.UserName))
			return domain.User{}, ErrUserNameTaken
		}
		log.Error("failed to create user",
			slog.String("user_name", in.UserName),
			slog.Any("error", err),
		)
		return domain.User{}, fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	log.Info("user registered",
		slog.String("user_id", user.ID),
		slog.String("user_name", user.UserName),
	)
	return user, nil
}

// Signin checks the password of an existing account and returns the user
// with the token minted at signup.
func (s *AccountService) Signin(ctx context.Context, in validate.SigninInput) (domain.User, error) {
	log := slogx.FromContext(ctx)

	in = validate.NormalizeSignin(in)
	if err := validate.Signin(in); err != nil {
		return domain.User{}, err
	}

	user, err := s.Store.Users().GetUserByUserName(ctx, in.UserName)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Info("signin for unknown user", slog.String("user_name", in.UserName))
			return domain.User{}, ErrUserNotFound
		}
		log.Error("failed to look up user", slog.Any("error", err))
		return domain.User{}, fmt.Errorf("look up user: %w", err)
	}

	ok, err := user.ComparePassword(in.Pass)
	if err != nil {
		log.Error("stored password hash is unusable",
			slog.String("user_id", user.ID),
			slog.Any("error", err),
		)
		return domain.User{}, fmt.Errorf("compare password: %w", err)
	}
	if !ok {
		log.Info("signin with wrong password", slog.String("user_name", in.UserName))
		return domain.User{}, ErrLoginFailed
	}

	return user, nil
}
