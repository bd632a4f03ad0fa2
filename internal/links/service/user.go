package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/aussiebroadwan/links/internal/links/domain"
	"github.com/aussiebroadwan/links/internal/links/store"
	"github.com/aussiebroadwan/links/pkg/cryptox"
	"github.com/aussiebroadwan/links/pkg/idx"
	"github.com/aussiebroadwan/links/pkg/slogx"
)

var (
	ErrInvalidUser   = errors.New("username and password must not be empty")
	ErrUsernameTaken = errors.New("username already taken")
	ErrUserNotFound  = errors.New("user not found")
)

// UserService provisions accounts. It backs the admin commands only; there
// is no HTTP endpoint for it.
type UserService struct {
	Store store.Store
}

func (s *UserService) AddUser(ctx context.Context, username, password string) (domain.User, error) {
	l := slogx.FromContext(ctx)

	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return domain.User{}, ErrInvalidUser
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return domain.User{}, err
	}

	user := domain.User{
		ID:           idx.New().String(),
		Username:     username,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.Store.Users().CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, ErrUsernameTaken
		}
		return domain.User{}, err
	}

	l.Info("user created", "user_id", user.ID, "username", username)
	return user, nil
}

// DeleteUser removes the user and, through ON DELETE CASCADE, every
// redirect they own. It returns how many redirects went with them.
func (s *UserService) DeleteUser(ctx context.Context, username string) (int64, error) {
	l := slogx.FromContext(ctx)
	username = strings.TrimSpace(username)

	var removed int64
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		user, err := tx.Users().GetUserByUsername(ctx, username)
		if err != nil {
			return err
		}

		removed, err = tx.Redirects().CountRedirectsByUser(ctx, user.ID)
		if err != nil {
			return err
		}

		return tx.Users().DeleteUser(ctx, user.ID)
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return 0, ErrUserNotFound
		}
		return 0, err
	}

	l.Info("user deleted", "username", username, "redirects_removed", removed)
	return removed, nil
}

func (s *UserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.Store.Users().ListUsers(ctx)
}
