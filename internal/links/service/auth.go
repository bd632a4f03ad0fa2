package service

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/links/internal/links/store"
	"github.com/aussiebroadwan/links/pkg/cryptox"
	"github.com/aussiebroadwan/links/pkg/slogx"
)

type AuthService struct {
	Store store.Store
}

// Authenticate checks a username and password pair. ok is false for an
// unknown user or a wrong password, and the two cases are indistinguishable
// to the caller; err is only set when the store itself fails.
func (s *AuthService) Authenticate(
	ctx context.Context,
	username, password string,
) (userID string, ok bool, err error) {
	l := slogx.FromContext(ctx)

	user, err := s.Store.Users().GetUserByUsername(ctx, username)
	switch {
	case errors.Is(err, store.ErrNotFound):
		// Burn the same hashing time as a real check.
		if dummy, derr := cryptox.DummyHash(); derr == nil {
			_ = cryptox.VerifyPassword(password, dummy)
		}
		return "", false, nil
	case err != nil:
		return "", false, err
	}

	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		if !errors.Is(err, cryptox.ErrPasswordMismatch) {
			l.Warn("stored password hash unusable", "user_id", user.ID, "error", err)
		}
		return "", false, nil
	}

	return user.ID, true, nil
}
