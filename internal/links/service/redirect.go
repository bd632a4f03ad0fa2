package service

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"time"

	"github.com/aussiebroadwan/links/internal/links/domain"
	"github.com/aussiebroadwan/links/internal/links/store"
	"github.com/aussiebroadwan/links/pkg/idx"
	"github.com/aussiebroadwan/links/pkg/slogx"
)

var (
	ErrMissingFields     = errors.New("missing field(s)")
	ErrInvalidURL        = errors.New("url must be absolute")
	ErrReservedPath      = errors.New("path is reserved")
	ErrInvalidPath       = errors.New("path must not contain empty, '.' or '..' segments")
	ErrPathExists        = errors.New("path already exists")
	ErrNotOwnedOrMissing = errors.New("redirect does not exist or is not yours")
	ErrRedirectNotFound  = errors.New("not found")
)

// ReservedPrefix is the first path segment kept for the service's own
// endpoints (health checks, API docs).
const ReservedPrefix = "_"

type RedirectService struct {
	Store store.Store
}

// List returns the redirects owned by userID in the order they were created.
func (s *RedirectService) List(ctx context.Context, userID string) ([]domain.Redirect, error) {
	return s.Store.Redirects().ListRedirectsByUser(ctx, userID)
}

// Create registers path → target for userID. Paths are global: a path held
// by any user yields ErrPathExists. Uniqueness is left to the storage
// constraint; there is no check-then-insert.
func (s *RedirectService) Create(
	ctx context.Context,
	userID, path, target string,
) (domain.Redirect, error) {
	l := slogx.FromContext(ctx)

	target = strings.TrimSpace(target)
	if target == "" {
		return domain.Redirect{}, ErrMissingFields
	}
	path, err := NormalizePath(path)
	if err != nil {
		return domain.Redirect{}, err
	}
	if u, err := url.Parse(target); err != nil || !u.IsAbs() || (u.Host == "" && u.Opaque == "") {
		return domain.Redirect{}, ErrInvalidURL
	}

	red := domain.Redirect{
		ID:        idx.New().String(),
		UserID:    userID,
		Path:      path,
		URL:       target,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.Store.Redirects().CreateRedirect(ctx, red); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.Redirect{}, ErrPathExists
		}
		l.Error("failed to create redirect", "error", err, "path", path)
		return domain.Redirect{}, err
	}

	l.Info("redirect created", "path", path)
	return red, nil
}

// Delete removes the redirect at path if userID owns it. A path that does
// not exist and a path owned by someone else both give ErrNotOwnedOrMissing,
// so the endpoint does not reveal other users' paths.
func (s *RedirectService) Delete(ctx context.Context, userID, path string) error {
	l := slogx.FromContext(ctx)

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		n, err := tx.Redirects().DeleteRedirect(ctx, userID, path)
		if err != nil {
			return err
		}
		if n != 1 {
			return ErrNotOwnedOrMissing
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrNotOwnedOrMissing) {
			l.Error("failed to delete redirect", "error", err, "path", path)
		}
		return err
	}

	l.Info("redirect deleted", "path", path)
	return nil
}

// Lookup resolves a public path to its target URL.
func (s *RedirectService) Lookup(ctx context.Context, path string) (string, error) {
	red, err := s.Store.Redirects().GetRedirectByPath(ctx, path)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", ErrRedirectNotFound
		}
		return "", err
	}
	return red.URL, nil
}

// NormalizePath strips leading slashes and rejects empty or reserved paths.
// Paths the HTTP mux would clean ("a//b", "./x", "a/../b") are rejected as
// well, since a request for them never reaches the redirect handler. A single
// trailing slash is kept.
func NormalizePath(path string) (string, error) {
	path = strings.TrimLeft(strings.TrimSpace(path), "/")
	if path == "" {
		return "", ErrMissingFields
	}

	segs := strings.Split(path, "/")
	if segs[0] == ReservedPrefix {
		return "", ErrReservedPath
	}
	for i, seg := range segs {
		switch {
		case seg == "" && i == len(segs)-1:
		case seg == "", seg == ".", seg == "..":
			return "", ErrInvalidPath
		}
	}
	return path, nil
}
