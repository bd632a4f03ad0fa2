package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/aussiebroadwan/links/internal/links/domain"
	"github.com/aussiebroadwan/links/internal/links/service"
	"github.com/aussiebroadwan/links/pkg/httpx"
	"github.com/aussiebroadwan/links/pkg/linksdk"
	"github.com/aussiebroadwan/links/pkg/slogx"
)

const maxCreateBody = 64 << 10

// RedirectsHandler serves the redirect table: management for the
// authenticated owner and public following.
type RedirectsHandler struct {
	RedirectService *service.RedirectService
}

// HandleList handles GET /
//
//	@Summary		List Redirects
//	@Description	Returns the caller's redirects in the order they were created.
//	@Tags			Redirects
//	@Produce		json
//	@Security		BasicAuth
//	@Success		200	{array}		linksdk.Redirect		"path, url, created"
//	@Failure		401	{object}	linksdk.ErrorResponse	"error, error_description"
//	@Failure		500	{object}	linksdk.ErrorResponse	"error, error_description"
//	@Router			/ [get].
func (h *RedirectsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)
	uid, _ := httpx.UserIDFromContext(ctx)

	reds, err := h.RedirectService.List(ctx, uid)
	if err != nil {
		log.Error("failed to list redirects", "error", err)
		writeServerError(w)
		return
	}

	out := make([]linksdk.Redirect, 0, len(reds))
	for _, red := range reds {
		out = append(out, toResponse(red))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleCreate handles POST /
//
//	@Summary		Create Redirect
//	@Description	Registers a path for the caller. Paths are global, so a path owned by
//	@Description	anyone is a conflict. Leading slashes are stripped, paths under "_/"
//	@Description	are reserved and empty, "." or ".." segments are rejected.
//	@Tags			Redirects
//	@Accept			json
//	@Produce		json
//	@Security		BasicAuth
//	@Param			request	body		linksdk.CreateRequest	true	"path and absolute url"
//	@Success		201		{object}	linksdk.Redirect		"path, url, created"
//	@Header			201		{string}	Location				"/<path>"
//	@Failure		400		{object}	linksdk.ErrorResponse	"error, error_description"
//	@Failure		401		{object}	linksdk.ErrorResponse	"error, error_description"
//	@Failure		409		{object}	linksdk.ErrorResponse	"error, error_description"
//	@Failure		500		{object}	linksdk.ErrorResponse	"error, error_description"
//	@Router			/ [post].
func (h *RedirectsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)
	uid, _ := httpx.UserIDFromContext(ctx)

	var req linksdk.CreateRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxCreateBody)).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, linksdk.ErrorCodeInvalidRequest, "Invalid JSON in request body")
		return
	}

	red, err := h.RedirectService.Create(ctx, uid, req.Path, req.URL)
	switch {
	case errors.Is(err, service.ErrMissingFields),
		errors.Is(err, service.ErrInvalidURL),
		errors.Is(err, service.ErrReservedPath),
		errors.Is(err, service.ErrInvalidPath):
		httpx.WriteError(w, http.StatusBadRequest, linksdk.ErrorCodeInvalidRequest, err.Error())
		return
	case errors.Is(err, service.ErrPathExists):
		httpx.WriteError(w, http.StatusConflict, linksdk.ErrorCodeConflict, err.Error())
		return
	case err != nil:
		log.Error("failed to create redirect", "error", err)
		writeServerError(w)
		return
	}

	w.Header().Set("Location", "/"+escapePath(red.Path))
	httpx.WriteJSON(w, http.StatusCreated, toResponse(red))
}

// HandleDelete handles DELETE /{path}
//
//	@Summary		Delete Redirect
//	@Description	Removes one of the caller's redirects. A missing path and a path owned
//	@Description	by another user give the same 400.
//	@Tags			Redirects
//	@Produce		json
//	@Security		BasicAuth
//	@Param			path	path	string	true	"redirect path, may contain slashes"
//	@Success		204		"No Content"
//	@Failure		400		{object}	linksdk.ErrorResponse	"error, error_description"
//	@Failure		401		{object}	linksdk.ErrorResponse	"error, error_description"
//	@Failure		500		{object}	linksdk.ErrorResponse	"error, error_description"
//	@Router			/{path} [delete].
func (h *RedirectsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)
	uid, _ := httpx.UserIDFromContext(ctx)

	err := h.RedirectService.Delete(ctx, uid, r.PathValue("path"))
	switch {
	case errors.Is(err, service.ErrNotOwnedOrMissing):
		httpx.WriteError(w, http.StatusBadRequest, linksdk.ErrorCodeInvalidRequest, err.Error())
		return
	case err != nil:
		log.Error("failed to delete redirect", "error", err)
		writeServerError(w)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleFollow handles GET /{path}
//
//	@Summary		Follow Redirect
//	@Description	Public. Answers 307 so clients keep the method and body.
//	@Tags			Redirects
//	@Param			path	path	string	true	"redirect path, may contain slashes"
//	@Success		307		"Temporary Redirect"
//	@Header			307		{string}	Location				"target url"
//	@Failure		404		{object}	linksdk.ErrorResponse	"error, error_description"
//	@Failure		500		{object}	linksdk.ErrorResponse	"error, error_description"
//	@Router			/{path} [get].
func (h *RedirectsHandler) HandleFollow(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	target, err := h.RedirectService.Lookup(ctx, r.PathValue("path"))
	switch {
	case errors.Is(err, service.ErrRedirectNotFound):
		httpx.WriteError(w, http.StatusNotFound, linksdk.ErrorCodeNotFound, err.Error())
		return
	case err != nil:
		log.Error("failed to look up redirect", "error", err)
		writeServerError(w)
		return
	}

	http.Redirect(w, r, target, http.StatusTemporaryRedirect)
}

func toResponse(red domain.Redirect) linksdk.Redirect {
	return linksdk.Redirect{
		Path:    red.Path,
		URL:     red.URL,
		Created: red.CreatedAt,
	}
}

func writeServerError(w http.ResponseWriter) {
	httpx.WriteError(w, http.StatusInternalServerError, linksdk.ErrorCodeServerError, "Internal server error")
}

// escapePath escapes each segment of a stored path for use in a URL,
// leaving the separators intact.
func escapePath(path string) string {
	segs := strings.Split(path, "/")
	for i, s := range segs {
		segs[i] = url.PathEscape(s)
	}
	return strings.Join(segs, "/")
}
