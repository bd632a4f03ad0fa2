package http

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aussiebroadwan/links/internal/links/service"
	"github.com/aussiebroadwan/links/internal/links/store"
	"github.com/aussiebroadwan/links/internal/links/store/drivers/sqlite"
	"github.com/aussiebroadwan/links/pkg/cryptox"
	"github.com/aussiebroadwan/links/pkg/linksdk"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "links-http")
	if err != nil {
		panic(err)
	}
	cryptox.SetPepperPath(filepath.Join(dir, "pepper"))

	code := m.Run()
	_ = os.RemoveAll(dir)
	os.Exit(code)
}

type testEnv struct {
	srv   *httptest.Server
	store store.Store
	users *service.UserService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	st, err := sqlite.NewStore(filepath.Join(t.TempDir(), "links.db"))
	require.NoError(t, err)
	require.NoError(t, st.ApplyMigrations())
	t.Cleanup(func() { _ = st.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	r := NewRouter("test", st, logger)
	r.AuthService = &service.AuthService{Store: st}
	r.RedirectService = &service.RedirectService{Store: st}
	r.ApplyRoutes()

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	return &testEnv{srv: srv, store: st, users: &service.UserService{Store: st}}
}

func (e *testEnv) client(t *testing.T, username, password string) *linksdk.Client {
	t.Helper()
	_, err := e.users.AddUser(t.Context(), username, password)
	require.NoError(t, err)
	return linksdk.NewClient(e.srv.URL, username, password)
}

func noFollow() *http.Client {
	return &http.Client{
		CheckRedirect: func(*http.Request, []*http.Request) error { return http.ErrUseLastResponse },
	}
}

func TestBlogScenario(t *testing.T) {
	env := newTestEnv(t)
	ctx := t.Context()
	one := env.client(t, "one", "pw-one")
	two := env.client(t, "two", "pw-two")

	red, err := one.Create(ctx, "blog", "https://example.com")
	require.NoError(t, err)
	require.Equal(t, "blog", red.Path)
	require.False(t, red.Created.IsZero())

	target, err := one.Resolve(ctx, "blog")
	require.NoError(t, err)
	require.Equal(t, "https://example.com", target)

	_, err = two.Create(ctx, "blog", "https://other.com")
	require.True(t, linksdk.IsStatus(err, http.StatusConflict), "got %v", err)

	require.NoError(t, one.Delete(ctx, "blog"))

	_, err = one.Resolve(ctx, "blog")
	require.True(t, linksdk.IsStatus(err, http.StatusNotFound), "got %v", err)
}

func TestCreateResponse(t *testing.T) {
	env := newTestEnv(t)
	env.client(t, "alice", "secret")

	req, err := http.NewRequest(http.MethodPost, env.srv.URL+"/",
		strings.NewReader(`{"path":"/docs/go","url":"https://go.dev/doc"}`))
	require.NoError(t, err)
	req.SetBasicAuth("alice", "secret")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.Equal(t, "/docs/go", resp.Header.Get("Location"))
	require.NotEmpty(t, resp.Header.Get("X-Request-ID"))

	// Nested paths resolve through the wildcard route.
	get, err := noFollow().Get(env.srv.URL + "/docs/go")
	require.NoError(t, err)
	_ = get.Body.Close()
	require.Equal(t, http.StatusTemporaryRedirect, get.StatusCode)
	require.Equal(t, "https://go.dev/doc", get.Header.Get("Location"))
}

func TestCreateLocationIsEscaped(t *testing.T) {
	env := newTestEnv(t)
	env.client(t, "alice", "secret")

	tests := []struct {
		path     string
		location string
	}{
		{"q?x=1", "/q%3Fx=1"},
		{"pct%41", "/pct%2541"},
		{"a b/c#d", "/a%20b/c%23d"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			body, err := json.Marshal(linksdk.CreateRequest{Path: tt.path, URL: "https://example.com/target"})
			require.NoError(t, err)

			req, err := http.NewRequest(http.MethodPost, env.srv.URL+"/", bytes.NewReader(body))
			require.NoError(t, err)
			req.SetBasicAuth("alice", "secret")

			resp, err := http.DefaultClient.Do(req)
			require.NoError(t, err)
			_ = resp.Body.Close()

			require.Equal(t, http.StatusCreated, resp.StatusCode)
			require.Equal(t, tt.location, resp.Header.Get("Location"))

			// The Location must lead back to the redirect it names.
			get, err := noFollow().Get(env.srv.URL + resp.Header.Get("Location"))
			require.NoError(t, err)
			_ = get.Body.Close()
			require.Equal(t, http.StatusTemporaryRedirect, get.StatusCode)
			require.Equal(t, "https://example.com/target", get.Header.Get("Location"))
		})
	}
}

func TestCreateBadRequests(t *testing.T) {
	env := newTestEnv(t)
	env.client(t, "alice", "secret")

	tests := []struct {
		name string
		body string
		code int
	}{
		{"invalid json", `{"path":`, http.StatusBadRequest},
		{"missing url", `{"path":"blog"}`, http.StatusBadRequest},
		{"missing path", `{"url":"https://example.com"}`, http.StatusBadRequest},
		{"empty object", `{}`, http.StatusBadRequest},
		{"relative url", `{"path":"blog","url":"/elsewhere"}`, http.StatusBadRequest},
		{"reserved path", `{"path":"_/livez","url":"https://example.com"}`, http.StatusBadRequest},
		{"dot dot segment", `{"path":"a/../b","url":"https://example.com"}`, http.StatusBadRequest},
		{"empty segment", `{"path":"a//b","url":"https://example.com"}`, http.StatusBadRequest},
		{"dot segment", `{"path":"./x","url":"https://example.com"}`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := http.NewRequest(http.MethodPost, env.srv.URL+"/", strings.NewReader(tt.body))
			require.NoError(t, err)
			req.SetBasicAuth("alice", "secret")

			resp, err := http.DefaultClient.Do(req)
			require.NoError(t, err)
			body, _ := io.ReadAll(resp.Body)
			_ = resp.Body.Close()

			require.Equal(t, tt.code, resp.StatusCode)
			require.Contains(t, string(body), `"error":"invalid_request"`)
		})
	}

	reds, err := linksdk.NewClient(env.srv.URL, "alice", "secret").List(t.Context())
	require.NoError(t, err)
	require.Empty(t, reds)
}

func TestUnauthorizedResponsesMatch(t *testing.T) {
	env := newTestEnv(t)
	env.client(t, "alice", "test123blub")

	do := func(user, pass string) (int, string, string) {
		req, err := http.NewRequest(http.MethodGet, env.srv.URL+"/", nil)
		require.NoError(t, err)
		req.SetBasicAuth(user, pass)
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		body, _ := io.ReadAll(resp.Body)
		_ = resp.Body.Close()
		return resp.StatusCode, resp.Header.Get("WWW-Authenticate"), string(body)
	}

	wrongCode, wrongChallenge, wrongBody := do("alice", "bulb321tset")
	unknownCode, unknownChallenge, unknownBody := do("not existant", "blub321test")

	require.Equal(t, http.StatusUnauthorized, wrongCode)
	require.Equal(t, wrongCode, unknownCode)
	require.Equal(t, wrongChallenge, unknownChallenge)
	require.Equal(t, wrongBody, unknownBody)
	require.Contains(t, wrongChallenge, `realm="links"`)

	resp, err := http.Get(env.srv.URL + "/")
	require.NoError(t, err)
	_ = resp.Body.Close()
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	req, err := http.NewRequest(http.MethodDelete, env.srv.URL+"/anything", nil)
	require.NoError(t, err)
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	_ = resp.Body.Close()
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestDeleteOwnership(t *testing.T) {
	env := newTestEnv(t)
	ctx := t.Context()
	owner := env.client(t, "owner", "pw")
	other := env.client(t, "other", "pw")

	_, err := owner.Create(ctx, "mine", "https://example.com")
	require.NoError(t, err)

	err = other.Delete(ctx, "mine")
	require.True(t, linksdk.IsStatus(err, http.StatusBadRequest), "got %v", err)

	err = owner.Delete(ctx, "missing")
	require.True(t, linksdk.IsStatus(err, http.StatusBadRequest), "got %v", err)

	_, err = owner.Resolve(ctx, "mine")
	require.NoError(t, err)

	require.NoError(t, owner.Delete(ctx, "mine"))
	err = owner.Delete(ctx, "mine")
	require.True(t, linksdk.IsStatus(err, http.StatusBadRequest), "got %v", err)
}

func TestListIsolation(t *testing.T) {
	env := newTestEnv(t)
	ctx := t.Context()
	alice := env.client(t, "alice", "pw")
	bob := env.client(t, "bob", "pw")

	reds, err := alice.List(ctx)
	require.NoError(t, err)
	require.NotNil(t, reds)
	require.Empty(t, reds)

	for _, p := range []string{"one", "two", "three"} {
		_, err := alice.Create(ctx, p, "https://example.com/"+p)
		require.NoError(t, err)
	}
	_, err = bob.Create(ctx, "bobs", "https://bob.example")
	require.NoError(t, err)

	reds, err = alice.List(ctx)
	require.NoError(t, err)
	require.Len(t, reds, 3)
	require.Equal(t, []string{"one", "two", "three"}, []string{reds[0].Path, reds[1].Path, reds[2].Path})

	reds, err = bob.List(ctx)
	require.NoError(t, err)
	require.Len(t, reds, 1)
}

func TestFollowUnknownIsNotFound(t *testing.T) {
	env := newTestEnv(t)

	resp, err := noFollow().Get(env.srv.URL + "/nope")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()

	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	require.JSONEq(t, `{"error":"not_found","error_description":"not found"}`, string(body))
}

func TestHealthEndpoints(t *testing.T) {
	env := newTestEnv(t)
	ctx := t.Context()
	c := linksdk.NewClient(env.srv.URL, "", "")

	live, err := c.GetLiveness(ctx)
	require.NoError(t, err)
	require.Equal(t, "ok", live.Status)
	require.Equal(t, "test", live.Version)

	ready, err := c.GetReadiness(ctx)
	require.NoError(t, err)
	require.Equal(t, "ok", ready.Status)
	require.NotNil(t, ready.Checks)
	require.Equal(t, "ok", ready.Checks.Database)

	require.NoError(t, env.store.Close())

	_, err = c.GetReadiness(ctx)
	require.True(t, linksdk.IsStatus(err, http.StatusServiceUnavailable), "got %v", err)
}

func TestSwaggerServed(t *testing.T) {
	env := newTestEnv(t)

	resp, err := http.Get(env.srv.URL + "/_/swagger/doc.json")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Contains(t, string(body), "Links Redirection Service API")
}
