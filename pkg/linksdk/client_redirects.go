package linksdk

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// List returns the caller's redirects in creation order.
func (c *Client) List(ctx context.Context) ([]Redirect, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/", nil, true)
	if err != nil {
		return nil, err
	}

	var reds []Redirect
	if err := decodeJSON(resp, &reds, http.StatusOK); err != nil {
		return nil, err
	}
	return reds, nil
}

// Create registers path → target for the caller. The server answers 409
// when the path is taken by anyone.
func (c *Client) Create(ctx context.Context, path, target string) (*Redirect, error) {
	body, err := json.Marshal(CreateRequest{Path: path, URL: target})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	resp, err := c.doRequest(ctx, http.MethodPost, "/", bytes.NewReader(body), true)
	if err != nil {
		return nil, err
	}

	var red Redirect
	if err := decodeJSON(resp, &red, http.StatusCreated); err != nil {
		return nil, err
	}
	return &red, nil
}

// Delete removes one of the caller's redirects. Deleting a path that does
// not exist or belongs to another user yields a 400 *APIError.
func (c *Client) Delete(ctx context.Context, path string) error {
	resp, err := c.doRequest(ctx, http.MethodDelete, "/"+escapePath(path), nil, true)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

// Resolve asks the server where path points without following the
// redirect. An unknown path yields a 404 *APIError.
func (c *Client) Resolve(ctx context.Context, path string) (string, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/"+escapePath(path), nil, false)
	if err != nil {
		return "", err
	}

	noFollow := *c.HTTPClient
	noFollow.CheckRedirect = func(*http.Request, []*http.Request) error {
		return http.ErrUseLastResponse
	}

	resp, err := noFollow.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusTemporaryRedirect {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return "", parseErrorResponse(resp, bodyBytes)
	}

	loc := resp.Header.Get("Location")
	if loc == "" {
		return "", errors.New("redirect without Location header")
	}
	return loc, nil
}

// escapePath escapes each segment but keeps the slashes.
func escapePath(path string) string {
	segs := strings.Split(strings.TrimLeft(path, "/"), "/")
	for i, s := range segs {
		segs[i] = url.PathEscape(s)
	}
	return strings.Join(segs, "/")
}
