package linksdk

import (
	"net/http"
	"strings"
	"time"
)

// Client talks to a links server. Username and Password are sent as HTTP
// Basic credentials on the management endpoints; leave them empty for
// public calls only.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client

	Username string
	Password string
}

// NewClient creates a client with a 10 second timeout.
func NewClient(baseURL, username, password string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		Username: username,
		Password: password,
	}
}

// WithCredentials returns a copy of c that authenticates as another user.
func (c *Client) WithCredentials(username, password string) *Client {
	cp := *c
	cp.Username = username
	cp.Password = password
	return &cp
}
