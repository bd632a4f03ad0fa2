/*
Package linksdk provides a client SDK for the links redirection service.

# Overview

The service keeps a global table of short paths, each owned by one user,
that redirect to arbitrary URLs. Management endpoints use HTTP Basic
authentication; following a link is public.

	client := linksdk.NewClient("http://localhost:5000", "alice", "secret")

	// Register /blog
	red, err := client.Create(ctx, "blog", "https://example.com")

	// List the caller's redirects
	reds, err := client.List(ctx)

	// Resolve a path without following the redirect
	target, err := client.Resolve(ctx, "blog")

	// Remove it again
	err = client.Delete(ctx, "blog")

# Error Handling

Non-2xx responses are returned as *APIError carrying the HTTP status and the
"error"/"error_description" pair from the body:

	_, err := client.Create(ctx, "blog", "https://example.com")
	var apiErr *linksdk.APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusConflict {
		// someone already owns /blog
	}

IsStatus is a shorthand for that check.
*/
package linksdk
