package client

import (
	internalhttp "github.com/tidewater-io/ocean/internal/http"
)

// NewTestClient creates a client pointed at a test server, with no token
// manager so requests go out unauthenticated.
func NewTestClient(baseURL string) *Client {
	httpClient := internalhttp.NewClient(baseURL, nil)

	client := &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
	}

	client.initializeResourceClients()

	return client
}
