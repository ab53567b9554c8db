// Package oceanclient provides the main entry point for creating Ocean API clients
package oceanclient

import (
	"context"
	"strings"

	"github.com/tidewater-io/ocean/internal/client"
	"github.com/tidewater-io/ocean/internal/constants"
	"github.com/tidewater-io/ocean/pkg/ocean"
)

// New creates a new API client from the given configuration.
func New(ctx context.Context, config *ocean.Config) (ocean.Client, error) {
	if config == nil {
		return nil, ocean.ErrConfigRequired
	}

	config.APIEndpoint = normalizeEndpoint(config.APIEndpoint)

	return client.New(config)
}

// normalizeEndpoint trims a trailing slash and defaults the scheme and
// endpoint. The token is deliberately not validated here; a bad token
// surfaces as a 401 from the remote API.
func normalizeEndpoint(endpoint string) string {
	if endpoint == "" {
		return constants.DefaultAPIEndpoint
	}

	endpoint = strings.TrimSuffix(endpoint, "/")
	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		endpoint = "https://" + endpoint
	}

	return endpoint
}

// NewWithToken creates a new client for the production endpoint with an
// access token.
func NewWithToken(ctx context.Context, token string) (ocean.Client, error) {
	return New(ctx, &ocean.Config{
		AccessToken: token,
	})
}

// NewWithEndpoint creates a new client against a specific endpoint, useful
// for test servers and compatible API implementations.
func NewWithEndpoint(ctx context.Context, endpoint, token string) (ocean.Client, error) {
	return New(ctx, &ocean.Config{
		APIEndpoint: endpoint,
		AccessToken: token,
	})
}
