// Package auth provides the credential source for the HTTP layer.
//
// The API authenticates with a single opaque bearer token. There is no
// refresh or expiry handling: the token is supplied up front and presented
// on every request until replaced.
package auth

import (
	"context"

	"github.com/tidewater-io/ocean/pkg/ocean"
)

// TokenManager supplies the bearer token attached to outgoing requests.
type TokenManager interface {
	GetToken(ctx context.Context) (string, error)
	SetToken(token string)
}

// StaticTokenManager holds a fixed token.
type StaticTokenManager struct {
	token string
}

// NewStaticTokenManager creates a token manager around an opaque token.
func NewStaticTokenManager(token string) *StaticTokenManager {
	return &StaticTokenManager{token: token}
}

// GetToken returns the configured token.
func (m *StaticTokenManager) GetToken(ctx context.Context) (string, error) {
	if m.token == "" {
		return "", ocean.ErrTokenRequired
	}

	return m.token, nil
}

// SetToken replaces the configured token.
func (m *StaticTokenManager) SetToken(token string) {
	m.token = token
}
