package core

import (
	"context"

	"github.com/drone/go-scm/scm"
)

// APICredential is the scoped token used to publish commit statuses.
type APICredential struct {
	Token string `json:"token"`
}

// SetRequestContext sets the token value in the request context
func (c *APICredential) SetRequestContext(ctx context.Context) context.Context {
	return context.WithValue(ctx, scm.TokenKey{}, &scm.Token{Token: c.Token})
}

// TokenProvisioner exchanges account credentials for a scoped API token.
type TokenProvisioner interface {
	// Provision issues a commit-status token and persists it for later publishes.
	Provision(ctx context.Context, username, password, otp string) (*APICredential, error)
}
