package core

import "context"

// CredentialStore persists the API credential across process restarts.
type CredentialStore interface {
	// Load returns the persisted credential, or nil when none was saved.
	Load(ctx context.Context) (*APICredential, error)
	// Save persists the credential, replacing any previous one.
	Save(ctx context.Context, cred *APICredential) error
}

// CredentialState is the process wide holder of the current API credential.
type CredentialState interface {
	// Load reads the credential from the store.
	Load(ctx context.Context) error
	// Current returns the current credential.
	Current() (*APICredential, error)
	// Replace persists cred and then makes it current.
	Replace(ctx context.Context, cred *APICredential) error
}
