package core

import (
	"context"
	"fmt"
)

// RepositoryRef identifies a repository on the source host.
type RepositoryRef struct {
	Owner string
	Name  string
}

// Slug returns owner/name.
func (r RepositoryRef) Slug() string {
	return fmt.Sprintf("%s/%s", r.Owner, r.Name)
}

// StatusUpdate is a single commit status sent to the source host.
type StatusUpdate struct {
	CommitSHA   string
	State       BuildOutcome
	TargetURL   string
	Description string
	Context     string
}

// StatusRequest carries everything needed to publish one commit status.
type StatusRequest struct {
	RemoteURL   string
	CommitSHA   string
	State       BuildOutcome
	TargetURL   string
	Description string
	Credential  *APICredential
}

// GitStatusService sends the commit status to the source host.
type GitStatusService interface {
	// Publish resolves the repository from the remote url and creates the commit status.
	Publish(ctx context.Context, req *StatusRequest) error
}
