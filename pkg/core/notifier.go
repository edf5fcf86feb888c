package core

import "context"

// Notifier is invoked by the build host around a build.
// Both hooks report whether the status was published and never alter the build.
type Notifier interface {
	// OnBuildStart publishes the pending state.
	OnBuildStart(ctx context.Context, build *Build) bool
	// OnBuildComplete publishes the terminal state derived from the build result.
	OnBuildComplete(ctx context.Context, build *Build) bool
}
