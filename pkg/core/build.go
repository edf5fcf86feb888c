package core

import (
	"strings"

	errs "github.com/LambdaTest/statusbridge/pkg/errors"
)

// BuildResult is the result reported by the build host, ordered best to worst.
type BuildResult string

// BuildResult values.
const (
	ResultSuccess  BuildResult = "SUCCESS"
	ResultUnstable BuildResult = "UNSTABLE"
	ResultFailure  BuildResult = "FAILURE"
	ResultNotBuilt BuildResult = "NOT_BUILT"
	ResultAborted  BuildResult = "ABORTED"
)

// severity is lower for better results.
var severity = map[BuildResult]int{
	ResultSuccess:  0,
	ResultUnstable: 1,
	ResultFailure:  2,
	ResultNotBuilt: 3,
	ResultAborted:  4,
}

// ParseBuildResult parses a case-insensitive build result.
func ParseBuildResult(s string) (BuildResult, error) {
	r := BuildResult(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := severity[r]; !ok {
		return "", errs.ErrInvalidResult
	}
	return r, nil
}

// IsBetterOrEqualTo reports whether r is at least as good as other.
// Unknown results are treated as worse than any known one.
func (r BuildResult) IsBetterOrEqualTo(other BuildResult) bool {
	rs, ok := severity[r]
	if !ok {
		return false
	}
	otherSev, ok := severity[other]
	if !ok {
		return true
	}
	return rs <= otherSev
}

// String returns the result name.
func (r BuildResult) String() string {
	return string(r)
}

// BuildOutcome is the commit status state pushed to the source host.
type BuildOutcome string

// BuildOutcome values.
const (
	OutcomePending BuildOutcome = "pending"
	OutcomeSuccess BuildOutcome = "success"
	OutcomeFailure BuildOutcome = "failure"
	OutcomeError   BuildOutcome = "error"
)

// String returns the state name.
func (o BuildOutcome) String() string {
	return string(o)
}

// Build Description values.
const (
	BuildStartedDesc    string = "Build started"
	BuildSuccessfulDesc string = "Build successful"
	BuildFailedDesc     string = "Build failed"
	BuildErrorDesc      string = "Build error'ed"
)

// Build is the metadata the build host hands to the notifier.
type Build struct {
	RemoteURL string      `json:"remote_url"`
	CommitSHA string      `json:"commit_sha"`
	BuildURL  string      `json:"target_url"`
	Result    BuildResult `json:"result,omitempty"`
}
