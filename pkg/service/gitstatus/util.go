package gitstatus

import (
	"github.com/LambdaTest/statusbridge/pkg/core"
	"github.com/drone/go-scm/scm"
)

// MapResult returns the commit status state and description for a finished build.
func MapResult(result core.BuildResult) (core.BuildOutcome, string) {
	switch {
	case result.IsBetterOrEqualTo(core.ResultSuccess):
		return core.OutcomeSuccess, core.BuildSuccessfulDesc
	case result.IsBetterOrEqualTo(core.ResultUnstable):
		return core.OutcomeFailure, core.BuildFailedDesc
	default:
		return core.OutcomeError, core.BuildErrorDesc
	}
}

func createState(outcome core.BuildOutcome) scm.State {
	switch outcome {
	case core.OutcomePending:
		return scm.StatePending
	case core.OutcomeSuccess:
		return scm.StateSuccess
	case core.OutcomeFailure:
		return scm.StateFailure
	case core.OutcomeError:
		return scm.StateError
	default:
		return scm.StateUnknown
	}
}
