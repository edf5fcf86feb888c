package notifier

import (
	"context"

	"github.com/LambdaTest/statusbridge/pkg/core"
	errs "github.com/LambdaTest/statusbridge/pkg/errors"
	"github.com/LambdaTest/statusbridge/pkg/lumber"
	"github.com/LambdaTest/statusbridge/pkg/service/gitstatus"
	"github.com/LambdaTest/statusbridge/pkg/utils"
)

type notifier struct {
	gitStatusService core.GitStatusService
	credentials      core.CredentialState
	logger           lumber.Logger
}

// New returns a Notifier publishing through gitStatusService with the current credential.
func New(gitStatusService core.GitStatusService, credentials core.CredentialState, logger lumber.Logger) core.Notifier {
	return &notifier{
		gitStatusService: gitStatusService,
		credentials:      credentials,
		logger:           logger,
	}
}

func (n *notifier) OnBuildStart(ctx context.Context, build *core.Build) bool {
	return n.send(ctx, build, core.OutcomePending, core.BuildStartedDesc)
}

func (n *notifier) OnBuildComplete(ctx context.Context, build *core.Build) bool {
	state, desc := gitstatus.MapResult(build.Result)
	return n.send(ctx, build, state, desc)
}

// send never returns an error, a failed push must not change the build result.
func (n *notifier) send(ctx context.Context, build *core.Build, state core.BuildOutcome, desc string) bool {
	logger := n.logger.WithFields(lumber.Fields{
		"remote": utils.RedactURL(build.RemoteURL),
		"sha":    build.CommitSHA,
		"state":  state.String(),
		"url":    build.BuildURL,
	})

	cred, err := n.credentials.Current()
	if err != nil {
		logger.Errorf("commit status not sent, kind=%s error: %v", errs.KindName(err), err)
		return false
	}

	err = n.gitStatusService.Publish(ctx, &core.StatusRequest{
		RemoteURL:   build.RemoteURL,
		CommitSHA:   build.CommitSHA,
		State:       state,
		TargetURL:   build.BuildURL,
		Description: desc,
		Credential:  cred,
	})
	if err != nil {
		logger.Errorf("commit status not sent, kind=%s error: %v", errs.KindName(err), err)
		return false
	}
	logger.Infof("commit status %s sent: %s", state, desc)
	return true
}
