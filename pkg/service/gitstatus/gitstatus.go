package gitstatus

import (
	"context"
	"errors"
	"strings"

	"github.com/LambdaTest/statusbridge/config"
	"github.com/LambdaTest/statusbridge/pkg/constants"
	"github.com/LambdaTest/statusbridge/pkg/core"
	errs "github.com/LambdaTest/statusbridge/pkg/errors"
	"github.com/LambdaTest/statusbridge/pkg/lumber"
	"github.com/LambdaTest/statusbridge/pkg/remoteurl"
	"github.com/drone/go-scm/scm"
)

const createStatusOp = "create status"

type service struct {
	scmProvider  core.SCMProvider
	logger       lumber.Logger
	defaultLabel string
}

// New returns a new commit status service that publishes through the scm provider.
func New(cfg *config.Config,
	scmProvider core.SCMProvider,
	logger lumber.Logger) (core.GitStatusService, error) {
	defaultLabel := cfg.GitHub.StatusContext
	if defaultLabel == "" {
		label, ok := constants.GitStatusLabel[cfg.Env]
		if !ok {
			logger.Errorf("failed to find git status label for env %s", cfg.Env)
			return nil, errs.ErrConfigNotFound
		}
		defaultLabel = label
	}
	return &service{
		scmProvider:  scmProvider,
		logger:       logger,
		defaultLabel: defaultLabel,
	}, nil
}

func (s *service) Publish(ctx context.Context, req *core.StatusRequest) error {
	repo, err := remoteurl.Parse(req.RemoteURL)
	if err != nil {
		return err
	}
	commitID := strings.TrimSpace(req.CommitSHA)
	if commitID == "" {
		return errs.ErrMissingCommit
	}
	if req.Credential == nil || req.Credential.Token == "" {
		return errs.ErrUnconfigured
	}

	update := &core.StatusUpdate{
		CommitSHA:   commitID,
		State:       req.State,
		TargetURL:   req.TargetURL,
		Description: req.Description,
		Context:     s.defaultLabel,
	}
	input := &scm.StatusInput{
		State:  createState(update.State),
		Label:  update.Context,
		Desc:   update.Description,
		Target: update.TargetURL,
	}

	s.logger.Debugf("sending commit status %s for %s@%s", update.State, repo.Slug(), commitID)

	ctx = req.Credential.SetRequestContext(ctx)
	_, res, err := s.scmProvider.GetClient().Client.Repositories.CreateStatus(ctx, repo.Slug(), commitID, input)
	return classify(res, err)
}

// classify maps the scm response to the error taxonomy.
func classify(res *scm.Response, err error) error {
	if err == nil {
		return nil
	}
	if res == nil || res.Status == 0 {
		return &errs.StatusError{Kind: errs.ErrTransport, Op: createStatusOp, Err: err}
	}
	if errors.Is(err, scm.ErrNotFound) {
		return &errs.StatusError{Kind: errs.ErrNotFound, Op: createStatusOp, StatusCode: res.Status, Err: err}
	}
	return &errs.StatusError{Kind: errs.StatusKind(res.Status), Op: createStatusOp, StatusCode: res.Status, Err: err}
}
