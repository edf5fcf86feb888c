package gitscm

import (
	"net/http"
	"time"

	"github.com/LambdaTest/statusbridge/config"
	"github.com/LambdaTest/statusbridge/pkg/core"
	"github.com/LambdaTest/statusbridge/pkg/lumber"
	"github.com/drone/go-scm/scm"
	"github.com/drone/go-scm/scm/driver/github"
	"github.com/drone/go-scm/scm/transport/oauth2"
	"github.com/hashicorp/go-cleanhttp"
)

// gitClientProvider provides the git scm client
type gitClientProvider struct {
	logger       lumber.Logger
	gitHubClient *core.SCM
}

// New initializes GitClientProvider for the configured GitHub API endpoint.
func New(cfg *config.Config, logger lumber.Logger) (core.SCMProvider, error) {
	client, err := provideGithubClient(cfg.GitHub.APIURL, cfg.RequestTimeout)
	if err != nil {
		logger.Errorf("failed to create github client for %s, error: %v", cfg.GitHub.APIURL, err)
		return nil, err
	}
	logger.Debugf("github client created for %s", cfg.GitHub.APIURL)
	return &gitClientProvider{
		logger:       logger,
		gitHubClient: &core.SCM{Client: client, Name: "github"},
	}, nil
}

func (g *gitClientProvider) GetClient() *core.SCM {
	return g.gitHubClient
}

// provideGithubClient returns a client that reads the oauth token from the request context.
func provideGithubClient(apiURL string, timeout time.Duration) (*scm.Client, error) {
	client, err := github.New(apiURL)
	if err != nil {
		return nil, err
	}
	client.Client = &http.Client{
		Timeout: timeout,
		Transport: &oauth2.Transport{
			Source: oauth2.ContextTokenSource(),
			Base:   cleanhttp.DefaultPooledTransport(),
		},
	}
	return client, nil
}
