package token

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/LambdaTest/statusbridge/config"
	"github.com/LambdaTest/statusbridge/pkg/constants"
	"github.com/LambdaTest/statusbridge/pkg/core"
	errs "github.com/LambdaTest/statusbridge/pkg/errors"
	"github.com/LambdaTest/statusbridge/pkg/lumber"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type authorizationInput struct {
	Scopes []string `json:"scopes"`
	Note   string   `json:"note"`
}

type authorizationOutput struct {
	Token string `json:"token"`
}

type provisioner struct {
	requests core.Requests
	state    core.CredentialState
	endpoint string
	note     string
	logger   lumber.Logger
}

// New returns a TokenProvisioner that issues tokens through the authorizations API
// and hands them to state.
func New(cfg *config.Config, requests core.Requests, state core.CredentialState, logger lumber.Logger) core.TokenProvisioner {
	note := cfg.GitHub.TokenNote
	if note == "" {
		note = constants.DefaultTokenNote
	}
	return &provisioner{
		requests: requests,
		state:    state,
		endpoint: fmt.Sprintf("%s/authorizations", strings.TrimSuffix(cfg.GitHub.APIURL, "/")),
		note:     note,
		logger:   logger,
	}
}

func (p *provisioner) Provision(ctx context.Context, username, password, otp string) (*core.APICredential, error) {
	if username == "" || password == "" {
		return nil, fmt.Errorf("%w: %w", errs.ErrProvision, errs.ErrAuth)
	}

	body, err := json.Marshal(&authorizationInput{
		Scopes: []string{constants.StatusScope},
		Note:   p.note,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrProvision, err)
	}

	auth := core.RequestAuth{Username: username, Password: password}
	if otp != "" {
		auth.Headers = map[string]string{constants.OTPHeader: otp}
	}

	resBytes, err := p.requests.MakeAPIRequest(ctx, http.MethodPost, p.endpoint, body, auth)
	if err != nil {
		p.logger.Errorf("failed to create token for user %s, error: %v", username, err)
		return nil, fmt.Errorf("%w: %w", errs.ErrProvision, err)
	}

	out := new(authorizationOutput)
	if err := json.Unmarshal(resBytes, out); err != nil {
		p.logger.Errorf("error while unmarshaling authorization response, error: %v", err)
		return nil, fmt.Errorf("%w: %w", errs.ErrProvision, err)
	}
	if out.Token == "" {
		return nil, fmt.Errorf("%w: empty token in response", errs.ErrProvision)
	}

	cred := &core.APICredential{Token: out.Token}
	if err := p.state.Replace(ctx, cred); err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrProvision, err)
	}
	p.logger.Infof("provisioned %s token for user %s", constants.StatusScope, username)
	return cred, nil
}
