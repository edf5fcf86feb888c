package requestutils

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/LambdaTest/statusbridge/pkg/core"
	errs "github.com/LambdaTest/statusbridge/pkg/errors"
	"github.com/LambdaTest/statusbridge/pkg/lumber"
	"github.com/hashicorp/go-cleanhttp"
)

type requests struct {
	logger lumber.Logger
	client *http.Client
}

// New returns a request helper whose calls are bounded by timeout.
func New(timeout time.Duration, logger lumber.Logger) core.Requests {
	client := cleanhttp.DefaultPooledClient()
	client.Timeout = timeout
	return &requests{
		logger: logger,
		client: client,
	}
}

func (r *requests) MakeAPIRequest(ctx context.Context, httpMethod, endpoint string, body []byte, auth core.RequestAuth) ([]byte, error) {
	op := fmt.Sprintf("%s %s", httpMethod, endpoint)
	req, err := http.NewRequestWithContext(ctx, httpMethod, endpoint, bytes.NewBuffer(body))
	if err != nil {
		r.logger.Errorf("error while creating http request %v", err)
		return nil, err
	}

	req.Header.Set("Accept", "application/vnd.github.v3+json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	switch {
	case auth.Token != "":
		req.Header.Add("Authorization", fmt.Sprintf("Bearer %s", auth.Token))
	case auth.Username != "":
		req.SetBasicAuth(auth.Username, auth.Password)
	}
	for k, v := range auth.Headers {
		req.Header.Set(k, v)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		r.logger.Errorf("error while sending http request %v", err)
		return nil, &errs.StatusError{Kind: errs.ErrTransport, Op: op, Err: err}
	}

	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		r.logger.Errorf("error while reading http response body %v", err)
		return respBody, &errs.StatusError{Kind: errs.ErrTransport, Op: op, StatusCode: resp.StatusCode, Err: err}
	}

	//nolint:gomnd
	if resp.StatusCode >= 300 {
		r.logger.Errorf("non 2xx status code %d: %s", resp.StatusCode, string(respBody))
		return respBody, &errs.StatusError{
			Kind:       errs.StatusKind(resp.StatusCode),
			Op:         op,
			StatusCode: resp.StatusCode,
			Err:        errs.New(http.StatusText(resp.StatusCode)),
		}
	}

	return respBody, nil
}
