// Package remoteurl derives the repository owner and name from a git remote url.
package remoteurl

import (
	"fmt"
	"strings"

	"github.com/LambdaTest/statusbridge/pkg/core"
	errs "github.com/LambdaTest/statusbridge/pkg/errors"
	"github.com/LambdaTest/statusbridge/pkg/utils"
)

const gitSuffix = ".git"

// Parse returns the owner and name for an ssh (git@host:owner/repo.git)
// or http(s) (https://host/owner/repo.git) remote url.
func Parse(remoteURL string) (core.RepositoryRef, error) {
	url := strings.TrimSuffix(strings.TrimSpace(remoteURL), "/")
	url = strings.TrimSuffix(url, gitSuffix)

	var fields []string
	if strings.Contains(url, "@") {
		parts := strings.Split(url, ":")
		fields = strings.Split(parts[len(parts)-1], "/")
	} else {
		fields = strings.Split(url, "/")
	}

	segments := make([]string, 0, len(fields))
	for _, f := range fields {
		if f != "" {
			segments = append(segments, f)
		}
	}
	if len(segments) < 2 {
		return core.RepositoryRef{}, fmt.Errorf("%w: %q", errs.ErrMalformedURL, utils.RedactURL(remoteURL))
	}

	return core.RepositoryRef{
		Owner: segments[len(segments)-2],
		Name:  segments[len(segments)-1],
	}, nil
}
