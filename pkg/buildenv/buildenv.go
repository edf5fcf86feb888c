// Package buildenv resolves the build metadata handed over by the build host.
package buildenv

import (
	"github.com/LambdaTest/statusbridge/pkg/constants"
	"github.com/LambdaTest/statusbridge/pkg/core"
	"github.com/spf13/viper"
)

const (
	remoteURLKey = "remote_url"
	commitKey    = "commit_sha"
	buildURLKey  = "build_url"
	resultKey    = "result"
)

// Overrides are explicit values, usually from flags, that win over the environment.
type Overrides struct {
	RemoteURL string
	CommitSHA string
	BuildURL  string
	Result    string
}

// Load returns the build described by overrides and the build host environment.
// The result is only parsed when withResult is set.
func Load(overrides Overrides, withResult bool) (*core.Build, error) {
	v := viper.New()
	_ = v.BindEnv(remoteURLKey, constants.EnvRemoteURL, constants.EnvRemoteURLAlt)
	_ = v.BindEnv(commitKey, constants.EnvCommitSHA)
	_ = v.BindEnv(buildURLKey, constants.EnvBuildURL)
	_ = v.BindEnv(resultKey, constants.EnvBuildResult)

	set := func(key, value string) {
		if value != "" {
			v.Set(key, value)
		}
	}
	set(remoteURLKey, overrides.RemoteURL)
	set(commitKey, overrides.CommitSHA)
	set(buildURLKey, overrides.BuildURL)
	set(resultKey, overrides.Result)

	build := &core.Build{
		RemoteURL: v.GetString(remoteURLKey),
		CommitSHA: v.GetString(commitKey),
		BuildURL:  v.GetString(buildURLKey),
	}
	if withResult {
		result, err := core.ParseBuildResult(v.GetString(resultKey))
		if err != nil {
			return nil, err
		}
		build.Result = result
	}
	return build, nil
}
