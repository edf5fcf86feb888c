package config

import (
	"time"

	"github.com/LambdaTest/statusbridge/pkg/lumber"
)

type (
	// ConfigWrapper is a wrapper for the config
	ConfigWrapper struct {
		Config `json:"data"`
	}

	// Config the application's configuration
	Config struct {
		Port            string
		LogFile         string
		LogConfig       lumber.LoggingConfig
		LogBackend      string
		Env             string
		Verbose         bool
		GitHub          GitHubConfig `json:"gitHub"`
		Credentials     CredentialsConfig
		Vault           VaultConfig
		Redis           Redis
		RequestTimeout  time.Duration
		GracefulTimeout time.Duration
	}

	// GitHubConfig configures the commit status API.
	GitHubConfig struct {
		// APIURL base url of the GitHub API, https://api.github.com or <host>/api/v3 for enterprise
		APIURL string
		// StatusContext overrides the per env commit status label
		StatusContext string
		// TokenNote the note attached to provisioned tokens
		TokenNote string
	}

	// CredentialsConfig selects where the provisioned token is persisted.
	CredentialsConfig struct {
		// Backend one of file, vault, redis
		Backend string
		// Path json file used by the file backend
		Path string
		// VaultPath kv v2 secret path used by the vault backend
		VaultPath string
		// RedisKey key used by the redis backend
		RedisKey string
	}

	// VaultConfig represents the vault server configuration.
	VaultConfig struct {
		// Token directly specify token(optional)
		Token string
		// Address the vault server address
		Address string
		// Namespace the vault Namespace
		Namespace string
	}

	// Redis represents the redis configuration.
	Redis struct {
		// Redis host:port address.
		Addr string
		// Redis username.
		Username string
		// Redis password.
		Password string
		// TLS enabled
		TLS bool
	}
)
