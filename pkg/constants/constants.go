package constants

import (
	"time"
)

// BinaryVersion version of the binary, set at build time
var BinaryVersion = "dev"

const (
	// ServiceName is the binary and service name
	ServiceName = "statusbridge"
	// DefaultGitHubAPIURL the public GitHub API endpoint
	DefaultGitHubAPIURL = "https://api.github.com"
	// DefaultTokenNote note attached to tokens created by the provision command
	DefaultTokenNote = "statusbridge"
	// StatusScope the only scope requested for provisioned tokens
	StatusScope = "repo:status"
	// OTPHeader carries the two-factor code for token provisioning
	OTPHeader = "X-GitHub-OTP"
	// DefaultRequestTimeout bounds every call to the source host API
	DefaultRequestTimeout = 10 * time.Second
	// DefaultGracefulTimeout is default timeout for graceful shutdown of the app.
	DefaultGracefulTimeout = 30 * time.Second
	// ConfigDirName directory under $HOME holding config and credentials
	ConfigDirName = ".statusbridge"
	// CredentialsFileName file holding the provisioned token
	CredentialsFileName = "credentials.json"
	// DefaultVaultSecretPath kv v2 path holding the provisioned token
	DefaultVaultSecretPath = "secret/data/statusbridge/token"
	// DefaultRedisKey key holding the provisioned token
	DefaultRedisKey = "statusbridge:token"
	// RequestIDHeader response header carrying the request id
	RequestIDHeader = "X-Request-ID"
)

// Build environment variables set by the build host.
const (
	EnvRemoteURL    = "GIT_URL"
	EnvRemoteURLAlt = "GIT_URL_1"
	EnvCommitSHA    = "GIT_COMMIT"
	EnvBuildURL     = "BUILD_URL"
	EnvBuildResult  = "BUILD_RESULT"
)

// Credential store backends.
const (
	BackendFile  = "file"
	BackendVault = "vault"
	BackendRedis = "redis"
)

// All possible env values
const (
	Dev   = "dev"
	Prod  = "prod"
	Stage = "stage"
)

// GitStatusLabel is the commit status context per env
var GitStatusLabel = map[string]string{
	Stage: "CI-stage",
	Dev:   "CI-dev",
	Prod:  "CI",
}
