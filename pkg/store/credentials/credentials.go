// Package credentials persists the provisioned API token.
package credentials

import (
	"context"

	"github.com/LambdaTest/statusbridge/config"
	"github.com/LambdaTest/statusbridge/pkg/constants"
	"github.com/LambdaTest/statusbridge/pkg/core"
	errs "github.com/LambdaTest/statusbridge/pkg/errors"
	"github.com/LambdaTest/statusbridge/pkg/lumber"
	"github.com/LambdaTest/statusbridge/pkg/redis"
	"github.com/LambdaTest/statusbridge/pkg/secrets/vault"
)

// New returns the credential store selected by cfg.Credentials.Backend.
// The returned close func releases backend connections and is never nil.
func New(ctx context.Context, cfg *config.Config, logger lumber.Logger) (core.CredentialStore, func(), error) {
	noop := func() {}
	switch cfg.Credentials.Backend {
	case constants.BackendFile, "":
		return NewFileStore(cfg.Credentials.Path, logger), noop, nil
	case constants.BackendVault:
		vaultStore, err := vault.New(cfg, logger)
		if err != nil {
			return nil, noop, err
		}
		return NewVaultStore(vaultStore, cfg.Credentials.VaultPath, logger), noop, nil
	case constants.BackendRedis:
		redisDB, err := redis.New(ctx, cfg, logger)
		if err != nil {
			logger.Errorf("failed to create redis connection %v", err)
			return nil, noop, err
		}
		closeFn := func() {
			if cerr := redisDB.Close(); cerr != nil {
				logger.Warnf("failed to close redis connection %v", cerr)
			}
		}
		return NewRedisStore(redisDB, cfg.Credentials.RedisKey, logger), closeFn, nil
	default:
		logger.Errorf("unknown credentials backend %s", cfg.Credentials.Backend)
		return nil, noop, errs.ErrUnknownBackend
	}
}
