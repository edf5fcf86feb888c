package credentials

import (
	"context"

	"github.com/LambdaTest/statusbridge/pkg/core"
	"github.com/LambdaTest/statusbridge/pkg/lumber"
	"github.com/go-redis/redis/v8"
	"github.com/pkg/errors"
)

type redisCredentialStore struct {
	redisDB core.RedisDB
	key     string
	logger  lumber.Logger
}

// NewRedisStore returns a store keeping the credential under key, shared by every agent using it.
func NewRedisStore(redisDB core.RedisDB, key string, logger lumber.Logger) core.CredentialStore {
	return &redisCredentialStore{redisDB: redisDB, key: key, logger: logger}
}

func (r *redisCredentialStore) Load(ctx context.Context) (*core.APICredential, error) {
	raw, err := r.redisDB.Client().Get(ctx, r.key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		r.logger.Errorf("failed to read key %s from redis, error: %v", r.key, err)
		return nil, errors.Wrapf(err, "get redis key %s", r.key)
	}
	cred := new(core.APICredential)
	if err := json.Unmarshal(raw, cred); err != nil {
		return nil, errors.Wrapf(err, "parse redis key %s", r.key)
	}
	if cred.Token == "" {
		return nil, nil
	}
	return cred, nil
}

func (r *redisCredentialStore) Save(ctx context.Context, cred *core.APICredential) error {
	raw, err := json.Marshal(cred)
	if err != nil {
		return err
	}
	if err := r.redisDB.Client().Set(ctx, r.key, raw, 0).Err(); err != nil {
		r.logger.Errorf("failed to write key %s to redis, error: %v", r.key, err)
		return errors.Wrapf(err, "set redis key %s", r.key)
	}
	return nil
}
