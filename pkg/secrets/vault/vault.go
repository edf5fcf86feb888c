package vault

import (
	"github.com/LambdaTest/statusbridge/config"
	"github.com/LambdaTest/statusbridge/pkg/core"
	errs "github.com/LambdaTest/statusbridge/pkg/errors"
	"github.com/LambdaTest/statusbridge/pkg/lumber"
	"github.com/hashicorp/vault/api"
)

type vaultStore struct {
	client *api.Client
	logger lumber.Logger
}

// New returns a vault client for the kv v2 secrets engine.
func New(cfg *config.Config, logger lumber.Logger) (core.Vault, error) {
	if cfg.Vault.Address == "" {
		logger.Errorf("missing vault address")
		return nil, errs.ErrConfigNotFound
	}
	vaultCfg := api.DefaultConfig()
	vaultCfg.Address = cfg.Vault.Address
	vaultCfg.Timeout = cfg.RequestTimeout
	// one shot writes, the caller decides what a failure means
	vaultCfg.MaxRetries = 0

	client, err := api.NewClient(vaultCfg)
	if err != nil {
		logger.Errorf("failed to create vault client, error: %v", err)
		return nil, err
	}
	if cfg.Vault.Token != "" {
		client.SetToken(cfg.Vault.Token)
	}
	if cfg.Vault.Namespace != "" {
		client.SetNamespace(cfg.Vault.Namespace)
	}
	return &vaultStore{client: client, logger: logger}, nil
}

// CreateSecret writes values to path. For kv v2 the values must be wrapped in a "data" key.
func (v *vaultStore) CreateSecret(path string, values map[string]interface{}) error {
	if _, err := v.client.Logical().Write(path, values); err != nil {
		v.logger.Errorf("failed to write secret at path %s, error: %v", path, err)
		return err
	}
	return nil
}

// ReadSecret returns the kv v2 data stored at path.
func (v *vaultStore) ReadSecret(path string) (map[string]interface{}, error) {
	secret, err := v.client.Logical().Read(path)
	if err != nil {
		v.logger.Errorf("failed to read secret at path %s, error: %v", path, err)
		return nil, err
	}
	if secret == nil || secret.Data == nil {
		return nil, errs.ErrSecretNotFound
	}
	data, ok := secret.Data["data"].(map[string]interface{})
	if !ok || data == nil {
		return nil, errs.ErrSecretNotFound
	}
	return data, nil
}
