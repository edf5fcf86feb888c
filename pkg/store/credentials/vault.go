package credentials

import (
	"context"
	"errors"

	"github.com/LambdaTest/statusbridge/pkg/core"
	errs "github.com/LambdaTest/statusbridge/pkg/errors"
	"github.com/LambdaTest/statusbridge/pkg/lumber"
)

const tokenKey = "token"

type vaultCredentialStore struct {
	vault  core.Vault
	path   string
	logger lumber.Logger
}

// NewVaultStore returns a store keeping the credential in a kv v2 secret.
func NewVaultStore(vault core.Vault, path string, logger lumber.Logger) core.CredentialStore {
	return &vaultCredentialStore{vault: vault, path: path, logger: logger}
}

func (v *vaultCredentialStore) Load(ctx context.Context) (*core.APICredential, error) {
	secret, err := v.vault.ReadSecret(v.path)
	if err != nil {
		if errors.Is(err, errs.ErrSecretNotFound) {
			return nil, nil
		}
		return nil, err
	}
	token, ok := secret[tokenKey].(string)
	if !ok {
		v.logger.Errorf("unexpected secret shape at path %s", v.path)
		return nil, errs.ErrTypeAssertionFailed
	}
	if token == "" {
		return nil, nil
	}
	return &core.APICredential{Token: token}, nil
}

func (v *vaultCredentialStore) Save(ctx context.Context, cred *core.APICredential) error {
	options := map[string]interface{}{
		"data": map[string]interface{}{
			tokenKey: cred.Token,
		},
	}
	return v.vault.CreateSecret(v.path, options)
}
