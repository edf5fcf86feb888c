package credentials

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/LambdaTest/statusbridge/pkg/core"
	"github.com/LambdaTest/statusbridge/pkg/lumber"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

const (
	credentialsFileMode = 0o600
	credentialsDirMode  = 0o700
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type fileStore struct {
	path   string
	logger lumber.Logger
}

// NewFileStore returns a store keeping the credential as json in path.
func NewFileStore(path string, logger lumber.Logger) core.CredentialStore {
	return &fileStore{path: path, logger: logger}
}

func (f *fileStore) Load(ctx context.Context) (*core.APICredential, error) {
	raw, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		f.logger.Errorf("failed to read credentials file %s, error: %v", f.path, err)
		return nil, errors.Wrapf(err, "read credentials file %s", f.path)
	}
	cred := new(core.APICredential)
	if err := json.Unmarshal(raw, cred); err != nil {
		f.logger.Errorf("failed to parse credentials file %s, error: %v", f.path, err)
		return nil, errors.Wrapf(err, "parse credentials file %s", f.path)
	}
	if cred.Token == "" {
		return nil, nil
	}
	return cred, nil
}

// Save writes to a temp file in the same directory and renames it over path,
// so a reader never sees a partial file.
func (f *fileStore) Save(ctx context.Context, cred *core.APICredential) error {
	raw, err := json.Marshal(cred)
	if err != nil {
		return err
	}
	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, credentialsDirMode); err != nil {
		f.logger.Errorf("failed to create credentials dir %s, error: %v", dir, err)
		return errors.Wrapf(err, "create credentials dir %s", dir)
	}
	tmp, err := os.CreateTemp(dir, ".credentials-*")
	if err != nil {
		f.logger.Errorf("failed to create temp credentials file in %s, error: %v", dir, err)
		return errors.Wrapf(err, "create temp credentials file in %s", dir)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if err := tmp.Chmod(credentialsFileMode); err != nil {
		tmp.Close()
		return err
	}
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmpName, f.path); err != nil {
		f.logger.Errorf("failed to replace credentials file %s, error: %v", f.path, err)
		return errors.Wrapf(err, "replace credentials file %s", f.path)
	}
	return nil
}
