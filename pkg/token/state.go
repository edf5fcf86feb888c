package token

import (
	"context"
	"sync"

	"github.com/LambdaTest/statusbridge/pkg/core"
	errs "github.com/LambdaTest/statusbridge/pkg/errors"
	"github.com/LambdaTest/statusbridge/pkg/lumber"
)

// state holds the process wide credential. Publishers only read it,
// provisioning is the single writer.
type state struct {
	mu     sync.RWMutex
	cred   *core.APICredential
	store  core.CredentialStore
	logger lumber.Logger
}

// NewState returns an unconfigured credential state backed by store.
func NewState(store core.CredentialStore, logger lumber.Logger) core.CredentialState {
	return &state{store: store, logger: logger}
}

func (s *state) Load(ctx context.Context) error {
	cred, err := s.store.Load(ctx)
	if err != nil {
		s.logger.Errorf("failed to load credential, error: %v", err)
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cred = cred
	if cred == nil {
		s.logger.Debugf("no credential persisted, state is unconfigured")
	}
	return nil
}

func (s *state) Current() (*core.APICredential, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.cred == nil || s.cred.Token == "" {
		return nil, errs.ErrUnconfigured
	}
	c := *s.cred
	return &c, nil
}

// Replace holds the write lock across persist and swap, the in memory value
// only changes once the store has accepted the new credential.
func (s *state) Replace(ctx context.Context, cred *core.APICredential) error {
	if cred == nil || cred.Token == "" {
		return errs.ErrUnconfigured
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.store.Save(ctx, cred); err != nil {
		s.logger.Errorf("failed to persist credential, error: %v", err)
		return err
	}
	c := *cred
	s.cred = &c
	return nil
}
