// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package credentials

import (
	"context"
	"sync"

	"github.com/linkforge/session-runtime/internal/types"
)

var _ StoreInterface = (*MemoryStore)(nil)

type MemoryStore struct {
	mu         sync.Mutex
	credential *types.Credential
	pending    map[string]string
}

func (s *MemoryStore) Load(context.Context) (*types.Credential, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.credential == nil {
		return nil, ErrNotFound
	}
	return copyCredential(s.credential), nil
}

func (s *MemoryStore) Save(_ context.Context, c *types.Credential) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.credential = copyCredential(c)
	return nil
}

func (s *MemoryStore) Clear(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.credential = nil
	return nil
}

func (s *MemoryStore) SetPending(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pending[key] = value
	return nil
}

func (s *MemoryStore) TakePending(_ context.Context, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.pending[key]
	if !ok {
		return "", ErrNotFound
	}
	delete(s.pending, key)
	return v, nil
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{pending: make(map[string]string)}
}

func copyCredential(c *types.Credential) *types.Credential {
	if c == nil {
		return nil
	}

	cp := *c
	if c.Principal != nil {
		p := *c.Principal
		cp.Principal = &p
	}
	return &cp
}
