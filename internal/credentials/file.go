// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package credentials

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/linkforge/session-runtime/internal/logging"
	"github.com/linkforge/session-runtime/internal/tracing"
	"github.com/linkforge/session-runtime/internal/types"
)

var _ StoreInterface = (*FileStore)(nil)

const (
	fileMode = 0o600
	dirMode  = 0o700
)

type fileState struct {
	Credential *types.Credential `json:"credential,omitempty"`
	Pending    map[string]string `json:"pending,omitempty"`
}

// FileStore keeps the device-local state in a single JSON document.
type FileStore struct {
	path string
	mu   sync.Mutex

	tracer tracing.TracingInterface
	logger logging.LoggerInterface
}

func (s *FileStore) Load(ctx context.Context) (*types.Credential, error) {
	_, span := s.tracer.Start(ctx, "credentials.FileStore.Load")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.read()
	if err != nil {
		return nil, err
	}
	if state.Credential == nil {
		return nil, ErrNotFound
	}
	return state.Credential, nil
}

func (s *FileStore) Save(ctx context.Context, c *types.Credential) error {
	_, span := s.tracer.Start(ctx, "credentials.FileStore.Save")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.read()
	if err != nil {
		return err
	}
	state.Credential = c
	return s.write(state)
}

func (s *FileStore) Clear(ctx context.Context) error {
	_, span := s.tracer.Start(ctx, "credentials.FileStore.Clear")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.read()
	if err != nil {
		// an unreadable file cannot hold a usable credential, start over
		s.logger.Warnf("discarding unreadable credential file %s: %v", s.path, err)
		state = &fileState{}
	}
	state.Credential = nil
	return s.write(state)
}

func (s *FileStore) SetPending(ctx context.Context, key, value string) error {
	_, span := s.tracer.Start(ctx, "credentials.FileStore.SetPending")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.read()
	if err != nil {
		return err
	}
	if state.Pending == nil {
		state.Pending = make(map[string]string)
	}
	state.Pending[key] = value
	return s.write(state)
}

func (s *FileStore) TakePending(ctx context.Context, key string) (string, error) {
	_, span := s.tracer.Start(ctx, "credentials.FileStore.TakePending")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.read()
	if err != nil {
		return "", err
	}

	v, ok := state.Pending[key]
	if !ok {
		return "", ErrNotFound
	}
	delete(state.Pending, key)

	if err := s.write(state); err != nil {
		return "", err
	}
	return v, nil
}

func (s *FileStore) read() (*fileState, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return &fileState{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read credential file: %w", err)
	}

	state := new(fileState)
	if len(data) == 0 {
		return state, nil
	}
	if err := json.Unmarshal(data, state); err != nil {
		return nil, fmt.Errorf("failed to decode credential file: %w", err)
	}
	return state, nil
}

func (s *FileStore) write(state *fileState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to encode credential file: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, dirMode); err != nil {
		return fmt.Errorf("failed to create credential directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".credentials-*")
	if err != nil {
		return fmt.Errorf("failed to create temporary credential file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write credential file: %w", err)
	}
	if err := tmp.Chmod(fileMode); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to restrict credential file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close credential file: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("failed to replace credential file: %w", err)
	}
	return nil
}

// DefaultPath is the credential file location under the user config directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "linkforge", "credentials.json"), nil
}

func NewFileStore(path string, tracer tracing.TracingInterface, logger logging.LoggerInterface) *FileStore {
	s := new(FileStore)

	s.path = path
	s.tracer = tracer
	s.logger = logger

	return s
}
