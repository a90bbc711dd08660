/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package mock provides a mock implementation of manifeststore.Store for testing
package mock

import (
	"context"
	"sort"
	"sync"

	"github.com/suparena/cmdproc/manifest"
	"github.com/suparena/cmdproc/manifeststore"
)

// Store is a map-backed mock implementation of manifeststore.Store
type Store struct {
	mu          sync.RWMutex
	data        map[string]*manifest.Manifest
	getError    error
	putError    error
	deleteError error
	listError   error
}

// New creates a new mock Store
func New() *Store {
	return &Store{
		data: make(map[string]*manifest.Manifest),
	}
}

// WithGetError makes Get operations return an error
func (s *Store) WithGetError(err error) *Store {
	s.getError = err
	return s
}

// WithPutError makes Put operations return an error
func (s *Store) WithPutError(err error) *Store {
	s.putError = err
	return s
}

// WithDeleteError makes Delete operations return an error
func (s *Store) WithDeleteError(err error) *Store {
	s.deleteError = err
	return s
}

// WithListError makes List operations return an error
func (s *Store) WithListError(err error) *Store {
	s.listError = err
	return s
}

// Get retrieves a manifest by name
func (s *Store) Get(ctx context.Context, name string) (*manifest.Manifest, error) {
	if s.getError != nil {
		return nil, s.getError
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	m, exists := s.data[name]
	if !exists {
		return nil, manifeststore.ErrManifestNotFound
	}
	cp := *m
	return &cp, nil
}

// Put stores a manifest under its name
func (s *Store) Put(ctx context.Context, m *manifest.Manifest) error {
	if s.putError != nil {
		return s.putError
	}
	if err := m.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cp := *m
	s.data[m.Name] = &cp
	return nil
}

// Delete removes a manifest by name. Deleting an absent manifest is a no-op,
// matching the DynamoDB store.
func (s *Store) Delete(ctx context.Context, name string) error {
	if s.deleteError != nil {
		return s.deleteError
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.data, name)
	return nil
}

// List returns the names of all stored manifests in sorted order
func (s *Store) List(ctx context.Context) ([]string, error) {
	if s.listError != nil {
		return nil, s.listError
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.data))
	for name := range s.data {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Len returns the number of stored manifests
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}
