// Package memory provides an in-process snapshot store, used when no
// redis address is configured and by tests.
package memory

import (
	"context"
	"sync"
)

type Snapshots struct {
	mu sync.RWMutex
	m  map[string]string
}

func New() *Snapshots {
	return &Snapshots{m: make(map[string]string)}
}

func (s *Snapshots) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.m[key]
	return v, ok, nil
}

func (s *Snapshots) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[key] = value
	return nil
}
