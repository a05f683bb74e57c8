// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package generate

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
)

// Sink receives generated files.
type Sink interface {
	WriteFile(name string, data []byte) error
}

// DirSink writes files into a directory.
type DirSink struct {
	Dir string
}

// WriteFile writes data to Dir/name.
func (s DirSink) WriteFile(name string, data []byte) error {
	path := filepath.Join(s.Dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil { //nolint:gosec // generated sources are meant to be readable
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// MemorySink keeps generated files in memory. It is safe for concurrent use.
type MemorySink struct {
	mu    sync.Mutex
	files map[string][]byte
}

// NewMemorySink returns an empty MemorySink.
func NewMemorySink() *MemorySink {
	return &MemorySink{files: make(map[string][]byte)}
}

// WriteFile stores a copy of data under name.
func (s *MemorySink) WriteFile(name string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.files[name] = append([]byte(nil), data...)
	return nil
}

// Files returns the stored file contents keyed by name.
func (s *MemorySink) Files() map[string][]byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string][]byte, len(s.files))
	for k, v := range s.files {
		out[k] = v
	}
	return out
}

// Names returns the stored file names in sorted order.
func (s *MemorySink) Names() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	names := make([]string, 0, len(s.files))
	for name := range s.files {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
