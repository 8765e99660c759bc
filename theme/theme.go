// Package theme holds the dark/light display preference.
//
// A State is loaded once from a Storage, changed only through Toggle, and
// written back to the same Storage on every change. Subscribers are told
// about each new mode after it has been persisted.
package theme

import (
	"fmt"
	"sync"
)

// Key is the storage key the preference lives under.
const Key = "dark"

// Mode is the resolved display mode.
type Mode string

const (
	Dark  Mode = "dark"
	Light Mode = "light"
)

// Storage is a string key-value store local to one visitor.
type Storage interface {
	Get(key string) (string, bool)
	Set(key, value string) error
}

// State is the theme container. The zero value is not usable; call Load.
type State struct {
	mu      sync.Mutex
	dark    bool
	storage Storage
	subs    map[int]func(Mode)
	nextID  int
}

// Load reads the stored preference. Missing or unparseable values yield Dark.
func Load(s Storage) *State {
	dark := true
	if v, ok := s.Get(Key); ok {
		if b, ok := parse(v); ok {
			dark = b
		}
	}
	return &State{dark: dark, storage: s, subs: make(map[int]func(Mode))}
}

func parse(v string) (bool, bool) {
	switch v {
	case "true":
		return true, true
	case "false":
		return false, true
	}
	return false, false
}

func encode(dark bool) string {
	if dark {
		return "true"
	}
	return "false"
}

// Dark reports whether the dark theme is active.
func (s *State) Dark() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dark
}

// Mode returns the active mode.
func (s *State) Mode() Mode {
	if s.Dark() {
		return Dark
	}
	return Light
}

// Toggle flips the mode, persists it and notifies subscribers. When the
// write fails the in-memory state is left unchanged.
func (s *State) Toggle() error {
	s.mu.Lock()
	next := !s.dark
	if err := s.storage.Set(Key, encode(next)); err != nil {
		s.mu.Unlock()
		return fmt.Errorf("theme: persist: %w", err)
	}
	s.dark = next
	subs := make([]func(Mode), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	m := Light
	if next {
		m = Dark
	}
	for _, fn := range subs {
		fn(m)
	}
	return nil
}

// Subscribe registers fn for mode changes and returns a cancel function.
func (s *State) Subscribe(fn func(Mode)) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.mu.Unlock()
	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// MemoryStorage is an in-process Storage.
type MemoryStorage struct {
	mu     sync.Mutex
	values map[string]string
}

// NewMemoryStorage returns an empty MemoryStorage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{values: make(map[string]string)}
}

func (m *MemoryStorage) Get(key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	return v, ok
}

func (m *MemoryStorage) Set(key, value string) error {
	m.mu.Lock()
	m.values[key] = value
	m.mu.Unlock()
	return nil
}
