package theme

import (
	"errors"
	"testing"
)

func TestLoadDefaultsToDark(t *testing.T) {
	s := Load(NewMemoryStorage())
	if !s.Dark() {
		t.Fatal("expected dark when nothing is stored")
	}
	if s.Mode() != Dark {
		t.Errorf("Mode = %q, want %q", s.Mode(), Dark)
	}
}

func TestLoadStoredValues(t *testing.T) {
	tests := []struct {
		stored string
		want   Mode
	}{
		{"true", Dark},
		{"false", Light},
		{"", Dark},
		{"null", Dark},
		{"yes please", Dark},
		{"FALSE", Dark},
	}
	for _, tt := range tests {
		st := NewMemoryStorage()
		st.Set(Key, tt.stored)
		if got := Load(st).Mode(); got != tt.want {
			t.Errorf("Load(%q).Mode() = %q, want %q", tt.stored, got, tt.want)
		}
	}
}

func TestTogglePersistsAcrossLoads(t *testing.T) {
	st := NewMemoryStorage()
	s := Load(st)
	if err := s.Toggle(); err != nil {
		t.Fatalf("Toggle: %v", err)
	}
	if s.Mode() != Light {
		t.Fatalf("Mode after toggle = %q, want light", s.Mode())
	}
	if v, _ := st.Get(Key); v != "false" {
		t.Errorf("stored value = %q, want %q", v, "false")
	}
	if got := Load(st).Mode(); got != Light {
		t.Errorf("fresh load = %q, want light", got)
	}

	if err := s.Toggle(); err != nil {
		t.Fatalf("Toggle: %v", err)
	}
	if got := Load(st).Mode(); got != Dark {
		t.Errorf("fresh load after second toggle = %q, want dark", got)
	}
}

func TestSubscribe(t *testing.T) {
	s := Load(NewMemoryStorage())
	var seen []Mode
	cancel := s.Subscribe(func(m Mode) { seen = append(seen, m) })

	s.Toggle()
	s.Toggle()
	cancel()
	s.Toggle()

	if len(seen) != 2 || seen[0] != Light || seen[1] != Dark {
		t.Errorf("seen = %v, want [light dark]", seen)
	}
}

type failingStorage struct{}

func (failingStorage) Get(string) (string, bool) { return "", false }
func (failingStorage) Set(string, string) error { return errors.New("disk full") }

func TestToggleKeepsStateWhenPersistFails(t *testing.T) {
	s := Load(failingStorage{})
	notified := false
	s.Subscribe(func(Mode) { notified = true })

	if err := s.Toggle(); err == nil {
		t.Fatal("expected error from failing storage")
	}
	if !s.Dark() {
		t.Error("state changed despite failed write")
	}
	if notified {
		t.Error("subscriber notified despite failed write")
	}
}
