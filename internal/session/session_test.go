package session

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSaveReadRoundTrip(t *testing.T) {
	s := NewStore(t.TempDir())
	if err := s.Save(42, "PMO"); err != nil {
		t.Fatalf("Save: %v", err)
	}
	id, role := s.Read()
	if id == nil || *id != 42 || role != "PMO" {
		t.Fatalf("Read: got (%v, %q), want (42, PMO)", id, role)
	}
	if !s.IsAuthenticated() {
		t.Error("IsAuthenticated should be true after Save")
	}
}

func TestReadAbsentFile(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "never-created"))
	id, role := s.Read()
	if id != nil || role != "" {
		t.Fatalf("Read on absent file: got (%v, %q), want (nil, \"\")", id, role)
	}
	if s.IsAuthenticated() {
		t.Error("IsAuthenticated should be false with no session file")
	}
}

func TestReadMalformedFileDegrades(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "session.json"), []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}
	s := NewStore(dir)
	id, role := s.Read()
	if id != nil || role != "" {
		t.Fatalf("Read on malformed file: got (%v, %q), want (nil, \"\")", id, role)
	}
}

func TestSaveOverwrites(t *testing.T) {
	s := NewStore(t.TempDir())
	if err := s.Save(1, "EMPLOYEE"); err != nil {
		t.Fatal(err)
	}
	if err := s.Save(2, "ADMIN"); err != nil {
		t.Fatal(err)
	}
	id, role := s.Read()
	if id == nil || *id != 2 || role != "ADMIN" {
		t.Fatalf("Read after second Save: got (%v, %q), want (2, ADMIN)", id, role)
	}
}

func TestClearIsIdempotent(t *testing.T) {
	s := NewStore(t.TempDir())
	if err := s.Save(7, "FINANCE"); err != nil {
		t.Fatal(err)
	}
	if err := s.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if s.IsAuthenticated() {
		t.Error("still authenticated after Clear")
	}
	// Clearing again, with nothing there, must not error.
	if err := s.Clear(); err != nil {
		t.Fatalf("second Clear: %v", err)
	}
}
