// Package session persists the signed-in user's identity between command
// invocations. It is a local cache of the last login response, nothing
// more: no expiry, no refresh, no validation against the server.
package session

import (
	"encoding/json"
	"os"
	"path/filepath"
)

const fileName = "session.json"

// Store reads and writes the session file under a fixed directory.
// Consumers receive a *Store explicitly; nothing reads ambient global
// state, so tests can point one at a throwaway directory.
type Store struct {
	dir string
}

func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// fileData is the on-disk shape: the same two values the browser client
// kept in localStorage.
type fileData struct {
	UserID int    `json:"user_id"`
	Role   string `json:"role"`
}

// Save records the login response. The write is atomic (temp file +
// rename) so a crash never leaves a half-written session.
func (s *Store) Save(userID int, role string) error {
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return err
	}
	b, err := json.Marshal(fileData{UserID: userID, Role: role})
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(s.dir, fileName+".*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), s.path())
}

// Read returns the stored identity. Absent or malformed state degrades to
// (nil, "") and never errors: render paths treat "no session" and "broken
// session" identically.
func (s *Store) Read() (userID *int, role string) {
	b, err := os.ReadFile(s.path())
	if err != nil {
		return nil, ""
	}
	var d fileData
	if err := json.Unmarshal(b, &d); err != nil {
		return nil, ""
	}
	if d.UserID == 0 && d.Role == "" {
		return nil, ""
	}
	id := d.UserID
	return &id, d.Role
}

// Clear removes the session file. Missing files are not an error; logout
// is idempotent.
func (s *Store) Clear() error {
	err := os.Remove(s.path())
	if err != nil && os.IsNotExist(err) {
		return nil
	}
	return err
}

func (s *Store) IsAuthenticated() bool {
	id, _ := s.Read()
	return id != nil
}

func (s *Store) path() string {
	return filepath.Join(s.dir, fileName)
}
