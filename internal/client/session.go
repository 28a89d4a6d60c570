package client

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
)

// Profile is the cached identity the API returns at login. It drives local
// routing decisions only; authorization always happens server-side against
// the session cookie.
type Profile struct {
	UserID   string `json:"user_id"`
	Role     string `json:"role"`
	Name     string `json:"name"`
	Username string `json:"username,omitempty"`
	RollNo   string `json:"roll_no,omitempty"`
	Vertical string `json:"vertical,omitempty"`
}

// Session is a file-backed profile store. It starts logged-out; Init hydrates
// it from disk, Set persists a fresh login, Clear wipes it on logout.
type Session struct {
	path    string
	profile *Profile
}

// NewSession creates a session store persisted at path.
func NewSession(path string) *Session {
	return &Session{path: path}
}

// Init loads a previously persisted profile, if any. A missing file is not
// an error; it just means logged-out.
func (s *Session) Init() error {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}

	var p Profile
	if err := json.Unmarshal(raw, &p); err != nil {
		// A corrupt cache is discarded rather than surfaced.
		return os.Remove(s.path)
	}
	s.profile = &p
	return nil
}

// Set persists the profile of a fresh login.
func (s *Session) Set(p Profile) error {
	s.profile = &p

	raw, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(s.path, raw, 0o600)
}

// Clear wipes the cached profile.
func (s *Session) Clear() error {
	s.profile = nil
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// Profile returns the cached profile, or nil when logged out.
func (s *Session) Profile() *Profile {
	return s.profile
}

// LoggedIn reports whether a profile is cached.
func (s *Session) LoggedIn() bool {
	return s.profile != nil
}
