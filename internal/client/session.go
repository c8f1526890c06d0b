package client

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/sgolovanov/workout-tracker/internal/models"
)

// Session is the client-held credential state. It is populated at login,
// cleared at logout, and always passed in explicitly rather than kept as
// ambient global state.
type Session struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// DefaultSessionPath returns the session file location under the user's
// home directory.
func DefaultSessionPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".workout-tracker", "session.json"), nil
}

// LoadSession reads a previously saved session. Returns (nil, nil) when no
// session file exists.
func LoadSession(path string) (*Session, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	if s.Token == "" {
		return nil, nil
	}
	return &s, nil
}

// SaveSession persists the session to path, creating the directory if needed.
func SaveSession(path string, s *Session) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o600)
}

// ClearSession removes the session file. Clearing an absent session is not
// an error.
func ClearSession(path string) error {
	err := os.Remove(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}
