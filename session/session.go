// Package session persists the authenticated session across invocations,
// the way the browser app keeps it in local storage: the bearer token, the
// user profile, and the last client selected on the dashboard.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hrinvest/carteira"
)

// ErrNoSession reports that no session is stored. Callers answer it by
// asking the user to log in.
var ErrNoSession = errors.New("no session found, run 'hrc login' first")

// Session is the persisted authentication state.
type Session struct {
	Token string        `json:"token"`
	User  carteira.User `json:"user"`

	// DashboardClient remembers the client last chosen on the dashboard,
	// 0 when none was chosen yet.
	DashboardClient int64 `json:"dashboardClient,omitempty"`
}

// DefaultPath returns the session file location under the user config dir.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "hrc", "session.json")
}

// Load reads the session stored at path. A missing file is ErrNoSession; a
// corrupt file is treated the same, after removing it.
func Load(path string) (*Session, error) {
	content, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNoSession
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read session file %q: %w", path, err)
	}
	var s Session
	if err := json.Unmarshal(content, &s); err != nil || s.Token == "" {
		os.Remove(path)
		return nil, ErrNoSession
	}
	return &s, nil
}

// Save writes the session to path, creating parent directories as needed.
// The file is user-only: it holds a live bearer token.
func Save(path string, s *Session) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("cannot create session dir: %w", err)
	}
	content, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, content, 0o600); err != nil {
		return fmt.Errorf("cannot write session file %q: %w", path, err)
	}
	return nil
}

// Clear removes the stored session. Clearing an absent session is fine.
func Clear(path string) error {
	err := os.Remove(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}
