package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/MKhiriev/dealer-desk/internal/logger"
	"github.com/MKhiriev/dealer-desk/models"
)

// sessionFile mirrors the browser original's two keyed entries: an opaque
// token string and the user identity serialized as its own JSON string.
type sessionFile struct {
	Token string `json:"token,omitempty"`
	User  string `json:"user,omitempty"`
}

type fileSessionStore struct {
	path string

	mu     sync.RWMutex
	logger *logger.Logger
}

// NewFileSessionStore constructs a [SessionStore] backed by a JSON file at
// path. The parent directory is created if missing. The file itself is
// created lazily on the first Save.
func NewFileSessionStore(path string, log *logger.Logger) (SessionStore, error) {
	if path == "" {
		return nil, fmt.Errorf("empty session file path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("create session dir: %w", err)
	}

	return &fileSessionStore{path: path, logger: log}, nil
}

// Save implements [SessionStore]. The write is atomic: the new state goes to
// a temp file in the same directory which then replaces the old one, so a
// crash mid-write never leaves a half-written session behind.
func (s *fileSessionStore) Save(session models.Session) error {
	userJSON, err := json.Marshal(session.User)
	if err != nil {
		return fmt.Errorf("encode session user: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.write(sessionFile{Token: session.Token, User: string(userJSON)})
}

// Token implements [SessionStore].
func (s *fileSessionStore) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.read().Token
}

// User implements [SessionStore]. Malformed stored data yields nil, not an
// error.
func (s *fileSessionStore) User() *models.User {
	s.mu.RLock()
	raw := s.read().User
	s.mu.RUnlock()

	if raw == "" {
		return nil
	}

	var user models.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		s.logger.Debug().Err(err).Msg("malformed stored user, treating as anonymous")
		return nil
	}
	return &user
}

// IsLoggedIn implements [SessionStore].
func (s *fileSessionStore) IsLoggedIn() bool {
	return models.Session{Token: s.Token()}.LoggedIn()
}

// Clear implements [SessionStore]. It removes both entries together.
func (s *fileSessionStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

func (s *fileSessionStore) read() sessionFile {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return sessionFile{}
	}

	var sf sessionFile
	if err := json.Unmarshal(data, &sf); err != nil {
		s.logger.Debug().Err(err).Msg("malformed session file, treating as anonymous")
		return sessionFile{}
	}
	return sf
}

func (s *fileSessionStore) write(sf sessionFile) error {
	data, err := json.MarshalIndent(sf, "", "  ")
	if err != nil {
		return fmt.Errorf("encode session file: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), "session-*.json")
	if err != nil {
		return fmt.Errorf("create temp session file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write session file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close session file: %w", err)
	}

	if err = os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replace session file: %w", err)
	}
	return nil
}
