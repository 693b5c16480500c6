package session

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/GriffinCanCode/filemanager/internal/shared/id"
	"github.com/GriffinCanCode/filemanager/internal/shared/paths"
)

// DefaultUsername is shown when no --username is given
const DefaultUsername = "User"

// ErrInvalidDirectory is returned when a cd target is missing or not a directory
var ErrInvalidDirectory = errors.New("invalid directory")

// Session is the live state of one REPL run
type Session struct {
	ID       id.SessionID
	Username string

	home string
	dir  string
	mu   sync.RWMutex
}

// New creates a session rooted at home. An empty username falls back to DefaultUsername.
func New(username, home string) (*Session, error) {
	if username == "" {
		username = DefaultUsername
	}

	abs, err := filepath.Abs(home)
	if err != nil {
		return nil, fmt.Errorf("resolve home %q: %w", home, err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("stat home %q: %w", abs, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("home %q is not a directory", abs)
	}

	return &Session{
		ID:       id.NewSessionID(),
		Username: username,
		home:     abs,
		dir:      abs,
	}, nil
}

// Home returns the directory the session started in
func (s *Session) Home() string {
	return s.home
}

// Dir returns the current directory
func (s *Session) Dir() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dir
}

// Up moves to the parent directory. It is a no-op at home.
// Reports whether the current directory changed.
func (s *Session) Up() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.dir == s.home {
		return false
	}
	parent := paths.Parent(s.dir)
	if parent == s.dir {
		return false
	}
	s.dir = parent
	return true
}

// Cd changes into target, resolved against the current directory
func (s *Session) Cd(target string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := paths.Resolve(s.dir, target)
	if !paths.IsDir(next) {
		return fmt.Errorf("%w: %s", ErrInvalidDirectory, next)
	}
	s.dir = next
	return nil
}

// Resolve resolves a path argument against the current directory
func (s *Session) Resolve(path string) string {
	return paths.Resolve(s.Dir(), path)
}

// Join places a bare file name in the current directory
func (s *Session) Join(name string) string {
	return paths.Join(s.Dir(), name)
}
