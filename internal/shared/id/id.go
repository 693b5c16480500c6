// Package id provides identifier generation for sessions and background tasks.
//
// Sessions get prefixed ULIDs so log lines from one run sort by start time.
// Background stream tasks get prefixed UUIDs; they only need uniqueness.
package id

import (
	"crypto/rand"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

// SessionID identifies one REPL run
type SessionID string

// TaskID identifies a background stream pipeline
type TaskID string

const (
	SessionPrefix = "sess"
	TaskPrefix    = "task"
)

// Generator generates ULIDs with optional prefixes
type Generator struct {
	entropy   io.Reader
	entropyMu sync.Mutex // Protects entropy reader
}

var (
	defaultGenerator *Generator
	once             sync.Once
)

// Default returns the singleton generator instance
func Default() *Generator {
	once.Do(func() {
		defaultGenerator = NewGenerator()
	})
	return defaultGenerator
}

// NewGenerator creates a new ULID generator
func NewGenerator() *Generator {
	return &Generator{
		entropy: rand.Reader,
	}
}

// Generate creates a new ULID
func (g *Generator) Generate() ulid.ULID {
	g.entropyMu.Lock()
	defer g.entropyMu.Unlock()

	return ulid.MustNew(ulid.Timestamp(time.Now()), g.entropy)
}

// GenerateWithPrefix creates a prefixed ULID string
func (g *Generator) GenerateWithPrefix(prefix string) string {
	return fmt.Sprintf("%s_%s", prefix, g.Generate().String())
}

// NewSessionID generates a new session ID
func NewSessionID() SessionID {
	return SessionID(Default().GenerateWithPrefix(SessionPrefix))
}

// NewTaskID generates a new task ID
func NewTaskID() TaskID {
	return TaskID(fmt.Sprintf("%s_%s", TaskPrefix, uuid.NewString()))
}

func (id SessionID) String() string { return string(id) }
func (id TaskID) String() string    { return string(id) }

// Started returns the creation time encoded in a session ID.
func (id SessionID) Started() (time.Time, error) {
	raw, ok := strings.CutPrefix(string(id), SessionPrefix+"_")
	if !ok {
		return time.Time{}, fmt.Errorf("session id %q lacks %s_ prefix", id, SessionPrefix)
	}
	parsed, err := ulid.Parse(raw)
	if err != nil {
		return time.Time{}, err
	}
	return ulid.Time(parsed.Time()), nil
}
