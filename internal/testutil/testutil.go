// Package testutil provides testing utilities shared by package tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/GriffinCanCode/filemanager/internal/providers/system"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockHost is a mock implementation of system.HostInfo for testing.
type MockHost struct {
	mock.Mock
}

// EOL mocks the EOL method.
func (m *MockHost) EOL() string {
	return m.Called().String(0)
}

// CPUs mocks the CPUs method.
func (m *MockHost) CPUs() []system.CPU {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]system.CPU)
}

// HomeDir mocks the HomeDir method.
func (m *MockHost) HomeDir() (string, error) {
	args := m.Called()
	return args.String(0), args.Error(1)
}

// Username mocks the Username method.
func (m *MockHost) Username() (string, error) {
	args := m.Called()
	return args.String(0), args.Error(1)
}

// Architecture mocks the Architecture method.
func (m *MockHost) Architecture() string {
	return m.Called().String(0)
}

// NewMockHost creates a mock host with default behaviors.
func NewMockHost(t *testing.T) *MockHost {
	t.Helper()
	m := new(MockHost)

	m.On("EOL").Return("\n").Maybe()
	m.On("CPUs").Return([]system.CPU{
		{Model: "Test CPU", Hz: 3_000_000_000},
		{Model: "Test CPU", Hz: 3_000_000_000},
	}).Maybe()
	m.On("HomeDir").Return("/home/tester", nil).Maybe()
	m.On("Username").Return("tester", nil).Maybe()
	m.On("Architecture").Return("amd64").Maybe()

	return m
}

// WriteFile creates dir/name with content, creating parent directories.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// MkdirAll creates dir/name and returns its path.
func MkdirAll(t *testing.T, dir, name string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(path, 0o755))
	return path
}

// ReadFile returns the content of path.
func ReadFile(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

// Exists reports whether path exists, without following symlinks.
func Exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}
