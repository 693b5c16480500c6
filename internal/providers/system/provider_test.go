package system

import (
	"context"
	"errors"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeHost struct {
	eol     string
	cpus    []CPU
	home    string
	homeErr error
	user    string
	arch    string
}

func (f fakeHost) EOL() string               { return f.eol }
func (f fakeHost) CPUs() []CPU               { return f.cpus }
func (f fakeHost) HomeDir() (string, error)  { return f.home, f.homeErr }
func (f fakeHost) Username() (string, error) { return f.user, nil }
func (f fakeHost) Architecture() string      { return f.arch }

func TestExecute(t *testing.T) {
	host := fakeHost{
		eol: "\r\n",
		cpus: []CPU{
			{Model: "Example CPU", Hz: 3_200_000_000},
			{Model: "Example CPU", Hz: 0},
		},
		home: "/home/ada",
		user: "ada",
		arch: "arm64",
	}
	sys := NewProvider(host)

	tests := []struct {
		query string
		want  []string
	}{
		{QueryEOL, []string{`EOL: "\r\n"`}},
		{QueryCPUs, []string{"CPU Info: 2 CPUs", "CPU 1: Example CPU, 3.2 GHz", "CPU 2: Example CPU, unknown GHz"}},
		{QueryHomeDir, []string{"Home Directory: /home/ada"}},
		{QueryUsername, []string{"Current User: ada"}},
		{QueryArchitecture, []string{"Architecture: arm64"}},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			lines, err := sys.Execute(context.Background(), tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.want, lines)
		})
	}
}

func TestExecuteUnknownQuery(t *testing.T) {
	sys := NewProvider(fakeHost{})

	for _, q := range []string{"", "--eol", "--memory", "cpus"} {
		_, err := sys.Execute(context.Background(), q)
		assert.ErrorIs(t, err, ErrUnknownQuery, q)
		assert.False(t, IsQuery(q))
	}
}

func TestExecuteHostError(t *testing.T) {
	sys := NewProvider(fakeHost{homeErr: errors.New("no home")})

	_, err := sys.Execute(context.Background(), QueryHomeDir)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrUnknownQuery)
}

func TestLocalHost(t *testing.T) {
	host := LocalHost{}

	assert.Len(t, host.CPUs(), runtime.NumCPU())
	assert.Equal(t, runtime.GOARCH, host.Architecture())
	assert.NotEmpty(t, host.EOL())

	for _, cpu := range host.CPUs() {
		assert.NotEmpty(t, cpu.Model)
	}
}

func TestQueries(t *testing.T) {
	for _, q := range Queries() {
		assert.True(t, IsQuery(q))
	}
}
