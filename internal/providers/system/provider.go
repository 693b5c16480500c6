package system

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/user"
	"runtime"
	"strconv"

	"github.com/klauspost/cpuid/v2"
)

// ErrUnknownQuery is returned for an unrecognized os flag
var ErrUnknownQuery = errors.New("unknown host query")

// Host query flags accepted by the os command
const (
	QueryEOL          = "--EOL"
	QueryCPUs         = "--cpus"
	QueryHomeDir      = "--homedir"
	QueryUsername     = "--username"
	QueryArchitecture = "--architecture"
)

// CPU describes one logical processor
type CPU struct {
	Model string
	Hz    int64 // 0 when unknown
}

// HostInfo is the source of host facts
type HostInfo interface {
	EOL() string
	CPUs() []CPU
	HomeDir() (string, error)
	Username() (string, error)
	Architecture() string
}

// Provider answers os queries
type Provider struct {
	host HostInfo
}

// NewProvider creates a system provider. A nil host uses the local machine.
func NewProvider(host HostInfo) *Provider {
	if host == nil {
		host = LocalHost{}
	}
	return &Provider{host: host}
}

// Queries lists the supported flags
func Queries() []string {
	return []string{QueryEOL, QueryCPUs, QueryHomeDir, QueryUsername, QueryArchitecture}
}

// IsQuery reports whether flag is a supported query
func IsQuery(flag string) bool {
	for _, q := range Queries() {
		if q == flag {
			return true
		}
	}
	return false
}

// Execute runs a host query and returns the lines to print
func (s *Provider) Execute(ctx context.Context, query string) ([]string, error) {
	switch query {
	case QueryEOL:
		return []string{"EOL: " + strconv.Quote(s.host.EOL())}, nil
	case QueryCPUs:
		return s.cpus(), nil
	case QueryHomeDir:
		home, err := s.host.HomeDir()
		if err != nil {
			return nil, fmt.Errorf("home directory: %w", err)
		}
		return []string{"Home Directory: " + home}, nil
	case QueryUsername:
		name, err := s.host.Username()
		if err != nil {
			return nil, fmt.Errorf("current user: %w", err)
		}
		return []string{"Current User: " + name}, nil
	case QueryArchitecture:
		return []string{"Architecture: " + s.host.Architecture()}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownQuery, query)
	}
}

func (s *Provider) cpus() []string {
	cpus := s.host.CPUs()
	lines := make([]string, 0, len(cpus)+1)
	lines = append(lines, fmt.Sprintf("CPU Info: %d CPUs", len(cpus)))
	for i, cpu := range cpus {
		lines = append(lines, fmt.Sprintf("CPU %d: %s, %s", i+1, cpu.Model, formatGHz(cpu.Hz)))
	}
	return lines
}

func formatGHz(hz int64) string {
	if hz <= 0 {
		return "unknown GHz"
	}
	return strconv.FormatFloat(float64(hz)/1e9, 'f', -1, 64) + " GHz"
}

// LocalHost reads facts about the machine the process runs on
type LocalHost struct{}

func (LocalHost) EOL() string {
	if runtime.GOOS == "windows" {
		return "\r\n"
	}
	return "\n"
}

func (LocalHost) CPUs() []CPU {
	model := cpuid.CPU.BrandName
	if model == "" {
		model = "unknown"
	}
	cpus := make([]CPU, runtime.NumCPU())
	for i := range cpus {
		cpus[i] = CPU{Model: model, Hz: cpuid.CPU.Hz}
	}
	return cpus
}

func (LocalHost) HomeDir() (string, error) {
	return os.UserHomeDir()
}

func (LocalHost) Username() (string, error) {
	u, err := user.Current()
	if err != nil {
		return "", err
	}
	return u.Username, nil
}

func (LocalHost) Architecture() string {
	return runtime.GOARCH
}
