package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/GriffinCanCode/filemanager/internal/domain/session"
	"github.com/GriffinCanCode/filemanager/internal/logging"
	"github.com/GriffinCanCode/filemanager/internal/providers/filesystem"
	"github.com/GriffinCanCode/filemanager/internal/providers/system"
	"go.uber.org/zap"
)

// DefaultPrompt is printed before every input line
const DefaultPrompt = "> "

// ErrExit is returned by Execute for the .exit command
var ErrExit = errors.New("exit")

// Config holds shell dependencies
type Config struct {
	In         io.Reader
	Out        io.Writer
	Session    *session.Session
	Filesystem *filesystem.Provider
	System     *system.Provider
	Logger     *logging.Logger

	Prompt string
	Async  bool
	Color  bool
}

// Shell is the read-eval-print loop
type Shell struct {
	in      *bufio.Reader
	printer *Printer
	session *session.Session
	fs      *filesystem.Provider
	system  *system.Provider
	tasks   *TaskRunner
	logger  *logging.Logger
	prompt  string

	closeOnce sync.Once
}

// New creates a shell
func New(cfg Config) (*Shell, error) {
	if cfg.In == nil || cfg.Out == nil {
		return nil, errors.New("shell: input and output are required")
	}
	if cfg.Session == nil {
		return nil, errors.New("shell: session is required")
	}
	if cfg.Filesystem == nil {
		return nil, errors.New("shell: filesystem provider is required")
	}
	if cfg.System == nil {
		cfg.System = system.NewProvider(nil)
	}
	if cfg.Logger == nil {
		cfg.Logger = logging.NewNop()
	}
	if cfg.Prompt == "" {
		cfg.Prompt = DefaultPrompt
	}

	logger := cfg.Logger.Named("shell").With(zap.String("session_id", cfg.Session.ID.String()))

	return &Shell{
		in:      bufio.NewReader(cfg.In),
		printer: NewPrinter(cfg.Out, cfg.Color),
		session: cfg.Session,
		fs:      cfg.Filesystem,
		system:  cfg.System,
		tasks:   NewTaskRunner(cfg.Async, logger),
		logger:  logger,
		prompt:  cfg.Prompt,
	}, nil
}

// Run greets the user and processes lines until .exit, end of input or ctx cancellation.
// The farewell is printed on every normal exit path.
func (s *Shell) Run(ctx context.Context) error {
	s.printer.Notice(fmt.Sprintf("Welcome to the File Manager, %s!", s.session.Username))
	s.printLocation()

	for {
		if ctx.Err() != nil {
			s.Close()
			return nil
		}

		s.printer.Prompt(s.prompt)
		line, err := s.in.ReadString('\n')
		if err != nil && line == "" {
			s.Close()
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("read input: %w", err)
		}

		if errors.Is(s.Execute(ctx, line), ErrExit) {
			s.Close()
			return nil
		}
		s.printLocation()
	}
}

// Execute runs one input line. It returns ErrExit for .exit and nil otherwise;
// command failures are reported on the output, never returned.
func (s *Shell) Execute(ctx context.Context, line string) error {
	tokens, err := Tokenize(line)
	if err != nil {
		s.fail("tokenize", fmt.Errorf("%w: %w", ErrInvalidInput, err))
		return nil
	}
	if len(tokens) == 0 {
		return nil
	}

	cmd, err := Parse(tokens)
	if err != nil {
		s.fail(tokens[0], err)
		return nil
	}
	return s.dispatch(ctx, cmd)
}

// Wait blocks until background tasks finish
func (s *Shell) Wait() {
	s.tasks.Wait()
}

// Close waits for running tasks and prints the farewell once
func (s *Shell) Close() {
	s.closeOnce.Do(func() {
		s.tasks.Close()
		s.printer.Notice(fmt.Sprintf("Thank you for using File Manager, %s, goodbye!", s.session.Username))
		fields := []zap.Field{zap.String("dir", s.session.Dir())}
		if started, err := s.session.ID.Started(); err == nil {
			fields = append(fields, zap.Duration("uptime", time.Since(started)))
		}
		s.logger.Debug("Session closed", fields...)
	})
}

func (s *Shell) printLocation() {
	s.printer.Printf("You are currently in %s", s.session.Dir())
}
