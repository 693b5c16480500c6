package shell

import (
	"context"
	"errors"
	"fmt"

	"github.com/GriffinCanCode/filemanager/internal/domain/session"
	"github.com/GriffinCanCode/filemanager/internal/providers/filesystem"
	"go.uber.org/zap"
)

func (s *Shell) dispatch(ctx context.Context, cmd Command) error {
	switch c := cmd.(type) {
	case Exit:
		return ErrExit

	case Up:
		s.session.Up()

	case Cd:
		if err := s.session.Cd(c.Dir); err != nil {
			s.fail(c.Verb(), err)
		}

	case Ls:
		s.list(ctx)

	case Add:
		if err := s.fs.Basic.Create(s.session.Join(c.Name)); err != nil {
			s.fail(c.Verb(), err)
			return nil
		}
		s.printer.Printf("File %s created", c.Name)

	case Rename:
		if err := s.fs.Basic.Rename(s.session.Resolve(c.Old), s.session.Join(c.New)); err != nil {
			s.fail(c.Verb(), err)
			return nil
		}
		s.printer.Printf("File renamed to %s", c.New)

	case Remove:
		if err := s.fs.Basic.Delete(s.session.Resolve(c.Path)); err != nil {
			s.fail(c.Verb(), err)
			return nil
		}
		s.printer.Println("File deleted")

	case OSInfo:
		lines, err := s.system.Execute(ctx, c.Query)
		if err != nil {
			s.fail(c.Verb(), err)
			return nil
		}
		s.printer.Lines(lines)

	case Cat:
		path := s.session.Resolve(c.Path)
		s.spawn(ctx, c, func(ctx context.Context) error {
			return s.fs.Basic.Cat(ctx, path, s.printer)
		})

	case Copy:
		src, dest := s.session.Resolve(c.Src), s.session.Resolve(c.Dest)
		s.spawn(ctx, c, func(ctx context.Context) error {
			if err := s.fs.Operations.Copy(ctx, src, dest); err != nil {
				return err
			}
			s.printer.Printf("File copied to %s", dest)
			return nil
		})

	case Move:
		src, dest := s.session.Resolve(c.Src), s.session.Resolve(c.Dest)
		s.spawn(ctx, c, func(ctx context.Context) error {
			err := s.fs.Operations.Move(ctx, src, dest)
			if errors.Is(err, filesystem.ErrSourceNotRemoved) {
				s.printer.Printf("File copied to %s, but the source could not be removed", dest)
			}
			if err != nil {
				return err
			}
			s.printer.Printf("File moved to %s", dest)
			return nil
		})

	case Hash:
		path := s.session.Resolve(c.Path)
		s.spawn(ctx, c, func(ctx context.Context) error {
			sum, err := s.fs.Operations.Hash(ctx, path)
			if err != nil {
				return err
			}
			s.printer.Printf("Hash: %s", sum)
			return nil
		})

	case Compress:
		src, dest := s.session.Resolve(c.Src), s.session.Resolve(c.Dest)
		s.spawn(ctx, c, func(ctx context.Context) error {
			if err := s.fs.Archives.Compress(ctx, src, dest); err != nil {
				return err
			}
			s.printer.Printf("File compressed to %s", dest)
			return nil
		})

	case Decompress:
		src, dest := s.session.Resolve(c.Src), s.session.Resolve(c.Dest)
		s.spawn(ctx, c, func(ctx context.Context) error {
			if err := s.fs.Archives.Decompress(ctx, src, dest); err != nil {
				return err
			}
			s.printer.Printf("File decompressed to %s", dest)
			return nil
		})

	default:
		s.fail("unknown", ErrInvalidInput)
	}
	return nil
}

// spawn runs a stream pipeline on the task runner and reports its failure
func (s *Shell) spawn(ctx context.Context, cmd Command, fn func(ctx context.Context) error) {
	s.tasks.Go(ctx, cmd.Verb(), func(ctx context.Context) {
		if err := fn(ctx); err != nil {
			s.fail(cmd.Verb(), err)
		}
	})
}

func (s *Shell) list(ctx context.Context) {
	entries, err := s.fs.Directory.List(ctx, s.session.Dir())
	if err != nil {
		s.fail("ls", err)
		return
	}
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, fmt.Sprintf("%s - %s", e.Name, e.Label()))
	}
	s.printer.Lines(lines)
}

func (s *Shell) fail(verb string, err error) {
	s.logger.Debug("Command failed", zap.String("verb", verb), zap.Error(err))
	s.printer.Error(Message(err))
}

// Message maps an error to the line shown to the user
func Message(err error) string {
	var usage *UsageError
	switch {
	case errors.As(err, &usage):
		return usage.Message
	case errors.Is(err, ErrInvalidInput):
		return "Invalid input"
	case errors.Is(err, session.ErrInvalidDirectory):
		return "Invalid directory"
	case errors.Is(err, filesystem.ErrInvalidPath):
		return "Invalid file path"
	case errors.Is(err, filesystem.ErrInvalidSource):
		return "Invalid source file"
	case errors.Is(err, filesystem.ErrReadFailed):
		return "Error reading file"
	default:
		return "Operation failed"
	}
}
