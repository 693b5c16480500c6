package shell

import (
	"errors"
	"fmt"

	"github.com/GriffinCanCode/filemanager/internal/providers/system"
)

// ErrInvalidInput is returned for unknown verbs and malformed lines
var ErrInvalidInput = errors.New("invalid input")

// UsageError reports a missing argument; Message is shown verbatim
type UsageError struct {
	Verb    string
	Message string
}

func (e *UsageError) Error() string { return e.Message }

// Command is one parsed input line
type Command interface {
	Verb() string
}

type (
	Up     struct{}
	Cd     struct{ Dir string }
	Ls     struct{}
	Cat    struct{ Path string }
	Add    struct{ Name string }
	Rename struct{ Old, New string }
	Remove struct{ Path string }
	Copy   struct{ Src, Dest string }
	Move   struct{ Src, Dest string }
	Hash   struct{ Path string }

	Compress   struct{ Src, Dest string }
	Decompress struct{ Src, Dest string }

	OSInfo struct{ Query string }
	Exit   struct{}
)

func (Up) Verb() string         { return "up" }
func (Cd) Verb() string         { return "cd" }
func (Ls) Verb() string         { return "ls" }
func (Cat) Verb() string        { return "cat" }
func (Add) Verb() string        { return "add" }
func (Rename) Verb() string     { return "rn" }
func (Remove) Verb() string     { return "rm" }
func (Copy) Verb() string       { return "cp" }
func (Move) Verb() string       { return "mv" }
func (Hash) Verb() string       { return "hash" }
func (Compress) Verb() string   { return "compress" }
func (Decompress) Verb() string { return "decompress" }
func (OSInfo) Verb() string     { return "os" }
func (Exit) Verb() string       { return ".exit" }

const (
	usageDirectory = "Please provide a directory."
	usageFilename  = "Please provide a filename."
	usagePath      = "Please provide a file path."
	usagePair      = "Please provide source and destination."
)

// Parse maps tokens to a command. Extra trailing arguments are ignored.
func Parse(tokens []string) (Command, error) {
	if len(tokens) == 0 {
		return nil, ErrInvalidInput
	}
	verb, args := tokens[0], tokens[1:]

	one := func(msg string) (string, error) {
		if len(args) < 1 {
			return "", &UsageError{Verb: verb, Message: msg}
		}
		return args[0], nil
	}
	two := func() (string, string, error) {
		if len(args) < 2 {
			return "", "", &UsageError{Verb: verb, Message: usagePair}
		}
		return args[0], args[1], nil
	}

	switch verb {
	case "up":
		return Up{}, nil
	case "ls":
		return Ls{}, nil
	case ".exit":
		return Exit{}, nil

	case "cd":
		dir, err := one(usageDirectory)
		if err != nil {
			return nil, err
		}
		return Cd{Dir: dir}, nil

	case "add":
		name, err := one(usageFilename)
		if err != nil {
			return nil, err
		}
		return Add{Name: name}, nil

	case "cat", "rm", "hash":
		path, err := one(usagePath)
		if err != nil {
			return nil, err
		}
		switch verb {
		case "cat":
			return Cat{Path: path}, nil
		case "rm":
			return Remove{Path: path}, nil
		default:
			return Hash{Path: path}, nil
		}

	case "rn", "cp", "mv", "compress", "decompress":
		a, b, err := two()
		if err != nil {
			return nil, err
		}
		switch verb {
		case "rn":
			return Rename{Old: a, New: b}, nil
		case "cp":
			return Copy{Src: a, Dest: b}, nil
		case "mv":
			return Move{Src: a, Dest: b}, nil
		case "compress":
			return Compress{Src: a, Dest: b}, nil
		default:
			return Decompress{Src: a, Dest: b}, nil
		}

	case "os":
		if len(args) < 1 || !system.IsQuery(args[0]) {
			return nil, fmt.Errorf("%w: os %v", ErrInvalidInput, args)
		}
		return OSInfo{Query: args[0]}, nil

	default:
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, verb)
	}
}
