package shell

import (
	"errors"
	"io"
	"strings"
	"unicode"
)

var (
	ErrUnclosedQuote      = errors.New("unclosed quote")
	ErrUnescapedCharacter = errors.New("unescaped character")
)

type parseState int

const (
	stateOutside parseState = iota
	stateSingleQuote
	stateDoubleQuote
)

type tokenBuffer struct {
	builder strings.Builder
}

func (tb *tokenBuffer) appendRune(r rune) {
	tb.builder.WriteRune(r)
}

func (tb *tokenBuffer) flushIfNotEmpty(args []string) []string {
	if tb.builder.Len() > 0 {
		args = append(args, tb.builder.String())
		tb.builder.Reset()
	}
	return args
}

// Tokenize splits a line on whitespace.
// Single quotes keep everything literally; double quotes allow \" and \\ escapes;
// outside quotes a backslash escapes the next character.
func Tokenize(line string) ([]string, error) {
	reader := strings.NewReader(line)
	var tb tokenBuffer

	args := []string{}
	state := stateOutside
	escaping := false

	for {
		ch, _, err := reader.ReadRune()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch state {
		case stateOutside:
			switch {
			case escaping:
				tb.appendRune(ch)
				escaping = false
			case unicode.IsSpace(ch):
				args = tb.flushIfNotEmpty(args)
			case ch == '\'':
				state = stateSingleQuote
			case ch == '"':
				state = stateDoubleQuote
			case ch == '\\':
				escaping = true
			default:
				tb.appendRune(ch)
			}

		case stateSingleQuote:
			if ch == '\'' {
				state = stateOutside
			} else {
				tb.appendRune(ch)
			}

		case stateDoubleQuote:
			switch {
			case escaping:
				if ch != '\\' && ch != '"' {
					tb.appendRune('\\')
				}
				tb.appendRune(ch)
				escaping = false
			case ch == '"':
				state = stateOutside
			case ch == '\\':
				escaping = true
			default:
				tb.appendRune(ch)
			}
		}
	}

	if state != stateOutside {
		return nil, ErrUnclosedQuote
	}
	if escaping {
		return nil, ErrUnescapedCharacter
	}

	return tb.flushIfNotEmpty(args), nil
}
