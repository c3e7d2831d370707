package repl

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

// Shell reads whitespace separated commands and applies them to a Store.
type Shell struct {
	store   Store
	scanner *bufio.Scanner
	out     io.Writer
	prompt  string
	log     zerolog.Logger
	err     error
}

// Option configures a Shell
type Option func(*Shell)

func WithPrompt(prompt string) Option {
	return func(s *Shell) {
		s.prompt = prompt
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(s *Shell) {
		s.log = logger
	}
}

func New(store Store, in io.Reader, out io.Writer, opts ...Option) *Shell {
	scanner := bufio.NewScanner(in)
	scanner.Split(bufio.ScanWords)

	s := &Shell{
		store:   store,
		scanner: scanner,
		out:     out,
		prompt:  "> ",
		log:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run processes commands until quit or end of input. It only fails when
// reading input or writing output fails.
func (s *Shell) Run() error {
	for {
		s.printf("%s", s.prompt)

		cmd, ok := s.token()
		if !ok {
			return s.done()
		}
		s.log.Debug().Str("cmd", cmd).Msg("command")

		switch cmd {
		case "insert", "erase", "count", "digits":
			key, ok := s.token()
			if !ok {
				return s.done()
			}
			s.keyed(cmd, key)
		case "size":
			s.printf("%d\n", s.store.Size())
		case "clear":
			s.store.Clear()
			s.printf("OK. Size = %d\n", s.store.Size())
		case "quit":
			return s.done()
		default:
			s.log.Debug().Str("cmd", cmd).Msg("invalid command")
			s.printf("Invalid command.\n")
		}

		if s.err != nil {
			return s.err
		}
	}
}

func (s *Shell) keyed(cmd, key string) {
	var err error
	switch cmd {
	case "insert":
		if err = s.store.Insert(key); err == nil {
			s.printf("OK. Size = %d\n", s.store.Size())
		}
	case "erase":
		if err = s.store.Erase(key); err == nil {
			s.printf("OK. Size = %d\n", s.store.Size())
		}
	case "count":
		var n int
		if n, err = s.store.Count(key); err == nil {
			s.printf("%d\n", n)
		}
	case "digits":
		var digits []int
		if digits, err = s.store.Digits(key); err == nil {
			s.printf("%s\n", joinDigits(digits))
		}
	}

	if errors.Is(err, ErrInvalidKey) {
		s.log.Debug().Err(err).Msg("rejected key")
		s.printf("Invalid key: %s\n", key)
	} else if err != nil {
		s.log.Error().Err(err).Str("cmd", cmd).Msg("command failed")
		s.printf("Error: %v\n", err)
	}
}

func (s *Shell) token() (string, bool) {
	if !s.scanner.Scan() {
		return "", false
	}
	return s.scanner.Text(), true
}

func (s *Shell) done() error {
	if err := s.scanner.Err(); err != nil {
		return fmt.Errorf("failed to read command: %w", err)
	}
	return s.err
}

func (s *Shell) printf(format string, args ...interface{}) {
	if s.err != nil {
		return
	}
	if _, err := fmt.Fprintf(s.out, format, args...); err != nil {
		s.err = fmt.Errorf("failed to write output: %w", err)
	}
}

func joinDigits(digits []int) string {
	parts := make([]string, len(digits))
	for i, d := range digits {
		parts[i] = strconv.Itoa(d)
	}
	return strings.Join(parts, " ")
}
