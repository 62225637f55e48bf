package session

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/theirongolddev/budgie/internal/cli"
)

var errNotFinite = errors.New("not a finite number")

// read asks msg and returns the raw answer.
func (s *Session) read(msg string) (string, error) {
	answer, err := s.term.Prompt(msg)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return "", ErrInputClosed
		}
		return "", fmt.Errorf("reading input: %w", err)
	}
	return answer, nil
}

// ask repeats msg until parse accepts the answer. Rejected answers are
// reported on the line below the prompt, which is then asked again in place.
func ask[T any](s *Session, msg, reject string, parse func(string) (T, error)) (T, error) {
	for {
		answer, err := s.read(msg)
		if err != nil {
			var zero T
			return zero, err
		}
		v, err := parse(answer)
		if err == nil {
			s.term.ClearLine()
			return v, nil
		}
		s.term.Replace(s.r.Colorize(cli.Red, reject))
	}
}

func (s *Session) askFloat(msg string) (float64, error) {
	return ask(s, msg, "That's not a number!", parseFloat)
}

func (s *Session) askInt(msg string) (int, error) {
	return ask(s, msg, "That's not a number!", parseInt)
}

// confirm asks a yes/no question.
func (s *Session) confirm(msg string) (bool, error) {
	return ask(s, msg+" (y/n) ", "That's not one of the options!", parseYesNo)
}

func parseFloat(text string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errNotFinite
	}
	return v, nil
}

func parseInt(text string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(text))
}

func parseYesNo(text string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "y":
		return true, nil
	case "n":
		return false, nil
	default:
		return false, fmt.Errorf("unexpected answer %q", text)
	}
}
