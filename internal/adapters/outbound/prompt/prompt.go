// Package prompt implements domain.PromptSession over an io stream
// pair, stdin/stdout in production and scripted buffers in tests.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Session is a line-oriented question/answer exchange.
type Session struct {
	in  *bufio.Reader
	out io.Writer
}

func New(in io.Reader, out io.Writer) *Session {
	return &Session{in: bufio.NewReader(in), out: out}
}

// Question prints the prompt and reads one trimmed answer line.
func (s *Session) Question(prompt string) (string, error) {
	if _, err := fmt.Fprint(s.out, prompt); err != nil {
		return "", err
	}
	line, err := s.in.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("reading answer: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// Close ends the session. Nothing to release for stream sessions; the
// method exists to satisfy the collaborator lifecycle.
func (s *Session) Close() error { return nil }
