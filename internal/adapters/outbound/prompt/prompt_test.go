package prompt_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tamylaa/clodo-framework-sub007/internal/adapters/outbound/prompt"
)

func TestSession_QuestionEchoesPromptAndTrimsAnswer(t *testing.T) {
	var out bytes.Buffer
	s := prompt.New(strings.NewReader("  billing-api  \n"), &out)

	answer, err := s.Question("Service name: ")
	require.NoError(t, err)

	assert.Equal(t, "billing-api", answer)
	assert.Equal(t, "Service name: ", out.String())
}

func TestSession_SequentialQuestions(t *testing.T) {
	s := prompt.New(strings.NewReader("one\ntwo\n\n"), &bytes.Buffer{})

	for _, want := range []string{"one", "two", ""} {
		got, err := s.Question("? ")
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestSession_ExhaustedInputErrors(t *testing.T) {
	s := prompt.New(strings.NewReader(""), &bytes.Buffer{})

	_, err := s.Question("? ")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading answer")
}

func TestSession_LastLineWithoutNewline(t *testing.T) {
	s := prompt.New(strings.NewReader("final"), &bytes.Buffer{})

	answer, err := s.Question("? ")
	require.NoError(t, err)
	assert.Equal(t, "final", answer)
}

func TestSession_Close(t *testing.T) {
	s := prompt.New(strings.NewReader(""), &bytes.Buffer{})
	assert.NoError(t, s.Close())
}
