package mcp_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	mcpadapter "github.com/tamylaa/clodo-framework-sub007/internal/adapters/inbound/mcp"
)

func TestNewClodoMCPServer(t *testing.T) {
	s := mcpadapter.NewClodoMCPServer(".", "test")
	require.NotNil(t, s)
}

func TestNewClodoMCPServer_EmptyProjectPath(t *testing.T) {
	s := mcpadapter.NewClodoMCPServer(t.TempDir(), "test")
	require.NotNil(t, s)
}
