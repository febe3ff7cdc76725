package model

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNotebookServer_String verifies the one-line list format: URL with
// token query parameter, then the notebook directory.
func TestNotebookServer_String(t *testing.T) {
	s := &NotebookServer{
		URL:         "http://node042:8888/",
		Token:       "abc123",
		NotebookDir: "/home/alice",
	}
	assert.Equal(t, "http://node042:8888/?token=abc123 :: /home/alice", s.String())
}

// TestNotebookServer_String_NoToken verifies that a server started with
// token auth disabled prints without a token parameter.
func TestNotebookServer_String_NoToken(t *testing.T) {
	s := &NotebookServer{
		URL:         "http://node042:8888/",
		NotebookDir: "/home/alice",
	}
	assert.Equal(t, "http://node042:8888/ :: /home/alice", s.String())
}

// TestNotebookServer_String_ExistingQuery verifies that a URL already
// carrying a query string gets the token appended with "&" rather than
// a second "?".
func TestNotebookServer_String_ExistingQuery(t *testing.T) {
	s := &NotebookServer{
		URL:         "http://node042:8888/?lab=1",
		Token:       "t",
		NotebookDir: "/tmp",
	}
	assert.Contains(t, s.String(), "?lab=1&token=t")
}

// TestCLIError_ErrorAndUnwrap verifies the error message format and
// that errors.Is can see through the wrapper.
func TestCLIError_ErrorAndUnwrap(t *testing.T) {
	underlying := fmt.Errorf("bind failed")
	err := WrapCLIError(ExitGeneralError, "no free port", underlying)

	assert.Equal(t, "no free port: bind failed", err.Error())
	assert.True(t, errors.Is(err, underlying))

	var cliErr *CLIError
	require.True(t, errors.As(error(err), &cliErr))
	assert.Equal(t, ExitGeneralError, cliErr.Code)
}

// TestNewCLIError verifies the no-underlying-error constructor.
func TestNewCLIError(t *testing.T) {
	err := NewCLIError(ExitGeneralError, "jupyter not found")
	assert.Equal(t, "jupyter not found", err.Error())
	assert.Nil(t, err.Unwrap())
}
