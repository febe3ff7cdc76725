// Package model defines the domain types for the slurm-jupyter CLI.
//
// There is deliberately almost no data model here: the program is a
// sequencing layer over two external tools (srun and jupyter). The
// only entity it ever materializes is the read-only descriptor of a
// running notebook server, reconstructed from the state files the
// notebook tool writes into its runtime directory. This program never
// writes or deletes those files.
package model

import (
	"fmt"
	"strings"
)

// NotebookServer describes one running notebook server instance, as
// recorded by the server itself in a JSON state file (nbserver-*.json
// or jpserver-*.json under the Jupyter runtime directory).
//
// The field set mirrors the subset of the state file this program
// prints. The file format is owned entirely by the notebook tool; any
// field it adds in the future is silently ignored during parsing.
type NotebookServer struct {
	// URL is the server's base URL, including scheme, host, port and
	// trailing slash (e.g. "http://node042:8888/").
	URL string `json:"url"`

	// Token is the access token for the server. Empty when the server
	// was started with token authentication disabled.
	Token string `json:"token"`

	// NotebookDir is the working directory the server was started in.
	NotebookDir string `json:"notebook_dir"`
}

// String returns the one-line human-readable form used by the list
// output: the URL with the token as a query parameter, followed by
// the notebook directory. This matches the layout of the notebook
// tool's own "list" command so existing eyeballs and scripts keep
// working.
func (s *NotebookServer) String() string {
	url := s.URL
	if s.Token != "" {
		sep := "?"
		if strings.Contains(url, "?") {
			sep = "&"
		}
		url = url + sep + "token=" + s.Token
	}
	return fmt.Sprintf("%s :: %s", url, s.NotebookDir)
}

// ExitCode defines the CLI exit codes.
//
// The surface is intentionally small: scripts wrapping this tool only
// ever see 0 or 1 from the tool itself. Any other status comes from
// the downstream command after the process image is replaced.
type ExitCode int

const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess ExitCode = 0

	// ExitGeneralError covers both fatal conditions this program can
	// diagnose itself: no working notebook server executable, and no
	// free port in the scan window.
	ExitGeneralError ExitCode = 1
)

// CLIError is a custom error type that carries an exit code.
// It lets deep call sites decide the process exit status while the
// top-level Execute function owns the actual os.Exit call.
type CLIError struct {
	// Code is the OS exit code to use.
	Code ExitCode

	// Message is the human-readable error description.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error implements the error interface.
func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/errors.As support.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a new CLIError with the given exit code and message.
func NewCLIError(code ExitCode, message string) *CLIError {
	return &CLIError{Code: code, Message: message}
}

// WrapCLIError creates a new CLIError that wraps an existing error.
func WrapCLIError(code ExitCode, message string, err error) *CLIError {
	return &CLIError{Code: code, Message: message, Err: err}
}
