// Package modules loads environment modules into this process.
//
// HPC sites normally expose `module` as a shell function that evals
// output from the module system's real binary (Lmod's $LMOD_CMD or
// Tcl modules' modulecmd). A shell function is unreachable from a Go
// process, so this package calls the underlying binary directly in
// `sh` output mode and applies the emitted environment assignments to
// the current process. That is the whole trick: after Load returns,
// exec.LookPath sees whatever PATH the module prepended.
//
// Only the assignment forms the two module systems actually emit are
// handled: `KEY=value; export KEY;`, `export KEY=value;` and
// `unset KEY;`. Anything else on the output (shell conditionals from
// exotic modulefiles) is ignored rather than interpreted.
package modules

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// moduleCommand locates the module system's CLI: $LMOD_CMD when set
// (Lmod exports it on every login), otherwise modulecmd on PATH.
func moduleCommand() (string, error) {
	if cmd := os.Getenv("LMOD_CMD"); cmd != "" {
		return cmd, nil
	}
	if path, err := exec.LookPath("modulecmd"); err == nil {
		return path, nil
	}
	return "", fmt.Errorf("no environment module system found (LMOD_CMD unset, modulecmd not on PATH)")
}

// Load runs `<modulecmd> sh load <name>` and applies the resulting
// environment assignments to this process.
//
// Both Lmod and Tcl modules print the environment mutations for the
// requested shell on stdout and diagnostics on stderr; stderr is
// passed through so the user sees the module system's own messages.
func Load(name string) error {
	cmd, err := moduleCommand()
	if err != nil {
		return err
	}

	load := exec.Command(cmd, "sh", "load", name)
	load.Stderr = os.Stderr
	out, err := load.Output()
	if err != nil {
		return fmt.Errorf("module load %s: %w", name, err)
	}

	return applyShellEnv(string(out))
}

// applyShellEnv applies the environment assignments from a sh-format
// module script to the current process.
//
// Statements are split on newlines and semicolons: modulecmd puts the
// assignment and its export on one line (`KEY=value; export KEY;`).
// A quoted value containing a literal semicolon would be mangled by
// this split; neither module system emits one for the PATH-style
// variables being loaded here.
func applyShellEnv(script string) error {
	var statements []string
	for _, line := range strings.Split(script, "\n") {
		statements = append(statements, strings.Split(line, ";")...)
	}

	for _, line := range statements {
		line = strings.TrimSpace(line)

		switch {
		case strings.HasPrefix(line, "unset "):
			os.Unsetenv(strings.TrimSpace(strings.TrimPrefix(line, "unset ")))

		case strings.HasPrefix(line, "export "):
			rest := strings.TrimPrefix(line, "export ")
			// Two forms: `export KEY=value` carries an assignment,
			// a bare `export KEY` follows a `KEY=value` line already
			// applied below and needs no action.
			if key, value, ok := strings.Cut(rest, "="); ok {
				if err := os.Setenv(key, unquote(value)); err != nil {
					return fmt.Errorf("setting %s: %w", key, err)
				}
			}

		default:
			key, value, ok := strings.Cut(line, "=")
			if !ok || key == "" || strings.ContainsAny(key, " \t(){}") {
				// Not a plain assignment; skip rather than interpret.
				continue
			}
			if err := os.Setenv(key, unquote(value)); err != nil {
				return fmt.Errorf("setting %s: %w", key, err)
			}
		}
	}
	return nil
}

// unquote strips one level of single or double quotes, the quoting
// styles modulecmd and Lmod emit around values with spaces.
func unquote(s string) string {
	if len(s) >= 2 {
		if (s[0] == '\'' && s[len(s)-1] == '\'') || (s[0] == '"' && s[len(s)-1] == '"') {
			return s[1 : len(s)-1]
		}
	}
	return s
}
