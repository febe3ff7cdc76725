//go:build windows

package sysproc

import (
	"fmt"
	"os"
	"os/exec"
)

// Exec approximates process-image replacement on Windows, which has no
// execve: the command is spawned with inherited stdio and environment,
// and this process exits with the child's exit code. Signal fidelity
// is weaker than the unix path but the observable contract (exit
// status becomes that of the downstream command) holds.
func Exec(argv []string, env []string) error {
	if len(argv) == 0 {
		return fmt.Errorf("exec: empty command")
	}

	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = env

	if err := cmd.Run(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			os.Exit(exitErr.ExitCode())
		}
		return fmt.Errorf("exec %s: %w", argv[0], err)
	}
	os.Exit(0)
	return nil
}
