//go:build !windows

package sysproc

import (
	"fmt"
	"os/exec"
	"syscall"
)

// Exec replaces the current process image with argv, using the given
// environment. argv[0] is resolved on PATH when it is not already a
// path. On success this function never returns.
func Exec(argv []string, env []string) error {
	if len(argv) == 0 {
		return fmt.Errorf("exec: empty command")
	}

	path, err := exec.LookPath(argv[0])
	if err != nil {
		return fmt.Errorf("exec: resolving %s: %w", argv[0], err)
	}

	if err := syscall.Exec(path, argv, env); err != nil {
		return fmt.Errorf("exec %s: %w", path, err)
	}
	// Unreachable: syscall.Exec only returns on error.
	return nil
}
