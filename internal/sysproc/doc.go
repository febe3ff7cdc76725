// Package sysproc replaces the current process image with another
// command.
//
// Both execution modes of this program end the same way: the process
// identity becomes the downstream tool (srun on the submission host,
// the notebook server inside the job). Replacing the image rather than
// spawning a child keeps signal delivery and exit status exactly as if
// the user had run the tool themselves; srun's interactive Ctrl-C
// handling in particular depends on receiving the signal directly.
//
// On platforms without execve the fallback spawns the command with
// inherited stdio and forwards its exit code.
package sysproc
