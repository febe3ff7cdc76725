package slurm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestSubmitCommand verifies the launcher argv layout: srun flags,
// then forwarded launcher args in order, then the inner command.
func TestSubmitCommand(t *testing.T) {
	inner := []string{"/usr/local/bin/slurm-jupyter", "--internal"}
	argv := SubmitCommand("gpu", []string{"--time=02:00:00", "--mem", "8G"}, inner)

	assert.Equal(t, []string{
		"srun", "--pty", "-p", "gpu",
		"--time=02:00:00", "--mem", "8G",
		"/usr/local/bin/slurm-jupyter", "--internal",
	}, argv)
}

// TestSubmitCommand_NoForwardedArgs verifies the minimal submission.
func TestSubmitCommand_NoForwardedArgs(t *testing.T) {
	argv := SubmitCommand(DefaultPartition, nil, []string{"/bin/self", "--internal"})
	assert.Equal(t, []string{"srun", "--pty", "-p", "interactive", "/bin/self", "--internal"}, argv)
}

// TestInnerCommand_Minimal verifies only the hidden flag is added when
// nothing needs propagating.
func TestInnerCommand_Minimal(t *testing.T) {
	argv := InnerCommand("/bin/self", false, false, nil, nil)
	assert.Equal(t, []string{"/bin/self", "--internal"}, argv)
}

// TestInnerCommand_PropagatesFlags verifies cluster/verbose and the
// jupyter-arg values are re-spelled for the inner invocation.
func TestInnerCommand_PropagatesFlags(t *testing.T) {
	argv := InnerCommand("/bin/self", true, true,
		[]string{"--a=1", "--b=2"}, nil)

	assert.Equal(t, []string{
		"/bin/self", "--internal", "--cluster", "--verbose",
		"--jupyter-arg", "--a=1",
		"--jupyter-arg", "--b=2",
	}, argv)
}

// TestInnerCommand_ServerArgsBehindSeparator verifies post-separator
// arguments are carried behind a fresh separator so the inner
// partitioner routes them straight to the server again.
func TestInnerCommand_ServerArgsBehindSeparator(t *testing.T) {
	argv := InnerCommand("/bin/self", false, false, nil, []string{"baz", "qux"})
	assert.Equal(t, []string{"/bin/self", "--internal", "--", "baz", "qux"}, argv)
}

// TestScrubEnviron verifies exactly the runtime-dir variable is
// dropped and everything else survives in order.
func TestScrubEnviron(t *testing.T) {
	environ := []string{
		"PATH=/usr/bin",
		"XDG_RUNTIME_DIR=/run/user/1000",
		"HOME=/home/u",
		"XDG_RUNTIME_DIR_BACKUP=/keep/me",
	}

	scrubbed := ScrubEnviron(environ)
	assert.Equal(t, []string{
		"PATH=/usr/bin",
		"HOME=/home/u",
		"XDG_RUNTIME_DIR_BACKUP=/keep/me",
	}, scrubbed)
}

// TestScrubEnviron_Absent verifies a scrub with nothing to remove is a
// plain copy.
func TestScrubEnviron_Absent(t *testing.T) {
	environ := []string{"PATH=/usr/bin"}
	assert.Equal(t, environ, ScrubEnviron(environ))
}
