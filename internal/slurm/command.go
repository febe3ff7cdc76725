// Package slurm builds the command lines handed to the cluster's job
// launcher and the re-invocation of this program inside the job.
//
// Nothing here talks a protocol: srun is driven purely by argv, so the
// package is a set of slice builders plus the environment scrub the
// submission path needs. Keeping the builders free of process state
// (they take and return plain slices) is what makes the exact launcher
// invocation testable.
package slurm

import "strings"

// RuntimeDirVar is the environment variable scrubbed before starting
// or listing servers. The notebook server derives its runtime state
// directory from it, and the directory must be stable for the server's
// whole lifetime; a job-local tmpfs value from the submission host is
// invalid on the compute node and poisons the server's own list/stop
// machinery.
const RuntimeDirVar = "XDG_RUNTIME_DIR"

// DefaultPartition is the partition interactive jobs go to when
// neither the flag nor the config names one.
const DefaultPartition = "interactive"

// SubmitCommand builds the launcher argv: an interactive (--pty)
// foreground submission to the given partition, with forwarded
// launcher arguments in their original order, followed by the inner
// command that the allocation will run.
func SubmitCommand(partition string, launcherArgs, inner []string) []string {
	argv := []string{"srun", "--pty", "-p", partition}
	argv = append(argv, launcherArgs...)
	return append(argv, inner...)
}

// InnerCommand builds the re-invocation of this program that runs
// inside the allocation: the resolved executable path with the hidden
// --internal flag, the propagated mode flags, any --jupyter-arg values
// re-spelled as flags, and the post-separator server arguments behind
// a fresh separator.
func InnerCommand(self string, cluster, verbose bool, jupyterArgs, serverArgs []string) []string {
	argv := []string{self, "--internal"}
	if cluster {
		argv = append(argv, "--cluster")
	}
	if verbose {
		argv = append(argv, "--verbose")
	}
	for _, arg := range jupyterArgs {
		argv = append(argv, "--jupyter-arg", arg)
	}
	if len(serverArgs) > 0 {
		argv = append(argv, "--")
		argv = append(argv, serverArgs...)
	}
	return argv
}

// ScrubEnviron returns a copy of the given environment with
// RuntimeDirVar removed. The submission path threads this through to
// the exec call instead of mutating the process environment, so the
// outbound environment is an explicit value rather than a global.
func ScrubEnviron(environ []string) []string {
	scrubbed := make([]string, 0, len(environ))
	for _, kv := range environ {
		if strings.HasPrefix(kv, RuntimeDirVar+"=") {
			continue
		}
		scrubbed = append(scrubbed, kv)
	}
	return scrubbed
}
