// Package cli — submit.go implements the default mode: re-executing
// this program through the cluster's interactive job launcher.
//
// The submitter never starts a server itself. It builds the srun
// command line with the forwarded launcher arguments, appends the
// inner re-invocation (this binary's resolved path plus the hidden
// --internal flag), scrubs the runtime-dir variable from the outbound
// environment, and replaces the process image. From the user's point
// of view they ran srun directly: Ctrl-C, terminal allocation, and
// exit status all belong to srun.
package cli

import (
	"os"
	"strings"

	"github.com/mmr-tortoise/slurm-jupyter/internal/args"
	"github.com/mmr-tortoise/slurm-jupyter/internal/config"
	"github.com/mmr-tortoise/slurm-jupyter/internal/model"
	"github.com/mmr-tortoise/slurm-jupyter/internal/slurm"
	"github.com/mmr-tortoise/slurm-jupyter/internal/sysproc"
)

// runSubmit builds the launcher command and execs it. Never returns on
// success.
func runSubmit(inv *args.Invocation, cfg *config.Config) error {
	partition := inv.Partition
	if partition == "" {
		partition = cfg.Partition
	}

	// The inner command must re-invoke this exact binary, not whatever
	// "slurm-jupyter" resolves to inside the job's PATH.
	self, err := os.Executable()
	if err != nil {
		return model.WrapCLIError(model.ExitGeneralError, "resolving own executable path", err)
	}

	inner := slurm.InnerCommand(self, inv.Cluster, inv.Verbose, inv.JupyterArgs, inv.ServerArgs)

	// Config-supplied launcher args come first so command-line ones
	// can override them (srun takes the last occurrence of a flag).
	launcherArgs := append(append([]string{}, cfg.SrunArgs...), inv.LauncherArgs...)

	argv := slurm.SubmitCommand(partition, launcherArgs, inner)
	VerboseLog("submitting: %s", strings.Join(argv, " "))

	// The runtime-dir variable is scrubbed from the outbound
	// environment rather than the process's own: the environment is an
	// explicit value threaded into the exec, and the submission host's
	// value would be invalid on the compute node anyway.
	env := slurm.ScrubEnviron(os.Environ())

	if err := sysproc.Exec(argv, env); err != nil {
		return model.WrapCLIError(model.ExitGeneralError, "launching srun", err)
	}
	return nil
}
