package jupyter

import (
	"fmt"
	"os/exec"
	"strconv"

	"github.com/mmr-tortoise/slurm-jupyter/internal/model"
	"github.com/mmr-tortoise/slurm-jupyter/internal/modules"
)

// Resolve locates the notebook server executable on PATH. When the
// command is missing it loads the given environment module through the
// module system's CLI and checks again; the module load mutates this
// process's PATH, so the second LookPath sees whatever the module
// prepended.
//
// This is the precondition check run once per process start, before
// any mode logic. Failure is fatal for the caller: without a server
// executable neither submitting, running, nor the printed instructions
// make sense.
func Resolve(command, moduleName string) (string, error) {
	if path, err := exec.LookPath(command); err == nil {
		return path, nil
	}

	if err := modules.Load(moduleName); err != nil {
		return "", model.WrapCLIError(model.ExitGeneralError,
			fmt.Sprintf("%s not found on PATH and loading module %q failed", command, moduleName), err)
	}

	path, err := exec.LookPath(command)
	if err != nil {
		return "", model.WrapCLIError(model.ExitGeneralError,
			fmt.Sprintf("%s still not found after loading module %q", command, moduleName), err)
	}
	return path, nil
}

// ServerCommand builds the argv that replaces this process in run
// mode: the notebook server bound to the job node's hostname on the
// selected port, with any collected passthrough arguments appended
// verbatim.
//
// --no-browser is always set; there is no display inside a batch
// allocation, and the printed instructions tell the user to open the
// tunnel URL themselves.
func ServerCommand(jupyterPath, host string, port int, extraArgs []string) []string {
	argv := []string{
		jupyterPath,
		"notebook",
		"--no-browser",
		"--ip=" + host,
		"--port=" + strconv.Itoa(port),
	}
	return append(argv, extraArgs...)
}
