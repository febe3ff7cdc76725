// Package cli — run.go implements the internal/local mode: the side
// of the program that actually becomes the notebook server.
//
// Reached either inside a Slurm allocation (hidden --internal flag,
// added by the submitter) or directly via --local. Single transition:
// pick a port, print connection instructions, exec the server. No
// return on success; the process identity becomes the server.
package cli

import (
	"fmt"
	"net"
	"os"
	"strings"
	"time"

	"github.com/mmr-tortoise/slurm-jupyter/internal/args"
	"github.com/mmr-tortoise/slurm-jupyter/internal/config"
	"github.com/mmr-tortoise/slurm-jupyter/internal/jupyter"
	"github.com/mmr-tortoise/slurm-jupyter/internal/model"
	"github.com/mmr-tortoise/slurm-jupyter/internal/port"
	"github.com/mmr-tortoise/slurm-jupyter/internal/slurm"
	"github.com/mmr-tortoise/slurm-jupyter/internal/sysproc"
)

// clusterStartDelay is the placeholder wait on the --cluster path
// until real companion-cluster bootstrap exists. The flag stays on the
// documented surface; dropping it would break scripts that pass it.
const clusterStartDelay = 10 * time.Second

// runServer selects a port and replaces this process with the notebook
// server.
func runServer(inv *args.Invocation, cfg *config.Config, jupyterPath string) error {
	host, err := os.Hostname()
	if err != nil {
		return model.WrapCLIError(model.ExitGeneralError, "resolving hostname", err)
	}

	if inv.Cluster {
		fmt.Printf("CPUs on node: %s\n", os.Getenv("SLURM_CPUS_ON_NODE"))
		time.Sleep(clusterStartDelay)
	}

	// Probe on the hostname the server will be told to bind. Some
	// setups (containers, sparse /etc/hosts) have a hostname that does
	// not resolve locally; fall back to probing all interfaces there.
	bindHost := host
	if _, err := net.LookupHost(host); err != nil {
		VerboseLog("hostname %s does not resolve, probing all interfaces", host)
		bindHost = ""
	}

	scanner := port.NewScanner(bindHost)
	chosen, err := scanner.FindAvailablePort(port.BasePort(), cfg.ScanWidth)
	if err != nil {
		return model.WrapCLIError(model.ExitGeneralError, "selecting a port for the notebook server", err)
	}
	VerboseLog("selected port %d on %s", chosen, host)

	printInstructions(host, chosen)

	// The server must see the variable unset for its entire lifetime,
	// so this one is a real process-environment mutation, inherited
	// through the exec below.
	os.Unsetenv(slurm.RuntimeDirVar)

	serverArgs := append(append([]string{}, cfg.JupyterArgs...), inv.JupyterArgs...)
	serverArgs = append(serverArgs, inv.ServerArgs...)

	argv := jupyter.ServerCommand(jupyterPath, host, chosen, serverArgs)
	VerboseLog("starting server: %s", strings.Join(argv, " "))

	if err := sysproc.Exec(argv, os.Environ()); err != nil {
		return model.WrapCLIError(model.ExitGeneralError, "starting the notebook server", err)
	}
	return nil
}

// printInstructions tells the user how to reach the server from their
// workstation. The tunnel goes through the login host because compute
// nodes are normally unreachable from outside the cluster.
func printInstructions(host string, chosen int) {
	fmt.Printf(`
Starting a notebook server on %[1]s, port %[2]d.

To connect, open a tunnel from your workstation:

    ssh -N -L %[2]d:%[1]s:%[2]d <user>@<login-host>

then browse to:

    http://localhost:%[2]d/

The access token is printed below by the server itself (or run
"slurm-jupyter list" on the cluster).

To shut down, press Ctrl-C twice within one second: srun only
cancels the pending allocation on the second interrupt.

`, host, chosen)
}
