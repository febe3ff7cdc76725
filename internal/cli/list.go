// Package cli — list.go implements the server lister.
//
// This is a deliberate reimplementation of `jupyter notebook list` as
// a flat read of the server state files. The tool's own list command,
// run from a different machine than the one that started a server,
// validates the recorded PID against the local process table and
// deletes state files for "dead" servers that are in fact alive on
// another node. Reading the files directly cannot do that damage:
// nothing here writes or deletes.
package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mmr-tortoise/slurm-jupyter/internal/jupyter"
	"github.com/mmr-tortoise/slurm-jupyter/internal/model"
	"github.com/mmr-tortoise/slurm-jupyter/internal/slurm"
)

// listHeader is the first line of text output, printed even when no
// servers are running.
const listHeader = "Currently running notebook servers:"

// runList prints one line per discovered server state file.
func runList() error {
	// Same precondition as before starting a server: a runtime-dir
	// variable inherited from elsewhere would point the glob at the
	// wrong directory.
	os.Unsetenv(slurm.RuntimeDirVar)

	dir, err := jupyter.RuntimeDir()
	if err != nil {
		return model.WrapCLIError(model.ExitGeneralError, "locating the notebook runtime directory", err)
	}
	VerboseLog("scanning %s", dir)

	servers, err := jupyter.ListServers(dir)
	if err != nil {
		return model.WrapCLIError(model.ExitGeneralError, "reading server state files", err)
	}

	if jsonOutput {
		printListJSON(servers)
	} else {
		printListText(servers)
	}
	return nil
}

// printListText writes the header and one line per server.
func printListText(servers []model.NotebookServer) {
	fmt.Println(listHeader)
	for i := range servers {
		fmt.Println(FormatServerLine(&servers[i]))
	}
}

// printListJSON writes the servers as a JSON object. An empty slice
// stays [] rather than null so consumers can index unconditionally.
func printListJSON(servers []model.NotebookServer) {
	type resultJSON struct {
		Servers []model.NotebookServer `json:"servers"`
	}
	result := resultJSON{Servers: make([]model.NotebookServer, 0, len(servers))}
	result.Servers = append(result.Servers, servers...)

	data, _ := json.MarshalIndent(result, "", "  ")
	fmt.Println(string(data))
}

// FormatServerLine renders one server for text output, indented under
// the header the way the notebook tool's own list formats it.
//
// Exported for testing (see list_test.go).
func FormatServerLine(s *model.NotebookServer) string {
	return "    " + s.String()
}
