package jupyter

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/mmr-tortoise/slurm-jupyter/internal/model"
)

// stateFileGlobs are the state file name patterns the notebook tool
// writes into its runtime directory: nbserver-<pid>.json from classic
// notebook, jpserver-<pid>.json from jupyter-server based versions.
var stateFileGlobs = []string{"nbserver-*.json", "jpserver-*.json"}

// RuntimeDir returns the notebook tool's runtime directory for the
// invoking user.
//
// This is the default location jupyter uses when XDG_RUNTIME_DIR is
// unset, which this program guarantees before starting any server
// (see internal/slurm). Servers started with the variable set would
// record their state elsewhere and then lose it when the tmpfs behind
// it is recycled, which is exactly the breakage the unset avoids.
func RuntimeDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("locating home directory: %w", err)
	}
	return filepath.Join(home, ".local", "share", "jupyter", "runtime"), nil
}

// ListServers reads every server state file under the given runtime
// directory and returns one descriptor per file, sorted by file name
// for stable output.
//
// Zero matching files is not an error: the result is simply empty.
// A file that exists but cannot be read or parsed is an error; state
// files are machine-written JSON, so a broken one is worth surfacing
// rather than skipping silently.
func ListServers(runtimeDir string) ([]model.NotebookServer, error) {
	var paths []string
	for _, pattern := range stateFileGlobs {
		matches, err := filepath.Glob(filepath.Join(runtimeDir, pattern))
		if err != nil {
			// Only malformed patterns error here, and ours are fixed.
			return nil, fmt.Errorf("globbing %s: %w", pattern, err)
		}
		paths = append(paths, matches...)
	}
	sort.Strings(paths)

	servers := make([]model.NotebookServer, 0, len(paths))
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading state file %s: %w", path, err)
		}

		var server model.NotebookServer
		if err := json.Unmarshal(data, &server); err != nil {
			return nil, fmt.Errorf("parsing state file %s: %w", path, err)
		}
		servers = append(servers, server)
	}
	return servers, nil
}
