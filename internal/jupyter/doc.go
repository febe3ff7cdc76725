// Package jupyter handles everything that touches the notebook tool:
// resolving its executable (with an environment-module fallback),
// building the server command line, and reading the state files of
// already-running servers.
//
// The lister deliberately reimplements `jupyter notebook list` as a
// pure read. Running the tool's own list command from a host other
// than the one that started a server is known to delete the very state
// files it should only report on; this package never writes to or
// deletes anything under the runtime directory.
package jupyter
