// Package main is the entry point for the slurm-jupyter CLI.
//
// This binary launches a Jupyter notebook server as an interactive
// Slurm job (or locally), picks a free network port for it, and can
// list already-running servers by reading their state files. All
// functionality lives in the internal/cli package, which defines the
// cobra command.
//
// Build-time variables (version, commit, date) are injected via ldflags
// during the release process. During development, they default to
// "dev", "none", and "unknown" respectively.
package main

import (
	"github.com/mmr-tortoise/slurm-jupyter/internal/cli"
)

// version, commit, and date are set at build time via ldflags.
// They provide binary identification for the --version flag output.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	// Inject build-time version info into the CLI package. This keeps
	// the build system decoupled from the CLI framework.
	cli.Version = version
	cli.Commit = commit
	cli.Date = date

	rootCmd := cli.NewRootCommand()
	cli.Execute(rootCmd)
}
