// Package cli implements the cobra-based command for slurm-jupyter.
//
// Unlike a typical cobra CLI there are no subcommands: the three
// execution modes (submit, run, list) are selected by flags that the
// original tool's users already script against, and most of the
// argument vector is forwarded verbatim to external tools. Flag
// parsing is therefore disabled on the command and delegated to the
// internal/args partitioner; cobra still provides the help surface,
// error funneling, and exit-code handling.
package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/slurm-jupyter/internal/args"
	"github.com/mmr-tortoise/slurm-jupyter/internal/config"
	"github.com/mmr-tortoise/slurm-jupyter/internal/jupyter"
	"github.com/mmr-tortoise/slurm-jupyter/internal/model"
)

// Global output-mode state, set from the parsed invocation before any
// mode logic runs. Error formatting in Execute needs these after RunE
// has returned, which is why they live at package level rather than on
// the invocation.
var (
	// jsonOutput switches list output and error output to JSON.
	jsonOutput bool

	// verbose enables [verbose] diagnostics on stderr: the parsed
	// partitions and every constructed command line.
	verbose bool
)

// Version, Commit, and Date are set at build time via ldflags,
// injected from the main package.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

const longHelp = `slurm-jupyter starts a Jupyter notebook server as an interactive Slurm
job and prints the SSH tunnel instructions for reaching it. Run with no
flags it submits itself through srun; inside the allocation it picks a
free port (deterministic per user), prints connection instructions, and
becomes the notebook server.

Flags consumed by slurm-jupyter:
  -p, --partition <name>   Slurm partition to submit to (default "interactive")
  -l, --list               list running notebook servers and exit
      --local              run the server on this host, without srun
      --cluster            also start a companion compute cluster (placeholder)
      --jupyter-arg <arg>  extra argument for the notebook server (repeatable)
      --json               machine-readable output
  -v, --verbose            echo parsed arguments and constructed commands
  -h, --help               this help
      --version            version information

Anything else is forwarded: arguments before a literal "--" go to srun,
arguments after it go to the notebook server.

Examples:
  slurm-jupyter
  slurm-jupyter -p gpu --time=04:00:00
  slurm-jupyter --gres=gpu:1 -- --NotebookApp.open_browser=False
  slurm-jupyter list`

// NewRootCommand creates and configures the root cobra command.
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "slurm-jupyter [srun args] [-- server args]",
		Short: "Run a Jupyter notebook server as an interactive Slurm job",
		Long:  longHelp,

		// The partitioner owns tokenization: launcher flags must pass
		// through unenumerated, which cobra's own parser cannot do.
		DisableFlagParsing: true,

		// Errors are formatted by Execute (text or JSON), not cobra.
		SilenceUsage:  true,
		SilenceErrors: true,

		RunE: func(cmd *cobra.Command, argv []string) error {
			return run(cmd, argv)
		},
	}
	return cmd
}

// run is the single dispatch point: partition the argument vector,
// handle help/version, verify the notebook executable, then enter
// exactly one mode. Modes are chosen once and never interleave.
func run(cmd *cobra.Command, argv []string) error {
	inv := args.Partition(argv)
	jsonOutput = inv.JSON
	verbose = inv.Verbose

	if inv.Help {
		return cmd.Help()
	}
	if inv.Version {
		fmt.Printf("slurm-jupyter %s (commit: %s, built: %s)\n", Version, Commit, Date)
		return nil
	}

	VerboseLog("launcher args: %q", inv.LauncherArgs)
	VerboseLog("server args: %q", inv.ServerArgs)

	cfg, err := config.Load()
	if err != nil {
		return model.WrapCLIError(model.ExitGeneralError, "invalid configuration", err)
	}

	// Precondition check, before any mode logic: a resolvable notebook
	// executable. The list mode only reads files, but a machine where
	// jupyter cannot be found has no servers worth listing and the
	// early failure gives one consistent diagnostic.
	jupyterPath, err := jupyter.Resolve(cfg.JupyterCommand, cfg.Module)
	if err != nil {
		return err
	}
	VerboseLog("notebook executable: %s", jupyterPath)

	switch {
	case inv.List:
		return runList()
	case inv.Internal || inv.Local:
		return runServer(inv, cfg, jupyterPath)
	default:
		return runSubmit(inv, cfg)
	}
}

// Execute runs the root command and translates errors into exit codes.
// CLIError values carry their own code; anything else exits 1.
func Execute(rootCmd *cobra.Command) {
	if err := rootCmd.Execute(); err != nil {
		if cliErr, ok := err.(*model.CLIError); ok {
			printError(cliErr.Message, cliErr.Err)
			os.Exit(int(cliErr.Code))
		}
		printError(err.Error(), nil)
		os.Exit(int(model.ExitGeneralError))
	}
}

// printError outputs an error in the appropriate format (JSON or text)
// on stderr; stdout stays reserved for successful command output.
func printError(message string, underlying error) {
	if jsonOutput {
		errObj := map[string]interface{}{
			"error": map[string]interface{}{
				"message": message,
			},
		}
		if underlying != nil {
			if errMap, ok := errObj["error"].(map[string]interface{}); ok {
				errMap["detail"] = underlying.Error()
			}
		}
		data, _ := json.MarshalIndent(errObj, "", "  ")
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		if underlying != nil {
			fmt.Fprintf(os.Stderr, "Error: %s: %v\n", message, underlying)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %s\n", message)
		}
	}
}

// VerboseLog prints a message to stderr only when verbose mode is
// enabled.
func VerboseLog(format string, a ...interface{}) {
	if verbose {
		fmt.Fprintf(os.Stderr, "[verbose] "+format+"\n", a...)
	}
}
