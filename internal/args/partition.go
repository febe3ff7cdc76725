// Package args implements the non-strict argument partitioner.
//
// The CLI forwards most of its argument vector verbatim to external
// tools: everything it does not recognize goes to the Slurm launcher,
// and everything after a literal "--" goes to the notebook server.
// Launcher flags are deliberately not enumerated, so parsing must
// tolerate unknown flags instead of rejecting them. Standard flag
// libraries in unknown-flag-whitelist mode drop unrecognized flags
// rather than preserving them in order, which would corrupt the
// pass-through, so the token walk here is done by hand. The cobra
// command in internal/cli disables its own flag parsing and delegates
// to this package.
package args

import "strings"

// Separator is the literal token that splits passthrough arguments
// into a launcher-bound prefix and a server-bound suffix.
const Separator = "--"

// Invocation is the result of partitioning an argument vector: the
// flags this program consumed, plus the two ordered passthrough
// sequences.
type Invocation struct {
	// Internal marks the hidden re-invocation flag: this process is
	// running inside the allocated Slurm job and should start the
	// server directly.
	Internal bool

	// Local requests running the server on this host without
	// delegating to the job launcher.
	Local bool

	// Cluster requests starting a companion compute cluster inside
	// the job. Currently a placeholder: the run mode only reports the
	// allocated CPU count and waits a fixed delay.
	Cluster bool

	// List requests the server lister (from --list, -l, or a leading
	// positional "list").
	List bool

	// Verbose echoes parsed arguments and constructed command lines.
	Verbose bool

	// JSON switches list output and error output to JSON.
	JSON bool

	// Help and Version short-circuit before any mode logic.
	Help    bool
	Version bool

	// Partition is the Slurm partition from -p/--partition. Empty
	// means "use the configured default".
	Partition string

	// JupyterArgs collects the values of repeated --jupyter-arg
	// flags. They are appended to the server command line in run mode
	// and re-forwarded as --jupyter-arg flags by the submitter.
	JupyterArgs []string

	// LauncherArgs is the ordered sequence of unrecognized tokens
	// seen before the separator, forwarded verbatim to srun.
	LauncherArgs []string

	// ServerArgs is everything after the separator, forwarded
	// verbatim to the notebook server. Nothing in it is interpreted,
	// not even tokens that look like flags this program owns.
	ServerArgs []string
}

// Partition walks the argument vector once and splits it into
// consumed flags and the two passthrough sequences.
//
// Rules, in order:
//   - After a literal "--", every token lands in ServerArgs untouched.
//   - Recognized flags are consumed. Value-taking flags accept both
//     "--partition gpu" and "--partition=gpu" spellings.
//   - A bare "list" before any other passthrough token selects list
//     mode (the alternate spelling of --list).
//   - Anything else is appended to LauncherArgs in order.
//
// Unknown flags never produce an error.
func Partition(argv []string) *Invocation {
	inv := &Invocation{}

	afterSeparator := false
	for i := 0; i < len(argv); i++ {
		tok := argv[i]

		if afterSeparator {
			inv.ServerArgs = append(inv.ServerArgs, tok)
			continue
		}

		switch {
		case tok == Separator:
			afterSeparator = true

		case tok == "--internal":
			inv.Internal = true
		case tok == "--local":
			inv.Local = true
		case tok == "--cluster":
			inv.Cluster = true
		case tok == "--list" || tok == "-l":
			inv.List = true
		case tok == "--verbose" || tok == "-v":
			inv.Verbose = true
		case tok == "--json":
			inv.JSON = true
		case tok == "--help" || tok == "-h":
			inv.Help = true
		case tok == "--version":
			inv.Version = true

		case tok == "--partition" || tok == "-p":
			if i+1 < len(argv) {
				i++
				inv.Partition = argv[i]
			}
		case strings.HasPrefix(tok, "--partition="):
			inv.Partition = strings.TrimPrefix(tok, "--partition=")

		case tok == "--jupyter-arg":
			if i+1 < len(argv) {
				i++
				inv.JupyterArgs = append(inv.JupyterArgs, argv[i])
			}
		case strings.HasPrefix(tok, "--jupyter-arg="):
			inv.JupyterArgs = append(inv.JupyterArgs, strings.TrimPrefix(tok, "--jupyter-arg="))

		case tok == "list" && len(inv.LauncherArgs) == 0:
			// Alternate spelling: a leading positional "list". Once a
			// passthrough token has been seen, "list" is just another
			// launcher argument.
			inv.List = true

		default:
			inv.LauncherArgs = append(inv.LauncherArgs, tok)
		}
	}

	return inv
}
