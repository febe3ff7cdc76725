package args

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestPartition_SeparatorSplit verifies the core pass-through contract:
// tokens before "--" go to the launcher, tokens after it go to the
// server, both in order.
func TestPartition_SeparatorSplit(t *testing.T) {
	inv := Partition([]string{"foo", "--bar", "--", "baz", "qux"})

	assert.Equal(t, []string{"foo", "--bar"}, inv.LauncherArgs)
	assert.Equal(t, []string{"baz", "qux"}, inv.ServerArgs)
}

// TestPartition_NoSeparator verifies that without a separator the
// whole passthrough sequence is launcher-bound and nothing reaches the
// server.
func TestPartition_NoSeparator(t *testing.T) {
	inv := Partition([]string{"foo", "--bar"})

	assert.Equal(t, []string{"foo", "--bar"}, inv.LauncherArgs)
	assert.Empty(t, inv.ServerArgs)
}

// TestPartition_ConsumesOwnFlags verifies that recognized flags are
// consumed rather than forwarded, and unknown flags interleaved with
// them keep their relative order.
func TestPartition_ConsumesOwnFlags(t *testing.T) {
	inv := Partition([]string{"--time=01:00", "-p", "gpu", "--mem", "8G", "--verbose"})

	assert.Equal(t, "gpu", inv.Partition)
	assert.True(t, inv.Verbose)
	assert.Equal(t, []string{"--time=01:00", "--mem", "8G"}, inv.LauncherArgs)
}

// TestPartition_EqualsSpellings verifies the --flag=value forms.
func TestPartition_EqualsSpellings(t *testing.T) {
	inv := Partition([]string{"--partition=debug", "--jupyter-arg=--NotebookApp.open_browser=False"})

	assert.Equal(t, "debug", inv.Partition)
	assert.Equal(t, []string{"--NotebookApp.open_browser=False"}, inv.JupyterArgs)
}

// TestPartition_JupyterArgRepeats verifies that --jupyter-arg
// accumulates across repetitions in order.
func TestPartition_JupyterArgRepeats(t *testing.T) {
	inv := Partition([]string{"--jupyter-arg", "--a=1", "--jupyter-arg", "--b=2"})

	assert.Equal(t, []string{"--a=1", "--b=2"}, inv.JupyterArgs)
}

// TestPartition_ListPositional verifies that a leading bare "list" is
// an alternate spelling of --list, but only in the leading position.
func TestPartition_ListPositional(t *testing.T) {
	inv := Partition([]string{"list"})
	assert.True(t, inv.List)
	assert.Empty(t, inv.LauncherArgs)

	// After a passthrough token, "list" is launcher payload.
	inv = Partition([]string{"--nodelist=node01", "list"})
	assert.False(t, inv.List)
	assert.Equal(t, []string{"--nodelist=node01", "list"}, inv.LauncherArgs)
}

// TestPartition_ListFlagForms verifies both flag spellings of list mode.
func TestPartition_ListFlagForms(t *testing.T) {
	assert.True(t, Partition([]string{"--list"}).List)
	assert.True(t, Partition([]string{"-l"}).List)
}

// TestPartition_ModeFlags verifies the run-mode flags are consumed.
func TestPartition_ModeFlags(t *testing.T) {
	inv := Partition([]string{"--internal", "--cluster"})
	assert.True(t, inv.Internal)
	assert.True(t, inv.Cluster)
	assert.False(t, inv.Local)
	assert.Empty(t, inv.LauncherArgs)

	inv = Partition([]string{"--local"})
	assert.True(t, inv.Local)
}

// TestPartition_OwnFlagsAfterSeparator verifies that nothing after the
// separator is interpreted, even tokens this program normally owns.
func TestPartition_OwnFlagsAfterSeparator(t *testing.T) {
	inv := Partition([]string{"--", "--list", "-p", "gpu", "list"})

	assert.False(t, inv.List)
	assert.Empty(t, inv.Partition)
	assert.Equal(t, []string{"--list", "-p", "gpu", "list"}, inv.ServerArgs)
}

// TestPartition_Empty verifies the zero-argument default: submit mode
// with nothing to forward.
func TestPartition_Empty(t *testing.T) {
	inv := Partition(nil)

	assert.False(t, inv.Internal || inv.Local || inv.List || inv.Cluster)
	assert.Empty(t, inv.LauncherArgs)
	assert.Empty(t, inv.ServerArgs)
}

// TestPartition_ValueFlagAtEnd verifies that a value-taking flag with
// no following token is simply ignored instead of panicking.
func TestPartition_ValueFlagAtEnd(t *testing.T) {
	inv := Partition([]string{"--partition"})
	assert.Empty(t, inv.Partition)
}
