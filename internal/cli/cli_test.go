package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetFlags restores every flag in the command tree to its default so
// consecutive Execute calls behave like separate invocations.
func resetFlags(cmd *cobra.Command) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	})
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

// run executes the root command with the given arguments against an
// isolated workspace and returns its output.
func run(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()

	resetFlags(rootCmd)
	base := []string{
		"--config-dir", filepath.Join(dir, "config"),
		"--data-dir", filepath.Join(dir, "data"),
		"--file", filepath.Join(dir, "linkage.yaml"),
	}
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append(base, args...))
	err := rootCmd.Execute()
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, t.TempDir(), "version")
	require.NoError(t, err)
	assert.Contains(t, out, "linkage v"+Version)
	assert.Contains(t, out, modulePath)
}

func TestInitAndEditWorkflow(t *testing.T) {
	dir := t.TempDir()

	out, err := run(t, dir, "init")
	require.NoError(t, err)
	assert.Contains(t, out, "initialized")

	_, err = run(t, dir, "link", "add", "--name", "L1")
	require.NoError(t, err)

	out, err = run(t, dir, "point", "add", "--links", "ground,L1", "--x", "1.5", "--y", "-2")
	require.NoError(t, err)
	assert.Contains(t, out, "Added Point0")

	out, err = run(t, dir, "show")
	require.NoError(t, err)
	assert.Contains(t, out, "L[ground, L1]")
	assert.Contains(t, out, "P[1.5, -2.0]")

	out, err = run(t, dir, "point", "delete", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted Point0")

	out, err = run(t, dir, "show")
	require.NoError(t, err)
	assert.Contains(t, out, "Mechanism: M[]")
}

func TestCommitLogCheckout(t *testing.T) {
	dir := t.TempDir()
	_, err := run(t, dir, "init")
	require.NoError(t, err)
	_, err = run(t, dir, "link", "add", "--name", "L1")
	require.NoError(t, err)
	_, err = run(t, dir, "point", "add", "--links", "ground,L1")
	require.NoError(t, err)

	out, err := run(t, dir, "commit", "-m", "first", "--author", "alice")
	require.NoError(t, err)
	assert.Contains(t, out, "[master]")

	out, err = run(t, dir, "log")
	require.NoError(t, err)
	assert.Contains(t, out, "first")
	assert.Contains(t, out, "alice")

	// Wipe the point, then restore it from the commit.
	_, err = run(t, dir, "point", "delete", "0")
	require.NoError(t, err)

	fields := strings.Fields(out)
	require.NotEmpty(t, fields)
	_, err = run(t, dir, "checkout", fields[0])
	require.NoError(t, err)

	out, err = run(t, dir, "show")
	require.NoError(t, err)
	assert.Contains(t, out, "L[ground, L1]")
}

func TestConfigSuppliesCommitDefaults(t *testing.T) {
	dir := t.TempDir()
	_, err := run(t, dir, "init")
	require.NoError(t, err)

	cfg := filepath.Join(dir, "config", "config.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("author: bob\nbranch: dev\n"), 0o644))

	_, err = run(t, dir, "link", "add", "--name", "L1")
	require.NoError(t, err)
	out, err := run(t, dir, "commit", "-m", "from config")
	require.NoError(t, err)
	assert.Contains(t, out, "[dev]")

	out, err = run(t, dir, "log")
	require.NoError(t, err)
	assert.Contains(t, out, "bob")
}

func TestParseHelpers(t *testing.T) {
	rows, err := parseRows("0, 1,4")
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 4}, rows)

	_, err = parseRows("0,x")
	assert.Error(t, err)

	rows, err = parseRows("")
	require.NoError(t, err)
	assert.Nil(t, rows)

	assert.Equal(t, []string{"ground", "L1"}, parseNames("ground, L1,"))
	assert.Nil(t, parseNames(""))
}
