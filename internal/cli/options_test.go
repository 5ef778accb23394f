// internal/cli/options_test.go
package cli

import (
	"bytes"
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFS() *flag.FlagSet {
	fs := NewFlagSet("test")
	fs.SetOutput(io.Discard)
	return fs
}

func mustParse(t *testing.T, args ...string) Options {
	t.Helper()
	opts, err := ParseArgs(newFS(), args)
	require.NoError(t, err)
	return opts
}

func TestDefaults(t *testing.T) {
	o := mustParse(t, "aln.phy")
	assert.Equal(t, []string{"aln.phy"}, o.Inputs)
	assert.Equal(t, "phylip", o.Output)
	assert.Equal(t, 80, o.Wrap)
	assert.Equal(t, "\n", o.Terminator())
}

func TestFlagsAndPositionalsInterleave(t *testing.T) {
	o := mustParse(t, "a.phy", "-o", "json", "b.phy", "--wrap", "60", "--crlf", "-q")
	assert.Equal(t, []string{"a.phy", "b.phy"}, o.Inputs)
	assert.Equal(t, "json", o.Output)
	assert.Equal(t, 60, o.Wrap)
	assert.Equal(t, "\r\n", o.Terminator())
	assert.True(t, o.Quiet)
}

func TestGlobInputs(t *testing.T) {
	dir := t.TempDir()
	for _, n := range []string{"x.phy", "y.phy"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, n), []byte("1 1\na A\n"), 0o644))
	}
	o := mustParse(t, filepath.Join(dir, "*.phy"))
	assert.Len(t, o.Inputs, 2)
}

func TestValidationErrors(t *testing.T) {
	tests := map[string][]string{
		"no inputs":      {},
		"bad output":     {"-o", "fasta", "a.phy"},
		"bad wrap":       {"--wrap", "0", "a.phy"},
		"append no out":  {"--append", "a.phy"},
		"stdin twice":    {"-", "-"},
		"unmatched glob": {filepath.Join(os.TempDir(), "no-such-dir-*", "*.phy")},
	}
	for name, args := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParseArgs(newFS(), args)
			assert.Error(t, err)
		})
	}
}

func TestHelpAndVersion(t *testing.T) {
	fs := newFS()
	var buf bytes.Buffer
	fs.SetOutput(&buf)
	_, err := ParseArgs(fs, []string{"-h"})
	assert.ErrorIs(t, err, flag.ErrHelp)
	assert.Contains(t, buf.String(), "--output")

	o, err := ParseArgs(newFS(), []string{"--version"})
	require.NoError(t, err)
	assert.True(t, o.Version)
}
