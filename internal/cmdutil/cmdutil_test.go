// internal/cmdutil/cmdutil_test.go
package cmdutil

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"phylip/internal/writers"
	"phylip/pkg/phylip"
)

func writeFile(t *testing.T, name, data string) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(fn, []byte(data), 0o644))
	return fn
}

func TestLoadAlignments(t *testing.T) {
	a := writeFile(t, "a.phy", "2 4\nCow       ACGT\nDog       TGCA\n")
	b := writeFile(t, "b.phy", "1 4\nCat       AAAA\n")

	got, err := LoadAlignments(context.Background(), []string{a, b}, NewLogger(&bytes.Buffer{}, false))
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, a, got[0].Source)
	assert.Equal(t, phylip.Header{NTax: 2, NChar: 4}, got[0].Header)
	assert.Equal(t, "Cat", got[1].Entries[0].Name)
}

func TestLoadAlignmentsNamesBadFile(t *testing.T) {
	bad := writeFile(t, "bad.phy", "2\nCow       ACGT\n")
	_, err := LoadAlignments(context.Background(), []string{bad}, NewLogger(&bytes.Buffer{}, true))
	require.ErrorIs(t, err, phylip.ErrFormat)
	assert.Contains(t, err.Error(), bad)
}

func TestLoadAlignmentsCanceled(t *testing.T) {
	a := writeFile(t, "a.phy", "1 1\nx         A\n")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	got, err := LoadAlignments(ctx, []string{a}, NewLogger(&bytes.Buffer{}, false))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, got)
}

func TestMismatchedEntries(t *testing.T) {
	a := writers.Alignment{
		Header:  phylip.Header{NTax: 2, NChar: 4},
		Entries: []phylip.Entry{{Name: "ok", Sequence: "ACGT"}, {Name: "long", Sequence: "ACGTA"}},
	}
	assert.Equal(t, []string{"long (5)"}, MismatchedEntries(a))
}

func TestWarnfQuiet(t *testing.T) {
	var buf bytes.Buffer
	Warnf(&buf, true, "x %d", 1)
	assert.Zero(t, buf.Len())
	Warnf(&buf, false, "x %d", 1)
	assert.Equal(t, "WARN: x 1\n", buf.String())
}
