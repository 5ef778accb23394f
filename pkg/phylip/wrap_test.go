// pkg/phylip/wrap_test.go
package phylip

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPadName(t *testing.T) {
	assert.Equal(t, "a         ", PadName("a"))
	assert.Equal(t, "abcdefghij", PadName("abcdefghij"))
	assert.Equal(t, "abcdefghij", PadName("abcdefghijklmnop"))
	assert.Equal(t, "Ñandú     ", PadName("Ñandú"))
	assert.Equal(t, strings.Repeat(" ", NameWidth), PadName(""))
}

func TestWrap(t *testing.T) {
	assert.Equal(t, []string{"abc\n", "def\n", "g\n"}, Wrap("abcdefg", 3, "\n"))
	assert.Equal(t, []string{"abc\r\n"}, Wrap("abc", 3, "\r\n"))
	assert.Equal(t, []string{"abcdef|"}, Wrap("abcdef", 80, "|"))
	assert.Nil(t, Wrap("", 80, "\n"))
}

func TestEncodeSingleBlock(t *testing.T) {
	var buf bytes.Buffer
	err := Encode(&buf, []Entry{{"a", "A"}, {"g", "G"}}, DefaultFormat())
	require.NoError(t, err)
	assert.Equal(t, "2 1\na         A\ng         G\n\n", buf.String())
}

func TestEncodeInterleavesChunks(t *testing.T) {
	var buf bytes.Buffer
	entries := []Entry{{"one", "AAAAAAAA"}, {"two", "CCCCCCCC"}}
	require.NoError(t, Encode(&buf, entries, Format{Wrap: 12, Term: "\n"}))

	want := "2 8\n" +
		"one       AA\n" +
		"two       CC\n" +
		"\n" +
		"AAAAAA\n" +
		"CCCCCC\n" +
		"\n"
	assert.Equal(t, want, buf.String())
}

func TestEncodeEmptyAndBadWrap(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, nil, DefaultFormat()))
	assert.Zero(t, buf.Len())
	assert.ErrorIs(t, Encode(&buf, []Entry{{"a", "A"}}, Format{Wrap: 0, Term: "\n"}), ErrInvalidWrap)
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	entries := []Entry{
		{"Cow", strings.Repeat("ACGT", 50)},
		{"Carp", strings.Repeat("TGCA", 50)},
		{"Chicken", strings.Repeat("GGCC", 50)},
	}
	for _, f := range []Format{DefaultFormat(), {Wrap: 7, Term: "\r\n"}, {Wrap: 200, Term: "\n"}} {
		var buf bytes.Buffer
		require.NoError(t, Encode(&buf, entries, f))
		h, got, err := Decode(&buf)
		require.NoError(t, err, "format %+v", f)
		assert.Equal(t, Header{NTax: 3, NChar: 200}, h)
		assert.Equal(t, entries, got, "format %+v", f)
	}
}
