// FILE: lixenwraith/unixconfig/io_test.go
package unixconfig

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestWrite tests serialization back to the line grammar
func TestWrite(t *testing.T) {
	cfg := New()
	cfg.AddValues("", "a", "1", "2")
	cfg.AddValue("", "q", `"quoted # kept"`)
	cfg.AddValue("S1", "k", "v")
	cfg.AddValue("S2", "x", "'y'")
	cfg.AddValue("S1", "k", "w")

	t.Run("WithComment", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, cfg.Write(&buf, " generated"))
		expected := "# generated\n" +
			"a=1\na=2\n" +
			"q=\"quoted # kept\"\n" +
			"[S1]\nk=v\nk=w\n" +
			"[S2]\nx='y'\n"
		assert.Equal(t, expected, buf.String())
	})

	t.Run("WithoutComment", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, cfg.Write(&buf, ""))
		assert.True(t, strings.HasPrefix(buf.String(), "a=1\n"))
		assert.Equal(t, buf.String(), cfg.String())
	})

	t.Run("EmptySectionHeaderOnly", func(t *testing.T) {
		c := New()
		c.AddSection("empty")
		assert.Equal(t, "[empty]\n", c.String())
	})

	t.Run("InvalidArguments", func(t *testing.T) {
		err := cfg.Write(nil, "")
		assert.ErrorIs(t, err, ErrInvalidWriteArgument)

		var buf bytes.Buffer
		err = cfg.Write(&buf, "two\nlines")
		assert.ErrorIs(t, err, ErrInvalidWriteArgument)
		assert.Zero(t, buf.Len())
	})

	t.Run("WriterError", func(t *testing.T) {
		boom := errors.New("disk full")
		err := cfg.Write(&failingWriter{err: boom}, "")
		assert.ErrorIs(t, err, boom)
	})
}

type failingWriter struct {
	err error
}

func (w *failingWriter) Write([]byte) (int, error) {
	return 0, w.err
}

// TestRoundTrip tests that structure survives load, write, load
func TestRoundTrip(t *testing.T) {
	tmpDir := t.TempDir()
	src := writeConfigFile(t, tmpDir, "src.cfg", sampleConfig)

	original := New(WithWarningHandler(func(Warning) {}))
	require.NoError(t, original.Push(src))

	out := filepath.Join(tmpDir, "nested", "out.cfg")
	require.NoError(t, original.WriteFile(out, "round trip"))

	info, err := os.Stat(out)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0644), info.Mode().Perm())

	reloaded := New()
	require.NoError(t, reloaded.Push(out))

	assert.Equal(t, original.Sections(), reloaded.Sections())
	assert.Equal(t, original.AllKeys(), reloaded.AllKeys())
	for _, section := range append([]string{""}, original.Sections()...) {
		keys, _ := original.Keys(section)
		for _, key := range keys {
			want, _ := original.Values(section, key)
			got, ok := reloaded.Values(section, key)
			require.True(t, ok, "%s/%s", section, key)
			assert.Equal(t, want, got, "%s/%s", section, key)
		}
	}

	// no temp files left behind
	entries, err := os.ReadDir(filepath.Dir(out))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

// TestClassifyStorePreservesValue tests key=value survival through classify, store and write
func TestClassifyStorePreservesValue(t *testing.T) {
	lines := []string{
		"plain=value",
		"spaced=hello world",
		`dq="a;b#c"`,
		`sq='it is'`,
		"empty=",
		"path=/a/b/c",
	}
	for _, line := range lines {
		t.Run(line, func(t *testing.T) {
			parsed := Classify(line)
			require.Equal(t, LineParameter, parsed.Kind)

			cfg := New()
			cfg.AddValue("", parsed.Key, parsed.Value)
			written := strings.TrimSuffix(cfg.String(), "\n")

			again := Classify(written)
			assert.Equal(t, parsed.Key, again.Key)
			assert.Equal(t, parsed.Value, again.Value)
		})
	}
}
