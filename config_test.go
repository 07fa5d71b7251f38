// FILE: lixenwraith/unixconfig/config_test.go
package unixconfig

import (
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConfigCreation tests various config creation patterns
func TestConfigCreation(t *testing.T) {
	t.Run("NewIsEmpty", func(t *testing.T) {
		cfg := New()
		require.NotNil(t, cfg)
		assert.True(t, cfg.IsEmpty())
		assert.False(t, cfg.HasSections())
		assert.False(t, cfg.SectionExists(""))
		assert.Empty(t, cfg.Sections())
		assert.Empty(t, cfg.AllKeys())
	})

	t.Run("AddValueMakesNonEmpty", func(t *testing.T) {
		cfg := New()
		cfg.AddValue("", "key", "value")
		assert.False(t, cfg.IsEmpty())
		assert.True(t, cfg.SectionExists(""))
		assert.True(t, cfg.SectionExists(RootSection))
	})

	t.Run("WithLogger", func(t *testing.T) {
		var out strings.Builder
		logger := slog.New(slog.NewTextHandler(&out, nil))
		cfg := New(WithLogger(logger))

		require.NoError(t, cfg.LoadReader(strings.NewReader("garbage line\n"), "inline", PolicyPush))
		assert.Contains(t, out.String(), "unrecognized config line")
		assert.Contains(t, out.String(), "source=inline")
		assert.Contains(t, out.String(), "line=1")
	})

	t.Run("RootSectionName", func(t *testing.T) {
		assert.Equal(t, RootSection, New().RootSectionName())
	})
}

// TestRootCreation tests lazy creation of the root section
func TestRootCreation(t *testing.T) {
	t.Run("NamedAddDoesNotCreateRoot", func(t *testing.T) {
		cfg := New()
		cfg.AddValue("server", "port", "80")
		assert.False(t, cfg.SectionExists(""))
		assert.True(t, cfg.SectionExists("server"))
	})

	t.Run("LoadCreatesRoot", func(t *testing.T) {
		cfg := New()
		require.NoError(t, cfg.LoadReader(strings.NewReader(""), "empty", PolicyPush))
		assert.True(t, cfg.SectionExists(""))
		assert.True(t, cfg.IsEmpty())
		assert.False(t, cfg.HasKeys(""))
	})

	t.Run("AddSectionRoot", func(t *testing.T) {
		cfg := New()
		cfg.AddSection("")
		assert.True(t, cfg.SectionExists(RootSection))
		assert.False(t, cfg.HasSections())
	})
}

// TestSectionsAndKeys tests listing order and deduplication
func TestSectionsAndKeys(t *testing.T) {
	cfg := New()
	cfg.AddValue("", "a", "1")
	cfg.AddValue("", "b", "1")
	cfg.AddValue("s1", "b", "2")
	cfg.AddValue("s1", "c", "2")
	cfg.AddValue("s2", "d", "3")
	cfg.AddValue("s2", "a", "3")
	cfg.AddValue("s1", "b", "again")
	cfg.AddSection("empty")

	t.Run("Sections", func(t *testing.T) {
		assert.Equal(t, []string{"s1", "s2", "empty"}, cfg.Sections())
		assert.True(t, cfg.HasSections())
	})

	t.Run("Keys", func(t *testing.T) {
		keys, ok := cfg.Keys("s1")
		require.True(t, ok)
		assert.Equal(t, []string{"b", "c"}, keys)

		keys, ok = cfg.Keys("")
		require.True(t, ok)
		assert.Equal(t, []string{"a", "b"}, keys)

		keys, ok = cfg.Keys("empty")
		require.True(t, ok)
		assert.Empty(t, keys)

		_, ok = cfg.Keys("missing")
		assert.False(t, ok)
	})

	t.Run("MergedKeys", func(t *testing.T) {
		assert.Equal(t, []string{"a", "b", "c"}, cfg.MergedKeys("s1"))
		assert.Equal(t, []string{"a", "b", "d"}, cfg.MergedKeys("s2"))
		assert.Equal(t, []string{"a", "b"}, cfg.MergedKeys(""))
		assert.Equal(t, []string{"a", "b"}, cfg.MergedKeys("missing"))
	})

	t.Run("AllKeys", func(t *testing.T) {
		assert.Equal(t, []string{"a", "b", "c", "d"}, cfg.AllKeys())
	})

	t.Run("HasKeys", func(t *testing.T) {
		assert.True(t, cfg.HasKeys("s1"))
		assert.False(t, cfg.HasKeys("empty"))
		assert.False(t, cfg.HasKeys("missing"))
	})
}

// TestIsEmpty tests that empty sections do not count as content
func TestIsEmpty(t *testing.T) {
	cfg := New()
	cfg.AddSection("a")
	cfg.AddSection("")
	assert.True(t, cfg.IsEmpty())

	cfg.AddValue("a", "k", "v")
	assert.False(t, cfg.IsEmpty())
}

// TestKeyExists tests direct and global key existence
func TestKeyExists(t *testing.T) {
	cfg := New()
	cfg.AddValue("", "x", "root")
	cfg.AddValue("S", "y", "own")

	assert.True(t, cfg.KeyExists("S", "y"))
	assert.False(t, cfg.KeyExists("S", "x"))
	assert.True(t, cfg.Global().KeyExists("S", "x"))
	assert.True(t, cfg.Global().KeyExists("missing", "x"))
	assert.False(t, cfg.Global().KeyExists("S", "z"))
	assert.True(t, cfg.KeyExists("", "x"))
	assert.True(t, cfg.KeyExists(RootSection, "x"))
}
