package backends_test

import (
	"path/filepath"
	"sort"
	"testing"

	"github.com/tobsdb/flatc-go/internal/backends"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

func TestLookup(t *testing.T) {
	t.Run("by name", func(t *testing.T) {
		b, ok := backends.Lookup("rust")
		assert.Assert(t, ok)
		assert.Equal(t, b.Name, "rust")
		assert.Equal(t, b.Suffix, "_generated.rs")
	})

	t.Run("by alias", func(t *testing.T) {
		b, ok := backends.Lookup("rs")
		assert.Assert(t, ok)
		assert.Equal(t, b.Name, "rust")

		b, ok = backends.Lookup("golang")
		assert.Assert(t, ok)
		assert.Equal(t, b.Name, "go")
	})

	t.Run("unknown", func(t *testing.T) {
		_, ok := backends.Lookup("cobol")
		assert.Assert(t, !ok)
	})
}

func TestResolve(t *testing.T) {
	assert.Equal(t, backends.Resolve("typescript"), "ts")
	assert.Equal(t, backends.Resolve("c++"), "cpp")
	assert.Equal(t, backends.Resolve("rust"), "rust")
	assert.Equal(t, backends.Resolve("cobol"), "cobol")
}

func TestNames(t *testing.T) {
	names := backends.Names()
	assert.Assert(t, sort.StringsAreSorted(names))
	assert.Assert(t, is.Contains(names, "rust"))
	assert.Assert(t, is.Contains(names, "cpp"))
	assert.Equal(t, len(names), len(backends.All()))
}

func TestGeneratedFile(t *testing.T) {
	t.Run("rust", func(t *testing.T) {
		res, err := backends.GeneratedFile("rust", filepath.Join("schemas", "test.fbs"), "out")
		assert.NilError(t, err)
		assert.Equal(t, res, filepath.Join("out", "test_generated.rs"))
	})

	t.Run("alias", func(t *testing.T) {
		res, err := backends.GeneratedFile("c++", "monster.fbs", "gen")
		assert.NilError(t, err)
		assert.Equal(t, res, filepath.Join("gen", "monster_generated.h"))
	})

	t.Run("one file per type", func(t *testing.T) {
		_, err := backends.GeneratedFile("go", "monster.fbs", "gen")
		assert.ErrorContains(t, err, "go writes one file per type")
	})

	t.Run("unknown", func(t *testing.T) {
		_, err := backends.GeneratedFile("cobol", "monster.fbs", "gen")
		assert.ErrorContains(t, err, "Unsupported Language: cobol")
	})
}
