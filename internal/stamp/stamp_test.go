package stamp_test

import (
	"os"
	"testing"

	"github.com/tobsdb/flatc-go/internal/stamp"
	"gotest.tools/v3/assert"
	"gotest.tools/v3/fs"
)

const schema = "table Test { text: string; } root_type Test;"

func TestFingerprint(t *testing.T) {
	dir := fs.NewDir(t, "stamp", fs.WithFile("test.fbs", schema))
	defer dir.Remove()

	input := dir.Join("test.fbs")
	argv := []string{"--rust", "-o", "out", input}

	a, err := stamp.Fingerprint(argv, []string{input})
	assert.NilError(t, err)
	assert.Equal(t, len(a), 64)

	t.Run("stable", func(t *testing.T) {
		b, err := stamp.Fingerprint(argv, []string{input})
		assert.NilError(t, err)
		assert.Equal(t, a, b)
	})

	t.Run("argv changes", func(t *testing.T) {
		b, err := stamp.Fingerprint([]string{"--cpp", "-o", "out", input}, []string{input})
		assert.NilError(t, err)
		assert.Assert(t, a != b)
	})

	t.Run("token boundaries matter", func(t *testing.T) {
		x, err := stamp.Fingerprint([]string{"ab", "c"}, nil)
		assert.NilError(t, err)
		y, err := stamp.Fingerprint([]string{"a", "bc"}, nil)
		assert.NilError(t, err)
		assert.Assert(t, x != y)
	})

	t.Run("content changes", func(t *testing.T) {
		other := fs.NewDir(t, "stamp", fs.WithFile("test.fbs", schema+"\n// edited"))
		defer other.Remove()

		b, err := stamp.Fingerprint(argv, []string{other.Join("test.fbs")})
		assert.NilError(t, err)
		assert.Assert(t, a != b)
	})

	t.Run("missing input", func(t *testing.T) {
		_, err := stamp.Fingerprint(argv, []string{dir.Join("nope.fbs")})
		assert.Assert(t, os.IsNotExist(err))
	})
}

func TestUpToDate(t *testing.T) {
	dir := fs.NewDir(t, "stamp")
	defer dir.Remove()
	out := dir.Join("gen", "rust")

	assert.Assert(t, !stamp.UpToDate(out, "abc"))

	assert.NilError(t, stamp.Write(out, "abc"))
	assert.Assert(t, stamp.UpToDate(out, "abc"))
	assert.Assert(t, !stamp.UpToDate(out, "abd"))

	data, err := os.ReadFile(stamp.Path(out))
	assert.NilError(t, err)
	assert.Equal(t, string(data), "abc\n")
}
