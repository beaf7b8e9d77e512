// Package stamp remembers what a flatc run was given so an unchanged job can
// be skipped the next time the build runs.
package stamp

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"hash"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/crypto/blake2b"
)

const STAMP_FILE = ".flatc-stamp"

func Path(out_dir string) string { return filepath.Join(out_dir, STAMP_FILE) }

func writeFramed(h hash.Hash, b []byte) {
	var size [8]byte
	binary.BigEndian.PutUint64(size[:], uint64(len(b)))
	h.Write(size[:])
	h.Write(b)
}

// Fingerprint hashes the flatc command line together with the contents of
// every input. Includes are not read: a change to an included schema that
// is not also an input needs an explicit rebuild.
func Fingerprint(argv []string, inputs []string) (string, error) {
	h, err := blake2b.New256(nil)
	if err != nil {
		return "", err
	}

	writeFramed(h, []byte(fmt.Sprint(len(argv))))
	for _, arg := range argv {
		writeFramed(h, []byte(arg))
	}

	for _, input := range inputs {
		content, err := os.ReadFile(input)
		if err != nil {
			return "", err
		}
		writeFramed(h, []byte(input))
		writeFramed(h, content)
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}

// UpToDate reports whether out_dir holds a stamp matching fingerprint.
// A missing or unreadable stamp is never up to date.
func UpToDate(out_dir, fingerprint string) bool {
	data, err := os.ReadFile(Path(out_dir))
	if err != nil {
		return false
	}
	return strings.TrimSpace(string(data)) == fingerprint
}

func Write(out_dir, fingerprint string) error {
	if err := os.MkdirAll(out_dir, 0755); err != nil {
		return err
	}
	return os.WriteFile(Path(out_dir), []byte(fingerprint+"\n"), 0644)
}
