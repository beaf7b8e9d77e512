package backends

import (
	"fmt"
	"path/filepath"
	"strings"

	sorted "github.com/tobshub/go-sortedmap"
)

// Backend is one of flatc's code generators, selected with `--<Name>`.
type Backend struct {
	Name    string
	Aliases []string
	// Suffix replaces ".fbs" on the schema's base name to give the single
	// file flatc writes. Empty for generators that write one file per type.
	Suffix string
}

// OneFile reports whether the backend writes a single file per schema.
func (b Backend) OneFile() bool { return b.Suffix != "" }

var known = []Backend{
	{Name: "binary", Aliases: []string{"b"}, Suffix: ".bin"},
	{Name: "cpp", Aliases: []string{"c", "c++"}, Suffix: "_generated.h"},
	{Name: "csharp", Aliases: []string{"n", "cs"}},
	{Name: "dart", Aliases: []string{"d"}, Suffix: "_generated.dart"},
	{Name: "go", Aliases: []string{"g", "golang"}},
	{Name: "java", Aliases: []string{"j"}},
	{Name: "jsonschema", Suffix: ".schema.json"},
	{Name: "kotlin"},
	{Name: "lobster", Suffix: "_generated.lobster"},
	{Name: "lua", Aliases: []string{"l"}},
	{Name: "nim"},
	{Name: "php"},
	{Name: "python", Aliases: []string{"p", "py"}},
	{Name: "rust", Aliases: []string{"r", "rs"}, Suffix: "_generated.rs"},
	{Name: "swift", Suffix: "_generated.swift"},
	{Name: "ts", Aliases: []string{"typescript"}},
}

func backendsComparisonFunc(a, b Backend) bool { return a.Name < b.Name }

var (
	catalogue = sorted.New[string, Backend](len(known), backendsComparisonFunc)
	aliases   = map[string]string{}
)

func init() {
	for _, b := range known {
		if !catalogue.Insert(b.Name, b) {
			panic(fmt.Sprintf("duplicate flatc backend %s", b.Name))
		}
		for _, alias := range b.Aliases {
			aliases[alias] = b.Name
		}
	}
}

// Lookup finds a backend by name or alias.
func Lookup(name string) (Backend, bool) {
	if canonical, ok := aliases[name]; ok {
		name = canonical
	}
	return catalogue.Get(name)
}

// Resolve maps an alias to the backend name flatc expects. Unknown names are
// returned as they are; flatc may know generators this package doesn't.
func Resolve(name string) string {
	if b, ok := Lookup(name); ok {
		return b.Name
	}
	return name
}

// All known backends ordered by name.
func All() []Backend {
	res := []Backend{}
	iterCh, err := catalogue.IterCh()
	if err != nil {
		return res
	}
	for rec := range iterCh.Records() {
		res = append(res, rec.Val)
	}
	return res
}

func Names() []string {
	all := All()
	res := make([]string, 0, len(all))
	for _, b := range all {
		res = append(res, b.Name)
	}
	return res
}

// GeneratedFile returns where flatc will write the output for input when
// run with `--<lang> -o <outDir>`.
func GeneratedFile(lang, input, outDir string) (string, error) {
	b, ok := Lookup(lang)
	if !ok {
		return "", fmt.Errorf("Unsupported Language: %s", lang)
	}
	if !b.OneFile() {
		return "", fmt.Errorf("%s writes one file per type, not per schema", b.Name)
	}

	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	return filepath.Join(outDir, base+b.Suffix), nil
}
