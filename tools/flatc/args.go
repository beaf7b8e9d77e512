package flatc

import (
	"fmt"
	"unicode/utf8"

	"github.com/tobsdb/flatc-go/pkg"
)

const DEFAULT_LANG = "rust"

// Args are the arguments passed to flatc.
//
//	args := flatc.Args{
//		Lang:   "rust",
//		Inputs: []string{"./src/input.fbs"},
//		OutDir: "./flatbuffers-helpers-for-rust/",
//	}
//
// A zero Args has an empty Lang; start from DefaultArgs or NewArgs to get
// the documented defaults. Nothing is validated until the args are built.
type Args struct {
	// Programming language to generate helpers for ("rust" by default).
	Lang string
	// .fbs files to compile. Required to be non-empty.
	Inputs []string
	// Output directory for the generated helpers (`-o PATH`). Required.
	OutDir string
	// Include search paths (`-I PATH`).
	Includes []string
}

func DefaultArgs() Args {
	return Args{Lang: DEFAULT_LANG}
}

type ArgsOption func(*Args)

func WithLang(lang string) ArgsOption {
	return func(a *Args) { a.Lang = lang }
}

func WithInputs(inputs ...string) ArgsOption {
	return func(a *Args) { a.Inputs = pkg.Clone(inputs) }
}

func WithOutDir(dir string) ArgsOption {
	return func(a *Args) { a.OutDir = dir }
}

func WithIncludes(includes ...string) ArgsOption {
	return func(a *Args) { a.Includes = pkg.Clone(includes) }
}

// NewArgs applies opts over DefaultArgs.
func NewArgs(opts ...ArgsOption) Args {
	a := DefaultArgs()
	for _, opt := range opts {
		opt(&a)
	}
	return a
}

// BuildArgs translates args into the command line flatc expects:
//
//	--<lang> -o <out dir> <input>... -I<include>...
//
// Only the out dir has to be valid UTF-8; inputs and includes are passed on
// untouched.
func BuildArgs(args Args) ([]string, error) {
	if args.OutDir == "" {
		return nil, fmt.Errorf("%w: out dir is empty", ERR_CONFIG)
	}

	if args.Lang == "" {
		return nil, fmt.Errorf("%w: lang is empty", ERR_CONFIG)
	}

	if !utf8.ValidString(args.OutDir) {
		return nil, fmt.Errorf("%w: out dir %q", ERR_ENCODING, args.OutDir)
	}

	if len(args.Inputs) == 0 {
		return nil, fmt.Errorf("%w: input is empty", ERR_CONFIG)
	}

	cmd_args := make([]string, 0, 3+len(args.Inputs)+len(args.Includes))
	cmd_args = append(cmd_args, "--"+args.Lang, "-o", args.OutDir)
	cmd_args = append(cmd_args, args.Inputs...)
	for _, include := range args.Includes {
		cmd_args = append(cmd_args, "-I"+include)
	}

	return cmd_args, nil
}
