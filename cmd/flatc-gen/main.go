package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/tobsdb/flatc-go/internal/backends"
	"github.com/tobsdb/flatc-go/internal/config"
	"github.com/tobsdb/flatc-go/internal/stamp"
	"github.com/tobsdb/flatc-go/pkg"
	"github.com/tobsdb/flatc-go/tools/flatc"
)

type stringList []string

func (l *stringList) String() string { return strings.Join(*l, ",") }

func (l *stringList) Set(v string) error {
	*l = append(*l, v)
	return nil
}

var errUsage = errors.New("usage")

func main() {
	err := run(os.Args[1:], os.Stdout)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		if !errors.Is(err, errUsage) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func run(argv []string, stdout io.Writer) error {
	env, err := config.LoadEnv()
	if err != nil {
		return err
	}

	var exec_path, lang, out, config_path string
	var includes stringList
	var use_stamp, list, verbose, quiet bool

	fl := flag.NewFlagSet("flatc-gen", flag.ContinueOnError)
	fl.StringVar(&exec_path, "flatc", env.Flatc, "Path to flatc. Looked up in $PATH by default")
	fl.StringVar(&lang, "lang", flatc.DEFAULT_LANG, "Output language, see -list")
	fl.StringVar(&out, "o", "", "Output directory")
	fl.Var(&includes, "I", "Include search path. May be repeated")
	fl.StringVar(&config_path, "config", "", "YAML job file. Replaces -lang, -o, -I and inputs")
	fl.BoolVar(&use_stamp, "stamp", env.Stamp, "Skip jobs whose inputs and arguments have not changed")
	fl.BoolVar(&list, "list", false, "List known output languages and exit")
	fl.BoolVar(&verbose, "v", false, "Log every flatc command")
	fl.BoolVar(&quiet, "q", false, "Log nothing")
	fl.Usage = func() {
		fmt.Fprintln(fl.Output(), "Usage: flatc-gen [flags] input.fbs...\n       flatc-gen [flags] -config jobs.yaml")
		fl.PrintDefaults()
	}

	if err := fl.Parse(argv); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		// the flag set has already reported it
		return errUsage
	}

	level, _ := pkg.ParseLogLevel(env.LogLevel)
	if verbose {
		level = pkg.LogLevelDebug
	} else if quiet {
		level = pkg.LogLevelNone
	}
	pkg.SetLogLevel(level)

	if list {
		return listBackends(stdout)
	}

	var jobs []config.Job
	if config_path != "" {
		file, err := config.Load(config_path)
		if err != nil {
			return err
		}
		if exec_path == env.Flatc && file.Flatc != "" {
			exec_path = file.Flatc
		}
		jobs = file.Jobs
	} else {
		if fl.NArg() == 0 || out == "" {
			fl.Usage()
			return errUsage
		}
		jobs = []config.Job{{Lang: lang, Inputs: fl.Args(), OutDir: out, Includes: includes}}
	}

	f := flatc.FromEnvPath()
	if exec_path != "" {
		f = flatc.FromPath(exec_path)
	}

	v, err := f.Version()
	if err != nil {
		return err
	}
	pkg.InfoLog("using", f.Exec(), "version", v)

	for _, job := range jobs {
		if err := runJob(f, job.Args(), use_stamp); err != nil {
			return err
		}
	}
	return nil
}

func runJob(f *flatc.Flatc, args flatc.Args, use_stamp bool) error {
	if _, ok := backends.Lookup(args.Lang); !ok {
		pkg.WarnLog("unknown output language", args.Lang, "- passing it to flatc as is")
	}

	if !use_stamp {
		return f.Run(args)
	}

	argv, err := flatc.BuildArgs(args)
	if err != nil {
		return err
	}
	fingerprint, err := stamp.Fingerprint(argv, args.Inputs)
	if err != nil {
		return err
	}
	if stamp.UpToDate(args.OutDir, fingerprint) {
		pkg.InfoLog(args.OutDir, "is up to date")
		return nil
	}

	if err := f.Run(args); err != nil {
		return err
	}
	return stamp.Write(args.OutDir, fingerprint)
}

func listBackends(w io.Writer) error {
	for _, b := range backends.All() {
		output := "one file per type"
		if b.OneFile() {
			output = "<schema>" + b.Suffix
		}
		aliases := ""
		if len(b.Aliases) > 0 {
			aliases = " (" + strings.Join(b.Aliases, ", ") + ")"
		}
		if _, err := fmt.Fprintf(w, "%s%s: %s\n", b.Name, aliases, output); err != nil {
			return err
		}
	}
	return nil
}
