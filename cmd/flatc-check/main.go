package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/tobsdb/flatc-go/internal/config"
	"github.com/tobsdb/flatc-go/pkg"
	"github.com/tobsdb/flatc-go/tools/flatc"
)

func main() {
	env, err := config.LoadEnv()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	var exec_path string
	var verbose bool
	flag.StringVar(&exec_path, "flatc", env.Flatc, "Path to flatc. Looked up in $PATH by default")
	flag.BoolVar(&verbose, "v", false, "Log the flatc command")
	flag.Parse()

	if verbose {
		pkg.SetLogLevel(pkg.LogLevelDebug)
	}

	f := flatc.FromEnvPath()
	if exec_path != "" {
		f = flatc.FromPath(exec_path)
	}

	fmt.Printf("Checking %s\n", f.Exec())

	v, err := f.Version()
	if err != nil {
		fmt.Printf("flatc is not usable; %s\n", err.Error())
		os.Exit(1)
	}

	fmt.Printf("flatc checks successful: version %s\n", v)
}
