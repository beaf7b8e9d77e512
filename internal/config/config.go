package config

import (
	"fmt"
	"os"

	env "github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/tobsdb/flatc-go/internal/backends"
	"github.com/tobsdb/flatc-go/pkg"
	"github.com/tobsdb/flatc-go/tools/flatc"
)

const ENV_PREFIX = "FLATC_GEN_"

// Env holds settings for the command line tools that can come from the
// environment. Flags given on the command line win over these.
type Env struct {
	Flatc    string `env:"FLATC" envDefault:""`
	LogLevel string `env:"LOG_LEVEL" envDefault:"error"`
	Stamp    bool   `env:"STAMP" envDefault:"false"`
}

func LoadEnv() (*Env, error) {
	return loadEnv(env.Options{Prefix: ENV_PREFIX})
}

// LoadEnvFrom reads settings from environ instead of the process environment.
func LoadEnvFrom(environ map[string]string) (*Env, error) {
	return loadEnv(env.Options{Prefix: ENV_PREFIX, Environment: environ})
}

func loadEnv(opts env.Options) (*Env, error) {
	var cfg Env
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return nil, err
	}
	if _, err := pkg.ParseLogLevel(cfg.LogLevel); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Job is one flatc invocation in a job file.
type Job struct {
	Lang     string   `yaml:"lang"`
	Inputs   []string `yaml:"inputs"`
	OutDir   string   `yaml:"out_dir"`
	Includes []string `yaml:"includes"`
}

// Args converts the job, filling in the default lang and resolving
// backend aliases. Blank include entries are dropped.
func (j Job) Args() flatc.Args {
	opts := []flatc.ArgsOption{
		flatc.WithInputs(j.Inputs...),
		flatc.WithOutDir(j.OutDir),
		flatc.WithIncludes(pkg.Filter(j.Includes, pkg.NotBlank)...),
	}
	if j.Lang != "" {
		opts = append(opts, flatc.WithLang(backends.Resolve(j.Lang)))
	}
	return flatc.NewArgs(opts...)
}

// File is a job file:
//
//	flatc: /opt/flatbuffers/bin/flatc  # optional, defaults to $PATH lookup
//	jobs:
//	  - lang: rust
//	    inputs: [schemas/monster.fbs]
//	    out_dir: gen/rust
//	    includes: [schemas/common]
type File struct {
	Flatc string `yaml:"flatc"`
	Jobs  []Job  `yaml:"jobs"`
}

func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("Invalid job file: %w", err)
	}
	if len(f.Jobs) == 0 {
		return nil, fmt.Errorf("Invalid job file: no jobs")
	}
	return &f, nil
}

func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}
