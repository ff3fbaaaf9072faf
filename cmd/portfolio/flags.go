package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	flag "github.com/spf13/pflag"
)

// defaultAddr is where the preview server listens unless --addr is given.
const defaultAddr = "localhost:8000"

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// buildFlags holds flags for the build command.
type buildFlags struct {
	common  commonFlags
	workers int
	drafts  bool
	watch   bool
}

// serveFlags holds flags for the serve command.
type serveFlags struct {
	common commonFlags
	addr   string
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show per-phase details")
}

// parseBuildFlags parses build command flags and returns positional args.
// Unset flags fall back to PORTFOLIO_* environment variables.
func parseBuildFlags(args []string, env *Environment) (*buildFlags, []string, error) {
	fs := flag.NewFlagSet("build", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	f := &buildFlags{}

	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.BoolVar(&f.drafts, "drafts", false, "include drafts")
	fs.BoolVar(&f.watch, "watch", false, "rebuild when content changes")
	addCommonFlags(fs, &f.common)

	fs.Usage = func() {}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			printBuildUsage(env.Stdout)
			return nil, nil, err
		}
		return nil, nil, usageError(err)
	}

	applyConfigEnv(&f.common, env)
	if !fs.Changed("workers") {
		if v := env.getenv(envWorkers); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				return nil, nil, usageError(fmt.Errorf("%s: %w", envWorkers, err))
			}
			f.workers = n
		}
	}
	if err := validateWorkers(f.workers); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseServeFlags parses serve command flags and returns positional args.
func parseServeFlags(args []string, env *Environment) (*serveFlags, []string, error) {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	f := &serveFlags{}

	fs.StringVar(&f.addr, "addr", defaultAddr, "listen address")
	addCommonFlags(fs, &f.common)

	fs.Usage = func() {}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			printServeUsage(env.Stdout)
			return nil, nil, err
		}
		return nil, nil, usageError(err)
	}

	applyConfigEnv(&f.common, env)
	if !fs.Changed("addr") {
		if v := env.getenv(envAddr); v != "" {
			f.addr = v
		}
	}
	return f, fs.Args(), nil
}

func applyConfigEnv(f *commonFlags, env *Environment) {
	if f.config == "" {
		f.config = env.getenv(envConfig)
	}
}
