package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/radovskyb/watcher"

	"github.com/matiasglessi/portfolio"
	"github.com/matiasglessi/portfolio/internal/config"
	"github.com/matiasglessi/portfolio/internal/fileutil"
	"github.com/matiasglessi/portfolio/internal/logfields"
)

const (
	// defaultConfigName is looked up in the content root, the working
	// directory and the user config directory.
	defaultConfigName = "site"

	// maxWorkers mirrors the library cap so bad input fails as usage.
	maxWorkers = portfolio.MaxWorkers

	// watchInterval is how often the watcher polls for changes.
	watchInterval = 200 * time.Millisecond
)

// runBuild generates the site once, then keeps rebuilding with --watch.
func runBuild(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseBuildFlags(args, env)
	if err != nil {
		return err
	}
	if len(positional) != 2 {
		return usageError(fmt.Errorf("build needs <content> and <output>, got %d argument(s)", len(positional)))
	}
	contentRoot, outRoot := positional[0], positional[1]
	logger := newLogger(env.Stderr, flags.common)

	configPath, err := resolveConfigPath(flags.common.config, contentRoot)
	if err != nil {
		return err
	}
	logger.Debug("using config", logfields.Path(configPath))

	build := func() error {
		cfg, err := config.LoadConfig(asPath(configPath))
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		b, err := portfolio.New(cfg,
			portfolio.WithLogger(logger),
			portfolio.WithWorkers(flags.workers),
			portfolio.WithDrafts(flags.drafts),
		)
		if err != nil {
			return err
		}
		report, err := b.Build(ctx, contentRoot, outRoot)
		if err != nil {
			return err
		}
		if !flags.common.quiet {
			fmt.Fprintf(env.Stdout, "Built %d pages (%d posts, %d tags) into %s in %s\n",
				report.Files, report.Posts, report.Tags, report.Output, report.Duration.Round(time.Millisecond))
		}
		return nil
	}

	err = build()
	if !flags.watch {
		return err
	}
	if err != nil {
		printError(env.Stderr, err)
	}

	w, err := newContentWatcher(contentRoot, outRoot, configPath)
	if err != nil {
		return err
	}
	logger.Info("watching for changes", logfields.Path(contentRoot))
	return watchLoop(ctx, w, logger, func() {
		if err := build(); err != nil {
			printError(env.Stderr, err)
		}
	})
}

// resolveConfigPath finds the config file for name. An empty name searches
// the content root before the working and user config directories.
func resolveConfigPath(name, contentRoot string) (string, error) {
	if name != "" && (fileutil.IsFilePath(name) || hasYAMLExt(name)) {
		return name, nil
	}

	var tried []string
	if name == "" {
		name = defaultConfigName
		for _, ext := range []string{".yaml", ".yml"} {
			tried = append(tried, filepath.Join(contentRoot, name+ext))
		}
	}
	tried = append(tried, config.CandidatePaths(name)...)

	for _, p := range tried {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", config.ErrConfigNotFound, strings.Join(tried, ", "))
}

func hasYAMLExt(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".yaml" || ext == ".yml"
}

// asPath makes a bare file name read as a path rather than a config name.
func asPath(p string) string {
	if fileutil.IsFilePath(p) {
		return p
	}
	return "." + string(filepath.Separator) + p
}

// newContentWatcher watches the content root and the config file. An output
// directory inside the content root is ignored so rebuilds do not retrigger.
func newContentWatcher(contentRoot, outRoot, configPath string) (*watcher.Watcher, error) {
	w := watcher.New()
	w.SetMaxEvents(1)
	w.IgnoreHiddenFiles(true)
	w.FilterOps(watcher.Create, watcher.Write, watcher.Remove, watcher.Rename, watcher.Move)

	if inside(contentRoot, outRoot) {
		if err := w.Ignore(outRoot); err != nil {
			return nil, fmt.Errorf("ignoring output directory: %w", err)
		}
	}
	if err := w.AddRecursive(contentRoot); err != nil {
		return nil, fmt.Errorf("watching %s: %w", contentRoot, err)
	}
	if !inside(contentRoot, configPath) {
		if err := w.Add(configPath); err != nil {
			return nil, fmt.Errorf("watching %s: %w", configPath, err)
		}
	}
	return w, nil
}

// watchLoop calls rebuild after each change until ctx is cancelled.
func watchLoop(ctx context.Context, w *watcher.Watcher, logger *slog.Logger, rebuild func()) error {
	go func() {
		w.Wait()
		for {
			select {
			case event := <-w.Event:
				logger.Info("change detected", logfields.Event(event.Op.String()), logfields.Path(event.Path))
				rebuild()
			case err := <-w.Error:
				logger.Error("watcher", logfields.Error(err))
			case <-w.Closed:
				return
			case <-ctx.Done():
				w.Close()
				return
			}
		}
	}()

	if err := w.Start(watchInterval); err != nil && !errors.Is(err, watcher.ErrWatcherRunning) {
		return err
	}
	return nil
}

// inside reports whether p is root or below it.
func inside(root, p string) bool {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return false
	}
	absPath, err := filepath.Abs(p)
	if err != nil {
		return false
	}
	return absPath == absRoot || strings.HasPrefix(absPath, absRoot+string(os.PathSeparator))
}

// validateWorkers rejects worker counts outside [0, maxWorkers].
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means auto)", ErrInvalidWorkerCount, n)
	}
	if n > maxWorkers {
		return fmt.Errorf("%w: %d (maximum is %d)", ErrInvalidWorkerCount, n, maxWorkers)
	}
	return nil
}
