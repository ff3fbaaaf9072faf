// Package emit writes the composed site to disk.
//
// Output is assembled in a staging directory next to the output root and
// swapped into place only when every file was written, so a failed build
// leaves the previous output untouched.
package emit

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/otiai10/copy"
	"golang.org/x/sync/errgroup"

	"github.com/matiasglessi/portfolio/internal/fileutil"
)

const indexFile = "index.html"

// Sentinel errors for output handling.
var (
	ErrUnsafeOutput = errors.New("emit: refusing to replace output directory")
	ErrStaticDir    = errors.New("emit: static directory not found")
	ErrInvalidPath  = errors.New("emit: invalid site path")
)

// File is an extra file written verbatim, such as a stylesheet or the feed.
type File struct {
	Path string // slash path relative to the output root
	Data []byte
}

// Site is everything one build publishes.
type Site struct {
	Pages      []Rendered
	Files      []File
	StaticDirs []string // contents copied to the output root before pages
	Workers    int      // concurrent writes; values below 1 mean 1
}

// Emit writes s to outRoot, replacing its previous contents.
func Emit(ctx context.Context, outRoot string, s Site) (err error) {
	out, err := outputRoot(outRoot)
	if err != nil {
		return err
	}
	for _, dir := range s.StaticDirs {
		if !fileutil.DirExists(dir) {
			return fmt.Errorf("%w: %s", ErrStaticDir, dir)
		}
	}

	parent := filepath.Dir(out)
	if err := os.MkdirAll(parent, 0o750); err != nil {
		return fmt.Errorf("creating %s: %w", parent, err)
	}
	staging, err := os.MkdirTemp(parent, "."+filepath.Base(out)+".staging-")
	if err != nil {
		return fmt.Errorf("creating staging directory: %w", err)
	}
	defer func() {
		if err != nil {
			_ = os.RemoveAll(staging)
		}
	}()

	if err := copyStatic(s.StaticDirs, staging, out); err != nil {
		return err
	}
	if err := writeAll(ctx, staging, s); err != nil {
		return err
	}
	// #nosec G302 -- published sites are world-readable
	if err := os.Chmod(staging, 0o755); err != nil {
		return fmt.Errorf("setting output permissions: %w", err)
	}
	return swap(staging, out)
}

// outputRoot cleans outRoot and rejects filesystem roots.
func outputRoot(outRoot string) (string, error) {
	if strings.TrimSpace(outRoot) == "" {
		return "", fileutil.ErrEmptyPath
	}
	out, err := filepath.Abs(outRoot)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", outRoot, err)
	}
	if filepath.Dir(out) == out {
		return "", fmt.Errorf("%w: %s is a filesystem root", ErrUnsafeOutput, out)
	}
	if info, err := os.Stat(out); err == nil && !info.IsDir() {
		return "", fmt.Errorf("%w: %s is not a directory", ErrUnsafeOutput, out)
	}
	return out, nil
}

// copyStatic copies the contents of each dir into dest, in order. Later
// dirs override earlier ones; dotfiles are skipped and symlinks followed.
// The absolute path out is never copied, so a static dir holding the output
// root does not republish the previous build.
func copyStatic(dirs []string, dest, out string) error {
	for _, dir := range dirs {
		root := filepath.Clean(dir)
		opts := copy.Options{
			Skip: func(info os.FileInfo, src, _ string) (bool, error) {
				if filepath.Clean(src) == root {
					return false, nil
				}
				if strings.HasPrefix(info.Name(), ".") {
					return true, nil
				}
				abs, err := filepath.Abs(src)
				return err == nil && abs == out, nil
			},
			OnSymlink: func(string) copy.SymlinkAction { return copy.Deep },
		}
		if err := copy.Copy(root, dest, opts); err != nil {
			return fmt.Errorf("copying static files from %s: %w", dir, err)
		}
	}
	return nil
}

// writeAll writes pages and files with at most s.Workers writes in flight.
func writeAll(ctx context.Context, root string, s Site) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(s.Workers, 1))

	for _, p := range s.Pages {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			dir, err := sitePath(root, p.Path)
			if err != nil {
				return err
			}
			return fileutil.WriteFile(filepath.Join(dir, indexFile), p.HTML)
		})
	}
	for _, f := range s.Files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if f.Path == "" {
				return fmt.Errorf("%w: empty file path", ErrInvalidPath)
			}
			target, err := sitePath(root, f.Path)
			if err != nil {
				return err
			}
			return fileutil.WriteFile(target, f.Data)
		})
	}
	return g.Wait()
}

// sitePath joins a slash path below root, rejecting paths that escape it.
func sitePath(root, p string) (string, error) {
	clean := filepath.Clean(filepath.FromSlash(strings.TrimPrefix(p, "/")))
	if clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) || filepath.IsAbs(clean) {
		return "", fmt.Errorf("%w: %q", ErrInvalidPath, p)
	}
	return filepath.Join(root, clean), nil
}

// swap moves staging into out. An existing out is set aside first and
// restored if the final rename fails.
func swap(staging, out string) error {
	if _, err := os.Stat(out); errors.Is(err, os.ErrNotExist) {
		return os.Rename(staging, out)
	}

	old := staging + ".old"
	if err := os.Rename(out, old); err != nil {
		return fmt.Errorf("moving previous output aside: %w", err)
	}
	if err := os.Rename(staging, out); err != nil {
		if restoreErr := os.Rename(old, out); restoreErr != nil {
			return errors.Join(fmt.Errorf("replacing output: %w", err), restoreErr)
		}
		return fmt.Errorf("replacing output: %w", err)
	}
	if err := os.RemoveAll(old); err != nil {
		return fmt.Errorf("removing previous output: %w", err)
	}
	return nil
}
