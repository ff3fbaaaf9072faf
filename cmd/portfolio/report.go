package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/matiasglessi/portfolio"
	"github.com/matiasglessi/portfolio/internal/config"
	"github.com/matiasglessi/portfolio/internal/emit"
	"github.com/matiasglessi/portfolio/internal/hints"
)

// listenError carries the address a preview server failed to bind.
type listenError struct {
	Addr string
	Err  error
}

func (e *listenError) Error() string {
	return fmt.Sprintf("listening on %s: %v", e.Addr, e.Err)
}

func (e *listenError) Unwrap() []error { return []error{ErrListen, e.Err} }

// printError writes "error: <msg>" followed by any matching hints.
func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "error: %v%s\n", err, hintFor(err))
}

// hintFor picks the hint matching the most specific error kind.
func hintFor(err error) string {
	var (
		loadErr   *portfolio.LoadError
		cfgErr    *portfolio.ConfigError
		listenErr *listenError
	)
	switch {
	case errors.As(err, &loadErr):
		return hints.ForFrontMatter(loadErr.Reason)
	case errors.Is(err, config.ErrConfigNotFound):
		return hints.ForConfigNotFound(config.CandidatePaths(defaultConfigName))
	case errors.As(err, &cfgErr) && cfgErr.Field == "highlightStyle":
		return hints.ForHighlightStyle(config.HighlightStyles())
	case errors.Is(err, emit.ErrUnsafeOutput), errors.Is(err, os.ErrPermission):
		return hints.ForOutputDirectory()
	case errors.As(err, &listenErr):
		return hints.ForServeAddress(listenErr.Addr)
	}
	return ""
}
