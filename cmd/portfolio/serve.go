package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/matiasglessi/portfolio/internal/config"
	"github.com/matiasglessi/portfolio/internal/fileutil"
	"github.com/matiasglessi/portfolio/internal/logfields"
)

// shutdownTimeout bounds how long in-flight requests may finish on Ctrl+C.
const shutdownTimeout = 5 * time.Second

// runServe serves a generated site until ctx is cancelled.
func runServe(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseServeFlags(args, env)
	if err != nil {
		return err
	}
	if len(positional) != 1 {
		return usageError(fmt.Errorf("serve needs <dir>, got %d argument(s)", len(positional)))
	}
	dir := positional[0]
	if !fileutil.DirExists(dir) {
		return fmt.Errorf("serving %s: %w", dir, os.ErrNotExist)
	}
	logger := newLogger(env.Stderr, flags.common)

	basePath := "/"
	if flags.common.config != "" {
		path, err := resolveConfigPath(flags.common.config, dir)
		if err != nil {
			return err
		}
		cfg, err := config.LoadConfig(asPath(path))
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		basePath = cfg.BasePath()
	}

	ln, err := net.Listen("tcp", flags.addr)
	if err != nil {
		return &listenError{Addr: flags.addr, Err: err}
	}

	e := newServer(dir, basePath, logger)
	e.Listener = ln

	errCh := make(chan error, 1)
	go func() { errCh <- e.Start(flags.addr) }()

	if !flags.common.quiet {
		fmt.Fprintf(env.Stdout, "Serving %s at http://%s%s (Ctrl+C to stop)\n", dir, ln.Addr(), basePath)
	}
	logger.Info("preview server started", logfields.Addr(ln.Addr().String()), logfields.Path(dir))

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	logger.Info("preview server stopped")
	return nil
}

// newServer builds the preview handler: dir is served below basePath, and
// directories answer with their index.html.
func newServer(dir, basePath string, logger *slog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:  true,
		LogURI:     true,
		LogMethod:  true,
		LogLatency: true,
		LogValuesFunc: func(_ echo.Context, v middleware.RequestLoggerValues) error {
			logger.Debug("request",
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				logfields.DurationMS(float64(v.Latency.Microseconds())/1000))
			return nil
		},
	}))

	// Group routes end in "/*", so the middleware resolves files from the
	// wildcard and the prefix never reaches the filesystem.
	static := middleware.StaticWithConfig(middleware.StaticConfig{
		Root:  dir,
		Index: "index.html",
	})
	if basePath == "/" {
		e.Use(static)
		return e
	}

	redirect := func(c echo.Context) error {
		return c.Redirect(http.StatusFound, basePath)
	}
	prefix := strings.TrimSuffix(basePath, "/")
	e.GET("/", redirect)
	e.GET(prefix, redirect)
	g := e.Group(prefix)
	g.Use(static)
	return e
}
