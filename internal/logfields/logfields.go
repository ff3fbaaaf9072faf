package logfields

import "log/slog"

// Canonical log field name constants shared by the build phases and the CLI.
const (
	KeyPhase      = "phase"
	KeyPath       = "path"
	KeyCount      = "count"
	KeyWorkers    = "workers"
	KeyOutput     = "output"
	KeyAddr       = "addr"
	KeyEvent      = "event"
	KeyDurationMS = "duration_ms"
	KeyError      = "error"
)

func Phase(name string) slog.Attr     { return slog.String(KeyPhase, name) }
func Path(p string) slog.Attr         { return slog.String(KeyPath, p) }
func Count(n int) slog.Attr           { return slog.Int(KeyCount, n) }
func Workers(n int) slog.Attr         { return slog.Int(KeyWorkers, n) }
func Output(dir string) slog.Attr     { return slog.String(KeyOutput, dir) }
func Addr(a string) slog.Attr         { return slog.String(KeyAddr, a) }
func Event(e string) slog.Attr        { return slog.String(KeyEvent, e) }
func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDurationMS, ms) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
