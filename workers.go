package portfolio

import "runtime"

// Worker sizing constants.
const (
	// MinWorkers ensures at least one render or write runs at a time.
	MinWorkers = 1

	// MaxWorkers caps fan-out regardless of available CPUs.
	MaxWorkers = 16
)

// ResolveWorkers determines the worker count for rendering and writing.
// Priority: explicit workers > GOMAXPROCS (adjusted by automaxprocs in the
// CLI). The result is clamped to [MinWorkers, MaxWorkers].
func ResolveWorkers(workers int) int {
	n := workers
	if n <= 0 {
		n = runtime.GOMAXPROCS(0)
	}
	return min(max(n, MinWorkers), MaxWorkers)
}
