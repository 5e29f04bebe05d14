package frame

import (
	"runtime"
	"sync"

	"github.com/rs/zerolog"
)

// Options tunes how lane-wise operations are scheduled.
type Options struct {
	// Workers bounds the goroutines used for one operation. Values below 2
	// keep every operation on the calling goroutine.
	Workers int
	// ParallelThreshold is the minimum number of cells before lanes are
	// processed concurrently.
	ParallelThreshold int
}

// DefaultOptions returns the default scheduling options.
func DefaultOptions() Options {
	return Options{
		Workers:           runtime.GOMAXPROCS(0),
		ParallelThreshold: 1 << 16,
	}
}

var (
	mu      sync.RWMutex
	current = DefaultOptions()
	logger  = zerolog.Nop()
)

// Configure replaces the package scheduling options.
func Configure(opts Options) {
	mu.Lock()
	defer mu.Unlock()
	current = opts
}

// SetLogger sets the logger used for debug events. The default discards
// everything.
func SetLogger(l zerolog.Logger) {
	mu.Lock()
	defer mu.Unlock()
	logger = l
}

func settings() (Options, zerolog.Logger) {
	mu.RLock()
	defer mu.RUnlock()
	return current, logger
}
