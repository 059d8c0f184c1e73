// Package parallel provides chunked parallel execution for vector kernels.
package parallel

import (
	"runtime"
	"sync"

	"golang.org/x/exp/constraints"
	"golang.org/x/sync/errgroup"
)

// Config controls parallel execution behavior.
type Config struct {
	Enabled      bool `mapstructure:"enabled"`        // Whether parallel execution is enabled.
	NumWorkers   int  `mapstructure:"num_workers"`    // Number of worker goroutines to use.
	MinChunkSize int  `mapstructure:"min_chunk_size"` // Minimum items per goroutine to avoid overhead.
}

// DefaultConfig returns sensible defaults based on CPU count.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:      n > 1,
		NumWorkers:   n,
		MinChunkSize: 4096, // Below this a reduction is cheaper than a goroutine.
	}
}

// sequential reports whether n items should be processed on the caller's goroutine.
func (c Config) sequential(n int) bool {
	return !c.Enabled || c.NumWorkers < 2 || c.MinChunkSize <= 0 || n < 2*c.MinChunkSize
}

// chunkSize returns the fixed chunk length used for n items.
func (c Config) chunkSize(n int) int {
	return max((n+c.NumWorkers-1)/c.NumWorkers, c.MinChunkSize)
}

// For executes f(i) for i in [0, n) with optional parallelism.
// Falls back to sequential execution if parallelism is disabled or n is too small.
func For(n int, f func(i int), cfg Config) {
	if cfg.sequential(n) {
		for i := 0; i < n; i++ {
			f(i)
		}
		return
	}

	var wg sync.WaitGroup
	size := cfg.chunkSize(n)

	for start := 0; start < n; start += size {
		end := min(start+size, n)
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			for i := s; i < e; i++ {
				f(i)
			}
		}(start, end)
	}
	wg.Wait()
}

// Sum reduces [0, n) by evaluating chunk over consecutive ranges and adding
// the partial results in range order.
//
// Chunk boundaries depend only on n and cfg, so repeated calls with the same
// inputs and configuration return bit-identical results.
func Sum[F constraints.Float](n int, chunk func(lo, hi int) F, cfg Config) F {
	if cfg.sequential(n) {
		return chunk(0, n)
	}

	size := cfg.chunkSize(n)
	partials := make([]F, (n+size-1)/size)

	var g errgroup.Group
	g.SetLimit(cfg.NumWorkers)
	for i := range partials {
		lo := i * size
		hi := min(lo+size, n)
		g.Go(func() error {
			partials[i] = chunk(lo, hi)
			return nil
		})
	}
	_ = g.Wait() // chunk never fails

	var total F
	for _, p := range partials {
		total += p
	}
	return total
}
