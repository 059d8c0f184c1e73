package parallel

import (
	"sync/atomic"
	"testing"
)

// forcedConfig returns a parallel configuration that splits even small inputs.
func forcedConfig() Config {
	return Config{Enabled: true, NumWorkers: 4, MinChunkSize: 8}
}

func TestFor(t *testing.T) {
	cfg := forcedConfig()

	var counter int64
	n := 1000

	For(n, func(_ int) {
		atomic.AddInt64(&counter, 1)
	}, cfg)

	if counter != int64(n) {
		t.Errorf("Expected %d, got %d", n, counter)
	}
}

func TestFor_Sequential(t *testing.T) {
	cfg := Config{Enabled: false}

	var counter int64
	For(100, func(_ int) {
		atomic.AddInt64(&counter, 1)
	}, cfg)

	if counter != 100 {
		t.Errorf("Expected 100, got %d", counter)
	}
}

func TestFor_SmallChunk(t *testing.T) {
	// Small work units fall back to sequential.
	cfg := DefaultConfig()

	var counter int64
	n := cfg.MinChunkSize - 1

	For(n, func(_ int) {
		atomic.AddInt64(&counter, 1)
	}, cfg)

	if counter != int64(n) {
		t.Errorf("Expected %d, got %d", n, counter)
	}
}

func TestSum(t *testing.T) {
	n := 1001
	chunk := func(lo, hi int) float64 {
		var s float64
		for i := lo; i < hi; i++ {
			s += float64(i)
		}
		return s
	}

	want := float64(n*(n-1)) / 2
	if got := Sum(n, chunk, forcedConfig()); got != want {
		t.Errorf("parallel Sum = %v, want %v", got, want)
	}
	if got := Sum(n, chunk, Config{}); got != want {
		t.Errorf("sequential Sum = %v, want %v", got, want)
	}
}

func TestSum_Deterministic(t *testing.T) {
	n := 5000
	values := make([]float32, n)
	for i := range values {
		values[i] = 1.0 / float32(i+1)
	}
	chunk := func(lo, hi int) float32 {
		var s float32
		for _, v := range values[lo:hi] {
			s += v
		}
		return s
	}

	cfg := forcedConfig()
	first := Sum(n, chunk, cfg)
	for i := 0; i < 20; i++ {
		if got := Sum(n, chunk, cfg); got != first {
			t.Fatalf("run %d: Sum = %v, want bit-identical %v", i, got, first)
		}
	}
}

func TestSum_Empty(t *testing.T) {
	got := Sum(0, func(lo, hi int) float64 { return float64(hi - lo) }, forcedConfig())
	if got != 0 {
		t.Errorf("Sum over empty range = %v, want 0", got)
	}
}

func BenchmarkSum(b *testing.B) {
	cfg := DefaultConfig()
	n := 1 << 20
	values := make([]float64, n)
	for i := range values {
		values[i] = float64(i % 7)
	}
	chunk := func(lo, hi int) float64 {
		var s float64
		for _, v := range values[lo:hi] {
			s += v
		}
		return s
	}

	b.Run("parallel", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = Sum(n, chunk, cfg)
		}
	})

	b.Run("sequential", func(b *testing.B) {
		cfgSeq := cfg
		cfgSeq.Enabled = false
		for i := 0; i < b.N; i++ {
			_ = Sum(n, chunk, cfgSeq)
		}
	})
}
