package harness

import (
	"context"
	"fmt"
	"time"
)

// Measurement is the outcome of timing a benchmark.
type Measurement struct {
	Runs    int           // completed runs
	Elapsed time.Duration // wall-clock time of those runs
	Score   float64       // runs per second
}

// Measure runs b until at least minDuration has elapsed and returns the
// number of runs per second. The elapsed time is checked after every run, so
// a single slow run can overshoot minDuration.
//
// Measure stops with ctx's error if ctx is cancelled between runs, and with
// the first error returned by b.Run.
func Measure(ctx context.Context, b Benchmark, minDuration time.Duration) (Measurement, error) {
	if minDuration <= 0 {
		return Measurement{}, fmt.Errorf("measure %s: duration must be positive, got %s", b.Name(), minDuration)
	}

	var m Measurement
	start := time.Now()
	for m.Elapsed < minDuration {
		if err := ctx.Err(); err != nil {
			return m, err
		}
		if err := b.Run(); err != nil {
			return m, fmt.Errorf("run %d of %s: %w", m.Runs+1, b.Name(), err)
		}
		m.Runs++
		m.Elapsed = time.Since(start)
	}
	m.Score = score(m.Runs, m.Elapsed)
	return m, nil
}

// Report sets b up, warms it up for warmup, and returns the measurement of a
// second pass lasting at least duration. The warm-up result is discarded.
func Report(ctx context.Context, b Benchmark, warmup, duration time.Duration) (Measurement, error) {
	if err := b.Setup(); err != nil {
		return Measurement{}, fmt.Errorf("setup %s: %w", b.Name(), err)
	}
	if _, err := Measure(ctx, b, warmup); err != nil {
		return Measurement{}, fmt.Errorf("warm-up: %w", err)
	}
	return Measure(ctx, b, duration)
}

func score(runs int, elapsed time.Duration) float64 {
	ms := float64(elapsed) / float64(time.Millisecond)
	if ms <= 0 {
		return 0
	}
	return float64(runs) * 1000 / ms
}
