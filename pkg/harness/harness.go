// Package harness measures benchmark workloads.
//
// A [Benchmark] is set up once, warmed up for [Config.Warmup], and then run
// repeatedly until [Config.Duration] has elapsed. Its score is the number of
// completed runs per second of wall-clock time.
//
// # Usage
//
//	m, err := harness.Report(ctx, b, 300*time.Millisecond, 2*time.Second)
//	fmt.Printf("%s %.3f\n", b.Name(), m.Score)
//
// [Runner] drives several workloads in sequence, assigns the run an ID,
// compares scores against saved baselines, and emits observability events.
package harness

// Benchmark is a workload the harness can measure.
//
// Setup is called once before any timing starts. Run performs one unit of
// work; its duration is what the harness measures. Run is never called
// concurrently.
type Benchmark interface {
	Name() string
	Setup() error
	Run() error
}

// Func adapts plain functions to [Benchmark].
type Func struct {
	name  string
	setup func() error
	run   func() error
}

// NewFunc creates a benchmark named name that calls run each iteration.
// setup may be nil.
func NewFunc(name string, setup, run func() error) *Func {
	return &Func{name: name, setup: setup, run: run}
}

// Name returns the benchmark's name.
func (f *Func) Name() string { return f.name }

// Setup calls the setup function, if any.
func (f *Func) Setup() error {
	if f.setup == nil {
		return nil
	}
	return f.setup()
}

// Run calls the run function.
func (f *Func) Run() error { return f.run() }

var _ Benchmark = (*Func)(nil)
