// Package workloads registers the benchmarks deltabench can run.
//
// DeltaBlue is the main workload: it solves the chain and projection
// scenarios from pkg/deltablue on a fresh planner every run. The remaining
// workloads are small kernels that stress a single language mechanism
// (recursion, closures, accessors, non-local exits) and serve as reference
// points when comparing scores across machines or toolchains.
package workloads

import (
	"sort"

	"github.com/matzehuels/deltabench/pkg/errors"
	"github.com/matzehuels/deltabench/pkg/harness"
)

// Workload describes a registered benchmark.
type Workload struct {
	Name        string
	Description string

	// New builds a benchmark instance for cfg.
	New func(cfg harness.Config) harness.Benchmark
}

var registry = map[string]Workload{}

func init() {
	register(deltaBlueWorkload)
	register(methodFibonacci)
	register(closureFibonacci)
	register(closureDefFibonacci)
	register(slotRead)
	register(slotWrite)
	register(nlrImmediateWorkload)
	register(nlrLoopWorkload)
}

// order keeps registration order, which is the order `bench` runs
// workloads in when none are named.
var order []string

func register(w Workload) {
	if _, dup := registry[w.Name]; dup {
		panic("workloads: duplicate registration of " + w.Name)
	}
	registry[w.Name] = w
	order = append(order, w.Name)
}

// Lookup returns the workload registered under name.
func Lookup(name string) (Workload, bool) {
	w, ok := registry[name]
	return w, ok
}

// Names returns every registered workload name in registration order.
func Names() []string {
	return append([]string(nil), order...)
}

// All returns every registered workload in registration order.
func All() []Workload {
	out := make([]Workload, len(order))
	for i, name := range order {
		out[i] = registry[name]
	}
	return out
}

// New builds the benchmark registered under name. It implements
// [harness.Resolver].
func New(name string, cfg harness.Config) (harness.Benchmark, error) {
	w, ok := Lookup(name)
	if !ok {
		return nil, errors.New(errors.ErrCodeUnknownWorkload, "unknown workload %q (known: %v)", name, sortedNames())
	}
	return w.New(cfg), nil
}

func sortedNames() []string {
	names := Names()
	sort.Strings(names)
	return names
}

var _ harness.Resolver = New
