// Package pkg provides the core libraries for deltabench.
//
// # Overview
//
// deltabench measures the DeltaBlue incremental constraint solver together
// with a handful of micro-benchmarks. The pkg directory is organized into:
//
//  1. [deltablue] - The constraint solver (variables, constraints, planner, plans)
//  2. [workloads] - The registered benchmark programs
//  3. [harness] - Measurement, configuration and the benchmark runner
//  4. [cache] - Baseline storage (file, Redis, null)
//  5. [errors], [observability], [buildinfo] - Shared infrastructure
//
// # Architecture
//
//	harness.Config (TOML)
//	        ↓
//	workloads.New (resolve name → Benchmark)
//	        ↓
//	harness.Report (warm-up, then measure)
//	        ↓
//	harness.Result ← compared with a cached Baseline
//
// # Quick Start
//
// Solve a small constraint graph directly:
//
//	p := deltablue.NewPlanner()
//	a := deltablue.NewVariable("a", 1)
//	b := deltablue.NewVariable("b", 0)
//	deltablue.NewStayConstraint(p, a, deltablue.Normal)
//	deltablue.NewEqualityConstraint(p, a, b, deltablue.Required)
//	_ = p.SetValue(a, 42) // b.Value() == 42
//
// Measure a registered workload:
//
//	b, _ := workloads.New("DeltaBlue", harness.DefaultConfig())
//	m, _ := harness.Report(ctx, b, 300*time.Millisecond, 2*time.Second)
//	fmt.Printf("%.3f runs/s\n", m.Score)
//
// [deltablue]: github.com/matzehuels/deltabench/pkg/deltablue
// [workloads]: github.com/matzehuels/deltabench/pkg/workloads
// [harness]: github.com/matzehuels/deltabench/pkg/harness
// [cache]: github.com/matzehuels/deltabench/pkg/cache
// [errors]: github.com/matzehuels/deltabench/pkg/errors
// [observability]: github.com/matzehuels/deltabench/pkg/observability
// [buildinfo]: github.com/matzehuels/deltabench/pkg/buildinfo
package pkg
