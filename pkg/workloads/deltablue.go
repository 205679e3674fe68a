package workloads

import (
	"github.com/matzehuels/deltabench/pkg/deltablue"
	"github.com/matzehuels/deltabench/pkg/harness"
)

var deltaBlueWorkload = Workload{
	Name:        "DeltaBlue",
	Description: "chain and projection constraint scenarios",
	New: func(cfg harness.Config) harness.Benchmark {
		return &deltaBlue{cfg: cfg}
	},
}

type deltaBlue struct {
	cfg harness.Config
}

func (b *deltaBlue) Name() string { return "DeltaBlue" }

// Setup runs both scenarios once so a broken configuration fails before
// timing starts.
func (b *deltaBlue) Setup() error { return b.Run() }

func (b *deltaBlue) Run() error {
	if err := deltablue.ChainTest(b.planner(), b.cfg.ChainSize); err != nil {
		return err
	}
	return deltablue.ProjectionTest(b.planner(), b.cfg.ProjectionSize)
}

func (b *deltaBlue) planner() *deltablue.Planner {
	return deltablue.NewPlanner(deltablue.WithEditRepetitions(b.cfg.EditRepetitions))
}
