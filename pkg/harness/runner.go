package harness

import (
	"context"
	"encoding/json"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/deltabench/pkg/cache"
	"github.com/matzehuels/deltabench/pkg/errors"
	"github.com/matzehuels/deltabench/pkg/observability"
)

// Resolver builds the benchmark registered under name for cfg.
type Resolver func(name string, cfg Config) (Benchmark, error)

// Baseline is a saved result that later runs are compared against.
type Baseline struct {
	RunID      string        `json:"run_id"`
	Workload   string        `json:"workload"`
	Score      float64       `json:"score"`
	Runs       int           `json:"runs"`
	Elapsed    time.Duration `json:"elapsed"`
	ConfigHash string        `json:"config_hash"`
	RecordedAt time.Time     `json:"recorded_at"`
}

// Result is the outcome of measuring one workload.
type Result struct {
	RunID   string
	Name    string
	Score   float64 // runs per second
	Runs    int
	Elapsed time.Duration

	// Baseline is the saved result for the same workload and configuration,
	// or nil. Delta is the relative change from it in percent.
	Baseline *Baseline
	Delta    float64
}

// Runner measures workloads with a shared configuration and keeps baselines
// in a cache.
//
// Workloads run one after another; a Runner must not be used for two runs at
// the same time.
type Runner struct {
	Config  Config
	Resolve Resolver
	Cache   cache.Cache
	Keyer   cache.Keyer
	Logger  *log.Logger

	// SaveBaseline stores every result as the new baseline.
	SaveBaseline bool

	// OnResult, if set, is called after each workload completes.
	OnResult func(Result)
}

// NewRunner creates a runner.
// If keyer is nil, a DefaultKeyer is used.
// If c is nil, a NullCache is used (baselines disabled).
func NewRunner(cfg Config, resolve Resolver, c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Config:  cfg,
		Resolve: resolve,
		Cache:   c,
		Keyer:   keyer,
		Logger:  logger,
	}
}

// Run measures the named workloads in order under a fresh run ID. It stops at
// the first failure and returns the results gathered so far with the error.
func (r *Runner) Run(ctx context.Context, names []string) ([]Result, error) {
	if len(names) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "no workloads selected")
	}
	if err := r.Config.Validate(); err != nil {
		return nil, err
	}
	for _, name := range names {
		if err := errors.ValidateWorkloadName(name); err != nil {
			return nil, err
		}
	}

	runID := uuid.NewString()
	configHash := r.Config.Fingerprint()
	start := time.Now()
	hooks := observability.Harness()
	hooks.OnRunStart(ctx, runID, names)
	r.Logger.Debug("run started", "run", runID, "workloads", len(names), "config", configHash)

	results := make([]Result, 0, len(names))
	var runErr error
	for _, name := range names {
		res, err := r.runOne(ctx, runID, configHash, name)
		if err != nil {
			runErr = err
			break
		}
		results = append(results, res)
		if r.OnResult != nil {
			r.OnResult(res)
		}
	}

	hooks.OnRunComplete(ctx, runID, time.Since(start), runErr)
	return results, runErr
}

func (r *Runner) runOne(ctx context.Context, runID, configHash, name string) (Result, error) {
	hooks := observability.Harness()
	hooks.OnWorkloadStart(ctx, name)

	b, err := r.Resolve(name, r.Config)
	if err != nil {
		hooks.OnWorkloadComplete(ctx, name, 0, 0, 0, err)
		return Result{}, err
	}

	m, err := Report(ctx, b, r.Config.Warmup, r.Config.Duration)
	if err != nil {
		hooks.OnWorkloadComplete(ctx, name, 0, m.Runs, m.Elapsed, err)
		if ctx.Err() != nil {
			return Result{}, errors.Wrap(errors.ErrCodeCanceled, err, "workload %s interrupted", name)
		}
		return Result{}, errors.Wrap(errors.ErrCodeBenchmarkFailed, err, "workload %s", name)
	}
	hooks.OnWorkloadComplete(ctx, name, m.Score, m.Runs, m.Elapsed, nil)

	res := Result{
		RunID:   runID,
		Name:    name,
		Score:   m.Score,
		Runs:    m.Runs,
		Elapsed: m.Elapsed,
	}

	key := r.Keyer.BaselineKey(name, configHash)
	if base, ok := r.loadBaseline(ctx, key); ok {
		res.Baseline = base
		res.Delta = delta(m.Score, base.Score)
	}

	r.Logger.Info("measured",
		"workload", name,
		"score", m.Score,
		"runs", m.Runs,
		"elapsed", m.Elapsed.Round(time.Millisecond))

	if r.SaveBaseline {
		r.saveBaseline(ctx, key, Baseline{
			RunID:      runID,
			Workload:   name,
			Score:      m.Score,
			Runs:       m.Runs,
			Elapsed:    m.Elapsed,
			ConfigHash: configHash,
			RecordedAt: time.Now().UTC(),
		})
	}
	return res, nil
}

// Baselines returns the saved baselines for names under the runner's
// configuration. Workloads without a baseline are skipped.
func (r *Runner) Baselines(ctx context.Context, names []string) ([]Baseline, error) {
	configHash := r.Config.Fingerprint()
	var out []Baseline
	for _, name := range names {
		data, hit, err := r.Cache.Get(ctx, r.Keyer.BaselineKey(name, configHash))
		if err != nil {
			return out, errors.Wrap(errors.ErrCodeCache, err, "read baseline for %s", name)
		}
		if !hit {
			continue
		}
		var b Baseline
		if err := json.Unmarshal(data, &b); err != nil {
			r.Logger.Warn("ignoring corrupt baseline", "workload", name, "error", err)
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

// ClearBaselines deletes the saved baselines for names under the runner's
// configuration.
func (r *Runner) ClearBaselines(ctx context.Context, names []string) error {
	configHash := r.Config.Fingerprint()
	for _, name := range names {
		if err := r.Cache.Delete(ctx, r.Keyer.BaselineKey(name, configHash)); err != nil {
			return errors.Wrap(errors.ErrCodeCache, err, "delete baseline for %s", name)
		}
	}
	return nil
}

// loadBaseline reads a baseline. Cache failures only cost the comparison, so
// they are logged rather than returned.
func (r *Runner) loadBaseline(ctx context.Context, key string) (*Baseline, bool) {
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil {
		r.Logger.Warn("baseline lookup failed", "error", err)
		return nil, false
	}
	if !hit {
		return nil, false
	}
	var b Baseline
	if err := json.Unmarshal(data, &b); err != nil || b.Score <= 0 {
		return nil, false
	}
	return &b, true
}

func (r *Runner) saveBaseline(ctx context.Context, key string, b Baseline) {
	data, err := json.Marshal(b)
	if err != nil {
		r.Logger.Warn("encode baseline", "workload", b.Workload, "error", err)
		return
	}
	if err := r.Cache.Set(ctx, key, data, r.Config.BaselineTTL); err != nil {
		r.Logger.Warn("save baseline", "workload", b.Workload, "error", err)
		return
	}
	r.Logger.Debug("baseline saved", "workload", b.Workload, "score", b.Score)
}

// delta returns the change from base to score in percent.
func delta(score, base float64) float64 {
	return (score - base) / base * 100
}
