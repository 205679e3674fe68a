package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/deltabench/pkg/observability"
)

// logHooks logs harness and cache events at debug level.
type logHooks struct {
	logger *log.Logger
}

func (h *logHooks) OnRunStart(_ context.Context, runID string, names []string) {
	h.logger.Debug("run start", "run", runID, "workloads", names)
}

func (h *logHooks) OnRunComplete(_ context.Context, runID string, d time.Duration, err error) {
	h.logger.Debug("run complete", "run", runID, "duration", d.Round(time.Millisecond), "error", err)
}

func (h *logHooks) OnWorkloadStart(_ context.Context, name string) {
	h.logger.Debug("workload start", "workload", name)
}

func (h *logHooks) OnWorkloadComplete(_ context.Context, name string, score float64, runs int, elapsed time.Duration, err error) {
	if err != nil {
		h.logger.Debug("workload failed", "workload", name, "runs", runs, "error", err)
		return
	}
	h.logger.Debug("workload complete", "workload", name, "score", score, "runs", runs, "elapsed", elapsed.Round(time.Millisecond))
}

func (h *logHooks) OnCacheHit(_ context.Context, keyType string) {
	h.logger.Debug("cache hit", "type", keyType)
}

func (h *logHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.logger.Debug("cache miss", "type", keyType)
}

func (h *logHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.logger.Debug("cache set", "type", keyType, "bytes", size)
}

var (
	_ observability.HarnessHooks = (*logHooks)(nil)
	_ observability.CacheHooks   = (*logHooks)(nil)
)
