package cli

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/deltabench/pkg/errors"
	"github.com/matzehuels/deltabench/pkg/harness"
)

// isolate points config and cache lookups at a temporary directory.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_CACHE_HOME", filepath.Join(dir, "cache"))
	return dir
}

func TestRootCommandTree(t *testing.T) {
	c := New(os.Stderr, LogInfo)
	root := c.RootCommand()

	want := []string{"bench", "solve", "list", "baseline", "cache", "config", "completion"}
	for _, name := range want {
		cmd, _, err := root.Find([]string{name})
		if err != nil || cmd.Name() != name {
			t.Errorf("command %q not registered", name)
		}
	}

	for _, flag := range []string{"config", "redis-addr", "no-cache"} {
		if root.PersistentFlags().Lookup(flag) == nil {
			t.Errorf("persistent flag --%s missing", flag)
		}
	}

	solve, _, err := root.Find([]string{"solve", "chain"})
	if err != nil || solve.Name() != "chain" {
		t.Fatalf("solve chain not found: %v", err)
	}
	if solve.Flags().Lookup("n") == nil || solve.Flags().Lookup("repetitions") == nil {
		t.Error("solve chain should have --n and --repetitions")
	}
}

func TestExecuteList(t *testing.T) {
	isolate(t)
	if err := execute(context.Background(), []string{"list"}); err != nil {
		t.Fatalf("list: %v", err)
	}
}

func TestExecuteSolve(t *testing.T) {
	isolate(t)
	for _, scenario := range []string{"chain", "projection"} {
		t.Run(scenario, func(t *testing.T) {
			err := execute(context.Background(), []string{"solve", scenario, "--n", "10", "--repetitions", "2"})
			if err != nil {
				t.Fatalf("solve %s: %v", scenario, err)
			}
		})
	}
}

func TestExecuteSolveInvalidSize(t *testing.T) {
	isolate(t)
	err := execute(context.Background(), []string{"solve", "chain", "--n", "0"})
	if errors.GetCode(err) != errors.ErrCodeInvalidInput {
		t.Errorf("error code = %q, want %q (err=%v)", errors.GetCode(err), errors.ErrCodeInvalidInput, err)
	}
}

func TestExecuteBenchNoCache(t *testing.T) {
	isolate(t)
	err := execute(context.Background(), []string{
		"bench", "--no-cache", "--warmup", "1ms", "--duration", "2ms", "SlotWrite",
	})
	if err != nil {
		t.Fatalf("bench: %v", err)
	}
}

func TestExecuteBenchUnknownWorkload(t *testing.T) {
	isolate(t)
	err := execute(context.Background(), []string{"bench", "--no-cache", "NoSuchWorkload"})
	if err == nil {
		t.Fatal("expected an error for an unknown workload")
	}
}

func TestExecuteBenchSavesBaseline(t *testing.T) {
	dir := isolate(t)
	err := execute(context.Background(), []string{
		"bench", "--warmup", "1ms", "--duration", "2ms", "--save-baseline", "SlotRead",
	})
	if err != nil {
		t.Fatalf("bench: %v", err)
	}

	entries, err := os.ReadDir(filepath.Join(dir, "cache", appName))
	if err != nil {
		t.Fatalf("read cache dir: %v", err)
	}
	if len(entries) == 0 {
		t.Error("expected a baseline entry in the cache directory")
	}

	if err := execute(context.Background(), []string{"baseline", "clear", "SlotRead"}); err != nil {
		t.Fatalf("baseline clear: %v", err)
	}
}

func TestLoadConfig(t *testing.T) {
	dir := isolate(t)

	t.Run("defaults without a file", func(t *testing.T) {
		c := New(os.Stderr, LogInfo)
		cfg, err := c.loadConfig()
		if err != nil {
			t.Fatalf("loadConfig: %v", err)
		}
		if cfg.Warmup != harness.DefaultWarmup || cfg.Duration != harness.DefaultDuration {
			t.Errorf("got %+v, want defaults", cfg)
		}
	})

	t.Run("explicit file and redis override", func(t *testing.T) {
		path := filepath.Join(dir, "bench.toml")
		data := "duration = \"5s\"\nworkloads = [\"DeltaBlue\"]\n"
		if err := os.WriteFile(path, []byte(data), 0644); err != nil {
			t.Fatal(err)
		}

		c := New(os.Stderr, LogInfo)
		c.configPath = path
		c.redisAddr = "localhost:6379"
		cfg, err := c.loadConfig()
		if err != nil {
			t.Fatalf("loadConfig: %v", err)
		}
		if cfg.Duration.String() != "5s" {
			t.Errorf("Duration = %v, want 5s", cfg.Duration)
		}
		if strings.Join(cfg.Workloads, ",") != "DeltaBlue" {
			t.Errorf("Workloads = %v", cfg.Workloads)
		}
		if cfg.RedisAddr != "localhost:6379" {
			t.Errorf("RedisAddr = %q", cfg.RedisAddr)
		}
	})

	t.Run("missing explicit file", func(t *testing.T) {
		c := New(os.Stderr, LogInfo)
		c.configPath = filepath.Join(dir, "missing.toml")
		if _, err := c.loadConfig(); err == nil {
			t.Error("expected an error for a missing --config file")
		}
	})
}

func TestEncodeConfigRoundTrip(t *testing.T) {
	dir := t.TempDir()
	cfg := harness.DefaultConfig()
	cfg.Workloads = []string{"NLRLoop"}

	out, err := encodeConfig(cfg)
	if err != nil {
		t.Fatalf("encodeConfig: %v", err)
	}
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte(out), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := harness.LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v\n%s", err, out)
	}
	if got.Fingerprint() != cfg.Fingerprint() {
		t.Errorf("fingerprint changed after round trip:\n%s", out)
	}
	if len(got.Workloads) != 1 || got.Workloads[0] != "NLRLoop" {
		t.Errorf("Workloads = %v", got.Workloads)
	}
}

func TestSelectWorkloads(t *testing.T) {
	cfg := harness.DefaultConfig()

	if got := selectWorkloads([]string{"SlotRead"}, cfg); len(got) != 1 || got[0] != "SlotRead" {
		t.Errorf("args should win, got %v", got)
	}

	cfg.Workloads = []string{"NLRLoop"}
	if got := selectWorkloads(nil, cfg); len(got) != 1 || got[0] != "NLRLoop" {
		t.Errorf("config should apply without args, got %v", got)
	}

	cfg.Workloads = nil
	if got := selectWorkloads(nil, cfg); len(got) != 8 {
		t.Errorf("expected all 8 registered workloads, got %v", got)
	}
}
