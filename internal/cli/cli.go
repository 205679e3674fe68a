// Package cli implements the deltabench command-line interface.
package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/deltabench/pkg/buildinfo"
	"github.com/matzehuels/deltabench/pkg/cache"
	"github.com/matzehuels/deltabench/pkg/errors"
	"github.com/matzehuels/deltabench/pkg/harness"
	"github.com/matzehuels/deltabench/pkg/observability"
	"github.com/matzehuels/deltabench/pkg/workloads"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "deltabench"

	// baselineKeyType tags cache events for baselines.
	baselineKeyType = "baseline"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// Persistent flags.
	configPath string
	redisAddr  string
	noCache    bool
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level. At debug level the harness and
// cache events are logged as well.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
	if level <= log.DebugLevel {
		hooks := &logHooks{logger: c.Logger}
		observability.SetHarnessHooks(hooks)
		observability.SetCacheHooks(hooks)
	}
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "deltabench runs the DeltaBlue constraint solver benchmark",
		Long: `deltabench measures the DeltaBlue incremental constraint solver and a set of
micro-benchmarks, reporting each workload's throughput in runs per second and
comparing it against saved baselines.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	flags := root.PersistentFlags()
	flags.StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/deltabench/config.toml)")
	flags.StringVar(&c.redisAddr, "redis-addr", "", "store baselines in Redis at host:port instead of the local cache")
	flags.BoolVar(&c.noCache, "no-cache", false, "do not read or write baselines")

	root.AddCommand(c.benchCommand())
	root.AddCommand(c.solveCommand())
	root.AddCommand(c.listCommand())
	root.AddCommand(c.baselineCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Configuration
// =============================================================================

// loadConfig reads --config, or the default config file when it exists.
// The --redis-addr flag overrides the file.
func (c *CLI) loadConfig() (harness.Config, error) {
	cfg := harness.DefaultConfig()
	path := c.configPath
	if path == "" {
		if p, err := harness.DefaultConfigPath(); err == nil {
			path = p
		}
	}
	if path != "" {
		var err error
		if c.configPath != "" {
			cfg, err = harness.LoadConfig(path)
		} else {
			cfg, _, err = harness.LoadConfigIfExists(path)
		}
		if err != nil {
			return harness.Config{}, err
		}
	}
	if c.redisAddr != "" {
		cfg.RedisAddr = c.redisAddr
	}
	return cfg, cfg.Validate()
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a harness runner for CLI use. The caller must close the
// returned cache.
func (c *CLI) newRunner(ctx context.Context, cfg harness.Config) (*harness.Runner, cache.Cache, error) {
	store, keyer, err := c.newCache(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	return harness.NewRunner(cfg, workloads.New, store, keyer, c.Logger), store, nil
}

// newCache selects the baseline store: none with --no-cache, Redis when an
// address is configured, the local file cache otherwise. Redis keys are
// scoped by host name so that machines sharing a server keep separate
// baselines.
func (c *CLI) newCache(ctx context.Context, cfg harness.Config) (cache.Cache, cache.Keyer, error) {
	if c.noCache {
		return cache.NewNullCache(), cache.NewDefaultKeyer(), nil
	}

	if cfg.RedisAddr != "" {
		rc, err := cache.NewRedisCache(ctx, cache.RedisConfig{
			Addr:     cfg.RedisAddr,
			Password: os.Getenv("DELTABENCH_REDIS_PASSWORD"),
		})
		if err != nil {
			return nil, nil, errors.Wrap(errors.ErrCodeCache, err, "connect to redis")
		}
		host, err := os.Hostname()
		if err != nil {
			host = "unknown"
		}
		keyer := cache.NewScopedKeyer(cache.NewDefaultKeyer(), "host:"+host+":")
		return cache.NewInstrumented(rc, baselineKeyType), keyer, nil
	}

	dir, err := cacheDir()
	if err != nil {
		c.Logger.Warn("no cache directory, baselines disabled", "error", err)
		return cache.NewNullCache(), cache.NewDefaultKeyer(), nil
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		return nil, nil, errors.Wrap(errors.ErrCodeCache, err, "open cache %s", dir)
	}
	return cache.NewInstrumented(fc, baselineKeyType), cache.NewDefaultKeyer(), nil
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/deltabench/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
