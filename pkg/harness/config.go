package harness

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/deltabench/pkg/cache"
	"github.com/matzehuels/deltabench/pkg/errors"
)

// =============================================================================
// Default Values
// =============================================================================

const (
	// DefaultWarmup is how long a workload runs before measuring starts.
	DefaultWarmup = 300 * time.Millisecond

	// DefaultDuration is the minimum length of the measured pass.
	DefaultDuration = 2000 * time.Millisecond

	// DefaultChainSize is the number of variables in the chain scenario.
	DefaultChainSize = 100

	// DefaultProjectionSize is the number of variable pairs in the
	// projection scenario.
	DefaultProjectionSize = 100

	// DefaultEditRepetitions is how many times each edit plan executes.
	DefaultEditRepetitions = 10

	// DefaultBaselineTTL is how long saved baselines are kept.
	DefaultBaselineTTL = cache.TTLBaseline
)

// Config controls a benchmark session. It is usually loaded from a TOML file:
//
//	warmup = "300ms"
//	duration = "2s"
//	workloads = ["DeltaBlue", "MethodFibonacci"]
//	chain_size = 100
//	projection_size = 100
//	edit_repetitions = 10
//	baseline_ttl = "720h"
//	redis_addr = "localhost:6379"
type Config struct {
	Warmup          time.Duration `toml:"warmup" json:"warmup"`
	Duration        time.Duration `toml:"duration" json:"duration"`
	Workloads       []string      `toml:"workloads" json:"-"`
	ChainSize       int           `toml:"chain_size" json:"chain_size"`
	ProjectionSize  int           `toml:"projection_size" json:"projection_size"`
	EditRepetitions int           `toml:"edit_repetitions" json:"edit_repetitions"`
	BaselineTTL     time.Duration `toml:"baseline_ttl" json:"-"`
	RedisAddr       string        `toml:"redis_addr" json:"-"`
}

// DefaultConfig returns the settings of the classic benchmark runner.
func DefaultConfig() Config {
	return Config{
		Warmup:          DefaultWarmup,
		Duration:        DefaultDuration,
		ChainSize:       DefaultChainSize,
		ProjectionSize:  DefaultProjectionSize,
		EditRepetitions: DefaultEditRepetitions,
		BaselineTTL:     DefaultBaselineTTL,
	}
}

// LoadConfig decodes the TOML file at path over [DefaultConfig] and validates
// the result. Keys the file sets that Config does not know are an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return Config{}, errors.New(errors.ErrCodeInvalidConfig, "%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfigIfExists is [LoadConfig] except that a missing file yields
// [DefaultConfig] and found reports false.
func LoadConfigIfExists(path string) (cfg Config, found bool, err error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultConfig(), false, nil
	}
	cfg, err = LoadConfig(path)
	return cfg, err == nil, err
}

// DefaultConfigPath returns $XDG_CONFIG_HOME/deltabench/config.toml, falling
// back to ~/.config when XDG_CONFIG_HOME is unset.
func DefaultConfigPath() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "deltabench", "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("locate config: %w", err)
	}
	return filepath.Join(home, ".config", "deltabench", "config.toml"), nil
}

// Validate checks that every setting is usable.
func (c Config) Validate() error {
	if err := errors.ValidatePositiveDuration("warmup", c.Warmup); err != nil {
		return err
	}
	if err := errors.ValidatePositiveDuration("duration", c.Duration); err != nil {
		return err
	}
	if err := errors.ValidateSize("chain_size", c.ChainSize, 1); err != nil {
		return err
	}
	if err := errors.ValidateSize("projection_size", c.ProjectionSize, 1); err != nil {
		return err
	}
	if err := errors.ValidateSize("edit_repetitions", c.EditRepetitions, 1); err != nil {
		return err
	}
	if c.BaselineTTL < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "baseline_ttl must not be negative, got %s", c.BaselineTTL)
	}
	for _, name := range c.Workloads {
		if err := errors.ValidateWorkloadName(name); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "workloads")
		}
	}
	return errors.ValidateRedisAddr(c.RedisAddr)
}

// Fingerprint identifies the settings that influence scores. Two configs
// with the same fingerprint produce comparable results, so baselines are
// keyed by it.
func (c Config) Fingerprint() string {
	h, err := cache.HashJSON(c)
	if err != nil {
		// Config holds only durations, ints and strings.
		panic(fmt.Sprintf("harness: fingerprint config: %v", err))
	}
	return h[:16]
}
