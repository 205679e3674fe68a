package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/matzehuels/deltabench/pkg/harness"
)

// configCommand creates the config command.
func (c *CLI) configCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or create the configuration file",
	}

	cmd.AddCommand(c.configShowCommand())
	cmd.AddCommand(c.configPathCommand())
	cmd.AddCommand(c.configInitCommand())

	return cmd
}

// configShowCommand prints the effective configuration as TOML.
func (c *CLI) configShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			out, err := encodeConfig(cfg)
			if err != nil {
				return err
			}
			fmt.Print(out)
			printDetail("fingerprint %s", cfg.Fingerprint())
			return nil
		},
	}
}

func (c *CLI) configPathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the configuration file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := c.resolveConfigPath()
			if err != nil {
				return err
			}
			fmt.Println(path)
			return nil
		},
	}
}

// configInitCommand writes the defaults to the config path.
func (c *CLI) configInitCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a configuration file with the default settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := c.resolveConfigPath()
			if err != nil {
				return err
			}
			if _, err := os.Stat(path); err == nil && !force {
				printWarning("%s already exists (use --force to overwrite)", path)
				return nil
			}

			out, err := encodeConfig(harness.DefaultConfig())
			if err != nil {
				return err
			}
			if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
				return err
			}
			if err := os.WriteFile(path, []byte(out), 0644); err != nil {
				return err
			}
			printSuccess("Wrote %s", path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	return cmd
}

func (c *CLI) resolveConfigPath() (string, error) {
	if c.configPath != "" {
		return c.configPath, nil
	}
	return harness.DefaultConfigPath()
}

// fileConfig mirrors harness.Config with durations as strings, the form
// LoadConfig reads back.
type fileConfig struct {
	Warmup          string   `toml:"warmup"`
	Duration        string   `toml:"duration"`
	Workloads       []string `toml:"workloads,omitempty"`
	ChainSize       int      `toml:"chain_size"`
	ProjectionSize  int      `toml:"projection_size"`
	EditRepetitions int      `toml:"edit_repetitions"`
	BaselineTTL     string   `toml:"baseline_ttl"`
	RedisAddr       string   `toml:"redis_addr,omitempty"`
}

func encodeConfig(cfg harness.Config) (string, error) {
	var b strings.Builder
	err := toml.NewEncoder(&b).Encode(fileConfig{
		Warmup:          cfg.Warmup.String(),
		Duration:        cfg.Duration.String(),
		Workloads:       cfg.Workloads,
		ChainSize:       cfg.ChainSize,
		ProjectionSize:  cfg.ProjectionSize,
		EditRepetitions: cfg.EditRepetitions,
		BaselineTTL:     cfg.BaselineTTL.String(),
		RedisAddr:       cfg.RedisAddr,
	})
	if err != nil {
		return "", fmt.Errorf("encode config: %w", err)
	}
	return b.String(), nil
}
