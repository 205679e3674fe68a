package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// baselineCommand creates the baseline management command.
func (c *CLI) baselineCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "baseline",
		Short: "Inspect or remove saved baselines",
		Long: `Inspect or remove saved baselines.

Baselines are keyed by workload and by the settings that affect scores
(durations, scenario sizes, edit repetitions), so changing the configuration
selects a different set.`,
	}

	cmd.AddCommand(c.baselineShowCommand())
	cmd.AddCommand(c.baselineClearCommand())

	return cmd
}

func (c *CLI) baselineShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:               "show [workload...]",
		Short:             "Show saved baselines for the current configuration",
		ValidArgsFunction: completeWorkloads,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			runner, store, err := c.newRunner(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer store.Close()

			baselines, err := runner.Baselines(cmd.Context(), selectWorkloads(args, cfg))
			if err != nil {
				return err
			}
			if len(baselines) == 0 {
				printInfo("No baselines for config %s", cfg.Fingerprint())
				printNextStep("Record one with", "deltabench bench --save-baseline")
				return nil
			}
			fmt.Println(renderBaselines(baselines))
			printDetail("config %s", cfg.Fingerprint())
			return nil
		},
	}
}

func (c *CLI) baselineClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:               "clear [workload...]",
		Short:             "Delete saved baselines for the current configuration",
		ValidArgsFunction: completeWorkloads,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			runner, store, err := c.newRunner(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer store.Close()

			names := selectWorkloads(args, cfg)
			existing, err := runner.Baselines(cmd.Context(), names)
			if err != nil {
				return err
			}
			if err := runner.ClearBaselines(cmd.Context(), names); err != nil {
				return err
			}
			printSuccess("Cleared %d baselines", len(existing))
			return nil
		},
	}
}
