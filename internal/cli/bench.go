package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/deltabench/pkg/harness"
	"github.com/matzehuels/deltabench/pkg/workloads"
)

// benchOpts holds the flags of the bench command.
type benchOpts struct {
	warmup       time.Duration
	duration     time.Duration
	pick         bool
	saveBaseline bool
}

// benchCommand creates the bench command.
func (c *CLI) benchCommand() *cobra.Command {
	var opts benchOpts

	cmd := &cobra.Command{
		Use:   "bench [workload...]",
		Short: "Measure workloads and report runs per second",
		Long: `Measure workloads and report runs per second.

Each workload is warmed up, then run repeatedly for at least the measurement
duration. Without arguments the workloads from the config file are run, or all
registered workloads if the config names none.`,
		Example: `  deltabench bench
  deltabench bench DeltaBlue --duration 5s
  deltabench bench --pick --save-baseline`,
		ValidArgsFunction: completeWorkloads,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("warmup") {
				cfg.Warmup = opts.warmup
			}
			if cmd.Flags().Changed("duration") {
				cfg.Duration = opts.duration
			}

			names := selectWorkloads(args, cfg)
			if opts.pick {
				names, err = pickWorkloads(names)
				if err != nil {
					return err
				}
				if len(names) == 0 {
					printInfo("Nothing selected")
					return nil
				}
			}

			return c.runBench(cmd.Context(), cfg, names, opts.saveBaseline)
		},
	}

	cmd.Flags().DurationVar(&opts.warmup, "warmup", harness.DefaultWarmup, "warm-up time per workload")
	cmd.Flags().DurationVar(&opts.duration, "duration", harness.DefaultDuration, "minimum measurement time per workload")
	cmd.Flags().BoolVar(&opts.pick, "pick", false, "choose workloads interactively")
	cmd.Flags().BoolVar(&opts.saveBaseline, "save-baseline", false, "store the results as the new baseline")

	return cmd
}

// selectWorkloads applies the precedence args > config > all registered.
func selectWorkloads(args []string, cfg harness.Config) []string {
	switch {
	case len(args) > 0:
		return args
	case len(cfg.Workloads) > 0:
		return cfg.Workloads
	default:
		return workloads.Names()
	}
}

func (c *CLI) runBench(ctx context.Context, cfg harness.Config, names []string, save bool) error {
	runner, store, err := c.newRunner(ctx, cfg)
	if err != nil {
		return err
	}
	defer store.Close()
	runner.SaveBaseline = save

	logger := loggerFromContext(ctx)
	logger.Debug("benchmark config", "warmup", cfg.Warmup, "duration", cfg.Duration,
		"chain", cfg.ChainSize, "projection", cfg.ProjectionSize, "edits", cfg.EditRepetitions)

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Measuring %s (1/%d)", names[0], len(names)))
	done := 0
	runner.OnResult = func(r harness.Result) {
		done++
		if done < len(names) {
			spinner.SetMessage(fmt.Sprintf("Measuring %s (%d/%d)", names[done], done+1, len(names)))
		}
	}

	prog := newProgress(logger)
	spinner.Start()
	results, err := runner.Run(ctx, names)
	spinner.Stop()

	if len(results) > 0 {
		fmt.Println(renderResults(results))
	}
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Measured %d workloads", len(results)))

	if save {
		printSuccess("Saved %d baselines", len(results))
	} else if !c.noCache && !hasBaseline(results) {
		printNextStep("Record a baseline to compare against", "deltabench bench --save-baseline")
	}
	return nil
}

func hasBaseline(results []harness.Result) bool {
	for _, r := range results {
		if r.Baseline != nil {
			return true
		}
	}
	return false
}

// completeWorkloads offers registered workload names for shell completion.
func completeWorkloads(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var out []string
	for _, w := range workloads.All() {
		out = append(out, w.Name+"\t"+w.Description)
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}
