package cli

import (
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/deltabench/pkg/deltablue"
	"github.com/matzehuels/deltabench/pkg/errors"
)

// scenarioFunc is the signature shared by the DeltaBlue scenarios.
type scenarioFunc func(p *deltablue.Planner, n int) error

// solveCommand creates the solve command and its scenario subcommands.
func (c *CLI) solveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Run a DeltaBlue scenario once and verify its results",
	}

	cmd.AddCommand(c.scenarioCommand("chain",
		"Propagate edits along a chain of equality constraints",
		deltablue.ChainTest))
	cmd.AddCommand(c.scenarioCommand("projection",
		"Edit a linear mapping between two variable sets from both sides",
		deltablue.ProjectionTest))

	return cmd
}

func (c *CLI) scenarioCommand(name, short string, run scenarioFunc) *cobra.Command {
	var (
		n           int
		repetitions int
	)

	cmd := &cobra.Command{
		Use:   name,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if n < 1 {
				return errors.New(errors.ErrCodeInvalidInput, "--n must be at least 1, got %d", n)
			}
			if repetitions < 1 {
				return errors.New(errors.ErrCodeInvalidInput, "--repetitions must be at least 1, got %d", repetitions)
			}

			logger := loggerFromContext(cmd.Context())
			p := deltablue.NewPlanner(
				deltablue.WithLogger(logger),
				deltablue.WithEditRepetitions(repetitions),
			)

			start := time.Now()
			err := run(p, n)
			elapsed := time.Since(start)

			printKeyValue("scenario", name)
			printKeyValue("size", strconv.Itoa(n))
			printKeyValue("edit repetitions", strconv.Itoa(repetitions))
			printKeyValue("marks issued", strconv.Itoa(p.CurrentMark()))
			printKeyValue("elapsed", elapsed.Round(time.Microsecond).String())

			if err != nil {
				printError("%s(%d) failed", name, n)
				return errors.Wrap(errors.ErrCodeBenchmarkFailed, err, "%s scenario", name)
			}
			printSuccess("%s(%d) verified", name, n)
			return nil
		},
	}

	cmd.Flags().IntVar(&n, "n", 100, "scenario size")
	cmd.Flags().IntVar(&repetitions, "repetitions", deltablue.DefaultEditRepetitions, "plan executions per edit")

	return cmd
}
