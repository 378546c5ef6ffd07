package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/ilyalavrinov/justforfun/adventofcode2024/internal/runner"
	"github.com/spf13/cobra"
)

func (a *app) runCmd() *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "run [day...]",
		Short: "Solve days on their sample and real input",
		Long: `Solves part 1 and part 2 of each given day, first on the bundled sample,
then on <input-dir>/dayNN/input.txt.

Answers are printed unless PRINT_RESULT is set to anything but "1".`,
		RunE: func(cmd *cobra.Command, args []string) error {
			days, err := parseDays(args)
			if err != nil {
				return err
			}
			if all && len(days) > 0 {
				return errors.New("--all cannot be combined with explicit days")
			}
			registry, err := a.registry()
			if err != nil {
				return err
			}
			r := runner.New(a.cfg, registry, a.store(), a.logger)

			if len(days) == 1 && !all {
				return r.Run(cmd.Context(), days[0], cmd.OutOrStdout())
			}
			if len(days) == 0 && !all {
				return fmt.Errorf("no days given, use --all to run every day")
			}
			return r.RunAll(cmd.Context(), cmd.OutOrStdout(), days...)
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "run every registered day")
	return cmd
}

func parseDays(args []string) ([]int, error) {
	days := make([]int, 0, len(args))
	for _, arg := range args {
		day, err := strconv.Atoi(arg)
		if err != nil || day < 1 || day > 25 {
			return nil, fmt.Errorf("bad day %q", arg)
		}
		days = append(days, day)
	}
	return days, nil
}
