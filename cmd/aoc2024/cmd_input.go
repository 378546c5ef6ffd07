package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

func (a *app) saveInputCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "save-input day [file]",
		Short: "Copy a puzzle input into the input dir",
		Long:  "Reads the input from file, or from stdin when no file is given. Existing inputs are never overwritten.",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			days, err := parseDays(args[:1])
			if err != nil {
				return err
			}

			var reader io.Reader = cmd.InOrStdin()
			if len(args) == 2 {
				f, err := os.Open(args[1])
				if err != nil {
					return fmt.Errorf("cannot open input: %w", err)
				}
				defer f.Close()
				reader = f
			}
			return a.store().Save(cmd.Context(), days[0], reader)
		},
	}
}
