package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *app) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List solved days",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			registry, err := a.registry()
			if err != nil {
				return err
			}
			for _, day := range registry.Days() {
				fmt.Fprintf(cmd.OutOrStdout(), "day%02d\n", day)
			}
			return nil
		},
	}
}
