package main

import (
	"github.com/spf13/cobra"

	"github.com/okian/sumoheat/internal/domain/types"
	"github.com/okian/sumoheat/internal/output"
)

func newRanksCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "ranks",
		Short: "List the 19 ranks with their strengths",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return output.Render(cmd.OutOrStdout(), e.format, types.Ranks())
		},
	}
}

func newDaysCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "days",
		Short: "List the 15 tournament days with their record caps",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return output.Render(cmd.OutOrStdout(), e.format, types.Days())
		},
	}
}
