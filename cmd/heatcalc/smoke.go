package main

import (
	"errors"
	"time"

	"github.com/spf13/cobra"

	"github.com/okian/sumoheat/internal/output"
	"github.com/okian/sumoheat/internal/smoke"
)

func newSmokeCmd(e *env) *cobra.Command {
	cfg := smoke.DefaultConfig()

	cmd := &cobra.Command{
		Use:   "smoke",
		Short: "Score random bouts against a running server and verify the results",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("seed") {
				cfg.Seed = time.Now().UnixNano()
			}
			stats, err := smoke.Run(cmd.Context(), cfg, e.log.Named("smoke"))
			if stats != nil {
				if rerr := output.Render(cmd.OutOrStdout(), e.format, stats); rerr != nil {
					return errors.Join(err, rerr)
				}
			}
			return err
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&cfg.BaseURL, "url", cfg.BaseURL, "base URL of the service")
	flags.IntVar(&cfg.NumBouts, "bouts", cfg.NumBouts, "number of bouts to generate")
	flags.IntVar(&cfg.Workers, "workers", cfg.Workers, "number of concurrent workers")
	flags.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "HTTP request timeout")
	flags.Int64Var(&cfg.Seed, "seed", 0, "generator seed (default: random)")
	flags.Float64Var(&cfg.RPS, "rps", cfg.RPS, "client-side request rate, 0 to disable")
	flags.BoolVarP(&cfg.Verbose, "verbose", "v", false, "log every verified bout at debug level")
	return cmd
}
