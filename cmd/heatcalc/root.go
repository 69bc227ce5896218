package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/okian/sumoheat/internal/config"
	"github.com/okian/sumoheat/internal/domain/scoring"
	"github.com/okian/sumoheat/internal/output"
	"github.com/okian/sumoheat/pkg/logger"
)

// globalFlags are shared by every subcommand.
type globalFlags struct {
	output   string
	locale   string
	logLevel string
}

// env is resolved once per invocation from the flags and the HEATSCORE_*
// configuration.
type env struct {
	format string
	locale scoring.Locale
	log    logger.Logger
}

func newRootCmd() *cobra.Command {
	g := &globalFlags{}
	e := &env{}

	root := &cobra.Command{
		Use:           "heatcalc",
		Short:         "Compute the heat score of a sumo bout",
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			resolved, err := resolveEnv(cmd, g)
			if err != nil {
				return err
			}
			*e = *resolved
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&g.output, "output", "o", output.FormatTable, "output format: table, json or yaml")
	pf.StringVar(&g.locale, "locale", "", "factor label language: ja or en (default from HEATSCORE_LABEL_LOCALE)")
	pf.StringVar(&g.logLevel, "log-level", "", "log level: debug, info, warn or error (default from HEATSCORE_LOG_LEVEL)")

	root.AddCommand(newScoreCmd(e))
	root.AddCommand(newRanksCmd(e))
	root.AddCommand(newDaysCmd(e))
	root.AddCommand(newSmokeCmd(e))
	return root
}

// resolveEnv layers the flags over the loaded configuration. Logs go to
// stderr so table output on stdout stays clean.
func resolveEnv(cmd *cobra.Command, g *globalFlags) (*env, error) {
	cfg, err := config.Load(cmd.Context())
	if err != nil {
		return nil, err
	}

	format, err := output.ParseFormat(g.output)
	if err != nil {
		return nil, err
	}

	locale := cfg.Locale()
	if g.locale != "" {
		if locale, err = scoring.ParseLocale(g.locale); err != nil {
			return nil, err
		}
	}

	level := cfg.LogLevel
	if g.logLevel != "" {
		level = g.logLevel
	}
	if err := logger.Init(
		logger.WithFormat(cfg.LogFormat),
		logger.WithLevel(level),
		logger.WithWriter(cmd.ErrOrStderr()),
	); err != nil {
		return nil, fmt.Errorf("initialize logging: %w", err)
	}

	return &env{
		format: format,
		locale: locale,
		log:    logger.Named("heatcalc"),
	}, nil
}
