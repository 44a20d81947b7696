// Package cmd implements the ammix command line: offline decoding of AMM
// instructions, events and program logs, plus binding generation from IDLs.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/lugondev/go-ammix/internal/config"
	"github.com/lugondev/go-ammix/internal/metrics"
	"github.com/lugondev/go-ammix/pkg/decoder"
)

// app is the state every subcommand runs with, loaded before RunE.
type app struct {
	cfg      *config.Config
	logger   *slog.Logger
	registry *decoder.Registry
	metrics  *metrics.LogMetrics
}

// flagKeys maps persistent flags to the config keys they override.
var flagKeys = map[string]string{
	"log-level":  "log.level",
	"log-format": "log.format",
	"log-file":   "log.file",
	"format":     "output.format",
	"pretty":     "output.pretty",
	"strict":     "decode.strict",
	"workers":    "decode.workers",
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	var (
		cfgFile string
		a       = &app{}
	)

	rootCmd := &cobra.Command{
		Use:   "ammix",
		Short: "Decode and build Solana AMM instructions",
		Long: `ammix decodes instructions, events and transaction logs of the Meteora
DAMM v2, Raydium CLMM and Raydium CP-swap programs, and generates Go bindings
from Anchor IDLs.

Configuration is read from .ammix.yaml in the working directory or $HOME,
overridden by AMMIX_* environment variables and then by flags.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			v := config.New(cfgFile)
			for flag, key := range flagKeys {
				if err := v.BindPFlag(key, cmd.Flags().Lookup(flag)); err != nil {
					return fmt.Errorf("bind flag %s: %w", flag, err)
				}
			}
			return a.load(v, cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return a.metrics.Flush(cmd.Context())
		},
	}

	defaults := config.DefaultConfig()
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is ./.ammix.yaml or $HOME/.ammix.yaml)")
	flags.String("log-level", defaults.Log.Level, "log level (debug, info, warn, error)")
	flags.String("log-format", defaults.Log.Format, "log format (text, json)")
	flags.String("log-file", "", "write logs to a rotated file instead of stderr")
	flags.StringP("format", "f", defaults.Output.Format, "output format (json, yaml)")
	flags.Bool("pretty", defaults.Output.Pretty, "indent json output")
	flags.Bool("strict", defaults.Decode.Strict, "reject instruction data with trailing bytes")
	flags.Int("workers", defaults.Decode.Workers, "parallel workers for batch event decoding")

	rootCmd.AddCommand(
		newVersionCmd(),
		newProgramsCmd(a),
		newSchemaCmd(a),
		newDecodeCmd(a),
		newEventsCmd(a),
		newCodegenCmd(a),
	)
	return rootCmd
}

func (a *app) load(v *viper.Viper, cmd *cobra.Command) error {
	cfg, err := config.LoadViper(v)
	if err != nil {
		return err
	}
	logger, err := cfg.Logger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	registry, err := cfg.Registry()
	if err != nil {
		return err
	}

	if used := v.ConfigFileUsed(); used != "" {
		logger.Debug("loaded config", "file", used)
	}
	a.cfg, a.logger, a.registry = cfg, logger, registry
	a.metrics = metrics.NewLogMetrics(logger)
	return nil
}

// Execute runs the command line against os.Args.
func Execute() error {
	root := NewRootCmd()
	root.SetOut(os.Stdout)
	root.SetErr(os.Stderr)
	return root.Execute()
}
