package cmd

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/lugondev/go-ammix/internal/metrics"
	"github.com/lugondev/go-ammix/pkg/decoder"
	"github.com/lugondev/go-ammix/pkg/errors"
)

func newEventsCmd(a *app) *cobra.Command {
	var (
		program   string
		encoding  string
		logsPath  string
		keepGoing bool
	)

	cmd := &cobra.Command{
		Use:   "events [payload...]",
		Short: "Decode event payloads or transaction logs",
		Long: `Decode events either from payloads of one program or from the log
messages of a transaction.

Payloads are "Program data:" values or self-CPI instruction data. They are
decoded in parallel by the configured number of workers; payloads that match
no event are dropped unless --keep-going is set, which decodes in order and
reports each failure.

With --logs, each line of the file (or stdin for "-") is one log message.
Events of programs without a binding are skipped.

Example:
  ammix events -p damm -e base64 5JtX0Y...
  solana confirm -v <sig> | grep Program | ammix events --logs -`,
		RunE: func(cmd *cobra.Command, args []string) error {
			start := time.Now()
			if logsPath != "" {
				lines, err := readLines(logsPath, cmd.InOrStdin())
				if err != nil {
					return err
				}
				events, err := a.registry.DecodeLogs(lines)
				a.record(cmd.Context(), start, events, warn(a, err), 0)
				return a.render(cmd.OutOrStdout(), events)
			}

			if program == "" {
				return errors.Custom("either --program with payloads or --logs is required")
			}
			_, id, err := resolveProgram(a.registry, program)
			if err != nil {
				return err
			}
			payloads := make([][]byte, len(args))
			for i, arg := range args {
				if payloads[i], err = decodePayload(arg, encoding); err != nil {
					return err
				}
			}

			batch := decoder.NewBatchDecoder(a.registry)
			if keepGoing {
				res, err := batch.DecodeAllWithOptions(id, payloads, &decoder.BatchOptions{CollectErrors: true})
				if err != nil {
					return err
				}
				a.record(cmd.Context(), start, res.Events, warn(a, errors.Join(res.Errors...)), 0)
				return a.render(cmd.OutOrStdout(), res.Events)
			}

			events, err := batch.DecodeAllParallelWithContext(cmd.Context(), id, payloads, a.cfg.Decode.Workers)
			if err != nil {
				return err
			}
			a.record(cmd.Context(), start, events, 0, len(payloads)-len(events))
			return a.render(cmd.OutOrStdout(), events)
		},
	}

	cmd.Flags().StringVarP(&program, "program", "p", "", "program name or id")
	cmd.Flags().StringVarP(&encoding, "encoding", "e", encodingBase64, "payload encoding (hex, base58, base64)")
	cmd.Flags().StringVar(&logsPath, "logs", "", `file of log messages, "-" for stdin`)
	cmd.Flags().BoolVar(&keepGoing, "keep-going", false, "decode in order and report every failed payload")
	cmd.MarkFlagsMutuallyExclusive("logs", "program")
	return cmd
}

// warn logs each error joined into err and returns how many there were.
func warn(a *app, err error) int {
	if err == nil {
		return 0
	}
	var joined interface{ Unwrap() []error }
	if !errors.As(err, &joined) {
		a.logger.Warn("decode failed", "error", err)
		return 1
	}
	errs := joined.Unwrap()
	for _, e := range errs {
		var de *decoder.DecodeError
		if errors.As(e, &de) {
			a.logger.Warn("decode failed", "index", de.Index, "error", de.Err)
			continue
		}
		a.logger.Warn("decode failed", "error", e)
	}
	return len(errs)
}

func (a *app) record(ctx context.Context, start time.Time, events []*decoder.DecodedEvent, failed, dropped int) {
	for _, ev := range events {
		_ = a.metrics.IncrementCounter(ctx, metrics.Labeled(metrics.MetricEventsDecoded, ev.Program), 1)
	}
	if failed > 0 {
		_ = a.metrics.IncrementCounter(ctx, metrics.MetricDecodeFailures, uint64(failed))
	}
	if dropped > 0 {
		_ = a.metrics.IncrementCounter(ctx, metrics.MetricPayloadsDropped, uint64(dropped))
	}
	_ = metrics.Since(ctx, a.metrics, metrics.MetricDecodeMilliseconds, start)
	a.logger.Debug("decoded events", "events", len(events), "failed", failed, "dropped", dropped)
}
