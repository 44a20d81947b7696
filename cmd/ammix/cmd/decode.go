package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/spf13/cobra"

	"github.com/lugondev/go-ammix/internal/metrics"
	"github.com/lugondev/go-ammix/pkg/decoder"
	"github.com/lugondev/go-ammix/pkg/types"
)

func newDecodeCmd(a *app) *cobra.Command {
	var (
		program  string
		encoding string
		accounts []string
	)

	cmd := &cobra.Command{
		Use:   "decode <data>",
		Short: "Decode instruction data",
		Long: `Decode one instruction payload of a registered program. When the
instruction's accounts are given in order, each is labelled with its role and
accounts past the declared roles are listed as remaining.

An account is a base58 pubkey optionally followed by ":s" (signer), ":w"
(writable) or ":sw".

Example:
  ammix decode --program cpswap 8fbe5adac41e33de00e1f50500000000...
  ammix decode -p damm -e base58 --accounts Pool...:w,Payer...:sw <data>`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, id, err := resolveProgram(a.registry, program)
			if err != nil {
				return err
			}
			data, err := decodePayload(args[0], encoding)
			if err != nil {
				return err
			}

			start := time.Now()
			var out *decoder.DecodedInstruction
			if len(accounts) == 0 {
				out, err = a.registry.DecodeInstructionData(id, data)
			} else {
				metas, perr := parseAccountMetas(accounts)
				if perr != nil {
					return perr
				}
				out, err = a.registry.DecodeInstruction(&types.Instruction{
					ProgramID: id,
					Accounts:  metas,
					Data:      data,
				})
			}
			if err != nil {
				_ = a.metrics.IncrementCounter(cmd.Context(), metrics.MetricDecodeFailures, 1)
				return err
			}
			_ = a.metrics.IncrementCounter(cmd.Context(), metrics.Labeled(metrics.MetricInstructionsDecoded, out.Program), 1)
			_ = metrics.Since(cmd.Context(), a.metrics, metrics.MetricDecodeMilliseconds, start)

			a.logger.Debug("decoded instruction",
				"program", out.Program,
				"name", out.Name,
				"accounts", len(out.Accounts),
				"remaining", len(out.Remaining))
			return a.render(cmd.OutOrStdout(), out)
		},
	}

	cmd.Flags().StringVarP(&program, "program", "p", "", "program name or id (required)")
	cmd.Flags().StringVarP(&encoding, "encoding", "e", encodingHex, "payload encoding (hex, base58, base64)")
	cmd.Flags().StringSliceVar(&accounts, "accounts", nil, "instruction accounts in order, as PUBKEY[:s][:w]")
	_ = cmd.MarkFlagRequired("program")
	return cmd
}

func parseAccountMetas(entries []string) ([]*solana.AccountMeta, error) {
	metas := make([]*solana.AccountMeta, len(entries))
	for i, entry := range entries {
		key, flags, _ := strings.Cut(strings.TrimSpace(entry), ":")
		pk, err := solana.PublicKeyFromBase58(key)
		if err != nil {
			return nil, fmt.Errorf("account %d: %w", i, err)
		}
		meta := &solana.AccountMeta{PublicKey: pk}
		for _, f := range strings.ReplaceAll(flags, ":", "") {
			switch f {
			case 's':
				meta.IsSigner = true
			case 'w':
				meta.IsWritable = true
			default:
				return nil, fmt.Errorf("account %d: unknown flag %q", i, f)
			}
		}
		metas[i] = meta
	}
	return metas, nil
}
