package cmd

import (
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/spf13/cobra"

	"github.com/lugondev/go-ammix/pkg/codec"
	"github.com/lugondev/go-ammix/pkg/utils"
)

type programSchema struct {
	Program      string           `json:"program" yaml:"program"`
	ProgramID    solana.PublicKey `json:"program_id" yaml:"program_id"`
	Instructions []codec.Entry    `json:"instructions" yaml:"instructions"`
	Events       []codec.Entry    `json:"events" yaml:"events"`
}

func newSchemaCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "schema <program> [instruction]",
		Short: "Show discriminators or the account roles of an instruction",
		Long: `Without an instruction name, schema lists the instruction and event
discriminators of a program. With one, it prints the ordered account roles the
instruction expects along with the flags of each role. Names may be given
in snake or Pascal case.

Example:
  ammix schema damm
  ammix schema clmm swap_v2`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, id, err := resolveProgram(a.registry, args[0])
			if err != nil {
				return err
			}

			if len(args) == 1 {
				return a.render(cmd.OutOrStdout(), programSchema{
					Program:      p.Name(),
					ProgramID:    id,
					Instructions: p.InstructionTable().Entries(),
					Events:       p.EventTable().Entries(),
				})
			}

			schema, ok := p.Schema(args[1])
			if !ok {
				schema, ok = p.Schema(utils.ToPascalCase(args[1]))
			}
			if !ok {
				return fmt.Errorf("%s has no instruction %q", p.Name(), args[1])
			}
			return a.render(cmd.OutOrStdout(), schema)
		},
	}
}
