package cmd

import (
	"github.com/gagliardetto/solana-go"
	"github.com/spf13/cobra"
)

type programRow struct {
	Name         string           `json:"name" yaml:"name"`
	ProgramID    solana.PublicKey `json:"program_id" yaml:"program_id"`
	Width        int              `json:"discriminator_width" yaml:"discriminator_width"`
	Instructions int              `json:"instructions" yaml:"instructions"`
	Events       int              `json:"events" yaml:"events"`
}

func newProgramsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "programs",
		Short: "List the registered program bindings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries := a.registry.List()
			rows := make([]programRow, len(entries))
			for i, e := range entries {
				rows[i] = programRow{
					Name:         e.Program.Name(),
					ProgramID:    e.ProgramID,
					Width:        e.Program.InstructionTable().Width(),
					Instructions: e.Program.InstructionTable().Len(),
					Events:       e.Program.EventTable().Len(),
				}
			}
			return a.render(cmd.OutOrStdout(), rows)
		},
	}
}
