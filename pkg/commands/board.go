package commands

import (
	"context"

	"github.com/spf13/cobra"

	"focilab.dev/focilab/pkg/tui"
)

func addBoard(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Open the interactive weekly planner board",
		Example: `
focilab board
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, pl, err := loadPlanner()
			if err != nil {
				return err
			}
			return tui.Run(context.Background(), pl, p)
		},
	}

	topLevel.AddCommand(cmd)
}
