package commands

import (
	"context"

	"github.com/spf13/cobra"

	"focilab.dev/focilab/pkg/runner/info"
)

func addInfo(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Show where data lives and what is in it",
		Example: `
focilab info
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			p, pl, err := loadPlanner()
			if err != nil {
				return err
			}

			s := info.Info{Persistence: p, Planner: pl}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
