package commands

import (
	"context"
	"strings"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"focilab.dev/focilab/pkg/runner/vision"
)

func addVision(topLevel *cobra.Command) {
	mainGoal := ""

	cmd := &cobra.Command{
		Use:   "vision [text]",
		Short: "Show or set the long-term vision and main goal",
		Example: `
focilab vision
focilab vision financial independence by forty
focilab vision --main-goal "ship the product"
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			_, pl, err := loadPlanner()
			if err != nil {
				return err
			}

			s := vision.Vision{
				Text:     strings.Join(args, " "),
				MainGoal: mainGoal,
				Planner:  pl,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().StringVar(&mainGoal, "main-goal", "",
		"Set the main goal.")
	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

func addWelcome(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "welcome [name]",
		Short: "Record first-run details",
		Example: `
focilab welcome Ada
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			_, pl, err := loadPlanner()
			if err != nil {
				return err
			}

			s := vision.Welcome{
				Name:    strings.Join(args, " "),
				Planner: pl,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
