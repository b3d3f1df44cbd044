package commands

import (
	"context"
	"errors"
	"strings"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"focilab.dev/focilab/pkg/commands/options"
	"focilab.dev/focilab/pkg/runner/goals"
)

func addGoal(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "goal",
		Short: "Work with goals at the yearly, quarterly, and weekly horizons",
		Example: `
focilab goal add ship the beta --horizon quarterly
focilab goal get --all
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addGoalAdd(cmd)
	addGoalGet(cmd)
	addGoalComplete(cmd)
	addGoalDelete(cmd)

	topLevel.AddCommand(cmd)
}

func addGoalAdd(topLevel *cobra.Command) {
	ho := &options.HorizonOptions{}
	io := &options.IDOptions{}
	text := ""

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a goal",
		Example: `
focilab goal add run a marathon --horizon yearly
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires a goal")
			}
			text = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			h, err := goals.ParseHorizon(ho.Horizon)
			if err != nil {
				return err
			}
			_, pl, err := loadPlanner()
			if err != nil {
				return err
			}

			s := goals.Add{
				Horizon: h,
				Text:    text,
				ShowID:  io.ShowID,
				Planner: pl,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddHorizonArgs(cmd, ho)
	options.AddShowIDArgs(cmd, io)
	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

func addGoalGet(topLevel *cobra.Command) {
	ho := &options.HorizonOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "get",
		Short: "List goals",
		Example: `
focilab goal get --horizon weekly
focilab goal get --all
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			h, err := goals.ParseHorizon(ho.Horizon)
			if err != nil {
				return err
			}
			_, pl, err := loadPlanner()
			if err != nil {
				return err
			}

			s := goals.Get{
				Horizon: h,
				All:     ho.All,
				ShowID:  io.ShowID,
				Planner: pl,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddHorizonArgs(cmd, ho)
	options.AddAllHorizonsArg(cmd, ho)
	options.AddShowIDArgs(cmd, io)
	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

func addGoalComplete(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "complete <id>",
		Short: "Mark a goal completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			_, pl, err := loadPlanner()
			if err != nil {
				return err
			}

			s := goals.Complete{ID: args[0], Planner: pl}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

func addGoalDelete(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			_, pl, err := loadPlanner()
			if err != nil {
				return err
			}

			s := goals.Delete{ID: args[0], Planner: pl}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
