package commands

import (
	"context"
	"errors"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"focilab.dev/focilab/pkg/commands/options"
	"focilab.dev/focilab/pkg/planner"
	"focilab.dev/focilab/pkg/runner/plan"
	"focilab.dev/focilab/pkg/store"
	"focilab.dev/focilab/pkg/suggest"
)

func addPlan(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Generate and review AI todo suggestions",
		Example: `
focilab plan generate --day mon
focilab plan approve 1772447400000-ab2cd
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addPlanGenerate(cmd)
	addPlanGoals(cmd)
	addPlanGet(cmd)
	addPlanApprove(cmd)
	addPlanDiscard(cmd)
	addPlanClear(cmd)
	addPlanMilestones(cmd)

	topLevel.AddCommand(cmd)
}

// loadGenerator builds a suggestion generator over a fresh planner using the
// configured completion endpoint.
func loadGenerator() (store.Persistence, *suggest.Generator, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, nil, err
	}
	p, err := store.Load(cfg)
	if err != nil {
		return nil, nil, err
	}
	pl, err := planner.New(p)
	if err != nil {
		return nil, nil, err
	}
	g := &suggest.Generator{
		Client:  suggest.NewClient(cfg.AI()),
		Planner: pl,
	}
	return p, g, nil
}

func addPlanGenerate(topLevel *cobra.Command) {
	do := &options.DayOptions{}
	io := &options.IDOptions{}
	force := false

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate todo suggestions for a day bucket",
		Example: `
focilab plan generate
focilab plan generate --day mon --force
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			_, g, err := loadGenerator()
			if err != nil {
				return err
			}

			s := plan.Generate{
				Day:       do.Day,
				Force:     force,
				ShowID:    io.ShowID,
				Generator: g,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddDayArgs(cmd, do)
	options.AddShowIDArgs(cmd, io)
	cmd.Flags().BoolVar(&force, "force", false,
		"Regenerate even if suggestions were already generated for the day.")
	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

func addPlanGoals(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "goals",
		Short: "Generate weekly goals from the vision and open goals",
		Example: `
focilab plan goals
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			_, g, err := loadGenerator()
			if err != nil {
				return err
			}

			s := plan.Goals{ShowID: io.ShowID, Generator: g}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddShowIDArgs(cmd, io)
	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

func addPlanGet(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "get",
		Short: "List pending suggestions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			_, pl, err := loadPlanner()
			if err != nil {
				return err
			}

			s := plan.Get{ShowID: io.ShowID, Planner: pl}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddShowIDArgs(cmd, io)
	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

func addPlanApprove(topLevel *cobra.Command) {
	do := &options.DayOptions{}

	cmd := &cobra.Command{
		Use:   "approve <id>",
		Short: "Promote a suggestion into a todo",
		Example: `
focilab plan approve 1772447400000-ab2cd --day tue
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			_, pl, err := loadPlanner()
			if err != nil {
				return err
			}

			s := plan.Approve{ID: args[0], Day: do.Day, Planner: pl}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddDayArgs(cmd, do)
	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

func addPlanDiscard(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "discard <id>",
		Short: "Discard a suggestion",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			_, pl, err := loadPlanner()
			if err != nil {
				return err
			}

			s := plan.Discard{ID: args[0], Planner: pl}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

func addPlanClear(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Discard every pending suggestion",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			_, pl, err := loadPlanner()
			if err != nil {
				return err
			}

			s := plan.Discard{Clear: true, Planner: pl}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

func addPlanMilestones(topLevel *cobra.Command) {
	po := &options.ProjectOptions{}

	cmd := &cobra.Command{
		Use:   "milestones",
		Short: "Generate milestones for an AI-enabled project",
		Example: `
focilab plan milestones --project 1772447400000-ab2cd
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			if po.ProjectID == "" {
				return errors.New("requires --project")
			}
			p, g, err := loadGenerator()
			if err != nil {
				return err
			}

			s := plan.Milestones{
				ProjectID:   po.ProjectID,
				Persistence: p,
				Generator:   g,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddProjectIDArgs(cmd, po)
	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
