package commands

import (
	"context"
	"errors"
	"strings"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"focilab.dev/focilab/pkg/commands/options"
	"focilab.dev/focilab/pkg/runner/milestones"
	"focilab.dev/focilab/pkg/store"
)

func addMilestone(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "milestone",
		Short: "Work with project milestones",
		Example: `
focilab milestone add frame the walls --project 1772447400000-ab2cd
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addMilestoneAdd(cmd)
	addMilestoneGet(cmd)
	addMilestoneComplete(cmd)
	addMilestoneDelete(cmd)

	topLevel.AddCommand(cmd)
}

func addMilestoneAdd(topLevel *cobra.Command) {
	po := &options.ProjectOptions{}
	name := ""

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a milestone to a project",
		Example: `
focilab milestone add frame the walls --project 1772447400000-ab2cd --due 2026-04-01
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires a milestone name")
			}
			name = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			if po.ProjectID == "" {
				return errors.New("requires --project")
			}
			p, err := store.Load(nil)
			if err != nil {
				return err
			}

			s := milestones.Add{
				ProjectID:   po.ProjectID,
				Name:        name,
				Description: po.Description,
				Due:         po.Due,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddProjectIDArgs(cmd, po)
	options.AddProjectArgs(cmd, po)
	options.AddDueArg(cmd, po)
	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

func addMilestoneGet(topLevel *cobra.Command) {
	po := &options.ProjectOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "get",
		Short: "List milestones",
		Example: `
focilab milestone get
focilab milestone get --project 1772447400000-ab2cd
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			p, err := store.Load(nil)
			if err != nil {
				return err
			}

			s := milestones.Get{
				ProjectID:   po.ProjectID,
				ShowID:      io.ShowID,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddProjectIDArgs(cmd, po)
	options.AddShowIDArgs(cmd, io)
	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

func addMilestoneComplete(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "complete <id>",
		Short: "Mark a milestone completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			p, err := store.Load(nil)
			if err != nil {
				return err
			}

			s := milestones.Complete{ID: args[0], Persistence: p}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

func addMilestoneDelete(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a milestone",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			p, err := store.Load(nil)
			if err != nil {
				return err
			}

			s := milestones.Delete{ID: args[0], Persistence: p}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
