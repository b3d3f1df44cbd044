package commands

import (
	"context"
	"errors"
	"strings"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"focilab.dev/focilab/pkg/commands/options"
	"focilab.dev/focilab/pkg/runner/projects"
	"focilab.dev/focilab/pkg/store"
)

func addProject(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Work with projects",
		Example: `
focilab project add rebuild the deck --ai
focilab project current
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addProjectAdd(cmd)
	addProjectGet(cmd)
	addProjectStatus(cmd)
	addProjectComplete(cmd)
	addProjectCurrent(cmd)
	addProjectDelete(cmd)

	topLevel.AddCommand(cmd)
}

func addProjectAdd(topLevel *cobra.Command) {
	po := &options.ProjectOptions{}
	io := &options.IDOptions{}
	title := ""

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a project",
		Example: `
focilab project add rebuild the deck --description "backyard refresh" --ai
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires a project title")
			}
			title = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			p, err := store.Load(nil)
			if err != nil {
				return err
			}

			s := projects.Add{
				Title:       title,
				Description: po.Description,
				UseAI:       po.UseAI,
				ShowID:      io.ShowID,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddProjectArgs(cmd, po)
	options.AddShowIDArgs(cmd, io)
	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

func addProjectGet(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "get [id]",
		Short: "List projects, or show one with its milestones",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			p, err := store.Load(nil)
			if err != nil {
				return err
			}

			s := projects.Get{ShowID: io.ShowID, Persistence: p}
			if len(args) == 1 {
				s.ID = args[0]
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddShowIDArgs(cmd, io)
	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

func addProjectStatus(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "status <id> <status>",
		Short: "Set a project's status",
		Example: `
focilab project status 1772447400000-ab2cd in-progress
`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			status, err := projects.ParseStatus(args[1])
			if err != nil {
				return err
			}
			p, err := store.Load(nil)
			if err != nil {
				return err
			}

			s := projects.Status{ID: args[0], Status: status, Persistence: p}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

func addProjectComplete(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "complete <id>",
		Short: "Mark a project completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			p, err := store.Load(nil)
			if err != nil {
				return err
			}

			s := projects.Status{ID: args[0], Complete: true, Persistence: p}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

func addProjectCurrent(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "current [id]",
		Short: "Show or set the current-work project",
		Example: `
focilab project current
focilab project current 1772447400000-ab2cd
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			p, err := store.Load(nil)
			if err != nil {
				return err
			}

			s := projects.Current{Persistence: p}
			if len(args) == 1 {
				s.ID = args[0]
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

func addProjectDelete(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a project and its milestones",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			p, err := store.Load(nil)
			if err != nil {
				return err
			}

			s := projects.Delete{ID: args[0], Persistence: p}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
