package commands

import (
	"context"
	"errors"
	"strings"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"focilab.dev/focilab/pkg/commands/options"
	"focilab.dev/focilab/pkg/runner/add"
	"focilab.dev/focilab/pkg/runner/complete"
	"focilab.dev/focilab/pkg/runner/get"
	"focilab.dev/focilab/pkg/runner/move"
)

func addTodo(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "todo",
		Short: "Work with todos",
		Example: `
focilab todo add buy milk --day mon
focilab todo get --all
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addTodoAdd(cmd)
	addTodoGet(cmd)
	addTodoComplete(cmd)
	addTodoStart(cmd)
	addTodoMove(cmd)
	addTodoSelect(cmd)
	addTodoDelete(cmd)
	addTodoRollover(cmd)

	topLevel.AddCommand(cmd)
}

func addTodoAdd(topLevel *cobra.Command) {
	do := &options.DayOptions{}
	io := &options.IDOptions{}
	title := ""

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a todo to a day bucket",
		Example: `
focilab todo add buy milk --day mon
focilab todo add plan sprint --weekly
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires a todo title")
			}
			title = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			_, pl, err := loadPlanner()
			if err != nil {
				return err
			}

			s := add.Add{
				Title:   title,
				Day:     do.Day,
				Weekly:  do.Weekly,
				ShowID:  io.ShowID,
				Planner: pl,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddDayArgs(cmd, do)
	options.AddWeeklyArg(cmd, do)
	options.AddShowIDArgs(cmd, io)
	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

func addTodoGet(topLevel *cobra.Command) {
	do := &options.DayOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "get",
		Short: "List todos",
		Example: `
focilab todo get
focilab todo get --day fri
focilab todo get --weekly
focilab todo get --selected
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			_, pl, err := loadPlanner()
			if err != nil {
				return err
			}

			s := get.Get{
				Day:      do.Day,
				All:      do.All,
				Weekly:   do.Weekly,
				Selected: do.Selected,
				ShowID:   io.ShowID,
				Planner:  pl,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddDayArgs(cmd, do)
	options.AddWeeklyArg(cmd, do)
	options.AddScopeArgs(cmd, do)
	options.AddShowIDArgs(cmd, io)
	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

func addTodoComplete(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "complete <id>",
		Short: "Mark a todo completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			_, pl, err := loadPlanner()
			if err != nil {
				return err
			}

			s := complete.Complete{ID: args[0], Planner: pl}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

func addTodoStart(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "start <id>",
		Short: "Mark a todo in progress",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			_, pl, err := loadPlanner()
			if err != nil {
				return err
			}

			s := complete.Complete{ID: args[0], Start: true, Planner: pl}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

func addTodoMove(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "move <id> <day>",
		Short: "Move a todo to another day bucket",
		Example: `
focilab todo move 1772447400000-ab2cd fri
`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			_, pl, err := loadPlanner()
			if err != nil {
				return err
			}

			s := move.Move{ID: args[0], Day: args[1], Planner: pl}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

func addTodoSelect(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "select <id>",
		Short: "Toggle a todo in the focus selection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			_, pl, err := loadPlanner()
			if err != nil {
				return err
			}

			s := move.Select{ID: args[0], Planner: pl}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

func addTodoDelete(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a todo",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			_, pl, err := loadPlanner()
			if err != nil {
				return err
			}

			s := move.Delete{ID: args[0], Planner: pl}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

func addTodoRollover(topLevel *cobra.Command) {
	window := ""

	cmd := &cobra.Command{
		Use:   "rollover",
		Short: "Carry unfinished weekly todos into the current week",
		Example: `
focilab todo rollover
focilab todo rollover --window 2w
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			_, pl, err := loadPlanner()
			if err != nil {
				return err
			}

			s := move.Rollover{Window: window, Planner: pl}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().StringVar(&window, "window", "1w",
		"How far back to pick up unfinished todos, e.g. 1w or 10d.")
	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
