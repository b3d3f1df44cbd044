package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"focilab.dev/focilab/pkg/planner"
	"focilab.dev/focilab/pkg/store"
)

var (
	output = &base.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "focilab",
		Short: base.Wrap80("Weekly planning, goals, and projects on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addBoard(topLevel)
	addTodo(topLevel)
	addGoal(topLevel)
	addProject(topLevel)
	addMilestone(topLevel)
	addPlan(topLevel)
	addVision(topLevel)
	addWelcome(topLevel)
	addInfo(topLevel)
	addVersion(topLevel)
}

// loadPlanner builds the persistence layer and a planner over it using the
// ambient configuration.
func loadPlanner() (store.Persistence, *planner.Planner, error) {
	p, err := store.Load(nil)
	if err != nil {
		return nil, nil, err
	}
	pl, err := planner.New(p)
	if err != nil {
		return nil, nil, err
	}
	return p, pl, nil
}
