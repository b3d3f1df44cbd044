// Package info provides the runner that reports where data lives.
package info

import (
	"context"
	"fmt"
	"os"

	"focilab.dev/focilab/pkg/planner"
	"focilab.dev/focilab/pkg/store"
	"focilab.dev/focilab/pkg/timeutil"
)

type Info struct {
	Config      store.Config
	Persistence store.Persistence
	Planner     *planner.Planner
}

func (n *Info) Do(ctx context.Context) error {
	if override := os.Getenv("FOCILAB_CONFIG_PATH"); override != "" {
		fmt.Println("FOCILAB_CONFIG_PATH found on env, using ", override)
	} else {
		fmt.Println("FOCILAB_CONFIG_PATH env var not set")
	}

	if n.Config == nil {
		var err error
		n.Config, err = store.LoadConfig()
		if err != nil {
			return err
		}
	}

	fmt.Println("Config.path: ", n.Config.BasePath())

	if n.Persistence == nil {
		return fmt.Errorf("failed to create persistence object")
	}

	projects, err := n.Persistence.Projects(ctx)
	if err != nil {
		return err
	}
	milestones, err := n.Persistence.Milestones(ctx)
	if err != nil {
		return err
	}

	now := n.Planner.Now()
	fmt.Printf("Week of %s, Q%d\n", timeutil.WeekStart(now), timeutil.CurrentQuarter(now))
	fmt.Printf("Projects: %d\n", len(projects))
	fmt.Printf("Milestones: %d\n", len(milestones))
	fmt.Printf("Daily todos: %d\n", len(n.Planner.Todos()))
	fmt.Printf("Weekly todos: %d\n", len(n.Planner.WeeklyTodos()))
	fmt.Printf("Pending suggestions: %d\n", len(n.Planner.Suggestions()))

	return nil
}
