// Package plan provides the runner logic for the AI suggestion workflow.
package plan

import (
	"context"
	"errors"
	"fmt"

	"focilab.dev/focilab/pkg/goal"
	"focilab.dev/focilab/pkg/planner"
	"focilab.dev/focilab/pkg/printers"
	"focilab.dev/focilab/pkg/store"
	"focilab.dev/focilab/pkg/suggest"
)

// Generate runs one suggestion batch for a day bucket.
type Generate struct {
	Day    string
	Force  bool
	ShowID bool

	Generator *suggest.Generator
}

func (n *Generate) Do(ctx context.Context) error {
	added, err := n.Generator.ForDay(ctx, n.Day, n.Force)
	if err != nil {
		if errors.Is(err, suggest.ErrAlreadyGenerated) {
			fmt.Println("Suggestions were already generated for this day. Use --force to regenerate.")
			return nil
		}
		return err
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.NewLine()
	pp.TitleWithCount("Suggestions", len(added))
	pp.Suggestions(n.Generator.Planner.Suggestions()...)
	return nil
}

// Get lists the pending suggestions.
type Get struct {
	ShowID bool

	Planner *planner.Planner
}

func (n *Get) Do(ctx context.Context) error {
	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.NewLine()
	pp.Title("Suggestions")
	pp.Suggestions(n.Planner.Suggestions()...)
	return nil
}

// Approve promotes a suggestion into a todo on the given day bucket.
type Approve struct {
	ID  string
	Day string

	Planner *planner.Planner
}

func (n *Approve) Do(ctx context.Context) error {
	t, err := n.Planner.ApproveSuggestion(n.ID, n.Day)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: true}
	pp.NewLine()
	pp.Title(t.Date)
	pp.Todos(n.Planner.TodosByDay(t.Date)...)
	pp.Title("Suggestions")
	pp.Suggestions(n.Planner.Suggestions()...)
	return nil
}

// Discard removes one suggestion, or all of them when Clear is set.
type Discard struct {
	ID    string
	Clear bool

	Planner *planner.Planner
}

func (n *Discard) Do(ctx context.Context) error {
	if n.Clear {
		return n.Planner.ClearSuggestions()
	}
	return n.Planner.DeleteSuggestion(n.ID)
}

// Goals generates weekly goals from the prompt context.
type Goals struct {
	ShowID bool

	Generator *suggest.Generator
}

func (n *Goals) Do(ctx context.Context) error {
	created, err := n.Generator.WeeklyGoals(ctx)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.NewLine()
	pp.TitleWithCount("Generated weekly goals", len(created))
	pp.Goals(n.Generator.Planner.Goals(goal.Weekly)...)
	return nil
}

// Milestones generates milestones for an AI-enabled project.
type Milestones struct {
	ProjectID string

	Persistence store.Persistence
	Generator   *suggest.Generator
}

func (n *Milestones) Do(ctx context.Context) error {
	created, err := n.Generator.MilestonesForProject(ctx, n.Persistence, n.ProjectID)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: true}
	pp.NewLine()
	pp.TitleWithCount("Generated milestones", len(created))
	pp.Milestones(created...)
	return nil
}
