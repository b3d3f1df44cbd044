// Package move provides the runner logic for re-bucketing and removing todos.
package move

import (
	"context"

	"focilab.dev/focilab/pkg/planner"
	"focilab.dev/focilab/pkg/printers"
	"focilab.dev/focilab/pkg/timeutil"
)

// Move re-buckets a todo onto another day.
type Move struct {
	ID  string
	Day string

	Planner *planner.Planner
}

func (n *Move) Do(ctx context.Context) error {
	t, err := n.Planner.MoveTodo(n.ID, n.Day)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: true}
	pp.NewLine()
	pp.Title(t.Date)
	pp.Todos(n.Planner.TodosByDay(t.Date)...)
	return nil
}

// Select toggles a todo's membership in the focus selection.
type Select struct {
	ID string

	Planner *planner.Planner
}

func (n *Select) Do(ctx context.Context) error {
	if _, err := n.Planner.ToggleSelected(n.ID); err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: true}
	pp.NewLine()
	pp.Title("Selected")
	pp.Todos(n.Planner.SelectedTodos()...)
	return nil
}

// Delete removes a todo permanently.
type Delete struct {
	ID string

	Planner *planner.Planner
}

func (n *Delete) Do(ctx context.Context) error {
	return n.Planner.DeleteTodo(n.ID)
}

// Rollover carries unfinished weekly todos into the current week.
type Rollover struct {
	Window string

	Planner *planner.Planner
}

func (n *Rollover) Do(ctx context.Context) error {
	window, err := timeutil.ParseWindow(n.Window)
	if err != nil {
		return err
	}
	moved, err := n.Planner.Rollover(window)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.TitleWithCount("Rolled over", moved)
	pp.Todos(n.Planner.WeeklyTodos()...)
	return nil
}
