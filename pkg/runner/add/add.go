// Package add provides the runner logic for creating todos.
package add

import (
	"context"

	"focilab.dev/focilab/pkg/planner"
	"focilab.dev/focilab/pkg/printers"
)

// Add creates a todo in a day bucket, or in the current week when Weekly is
// set.
type Add struct {
	Title  string
	Day    string
	Weekly bool
	ShowID bool

	Planner *planner.Planner
}

func (n *Add) Do(ctx context.Context) error {
	pp := printers.PrettyPrint{ShowID: n.ShowID}

	if n.Weekly {
		t, err := n.Planner.AddWeeklyTodo(n.Title)
		if err != nil {
			return err
		}
		pp.NewLine()
		pp.Title("Week of " + t.WeekStart)
		pp.Todos(n.Planner.WeeklyTodos()...)
		return nil
	}

	t, err := n.Planner.AddTodo(n.Title, n.Day)
	if err != nil {
		return err
	}

	pp.NewLine()
	pp.Title(t.Date)
	pp.Todos(n.Planner.TodosByDay(t.Date)...)
	return nil
}
