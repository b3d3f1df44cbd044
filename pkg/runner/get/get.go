// Package get provides the runner logic for listing todos.
package get

import (
	"context"

	"focilab.dev/focilab/pkg/planner"
	"focilab.dev/focilab/pkg/printers"
	"focilab.dev/focilab/pkg/timeutil"
)

// Get lists todos for one day bucket, the current week, or every bucket.
type Get struct {
	Day      string
	All      bool
	Weekly   bool
	Selected bool
	ShowID   bool

	Planner *planner.Planner
}

func (n *Get) Do(ctx context.Context) error {
	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.NewLine()

	switch {
	case n.Selected:
		pp.Title("Selected")
		pp.Todos(n.Planner.SelectedTodos()...)
		return nil

	case n.Weekly:
		pp.Title("Week of " + timeutil.WeekStart(n.Planner.Now()))
		pp.Todos(n.Planner.WeeklyTodos()...)
		return nil

	case n.All:
		for _, day := range timeutil.DayBuckets() {
			todos := n.Planner.TodosByDay(day)
			if len(todos) == 0 {
				continue
			}
			pp.TitleWithCount(day, len(todos))
			pp.Todos(todos...)
		}
		return nil

	default:
		day, err := timeutil.StandardizeDay(n.Day, n.Planner.Now())
		if err != nil {
			return err
		}
		pp.Title(day)
		pp.Todos(n.Planner.TodosByDay(day)...)
		return nil
	}
}
