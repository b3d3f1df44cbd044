// Package complete provides the runner logic for finishing todos.
package complete

import (
	"context"

	"focilab.dev/focilab/pkg/planner"
	"focilab.dev/focilab/pkg/printers"
)

// Complete marks a todo completed; Start marks it in-progress instead.
type Complete struct {
	ID    string
	Start bool

	Planner *planner.Planner
}

func (n *Complete) Do(ctx context.Context) error {
	update := n.Planner.CompleteTodo
	if n.Start {
		update = n.Planner.StartTodo
	}

	t, err := update(n.ID)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: true}
	pp.NewLine()
	pp.Title(t.Date)
	pp.Todos(n.Planner.TodosByDay(t.Date)...)
	return nil
}
