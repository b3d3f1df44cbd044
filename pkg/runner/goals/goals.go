// Package goals provides the runner logic for goal operations at each
// planning horizon.
package goals

import (
	"context"
	"fmt"
	"strings"

	"focilab.dev/focilab/pkg/goal"
	"focilab.dev/focilab/pkg/planner"
	"focilab.dev/focilab/pkg/printers"
)

func horizonTitle(h goal.Horizon, pl *planner.Planner) string {
	switch h {
	case goal.Quarterly:
		return fmt.Sprintf("Quarterly goals (Q%d)", quarterOf(pl))
	case goal.Weekly:
		return "Weekly goals"
	default:
		return "Yearly goals"
	}
}

func quarterOf(pl *planner.Planner) int {
	// Matches the stamp AddGoal applies.
	now := pl.Now()
	return (int(now.Month())-1)/3 + 1
}

// Add creates a goal at the given horizon.
type Add struct {
	Horizon goal.Horizon
	Text    string
	ShowID  bool

	Planner *planner.Planner
}

func (n *Add) Do(ctx context.Context) error {
	if _, err := n.Planner.AddGoal(n.Horizon, n.Text); err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.NewLine()
	pp.Title(horizonTitle(n.Horizon, n.Planner))
	pp.Goals(n.Planner.Goals(n.Horizon)...)
	return nil
}

// Get lists goals for one horizon, or all of them.
type Get struct {
	Horizon goal.Horizon
	All     bool
	ShowID  bool

	Planner *planner.Planner
}

func (n *Get) Do(ctx context.Context) error {
	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.NewLine()

	horizons := []goal.Horizon{n.Horizon}
	if n.All {
		horizons = []goal.Horizon{goal.Yearly, goal.Quarterly, goal.Weekly}
	}
	for _, h := range horizons {
		pp.Title(horizonTitle(h, n.Planner))
		pp.Goals(n.Planner.Goals(h)...)
	}
	return nil
}

// Complete marks a goal completed.
type Complete struct {
	ID string

	Planner *planner.Planner
}

func (n *Complete) Do(ctx context.Context) error {
	g, err := n.Planner.CompleteGoal(n.ID)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: true}
	pp.NewLine()
	pp.Title(horizonTitle(g.Horizon, n.Planner))
	pp.Goals(n.Planner.Goals(g.Horizon)...)
	return nil
}

// Delete removes a goal permanently.
type Delete struct {
	ID string

	Planner *planner.Planner
}

func (n *Delete) Do(ctx context.Context) error {
	return n.Planner.DeleteGoal(n.ID)
}

// ParseHorizon maps CLI arguments onto a goal horizon.
func ParseHorizon(s string) (goal.Horizon, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "year", "yearly":
		return goal.Yearly, nil
	case "quarter", "quarterly":
		return goal.Quarterly, nil
	case "week", "weekly":
		return goal.Weekly, nil
	}
	return "", fmt.Errorf("unknown horizon %q: use yearly, quarterly, or weekly", s)
}
