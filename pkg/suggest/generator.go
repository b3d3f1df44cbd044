package suggest

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"focilab.dev/focilab/pkg/goal"
	"focilab.dev/focilab/pkg/id"
	"focilab.dev/focilab/pkg/planner"
	"focilab.dev/focilab/pkg/project"
	"focilab.dev/focilab/pkg/store"
	"focilab.dev/focilab/pkg/timeutil"
)

// ErrAlreadyGenerated is returned when suggestions for a day bucket were
// already generated and force was not set.
var ErrAlreadyGenerated = errors.New("suggest: suggestions already generated for this day")

// Generator drives one suggestion batch through
// idle → generating → populated (or back to idle on error/cancellation).
type Generator struct {
	Client  *Client
	Planner *planner.Planner

	generating atomic.Bool
}

// Generating reports whether a batch is currently in flight.
func (g *Generator) Generating() bool {
	return g.generating.Load()
}

// ForDay generates todo suggestions for the given day bucket. The
// has-generated flag gates re-runs unless force is set; cancellation of ctx
// aborts the in-flight completion call before it can mutate state.
func (g *Generator) ForDay(ctx context.Context, day string, force bool) ([]*planner.Suggestion, error) {
	bucket, err := timeutil.StandardizeDay(day, g.Planner.Now())
	if err != nil {
		return nil, err
	}
	if !force && g.Planner.HasGenerated(bucket) {
		return nil, ErrAlreadyGenerated
	}
	if !g.generating.CompareAndSwap(false, true) {
		return nil, errors.New("suggest: generation already in flight")
	}
	defer g.generating.Store(false)

	pctx, err := g.Planner.Context()
	if err != nil {
		return nil, err
	}
	todos, err := g.Client.Todos(ctx, pctx)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	texts := make([]string, 0, len(todos))
	for _, t := range todos {
		texts = append(texts, t.Title)
	}
	added, err := g.Planner.AddSuggestions(texts)
	if err != nil {
		return nil, err
	}
	if err := g.Planner.MarkGenerated(bucket); err != nil {
		return nil, err
	}
	return added, nil
}

// WeeklyGoals generates weekly goal proposals from the prompt context and
// records each as a goal on the current week.
func (g *Generator) WeeklyGoals(ctx context.Context) ([]*goal.Goal, error) {
	if !g.generating.CompareAndSwap(false, true) {
		return nil, errors.New("suggest: generation already in flight")
	}
	defer g.generating.Store(false)

	pctx, err := g.Planner.Context()
	if err != nil {
		return nil, err
	}
	proposed, err := g.Client.Goals(ctx, pctx)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	created := make([]*goal.Goal, 0, len(proposed))
	for _, gs := range proposed {
		rec, err := g.Planner.AddGoal(goal.Weekly, gs.Text)
		if err != nil {
			return created, err
		}
		created = append(created, rec)
	}
	return created, nil
}

// MilestonesForProject generates milestones for an AI-enabled project and
// writes them straight into the milestone store.
func (g *Generator) MilestonesForProject(ctx context.Context, p store.Persistence, projectID string) ([]*project.Milestone, error) {
	rec, err := p.Project(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if !rec.UseAI {
		return nil, fmt.Errorf("suggest: project %s has AI assistance disabled", rec.ID)
	}
	if !g.generating.CompareAndSwap(false, true) {
		return nil, errors.New("suggest: generation already in flight")
	}
	defer g.generating.Store(false)

	pctx, err := g.Planner.Context()
	if err != nil {
		return nil, err
	}
	proposed, err := g.Client.Milestones(ctx, pctx, rec.Title, rec.Description)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	created := make([]*project.Milestone, 0, len(proposed))
	for _, ms := range proposed {
		m := project.NewMilestone(rec.ID, ms.Name)
		m.ID = id.New()
		m.Description = ms.Description
		if ms.DueDate != "" {
			if due, err := time.Parse(timeutil.LayoutISO, ms.DueDate); err == nil {
				m.DueDate = &due
			}
		}
		if err := p.PutMilestone(m); err != nil {
			return created, err
		}
		created = append(created, m)
	}
	return created, nil
}
