// Package planner provides the high-level planning operations over the
// persisted todo, goal, project, and suggestion collections. It keeps an
// in-memory view of the flat-storage collections and persists every mutation
// before returning, so callers never observe state ahead of storage.
package planner

import (
	"errors"
	"fmt"
	"time"

	"focilab.dev/focilab/pkg/goal"
	"focilab.dev/focilab/pkg/id"
	"focilab.dev/focilab/pkg/store"
	"focilab.dev/focilab/pkg/timeutil"
	"focilab.dev/focilab/pkg/todo"
)

var ErrNotFound = errors.New("planner: not found")

// Planner is the shared service CLIs and the TUI drive.
type Planner struct {
	Persistence store.Persistence

	// Now is swappable for tests; defaults to time.Now.
	Now func() time.Time

	daily        []*todo.Todo
	weekly       []*todo.Todo
	goals        map[goal.Horizon][]*goal.Goal
	suggestions  []*Suggestion
	hasGenerated map[string]bool
}

// New loads the persisted collections into a Planner.
func New(p store.Persistence) (*Planner, error) {
	if p == nil {
		return nil, errors.New("planner: no persistence configured")
	}
	pl := &Planner{
		Persistence: p,
		Now:         time.Now,
		goals:       make(map[goal.Horizon][]*goal.Goal),
	}
	if err := pl.Reload(); err != nil {
		return nil, err
	}
	return pl, nil
}

// Reload rereads every flat collection from storage.
func (pl *Planner) Reload() error {
	flat := pl.Persistence.Flat()

	daily, err := flat.LoadTodos(store.KeyDailyTodos)
	if err != nil {
		return err
	}
	weekly, err := flat.LoadTodos(store.KeyWeeklyTodos)
	if err != nil {
		return err
	}
	goals := make(map[goal.Horizon][]*goal.Goal, 3)
	for h, key := range goalKeys {
		list, err := flat.LoadGoals(key, h)
		if err != nil {
			return err
		}
		goals[h] = list
	}
	var suggestions []*Suggestion
	if _, err := flat.LoadJSON(store.KeySuggestions, &suggestions); err != nil {
		return err
	}
	hasGenerated := make(map[string]bool)
	if _, err := flat.LoadJSON(store.KeyHasGenerated, &hasGenerated); err != nil {
		return err
	}

	pl.daily = daily
	pl.weekly = weekly
	pl.goals = goals
	pl.suggestions = suggestions
	pl.hasGenerated = hasGenerated
	return nil
}

var goalKeys = map[goal.Horizon]string{
	goal.Yearly:    store.KeyYearlyGoals,
	goal.Quarterly: store.KeyQuarterlyGoals,
	goal.Weekly:    store.KeyWeeklyGoals,
}

func (pl *Planner) saveDaily() error {
	return pl.Persistence.Flat().SaveTodos(store.KeyDailyTodos, pl.daily)
}

func (pl *Planner) saveWeekly() error {
	return pl.Persistence.Flat().SaveTodos(store.KeyWeeklyTodos, pl.weekly)
}

func (pl *Planner) saveGoals(h goal.Horizon) error {
	return pl.Persistence.Flat().SaveGoals(goalKeys[h], pl.goals[h])
}

// AddTodo creates a todo in the given day bucket with a fresh id and the
// default not-started status.
func (pl *Planner) AddTodo(title, day string) (*todo.Todo, error) {
	bucket, err := timeutil.StandardizeDay(day, pl.Now())
	if err != nil {
		return nil, err
	}
	t := todo.New(title, bucket)
	t.ID = id.New()
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("planner: %w", err)
	}
	pl.daily = append(pl.daily, t)
	if err := pl.saveDaily(); err != nil {
		pl.daily = pl.daily[:len(pl.daily)-1]
		return nil, err
	}
	return t, nil
}

// AddWeeklyTodo creates a todo scoped to the current week.
func (pl *Planner) AddWeeklyTodo(title string) (*todo.Todo, error) {
	now := pl.Now()
	t := todo.New(title, now.Weekday().String())
	t.ID = id.New()
	t.WeekStart = timeutil.WeekStart(now)
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("planner: %w", err)
	}
	pl.weekly = append(pl.weekly, t)
	if err := pl.saveWeekly(); err != nil {
		pl.weekly = pl.weekly[:len(pl.weekly)-1]
		return nil, err
	}
	return t, nil
}

func (pl *Planner) findTodo(todoID string) (*todo.Todo, bool) {
	for _, t := range pl.daily {
		if t.ID == todoID {
			return t, false
		}
	}
	for _, t := range pl.weekly {
		if t.ID == todoID {
			return t, true
		}
	}
	return nil, false
}

// UpdateTodo applies a partial patch to the todo with the given id and
// persists the collection it lives in.
func (pl *Planner) UpdateTodo(todoID string, patch todo.Patch) (*todo.Todo, error) {
	t, weekly := pl.findTodo(todoID)
	if t == nil {
		return nil, ErrNotFound
	}
	before := *t
	patch.Apply(t)
	if err := t.Validate(); err != nil {
		*t = before
		return nil, fmt.Errorf("planner: %w", err)
	}
	save := pl.saveDaily
	if weekly {
		save = pl.saveWeekly
	}
	if err := save(); err != nil {
		*t = before
		return nil, err
	}
	return t, nil
}

// DeleteTodo removes the todo with the given id.
func (pl *Planner) DeleteTodo(todoID string) error {
	for i, t := range pl.daily {
		if t.ID == todoID {
			pl.daily = append(pl.daily[:i], pl.daily[i+1:]...)
			return pl.saveDaily()
		}
	}
	for i, t := range pl.weekly {
		if t.ID == todoID {
			pl.weekly = append(pl.weekly[:i], pl.weekly[i+1:]...)
			return pl.saveWeekly()
		}
	}
	return ErrNotFound
}

// CompleteTodo marks a todo completed.
func (pl *Planner) CompleteTodo(todoID string) (*todo.Todo, error) {
	s := todo.Completed
	return pl.UpdateTodo(todoID, todo.Patch{Status: &s})
}

// StartTodo marks a todo in-progress.
func (pl *Planner) StartTodo(todoID string) (*todo.Todo, error) {
	s := todo.InProgress
	return pl.UpdateTodo(todoID, todo.Patch{Status: &s})
}

// MoveTodo re-buckets a daily todo onto another day.
func (pl *Planner) MoveTodo(todoID, day string) (*todo.Todo, error) {
	bucket, err := timeutil.StandardizeDay(day, pl.Now())
	if err != nil {
		return nil, err
	}
	return pl.UpdateTodo(todoID, todo.Patch{Date: &bucket})
}

// ToggleSelected flips a todo's selection flag.
func (pl *Planner) ToggleSelected(todoID string) (*todo.Todo, error) {
	t, _ := pl.findTodo(todoID)
	if t == nil {
		return nil, ErrNotFound
	}
	sel := !t.Selected
	return pl.UpdateTodo(todoID, todo.Patch{Selected: &sel})
}

// Todos returns the daily todo collection.
func (pl *Planner) Todos() []*todo.Todo {
	out := make([]*todo.Todo, len(pl.daily))
	copy(out, pl.daily)
	return out
}

// TodosByDay returns exactly the daily todos whose bucket equals day.
func (pl *Planner) TodosByDay(day string) []*todo.Todo {
	out := make([]*todo.Todo, 0)
	for _, t := range pl.daily {
		if t.Date == day {
			out = append(out, t)
		}
	}
	return out
}

// SelectedTodos returns the todos flagged as selected.
func (pl *Planner) SelectedTodos() []*todo.Todo {
	out := make([]*todo.Todo, 0)
	for _, t := range pl.daily {
		if t.Selected {
			out = append(out, t)
		}
	}
	for _, t := range pl.weekly {
		if t.Selected {
			out = append(out, t)
		}
	}
	return out
}

// WeeklyTodos returns the todos scoped to the week containing now. Todos from
// earlier weeks are filtered out, not deleted; Rollover carries them forward.
func (pl *Planner) WeeklyTodos() []*todo.Todo {
	week := timeutil.WeekStart(pl.Now())
	out := make([]*todo.Todo, 0)
	for _, t := range pl.weekly {
		if t.WeekStart == week {
			out = append(out, t)
		}
	}
	return out
}

// Rollover moves unfinished weekly todos from weeks inside the look-back
// window onto the current week. The window is measured back from the current
// week start, not from now, so the one-week default always reaches the
// previous week no matter which day the rollover runs on. It returns how many
// todos moved.
func (pl *Planner) Rollover(window time.Duration) (int, error) {
	now := pl.Now()
	week := timeutil.WeekStart(now)
	weekTime, err := time.Parse(timeutil.LayoutISO, week)
	if err != nil {
		return 0, err
	}
	cutoff := weekTime.Add(-window)

	moved := 0
	for _, t := range pl.weekly {
		if t.WeekStart == week || t.Status == todo.Completed {
			continue
		}
		start, err := time.Parse(timeutil.LayoutISO, t.WeekStart)
		if err != nil || start.Before(cutoff) {
			continue
		}
		t.WeekStart = week
		moved++
	}
	if moved == 0 {
		return 0, nil
	}
	if err := pl.saveWeekly(); err != nil {
		return 0, err
	}
	return moved, nil
}

// AddGoal creates a goal at the given horizon. Quarterly goals are stamped
// with the current quarter, weekly goals with the current week start.
func (pl *Planner) AddGoal(h goal.Horizon, text string) (*goal.Goal, error) {
	g := goal.New(h, text)
	g.ID = id.New()
	switch h {
	case goal.Quarterly:
		g.Quarter = timeutil.CurrentQuarter(pl.Now())
	case goal.Weekly:
		g.WeekStart = timeutil.WeekStart(pl.Now())
		g.Step = len(pl.goals[h]) + 1
	}
	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("planner: %w", err)
	}
	pl.goals[h] = append(pl.goals[h], g)
	if err := pl.saveGoals(h); err != nil {
		pl.goals[h] = pl.goals[h][:len(pl.goals[h])-1]
		return nil, err
	}
	return g, nil
}

// Goals returns the goal collection for the horizon.
func (pl *Planner) Goals(h goal.Horizon) []*goal.Goal {
	out := make([]*goal.Goal, len(pl.goals[h]))
	copy(out, pl.goals[h])
	return out
}

// CompleteGoal marks the goal with the given id completed.
func (pl *Planner) CompleteGoal(goalID string) (*goal.Goal, error) {
	for h, list := range pl.goals {
		for _, g := range list {
			if g.ID == goalID {
				g.Completed = true
				if err := pl.saveGoals(h); err != nil {
					g.Completed = false
					return nil, err
				}
				return g, nil
			}
		}
	}
	return nil, ErrNotFound
}

// DeleteGoal removes the goal with the given id.
func (pl *Planner) DeleteGoal(goalID string) error {
	for h, list := range pl.goals {
		for i, g := range list {
			if g.ID == goalID {
				pl.goals[h] = append(list[:i], list[i+1:]...)
				return pl.saveGoals(h)
			}
		}
	}
	return ErrNotFound
}

// PromptContext snapshots the vision text and unfinished goal texts for the
// suggestion pipeline.
type PromptContext struct {
	Vision    string
	MainGoal  string
	Yearly    []string
	Quarterly []string
	Weekly    []string
}

// Context assembles the prompt context from storage-backed state.
func (pl *Planner) Context() (PromptContext, error) {
	flat := pl.Persistence.Flat()
	vision, err := flat.LoadString(store.KeyVisionText)
	if err != nil {
		return PromptContext{}, err
	}
	main, err := flat.LoadString(store.KeyMainGoal)
	if err != nil {
		return PromptContext{}, err
	}
	return PromptContext{
		Vision:    vision,
		MainGoal:  main,
		Yearly:    goal.IncompleteTexts(pl.goals[goal.Yearly]),
		Quarterly: goal.IncompleteTexts(pl.goals[goal.Quarterly]),
		Weekly:    goal.IncompleteTexts(pl.goals[goal.Weekly]),
	}, nil
}

// Settings accessors. Each write goes straight to flat storage.

func (pl *Planner) Vision() (string, error) {
	return pl.Persistence.Flat().LoadString(store.KeyVisionText)
}

func (pl *Planner) SetVision(text string) error {
	return pl.Persistence.Flat().SaveString(store.KeyVisionText, text)
}

func (pl *Planner) MainGoal() (string, error) {
	return pl.Persistence.Flat().LoadString(store.KeyMainGoal)
}

func (pl *Planner) SetMainGoal(text string) error {
	return pl.Persistence.Flat().SaveString(store.KeyMainGoal, text)
}

func (pl *Planner) UserName() (string, error) {
	return pl.Persistence.Flat().LoadString(store.KeyUserName)
}

func (pl *Planner) SetUserName(name string) error {
	return pl.Persistence.Flat().SaveString(store.KeyUserName, name)
}

func (pl *Planner) WelcomeDone() (bool, error) {
	return pl.Persistence.Flat().LoadBool(store.KeyWelcomeDone)
}

func (pl *Planner) SetWelcomeDone(done bool) error {
	return pl.Persistence.Flat().SaveBool(store.KeyWelcomeDone, done)
}
