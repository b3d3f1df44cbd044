package planner

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"focilab.dev/focilab/pkg/goal"
	"focilab.dev/focilab/pkg/store"
	"focilab.dev/focilab/pkg/todo"
)

type testConfig struct {
	path string
}

func (c *testConfig) BasePath() string   { return c.path }
func (c *testConfig) AI() store.AIConfig { return store.AIConfig{} }

func testPlanner(t *testing.T) *Planner {
	t.Helper()
	p, err := store.Load(&testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load store: %v", err)
	}
	pl, err := New(p)
	if err != nil {
		t.Fatalf("new planner: %v", err)
	}
	// Anchor time on a Wednesday so day/week buckets are stable.
	pl.Now = func() time.Time {
		return time.Date(2026, time.March, 4, 9, 0, 0, 0, time.UTC)
	}
	return pl
}

func TestAddTodoAppearsInDayBucket(t *testing.T) {
	pl := testPlanner(t)

	if got := pl.TodosByDay("Monday"); len(got) != 0 {
		t.Fatalf("expected empty Monday bucket, got %d", len(got))
	}

	added, err := pl.AddTodo("Buy milk", "Monday")
	if err != nil {
		t.Fatalf("add todo: %v", err)
	}
	if added.ID == "" {
		t.Fatalf("expected a generated id")
	}
	if added.Status != todo.NotStarted {
		t.Fatalf("expected default status not-started, got %s", added.Status)
	}

	got := pl.TodosByDay("Monday")
	if len(got) != 1 || got[0].ID != added.ID || got[0].Title != "Buy milk" {
		t.Fatalf("unexpected Monday bucket: %+v", got)
	}
	if other := pl.TodosByDay("Tuesday"); len(other) != 0 {
		t.Fatalf("todo leaked into another bucket")
	}
}

func TestTodosByDayReturnsOnlyMatchingBucket(t *testing.T) {
	pl := testPlanner(t)

	for _, c := range []struct{ title, day string }{
		{"a", "Monday"}, {"b", "Monday"}, {"c", "Friday"},
	} {
		if _, err := pl.AddTodo(c.title, c.day); err != nil {
			t.Fatalf("add todo: %v", err)
		}
	}

	if got := pl.TodosByDay("Monday"); len(got) != 2 {
		t.Fatalf("expected 2 Monday todos, got %d", len(got))
	}
	if got := pl.TodosByDay("Friday"); len(got) != 1 {
		t.Fatalf("expected 1 Friday todo, got %d", len(got))
	}
}

func TestAddTodoTodayResolvesToWeekday(t *testing.T) {
	pl := testPlanner(t)
	added, err := pl.AddTodo("standup", "today")
	if err != nil {
		t.Fatalf("add todo: %v", err)
	}
	if added.Date != "Wednesday" {
		t.Fatalf("expected today to resolve to Wednesday, got %s", added.Date)
	}
}

func TestUpdateTodoAppliesPartialPatch(t *testing.T) {
	pl := testPlanner(t)
	added, err := pl.AddTodo("draft email", "Tuesday")
	if err != nil {
		t.Fatalf("add todo: %v", err)
	}

	title := "send email"
	got, err := pl.UpdateTodo(added.ID, todo.Patch{Title: &title})
	if err != nil {
		t.Fatalf("update todo: %v", err)
	}
	if got.Title != "send email" || got.Date != "Tuesday" || got.Status != todo.NotStarted {
		t.Fatalf("patch touched unrelated fields: %+v", got)
	}
}

func TestCompleteAndDeleteTodo(t *testing.T) {
	pl := testPlanner(t)
	added, err := pl.AddTodo("water plants", "Sunday")
	if err != nil {
		t.Fatalf("add todo: %v", err)
	}

	done, err := pl.CompleteTodo(added.ID)
	if err != nil {
		t.Fatalf("complete todo: %v", err)
	}
	if done.Status != todo.Completed {
		t.Fatalf("expected completed, got %s", done.Status)
	}

	if err := pl.DeleteTodo(added.ID); err != nil {
		t.Fatalf("delete todo: %v", err)
	}
	if err := pl.DeleteTodo(added.ID); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestStatePersistsAcrossReload(t *testing.T) {
	pl := testPlanner(t)
	added, err := pl.AddTodo("persisted", "Thursday")
	if err != nil {
		t.Fatalf("add todo: %v", err)
	}

	fresh, err := New(pl.Persistence)
	if err != nil {
		t.Fatalf("reload planner: %v", err)
	}
	got := fresh.TodosByDay("Thursday")
	if len(got) != 1 || got[0].ID != added.ID {
		t.Fatalf("todo did not survive reload: %+v", got)
	}
}

func TestSelectedTodos(t *testing.T) {
	pl := testPlanner(t)
	a, _ := pl.AddTodo("a", "Monday")
	if _, err := pl.AddTodo("b", "Monday"); err != nil {
		t.Fatalf("add todo: %v", err)
	}
	if _, err := pl.ToggleSelected(a.ID); err != nil {
		t.Fatalf("toggle selected: %v", err)
	}
	sel := pl.SelectedTodos()
	if len(sel) != 1 || sel[0].ID != a.ID {
		t.Fatalf("unexpected selection: %+v", sel)
	}
}

func TestWeeklyTodosFilterByWeekStart(t *testing.T) {
	pl := testPlanner(t)
	added, err := pl.AddWeeklyTodo("review goals")
	if err != nil {
		t.Fatalf("add weekly todo: %v", err)
	}
	if added.WeekStart != "2026-03-02" {
		t.Fatalf("expected week start 2026-03-02, got %s", added.WeekStart)
	}

	week := pl.WeeklyTodos()
	if len(week) != 1 {
		t.Fatalf("expected 1 weekly todo, got %d", len(week))
	}

	// A week later the todo drops out of the view without being deleted.
	pl.Now = func() time.Time {
		return time.Date(2026, time.March, 11, 9, 0, 0, 0, time.UTC)
	}
	if got := pl.WeeklyTodos(); len(got) != 0 {
		t.Fatalf("expected todo filtered out next week, got %d", len(got))
	}
}

func TestRolloverMovesUnfinishedTodos(t *testing.T) {
	pl := testPlanner(t)

	// A todo left over from two weeks back, outside the one-week window.
	pl.Now = func() time.Time {
		return time.Date(2026, time.February, 25, 9, 0, 0, 0, time.UTC)
	}
	stale, err := pl.AddWeeklyTodo("clean garage")
	if err != nil {
		t.Fatalf("add weekly todo: %v", err)
	}

	pl.Now = func() time.Time {
		return time.Date(2026, time.March, 4, 9, 0, 0, 0, time.UTC)
	}
	unfinished, err := pl.AddWeeklyTodo("write chapter")
	if err != nil {
		t.Fatalf("add weekly todo: %v", err)
	}
	done, err := pl.AddWeeklyTodo("pay rent")
	if err != nil {
		t.Fatalf("add weekly todo: %v", err)
	}
	if _, err := pl.CompleteTodo(done.ID); err != nil {
		t.Fatalf("complete todo: %v", err)
	}

	// Wednesday of the following week. The one-week default must still reach
	// last week's bucket even though its start is nine days behind now.
	pl.Now = func() time.Time {
		return time.Date(2026, time.March, 11, 9, 0, 0, 0, time.UTC)
	}
	moved, err := pl.Rollover(7 * 24 * time.Hour)
	if err != nil {
		t.Fatalf("rollover: %v", err)
	}
	if moved != 1 {
		t.Fatalf("expected 1 todo moved, got %d", moved)
	}

	week := pl.WeeklyTodos()
	if len(week) != 1 || week[0].ID != unfinished.ID {
		t.Fatalf("expected the unfinished todo in the new week, got %+v", week)
	}
	for _, rec := range pl.weekly {
		if rec.ID == stale.ID && rec.WeekStart != "2026-02-23" {
			t.Fatalf("todo outside the window should not move, got week %s", rec.WeekStart)
		}
	}
}

func TestAddGoalStampsQuarterAndWeek(t *testing.T) {
	pl := testPlanner(t)

	q, err := pl.AddGoal(goal.Quarterly, "ship v1")
	if err != nil {
		t.Fatalf("add goal: %v", err)
	}
	if q.Quarter != 1 {
		t.Fatalf("March goal should be Q1, got %d", q.Quarter)
	}

	w, err := pl.AddGoal(goal.Weekly, "outline chapter")
	if err != nil {
		t.Fatalf("add goal: %v", err)
	}
	if w.WeekStart != "2026-03-02" || w.Step != 1 {
		t.Fatalf("unexpected weekly goal: %+v", w)
	}
}

func TestContextCollectsIncompleteGoalTexts(t *testing.T) {
	pl := testPlanner(t)
	if err := pl.SetVision("calm, focused year"); err != nil {
		t.Fatalf("set vision: %v", err)
	}
	y, err := pl.AddGoal(goal.Yearly, "run a marathon")
	if err != nil {
		t.Fatalf("add goal: %v", err)
	}
	if _, err := pl.AddGoal(goal.Yearly, "read 20 books"); err != nil {
		t.Fatalf("add goal: %v", err)
	}
	if _, err := pl.CompleteGoal(y.ID); err != nil {
		t.Fatalf("complete goal: %v", err)
	}

	pctx, err := pl.Context()
	if err != nil {
		t.Fatalf("context: %v", err)
	}
	if pctx.Vision != "calm, focused year" {
		t.Fatalf("unexpected vision: %q", pctx.Vision)
	}
	if len(pctx.Yearly) != 1 || pctx.Yearly[0] != "read 20 books" {
		t.Fatalf("expected only incomplete yearly goals, got %+v", pctx.Yearly)
	}
}

func TestApproveSuggestionPromotesToTodo(t *testing.T) {
	pl := testPlanner(t)
	added, err := pl.AddSuggestions([]string{"Plan the week", "  ", "Clear inbox"})
	if err != nil {
		t.Fatalf("add suggestions: %v", err)
	}
	if len(added) != 2 {
		t.Fatalf("expected 2 suggestions (blank skipped), got %d", len(added))
	}

	t1, err := pl.ApproveSuggestion(added[0].ID, "Monday")
	if err != nil {
		t.Fatalf("approve suggestion: %v", err)
	}
	if t1.Title != "Plan the week" || t1.Status != todo.NotStarted || t1.ID == "" {
		t.Fatalf("unexpected promoted todo: %+v", t1)
	}
	if len(pl.Suggestions()) != 1 {
		t.Fatalf("expected suggestion list to shrink by one, got %d", len(pl.Suggestions()))
	}
	if got := pl.TodosByDay("Monday"); len(got) != 1 {
		t.Fatalf("expected exactly one new Monday todo, got %d", len(got))
	}
}

func TestApproveSuggestionRollsBackTodoOnSaveFailure(t *testing.T) {
	base := t.TempDir()
	p, err := store.Load(&testConfig{path: base})
	if err != nil {
		t.Fatalf("load store: %v", err)
	}
	pl, err := New(p)
	if err != nil {
		t.Fatalf("new planner: %v", err)
	}
	added, err := pl.AddSuggestions([]string{"stretch"})
	if err != nil {
		t.Fatalf("add suggestions: %v", err)
	}

	// Wedge a directory where the suggestion payload lives so the save after
	// the todo promotion cannot land.
	path := filepath.Join(base, "flat", store.KeySuggestions+".json")
	if err := os.RemoveAll(path); err != nil {
		t.Fatalf("remove payload: %v", err)
	}
	if err := os.MkdirAll(path, 0o755); err != nil {
		t.Fatalf("wedge payload path: %v", err)
	}

	if _, err := pl.ApproveSuggestion(added[0].ID, "Monday"); err == nil {
		t.Fatalf("expected approval to fail")
	}
	if got := pl.TodosByDay("Monday"); len(got) != 0 {
		t.Fatalf("promoted todo should be rolled back, got %d", len(got))
	}
	if len(pl.Suggestions()) != 1 {
		t.Fatalf("suggestion should survive the failed approval, got %d", len(pl.Suggestions()))
	}
}

func TestDeleteAndClearSuggestions(t *testing.T) {
	pl := testPlanner(t)
	added, err := pl.AddSuggestions([]string{"one", "two", "three"})
	if err != nil {
		t.Fatalf("add suggestions: %v", err)
	}

	if err := pl.DeleteSuggestion(added[1].ID); err != nil {
		t.Fatalf("delete suggestion: %v", err)
	}
	if len(pl.Suggestions()) != 2 {
		t.Fatalf("expected 2 suggestions, got %d", len(pl.Suggestions()))
	}

	if err := pl.ClearSuggestions(); err != nil {
		t.Fatalf("clear suggestions: %v", err)
	}
	if len(pl.Suggestions()) != 0 {
		t.Fatalf("expected cleared suggestion list")
	}
}

func TestHasGeneratedFlagIsIdempotencyGate(t *testing.T) {
	pl := testPlanner(t)
	if pl.HasGenerated("Monday") {
		t.Fatalf("flag should start unset")
	}
	if err := pl.MarkGenerated("Monday"); err != nil {
		t.Fatalf("mark generated: %v", err)
	}
	if !pl.HasGenerated("Monday") {
		t.Fatalf("flag should be set")
	}

	fresh, err := New(pl.Persistence)
	if err != nil {
		t.Fatalf("reload planner: %v", err)
	}
	if !fresh.HasGenerated("Monday") {
		t.Fatalf("flag should survive reload")
	}
	if err := fresh.ResetGenerated("Monday"); err != nil {
		t.Fatalf("reset generated: %v", err)
	}
	if fresh.HasGenerated("Monday") {
		t.Fatalf("flag should be cleared")
	}
}
