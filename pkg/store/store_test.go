package store

import (
	"context"
	"testing"
	"time"

	"focilab.dev/focilab/pkg/goal"
	"focilab.dev/focilab/pkg/id"
	"focilab.dev/focilab/pkg/project"
	"focilab.dev/focilab/pkg/todo"
)

type testConfig struct {
	path string
}

func (c *testConfig) BasePath() string { return c.path }
func (c *testConfig) AI() AIConfig     { return AIConfig{} }

func testStore(t *testing.T) Persistence {
	t.Helper()
	p, err := Load(&testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load store: %v", err)
	}
	return p
}

func testProject(t *testing.T, p Persistence, title string) *project.Project {
	t.Helper()
	rec := project.New(title, "")
	rec.ID = id.New()
	if err := p.PutProject(rec); err != nil {
		t.Fatalf("put project: %v", err)
	}
	return rec
}

func TestProjectRoundTrip(t *testing.T) {
	p := testStore(t)
	ctx := context.Background()

	rec := testProject(t, p, "Write a book")

	got, err := p.Project(ctx, rec.ID)
	if err != nil {
		t.Fatalf("get project: %v", err)
	}
	if got.Title != "Write a book" || got.Status != project.NotStarted {
		t.Fatalf("unexpected project: %+v", got)
	}

	all, err := p.Projects(ctx)
	if err != nil {
		t.Fatalf("list projects: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected 1 project, got %d", len(all))
	}
}

func TestProjectNotFound(t *testing.T) {
	p := testStore(t)
	if _, err := p.Project(context.Background(), "missing"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMilestoneRequiresProject(t *testing.T) {
	p := testStore(t)
	m := project.NewMilestone("no-such-project", "draft outline")
	m.ID = id.New()
	if err := p.PutMilestone(m); err == nil {
		t.Fatalf("expected error for milestone with unknown project")
	}
}

func TestDeleteProjectCascades(t *testing.T) {
	p := testStore(t)
	ctx := context.Background()

	rec := testProject(t, p, "Ship the app")
	other := testProject(t, p, "Stay healthy")

	for _, name := range []string{"alpha", "beta", "launch"} {
		m := project.NewMilestone(rec.ID, name)
		m.ID = id.New()
		if err := p.PutMilestone(m); err != nil {
			t.Fatalf("put milestone: %v", err)
		}
	}
	keep := project.NewMilestone(other.ID, "morning runs")
	keep.ID = id.New()
	if err := p.PutMilestone(keep); err != nil {
		t.Fatalf("put milestone: %v", err)
	}

	if err := p.DeleteProject(ctx, rec.ID); err != nil {
		t.Fatalf("delete project: %v", err)
	}

	orphans, err := p.MilestonesByProject(ctx, rec.ID)
	if err != nil {
		t.Fatalf("list milestones: %v", err)
	}
	if len(orphans) != 0 {
		t.Fatalf("expected 0 milestones after cascade, got %d", len(orphans))
	}

	kept, err := p.MilestonesByProject(ctx, other.ID)
	if err != nil {
		t.Fatalf("list milestones: %v", err)
	}
	if len(kept) != 1 {
		t.Fatalf("expected sibling project milestones untouched, got %d", len(kept))
	}
}

func TestSetCurrentWorkSingleOwner(t *testing.T) {
	p := testStore(t)
	ctx := context.Background()

	a := testProject(t, p, "A")
	b := testProject(t, p, "B")

	if err := p.SetCurrentWork(ctx, a.ID); err != nil {
		t.Fatalf("set current work: %v", err)
	}
	if err := p.SetCurrentWork(ctx, b.ID); err != nil {
		t.Fatalf("set current work: %v", err)
	}

	all, err := p.Projects(ctx)
	if err != nil {
		t.Fatalf("list projects: %v", err)
	}
	current := 0
	for _, rec := range all {
		if rec.CurrentWork {
			current++
			if rec.ID != b.ID {
				t.Fatalf("expected %s to be current, got %s", b.ID, rec.ID)
			}
		}
	}
	if current != 1 {
		t.Fatalf("expected exactly one current project, got %d", current)
	}
}

func TestMilestoneIndexLookups(t *testing.T) {
	p := testStore(t)
	ctx := context.Background()

	rec := testProject(t, p, "Garden")
	due := time.Now().Add(24 * time.Hour)
	late := project.NewMilestone(rec.ID, "plant seeds")
	late.ID = id.New()
	late.DueDate = &due
	late.Status = project.InProgress
	if err := p.PutMilestone(late); err != nil {
		t.Fatalf("put milestone: %v", err)
	}

	byStatus, err := p.MilestonesByStatus(ctx, project.InProgress)
	if err != nil {
		t.Fatalf("by status: %v", err)
	}
	if len(byStatus) != 1 {
		t.Fatalf("expected 1 in-progress milestone, got %d", len(byStatus))
	}

	dueSoon, err := p.MilestonesDueBefore(ctx, time.Now().Add(48*time.Hour))
	if err != nil {
		t.Fatalf("due before: %v", err)
	}
	if len(dueSoon) != 1 {
		t.Fatalf("expected 1 due milestone, got %d", len(dueSoon))
	}
}

func TestFlatTodoRoundTrip(t *testing.T) {
	p := testStore(t)
	flat := p.Flat()

	in := []*todo.Todo{todo.New("Buy milk", "Monday"), todo.New("Call home", "Friday")}
	for _, rec := range in {
		rec.ID = id.New()
	}
	if err := flat.SaveTodos(KeyDailyTodos, in); err != nil {
		t.Fatalf("save todos: %v", err)
	}

	out, err := flat.LoadTodos(KeyDailyTodos)
	if err != nil {
		t.Fatalf("load todos: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 todos, got %d", len(out))
	}
	if out[0].ID != in[0].ID || out[0].Title != "Buy milk" || out[0].Status != todo.NotStarted {
		t.Fatalf("round trip mismatch: %+v", out[0])
	}
}

func TestFlatMissingKeyReadsEmpty(t *testing.T) {
	p := testStore(t)
	flat := p.Flat()

	todos, err := flat.LoadTodos(KeyWeeklyTodos)
	if err != nil {
		t.Fatalf("load todos: %v", err)
	}
	if len(todos) != 0 {
		t.Fatalf("expected empty list for missing key")
	}
	s, err := flat.LoadString(KeyVisionText)
	if err != nil {
		t.Fatalf("load string: %v", err)
	}
	if s != "" {
		t.Fatalf("expected empty string for missing key")
	}
}

func TestFlatGoalMigrationFillsHorizon(t *testing.T) {
	p := testStore(t)
	flat := p.Flat()

	// A pre-schema record: no horizon, no schema version.
	if err := flat.SaveJSON(KeyYearlyGoals, []map[string]any{
		{"id": id.New(), "text": "run a marathon", "completed": false},
	}); err != nil {
		t.Fatalf("seed goals: %v", err)
	}

	goals, err := flat.LoadGoals(KeyYearlyGoals, goal.Yearly)
	if err != nil {
		t.Fatalf("load goals: %v", err)
	}
	if len(goals) != 1 {
		t.Fatalf("expected 1 goal, got %d", len(goals))
	}
	if goals[0].Horizon != goal.Yearly || goals[0].Schema != goal.CurrentSchema {
		t.Fatalf("migration did not apply: %+v", goals[0])
	}
}

func TestProjectMigrationFillsStatus(t *testing.T) {
	p := testStore(t).(*persistence)

	recID := id.New()
	if err := p.write(recordKey(StoreProjects, recID), map[string]any{
		"id": recID, "title": "legacy", "startDate": time.Now(),
	}); err != nil {
		t.Fatalf("seed project: %v", err)
	}

	got, err := p.Project(context.Background(), recID)
	if err != nil {
		t.Fatalf("get project: %v", err)
	}
	if got.Status != project.NotStarted || got.Schema != project.CurrentSchema {
		t.Fatalf("migration did not apply: %+v", got)
	}
}
