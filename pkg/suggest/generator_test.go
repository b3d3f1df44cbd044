package suggest

import (
	"context"
	"testing"
	"time"

	"focilab.dev/focilab/pkg/goal"
	"focilab.dev/focilab/pkg/planner"
	"focilab.dev/focilab/pkg/project"
	"focilab.dev/focilab/pkg/store"

	"focilab.dev/focilab/pkg/id"
)

type testConfig struct {
	path string
}

func (c *testConfig) BasePath() string   { return c.path }
func (c *testConfig) AI() store.AIConfig { return store.AIConfig{} }

func testGenerator(t *testing.T, srvURL string) (*Generator, store.Persistence) {
	t.Helper()
	p, err := store.Load(&testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load store: %v", err)
	}
	pl, err := planner.New(p)
	if err != nil {
		t.Fatalf("new planner: %v", err)
	}
	pl.Now = func() time.Time {
		return time.Date(2026, time.March, 4, 9, 0, 0, 0, time.UTC)
	}
	return &Generator{Client: testClient(srvURL), Planner: pl}, p
}

func TestForDayPopulatesSuggestions(t *testing.T) {
	srv := completionServer(t, `{"todos":[{"id":"1","title":"Plan the week"},{"id":"2","title":"Clear inbox"}]}`)
	defer srv.Close()

	g, _ := testGenerator(t, srv.URL)
	added, err := g.ForDay(context.Background(), "Mon", false)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(added) != 2 {
		t.Fatalf("expected 2 suggestions, got %d", len(added))
	}
	if g.Generating() {
		t.Fatalf("generating flag should reset after completion")
	}
	if !g.Planner.HasGenerated("Monday") {
		t.Fatalf("has-generated flag should be set for the bucket")
	}
}

func TestForDayGatedByHasGenerated(t *testing.T) {
	srv := completionServer(t, `{"todos":[{"id":"1","title":"once"}]}`)
	defer srv.Close()

	g, _ := testGenerator(t, srv.URL)
	if _, err := g.ForDay(context.Background(), "Monday", false); err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := g.ForDay(context.Background(), "Monday", false); err != ErrAlreadyGenerated {
		t.Fatalf("expected ErrAlreadyGenerated, got %v", err)
	}
	// force bypasses the gate
	if _, err := g.ForDay(context.Background(), "Monday", true); err != nil {
		t.Fatalf("forced generate: %v", err)
	}
}

func TestForDayErrorLeavesStateIdle(t *testing.T) {
	srv := completionServer(t, `not json`)
	defer srv.Close()

	g, _ := testGenerator(t, srv.URL)
	if _, err := g.ForDay(context.Background(), "Tuesday", false); err == nil {
		t.Fatalf("expected parse error")
	}
	if g.Generating() {
		t.Fatalf("generating flag should reset on error")
	}
	if g.Planner.HasGenerated("Tuesday") {
		t.Fatalf("failed generation must not mark the bucket")
	}
	if len(g.Planner.Suggestions()) != 0 {
		t.Fatalf("failed generation must leave the suggestion list empty")
	}
}

func TestWeeklyGoalsRecordsGoals(t *testing.T) {
	srv := completionServer(t, `{"goals":[{"id":"g1","text":"Plan next release"},{"id":"g2","text":"Review budget"}]}`)
	defer srv.Close()

	g, _ := testGenerator(t, srv.URL)
	created, err := g.WeeklyGoals(context.Background())
	if err != nil {
		t.Fatalf("generate goals: %v", err)
	}
	if len(created) != 2 {
		t.Fatalf("expected 2 goals, got %d", len(created))
	}
	if created[0].WeekStart != "2026-03-02" || created[0].Step != 1 {
		t.Fatalf("unexpected weekly stamp: %+v", created[0])
	}
	if got := g.Planner.Goals(goal.Weekly); len(got) != 2 {
		t.Fatalf("goals not recorded on the planner, got %d", len(got))
	}
	if g.Generating() {
		t.Fatalf("generating flag should reset after completion")
	}
}

func TestMilestonesForProjectWritesStore(t *testing.T) {
	srv := completionServer(t, `{"milestones":[{"id":"m1","name":"Draft outline","dueDate":"2026-04-01"}]}`)
	defer srv.Close()

	g, p := testGenerator(t, srv.URL)
	rec := project.New("Book", "write a novel")
	rec.ID = id.New()
	rec.UseAI = true
	if err := p.PutProject(rec); err != nil {
		t.Fatalf("put project: %v", err)
	}

	created, err := g.MilestonesForProject(context.Background(), p, rec.ID)
	if err != nil {
		t.Fatalf("generate milestones: %v", err)
	}
	if len(created) != 1 || created[0].DueDate == nil {
		t.Fatalf("unexpected milestones: %+v", created)
	}

	stored, err := p.MilestonesByProject(context.Background(), rec.ID)
	if err != nil {
		t.Fatalf("list milestones: %v", err)
	}
	if len(stored) != 1 || stored[0].Name != "Draft outline" {
		t.Fatalf("milestone not persisted: %+v", stored)
	}
}

func TestMilestonesForProjectRequiresUseAI(t *testing.T) {
	srv := completionServer(t, `{"milestones":[]}`)
	defer srv.Close()

	g, p := testGenerator(t, srv.URL)
	rec := project.New("Plain", "")
	rec.ID = id.New()
	if err := p.PutProject(rec); err != nil {
		t.Fatalf("put project: %v", err)
	}
	if _, err := g.MilestonesForProject(context.Background(), p, rec.ID); err == nil {
		t.Fatalf("expected error for project without AI enabled")
	}
}
