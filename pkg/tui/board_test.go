package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/muesli/reflow/ansi"

	"focilab.dev/focilab/pkg/planner"
	"focilab.dev/focilab/pkg/store"
)

type testConfig struct {
	path string
}

func (c *testConfig) BasePath() string   { return c.path }
func (c *testConfig) AI() store.AIConfig { return store.AIConfig{} }

func testPlanner(t *testing.T) *planner.Planner {
	t.Helper()
	p, err := store.Load(&testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load store: %v", err)
	}
	pl, err := planner.New(p)
	if err != nil {
		t.Fatalf("new planner: %v", err)
	}
	// Anchor time on a Wednesday so day buckets are stable.
	pl.Now = func() time.Time {
		return time.Date(2026, time.March, 4, 9, 0, 0, 0, time.UTC)
	}
	return pl
}

func stripANSI(s string) string {
	var b strings.Builder
	ansiSeq := false
	for _, r := range s {
		if r == ansi.Marker {
			ansiSeq = true
			continue
		}
		if ansiSeq {
			if ansi.IsTerminator(r) {
				ansiSeq = false
			}
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func TestNewSelectsTodayBucket(t *testing.T) {
	pl := testPlanner(t)
	m := New(pl, nil)

	if got := m.selectedDay(); got != "Wednesday" {
		t.Fatalf("expected Wednesday selected, got %q", got)
	}
}

func TestDayItemsCarryTodoCounts(t *testing.T) {
	pl := testPlanner(t)
	if _, err := pl.AddTodo("one", "Monday"); err != nil {
		t.Fatalf("add todo: %v", err)
	}
	if _, err := pl.AddTodo("two", "Monday"); err != nil {
		t.Fatalf("add todo: %v", err)
	}

	m := New(pl, nil)
	items := m.dayList.Items()
	if len(items) != 7 {
		t.Fatalf("expected 7 day items, got %d", len(items))
	}
	monday := items[0].(dayItem)
	if monday.name != "Monday" || monday.count != 2 {
		t.Fatalf("unexpected Monday item: %+v", monday)
	}
	if got := monday.Title(); got != "Monday (2)" {
		t.Fatalf("unexpected Monday title: %q", got)
	}
	tuesday := items[1].(dayItem)
	if got := tuesday.Title(); got != "Tuesday" {
		t.Fatalf("empty bucket should not show a count, got %q", got)
	}
}

func TestLoadTodosReturnsSelectedBucket(t *testing.T) {
	pl := testPlanner(t)
	if _, err := pl.AddTodo("Write report", "Wednesday"); err != nil {
		t.Fatalf("add todo: %v", err)
	}
	if _, err := pl.AddTodo("Other day", "Friday"); err != nil {
		t.Fatalf("add todo: %v", err)
	}

	m := New(pl, nil)
	msg := m.loadTodos()()
	loaded, ok := msg.(todosLoadedMsg)
	if !ok {
		t.Fatalf("expected todosLoadedMsg, got %T", msg)
	}
	if len(loaded.items) != 1 {
		t.Fatalf("expected 1 todo for Wednesday, got %d", len(loaded.items))
	}
	it := loaded.items[0].(todoItem)
	if it.t.Title != "Write report" {
		t.Fatalf("unexpected todo: %+v", it.t)
	}
}

func TestViewRendersPanesAndStatus(t *testing.T) {
	pl := testPlanner(t)
	if _, err := pl.AddTodo("Write report", "Wednesday"); err != nil {
		t.Fatalf("add todo: %v", err)
	}

	m := New(pl, nil)
	m.termWidth = 96
	m.termHeight = 28
	m.applySizes()

	msg := m.loadTodos()()
	loaded := msg.(todosLoadedMsg)
	m.todoList.SetItems(loaded.items)

	view := stripANSI(m.View())
	if !strings.Contains(view, "» Todos") {
		t.Fatalf("expected focused todo pane header; view=%q", view)
	}
	if !strings.Contains(view, "Write report") {
		t.Fatalf("expected todo text in view; view=%q", view)
	}
	if !strings.Contains(view, "[NORMAL]") {
		t.Fatalf("expected normal mode status line; view=%q", view)
	}
	if !strings.Contains(view, "d delete") || strings.Contains(view, "dd delete") {
		t.Fatalf("status hint should match the single-keystroke delete binding; view=%q", view)
	}
}

func TestStoreChangeReloadsPlanner(t *testing.T) {
	pl := testPlanner(t)
	m := New(pl, nil)

	// Write through a second planner sharing the same store, the way an
	// external process would.
	other, err := planner.New(pl.Persistence)
	if err != nil {
		t.Fatalf("new planner: %v", err)
	}
	if _, err := other.AddTodo("External add", "Wednesday"); err != nil {
		t.Fatalf("add todo: %v", err)
	}

	updated, _ := m.Update(storeChangedMsg{ev: store.Event{Type: store.EventStoreChanged, Store: "flat"}})
	m = updated.(Model)

	msg := m.loadTodos()()
	loaded := msg.(todosLoadedMsg)
	if len(loaded.items) != 1 {
		t.Fatalf("expected reload to surface external todo, got %d items", len(loaded.items))
	}
}
