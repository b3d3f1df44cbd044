package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"focilab.dev/focilab/pkg/goal"
	"focilab.dev/focilab/pkg/todo"
)

// Flat key-value storage keys. Each key holds one JSON payload.
const (
	KeyDailyTodos     = "dailyTodos"
	KeyWeeklyTodos    = "weeklyTodos"
	KeyYearlyGoals    = "yearlyGoals"
	KeyQuarterlyGoals = "quarterlyGoals"
	KeyWeeklyGoals    = "weeklyGoals"
	KeyVisionText     = "visionText"
	KeyMainGoal       = "mainGoal"
	KeyUserName       = "userName"
	KeyWelcomeDone    = "hasCompletedWelcome"
	KeySuggestions    = "focilab-ai-suggestions"
	KeyHasGenerated   = "focilab-has-generated-ai"
)

// Flat is the flat key-value side of the store: JSON arrays and scalars for
// todos, goals, and user settings. Missing keys read as empty values, never
// as errors.
type Flat interface {
	LoadJSON(key string, v any) (bool, error)
	SaveJSON(key string, v any) error
	Delete(key string) error

	LoadTodos(key string) ([]*todo.Todo, error)
	SaveTodos(key string, todos []*todo.Todo) error
	LoadGoals(key string, horizon goal.Horizon) ([]*goal.Goal, error)
	SaveGoals(key string, goals []*goal.Goal) error
	LoadString(key string) (string, error)
	SaveString(key, value string) error
	LoadBool(key string) (bool, error)
	SaveBool(key string, value bool) error
}

const flatDir = "flat"

func newFlat(basePath string) *flatStore {
	return &flatStore{dir: filepath.Join(basePath, flatDir)}
}

type flatStore struct {
	dir string
}

func (f *flatStore) path(key string) string {
	return filepath.Join(f.dir, key+".json")
}

// LoadJSON reads the payload under key into v. The boolean reports whether
// the key existed.
func (f *flatStore) LoadJSON(key string, v any) (bool, error) {
	data, err := os.ReadFile(f.path(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("store: read %s: %w", key, err)
	}
	if len(data) == 0 {
		return false, nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("store: decode %s: %w", key, err)
	}
	return true, nil
}

// SaveJSON writes v under key via a temp file and rename, so a crashed write
// never leaves a truncated payload behind.
func (f *flatStore) SaveJSON(key string, v any) error {
	if err := os.MkdirAll(f.dir, 0o755); err != nil {
		return fmt.Errorf("store: ensure flat dir: %w", err)
	}
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("store: encode %s: %w", key, err)
	}
	path := f.path(key)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("store: write %s: %w", key, err)
	}
	return os.Rename(tmp, path)
}

func (f *flatStore) Delete(key string) error {
	err := os.Remove(f.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

func (f *flatStore) LoadTodos(key string) ([]*todo.Todo, error) {
	var list []*todo.Todo
	if _, err := f.LoadJSON(key, &list); err != nil {
		return nil, err
	}
	out := make([]*todo.Todo, 0, len(list))
	for _, rec := range list {
		if rec == nil {
			continue
		}
		migrateTodo(rec)
		out = append(out, rec)
	}
	return out, nil
}

func (f *flatStore) SaveTodos(key string, todos []*todo.Todo) error {
	return f.SaveJSON(key, todos)
}

func (f *flatStore) LoadGoals(key string, horizon goal.Horizon) ([]*goal.Goal, error) {
	var list []*goal.Goal
	if _, err := f.LoadJSON(key, &list); err != nil {
		return nil, err
	}
	out := make([]*goal.Goal, 0, len(list))
	for _, rec := range list {
		if rec == nil {
			continue
		}
		migrateGoal(rec, horizon)
		out = append(out, rec)
	}
	return out, nil
}

func (f *flatStore) SaveGoals(key string, goals []*goal.Goal) error {
	return f.SaveJSON(key, goals)
}

func (f *flatStore) LoadString(key string) (string, error) {
	var s string
	if _, err := f.LoadJSON(key, &s); err != nil {
		return "", err
	}
	return s, nil
}

func (f *flatStore) SaveString(key, value string) error {
	return f.SaveJSON(key, value)
}

func (f *flatStore) LoadBool(key string) (bool, error) {
	var b bool
	if _, err := f.LoadJSON(key, &b); err != nil {
		return false, err
	}
	return b, nil
}

func (f *flatStore) SaveBool(key string, value bool) error {
	return f.SaveJSON(key, value)
}
