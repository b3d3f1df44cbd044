package planner

import (
	"fmt"
	"strings"

	"focilab.dev/focilab/pkg/id"
	"focilab.dev/focilab/pkg/store"
	"focilab.dev/focilab/pkg/todo"
)

// Suggestion is an AI-proposed todo awaiting review. Suggestions live only in
// flat storage; approval promotes them into the regular todo collection.
type Suggestion struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

func (pl *Planner) saveSuggestions() error {
	return pl.Persistence.Flat().SaveJSON(store.KeySuggestions, pl.suggestions)
}

func (pl *Planner) saveHasGenerated() error {
	return pl.Persistence.Flat().SaveJSON(store.KeyHasGenerated, pl.hasGenerated)
}

// Suggestions returns the pending suggestion list.
func (pl *Planner) Suggestions() []*Suggestion {
	out := make([]*Suggestion, len(pl.suggestions))
	copy(out, pl.suggestions)
	return out
}

// AddSuggestions records a batch of suggestion texts. Blank lines are
// skipped.
func (pl *Planner) AddSuggestions(texts []string) ([]*Suggestion, error) {
	added := make([]*Suggestion, 0, len(texts))
	for _, text := range texts {
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		added = append(added, &Suggestion{ID: id.New(), Text: text})
	}
	if len(added) == 0 {
		return nil, nil
	}
	before := pl.suggestions
	pl.suggestions = append(pl.suggestions, added...)
	if err := pl.saveSuggestions(); err != nil {
		pl.suggestions = before
		return nil, err
	}
	return added, nil
}

// ApproveSuggestion promotes a suggestion into a not-started todo on the
// given day bucket and removes it from the pending list.
func (pl *Planner) ApproveSuggestion(suggestionID, day string) (*todo.Todo, error) {
	idx := -1
	for i, s := range pl.suggestions {
		if s.ID == suggestionID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, ErrNotFound
	}

	t, err := pl.AddTodo(pl.suggestions[idx].Text, day)
	if err != nil {
		return nil, err
	}

	before := pl.suggestions
	pl.suggestions = append(pl.suggestions[:idx:idx], pl.suggestions[idx+1:]...)
	if err := pl.saveSuggestions(); err != nil {
		pl.suggestions = before
		// Take the promoted todo back out so the item cannot end up in both
		// lists after a half-applied approval.
		if derr := pl.DeleteTodo(t.ID); derr != nil {
			return nil, fmt.Errorf("%w (todo rollback: %v)", err, derr)
		}
		return nil, err
	}
	return t, nil
}

// DeleteSuggestion discards a single suggestion.
func (pl *Planner) DeleteSuggestion(suggestionID string) error {
	for i, s := range pl.suggestions {
		if s.ID == suggestionID {
			before := pl.suggestions
			pl.suggestions = append(pl.suggestions[:i:i], pl.suggestions[i+1:]...)
			if err := pl.saveSuggestions(); err != nil {
				pl.suggestions = before
				return err
			}
			return nil
		}
	}
	return ErrNotFound
}

// ClearSuggestions discards the whole pending list.
func (pl *Planner) ClearSuggestions() error {
	before := pl.suggestions
	pl.suggestions = nil
	if err := pl.saveSuggestions(); err != nil {
		pl.suggestions = before
		return err
	}
	return nil
}

// HasGenerated reports whether suggestions were already generated for the
// day bucket. It keeps a view reload from re-triggering the completion call.
func (pl *Planner) HasGenerated(day string) bool {
	return pl.hasGenerated[day]
}

// MarkGenerated records that a generation ran for the day bucket.
func (pl *Planner) MarkGenerated(day string) error {
	if pl.hasGenerated == nil {
		pl.hasGenerated = make(map[string]bool)
	}
	pl.hasGenerated[day] = true
	return pl.saveHasGenerated()
}

// ResetGenerated clears the idempotency flag for the day bucket so a fresh
// generation can run.
func (pl *Planner) ResetGenerated(day string) error {
	if !pl.hasGenerated[day] {
		return nil
	}
	delete(pl.hasGenerated, day)
	return pl.saveHasGenerated()
}
