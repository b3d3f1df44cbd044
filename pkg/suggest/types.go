// Package suggest talks to a structured-completion API and turns goal/vision
// context into typed todo, goal, and milestone suggestions.
package suggest

import "fmt"

// TodoSuggestion is one proposed todo from a `{todos:[{id,title}]}` response.
type TodoSuggestion struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// GoalSuggestion is one proposed goal from a `{goals:[{id,text}]}` response.
type GoalSuggestion struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// TaskSuggestion is a sub-task inside a milestone suggestion.
type TaskSuggestion struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// MilestoneSuggestion is one proposed milestone with optional sub-tasks.
type MilestoneSuggestion struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description,omitempty"`
	DueDate     string           `json:"dueDate,omitempty"`
	Tasks       []TaskSuggestion `json:"tasks,omitempty"`
}

type todosEnvelope struct {
	Todos []TodoSuggestion `json:"todos"`
}

type goalsEnvelope struct {
	Goals []GoalSuggestion `json:"goals"`
}

type milestonesEnvelope struct {
	Milestones []MilestoneSuggestion `json:"milestones"`
}

func (e *todosEnvelope) validate() error {
	for i, t := range e.Todos {
		if t.Title == "" {
			return fmt.Errorf("suggest: todos[%d] missing title", i)
		}
	}
	return nil
}

func (e *goalsEnvelope) validate() error {
	for i, g := range e.Goals {
		if g.Text == "" {
			return fmt.Errorf("suggest: goals[%d] missing text", i)
		}
	}
	return nil
}

func (e *milestonesEnvelope) validate() error {
	for i, m := range e.Milestones {
		if m.Name == "" {
			return fmt.Errorf("suggest: milestones[%d] missing name", i)
		}
		for j, t := range m.Tasks {
			if t.Title == "" {
				return fmt.Errorf("suggest: milestones[%d].tasks[%d] missing title", i, j)
			}
		}
	}
	return nil
}
