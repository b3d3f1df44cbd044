// Package todo defines the todo record and its status lifecycle.
package todo

import (
	"fmt"
	"strings"
	"time"
)

// Status tracks todo progress.
type Status string

const (
	NotStarted Status = "not-started"
	InProgress Status = "in-progress"
	Completed  Status = "completed"
)

var validStatuses = []Status{NotStarted, InProgress, Completed}

// ValidateStatus rejects statuses outside the fixed set.
func ValidateStatus(s Status) error {
	for _, v := range validStatuses {
		if s == v {
			return nil
		}
	}
	return fmt.Errorf("invalid status %q: must be one of not-started, in-progress, completed", s)
}

// CurrentSchema is the version written on new todo records.
const CurrentSchema = 2

// Todo is a single planner item bucketed into a weekday.
type Todo struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Status      Status    `json:"status"`
	Date        string    `json:"date"`
	WeekStart   string    `json:"weekStartDate,omitempty"`
	ProjectID   string    `json:"projectId,omitempty"`
	MilestoneID string    `json:"milestoneId,omitempty"`
	Selected    bool      `json:"isSelected,omitempty"`
	Created     time.Time `json:"created,omitempty"`
	Schema      int       `json:"schema,omitempty"`
}

// New returns an unstored todo with the default status.
func New(title, date string) *Todo {
	return &Todo{
		Title:   title,
		Status:  NotStarted,
		Date:    date,
		Created: time.Now(),
		Schema:  CurrentSchema,
	}
}

func (t *Todo) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("todo id is required")
	}
	if strings.TrimSpace(t.Title) == "" {
		return fmt.Errorf("todo title is required")
	}
	if t.Date == "" {
		return fmt.Errorf("todo date bucket is required")
	}
	return ValidateStatus(t.Status)
}

// Complete moves the todo to the completed status.
func (t *Todo) Complete() {
	t.Status = Completed
}

// Start moves the todo to in-progress unless it is already completed.
func (t *Todo) Start() {
	if t.Status != Completed {
		t.Status = InProgress
	}
}

// Patch holds a partial update applied over an existing todo. Nil fields are
// left untouched.
type Patch struct {
	Title       *string
	Status      *Status
	Date        *string
	WeekStart   *string
	ProjectID   *string
	MilestoneID *string
	Selected    *bool
}

// Apply merges the patch into the todo.
func (p Patch) Apply(t *Todo) {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
	if p.Date != nil {
		t.Date = *p.Date
	}
	if p.WeekStart != nil {
		t.WeekStart = *p.WeekStart
	}
	if p.ProjectID != nil {
		t.ProjectID = *p.ProjectID
	}
	if p.MilestoneID != nil {
		t.MilestoneID = *p.MilestoneID
	}
	if p.Selected != nil {
		t.Selected = *p.Selected
	}
}

func (t *Todo) String() string {
	switch t.Status {
	case Completed:
		return fmt.Sprintf("✘ %s", t.Title)
	case InProgress:
		return fmt.Sprintf("◐ %s", t.Title)
	default:
		return fmt.Sprintf("● %s", t.Title)
	}
}
