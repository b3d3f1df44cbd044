// Package project defines project and milestone records.
package project

import (
	"fmt"
	"strings"
	"time"
)

// Status tracks project and milestone progress.
type Status string

const (
	NotStarted Status = "NotStarted"
	InProgress Status = "InProgress"
	Completed  Status = "Completed"
)

var validStatuses = []Status{NotStarted, InProgress, Completed}

func ValidateStatus(s Status) error {
	for _, v := range validStatuses {
		if s == v {
			return nil
		}
	}
	return fmt.Errorf("invalid status %q: must be one of NotStarted, InProgress, Completed", s)
}

// CurrentSchema is the version written on new project and milestone records.
const CurrentSchema = 2

// Project is a long-running effort milestones and todos hang off of.
type Project struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Description   string     `json:"description,omitempty"`
	Status        Status     `json:"status"`
	StartDate     time.Time  `json:"startDate"`
	CompletedDate *time.Time `json:"completedDate,omitempty"`
	CurrentWork   bool       `json:"isCurrentWork,omitempty"`
	UseAI         bool       `json:"useAI,omitempty"`
	Schema        int        `json:"schema,omitempty"`
}

// New returns an unstored project starting now.
func New(title, description string) *Project {
	return &Project{
		Title:       title,
		Description: description,
		Status:      NotStarted,
		StartDate:   time.Now(),
		Schema:      CurrentSchema,
	}
}

func (p *Project) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("project id is required")
	}
	if strings.TrimSpace(p.Title) == "" {
		return fmt.Errorf("project title is required")
	}
	return ValidateStatus(p.Status)
}

// Complete marks the project completed and stamps the completion date.
func (p *Project) Complete() {
	now := time.Now()
	p.Status = Completed
	p.CompletedDate = &now
}

// Milestone is a dated checkpoint belonging to one project.
type Milestone struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Status      Status     `json:"status"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	ProjectID   string     `json:"projectId"`
	Schema      int        `json:"schema,omitempty"`
}

// NewMilestone returns an unstored milestone for the given project.
func NewMilestone(projectID, name string) *Milestone {
	return &Milestone{
		Name:      name,
		Status:    NotStarted,
		ProjectID: projectID,
		Schema:    CurrentSchema,
	}
}

func (m *Milestone) Validate() error {
	if m.ID == "" {
		return fmt.Errorf("milestone id is required")
	}
	if strings.TrimSpace(m.Name) == "" {
		return fmt.Errorf("milestone name is required")
	}
	if m.ProjectID == "" {
		return fmt.Errorf("milestone project id is required")
	}
	return ValidateStatus(m.Status)
}
