// Package milestones provides the runner logic for milestone operations.
package milestones

import (
	"context"
	"errors"
	"time"

	"focilab.dev/focilab/pkg/id"
	"focilab.dev/focilab/pkg/printers"
	"focilab.dev/focilab/pkg/project"
	"focilab.dev/focilab/pkg/store"
	"focilab.dev/focilab/pkg/timeutil"
)

// Add creates a milestone under a project.
type Add struct {
	ProjectID   string
	Name        string
	Description string
	Due         string

	Persistence store.Persistence
}

func (n *Add) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not add milestone, no persistence")
	}

	m := project.NewMilestone(n.ProjectID, n.Name)
	m.ID = id.New()
	m.Description = n.Description
	if n.Due != "" {
		due, err := time.Parse(timeutil.LayoutISO, n.Due)
		if err != nil {
			return err
		}
		m.DueDate = &due
	}
	if err := n.Persistence.PutMilestone(m); err != nil {
		return err
	}

	return list(ctx, n.Persistence, n.ProjectID)
}

// Get lists milestones for a project, or every milestone.
type Get struct {
	ProjectID string
	ShowID    bool

	Persistence store.Persistence
}

func (n *Get) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not get milestones, no persistence")
	}
	if n.ProjectID != "" {
		return list(ctx, n.Persistence, n.ProjectID)
	}

	all, err := n.Persistence.Milestones(ctx)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.NewLine()
	pp.TitleWithCount("Milestones", len(all))
	pp.Milestones(all...)
	return nil
}

// Complete marks a milestone completed.
type Complete struct {
	ID string

	Persistence store.Persistence
}

func (n *Complete) Do(ctx context.Context) error {
	m, err := n.Persistence.Milestone(ctx, n.ID)
	if err != nil {
		return err
	}
	m.Status = project.Completed
	if err := n.Persistence.PutMilestone(m); err != nil {
		return err
	}
	return list(ctx, n.Persistence, m.ProjectID)
}

// Delete removes a milestone permanently.
type Delete struct {
	ID string

	Persistence store.Persistence
}

func (n *Delete) Do(ctx context.Context) error {
	return n.Persistence.DeleteMilestone(n.ID)
}

func list(ctx context.Context, p store.Persistence, projectID string) error {
	milestones, err := p.MilestonesByProject(ctx, projectID)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{ShowID: true}
	pp.NewLine()
	pp.TitleWithCount("Milestones", len(milestones))
	pp.Milestones(milestones...)
	return nil
}
