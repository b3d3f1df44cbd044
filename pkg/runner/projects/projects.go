// Package projects provides the runner logic for project operations.
package projects

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"focilab.dev/focilab/pkg/id"
	"focilab.dev/focilab/pkg/printers"
	"focilab.dev/focilab/pkg/project"
	"focilab.dev/focilab/pkg/store"
)

// Add creates a project.
type Add struct {
	Title       string
	Description string
	UseAI       bool
	ShowID      bool

	Persistence store.Persistence
}

func (n *Add) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not add project, no persistence")
	}

	p := project.New(n.Title, n.Description)
	p.ID = id.New()
	p.UseAI = n.UseAI
	if err := n.Persistence.PutProject(p); err != nil {
		return err
	}

	return list(ctx, n.Persistence, n.ShowID)
}

// Get lists all projects, or one project with its milestones.
type Get struct {
	ID     string
	ShowID bool

	Persistence store.Persistence
}

func (n *Get) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not get projects, no persistence")
	}
	if n.ID == "" {
		return list(ctx, n.Persistence, n.ShowID)
	}

	p, err := n.Persistence.Project(ctx, n.ID)
	if err != nil {
		return err
	}
	milestones, err := n.Persistence.MilestonesByProject(ctx, p.ID)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.NewLine()
	pp.Title(p.Title)
	pp.Projects(p)
	pp.TitleWithCount("Milestones", len(milestones))
	pp.Milestones(milestones...)
	return nil
}

// Status moves a project through its lifecycle.
type Status struct {
	ID       string
	Status   project.Status
	Complete bool

	Persistence store.Persistence
}

func (n *Status) Do(ctx context.Context) error {
	p, err := n.Persistence.Project(ctx, n.ID)
	if err != nil {
		return err
	}
	if n.Complete {
		p.Complete()
	} else {
		p.Status = n.Status
	}
	if err := n.Persistence.PutProject(p); err != nil {
		return err
	}
	return list(ctx, n.Persistence, true)
}

// Current flags a project as the current work; at most one project carries
// the flag at a time.
type Current struct {
	ID string

	Persistence store.Persistence
}

func (n *Current) Do(ctx context.Context) error {
	if n.ID == "" {
		p, err := n.Persistence.CurrentWork(ctx)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				pp := printers.PrettyPrint{}
				pp.NewLine()
				pp.Title("Current work")
				pp.Projects()
				return nil
			}
			return err
		}
		pp := printers.PrettyPrint{ShowID: true}
		pp.NewLine()
		pp.Title("Current work")
		pp.Projects(p)
		return nil
	}

	if err := n.Persistence.SetCurrentWork(ctx, n.ID); err != nil {
		return err
	}
	return list(ctx, n.Persistence, true)
}

// Delete removes a project and cascades to its milestones.
type Delete struct {
	ID string

	Persistence store.Persistence
}

func (n *Delete) Do(ctx context.Context) error {
	return n.Persistence.DeleteProject(ctx, n.ID)
}

// ParseStatus maps CLI arguments onto a project status.
func ParseStatus(s string) (project.Status, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "not-started", "notstarted":
		return project.NotStarted, nil
	case "in-progress", "inprogress", "started":
		return project.InProgress, nil
	case "completed", "done":
		return project.Completed, nil
	}
	return "", fmt.Errorf("unknown status %q: use not-started, in-progress, or completed", s)
}

func list(ctx context.Context, p store.Persistence, showID bool) error {
	all, err := p.Projects(ctx)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{ShowID: showID}
	pp.NewLine()
	pp.TitleWithCount("Projects", len(all))
	pp.Projects(all...)
	return nil
}
