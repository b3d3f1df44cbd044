// Package vision provides the runner logic for the vision text, main goal,
// and welcome settings.
package vision

import (
	"context"
	"fmt"

	"github.com/fatih/color"

	"focilab.dev/focilab/pkg/planner"
)

// Vision shows or replaces the vision text and main goal.
type Vision struct {
	Text     string
	MainGoal string

	Planner *planner.Planner
}

func (n *Vision) Do(ctx context.Context) error {
	if n.Text != "" {
		if err := n.Planner.SetVision(n.Text); err != nil {
			return err
		}
	}
	if n.MainGoal != "" {
		if err := n.Planner.SetMainGoal(n.MainGoal); err != nil {
			return err
		}
	}

	vision, err := n.Planner.Vision()
	if err != nil {
		return err
	}
	main, err := n.Planner.MainGoal()
	if err != nil {
		return err
	}

	title := color.New(color.Bold, color.Underline)
	faint := color.New(color.Faint, color.Italic)
	fmt.Println("")
	_, _ = title.Println("Vision")
	if vision == "" {
		_, _ = faint.Println(" none")
	} else {
		fmt.Println(vision)
	}
	fmt.Println("")
	_, _ = title.Println("Main goal")
	if main == "" {
		_, _ = faint.Println(" none")
	} else {
		fmt.Println(main)
	}
	fmt.Println("")
	return nil
}

// Welcome records the first-run details.
type Welcome struct {
	Name string

	Planner *planner.Planner
}

func (n *Welcome) Do(ctx context.Context) error {
	if n.Name != "" {
		if err := n.Planner.SetUserName(n.Name); err != nil {
			return err
		}
	}
	if err := n.Planner.SetWelcomeDone(true); err != nil {
		return err
	}

	name, err := n.Planner.UserName()
	if err != nil {
		return err
	}
	if name == "" {
		fmt.Println("Welcome to focilab.")
	} else {
		fmt.Printf("Welcome to focilab, %s.\n", name)
	}
	return nil
}
