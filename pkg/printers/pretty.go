// Package printers renders planner records for the terminal.
package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"focilab.dev/focilab/pkg/goal"
	"focilab.dev/focilab/pkg/planner"
	"focilab.dev/focilab/pkg/todo"
)

type PrettyPrint struct {
	ShowID bool
}

var (
	spacing = strings.Repeat(" ", len("1772447400000-ab2cd  "))
)

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d", count)

	switch count {
	case 1:
		_, _ = c.Println(" item")
	default:
		_, _ = c.Println(" items")
	}
}

// Todos prints one day bucket worth of todos.
func (pp *PrettyPrint) Todos(todos ...*todo.Todo) {
	if len(todos) == 0 {
		pp.none()
		return
	}

	t := color.New()
	done := color.New(color.Faint, color.CrossedOut)
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)

	for _, item := range todos {
		if pp.ShowID {
			_, _ = y.Print(item.ID)
			_, _ = y.Print(strings.Repeat(" ", max(1, len(spacing)-len(item.ID))))
		}
		line := t
		if item.Status == todo.Completed {
			line = done
		}
		_, _ = line.Println(item.String())
	}
	_, _ = t.Println("")
}

// Goals prints a goal list for one horizon.
func (pp *PrettyPrint) Goals(goals ...*goal.Goal) {
	if len(goals) == 0 {
		pp.none()
		return
	}

	t := color.New()
	done := color.New(color.Faint, color.CrossedOut)
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)

	for _, g := range goals {
		if pp.ShowID {
			_, _ = y.Print(g.ID)
			_, _ = y.Print(strings.Repeat(" ", max(1, len(spacing)-len(g.ID))))
		}
		mark := "○"
		line := t
		if g.Completed {
			mark = "●"
			line = done
		}
		_, _ = line.Printf("%s %s\n", mark, g.Text)
	}
	_, _ = t.Println("")
}

// Suggestions prints the pending AI suggestions.
func (pp *PrettyPrint) Suggestions(suggestions ...*planner.Suggestion) {
	if len(suggestions) == 0 {
		pp.none()
		return
	}

	t := color.New()
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)

	for _, s := range suggestions {
		if pp.ShowID {
			_, _ = y.Print(s.ID)
			_, _ = y.Print(strings.Repeat(" ", max(1, len(spacing)-len(s.ID))))
		}
		_, _ = t.Printf("? %s\n", s.Text)
	}
	_, _ = t.Println("")
}

func (pp *PrettyPrint) none() {
	f := color.New(color.Faint, color.Italic)
	if pp.ShowID {
		_, _ = f.Print(spacing)
	}
	_, _ = f.Print(" none\n\n")
}
