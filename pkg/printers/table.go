package printers

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"focilab.dev/focilab/pkg/project"
	"focilab.dev/focilab/pkg/timeutil"
)

// Projects renders the project table.
func (pp *PrettyPrint) Projects(projects ...*project.Project) {
	if len(projects) == 0 {
		pp.none()
		return
	}

	bold := color.New(color.Bold)
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 48

	header := []interface{}{bold.Sprint("Title"), bold.Sprint("Status"), bold.Sprint("Started"), bold.Sprint("Flags")}
	if pp.ShowID {
		header = append([]interface{}{bold.Sprint("ID")}, header...)
	}
	tbl.AddRow(header...)

	for _, p := range projects {
		flags := ""
		if p.CurrentWork {
			flags += "current "
		}
		if p.UseAI {
			flags += "ai"
		}
		row := []interface{}{p.Title, string(p.Status), p.StartDate.Format(timeutil.LayoutISO), flags}
		if pp.ShowID {
			row = append([]interface{}{p.ID}, row...)
		}
		tbl.AddRow(row...)
	}

	_, _ = fmt.Fprintln(color.Output, tbl)
	fmt.Println("")
}

// Milestones renders the milestone table for one project.
func (pp *PrettyPrint) Milestones(milestones ...*project.Milestone) {
	if len(milestones) == 0 {
		pp.none()
		return
	}

	bold := color.New(color.Bold)
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 48

	header := []interface{}{bold.Sprint("Name"), bold.Sprint("Status"), bold.Sprint("Due")}
	if pp.ShowID {
		header = append([]interface{}{bold.Sprint("ID")}, header...)
	}
	tbl.AddRow(header...)

	for _, m := range milestones {
		due := ""
		if m.DueDate != nil {
			due = m.DueDate.Format(timeutil.LayoutISO)
		}
		row := []interface{}{m.Name, string(m.Status), due}
		if pp.ShowID {
			row = append([]interface{}{m.ID}, row...)
		}
		tbl.AddRow(row...)
	}

	_, _ = fmt.Fprintln(color.Output, tbl)
	fmt.Println("")
}
