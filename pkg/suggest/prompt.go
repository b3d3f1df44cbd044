package suggest

import (
	"fmt"
	"strings"

	"focilab.dev/focilab/pkg/planner"
)

const systemPromptTodos = `You are a personal planning assistant. Given the
user's vision and their unfinished goals, propose a short list of concrete,
same-day todos that move those goals forward. Respond with JSON only, in the
shape {"todos":[{"id":"<string>","title":"<string>"}]}. No prose.`

const systemPromptGoals = `You are a personal planning assistant. Given the
user's vision and their unfinished goals, propose weekly goals that break the
larger ones into steps. Respond with JSON only, in the shape
{"goals":[{"id":"<string>","text":"<string>"}]}. No prose.`

const systemPromptMilestones = `You are a project planning assistant. Given a
project description and the user's context, propose milestones with optional
sub-tasks. Respond with JSON only, in the shape
{"milestones":[{"id":"<string>","name":"<string>","description":"<string>",
"dueDate":"YYYY-MM-DD","tasks":[{"id":"<string>","title":"<string>",
"description":"<string>"}]}]}. No prose.`

// userMessage concatenates the snapshotted context into the single user
// message the completion API receives.
func userMessage(pctx planner.PromptContext) string {
	var b strings.Builder
	if pctx.Vision != "" {
		fmt.Fprintf(&b, "Vision:\n%s\n\n", pctx.Vision)
	}
	if pctx.MainGoal != "" {
		fmt.Fprintf(&b, "Main goal:\n%s\n\n", pctx.MainGoal)
	}
	writeSection(&b, "Unfinished yearly goals", pctx.Yearly)
	writeSection(&b, "Unfinished quarterly goals", pctx.Quarterly)
	writeSection(&b, "Unfinished weekly goals", pctx.Weekly)
	if b.Len() == 0 {
		return "No context recorded yet."
	}
	return strings.TrimRight(b.String(), "\n")
}

func writeSection(b *strings.Builder, title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(b, "%s:\n", title)
	for _, item := range items {
		fmt.Fprintf(b, "- %s\n", item)
	}
	b.WriteString("\n")
}
