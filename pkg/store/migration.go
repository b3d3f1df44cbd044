package store

import (
	"focilab.dev/focilab/pkg/goal"
	"focilab.dev/focilab/pkg/project"
	"focilab.dev/focilab/pkg/todo"
)

// Schema history:
//
//	v0/v1  records written before the schema field existed; status and
//	       horizon fields may be absent.
//	v2     current. Every record carries schema, status defaults filled.
//
// Migration runs at load time so callers only ever see current-schema
// records. Writes always stamp the current version.

func migrateProject(rec *project.Project) {
	if rec.Schema >= project.CurrentSchema {
		return
	}
	if rec.Status == "" {
		rec.Status = project.NotStarted
	}
	rec.Schema = project.CurrentSchema
}

func migrateMilestone(rec *project.Milestone) {
	if rec.Schema >= project.CurrentSchema {
		return
	}
	if rec.Status == "" {
		rec.Status = project.NotStarted
	}
	rec.Schema = project.CurrentSchema
}

func migrateTodo(rec *todo.Todo) {
	if rec.Schema >= todo.CurrentSchema {
		return
	}
	if rec.Status == "" {
		rec.Status = todo.NotStarted
	}
	rec.Schema = todo.CurrentSchema
}

func migrateGoal(rec *goal.Goal, horizon goal.Horizon) {
	if rec.Horizon == "" {
		rec.Horizon = horizon
	}
	if rec.Schema >= goal.CurrentSchema {
		return
	}
	rec.Schema = goal.CurrentSchema
}
