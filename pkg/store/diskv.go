package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/peterbourgon/diskv/v3"

	"focilab.dev/focilab/pkg/project"
)

// Record store names. Each maps to a directory under the base path.
const (
	StoreProjects   = "projects"
	StoreMilestones = "milestones"
)

// ErrNotFound is returned when a record id has no backing file.
var ErrNotFound = errors.New("store: record not found")

// Persistence defines the persistence contract for projects and milestones.
// All reads run records through schema migration before returning them.
type Persistence interface {
	Projects(ctx context.Context) ([]*project.Project, error)
	Project(ctx context.Context, id string) (*project.Project, error)
	PutProject(p *project.Project) error
	DeleteProject(ctx context.Context, id string) error
	ProjectsByStatus(ctx context.Context, status project.Status) ([]*project.Project, error)
	CurrentWork(ctx context.Context) (*project.Project, error)
	SetCurrentWork(ctx context.Context, id string) error

	Milestones(ctx context.Context) ([]*project.Milestone, error)
	Milestone(ctx context.Context, id string) (*project.Milestone, error)
	PutMilestone(m *project.Milestone) error
	DeleteMilestone(id string) error
	MilestonesByProject(ctx context.Context, projectID string) ([]*project.Milestone, error)
	MilestonesByStatus(ctx context.Context, status project.Status) ([]*project.Milestone, error)
	MilestonesDueBefore(ctx context.Context, t time.Time) ([]*project.Milestone, error)

	Flat() Flat
	Watch(ctx context.Context) (<-chan Event, error)
}

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	return &persistence{
		d: diskv.New(diskv.Options{
			BasePath:          basePath,
			AdvancedTransform: keyToPathTransform,
			InverseTransform:  pathToKeyTransform,
			CacheSizeMax:      1024 * 1024, // 1MB
		}),
		basePath: basePath,
		flat:     newFlat(basePath),
	}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
	flat     *flatStore
}

func (p *persistence) Flat() Flat {
	return p.flat
}

// Record keys are `<store>/<id>`; ids may themselves contain dashes, so the
// first slash is the only separator.
func keyToPathTransform(s string) *diskv.PathKey {
	idx := strings.Index(s, "/")
	if idx < 0 {
		return &diskv.PathKey{Path: []string{}, FileName: s}
	}
	return &diskv.PathKey{
		Path:     []string{s[:idx]},
		FileName: s[idx+1:],
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	if len(pathKey.Path) == 0 {
		return pathKey.FileName
	}
	return fmt.Sprintf("%s/%s", strings.Join(pathKey.Path, "/"), pathKey.FileName)
}

func recordKey(storeName, recID string) string {
	return fmt.Sprintf("%s/%s", storeName, recID)
}

func (p *persistence) read(key string, v any) error {
	val, err := p.d.Read(key)
	if err != nil {
		if os.IsNotExist(err) {
			return ErrNotFound
		}
		return err
	}
	return json.Unmarshal(val, v)
}

func (p *persistence) write(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return p.d.Write(key, data)
}

func (p *persistence) keys(ctx context.Context, storeName string) []string {
	prefix := storeName + "/"
	out := make([]string, 0)
	for key := range p.d.Keys(ctx.Done()) {
		if strings.HasPrefix(key, prefix) {
			out = append(out, key)
		}
	}
	sort.Strings(out)
	return out
}

func (p *persistence) Projects(ctx context.Context) ([]*project.Project, error) {
	all := make([]*project.Project, 0)
	for _, key := range p.keys(ctx, StoreProjects) {
		rec := &project.Project{}
		if err := p.read(key, rec); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", key, err)
			continue
		}
		migrateProject(rec)
		all = append(all, rec)
	}
	sortProjects(all)
	return all, nil
}

func (p *persistence) Project(ctx context.Context, recID string) (*project.Project, error) {
	rec := &project.Project{}
	if err := p.read(recordKey(StoreProjects, recID), rec); err != nil {
		return nil, err
	}
	migrateProject(rec)
	return rec, nil
}

func (p *persistence) PutProject(rec *project.Project) error {
	if rec.Schema == 0 {
		rec.Schema = project.CurrentSchema
	}
	if err := rec.Validate(); err != nil {
		return fmt.Errorf("store: %w", err)
	}
	return p.write(recordKey(StoreProjects, rec.ID), rec)
}

// DeleteProject removes the project and every milestone that references it.
// Deleted milestones are snapshotted first; if any deletion fails, the ones
// already removed are written back so the cascade never half-applies.
func (p *persistence) DeleteProject(ctx context.Context, recID string) error {
	if _, err := p.Project(ctx, recID); err != nil {
		return err
	}
	children, err := p.MilestonesByProject(ctx, recID)
	if err != nil {
		return err
	}

	deleted := make([]*project.Milestone, 0, len(children))
	restore := func() {
		for _, m := range deleted {
			if err := p.write(recordKey(StoreMilestones, m.ID), m); err != nil {
				fmt.Fprintf(os.Stderr, "store: restore milestone %s: %v\n", m.ID, err)
			}
		}
	}

	for _, m := range children {
		if err := p.d.Erase(recordKey(StoreMilestones, m.ID)); err != nil {
			restore()
			return fmt.Errorf("store: delete milestone %s: %w", m.ID, err)
		}
		deleted = append(deleted, m)
	}

	if err := p.d.Erase(recordKey(StoreProjects, recID)); err != nil {
		restore()
		return fmt.Errorf("store: delete project %s: %w", recID, err)
	}
	return nil
}

func (p *persistence) ProjectsByStatus(ctx context.Context, status project.Status) ([]*project.Project, error) {
	all, err := p.Projects(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*project.Project, 0, len(all))
	for _, rec := range all {
		if rec.Status == status {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (p *persistence) CurrentWork(ctx context.Context) (*project.Project, error) {
	all, err := p.Projects(ctx)
	if err != nil {
		return nil, err
	}
	for _, rec := range all {
		if rec.CurrentWork {
			return rec, nil
		}
	}
	return nil, ErrNotFound
}

// SetCurrentWork flags the given project as current work and clears the flag
// everywhere else in the same pass, so at most one project carries it.
func (p *persistence) SetCurrentWork(ctx context.Context, recID string) error {
	all, err := p.Projects(ctx)
	if err != nil {
		return err
	}
	var target *project.Project
	for _, rec := range all {
		if rec.ID == recID {
			target = rec
			continue
		}
		if rec.CurrentWork {
			rec.CurrentWork = false
			if err := p.PutProject(rec); err != nil {
				return err
			}
		}
	}
	if target == nil {
		return ErrNotFound
	}
	target.CurrentWork = true
	return p.PutProject(target)
}

func (p *persistence) Milestones(ctx context.Context) ([]*project.Milestone, error) {
	all := make([]*project.Milestone, 0)
	for _, key := range p.keys(ctx, StoreMilestones) {
		rec := &project.Milestone{}
		if err := p.read(key, rec); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", key, err)
			continue
		}
		migrateMilestone(rec)
		all = append(all, rec)
	}
	sortMilestones(all)
	return all, nil
}

func (p *persistence) Milestone(ctx context.Context, recID string) (*project.Milestone, error) {
	rec := &project.Milestone{}
	if err := p.read(recordKey(StoreMilestones, recID), rec); err != nil {
		return nil, err
	}
	migrateMilestone(rec)
	return rec, nil
}

func (p *persistence) PutMilestone(rec *project.Milestone) error {
	if rec.Schema == 0 {
		rec.Schema = project.CurrentSchema
	}
	if err := rec.Validate(); err != nil {
		return fmt.Errorf("store: %w", err)
	}
	if !p.d.Has(recordKey(StoreProjects, rec.ProjectID)) {
		return fmt.Errorf("store: milestone %s references unknown project %s", rec.ID, rec.ProjectID)
	}
	return p.write(recordKey(StoreMilestones, rec.ID), rec)
}

func (p *persistence) DeleteMilestone(recID string) error {
	key := recordKey(StoreMilestones, recID)
	if !p.d.Has(key) {
		return ErrNotFound
	}
	return p.d.Erase(key)
}

func (p *persistence) MilestonesByProject(ctx context.Context, projectID string) ([]*project.Milestone, error) {
	all, err := p.Milestones(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*project.Milestone, 0, len(all))
	for _, rec := range all {
		if rec.ProjectID == projectID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (p *persistence) MilestonesByStatus(ctx context.Context, status project.Status) ([]*project.Milestone, error) {
	all, err := p.Milestones(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*project.Milestone, 0, len(all))
	for _, rec := range all {
		if rec.Status == status {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (p *persistence) MilestonesDueBefore(ctx context.Context, t time.Time) ([]*project.Milestone, error) {
	all, err := p.Milestones(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*project.Milestone, 0, len(all))
	for _, rec := range all {
		if rec.DueDate != nil && rec.DueDate.Before(t) {
			out = append(out, rec)
		}
	}
	return out, nil
}

func sortProjects(projects []*project.Project) {
	sort.SliceStable(projects, func(i, j int) bool {
		left := projects[i]
		right := projects[j]
		if left.StartDate.Equal(right.StartDate) {
			return left.ID < right.ID
		}
		return left.StartDate.Before(right.StartDate)
	})
}

func sortMilestones(milestones []*project.Milestone) {
	sort.SliceStable(milestones, func(i, j int) bool {
		left := milestones[i]
		right := milestones[j]
		switch {
		case left.DueDate == nil && right.DueDate == nil:
			return left.ID < right.ID
		case left.DueDate == nil:
			return false
		case right.DueDate == nil:
			return true
		default:
			if left.DueDate.Equal(*right.DueDate) {
				return left.ID < right.ID
			}
			return left.DueDate.Before(*right.DueDate)
		}
	})
}
