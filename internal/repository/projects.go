package repository

import (
	"context"
	"errors"
	"fmt"
	"taskboard/internal/db"
)

var ErrOwnerNotFound error = errors.New("project owner not found")

type ProjectRepository struct {
	db Database
}

func NewProjectRepository(db Database) *ProjectRepository {
	return &ProjectRepository{
		db: db,
	}
}

// Insert creates the project with Completed=false. The owner must exist at
// creation time; there is no database-enforced foreign key.
func (r *ProjectRepository) Insert(ctx context.Context, project Project) (Project, error) {
	var owner User
	err := r.db.GetOneBy(ctx, map[string]any{"id": project.OwnerID}, &owner)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return Project{}, ErrOwnerNotFound
		}
		return Project{}, fmt.Errorf("check project owner: %w", err)
	}

	project.ID = 0
	project.Completed = false
	if err := r.db.Create(ctx, &project); err != nil {
		return Project{}, fmt.Errorf("insert project: %w", err)
	}

	return project, nil
}

func (r *ProjectRepository) ListByOwner(ctx context.Context, ownerID uint) ([]Project, error) {
	var projects []Project
	err := r.db.GetAllBy(ctx, map[string]any{"owner_id": ownerID}, &projects)
	if err != nil {
		return nil, fmt.Errorf("list projects by owner: %w", err)
	}
	return projects, nil
}

func (r *ProjectRepository) SetCompleted(ctx context.Context, id uint, completed bool) error {
	err := r.db.UpdateField(ctx, &Project{}, id, "completed", completed)
	if err != nil {
		return fmt.Errorf("set project completed: %w", err)
	}
	return nil
}

func (r *ProjectRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.DeleteBy(ctx, &Project{}, map[string]any{"id": id})
	if err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	return nil
}

func (r *ProjectRepository) DeleteByOwner(ctx context.Context, ownerID uint) error {
	err := r.db.DeleteBy(ctx, &Project{}, map[string]any{"owner_id": ownerID})
	if err != nil {
		return fmt.Errorf("delete projects by owner: %w", err)
	}
	return nil
}
