package core

import (
	"context"
	"fmt"
	"taskboard/internal/repository"
	"time"

	"go.uber.org/zap"
)

// Projects is the service behind the project views: create, list, toggle
// completion, delete. Ownership of the ids it is handed is the caller's
// responsibility; it only ever lists projects for a given owner.
type Projects struct {
	logs  *zap.SugaredLogger
	store ProjectStore
}

func NewProjects(logger *zap.SugaredLogger, store ProjectStore) *Projects {
	return &Projects{
		logs:  logger,
		store: store,
	}
}

func (s *Projects) Add(ctx context.Context, input ProjectInput) (ProjectRecord, error) {
	if err := input.Validate(); err != nil {
		return ProjectRecord{}, fmt.Errorf("validate project input: %w", err)
	}

	project, err := s.store.Insert(ctx, repository.Project{
		OwnerID:          input.OwnerID,
		Name:             input.Name,
		Type:             input.Type,
		StartDate:        input.StartDate,
		EndDate:          input.EndDate,
		AttachedFilePath: input.AttachedFilePath,
	})
	if err != nil {
		return ProjectRecord{}, fmt.Errorf("insert project: %w", err)
	}

	s.logs.Infow("project added", "project_id", project.ID, "owner_id", project.OwnerID, "name", project.Name)

	return storeProjectToRecord(project), nil
}

func (s *Projects) List(ctx context.Context, ownerID uint) ([]ProjectRecord, error) {
	projects, err := s.store.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}

	records := make([]ProjectRecord, len(projects))
	for i, project := range projects {
		records[i] = storeProjectToRecord(project)
	}
	return records, nil
}

// ProjectDeadline pairs a project with its deadline status for rendering.
type ProjectDeadline struct {
	Project ProjectRecord
	Status  DeadlineStatus
}

// ListWithDeadlines lists the owner's projects and evaluates the deadline of
// every pending one. Completed projects are not evaluated and a malformed end
// date means "no warning", it never aborts the rest of the listing.
func (s *Projects) ListWithDeadlines(ctx context.Context, ownerID uint, now time.Time) ([]ProjectDeadline, error) {
	records, err := s.List(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	deadlines := make([]ProjectDeadline, len(records))
	for i, record := range records {
		status := StatusOK
		if !record.Completed {
			status, err = EvaluateDeadline(record.EndDate, now)
			if err != nil {
				s.logs.Debugw("skipping deadline evaluation",
					"project_id", record.ID,
					"end_date", record.EndDate,
					"error", err)
				status = StatusOK
			}
		}
		deadlines[i] = ProjectDeadline{
			Project: record,
			Status:  status,
		}
	}
	return deadlines, nil
}

func (s *Projects) SetCompleted(ctx context.Context, projectID uint, completed bool) error {
	if err := s.store.SetCompleted(ctx, projectID, completed); err != nil {
		return fmt.Errorf("set completed: %w", err)
	}

	s.logs.Infow("project completion updated", "project_id", projectID, "completed", completed)
	return nil
}

func (s *Projects) Delete(ctx context.Context, projectID uint) error {
	if err := s.store.Delete(ctx, projectID); err != nil {
		return fmt.Errorf("delete project: %w", err)
	}

	s.logs.Infow("project deleted", "project_id", projectID)
	return nil
}

func storeProjectToRecord(project repository.Project) ProjectRecord {
	return ProjectRecord{
		ID:               project.ID,
		OwnerID:          project.OwnerID,
		Name:             project.Name,
		Type:             project.Type,
		StartDate:        project.StartDate,
		EndDate:          project.EndDate,
		Completed:        project.Completed,
		AttachedFilePath: project.AttachedFilePath,
	}
}
