package services

import (
	"context"

	"portfolio-blog/cmd/api/dto"
	"portfolio-blog/events"
	"portfolio-blog/models"
	"portfolio-blog/repositories"
)

type ProjectService struct {
	repo   ProjectRepository
	events Emitter
}

func NewProjectService(repo ProjectRepository, emitter Emitter) *ProjectService {
	return &ProjectService{repo: repo, events: emitter}
}

type ListProjectsInput struct {
	Featured   *bool
	Technology string
}

func (s *ProjectService) List(ctx context.Context, in ListProjectsInput) ([]models.Project, error) {
	return s.repo.List(ctx, repositories.ProjectFilter{Featured: in.Featured, Technology: in.Technology})
}

func (s *ProjectService) Create(ctx context.Context, in dto.ProjectInput) (*models.Project, error) {
	project := in.Model()
	if err := validateStruct(project); err != nil {
		return nil, err
	}
	if err := s.repo.Insert(ctx, &project); err != nil {
		return nil, err
	}
	emit(ctx, s.events, events.NewContentChanged(events.ProjectCreated, project.ID.Hex(), project.Title))
	return &project, nil
}

func (s *ProjectService) Get(ctx context.Context, hexID string) (*models.Project, error) {
	id, err := parseID(hexID)
	if err != nil {
		return nil, err
	}
	project, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapStoreErr(err)
	}
	return project, nil
}

func (s *ProjectService) Update(ctx context.Context, hexID string, patch dto.ProjectPatch) (*models.Project, error) {
	project, err := s.Get(ctx, hexID)
	if err != nil {
		return nil, err
	}
	patch.Apply(project)
	if err := validateStruct(project); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, project); err != nil {
		return nil, mapStoreErr(err)
	}
	emit(ctx, s.events, events.NewContentChanged(events.ProjectUpdated, project.ID.Hex(), project.Title))
	return project, nil
}

func (s *ProjectService) Delete(ctx context.Context, hexID string) error {
	id, err := parseID(hexID)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return mapStoreErr(err)
	}
	emit(ctx, s.events, events.NewContentChanged(events.ProjectDeleted, id.Hex(), ""))
	return nil
}
