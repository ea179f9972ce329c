package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"portfolio-blog/db"
	"portfolio-blog/models"
)

type ProjectRepository struct {
	col collection[models.Project]
}

func NewProjectRepository(src Source) *ProjectRepository {
	return &ProjectRepository{col: collection[models.Project]{src: src, name: db.CollectionProjects}}
}

// Insert assigns a new id and timestamps, then stores the project.
func (r *ProjectRepository) Insert(ctx context.Context, p *models.Project) error {
	now := Now()
	p.ID = primitive.NewObjectID()
	p.CreatedAt = now
	p.UpdatedAt = now
	return r.col.insert(ctx, p)
}

// List returns projects matching f, newest first.
func (r *ProjectRepository) List(ctx context.Context, f ProjectFilter) ([]models.Project, error) {
	return r.col.find(ctx, f.bson())
}

// FindByID returns ErrNotFound when no project has the id.
func (r *ProjectRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Project, error) {
	return r.col.findByID(ctx, id)
}

// Update replaces the stored project and refreshes updatedAt.
func (r *ProjectRepository) Update(ctx context.Context, p *models.Project) error {
	p.UpdatedAt = Now()
	return r.col.replace(ctx, p.ID, p)
}

func (r *ProjectRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	return r.col.delete(ctx, id)
}

func (r *ProjectRepository) Count(ctx context.Context, f ProjectFilter) (int64, error) {
	return r.col.count(ctx, f.bson())
}
