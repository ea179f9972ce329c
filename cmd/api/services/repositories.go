package services

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"portfolio-blog/models"
	"portfolio-blog/repositories"
)

// BlogPostRepository is satisfied by both the mongo and the memory repositories.
type BlogPostRepository interface {
	Insert(ctx context.Context, p *models.BlogPost) error
	List(ctx context.Context, f repositories.BlogPostFilter) ([]models.BlogPost, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.BlogPost, error)
	Update(ctx context.Context, p *models.BlogPost) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	Count(ctx context.Context, f repositories.BlogPostFilter) (int64, error)
}

type ProjectRepository interface {
	Insert(ctx context.Context, p *models.Project) error
	List(ctx context.Context, f repositories.ProjectFilter) ([]models.Project, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Project, error)
	Update(ctx context.Context, p *models.Project) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	Count(ctx context.Context, f repositories.ProjectFilter) (int64, error)
}

type MessageRepository interface {
	Insert(ctx context.Context, m *models.Message) error
	List(ctx context.Context, f repositories.MessageFilter) ([]models.Message, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Message, error)
	Update(ctx context.Context, m *models.Message) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	Count(ctx context.Context, f repositories.MessageFilter) (int64, error)
}

// parseID treats a malformed id like an unknown one.
func parseID(hexID string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(hexID)
	if err != nil {
		return primitive.NilObjectID, ErrNotFound
	}
	return id, nil
}

func mapStoreErr(err error) error {
	if errors.Is(err, repositories.ErrNotFound) {
		return ErrNotFound
	}
	return err
}
