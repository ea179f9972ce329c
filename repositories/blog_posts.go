package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"portfolio-blog/db"
	"portfolio-blog/models"
)

type BlogPostRepository struct {
	col collection[models.BlogPost]
}

func NewBlogPostRepository(src Source) *BlogPostRepository {
	return &BlogPostRepository{col: collection[models.BlogPost]{src: src, name: db.CollectionBlogs}}
}

// Insert assigns a new id and timestamps, then stores the post.
func (r *BlogPostRepository) Insert(ctx context.Context, p *models.BlogPost) error {
	now := Now()
	p.ID = primitive.NewObjectID()
	p.CreatedAt = now
	p.UpdatedAt = now
	return r.col.insert(ctx, p)
}

// List returns posts matching f, newest first.
func (r *BlogPostRepository) List(ctx context.Context, f BlogPostFilter) ([]models.BlogPost, error) {
	return r.col.find(ctx, f.bson())
}

func (r *BlogPostRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.BlogPost, error) {
	return r.col.findByID(ctx, id)
}

// Update replaces the stored post and refreshes updatedAt.
func (r *BlogPostRepository) Update(ctx context.Context, p *models.BlogPost) error {
	p.UpdatedAt = Now()
	return r.col.replace(ctx, p.ID, p)
}

func (r *BlogPostRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	return r.col.delete(ctx, id)
}

func (r *BlogPostRepository) Count(ctx context.Context, f BlogPostFilter) (int64, error) {
	return r.col.count(ctx, f.bson())
}
