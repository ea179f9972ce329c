// Package memory keeps resources in process memory. It backs the "memory"
// store driver for local runs and is the store used by handler and service tests.
package memory

import (
	"context"
	"slices"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"portfolio-blog/models"
	"portfolio-blog/repositories"
)

// Store groups the three in-memory repositories.
type Store struct {
	Blogs    *BlogPostRepository
	Projects *ProjectRepository
	Messages *MessageRepository
}

func NewStore() *Store {
	return &Store{
		Blogs:    NewBlogPostRepository(),
		Projects: NewProjectRepository(),
		Messages: NewMessageRepository(),
	}
}

// Connect and Ping always succeed.
func (s *Store) Connect(context.Context) error { return nil }
func (s *Store) Ping(context.Context) error    { return nil }

// -------------------- Blog posts --------------------

type BlogPostRepository struct {
	t *table[models.BlogPost]
}

func NewBlogPostRepository() *BlogPostRepository {
	return &BlogPostRepository{t: newTable(
		func(p *models.BlogPost) meta { return meta{&p.ID, &p.CreatedAt, &p.UpdatedAt} },
		func(p models.BlogPost) models.BlogPost { p.Tags = slices.Clone(p.Tags); return p },
	)}
}

func (r *BlogPostRepository) Insert(ctx context.Context, p *models.BlogPost) error {
	return r.t.insert(ctx, p)
}

func (r *BlogPostRepository) List(ctx context.Context, f repositories.BlogPostFilter) ([]models.BlogPost, error) {
	return r.t.list(ctx, matchBlogPost(f))
}

func (r *BlogPostRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.BlogPost, error) {
	return r.t.find(ctx, id)
}

func (r *BlogPostRepository) Update(ctx context.Context, p *models.BlogPost) error {
	return r.t.replace(ctx, p)
}

func (r *BlogPostRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	return r.t.delete(ctx, id)
}

func (r *BlogPostRepository) Count(ctx context.Context, f repositories.BlogPostFilter) (int64, error) {
	return r.t.count(ctx, matchBlogPost(f))
}

func matchBlogPost(f repositories.BlogPostFilter) func(*models.BlogPost) bool {
	return func(p *models.BlogPost) bool {
		if f.Category != "" && p.Category != f.Category {
			return false
		}
		if f.Tag != "" && !slices.Contains(p.Tags, f.Tag) {
			return false
		}
		return true
	}
}

// -------------------- Projects --------------------

type ProjectRepository struct {
	t *table[models.Project]
}

func NewProjectRepository() *ProjectRepository {
	return &ProjectRepository{t: newTable(
		func(p *models.Project) meta { return meta{&p.ID, &p.CreatedAt, &p.UpdatedAt} },
		func(p models.Project) models.Project { p.Technologies = slices.Clone(p.Technologies); return p },
	)}
}

func (r *ProjectRepository) Insert(ctx context.Context, p *models.Project) error {
	return r.t.insert(ctx, p)
}

func (r *ProjectRepository) List(ctx context.Context, f repositories.ProjectFilter) ([]models.Project, error) {
	return r.t.list(ctx, matchProject(f))
}

func (r *ProjectRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Project, error) {
	return r.t.find(ctx, id)
}

func (r *ProjectRepository) Update(ctx context.Context, p *models.Project) error {
	return r.t.replace(ctx, p)
}

func (r *ProjectRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	return r.t.delete(ctx, id)
}

func (r *ProjectRepository) Count(ctx context.Context, f repositories.ProjectFilter) (int64, error) {
	return r.t.count(ctx, matchProject(f))
}

func matchProject(f repositories.ProjectFilter) func(*models.Project) bool {
	return func(p *models.Project) bool {
		if f.Featured != nil && p.Featured != *f.Featured {
			return false
		}
		if f.Technology != "" && !slices.Contains(p.Technologies, f.Technology) {
			return false
		}
		return true
	}
}

// -------------------- Messages --------------------

type MessageRepository struct {
	t *table[models.Message]
}

func NewMessageRepository() *MessageRepository {
	return &MessageRepository{t: newTable(
		func(m *models.Message) meta { return meta{&m.ID, &m.CreatedAt, &m.UpdatedAt} },
		func(m models.Message) models.Message { return m },
	)}
}

func (r *MessageRepository) Insert(ctx context.Context, m *models.Message) error {
	return r.t.insert(ctx, m)
}

func (r *MessageRepository) List(ctx context.Context, f repositories.MessageFilter) ([]models.Message, error) {
	return r.t.list(ctx, matchMessage(f))
}

func (r *MessageRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Message, error) {
	return r.t.find(ctx, id)
}

func (r *MessageRepository) Update(ctx context.Context, m *models.Message) error {
	return r.t.replace(ctx, m)
}

func (r *MessageRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	return r.t.delete(ctx, id)
}

func (r *MessageRepository) Count(ctx context.Context, f repositories.MessageFilter) (int64, error) {
	return r.t.count(ctx, matchMessage(f))
}

func matchMessage(f repositories.MessageFilter) func(*models.Message) bool {
	return func(m *models.Message) bool {
		return f.Read == nil || m.Read == *f.Read
	}
}
