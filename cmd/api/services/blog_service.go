package services

import (
	"context"

	"portfolio-blog/cmd/api/dto"
	"portfolio-blog/events"
	"portfolio-blog/models"
	"portfolio-blog/repositories"
)

// BlogService validates and persists blog posts.
type BlogService struct {
	repo   BlogPostRepository
	events Emitter
}

// NewBlogService builds the service. A nil emitter publishes nothing.
func NewBlogService(repo BlogPostRepository, emitter Emitter) *BlogService {
	return &BlogService{repo: repo, events: emitter}
}

type ListBlogsInput struct {
	Category string
	Tag      string
}

func (s *BlogService) List(ctx context.Context, in ListBlogsInput) ([]models.BlogPost, error) {
	return s.repo.List(ctx, repositories.BlogPostFilter{Category: in.Category, Tag: in.Tag})
}

// Create validates the whole payload before anything is written.
func (s *BlogService) Create(ctx context.Context, in dto.BlogPostInput) (*models.BlogPost, error) {
	post := in.Model()
	if err := validateStruct(post); err != nil {
		return nil, err
	}
	if err := s.repo.Insert(ctx, &post); err != nil {
		return nil, err
	}
	emit(ctx, s.events, events.NewContentChanged(events.BlogCreated, post.ID.Hex(), post.Title))
	return &post, nil
}

func (s *BlogService) Get(ctx context.Context, hexID string) (*models.BlogPost, error) {
	id, err := parseID(hexID)
	if err != nil {
		return nil, err
	}
	post, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapStoreErr(err)
	}
	return post, nil
}

// Update overlays the patch on the stored post and re-validates the result.
func (s *BlogService) Update(ctx context.Context, hexID string, patch dto.BlogPostPatch) (*models.BlogPost, error) {
	post, err := s.Get(ctx, hexID)
	if err != nil {
		return nil, err
	}
	patch.Apply(post)
	if err := validateStruct(post); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, post); err != nil {
		return nil, mapStoreErr(err)
	}
	emit(ctx, s.events, events.NewContentChanged(events.BlogUpdated, post.ID.Hex(), post.Title))
	return post, nil
}

func (s *BlogService) Delete(ctx context.Context, hexID string) error {
	id, err := parseID(hexID)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return mapStoreErr(err)
	}
	emit(ctx, s.events, events.NewContentChanged(events.BlogDeleted, id.Hex(), ""))
	return nil
}
