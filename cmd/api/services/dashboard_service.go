package services

import (
	"context"
	"fmt"

	"portfolio-blog/cmd/api/dto"
	"portfolio-blog/repositories"
)

type DashboardService struct {
	blogs    BlogPostRepository
	projects ProjectRepository
	messages MessageRepository
}

func NewDashboardService(blogs BlogPostRepository, projects ProjectRepository, messages MessageRepository) *DashboardService {
	return &DashboardService{blogs: blogs, projects: projects, messages: messages}
}

func (s *DashboardService) Stats(ctx context.Context) (dto.DashboardStats, error) {
	var (
		stats  dto.DashboardStats
		err    error
		unread = false
	)
	if stats.BlogCount, err = s.blogs.Count(ctx, repositories.BlogPostFilter{}); err != nil {
		return dto.DashboardStats{}, fmt.Errorf("count blogs: %w", err)
	}
	if stats.ProjectCount, err = s.projects.Count(ctx, repositories.ProjectFilter{}); err != nil {
		return dto.DashboardStats{}, fmt.Errorf("count projects: %w", err)
	}
	if stats.MessageCount, err = s.messages.Count(ctx, repositories.MessageFilter{}); err != nil {
		return dto.DashboardStats{}, fmt.Errorf("count messages: %w", err)
	}
	if stats.UnreadMessageCount, err = s.messages.Count(ctx, repositories.MessageFilter{Read: &unread}); err != nil {
		return dto.DashboardStats{}, fmt.Errorf("count unread messages: %w", err)
	}
	return stats, nil
}
