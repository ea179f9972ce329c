package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"portfolio-blog/cmd/api/dto"
	"portfolio-blog/db"
	"portfolio-blog/models"
	"portfolio-blog/repositories"
	"portfolio-blog/repositories/memory"
)

func validBlogInput() dto.BlogPostInput {
	return dto.BlogPostInput{
		Title:    "Hello",
		Content:  "# Body",
		ImageURL: "https://example.com/cover.png",
		Excerpt:  "short",
		Category: "go",
		Tags:     []string{"go", "mongodb"},
		Author:   "Owner",
	}
}

func validProjectInput() dto.ProjectInput {
	return dto.ProjectInput{
		Title:        "portfolio",
		Description:  "site",
		ImageURL:     "https://example.com/shot.png",
		LiveURL:      "https://example.com",
		GithubURL:    "https://github.com/example/portfolio",
		Technologies: []string{"go"},
	}
}

func ptr[T any](v T) *T { return &v }

func validationFields(t *testing.T, err error) map[string]string {
	t.Helper()
	require.ErrorIs(t, err, ErrValidation)
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	return verr.Fields
}

func TestBlogService_CreateAndGet(t *testing.T) {
	svc := NewBlogService(memory.NewBlogPostRepository(), nil)
	ctx := context.Background()

	created, err := svc.Create(ctx, validBlogInput())
	require.NoError(t, err)
	assert.False(t, created.ID.IsZero())
	assert.False(t, created.CreatedAt.IsZero())

	got, err := svc.Get(ctx, created.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, *created, *got)
}

func TestBlogService_CreateValidation(t *testing.T) {
	testCases := []struct {
		name      string
		mutate    func(in *dto.BlogPostInput)
		wantField string
		wantRule  string
	}{
		{name: "missing title", mutate: func(in *dto.BlogPostInput) { in.Title = "" }, wantField: "title", wantRule: "required"},
		{name: "blank content", mutate: func(in *dto.BlogPostInput) { in.Content = "   " }, wantField: "content", wantRule: "notblank"},
		{name: "bad image url", mutate: func(in *dto.BlogPostInput) { in.ImageURL = "not a url" }, wantField: "imageUrl", wantRule: "uri"},
		{name: "long excerpt", mutate: func(in *dto.BlogPostInput) { in.Excerpt = strings.Repeat("a", 501) }, wantField: "excerpt", wantRule: "max"},
		{name: "missing tags", mutate: func(in *dto.BlogPostInput) { in.Tags = nil }, wantField: "tags", wantRule: "required"},
		{name: "empty tags", mutate: func(in *dto.BlogPostInput) { in.Tags = []string{} }, wantField: "tags", wantRule: "min"},
		{name: "blank tag", mutate: func(in *dto.BlogPostInput) { in.Tags = []string{"go", " "} }, wantField: "tags[1]", wantRule: "notblank"},
		{name: "missing author", mutate: func(in *dto.BlogPostInput) { in.Author = "" }, wantField: "author", wantRule: "required"},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			repo := memory.NewBlogPostRepository()
			svc := NewBlogService(repo, nil)
			in := validBlogInput()
			testCase.mutate(&in)

			_, err := svc.Create(context.Background(), in)
			fields := validationFields(t, err)
			assert.Equal(t, testCase.wantRule, fields[testCase.wantField], "fields: %v", fields)

			// nothing was written
			n, err := repo.Count(context.Background(), repositories.BlogPostFilter{})
			require.NoError(t, err)
			assert.Zero(t, n)
		})
	}
}

func TestBlogService_UpdateMergesAndRevalidates(t *testing.T) {
	svc := NewBlogService(memory.NewBlogPostRepository(), nil)
	ctx := context.Background()
	created, err := svc.Create(ctx, validBlogInput())
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID.Hex(), dto.BlogPostPatch{Title: ptr("Renamed")})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Title)
	assert.Equal(t, created.Content, updated.Content)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.False(t, updated.UpdatedAt.Before(created.UpdatedAt))

	_, err = svc.Update(ctx, created.ID.Hex(), dto.BlogPostPatch{Tags: ptr([]string{})})
	fields := validationFields(t, err)
	assert.Equal(t, "min", fields["tags"])

	got, err := svc.Get(ctx, created.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Title)
	assert.Equal(t, created.Tags, got.Tags)
}

func TestBlogService_MissingAndMalformedIDs(t *testing.T) {
	svc := NewBlogService(memory.NewBlogPostRepository(), nil)
	ctx := context.Background()

	for _, id := range []string{primitive.NewObjectID().Hex(), "not-an-id", ""} {
		_, err := svc.Get(ctx, id)
		assert.ErrorIs(t, err, ErrNotFound, id)

		_, err = svc.Update(ctx, id, dto.BlogPostPatch{})
		assert.ErrorIs(t, err, ErrNotFound, id)

		assert.ErrorIs(t, svc.Delete(ctx, id), ErrNotFound, id)
	}
}

func TestBlogService_DeleteTwice(t *testing.T) {
	svc := NewBlogService(memory.NewBlogPostRepository(), nil)
	ctx := context.Background()
	created, err := svc.Create(ctx, validBlogInput())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID.Hex()))
	assert.ErrorIs(t, svc.Delete(ctx, created.ID.Hex()), ErrNotFound)
}

func TestBlogService_ListFilters(t *testing.T) {
	svc := NewBlogService(memory.NewBlogPostRepository(), nil)
	ctx := context.Background()

	_, err := svc.Create(ctx, validBlogInput())
	require.NoError(t, err)
	other := validBlogInput()
	other.Category = "life"
	other.Tags = []string{"travel"}
	_, err = svc.Create(ctx, other)
	require.NoError(t, err)

	all, err := svc.List(ctx, ListBlogsInput{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	life, err := svc.List(ctx, ListBlogsInput{Category: "life"})
	require.NoError(t, err)
	require.Len(t, life, 1)
	assert.Equal(t, "life", life[0].Category)

	tagged, err := svc.List(ctx, ListBlogsInput{Tag: "mongodb"})
	require.NoError(t, err)
	assert.Len(t, tagged, 1)
}

func TestProjectService_ToggleFeatured(t *testing.T) {
	svc := NewProjectService(memory.NewProjectRepository(), nil)
	ctx := context.Background()

	created, err := svc.Create(ctx, validProjectInput())
	require.NoError(t, err)
	assert.False(t, created.Featured)

	_, err = svc.Update(ctx, created.ID.Hex(), dto.ProjectPatch{Featured: ptr(true)})
	require.NoError(t, err)

	got, err := svc.Get(ctx, created.ID.Hex())
	require.NoError(t, err)
	assert.True(t, got.Featured)

	featured, err := svc.List(ctx, ListProjectsInput{Featured: ptr(true)})
	require.NoError(t, err)
	assert.Len(t, featured, 1)
}

func TestProjectService_CreateValidation(t *testing.T) {
	svc := NewProjectService(memory.NewProjectRepository(), nil)
	in := validProjectInput()
	in.LiveURL = ""
	in.GithubURL = "github"
	in.Technologies = nil

	_, err := svc.Create(context.Background(), in)
	fields := validationFields(t, err)
	assert.Equal(t, "required", fields["liveUrl"])
	assert.Equal(t, "uri", fields["githubUrl"])
	assert.Equal(t, "required", fields["technologies"])
}

func TestMessageService_LifeCycle(t *testing.T) {
	svc := NewMessageService(memory.NewMessageRepository(), nil)
	ctx := context.Background()

	created, err := svc.Create(ctx, dto.MessageInput{Name: "Visitor", Email: "v@example.com", Message: "Hi"})
	require.NoError(t, err)
	assert.False(t, created.Read)

	unread, err := svc.List(ctx, ListMessagesInput{Read: ptr(false)})
	require.NoError(t, err)
	assert.Len(t, unread, 1)

	updated, err := svc.Update(ctx, created.ID.Hex(), dto.MessagePatch{Read: ptr(true)})
	require.NoError(t, err)
	assert.True(t, updated.Read)

	unread, err = svc.List(ctx, ListMessagesInput{Read: ptr(false)})
	require.NoError(t, err)
	assert.Empty(t, unread)
}

func TestMessageService_CreateValidation(t *testing.T) {
	svc := NewMessageService(memory.NewMessageRepository(), nil)

	_, err := svc.Create(context.Background(), dto.MessageInput{Name: "V", Email: "not-an-email", Message: ""})
	fields := validationFields(t, err)
	assert.Equal(t, "email", fields["email"])
	assert.Equal(t, "required", fields["message"])
}

func TestDashboardService_Stats(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	blogs := NewBlogService(store.Blogs, nil)
	messages := NewMessageService(store.Messages, nil)
	_, err := blogs.Create(ctx, validBlogInput())
	require.NoError(t, err)
	m1, err := messages.Create(ctx, dto.MessageInput{Name: "a", Email: "a@example.com", Message: "1"})
	require.NoError(t, err)
	_, err = messages.Create(ctx, dto.MessageInput{Name: "b", Email: "b@example.com", Message: "2"})
	require.NoError(t, err)
	_, err = messages.Update(ctx, m1.ID.Hex(), dto.MessagePatch{Read: ptr(true)})
	require.NoError(t, err)

	stats, err := NewDashboardService(store.Blogs, store.Projects, store.Messages).Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, dto.DashboardStats{BlogCount: 1, ProjectCount: 0, MessageCount: 2, UnreadMessageCount: 1}, stats)
}

// downBlogs fails every call the way an unreachable store does.
type downBlogs struct{ *memory.BlogPostRepository }

func (downBlogs) Count(context.Context, repositories.BlogPostFilter) (int64, error) {
	return 0, db.ErrConnection
}

func (downBlogs) Insert(context.Context, *models.BlogPost) error {
	return db.ErrConnection
}

func TestStoreErrorsPropagate(t *testing.T) {
	store := memory.NewStore()

	_, err := NewDashboardService(downBlogs{}, store.Projects, store.Messages).Stats(context.Background())
	assert.ErrorIs(t, err, db.ErrConnection)

	_, err = NewBlogService(downBlogs{}, nil).Create(context.Background(), validBlogInput())
	assert.ErrorIs(t, err, db.ErrConnection)
}

func TestValidationErrorMessage(t *testing.T) {
	err := &ValidationError{Fields: map[string]string{"title": "required", "author": "required"}}
	assert.Equal(t, "validation failed: author: required, title: required", err.Error())
	assert.ErrorIs(t, err, ErrValidation)
}

func TestTheme(t *testing.T) {
	assert.NoError(t, ValidateTheme(ThemeDark))
	assert.NoError(t, ValidateTheme(ThemeLight))
	assert.ErrorIs(t, ValidateTheme("blue"), ErrValidation)

	assert.Equal(t, ThemeLight, NormalizeTheme(""))
	assert.Equal(t, ThemeDark, NormalizeTheme("dark"))
	assert.Equal(t, ThemeLight, NormalizeTheme("blue"))
}
