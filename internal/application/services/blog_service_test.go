package services

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/zatekoja/clinicsite/internal/domain/entities"
	"github.com/zatekoja/clinicsite/internal/domain/repositories"
	apperrors "github.com/zatekoja/clinicsite/pkg/errors"
)

type mockBlogRepository struct {
	mock.Mock
}

func (m *mockBlogRepository) List(ctx context.Context, filter repositories.BlogFilter) ([]*entities.BlogPost, error) {
	args := m.Called(ctx, filter)
	posts, _ := args.Get(0).([]*entities.BlogPost)
	return posts, args.Error(1)
}

func (m *mockBlogRepository) GetBySlug(ctx context.Context, slug string) (*entities.BlogPost, error) {
	args := m.Called(ctx, slug)
	post, _ := args.Get(0).(*entities.BlogPost)
	return post, args.Error(1)
}

func (m *mockBlogRepository) GetByID(ctx context.Context, id string) (*entities.BlogPost, error) {
	args := m.Called(ctx, id)
	post, _ := args.Get(0).(*entities.BlogPost)
	return post, args.Error(1)
}

func (m *mockBlogRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	args := m.Called(ctx, slug)
	return args.Bool(0), args.Error(1)
}

func (m *mockBlogRepository) Create(ctx context.Context, post *entities.BlogPost) (*entities.BlogPost, error) {
	args := m.Called(ctx, post)
	if fn, ok := args.Get(0).(func(context.Context, *entities.BlogPost) *entities.BlogPost); ok {
		return fn(ctx, post), args.Error(1)
	}
	created, _ := args.Get(0).(*entities.BlogPost)
	return created, args.Error(1)
}

func (m *mockBlogRepository) Update(ctx context.Context, id string, patch entities.BlogPostPatch) (*entities.BlogPost, error) {
	args := m.Called(ctx, id, patch)
	updated, _ := args.Get(0).(*entities.BlogPost)
	return updated, args.Error(1)
}

func (m *mockBlogRepository) Delete(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func bufferLogger() (*zerolog.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	logger := zerolog.New(buf)
	return &logger, buf
}

func mustTime(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, value)
	require.NoError(t, err)
	return parsed
}

func notProvisioned() error {
	return apperrors.NewNotProvisionedError("table blog_posts does not exist", &pq.Error{Code: "42P01"})
}

func TestSlugify(t *testing.T) {
	tests := map[string]string{
		"Hello, World!  Recovery  Story": "hello-world-recovery-story",
		"New Beginnings":                 "new-beginnings",
		"  --Leading and trailing--  ":   "leading-and-trailing",
		"Tabs\tand\nnewlines":            "tabs-and-newlines",
		"a -- b":                         "a-b",
		"Café au lait":                   "caf-au-lait",
		"!!!":                            "",
	}
	for title, want := range tests {
		assert.Equal(t, want, Slugify(title), title)
	}
}

func TestBlogService_GenerateSlugProbesForUnusedSuffix(t *testing.T) {
	repo := &mockBlogRepository{}
	repo.On("SlugExists", mock.Anything, "new-beginnings").Return(true, nil)
	repo.On("SlugExists", mock.Anything, "new-beginnings-1").Return(true, nil)
	repo.On("SlugExists", mock.Anything, "new-beginnings-2").Return(false, nil)

	logger := zerolog.Nop()
	svc := NewBlogService(repo, &logger, nil)

	assert.Equal(t, "new-beginnings-2", svc.GenerateSlug(context.Background(), "New Beginnings"))
	repo.AssertExpectations(t)
}

func TestBlogService_GenerateSlugUnusedBase(t *testing.T) {
	repo := &mockBlogRepository{}
	repo.On("SlugExists", mock.Anything, "hello-world-recovery-story").Return(false, nil)

	logger := zerolog.Nop()
	svc := NewBlogService(repo, &logger, nil)

	assert.Equal(t, "hello-world-recovery-story", svc.GenerateSlug(context.Background(), "Hello, World!  Recovery  Story"))
}

func TestBlogService_GenerateSlugMissingTableReturnsBase(t *testing.T) {
	repo := &mockBlogRepository{}
	repo.On("SlugExists", mock.Anything, "first-post").Return(false, notProvisioned()).Once()

	logger := zerolog.Nop()
	svc := NewBlogService(repo, &logger, nil)

	assert.Equal(t, "first-post", svc.GenerateSlug(context.Background(), "First Post"))
	repo.AssertNumberOfCalls(t, "SlugExists", 1)
}

func TestBlogService_GenerateSlugWithoutRepository(t *testing.T) {
	svc := NewBlogService(nil, nil, nil)
	assert.Equal(t, "post", svc.GenerateSlug(context.Background(), "???"))
}

func TestBlogService_ListFailuresAreEmpty(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantLevel string
	}{
		{name: "not provisioned", err: notProvisioned(), wantLevel: `"level":"info"`},
		{name: "other failure", err: apperrors.NewInternalError("failed to list blog posts", errors.New("timeout")), wantLevel: `"level":"error"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockBlogRepository{}
			repo.On("List", mock.Anything, mock.Anything).Return(nil, tt.err)
			logger, buf := bufferLogger()
			svc := NewBlogService(repo, logger, nil)

			posts := svc.List(context.Background(), repositories.BlogFilter{PublishedOnly: true})
			assert.NotNil(t, posts)
			assert.Empty(t, posts)
			assert.Contains(t, buf.String(), tt.wantLevel)
		})
	}
}

func TestBlogService_NotFoundIsSilent(t *testing.T) {
	repo := &mockBlogRepository{}
	repo.On("GetBySlug", mock.Anything, "missing").Return(nil, apperrors.NewNotFoundError("blog post not found"))
	logger, buf := bufferLogger()
	svc := NewBlogService(repo, logger, nil)

	assert.Nil(t, svc.GetBySlug(context.Background(), "missing"))
	assert.Empty(t, buf.String())
}

func TestBlogService_CreateSanitizesAndDerives(t *testing.T) {
	repo := &mockBlogRepository{}
	repo.On("SlugExists", mock.Anything, "recovery-is-possible").Return(false, nil)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*entities.BlogPost")).
		Return(func(_ context.Context, post *entities.BlogPost) *entities.BlogPost { return post }, nil)

	logger := zerolog.Nop()
	svc := NewBlogService(repo, &logger, nil)

	created := svc.Create(context.Background(), BlogPostInput{
		Title:       "Recovery is possible",
		Content:     `<p onclick="steal()">You are <b>not</b> alone.</p><script>alert(1)</script>`,
		IsPublished: true,
	})
	require.NotNil(t, created)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "recovery-is-possible", created.Slug)
	assert.NotContains(t, created.Content, "script")
	assert.NotContains(t, created.Content, "onclick")
	assert.Contains(t, created.Content, "<b>not</b>")
	assert.Equal(t, "You are not alone.", created.Excerpt)
	require.NotNil(t, created.PublishedAt)
}

func TestBlogService_CreateRendersMarkdown(t *testing.T) {
	repo := &mockBlogRepository{}
	repo.On("SlugExists", mock.Anything, "custom-slug").Return(false, nil)
	repo.On("Create", mock.Anything, mock.Anything).
		Return(func(_ context.Context, post *entities.BlogPost) *entities.BlogPost { return post }, nil)

	logger := zerolog.Nop()
	svc := NewBlogService(repo, &logger, nil)

	created := svc.Create(context.Background(), BlogPostInput{
		Title:   "Markdown",
		Slug:    "Custom Slug",
		Content: "# Heading\n\nSome **bold** text.",
		Format:  ContentFormatMarkdown,
		Excerpt: "Hand written",
	})
	require.NotNil(t, created)

	assert.Equal(t, "custom-slug", created.Slug)
	assert.Contains(t, created.Content, "<h1")
	assert.Contains(t, created.Content, "<strong>bold</strong>")
	assert.Equal(t, "Hand written", created.Excerpt)
	assert.Nil(t, created.PublishedAt)
	repo.AssertNumberOfCalls(t, "SlugExists", 1)
}

func TestBlogService_CreateGivenSlugIsMadeUnique(t *testing.T) {
	repo := &mockBlogRepository{}
	repo.On("SlugExists", mock.Anything, "new-beginnings").Return(true, nil)
	repo.On("SlugExists", mock.Anything, "new-beginnings-1").Return(false, nil)
	repo.On("Create", mock.Anything, mock.Anything).
		Return(func(_ context.Context, post *entities.BlogPost) *entities.BlogPost { return post }, nil)

	logger := zerolog.Nop()
	svc := NewBlogService(repo, &logger, nil)

	created := svc.Create(context.Background(), BlogPostInput{
		Title:   "A different title",
		Slug:    "New Beginnings",
		Content: "<p>c</p>",
	})
	require.NotNil(t, created)
	assert.Equal(t, "new-beginnings-1", created.Slug)
	repo.AssertExpectations(t)
}

func TestBlogService_GenerateSlugGivesUpAfterProbeLimit(t *testing.T) {
	repo := &mockBlogRepository{}
	repo.On("SlugExists", mock.Anything, mock.Anything).Return(true, nil)

	logger := zerolog.Nop()
	svc := NewBlogService(repo, &logger, nil)

	slug := svc.GenerateSlug(context.Background(), "Busy")
	assert.True(t, strings.HasPrefix(slug, "busy-"), slug)
	assert.Len(t, slug, len("busy-")+8)
	repo.AssertNumberOfCalls(t, "SlugExists", maxSlugProbes)
}

func TestBlogService_UpdateIgnoresSlugWithNoUsableCharacters(t *testing.T) {
	repo := &mockBlogRepository{}
	repo.On("Update", mock.Anything, "p1", mock.MatchedBy(func(p entities.BlogPostPatch) bool {
		return p.Slug == nil && p.Title != nil
	})).Return(&entities.BlogPost{ID: "p1", Slug: "kept"}, nil)

	logger := zerolog.Nop()
	svc := NewBlogService(repo, &logger, nil)

	slug, title := "!!!", "New title"
	updated := svc.Update(context.Background(), "p1", BlogPostUpdate{
		BlogPostPatch: entities.BlogPostPatch{Slug: &slug, Title: &title},
	})
	require.NotNil(t, updated)
	assert.Equal(t, "kept", updated.Slug)
	repo.AssertExpectations(t)
}

func TestBlogService_UpdateSlugifiesSlug(t *testing.T) {
	repo := &mockBlogRepository{}
	repo.On("Update", mock.Anything, "p1", mock.MatchedBy(func(p entities.BlogPostPatch) bool {
		return p.Slug != nil && *p.Slug == "spring-update"
	})).Return(&entities.BlogPost{ID: "p1", Slug: "spring-update"}, nil)

	logger := zerolog.Nop()
	svc := NewBlogService(repo, &logger, nil)

	slug := "Spring Update!"
	require.NotNil(t, svc.Update(context.Background(), "p1", BlogPostUpdate{
		BlogPostPatch: entities.BlogPostPatch{Slug: &slug},
	}))
	repo.AssertExpectations(t)
}

func TestBlogService_CreateFailureReturnsNil(t *testing.T) {
	repo := &mockBlogRepository{}
	repo.On("SlugExists", mock.Anything, mock.Anything).Return(false, nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil, notProvisioned())

	logger := zerolog.Nop()
	svc := NewBlogService(repo, &logger, nil)

	assert.Nil(t, svc.Create(context.Background(), BlogPostInput{Title: "T", Content: "c"}))
}

func TestBlogService_UpdateStampsFirstPublish(t *testing.T) {
	repo := &mockBlogRepository{}
	repo.On("GetByID", mock.Anything, "p1").Return(&entities.BlogPost{ID: "p1"}, nil)
	repo.On("Update", mock.Anything, "p1", mock.MatchedBy(func(p entities.BlogPostPatch) bool {
		return p.PublishedAt != nil && p.IsPublished != nil && *p.IsPublished
	})).Return(&entities.BlogPost{ID: "p1", IsPublished: true}, nil)

	logger := zerolog.Nop()
	svc := NewBlogService(repo, &logger, nil)

	published := true
	updated := svc.Update(context.Background(), "p1", BlogPostUpdate{
		BlogPostPatch: entities.BlogPostPatch{IsPublished: &published},
	})
	require.NotNil(t, updated)
	repo.AssertExpectations(t)
}

func TestBlogService_UpdateKeepsOriginalPublishTime(t *testing.T) {
	repo := &mockBlogRepository{}
	first := mustTime(t, "2024-06-01T10:00:00Z")
	repo.On("GetByID", mock.Anything, "p1").Return(&entities.BlogPost{ID: "p1", PublishedAt: &first}, nil)
	repo.On("Update", mock.Anything, "p1", mock.MatchedBy(func(p entities.BlogPostPatch) bool {
		return p.PublishedAt == nil
	})).Return(&entities.BlogPost{ID: "p1", PublishedAt: &first}, nil)

	logger := zerolog.Nop()
	svc := NewBlogService(repo, &logger, nil)

	published := true
	content := "<p>edited</p><iframe src=x></iframe>"
	require.NotNil(t, svc.Update(context.Background(), "p1", BlogPostUpdate{
		BlogPostPatch: entities.BlogPostPatch{IsPublished: &published, Content: &content},
	}))

	patch := repo.Calls[len(repo.Calls)-1].Arguments.Get(2).(entities.BlogPostPatch)
	require.NotNil(t, patch.Content)
	assert.False(t, strings.Contains(*patch.Content, "iframe"))
}

func TestBlogService_Delete(t *testing.T) {
	repo := &mockBlogRepository{}
	repo.On("Delete", mock.Anything, "p1").Return(true, nil)
	repo.On("Delete", mock.Anything, "p2").Return(false, errors.New("boom"))

	logger := zerolog.Nop()
	svc := NewBlogService(repo, &logger, nil)

	assert.True(t, svc.Delete(context.Background(), "p1"))
	assert.False(t, svc.Delete(context.Background(), "p2"))
}

func TestDeriveExcerpt(t *testing.T) {
	long := "<p>" + strings.Repeat("word ", 60) + "</p>"
	excerpt := DeriveExcerpt(long)
	assert.True(t, strings.HasSuffix(excerpt, "…"))
	assert.LessOrEqual(t, len([]rune(excerpt)), ExcerptLength+1)

	assert.Equal(t, "Fish & chips", DeriveExcerpt("<p>Fish &amp; chips</p>"))
	assert.Equal(t, "One Two", DeriveExcerpt("<p>One</p><p>Two</p>"))
}
