package services

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"digibayt/internal/domain/models"
	"digibayt/internal/repository"
	"digibayt/internal/storage"
	"digibayt/internal/transport/http/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockBlogRepository struct {
	mock.Mock
}

func (m *MockBlogRepository) SavePost(ctx context.Context, post models.BlogPost) (uuid.UUID, error) {
	args := m.Called(ctx, post)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockBlogRepository) UpdatePostFields(ctx context.Context, postID uuid.UUID, updates map[string]interface{}) error {
	args := m.Called(ctx, postID, updates)
	return args.Error(0)
}

func (m *MockBlogRepository) DeletePost(ctx context.Context, postID uuid.UUID) error {
	args := m.Called(ctx, postID)
	return args.Error(0)
}

func (m *MockBlogRepository) GetPostByIdentifier(ctx context.Context, identifier string) (*models.BlogPost, error) {
	args := m.Called(ctx, identifier)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BlogPost), args.Error(1)
}

func (m *MockBlogRepository) GetPosts(ctx context.Context, filter repository.PostFilter) ([]models.BlogPost, int, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]models.BlogPost), args.Int(1), args.Error(2)
}

func (m *MockBlogRepository) GetRelatedPosts(ctx context.Context, post *models.BlogPost, limit int) ([]models.BlogPost, error) {
	args := m.Called(ctx, post, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.BlogPost), args.Error(1)
}

func (m *MockBlogRepository) SlugExists(ctx context.Context, slug string, excludeID uuid.UUID) (bool, error) {
	args := m.Called(ctx, slug, excludeID)
	return args.Bool(0), args.Error(1)
}

type MockAuthorRepository struct {
	mock.Mock
}

func (m *MockAuthorRepository) SaveAuthor(ctx context.Context, author models.Author) (uuid.UUID, error) {
	args := m.Called(ctx, author)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockAuthorRepository) UpdateAuthor(ctx context.Context, author models.Author) error {
	args := m.Called(ctx, author)
	return args.Error(0)
}

func (m *MockAuthorRepository) DeleteAuthor(ctx context.Context, authorID uuid.UUID) error {
	args := m.Called(ctx, authorID)
	return args.Error(0)
}

func (m *MockAuthorRepository) GetAuthorByIdentifier(ctx context.Context, identifier string) (*models.Author, error) {
	args := m.Called(ctx, identifier)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Author), args.Error(1)
}

func (m *MockAuthorRepository) GetAuthorByID(ctx context.Context, authorID uuid.UUID) (*models.Author, error) {
	args := m.Called(ctx, authorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Author), args.Error(1)
}

func (m *MockAuthorRepository) GetAuthors(ctx context.Context) ([]models.Author, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Author), args.Error(1)
}

type MockCategoryEnsurer struct {
	mock.Mock
}

func (m *MockCategoryEnsurer) EnsureUncategorized(ctx context.Context) (*models.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

var uncategorized = &models.Category{
	ID:   uuid.New(),
	Name: "Uncategorized",
	Slug: models.UncategorizedSlug,
}

func newTestService() (*BlogService, *MockBlogRepository, *MockAuthorRepository, *MockCategoryEnsurer) {
	repo := new(MockBlogRepository)
	authors := new(MockAuthorRepository)
	taxonomy := new(MockCategoryEnsurer)
	return NewBlogService(slog.Default(), repo, authors, taxonomy), repo, authors, taxonomy
}

func TestCreatePost_AutoSlugAndDefaults(t *testing.T) {
	ctx := context.Background()
	service, repo, authors, taxonomy := newTestService()

	authorID := uuid.New()
	postID := uuid.New()

	repo.On("SlugExists", ctx, "my-first-post", uuid.Nil).Return(false, nil)
	taxonomy.On("EnsureUncategorized", ctx).Return(uncategorized, nil)

	repo.On("SavePost", ctx, mock.MatchedBy(func(p models.BlogPost) bool {
		return p.Slug == "my-first-post" &&
			p.Status == models.StatusDraft &&
			len(p.Categories) == 1 && p.Categories[0] == "Uncategorized" &&
			p.PublishedAt == nil
	})).Return(postID, nil)

	saved := &models.BlogPost{
		ID:         postID,
		Title:      "My First Post!",
		Slug:       "my-first-post",
		AuthorID:   authorID,
		Categories: []string{"Uncategorized"},
		Status:     models.StatusDraft,
	}
	repo.On("GetPostByIdentifier", ctx, postID.String()).Return(saved, nil)
	authors.On("GetAuthorByID", ctx, authorID).Return(&models.Author{ID: authorID, Name: "Jo", Slug: "jo"}, nil)

	resp, err := service.CreatePost(ctx, dto.CreateBlogPostRequest{
		Title:    "My First Post!",
		Content:  "Hello",
		AuthorID: authorID,
	})

	require.NoError(t, err)
	assert.Equal(t, "my-first-post", resp.Slug)
	assert.Equal(t, "Jo", resp.Author.Name)
	repo.AssertExpectations(t)
	taxonomy.AssertExpectations(t)
}

func TestCreatePost_SlugTaken(t *testing.T) {
	ctx := context.Background()
	service, repo, _, _ := newTestService()

	repo.On("SlugExists", ctx, "taken", uuid.Nil).Return(true, nil)

	_, err := service.CreatePost(ctx, dto.CreateBlogPostRequest{
		Title:    "Taken",
		Slug:     "taken",
		Content:  "x",
		AuthorID: uuid.New(),
	})

	assert.ErrorIs(t, err, storage.ErrSlugTaken)
	repo.AssertNotCalled(t, "SavePost")
}

func TestCreatePost_PublishedSetsPublishedAt(t *testing.T) {
	ctx := context.Background()
	service, repo, authors, _ := newTestService()

	authorID := uuid.New()
	postID := uuid.New()

	repo.On("SlugExists", ctx, "live", uuid.Nil).Return(false, nil)
	repo.On("SavePost", ctx, mock.MatchedBy(func(p models.BlogPost) bool {
		return p.Status == models.StatusPublished && p.PublishedAt != nil
	})).Return(postID, nil)
	repo.On("GetPostByIdentifier", ctx, postID.String()).Return(&models.BlogPost{ID: postID, Slug: "live", AuthorID: authorID}, nil)
	authors.On("GetAuthorByID", ctx, authorID).Return(&models.Author{ID: authorID, Name: "Jo", Slug: "jo"}, nil)

	_, err := service.CreatePost(ctx, dto.CreateBlogPostRequest{
		Title:      "Live",
		Slug:       "live",
		Content:    "x",
		AuthorID:   authorID,
		Categories: []string{"News"},
		Status:     "published",
	})

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestUpdatePost_PublishOnce(t *testing.T) {
	ctx := context.Background()
	service, repo, authors, _ := newTestService()

	postID := uuid.New()
	authorID := uuid.New()
	firstPublish := time.Now().Add(-time.Hour)

	existing := &models.BlogPost{
		ID:          postID,
		Title:       "Post",
		Slug:        "post",
		AuthorID:    authorID,
		Status:      models.StatusDraft,
		PublishedAt: &firstPublish,
	}
	repo.On("GetPostByIdentifier", ctx, postID.String()).Return(existing, nil)

	// status changes but published_at must not be touched again
	repo.On("UpdatePostFields", ctx, postID, mock.MatchedBy(func(updates map[string]interface{}) bool {
		_, hasPublishedAt := updates["published_at"]
		return updates["status"] == "published" && !hasPublishedAt
	})).Return(nil)
	authors.On("GetAuthorByID", ctx, authorID).Return(&models.Author{ID: authorID, Name: "Jo", Slug: "jo"}, nil)

	status := "published"
	_, err := service.UpdatePost(ctx, postID, dto.UpdateBlogPostRequest{Status: &status})

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestGetPost_DraftHiddenFromPublic(t *testing.T) {
	ctx := context.Background()
	service, repo, _, _ := newTestService()

	draft := &models.BlogPost{
		ID:     uuid.New(),
		Slug:   "draft-post",
		Status: models.StatusDraft,
	}
	repo.On("GetPostByIdentifier", ctx, "draft-post").Return(draft, nil)

	_, err := service.GetPost(ctx, "draft-post", false)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestGetPost_FuturePublishHiddenFromPublic(t *testing.T) {
	ctx := context.Background()
	service, repo, _, _ := newTestService()

	future := time.Now().Add(time.Hour)
	scheduled := &models.BlogPost{
		ID:          uuid.New(),
		Slug:        "scheduled",
		Status:      models.StatusPublished,
		PublishedAt: &future,
	}
	repo.On("GetPostByIdentifier", ctx, "scheduled").Return(scheduled, nil)

	_, err := service.GetPost(ctx, "scheduled", false)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestGetPost_AdminSeesDraftWithTOC(t *testing.T) {
	ctx := context.Background()
	service, repo, authors, _ := newTestService()

	authorID := uuid.New()
	draft := &models.BlogPost{
		ID:       uuid.New(),
		Slug:     "draft-post",
		AuthorID: authorID,
		Content:  "# Intro\n\n## Details",
		Status:   models.StatusDraft,
	}
	repo.On("GetPostByIdentifier", ctx, "draft-post").Return(draft, nil)
	repo.On("GetRelatedPosts", ctx, draft, 3).Return([]models.BlogPost{}, nil)
	authors.On("GetAuthorByID", ctx, authorID).Return(&models.Author{ID: authorID, Name: "Jo", Slug: "jo"}, nil)

	resp, err := service.GetPost(ctx, "draft-post", true)

	require.NoError(t, err)
	require.Len(t, resp.TOC, 2)
	assert.Equal(t, "intro", resp.TOC[0].ID)
}

func TestGetPost_UnknownAuthorFallback(t *testing.T) {
	ctx := context.Background()
	service, repo, authors, _ := newTestService()

	authorID := uuid.New()
	now := time.Now().Add(-time.Minute)
	post := &models.BlogPost{
		ID:          uuid.New(),
		Slug:        "orphan",
		AuthorID:    authorID,
		Status:      models.StatusPublished,
		PublishedAt: &now,
	}
	repo.On("GetPostByIdentifier", ctx, "orphan").Return(post, nil)
	repo.On("GetRelatedPosts", ctx, post, 3).Return([]models.BlogPost{}, nil)
	authors.On("GetAuthorByID", ctx, authorID).Return(nil, storage.ErrNotFound)

	resp, err := service.GetPost(ctx, "orphan", false)

	require.NoError(t, err)
	assert.Equal(t, models.UnknownAuthor.Name, resp.Author.Name)
	assert.Equal(t, models.UnknownAuthor.Slug, resp.Author.Slug)
}

func TestListPosts_PublicForcesVisibility(t *testing.T) {
	ctx := context.Background()
	service, repo, _, _ := newTestService()

	repo.On("GetPosts", ctx, mock.MatchedBy(func(f repository.PostFilter) bool {
		return f.Status == models.StatusPublished && f.VisibleAt != nil
	})).Return([]models.BlogPost{}, 0, nil)

	_, err := service.ListPosts(ctx, dto.ListPostsQuery{Status: "all", IncludeDrafts: true}, false)

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestListPosts_AdminIncludesDrafts(t *testing.T) {
	ctx := context.Background()
	service, repo, _, _ := newTestService()

	repo.On("GetPosts", ctx, mock.MatchedBy(func(f repository.PostFilter) bool {
		return f.Status == "" && f.VisibleAt == nil
	})).Return([]models.BlogPost{}, 0, nil)

	_, err := service.ListPosts(ctx, dto.ListPostsQuery{Status: "all", IncludeDrafts: true}, true)

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestDeletePost_RepoError(t *testing.T) {
	ctx := context.Background()
	service, repo, _, _ := newTestService()

	postID := uuid.New()
	expectedErr := errors.New("boom")
	repo.On("DeletePost", ctx, postID).Return(expectedErr)

	err := service.DeletePost(ctx, postID)
	assert.ErrorIs(t, err, expectedErr)
}
