package services

import (
	"context"
	"fmt"
	"log/slog"
	"testing"

	"digibayt/internal/domain/models"
	"digibayt/internal/storage"
	"digibayt/internal/transport/http/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockTaxonomyRepository struct {
	mock.Mock
}

func (m *MockTaxonomyRepository) SaveCategory(ctx context.Context, category models.Category) (uuid.UUID, error) {
	args := m.Called(ctx, category)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockTaxonomyRepository) UpdateCategory(ctx context.Context, category models.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockTaxonomyRepository) DeleteCategory(ctx context.Context, categoryID uuid.UUID) error {
	args := m.Called(ctx, categoryID)
	return args.Error(0)
}

func (m *MockTaxonomyRepository) GetCategoryByIdentifier(ctx context.Context, identifier string) (*models.Category, error) {
	args := m.Called(ctx, identifier)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *MockTaxonomyRepository) GetCategories(ctx context.Context) ([]models.Category, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Category), args.Error(1)
}

func (m *MockTaxonomyRepository) SaveTag(ctx context.Context, tag models.Tag) (uuid.UUID, error) {
	args := m.Called(ctx, tag)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockTaxonomyRepository) UpdateTag(ctx context.Context, tag models.Tag) error {
	args := m.Called(ctx, tag)
	return args.Error(0)
}

func (m *MockTaxonomyRepository) DeleteTag(ctx context.Context, tagID uuid.UUID) error {
	args := m.Called(ctx, tagID)
	return args.Error(0)
}

func (m *MockTaxonomyRepository) GetTagByIdentifier(ctx context.Context, identifier string) (*models.Tag, error) {
	args := m.Called(ctx, identifier)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Tag), args.Error(1)
}

func (m *MockTaxonomyRepository) GetTags(ctx context.Context) ([]models.Tag, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Tag), args.Error(1)
}

func TestEnsureUncategorized_AlreadyExists(t *testing.T) {
	ctx := context.Background()
	repo := new(MockTaxonomyRepository)
	service := NewTaxonomyService(slog.Default(), repo)

	existing := &models.Category{ID: uuid.New(), Name: "Uncategorized", Slug: models.UncategorizedSlug}
	repo.On("GetCategoryByIdentifier", ctx, models.UncategorizedSlug).Return(existing, nil)

	category, err := service.EnsureUncategorized(ctx)

	require.NoError(t, err)
	assert.Equal(t, existing, category)
	repo.AssertNotCalled(t, "SaveCategory")
}

func TestEnsureUncategorized_CreatesOnFirstUse(t *testing.T) {
	ctx := context.Background()
	repo := new(MockTaxonomyRepository)
	service := NewTaxonomyService(slog.Default(), repo)

	newID := uuid.New()
	repo.On("GetCategoryByIdentifier", ctx, models.UncategorizedSlug).Return(nil, storage.ErrNotFound)
	repo.On("SaveCategory", ctx, mock.MatchedBy(func(c models.Category) bool {
		return c.Slug == models.UncategorizedSlug
	})).Return(newID, nil)

	category, err := service.EnsureUncategorized(ctx)

	require.NoError(t, err)
	assert.Equal(t, newID, category.ID)
	assert.True(t, category.IsProtected())
	repo.AssertExpectations(t)
}

func TestUpdateCategory_ProtectedRenameRejected(t *testing.T) {
	ctx := context.Background()
	repo := new(MockTaxonomyRepository)
	service := NewTaxonomyService(slog.Default(), repo)

	categoryID := uuid.New()
	protected := &models.Category{ID: categoryID, Name: "Uncategorized", Slug: models.UncategorizedSlug}
	repo.On("GetCategoryByIdentifier", ctx, categoryID.String()).Return(protected, nil)

	_, err := service.UpdateCategory(ctx, categoryID, dto.CategoryRequest{Name: "Misc", Slug: "misc"})

	assert.ErrorIs(t, err, storage.ErrProtectedCategory)
	repo.AssertNotCalled(t, "UpdateCategory")
}

func TestUpdateCategory_ProtectedDescriptionAllowed(t *testing.T) {
	ctx := context.Background()
	repo := new(MockTaxonomyRepository)
	service := NewTaxonomyService(slog.Default(), repo)

	categoryID := uuid.New()
	protected := &models.Category{ID: categoryID, Name: "Uncategorized", Slug: models.UncategorizedSlug}
	repo.On("GetCategoryByIdentifier", ctx, categoryID.String()).Return(protected, nil)
	repo.On("UpdateCategory", ctx, mock.MatchedBy(func(c models.Category) bool {
		return c.Slug == models.UncategorizedSlug && c.Description == "fallback bucket"
	})).Return(nil)

	_, err := service.UpdateCategory(ctx, categoryID, dto.CategoryRequest{
		Name:        "Uncategorized",
		Slug:        models.UncategorizedSlug,
		Description: "fallback bucket",
	})

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestDeleteCategory_ProtectedRejected(t *testing.T) {
	ctx := context.Background()
	repo := new(MockTaxonomyRepository)
	service := NewTaxonomyService(slog.Default(), repo)

	categoryID := uuid.New()
	protected := &models.Category{ID: categoryID, Slug: models.UncategorizedSlug}
	repo.On("GetCategoryByIdentifier", ctx, categoryID.String()).Return(protected, nil)

	err := service.DeleteCategory(ctx, categoryID)

	assert.ErrorIs(t, err, storage.ErrProtectedCategory)
	repo.AssertNotCalled(t, "DeleteCategory")
}

func TestDeleteCategory_Regular(t *testing.T) {
	ctx := context.Background()
	repo := new(MockTaxonomyRepository)
	service := NewTaxonomyService(slog.Default(), repo)

	categoryID := uuid.New()
	repo.On("GetCategoryByIdentifier", ctx, categoryID.String()).Return(&models.Category{ID: categoryID, Slug: "news"}, nil)
	repo.On("DeleteCategory", ctx, categoryID).Return(nil)

	require.NoError(t, service.DeleteCategory(ctx, categoryID))
	repo.AssertExpectations(t)
}

func TestCreateTag_AutoSlug(t *testing.T) {
	ctx := context.Background()
	repo := new(MockTaxonomyRepository)
	service := NewTaxonomyService(slog.Default(), repo)

	tagID := uuid.New()
	repo.On("SaveTag", ctx, mock.MatchedBy(func(tag models.Tag) bool {
		return tag.Slug == "machine-learning"
	})).Return(tagID, nil)
	repo.On("GetTagByIdentifier", ctx, tagID.String()).Return(&models.Tag{ID: tagID, Slug: "machine-learning"}, nil)

	tag, err := service.CreateTag(ctx, dto.TagRequest{Name: "Machine Learning"})

	require.NoError(t, err)
	assert.Equal(t, "machine-learning", tag.Slug)
	repo.AssertExpectations(t)
}

func TestEnsureUncategorized_CreateRaceRefetches(t *testing.T) {
	ctx := context.Background()
	repo := new(MockTaxonomyRepository)
	service := NewTaxonomyService(slog.Default(), repo)

	winner := &models.Category{ID: uuid.New(), Name: "Uncategorized", Slug: models.UncategorizedSlug}

	repo.On("GetCategoryByIdentifier", ctx, models.UncategorizedSlug).Return(nil, storage.ErrNotFound).Once()
	repo.On("SaveCategory", ctx, mock.Anything).
		Return(uuid.Nil, fmt.Errorf("repository.taxonomy_repository.SaveCategory: %w", storage.ErrSlugTaken)).Once()
	repo.On("GetCategoryByIdentifier", ctx, models.UncategorizedSlug).Return(winner, nil).Once()

	category, err := service.EnsureUncategorized(ctx)

	require.NoError(t, err)
	assert.Equal(t, winner, category)
	repo.AssertExpectations(t)
}

func TestCreateCategory_DuplicateSlugSurfaced(t *testing.T) {
	ctx := context.Background()
	repo := new(MockTaxonomyRepository)
	service := NewTaxonomyService(slog.Default(), repo)

	repo.On("SaveCategory", ctx, mock.Anything).
		Return(uuid.Nil, fmt.Errorf("repository.taxonomy_repository.SaveCategory: %w", storage.ErrSlugTaken))

	_, err := service.CreateCategory(ctx, dto.CategoryRequest{Name: "News", Slug: "news"})

	assert.ErrorIs(t, err, storage.ErrSlugTaken)
}

func TestUpdateCategory_RenameOntoTakenSlug(t *testing.T) {
	ctx := context.Background()
	repo := new(MockTaxonomyRepository)
	service := NewTaxonomyService(slog.Default(), repo)

	categoryID := uuid.New()
	repo.On("GetCategoryByIdentifier", ctx, categoryID.String()).
		Return(&models.Category{ID: categoryID, Name: "News", Slug: "news"}, nil)
	repo.On("UpdateCategory", ctx, mock.Anything).
		Return(fmt.Errorf("repository.taxonomy_repository.UpdateCategory: %w", storage.ErrSlugTaken))

	_, err := service.UpdateCategory(ctx, categoryID, dto.CategoryRequest{Name: "Insights", Slug: "insights"})

	assert.ErrorIs(t, err, storage.ErrSlugTaken)
}
