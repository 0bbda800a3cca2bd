package services

import (
	"context"
	"log/slog"
	"testing"

	"digibayt/internal/domain/models"
	"digibayt/internal/repository"
	"digibayt/internal/storage"
	"digibayt/internal/transport/http/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockPortfolioRepository struct {
	mock.Mock
}

func (m *MockPortfolioRepository) SaveItem(ctx context.Context, item models.PortfolioItem) (uuid.UUID, error) {
	args := m.Called(ctx, item)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockPortfolioRepository) UpdateItemFields(ctx context.Context, itemID uuid.UUID, updates map[string]interface{}) error {
	args := m.Called(ctx, itemID, updates)
	return args.Error(0)
}

func (m *MockPortfolioRepository) DeleteItem(ctx context.Context, itemID uuid.UUID) error {
	args := m.Called(ctx, itemID)
	return args.Error(0)
}

func (m *MockPortfolioRepository) GetItemByIdentifier(ctx context.Context, identifier string) (*models.PortfolioItem, error) {
	args := m.Called(ctx, identifier)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PortfolioItem), args.Error(1)
}

func (m *MockPortfolioRepository) GetItems(ctx context.Context, filter repository.PortfolioFilter) ([]models.PortfolioItem, int, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]models.PortfolioItem), args.Int(1), args.Error(2)
}

func (m *MockPortfolioRepository) GetRelatedItems(ctx context.Context, item *models.PortfolioItem, limit int) ([]models.PortfolioItem, error) {
	args := m.Called(ctx, item, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.PortfolioItem), args.Error(1)
}

func (m *MockPortfolioRepository) SlugExists(ctx context.Context, slug string, excludeID uuid.UUID) (bool, error) {
	args := m.Called(ctx, slug, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockPortfolioRepository) SaveCategory(ctx context.Context, category models.PortfolioCategory) (uuid.UUID, error) {
	args := m.Called(ctx, category)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockPortfolioRepository) UpdateCategory(ctx context.Context, category models.PortfolioCategory) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockPortfolioRepository) DeleteCategory(ctx context.Context, categoryID uuid.UUID) error {
	args := m.Called(ctx, categoryID)
	return args.Error(0)
}

func (m *MockPortfolioRepository) GetCategories(ctx context.Context) ([]models.PortfolioCategory, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.PortfolioCategory), args.Error(1)
}

func newTestService() (*PortfolioService, *MockPortfolioRepository) {
	repo := new(MockPortfolioRepository)
	return NewPortfolioService(slog.Default(), repo), repo
}

func TestCreateItem_AutoSlugAndDraftDefault(t *testing.T) {
	ctx := context.Background()
	service, repo := newTestService()

	itemID := uuid.New()
	repo.On("SlugExists", ctx, "crm-dashboard-redesign", uuid.Nil).Return(false, nil)
	repo.On("SaveItem", ctx, mock.MatchedBy(func(item models.PortfolioItem) bool {
		return item.Slug == "crm-dashboard-redesign" && item.Status == models.StatusDraft
	})).Return(itemID, nil)
	repo.On("GetItemByIdentifier", ctx, itemID.String()).Return(&models.PortfolioItem{
		ID:     itemID,
		Title:  "CRM Dashboard Redesign",
		Slug:   "crm-dashboard-redesign",
		Status: models.StatusDraft,
	}, nil)

	item, err := service.CreateItem(ctx, dto.CreatePortfolioItemRequest{
		Title:       "CRM Dashboard Redesign",
		Description: "Full redesign of the client dashboard.",
		Category:    "web",
	})

	require.NoError(t, err)
	assert.Equal(t, "crm-dashboard-redesign", item.Slug)
	repo.AssertExpectations(t)
}

func TestCreateItem_SlugTaken(t *testing.T) {
	ctx := context.Background()
	service, repo := newTestService()

	repo.On("SlugExists", ctx, "crm-dashboard-redesign", uuid.Nil).Return(true, nil)

	_, err := service.CreateItem(ctx, dto.CreatePortfolioItemRequest{
		Title:       "CRM Dashboard Redesign",
		Description: "Full redesign of the client dashboard.",
		Category:    "web",
	})

	assert.ErrorIs(t, err, storage.ErrSlugTaken)
	repo.AssertNotCalled(t, "SaveItem")
}

func TestUpdateItem_RenameOntoTakenSlug(t *testing.T) {
	ctx := context.Background()
	service, repo := newTestService()

	itemID := uuid.New()
	newSlug := "fintech-mobile-app"
	repo.On("GetItemByIdentifier", ctx, itemID.String()).Return(&models.PortfolioItem{
		ID:   itemID,
		Slug: "crm-dashboard-redesign",
	}, nil)
	repo.On("SlugExists", ctx, newSlug, itemID).Return(true, nil)

	_, err := service.UpdateItem(ctx, itemID, dto.UpdatePortfolioItemRequest{Slug: &newSlug})

	assert.ErrorIs(t, err, storage.ErrSlugTaken)
	repo.AssertNotCalled(t, "UpdateItemFields")
}

func TestGetItem_DraftHiddenFromPublic(t *testing.T) {
	ctx := context.Background()
	service, repo := newTestService()

	repo.On("GetItemByIdentifier", ctx, "crm-dashboard-redesign").Return(&models.PortfolioItem{
		ID:     uuid.New(),
		Slug:   "crm-dashboard-redesign",
		Status: models.StatusDraft,
	}, nil)

	_, err := service.GetItem(ctx, "crm-dashboard-redesign", false)

	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestGetItem_AdminSeesDraftWithRelated(t *testing.T) {
	ctx := context.Background()
	service, repo := newTestService()

	draft := &models.PortfolioItem{
		ID:       uuid.New(),
		Title:    "CRM Dashboard Redesign",
		Slug:     "crm-dashboard-redesign",
		Category: "web",
		Status:   models.StatusDraft,
	}
	repo.On("GetItemByIdentifier", ctx, "crm-dashboard-redesign").Return(draft, nil)
	repo.On("GetRelatedItems", ctx, draft, 3).Return([]models.PortfolioItem{
		{ID: uuid.New(), Slug: "fintech-mobile-app", Status: models.StatusPublished},
	}, nil)

	item, err := service.GetItem(ctx, "crm-dashboard-redesign", true)

	require.NoError(t, err)
	assert.Equal(t, "crm-dashboard-redesign", item.Slug)
	assert.Len(t, item.Related, 1)
}

func TestListItems_PublicForcesPublished(t *testing.T) {
	ctx := context.Background()
	service, repo := newTestService()

	repo.On("GetItems", ctx, mock.MatchedBy(func(filter repository.PortfolioFilter) bool {
		return filter.Status == models.StatusPublished
	})).Return([]models.PortfolioItem{}, 0, nil)

	_, err := service.ListItems(ctx, dto.ListPortfolioQuery{Status: "all", IncludeDrafts: true}, false)

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestListItems_AdminIncludeDraftsUnrestricted(t *testing.T) {
	ctx := context.Background()
	service, repo := newTestService()

	repo.On("GetItems", ctx, mock.MatchedBy(func(filter repository.PortfolioFilter) bool {
		return filter.Status == ""
	})).Return([]models.PortfolioItem{
		{ID: uuid.New(), Slug: "draft-item", Status: models.StatusDraft},
	}, 1, nil)

	list, err := service.ListItems(ctx, dto.ListPortfolioQuery{Status: "all", IncludeDrafts: true}, true)

	require.NoError(t, err)
	assert.Equal(t, 1, list.TotalCount)
	assert.Len(t, list.Items, 1)
}

func TestListItems_FeaturedFilterPassedThrough(t *testing.T) {
	ctx := context.Background()
	service, repo := newTestService()

	featured := true
	repo.On("GetItems", ctx, mock.MatchedBy(func(filter repository.PortfolioFilter) bool {
		return filter.Featured != nil && *filter.Featured
	})).Return([]models.PortfolioItem{}, 0, nil)

	_, err := service.ListItems(ctx, dto.ListPortfolioQuery{Featured: &featured}, false)

	require.NoError(t, err)
	repo.AssertExpectations(t)
}
