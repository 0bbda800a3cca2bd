package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"digibayt/internal/domain/models"
	"digibayt/internal/lib/logger/sl"
	"digibayt/internal/lib/slug"
	"digibayt/internal/repository"
	"digibayt/internal/storage"
	"digibayt/internal/transport/http/dto"

	"github.com/google/uuid"
)

const relatedItemsLimit = 3

type PortfolioService struct {
	log  *slog.Logger
	repo repository.PortfolioRepository
}

func NewPortfolioService(log *slog.Logger, repo repository.PortfolioRepository) *PortfolioService {
	return &PortfolioService{
		log:  log,
		repo: repo,
	}
}

func (s *PortfolioService) CreateItem(ctx context.Context, req dto.CreatePortfolioItemRequest) (*dto.PortfolioItemResponse, error) {
	const op = "portfolio_service.CreateItem"
	log := s.log.With(slog.String("op", op), slog.String("title", req.Title))

	log.Info("creating portfolio item")

	item := models.PortfolioItem{
		Title:            req.Title,
		Slug:             req.Slug,
		ShortDescription: req.ShortDescription,
		Description:      req.Description,
		Category:         req.Category,
		Tags:             req.Tags,
		Gallery:          req.Gallery,
		Client:           req.Client,
		CompletionDate:   req.CompletionDate,
		Technologies:     req.Technologies,
		Challenge:        req.Challenge,
		Solution:         req.Solution,
		Results:          req.Results,
		Testimonial:      req.Testimonial,
		Featured:         req.Featured,
		Order:            req.Order,
		Status:           models.PostStatus(req.Status),
	}

	if item.Slug == "" {
		item.Slug = slug.Make(item.Title)
	}
	if item.Status == "" {
		item.Status = models.StatusDraft
	}

	taken, err := s.repo.SlugExists(ctx, item.Slug, uuid.Nil)
	if err != nil {
		log.Error("failed to check slug", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if taken {
		log.Warn("slug conflict", slog.String("slug", item.Slug))
		return nil, fmt.Errorf("%s: %w", op, storage.ErrSlugTaken)
	}

	id, err := s.repo.SaveItem(ctx, item)
	if err != nil {
		log.Error("failed to create portfolio item", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("portfolio item created successfully", slog.String("item_id", id.String()))
	return s.toItemResponse(ctx, id.String())
}

func (s *PortfolioService) UpdateItem(ctx context.Context, itemID uuid.UUID, req dto.UpdatePortfolioItemRequest) (*dto.PortfolioItemResponse, error) {
	const op = "portfolio_service.UpdateItem"
	log := s.log.With(slog.String("op", op), slog.String("item_id", itemID.String()))

	log.Info("updating portfolio item")

	existing, err := s.repo.GetItemByIdentifier(ctx, itemID.String())
	if err != nil {
		log.Error("failed to get portfolio item", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	updates := make(map[string]interface{})

	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Slug != nil && *req.Slug != existing.Slug {
		newSlug := *req.Slug
		if newSlug == "" {
			title := existing.Title
			if req.Title != nil {
				title = *req.Title
			}
			newSlug = slug.Make(title)
		}

		taken, err := s.repo.SlugExists(ctx, newSlug, itemID)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if taken {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrSlugTaken)
		}

		updates["slug"] = newSlug
	}
	if req.ShortDescription != nil {
		updates["short_description"] = *req.ShortDescription
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.Tags != nil {
		updates["tags"] = req.Tags
	}
	if req.Gallery != nil {
		updates["gallery"] = req.Gallery
	}
	if req.Client != nil {
		updates["client"] = *req.Client
	}
	if req.CompletionDate != nil {
		updates["completion_date"] = req.CompletionDate
	}
	if req.Technologies != nil {
		updates["technologies"] = req.Technologies
	}
	if req.Challenge != nil {
		updates["challenge"] = *req.Challenge
	}
	if req.Solution != nil {
		updates["solution"] = *req.Solution
	}
	if req.Results != nil {
		updates["results"] = *req.Results
	}
	if req.Testimonial != nil {
		updates["testimonial"] = req.Testimonial
	}
	if req.Featured != nil {
		updates["featured"] = *req.Featured
	}
	if req.Order != nil {
		updates["sort_order"] = *req.Order
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}

	if len(updates) == 0 {
		return s.toItemResponse(ctx, itemID.String())
	}

	if err := s.repo.UpdateItemFields(ctx, itemID, updates); err != nil {
		log.Error("failed to update portfolio item", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("portfolio item updated successfully")
	return s.toItemResponse(ctx, itemID.String())
}

// GetItem resolves an item by slug or id. Drafts are only returned when
// the caller is an authenticated admin session.
func (s *PortfolioService) GetItem(ctx context.Context, identifier string, includeDrafts bool) (*dto.PortfolioItemResponse, error) {
	const op = "portfolio_service.GetItem"
	log := s.log.With(slog.String("op", op), slog.String("identifier", identifier))

	item, err := s.repo.GetItemByIdentifier(ctx, identifier)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			log.Error("failed to get portfolio item", sl.Err(err))
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if !includeDrafts && item.Status != models.StatusPublished {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	resp := mapToItemResponse(item)

	related, err := s.repo.GetRelatedItems(ctx, item, relatedItemsLimit)
	if err != nil {
		log.Warn("failed to get related items", sl.Err(err))
	} else {
		for i := range related {
			resp.Related = append(resp.Related, *mapToItemResponse(&related[i]))
		}
	}

	return resp, nil
}

func (s *PortfolioService) ListItems(ctx context.Context, query dto.ListPortfolioQuery, includeDrafts bool) (*dto.PortfolioListResponse, error) {
	const op = "portfolio_service.ListItems"
	log := s.log.With(slog.String("op", op))

	log.Info("listing portfolio items")

	filter := repository.PortfolioFilter{
		Category: query.Category,
		Tag:      query.Tag,
		Featured: query.Featured,
		Page:     query.Page,
		PerPage:  query.PerPage,
	}

	if includeDrafts && query.IncludeDrafts {
		if query.Status != "" && query.Status != "all" {
			filter.Status = models.PostStatus(query.Status)
		}
	} else {
		filter.Status = models.StatusPublished
	}

	items, total, err := s.repo.GetItems(ctx, filter)
	if err != nil {
		log.Error("failed to list portfolio items", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	perPage := filter.PerPage
	if perPage < 1 || perPage > 100 {
		perPage = 10
	}

	response := &dto.PortfolioListResponse{
		Items:      make([]dto.PortfolioItemResponse, 0, len(items)),
		TotalCount: total,
		Page:       page,
		PerPage:    perPage,
	}

	for i := range items {
		response.Items = append(response.Items, *mapToItemResponse(&items[i]))
	}

	log.Info("portfolio items listed successfully", slog.Int("count", len(items)))
	return response, nil
}

func (s *PortfolioService) DeleteItem(ctx context.Context, itemID uuid.UUID) error {
	const op = "portfolio_service.DeleteItem"
	log := s.log.With(slog.String("op", op), slog.String("item_id", itemID.String()))

	if err := s.repo.DeleteItem(ctx, itemID); err != nil {
		log.Error("failed to delete portfolio item", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	log.Info("portfolio item deleted")
	return nil
}

func (s *PortfolioService) CreateCategory(ctx context.Context, req dto.PortfolioCategoryRequest) (*models.PortfolioCategory, error) {
	const op = "portfolio_service.CreateCategory"
	log := s.log.With(slog.String("op", op), slog.String("name", req.Name))

	log.Info("creating portfolio category")

	category := models.PortfolioCategory{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
	}
	if category.Slug == "" {
		category.Slug = slug.Make(category.Name)
	}

	id, err := s.repo.SaveCategory(ctx, category)
	if err != nil {
		log.Error("failed to create portfolio category", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	category.ID = id
	return &category, nil
}

func (s *PortfolioService) UpdateCategory(ctx context.Context, categoryID uuid.UUID, req dto.PortfolioCategoryRequest) (*models.PortfolioCategory, error) {
	const op = "portfolio_service.UpdateCategory"
	log := s.log.With(slog.String("op", op), slog.String("category_id", categoryID.String()))

	category := models.PortfolioCategory{
		ID:          categoryID,
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
	}
	if category.Slug == "" {
		category.Slug = slug.Make(category.Name)
	}

	if err := s.repo.UpdateCategory(ctx, category); err != nil {
		log.Error("failed to update portfolio category", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &category, nil
}

func (s *PortfolioService) DeleteCategory(ctx context.Context, categoryID uuid.UUID) error {
	const op = "portfolio_service.DeleteCategory"

	if err := s.repo.DeleteCategory(ctx, categoryID); err != nil {
		s.log.Error("failed to delete portfolio category", slog.String("op", op), sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *PortfolioService) ListCategories(ctx context.Context) ([]models.PortfolioCategory, error) {
	const op = "portfolio_service.ListCategories"

	categories, err := s.repo.GetCategories(ctx)
	if err != nil {
		s.log.Error("failed to list portfolio categories", slog.String("op", op), sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return categories, nil
}

func (s *PortfolioService) toItemResponse(ctx context.Context, identifier string) (*dto.PortfolioItemResponse, error) {
	item, err := s.repo.GetItemByIdentifier(ctx, identifier)
	if err != nil {
		return nil, err
	}

	return mapToItemResponse(item), nil
}

func mapToItemResponse(item *models.PortfolioItem) *dto.PortfolioItemResponse {
	return &dto.PortfolioItemResponse{
		ID:               item.ID,
		Title:            item.Title,
		Slug:             item.Slug,
		ShortDescription: item.ShortDescription,
		Description:      item.Description,
		Category:         item.Category,
		Tags:             item.Tags,
		Gallery:          item.Gallery,
		Client:           item.Client,
		CompletionDate:   item.CompletionDate,
		Technologies:     item.Technologies,
		Challenge:        item.Challenge,
		Solution:         item.Solution,
		Results:          item.Results,
		Testimonial:      item.Testimonial,
		Featured:         item.Featured,
		Order:            item.Order,
		Status:           item.Status,
		CreatedAt:        item.CreatedAt,
		UpdatedAt:        item.UpdatedAt,
	}
}
