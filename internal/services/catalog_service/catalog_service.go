package services

import (
	"context"
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

// CatalogService manages the service categories shown on the agency's
// services pages.
type CatalogService struct {
	log  *slog.Logger
	repo repository.ServiceCatalogRepository
}

func NewCatalogService(log *slog.Logger, repo repository.ServiceCatalogRepository) *CatalogService {
	return &CatalogService{
		log:  log,
		repo: repo,
	}
}

func (s *CatalogService) CreateServiceCategory(ctx context.Context, req dto.ServiceCategoryRequest) (*models.ServiceCategory, error) {
	const op = "catalog_service.CreateServiceCategory"
	log := s.log.With(slog.String("op", op), slog.String("name", req.Name))

	log.Info("creating service category")

	sc := models.ServiceCategory{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		IsActive:    true,
		Order:       req.Order,
	}
	if req.IsActive != nil {
		sc.IsActive = *req.IsActive
	}
	if sc.Slug == "" {
		sc.Slug = slug.Make(sc.Name)
	}

	taken, err := s.repo.SlugExists(ctx, sc.Slug, uuid.Nil)
	if err != nil {
		log.Error("failed to check slug", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if taken {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrSlugTaken)
	}

	id, err := s.repo.SaveServiceCategory(ctx, sc)
	if err != nil {
		log.Error("failed to create service category", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("service category created", slog.String("category_id", id.String()))
	return s.repo.GetServiceCategoryByIdentifier(ctx, id.String())
}

func (s *CatalogService) UpdateServiceCategory(ctx context.Context, scID uuid.UUID, req dto.ServiceCategoryRequest) (*models.ServiceCategory, error) {
	const op = "catalog_service.UpdateServiceCategory"
	log := s.log.With(slog.String("op", op), slog.String("category_id", scID.String()))

	existing, err := s.repo.GetServiceCategoryByIdentifier(ctx, scID.String())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	newSlug := req.Slug
	if newSlug == "" {
		newSlug = slug.Make(req.Name)
	}
	if newSlug != existing.Slug {
		taken, err := s.repo.SlugExists(ctx, newSlug, scID)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if taken {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrSlugTaken)
		}
	}

	existing.Name = req.Name
	existing.Slug = newSlug
	existing.Description = req.Description
	existing.Order = req.Order
	if req.IsActive != nil {
		existing.IsActive = *req.IsActive
	}

	if err := s.repo.UpdateServiceCategory(ctx, *existing); err != nil {
		log.Error("failed to update service category", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return s.repo.GetServiceCategoryByIdentifier(ctx, scID.String())
}

func (s *CatalogService) DeleteServiceCategory(ctx context.Context, scID uuid.UUID) error {
	const op = "catalog_service.DeleteServiceCategory"

	if err := s.repo.DeleteServiceCategory(ctx, scID); err != nil {
		s.log.Error("failed to delete service category", slog.String("op", op), sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *CatalogService) GetServiceCategory(ctx context.Context, identifier string) (*models.ServiceCategory, error) {
	const op = "catalog_service.GetServiceCategory"

	sc, err := s.repo.GetServiceCategoryByIdentifier(ctx, identifier)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return sc, nil
}

// ListServiceCategories returns active categories for public pages;
// admins see inactive ones as well.
func (s *CatalogService) ListServiceCategories(ctx context.Context, includeInactive bool) ([]models.ServiceCategory, error) {
	const op = "catalog_service.ListServiceCategories"

	categories, err := s.repo.GetServiceCategories(ctx, !includeInactive)
	if err != nil {
		s.log.Error("failed to list service categories", slog.String("op", op), sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return categories, nil
}
