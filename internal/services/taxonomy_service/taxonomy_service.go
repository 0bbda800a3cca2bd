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

type TaxonomyService struct {
	log  *slog.Logger
	repo repository.TaxonomyRepository
}

func NewTaxonomyService(log *slog.Logger, repo repository.TaxonomyRepository) *TaxonomyService {
	return &TaxonomyService{
		log:  log,
		repo: repo,
	}
}

// EnsureUncategorized returns the protected default category, creating it
// on first use.
func (s *TaxonomyService) EnsureUncategorized(ctx context.Context) (*models.Category, error) {
	const op = "taxonomy_service.EnsureUncategorized"
	log := s.log.With(slog.String("op", op))

	category, err := s.repo.GetCategoryByIdentifier(ctx, models.UncategorizedSlug)
	if err == nil {
		return category, nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("creating default category")

	id, err := s.repo.SaveCategory(ctx, models.Category{
		Name:        "Uncategorized",
		Slug:        models.UncategorizedSlug,
		Description: "Default category for posts without one",
	})
	if err != nil {
		// a concurrent request may have created it first
		if errors.Is(err, storage.ErrSlugTaken) {
			return s.repo.GetCategoryByIdentifier(ctx, models.UncategorizedSlug)
		}
		log.Error("failed to create default category", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &models.Category{
		ID:   id,
		Name: "Uncategorized",
		Slug: models.UncategorizedSlug,
	}, nil
}

func (s *TaxonomyService) CreateCategory(ctx context.Context, req dto.CategoryRequest) (*models.Category, error) {
	const op = "taxonomy_service.CreateCategory"
	log := s.log.With(slog.String("op", op), slog.String("name", req.Name))

	log.Info("creating category")

	category := models.Category{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
	}
	if category.Slug == "" {
		category.Slug = slug.Make(category.Name)
	}

	id, err := s.repo.SaveCategory(ctx, category)
	if err != nil {
		log.Error("failed to create category", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return s.repo.GetCategoryByIdentifier(ctx, id.String())
}

func (s *TaxonomyService) UpdateCategory(ctx context.Context, categoryID uuid.UUID, req dto.CategoryRequest) (*models.Category, error) {
	const op = "taxonomy_service.UpdateCategory"
	log := s.log.With(slog.String("op", op), slog.String("category_id", categoryID.String()))

	existing, err := s.repo.GetCategoryByIdentifier(ctx, categoryID.String())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	newSlug := req.Slug
	if newSlug == "" {
		newSlug = slug.Make(req.Name)
	}

	// the default category keeps its slug, renames would orphan
	// auto-assigned posts
	if existing.IsProtected() && newSlug != models.UncategorizedSlug {
		log.Warn("rejected rename of protected category")
		return nil, fmt.Errorf("%s: %w", op, storage.ErrProtectedCategory)
	}

	existing.Name = req.Name
	existing.Slug = newSlug
	existing.Description = req.Description

	if err := s.repo.UpdateCategory(ctx, *existing); err != nil {
		log.Error("failed to update category", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return s.repo.GetCategoryByIdentifier(ctx, categoryID.String())
}

func (s *TaxonomyService) DeleteCategory(ctx context.Context, categoryID uuid.UUID) error {
	const op = "taxonomy_service.DeleteCategory"
	log := s.log.With(slog.String("op", op), slog.String("category_id", categoryID.String()))

	existing, err := s.repo.GetCategoryByIdentifier(ctx, categoryID.String())
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if existing.IsProtected() {
		log.Warn("rejected delete of protected category")
		return fmt.Errorf("%s: %w", op, storage.ErrProtectedCategory)
	}

	if err := s.repo.DeleteCategory(ctx, categoryID); err != nil {
		log.Error("failed to delete category", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	log.Info("category deleted")
	return nil
}

func (s *TaxonomyService) GetCategory(ctx context.Context, identifier string) (*models.Category, error) {
	const op = "taxonomy_service.GetCategory"

	category, err := s.repo.GetCategoryByIdentifier(ctx, identifier)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return category, nil
}

func (s *TaxonomyService) ListCategories(ctx context.Context) ([]models.Category, error) {
	const op = "taxonomy_service.ListCategories"

	categories, err := s.repo.GetCategories(ctx)
	if err != nil {
		s.log.Error("failed to list categories", slog.String("op", op), sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return categories, nil
}

func (s *TaxonomyService) CreateTag(ctx context.Context, req dto.TagRequest) (*models.Tag, error) {
	const op = "taxonomy_service.CreateTag"
	log := s.log.With(slog.String("op", op), slog.String("name", req.Name))

	log.Info("creating tag")

	tag := models.Tag{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
	}
	if tag.Slug == "" {
		tag.Slug = slug.Make(tag.Name)
	}

	id, err := s.repo.SaveTag(ctx, tag)
	if err != nil {
		log.Error("failed to create tag", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return s.repo.GetTagByIdentifier(ctx, id.String())
}

func (s *TaxonomyService) UpdateTag(ctx context.Context, tagID uuid.UUID, req dto.TagRequest) (*models.Tag, error) {
	const op = "taxonomy_service.UpdateTag"
	log := s.log.With(slog.String("op", op), slog.String("tag_id", tagID.String()))

	existing, err := s.repo.GetTagByIdentifier(ctx, tagID.String())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	existing.Name = req.Name
	existing.Slug = req.Slug
	if existing.Slug == "" {
		existing.Slug = slug.Make(req.Name)
	}
	existing.Description = req.Description

	if err := s.repo.UpdateTag(ctx, *existing); err != nil {
		log.Error("failed to update tag", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return s.repo.GetTagByIdentifier(ctx, tagID.String())
}

func (s *TaxonomyService) DeleteTag(ctx context.Context, tagID uuid.UUID) error {
	const op = "taxonomy_service.DeleteTag"

	if err := s.repo.DeleteTag(ctx, tagID); err != nil {
		s.log.Error("failed to delete tag", slog.String("op", op), sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *TaxonomyService) GetTag(ctx context.Context, identifier string) (*models.Tag, error) {
	const op = "taxonomy_service.GetTag"

	tag, err := s.repo.GetTagByIdentifier(ctx, identifier)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return tag, nil
}

func (s *TaxonomyService) ListTags(ctx context.Context) ([]models.Tag, error) {
	const op = "taxonomy_service.ListTags"

	tags, err := s.repo.GetTags(ctx)
	if err != nil {
		s.log.Error("failed to list tags", slog.String("op", op), sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return tags, nil
}
