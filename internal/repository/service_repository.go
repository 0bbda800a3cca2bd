package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"digibayt/internal/domain/models"
	"digibayt/internal/storage"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

type ServiceCatalogRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewServiceCatalogRepository(db *pgxpool.Pool) *ServiceCatalogRepo {
	return &ServiceCatalogRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

var serviceCategoryColumns = []string{
	"id", "name", "slug", "description", "is_active", "sort_order",
	"created_at", "updated_at",
}

func (r *ServiceCatalogRepo) SaveServiceCategory(ctx context.Context, sc models.ServiceCategory) (uuid.UUID, error) {
	const op = "repository.service_repository.SaveServiceCategory"

	query, args, err := r.sb.Insert("service_categories").
		Columns("name", "slug", "description", "is_active", "sort_order").
		Values(sc.Name, sc.Slug, sc.Description, sc.IsActive, sc.Order).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	var id uuid.UUID
	err = r.db.QueryRow(ctx, query, args...).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

func (r *ServiceCatalogRepo) UpdateServiceCategory(ctx context.Context, sc models.ServiceCategory) error {
	const op = "repository.service_repository.UpdateServiceCategory"

	query, args, err := r.sb.Update("service_categories").
		Set("name", sc.Name).
		Set("slug", sc.Slug).
		Set("description", sc.Description).
		Set("is_active", sc.IsActive).
		Set("sort_order", sc.Order).
		Set("updated_at", time.Now()).
		Where(sq.Eq{"id": sc.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	result, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

func (r *ServiceCatalogRepo) DeleteServiceCategory(ctx context.Context, scID uuid.UUID) error {
	const op = "repository.service_repository.DeleteServiceCategory"

	query, args, err := r.sb.Delete("service_categories").
		Where(sq.Eq{"id": scID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	result, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

func (r *ServiceCatalogRepo) GetServiceCategoryByIdentifier(ctx context.Context, identifier string) (*models.ServiceCategory, error) {
	const op = "repository.service_repository.GetServiceCategoryByIdentifier"

	query, args, err := r.sb.Select(serviceCategoryColumns...).
		From("service_categories").
		Where(identifierPredicate(identifier)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	sc, err := r.scanServiceCategory(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return sc, nil
}

func (r *ServiceCatalogRepo) GetServiceCategories(ctx context.Context, activeOnly bool) ([]models.ServiceCategory, error) {
	const op = "repository.service_repository.GetServiceCategories"

	queryBuilder := r.sb.Select(serviceCategoryColumns...).
		From("service_categories").
		OrderBy("sort_order ASC", "name ASC")

	if activeOnly {
		queryBuilder = queryBuilder.Where(sq.Eq{"is_active": true})
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var categories []models.ServiceCategory
	for rows.Next() {
		sc, err := r.scanServiceCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		categories = append(categories, *sc)
	}

	return categories, nil
}

func (r *ServiceCatalogRepo) SlugExists(ctx context.Context, slug string, excludeID uuid.UUID) (bool, error) {
	const op = "repository.service_repository.SlugExists"

	return slugExists(ctx, r.db, r.sb, "service_categories", op, slug, excludeID)
}

func (r *ServiceCatalogRepo) scanServiceCategory(row pgx.Row) (*models.ServiceCategory, error) {
	var sc models.ServiceCategory

	err := row.Scan(
		&sc.ID,
		&sc.Name,
		&sc.Slug,
		&sc.Description,
		&sc.IsActive,
		&sc.Order,
		&sc.CreatedAt,
		&sc.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &sc, nil
}
