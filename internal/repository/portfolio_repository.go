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
	"github.com/lib/pq"
)

type PortfolioRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewPortfolioRepository(db *pgxpool.Pool) *PortfolioRepo {
	return &PortfolioRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

var portfolioColumns = []string{
	"id", "title", "slug", "short_description", "description", "category",
	"tags", "gallery", "client", "completion_date", "technologies",
	"challenge", "solution", "results", "testimonial", "featured",
	"sort_order", "status", "created_at", "updated_at",
}

func (r *PortfolioRepo) SaveItem(ctx context.Context, item models.PortfolioItem) (uuid.UUID, error) {
	const op = "repository.portfolio_repository.SaveItem"

	query, args, err := r.sb.Insert("portfolio_items").
		Columns(
			"title",
			"slug",
			"short_description",
			"description",
			"category",
			"tags",
			"gallery",
			"client",
			"completion_date",
			"technologies",
			"challenge",
			"solution",
			"results",
			"testimonial",
			"featured",
			"sort_order",
			"status",
		).
		Values(
			item.Title,
			item.Slug,
			item.ShortDescription,
			item.Description,
			item.Category,
			pq.Array(item.Tags),
			pq.Array(item.Gallery),
			item.Client,
			item.CompletionDate,
			pq.Array(item.Technologies),
			item.Challenge,
			item.Solution,
			item.Results,
			item.Testimonial,
			item.Featured,
			item.Order,
			item.Status,
		).
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

func (r *PortfolioRepo) UpdateItemFields(ctx context.Context, itemID uuid.UUID, updates map[string]interface{}) error {
	const op = "repository.portfolio_repository.UpdateItemFields"

	allowedFields := map[string]bool{
		"title":             true,
		"slug":              true,
		"short_description": true,
		"description":       true,
		"category":          true,
		"tags":              true,
		"gallery":           true,
		"client":            true,
		"completion_date":   true,
		"technologies":      true,
		"challenge":         true,
		"solution":          true,
		"results":           true,
		"testimonial":       true,
		"featured":          true,
		"sort_order":        true,
		"status":            true,
	}

	if len(updates) == 0 {
		return fmt.Errorf("%s: no fields to update", op)
	}

	updateBuilder := r.sb.Update("portfolio_items").
		Set("updated_at", time.Now())

	for field, value := range updates {
		if !allowedFields[field] {
			return fmt.Errorf("%s: field '%s' is not allowed for update", op, field)
		}

		// text[] columns need the driver wrapper
		if ss, ok := value.([]string); ok {
			value = pq.Array(ss)
		}

		updateBuilder = updateBuilder.Set(field, value)
	}

	updateBuilder = updateBuilder.Where(sq.Eq{"id": itemID})

	query, args, err := updateBuilder.ToSql()
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

func (r *PortfolioRepo) DeleteItem(ctx context.Context, itemID uuid.UUID) error {
	const op = "repository.portfolio_repository.DeleteItem"

	query, args, err := r.sb.Delete("portfolio_items").
		Where(sq.Eq{"id": itemID}).
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

func (r *PortfolioRepo) GetItemByIdentifier(ctx context.Context, identifier string) (*models.PortfolioItem, error) {
	const op = "repository.portfolio_repository.GetItemByIdentifier"

	query, args, err := r.sb.Select(portfolioColumns...).
		From("portfolio_items").
		Where(identifierPredicate(identifier)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	item, err := r.scanItem(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return item, nil
}

func (r *PortfolioRepo) GetItems(ctx context.Context, filter PortfolioFilter) ([]models.PortfolioItem, int, error) {
	const op = "repository.portfolio_repository.GetItems"

	page := filter.Page
	perPage := filter.PerPage
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 10
	}

	pred := sq.And{}
	if filter.Status != "" {
		pred = append(pred, sq.Eq{"status": filter.Status})
	}
	if filter.Category != "" {
		pred = append(pred, sq.Eq{"category": filter.Category})
	}
	if filter.Tag != "" {
		pred = append(pred, sq.Expr("? = ANY(tags)", filter.Tag))
	}
	if filter.Featured != nil {
		pred = append(pred, sq.Eq{"featured": *filter.Featured})
	}

	totalCount, err := r.getTotalCount(ctx, pred)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	query, args, err := r.sb.Select(portfolioColumns...).
		From("portfolio_items").
		Where(pred).
		OrderBy("sort_order ASC", "created_at DESC").
		Limit(uint64(perPage)).
		Offset(uint64((page - 1) * perPage)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var items []models.PortfolioItem
	for rows.Next() {
		item, err := r.scanItem(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("%s: %w", op, err)
		}
		items = append(items, *item)
	}

	return items, totalCount, nil
}

// GetRelatedItems returns published items in the same category or sharing a
// tag, honoring the display sort key.
func (r *PortfolioRepo) GetRelatedItems(ctx context.Context, item *models.PortfolioItem, limit int) ([]models.PortfolioItem, error) {
	const op = "repository.portfolio_repository.GetRelatedItems"

	if limit < 1 {
		limit = 3
	}

	query, args, err := r.sb.Select(portfolioColumns...).
		From("portfolio_items").
		Where(sq.NotEq{"id": item.ID}).
		Where(sq.Eq{"status": models.StatusPublished}).
		Where(sq.Or{
			sq.Eq{"category": item.Category},
			sq.Expr("tags && ?", pq.Array(item.Tags)),
		}).
		OrderBy("sort_order ASC", "created_at DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var items []models.PortfolioItem
	for rows.Next() {
		related, err := r.scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		items = append(items, *related)
	}

	return items, nil
}

func (r *PortfolioRepo) SlugExists(ctx context.Context, slug string, excludeID uuid.UUID) (bool, error) {
	const op = "repository.portfolio_repository.SlugExists"

	return slugExists(ctx, r.db, r.sb, "portfolio_items", op, slug, excludeID)
}

// Portfolio categories persist through the same repository pattern as every
// sibling entity; the original's separate mapper for them was an accident,
// not a boundary.

func (r *PortfolioRepo) SaveCategory(ctx context.Context, category models.PortfolioCategory) (uuid.UUID, error) {
	const op = "repository.portfolio_repository.SaveCategory"

	query, args, err := r.sb.Insert("portfolio_categories").
		Columns("name", "slug", "description").
		Values(category.Name, category.Slug, category.Description).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	var id uuid.UUID
	err = r.db.QueryRow(ctx, query, args...).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return uuid.Nil, fmt.Errorf("%s: %w", op, storage.ErrSlugTaken)
		}
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

func (r *PortfolioRepo) UpdateCategory(ctx context.Context, category models.PortfolioCategory) error {
	const op = "repository.portfolio_repository.UpdateCategory"

	query, args, err := r.sb.Update("portfolio_categories").
		Set("name", category.Name).
		Set("slug", category.Slug).
		Set("description", category.Description).
		Set("updated_at", time.Now()).
		Where(sq.Eq{"id": category.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	result, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%s: %w", op, storage.ErrSlugTaken)
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

func (r *PortfolioRepo) DeleteCategory(ctx context.Context, categoryID uuid.UUID) error {
	const op = "repository.portfolio_repository.DeleteCategory"

	query, args, err := r.sb.Delete("portfolio_categories").
		Where(sq.Eq{"id": categoryID}).
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

func (r *PortfolioRepo) GetCategories(ctx context.Context) ([]models.PortfolioCategory, error) {
	const op = "repository.portfolio_repository.GetCategories"

	query, args, err := r.sb.Select("id", "name", "slug", "description", "created_at", "updated_at").
		From("portfolio_categories").
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var categories []models.PortfolioCategory
	for rows.Next() {
		var c models.PortfolioCategory
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.Description, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		categories = append(categories, c)
	}

	return categories, nil
}

func (r *PortfolioRepo) getTotalCount(ctx context.Context, pred sq.And) (int, error) {
	query, args, err := r.sb.Select("COUNT(*)").
		From("portfolio_items").
		Where(pred).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("error build query: %w", err)
	}

	var count int
	if err := r.db.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("error execute query: %w", err)
	}

	return count, nil
}

func (r *PortfolioRepo) scanItem(row pgx.Row) (*models.PortfolioItem, error) {
	var item models.PortfolioItem

	err := row.Scan(
		&item.ID,
		&item.Title,
		&item.Slug,
		&item.ShortDescription,
		&item.Description,
		&item.Category,
		pq.Array(&item.Tags),
		pq.Array(&item.Gallery),
		&item.Client,
		&item.CompletionDate,
		pq.Array(&item.Technologies),
		&item.Challenge,
		&item.Solution,
		&item.Results,
		&item.Testimonial,
		&item.Featured,
		&item.Order,
		&item.Status,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &item, nil
}
