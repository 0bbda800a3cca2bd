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

// TaxonomyRepo covers both categories and tags: the two tables share a
// shape and all the access patterns.
type TaxonomyRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewTaxonomyRepository(db *pgxpool.Pool) *TaxonomyRepo {
	return &TaxonomyRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

var taxonomyColumns = []string{"id", "name", "slug", "description", "created_at", "updated_at"}

func (r *TaxonomyRepo) SaveCategory(ctx context.Context, category models.Category) (uuid.UUID, error) {
	const op = "repository.taxonomy_repository.SaveCategory"
	return r.save(ctx, op, "categories", category.Name, category.Slug, category.Description)
}

func (r *TaxonomyRepo) UpdateCategory(ctx context.Context, category models.Category) error {
	const op = "repository.taxonomy_repository.UpdateCategory"
	return r.update(ctx, op, "categories", category.ID, category.Name, category.Slug, category.Description)
}

func (r *TaxonomyRepo) DeleteCategory(ctx context.Context, categoryID uuid.UUID) error {
	const op = "repository.taxonomy_repository.DeleteCategory"
	return r.delete(ctx, op, "categories", categoryID)
}

func (r *TaxonomyRepo) GetCategoryByIdentifier(ctx context.Context, identifier string) (*models.Category, error) {
	const op = "repository.taxonomy_repository.GetCategoryByIdentifier"

	var category models.Category
	if err := r.getByIdentifier(ctx, op, "categories", identifier,
		&category.ID, &category.Name, &category.Slug, &category.Description,
		&category.CreatedAt, &category.UpdatedAt); err != nil {
		return nil, err
	}

	return &category, nil
}

func (r *TaxonomyRepo) GetCategories(ctx context.Context) ([]models.Category, error) {
	const op = "repository.taxonomy_repository.GetCategories"

	rows, err := r.list(ctx, op, "categories")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []models.Category
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.Description, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		categories = append(categories, c)
	}

	return categories, nil
}

func (r *TaxonomyRepo) SaveTag(ctx context.Context, tag models.Tag) (uuid.UUID, error) {
	const op = "repository.taxonomy_repository.SaveTag"
	return r.save(ctx, op, "tags", tag.Name, tag.Slug, tag.Description)
}

func (r *TaxonomyRepo) UpdateTag(ctx context.Context, tag models.Tag) error {
	const op = "repository.taxonomy_repository.UpdateTag"
	return r.update(ctx, op, "tags", tag.ID, tag.Name, tag.Slug, tag.Description)
}

func (r *TaxonomyRepo) DeleteTag(ctx context.Context, tagID uuid.UUID) error {
	const op = "repository.taxonomy_repository.DeleteTag"
	return r.delete(ctx, op, "tags", tagID)
}

func (r *TaxonomyRepo) GetTagByIdentifier(ctx context.Context, identifier string) (*models.Tag, error) {
	const op = "repository.taxonomy_repository.GetTagByIdentifier"

	var tag models.Tag
	if err := r.getByIdentifier(ctx, op, "tags", identifier,
		&tag.ID, &tag.Name, &tag.Slug, &tag.Description,
		&tag.CreatedAt, &tag.UpdatedAt); err != nil {
		return nil, err
	}

	return &tag, nil
}

func (r *TaxonomyRepo) GetTags(ctx context.Context) ([]models.Tag, error) {
	const op = "repository.taxonomy_repository.GetTags"

	rows, err := r.list(ctx, op, "tags")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tags []models.Tag
	for rows.Next() {
		var t models.Tag
		if err := rows.Scan(&t.ID, &t.Name, &t.Slug, &t.Description, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		tags = append(tags, t)
	}

	return tags, nil
}

func (r *TaxonomyRepo) save(ctx context.Context, op, table, name, slug, description string) (uuid.UUID, error) {
	query, args, err := r.sb.Insert(table).
		Columns("name", "slug", "description").
		Values(name, slug, description).
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

func (r *TaxonomyRepo) update(ctx context.Context, op, table string, id uuid.UUID, name, slug, description string) error {
	query, args, err := r.sb.Update(table).
		Set("name", name).
		Set("slug", slug).
		Set("description", description).
		Set("updated_at", time.Now()).
		Where(sq.Eq{"id": id}).
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

func (r *TaxonomyRepo) delete(ctx context.Context, op, table string, id uuid.UUID) error {
	query, args, err := r.sb.Delete(table).
		Where(sq.Eq{"id": id}).
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

func (r *TaxonomyRepo) getByIdentifier(ctx context.Context, op, table, identifier string, dest ...interface{}) error {
	query, args, err := r.sb.Select(taxonomyColumns...).
		From(table).
		Where(identifierPredicate(identifier)).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	err = r.db.QueryRow(ctx, query, args...).Scan(dest...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (r *TaxonomyRepo) list(ctx context.Context, op, table string) (pgx.Rows, error) {
	query, args, err := r.sb.Select(taxonomyColumns...).
		From(table).
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return rows, nil
}
