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

type BlogRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewBlogRepository(db *pgxpool.Pool) *BlogRepo {
	return &BlogRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

var blogColumns = []string{
	"id", "title", "slug", "excerpt", "content", "featured_image",
	"author_id", "categories", "tags", "status", "published_at",
	"read_time", "seo", "created_at", "updated_at",
}

func (b *BlogRepo) SavePost(ctx context.Context, post models.BlogPost) (uuid.UUID, error) {
	const op = "repository.blog_repository.SavePost"

	query, args, err := b.sb.Insert("blog_posts").
		Columns(
			"title",
			"slug",
			"excerpt",
			"content",
			"featured_image",
			"author_id",
			"categories",
			"tags",
			"status",
			"published_at",
			"read_time",
			"seo",
		).
		Values(
			post.Title,
			post.Slug,
			post.Excerpt,
			post.Content,
			post.FeaturedImage,
			post.AuthorID,
			pq.Array(post.Categories),
			pq.Array(post.Tags),
			post.Status,
			post.PublishedAt,
			post.ReadTime,
			post.SEO,
		).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	var id uuid.UUID
	err = b.db.QueryRow(ctx, query, args...).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

func (b *BlogRepo) UpdatePostFields(ctx context.Context, postID uuid.UUID, updates map[string]interface{}) error {
	const op = "repository.blog_repository.UpdatePostFields"

	allowedFields := map[string]bool{
		"title":          true,
		"slug":           true,
		"excerpt":        true,
		"content":        true,
		"featured_image": true,
		"author_id":      true,
		"categories":     true,
		"tags":           true,
		"status":         true,
		"published_at":   true,
		"read_time":      true,
		"seo":            true,
	}

	if len(updates) == 0 {
		return fmt.Errorf("%s: no fields to update", op)
	}

	updateBuilder := b.sb.Update("blog_posts").
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

	updateBuilder = updateBuilder.Where(sq.Eq{"id": postID})

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	result, err := b.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

func (b *BlogRepo) DeletePost(ctx context.Context, postID uuid.UUID) error {
	const op = "repository.blog_repository.DeletePost"

	query, args, err := b.sb.Delete("blog_posts").
		Where(sq.Eq{"id": postID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	result, err := b.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

// GetPostByIdentifier resolves either a native id or a slug through the
// shared identifier predicate.
func (b *BlogRepo) GetPostByIdentifier(ctx context.Context, identifier string) (*models.BlogPost, error) {
	const op = "repository.blog_repository.GetPostByIdentifier"

	query, args, err := b.sb.Select(blogColumns...).
		From("blog_posts").
		Where(identifierPredicate(identifier)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	post, err := b.scanPost(b.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return post, nil
}

func (b *BlogRepo) GetPosts(ctx context.Context, filter PostFilter) ([]models.BlogPost, int, error) {
	const op = "repository.blog_repository.GetPosts"

	page := filter.Page
	perPage := filter.PerPage
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 10
	}

	pred := b.filterPredicate(filter)

	totalCount, err := b.getTotalCount(ctx, pred)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	queryBuilder := b.sb.Select(blogColumns...).
		From("blog_posts").
		Where(pred).
		OrderBy("created_at DESC").
		Limit(uint64(perPage)).
		Offset(uint64((page - 1) * perPage))

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := b.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var posts []models.BlogPost
	for rows.Next() {
		post, err := b.scanPost(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("%s: %w", op, err)
		}
		posts = append(posts, *post)
	}

	return posts, totalCount, nil
}

// GetRelatedPosts returns published posts sharing a category or tag with
// the given post, newest first.
func (b *BlogRepo) GetRelatedPosts(ctx context.Context, post *models.BlogPost, limit int) ([]models.BlogPost, error) {
	const op = "repository.blog_repository.GetRelatedPosts"

	if limit < 1 {
		limit = 3
	}

	queryBuilder := b.sb.Select(blogColumns...).
		From("blog_posts").
		Where(sq.NotEq{"id": post.ID}).
		Where(sq.Eq{"status": models.StatusPublished}).
		Where(sq.Or{
			sq.Expr("categories && ?", pq.Array(post.Categories)),
			sq.Expr("tags && ?", pq.Array(post.Tags)),
		}).
		OrderBy("published_at DESC NULLS LAST").
		Limit(uint64(limit))

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := b.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var posts []models.BlogPost
	for rows.Next() {
		related, err := b.scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		posts = append(posts, *related)
	}

	return posts, nil
}

func (b *BlogRepo) SlugExists(ctx context.Context, slug string, excludeID uuid.UUID) (bool, error) {
	const op = "repository.blog_repository.SlugExists"

	return slugExists(ctx, b.db, b.sb, "blog_posts", op, slug, excludeID)
}

func (b *BlogRepo) filterPredicate(filter PostFilter) sq.And {
	pred := sq.And{}

	if filter.Status != "" {
		pred = append(pred, sq.Eq{"status": filter.Status})
	}
	if filter.VisibleAt != nil {
		pred = append(pred, sq.LtOrEq{"published_at": *filter.VisibleAt})
	}
	if filter.Category != "" {
		pred = append(pred, sq.Expr("? = ANY(categories)", filter.Category))
	}
	if filter.Tag != "" {
		pred = append(pred, sq.Expr("? = ANY(tags)", filter.Tag))
	}

	return pred
}

func (b *BlogRepo) getTotalCount(ctx context.Context, pred sq.And) (int, error) {
	queryBuilder := b.sb.Select("COUNT(*)").
		From("blog_posts").
		Where(pred)

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("error build query: %w", err)
	}

	var count int
	err = b.db.QueryRow(ctx, query, args...).Scan(&count)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("error execute query: %w", err)
	}

	return count, nil
}

func (b *BlogRepo) scanPost(row pgx.Row) (*models.BlogPost, error) {
	var post models.BlogPost

	err := row.Scan(
		&post.ID,
		&post.Title,
		&post.Slug,
		&post.Excerpt,
		&post.Content,
		&post.FeaturedImage,
		&post.AuthorID,
		pq.Array(&post.Categories),
		pq.Array(&post.Tags),
		&post.Status,
		&post.PublishedAt,
		&post.ReadTime,
		&post.SEO,
		&post.CreatedAt,
		&post.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &post, nil
}
