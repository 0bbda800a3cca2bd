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

type AuthorRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewAuthorRepository(db *pgxpool.Pool) *AuthorRepo {
	return &AuthorRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

var authorColumns = []string{
	"id", "name", "slug", "bio", "avatar", "email", "social", "role",
	"created_at", "updated_at",
}

func (r *AuthorRepo) SaveAuthor(ctx context.Context, author models.Author) (uuid.UUID, error) {
	const op = "repository.author_repository.SaveAuthor"

	query, args, err := r.sb.Insert("authors").
		Columns("name", "slug", "bio", "avatar", "email", "social", "role").
		Values(
			author.Name,
			author.Slug,
			author.Bio,
			author.Avatar,
			author.Email,
			author.Social,
			author.Role,
		).
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

func (r *AuthorRepo) UpdateAuthor(ctx context.Context, author models.Author) error {
	const op = "repository.author_repository.UpdateAuthor"

	query, args, err := r.sb.Update("authors").
		Set("name", author.Name).
		Set("slug", author.Slug).
		Set("bio", author.Bio).
		Set("avatar", author.Avatar).
		Set("email", author.Email).
		Set("social", author.Social).
		Set("role", author.Role).
		Set("updated_at", time.Now()).
		Where(sq.Eq{"id": author.ID}).
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

func (r *AuthorRepo) DeleteAuthor(ctx context.Context, authorID uuid.UUID) error {
	const op = "repository.author_repository.DeleteAuthor"

	query, args, err := r.sb.Delete("authors").
		Where(sq.Eq{"id": authorID}).
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

func (r *AuthorRepo) GetAuthorByIdentifier(ctx context.Context, identifier string) (*models.Author, error) {
	const op = "repository.author_repository.GetAuthorByIdentifier"

	query, args, err := r.sb.Select(authorColumns...).
		From("authors").
		Where(identifierPredicate(identifier)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	author, err := r.scanAuthor(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return author, nil
}

func (r *AuthorRepo) GetAuthorByID(ctx context.Context, authorID uuid.UUID) (*models.Author, error) {
	const op = "repository.author_repository.GetAuthorByID"

	query, args, err := r.sb.Select(authorColumns...).
		From("authors").
		Where(sq.Eq{"id": authorID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	author, err := r.scanAuthor(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return author, nil
}

func (r *AuthorRepo) GetAuthors(ctx context.Context) ([]models.Author, error) {
	const op = "repository.author_repository.GetAuthors"

	query, args, err := r.sb.Select(authorColumns...).
		From("authors").
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

	var authors []models.Author
	for rows.Next() {
		author, err := r.scanAuthor(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		authors = append(authors, *author)
	}

	return authors, nil
}

func (r *AuthorRepo) scanAuthor(row pgx.Row) (*models.Author, error) {
	var author models.Author

	err := row.Scan(
		&author.ID,
		&author.Name,
		&author.Slug,
		&author.Bio,
		&author.Avatar,
		&author.Email,
		&author.Social,
		&author.Role,
		&author.CreatedAt,
		&author.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &author, nil
}
