package repository

import (
	"context"
	"errors"
	"fmt"

	"digibayt/internal/domain/models"
	"digibayt/internal/storage"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

type CommentRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewCommentRepository(db *pgxpool.Pool) *CommentRepo {
	return &CommentRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

var commentColumns = []string{
	"id", "post_id", "post_type", "author_name", "author_email", "content",
	"is_approved", "parent_id", "created_at",
}

func (r *CommentRepo) SaveComment(ctx context.Context, comment models.Comment) (uuid.UUID, error) {
	const op = "repository.comment_repository.SaveComment"

	query, args, err := r.sb.Insert("comments").
		Columns("post_id", "post_type", "author_name", "author_email", "content", "is_approved", "parent_id").
		Values(
			comment.PostID,
			comment.PostType,
			comment.AuthorName,
			comment.AuthorEmail,
			comment.Content,
			comment.IsApproved,
			comment.ParentID,
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

func (r *CommentRepo) SetApproved(ctx context.Context, commentID uuid.UUID, approved bool) error {
	const op = "repository.comment_repository.SetApproved"

	query, args, err := r.sb.Update("comments").
		Set("is_approved", approved).
		Where(sq.Eq{"id": commentID}).
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

func (r *CommentRepo) DeleteComment(ctx context.Context, commentID uuid.UUID) error {
	const op = "repository.comment_repository.DeleteComment"

	query, args, err := r.sb.Delete("comments").
		Where(sq.Eq{"id": commentID}).
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

func (r *CommentRepo) GetCommentByID(ctx context.Context, commentID uuid.UUID) (*models.Comment, error) {
	const op = "repository.comment_repository.GetCommentByID"

	query, args, err := r.sb.Select(commentColumns...).
		From("comments").
		Where(sq.Eq{"id": commentID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	comment, err := r.scanComment(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return comment, nil
}

func (r *CommentRepo) GetComments(ctx context.Context, postID uuid.UUID, postType models.PostType, approvedOnly bool) ([]models.Comment, error) {
	const op = "repository.comment_repository.GetComments"

	queryBuilder := r.sb.Select(commentColumns...).
		From("comments").
		Where(sq.Eq{"post_id": postID, "post_type": postType}).
		OrderBy("created_at ASC")

	if approvedOnly {
		queryBuilder = queryBuilder.Where(sq.Eq{"is_approved": true})
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

	var comments []models.Comment
	for rows.Next() {
		comment, err := r.scanComment(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		comments = append(comments, *comment)
	}

	return comments, nil
}

func (r *CommentRepo) scanComment(row pgx.Row) (*models.Comment, error) {
	var comment models.Comment

	err := row.Scan(
		&comment.ID,
		&comment.PostID,
		&comment.PostType,
		&comment.AuthorName,
		&comment.AuthorEmail,
		&comment.Content,
		&comment.IsApproved,
		&comment.ParentID,
		&comment.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &comment, nil
}
