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

type ContactRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewContactRepository(db *pgxpool.Pool) *ContactRepo {
	return &ContactRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

var contactColumns = []string{
	"id", "name", "email", "phone", "company", "message", "service",
	"source", "status", "notes", "created_at", "updated_at",
}

func (r *ContactRepo) SaveSubmission(ctx context.Context, sub models.ContactSubmission) (uuid.UUID, error) {
	const op = "repository.contact_repository.SaveSubmission"

	query, args, err := r.sb.Insert("contact_submissions").
		Columns("name", "email", "phone", "company", "message", "service", "source", "status").
		Values(
			sub.Name,
			sub.Email,
			sub.Phone,
			sub.Company,
			sub.Message,
			sub.Service,
			sub.Source,
			models.ContactStatusNew,
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

func (r *ContactRepo) UpdateSubmission(ctx context.Context, subID uuid.UUID, status models.ContactStatus, notes *string) error {
	const op = "repository.contact_repository.UpdateSubmission"

	updateBuilder := r.sb.Update("contact_submissions").
		Set("status", status).
		Set("updated_at", time.Now()).
		Where(sq.Eq{"id": subID})

	if notes != nil {
		updateBuilder = updateBuilder.Set("notes", *notes)
	}

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

func (r *ContactRepo) DeleteSubmission(ctx context.Context, subID uuid.UUID) error {
	const op = "repository.contact_repository.DeleteSubmission"

	query, args, err := r.sb.Delete("contact_submissions").
		Where(sq.Eq{"id": subID}).
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

func (r *ContactRepo) GetSubmissionByID(ctx context.Context, subID uuid.UUID) (*models.ContactSubmission, error) {
	const op = "repository.contact_repository.GetSubmissionByID"

	query, args, err := r.sb.Select(contactColumns...).
		From("contact_submissions").
		Where(sq.Eq{"id": subID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	sub, err := r.scanSubmission(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return sub, nil
}

func (r *ContactRepo) GetSubmissions(ctx context.Context, status models.ContactStatus, page, perPage int) ([]models.ContactSubmission, int, error) {
	const op = "repository.contact_repository.GetSubmissions"

	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	pred := sq.And{}
	if status != "" {
		pred = append(pred, sq.Eq{"status": status})
	}

	countQuery, countArgs, err := r.sb.Select("COUNT(*)").
		From("contact_submissions").
		Where(pred).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	var total int
	if err := r.db.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	query, args, err := r.sb.Select(contactColumns...).
		From("contact_submissions").
		Where(pred).
		OrderBy("created_at DESC").
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

	var subs []models.ContactSubmission
	for rows.Next() {
		sub, err := r.scanSubmission(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("%s: %w", op, err)
		}
		subs = append(subs, *sub)
	}

	return subs, total, nil
}

func (r *ContactRepo) scanSubmission(row pgx.Row) (*models.ContactSubmission, error) {
	var sub models.ContactSubmission

	err := row.Scan(
		&sub.ID,
		&sub.Name,
		&sub.Email,
		&sub.Phone,
		&sub.Company,
		&sub.Message,
		&sub.Service,
		&sub.Source,
		&sub.Status,
		&sub.Notes,
		&sub.CreatedAt,
		&sub.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &sub, nil
}
