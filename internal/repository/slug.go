package repository

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v4/pgxpool"
)

// slugExists is the shared uniqueness pre-check backing every slugged
// entity. excludeID skips the record being updated.
func slugExists(ctx context.Context, db *pgxpool.Pool, sb sq.StatementBuilderType, table, op, slug string, excludeID uuid.UUID) (bool, error) {
	queryBuilder := sb.Select("COUNT(*)").
		From(table).
		Where(sq.Eq{"slug": slug})

	if excludeID != uuid.Nil {
		queryBuilder = queryBuilder.Where(sq.NotEq{"id": excludeID})
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	var count int
	if err := db.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return count > 0, nil
}
