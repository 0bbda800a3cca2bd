package repository

import (
	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

// identifierPredicate is the shared slug-or-id resolver: an opaque
// identifier that parses as a UUID matches on id, anything else matches on
// slug. Every fetch-by-identifier path goes through this one predicate
// instead of duplicating the fallback per entity.
func identifierPredicate(identifier string) sq.Sqlizer {
	if id, err := uuid.Parse(identifier); err == nil {
		return sq.Eq{"id": id}
	}
	return sq.Eq{"slug": identifier}
}
