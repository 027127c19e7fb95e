package pgx

import (
	"errors"
	"fmt"

	"github.com/OFFIS-RIT/npdirectory/backend/pkg/relation"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	sqlStateForeignKeyViolation = "23503"
	sqlStateUniqueViolation     = "23505"
	sqlStateCheckViolation      = "23514"
)

// TranslateError maps constraint failures onto the relation error taxonomy and
// passes everything else through.
func TranslateError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case sqlStateUniqueViolation:
		return fmt.Errorf("%w: %s", relation.ErrDuplicateEdge, pgErr.ConstraintName)
	case sqlStateForeignKeyViolation:
		return fmt.Errorf("%w: unknown person (%s)", relation.ErrIntegrityViolation, pgErr.ConstraintName)
	case sqlStateCheckViolation:
		return fmt.Errorf("%w: %s", relation.ErrIntegrityViolation, pgErr.ConstraintName)
	}
	return err
}
