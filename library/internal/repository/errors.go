package repository

import (
	"context"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Randazzz/LibraryAPI/library/internal/errs"
)

// dbErr passes domain errors through, maps connectivity failures to
// errs.ErrDatabaseConnection and wraps everything else with op.
func (r *repository) dbErr(op string, err error) error {
	if err == nil {
		return nil
	}
	var domainErr *errs.Error
	if errors.As(err, &domainErr) {
		return err
	}
	if isUnavailable(err) {
		r.log.Error(op, zap.Error(err))
		return errs.ErrDatabaseConnection
	}
	return errors.Wrap(err, op)
}

// notFound maps pgx.ErrNoRows to target and everything else through dbErr.
func (r *repository) notFound(op string, err error, target error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return target
	}
	return r.dbErr(op, err)
}

func isUnavailable(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgerrcode.IsConnectionException(pgErr.Code) ||
			pgErr.Code == pgerrcode.AdminShutdown ||
			pgErr.Code == pgerrcode.CannotConnectNow ||
			pgErr.Code == pgerrcode.TooManyConnections
	}
	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return true
	}
	// client cancellation stays a plain error
	return pgconn.Timeout(err) || errors.Is(err, context.DeadlineExceeded)
}

func isUniqueViolation(err error) bool {
	return hasCode(err, pgerrcode.UniqueViolation)
}

func isForeignKeyViolation(err error) bool {
	return hasCode(err, pgerrcode.ForeignKeyViolation)
}

func hasCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}
