package repository

import (
	"context"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Randazzz/LibraryAPI/library/internal/errs"
)

func TestRepository_dbErr(t *testing.T) {
	t.Parallel()
	r := &repository{log: zap.NewNop()}

	tests := []struct {
		name   string
		err    error
		wantIs error
	}{
		{name: "domain passes through", err: errs.ErrBookNotFound, wantIs: errs.ErrBookNotFound},
		{name: "connection exception", err: &pgconn.PgError{Code: pgerrcode.ConnectionFailure}, wantIs: errs.ErrDatabaseUnavailable},
		{name: "admin shutdown", err: &pgconn.PgError{Code: pgerrcode.AdminShutdown}, wantIs: errs.ErrDatabaseUnavailable},
		{name: "timeout", err: context.DeadlineExceeded, wantIs: errs.ErrDatabaseUnavailable},
		{name: "acquire timeout", err: errors.Wrap(context.DeadlineExceeded, "acquire"), wantIs: errs.ErrDatabaseUnavailable},
		{name: "canceled", err: errors.Wrap(context.Canceled, "acquire"), wantIs: nil},
		{name: "other", err: &pgconn.PgError{Code: pgerrcode.SyntaxError}, wantIs: nil},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := r.dbErr("op", tt.err)
			require.Error(t, got)
			if tt.wantIs == nil {
				var domainErr *errs.Error
				require.False(t, errors.As(got, &domainErr))
				require.ErrorIs(t, got, tt.err)
				return
			}
			require.ErrorIs(t, got, tt.wantIs)
		})
	}
	require.NoError(t, r.dbErr("op", nil))
}

func TestRepository_notFound(t *testing.T) {
	t.Parallel()
	r := &repository{log: zap.NewNop()}

	require.ErrorIs(t, r.notFound("op", pgx.ErrNoRows, errs.ErrBookNotFound), errs.ErrBookNotFound)
	require.ErrorIs(t, r.notFound("op", errors.Wrap(pgx.ErrNoRows, "scan"), errs.ErrUserNotFound), errs.ErrUserNotFound)
}

func TestViolations(t *testing.T) {
	t.Parallel()
	unique := errors.Wrap(&pgconn.PgError{Code: pgerrcode.UniqueViolation}, "insert")
	fk := &pgconn.PgError{Code: pgerrcode.ForeignKeyViolation}

	require.True(t, isUniqueViolation(unique))
	require.False(t, isUniqueViolation(fk))
	require.True(t, isForeignKeyViolation(fk))
	require.False(t, isForeignKeyViolation(errors.New("boom")))
}
