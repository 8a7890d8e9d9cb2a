package errs_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/Randazzz/LibraryAPI/library/internal/errs"
)

func TestError_Kind(t *testing.T) {
	t.Parallel()
	tests := []struct {
		err  error
		kind error
	}{
		{err: errs.ErrBookNotFound, kind: errs.ErrNotFound},
		{err: errs.ErrBookCopyNotFound, kind: errs.ErrNotFound},
		{err: errs.ErrBookLoanAlreadyExists, kind: errs.ErrAlreadyExists},
		{err: errs.ErrBookHasLoans, kind: errs.ErrConflict},
		{err: errs.ErrPermissionDeniedAccess, kind: errs.ErrPermissionDenied},
		{err: errs.InvalidTokenType("access", "refresh"), kind: errs.ErrUnauthorized},
		{err: errs.ErrBookLimitExceeded, kind: errs.ErrLimitExceeded},
		{err: errs.ErrDatabaseConnection, kind: errs.ErrDatabaseUnavailable},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.err.Error(), func(t *testing.T) {
			t.Parallel()
			wrapped := errors.Wrap(tt.err, "repo")
			require.ErrorIs(t, wrapped, tt.kind)
			require.ErrorIs(t, wrapped, tt.err)

			var e *errs.Error
			require.ErrorAs(t, wrapped, &e)
			require.Equal(t, tt.err.Error(), e.Error())
		})
	}
	require.NotErrorIs(t, errs.ErrBookNotFound, errs.ErrAlreadyExists)
}

func TestInvalidTokenType(t *testing.T) {
	t.Parallel()
	require.Equal(t, "Invalid token type 'access' expected 'refresh'", errs.InvalidTokenType("access", "refresh").Error())
}
