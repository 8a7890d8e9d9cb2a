package service_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/Randazzz/LibraryAPI/library/internal/errs"
	"github.com/Randazzz/LibraryAPI/library/internal/model"
	repo_mocks "github.com/Randazzz/LibraryAPI/library/internal/repository/mocks"
	"github.com/Randazzz/LibraryAPI/library/internal/service"
)

type eventRecorder struct {
	events []model.LoanEvent
	err    error
}

func (r *eventRecorder) PublishLoanEvent(_ context.Context, e model.LoanEvent) error {
	r.events = append(r.events, e)
	return r.err
}

func TestService_LendBook(t *testing.T) {
	t.Parallel()
	req := model.BookLoanCreateRequest{BookID: 1, UserID: readerID}
	wantLoan := model.BookLoan{
		ID:         10,
		BookID:     1,
		UserID:     readerID,
		LoanDate:   fixedNow,
		ReturnDate: fixedNow.Add(service.DefaultLoanPeriod),
	}
	type mockBehavior func(r *repo_mocks.MockRepository)

	tests := []struct {
		name         string
		mockBehavior mockBehavior
		want         model.BookLoan
		wantErr      error
	}{
		{
			name: "ok",
			mockBehavior: func(r *repo_mocks.MockRepository) {
				gomock.InOrder(
					expectTx(r),
					r.EXPECT().LockBook(gomock.Any(), 1).Return(model.Book{ID: 1, AvailableCopies: 1}, nil),
					r.EXPECT().LockUser(gomock.Any(), readerID).Return(model.User{ID: readerID}, nil),
					r.EXPECT().CountUserLoans(gomock.Any(), readerID).Return(service.DefaultLoanLimit-1, nil),
					r.EXPECT().CreateLoan(gomock.Any(), model.BookLoan{
						BookID:     1,
						UserID:     readerID,
						LoanDate:   fixedNow,
						ReturnDate: fixedNow.Add(service.DefaultLoanPeriod),
					}).Return(wantLoan, nil),
					r.EXPECT().DecrementAvailableCopies(gomock.Any(), 1).Return(nil),
				)
			},
			want: wantLoan,
		},
		{
			name: "book not found",
			mockBehavior: func(r *repo_mocks.MockRepository) {
				expectTx(r)
				r.EXPECT().LockBook(gomock.Any(), 1).Return(model.Book{}, errs.ErrBookNotFound)
			},
			wantErr: errs.ErrBookNotFound,
		},
		{
			name: "no copies left, user is not looked up",
			mockBehavior: func(r *repo_mocks.MockRepository) {
				expectTx(r)
				r.EXPECT().LockBook(gomock.Any(), 1).Return(model.Book{ID: 1, AvailableCopies: 0}, nil)
			},
			wantErr: errs.ErrBookCopyNotFound,
		},
		{
			name: "user not found",
			mockBehavior: func(r *repo_mocks.MockRepository) {
				expectTx(r)
				r.EXPECT().LockBook(gomock.Any(), 1).Return(model.Book{ID: 1, AvailableCopies: 3}, nil)
				r.EXPECT().LockUser(gomock.Any(), readerID).Return(model.User{}, errs.ErrUserNotFound)
			},
			wantErr: errs.ErrUserNotFound,
		},
		{
			name: "limit reached",
			mockBehavior: func(r *repo_mocks.MockRepository) {
				expectTx(r)
				r.EXPECT().LockBook(gomock.Any(), 1).Return(model.Book{ID: 1, AvailableCopies: 3}, nil)
				r.EXPECT().LockUser(gomock.Any(), readerID).Return(model.User{ID: readerID}, nil)
				r.EXPECT().CountUserLoans(gomock.Any(), readerID).Return(service.DefaultLoanLimit, nil)
			},
			wantErr: errs.ErrBookLimitExceeded,
		},
		{
			name: "already lent",
			mockBehavior: func(r *repo_mocks.MockRepository) {
				expectTx(r)
				r.EXPECT().LockBook(gomock.Any(), 1).Return(model.Book{ID: 1, AvailableCopies: 3}, nil)
				r.EXPECT().LockUser(gomock.Any(), readerID).Return(model.User{ID: readerID}, nil)
				r.EXPECT().CountUserLoans(gomock.Any(), readerID).Return(1, nil)
				r.EXPECT().CreateLoan(gomock.Any(), gomock.Any()).Return(model.BookLoan{}, errs.ErrBookLoanAlreadyExists)
			},
			wantErr: errs.ErrBookLoanAlreadyExists,
		},
		{
			name: "lost the last copy to a concurrent lend",
			mockBehavior: func(r *repo_mocks.MockRepository) {
				expectTx(r)
				r.EXPECT().LockBook(gomock.Any(), 1).Return(model.Book{ID: 1, AvailableCopies: 1}, nil)
				r.EXPECT().LockUser(gomock.Any(), readerID).Return(model.User{ID: readerID}, nil)
				r.EXPECT().CountUserLoans(gomock.Any(), readerID).Return(0, nil)
				r.EXPECT().CreateLoan(gomock.Any(), gomock.Any()).Return(wantLoan, nil)
				r.EXPECT().DecrementAvailableCopies(gomock.Any(), 1).Return(errs.ErrBookCopyNotFound)
			},
			wantErr: errs.ErrBookCopyNotFound,
		},
		{
			name: "database down",
			mockBehavior: func(r *repo_mocks.MockRepository) {
				r.EXPECT().InTx(gomock.Any(), gomock.Any()).Return(errs.ErrDatabaseConnection)
			},
			wantErr: errs.ErrDatabaseUnavailable,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			events := &eventRecorder{}
			svc, repo := newTestService(t, service.WithEventPublisher(events))
			tt.mockBehavior(repo)

			got, err := svc.LendBook(context.Background(), req)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				require.Empty(t, events.events)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
			require.False(t, got.Returned)
			require.Equal(t, []model.LoanEvent{{
				Type:   model.LoanEventLent,
				LoanID: wantLoan.ID,
				BookID: wantLoan.BookID,
				UserID: readerID,
				At:     fixedNow,
			}}, events.events)
		})
	}
}

func TestService_LendBook_CustomLimit(t *testing.T) {
	t.Parallel()
	svc, repo := newTestService(t, service.WithLoanLimit(1))
	expectTx(repo)
	repo.EXPECT().LockBook(gomock.Any(), 1).Return(model.Book{ID: 1, AvailableCopies: 1}, nil)
	repo.EXPECT().LockUser(gomock.Any(), readerID).Return(model.User{ID: readerID}, nil)
	repo.EXPECT().CountUserLoans(gomock.Any(), readerID).Return(1, nil)

	_, err := svc.LendBook(context.Background(), model.BookLoanCreateRequest{BookID: 1, UserID: readerID})
	require.ErrorIs(t, err, errs.ErrBookLimitExceeded)
}

func TestService_LendBook_PublishFailureIgnored(t *testing.T) {
	t.Parallel()
	events := &eventRecorder{err: errors.New("kafka down")}
	svc, repo := newTestService(t, service.WithEventPublisher(events))
	expectTx(repo)
	repo.EXPECT().LockBook(gomock.Any(), 1).Return(model.Book{ID: 1, AvailableCopies: 1}, nil)
	repo.EXPECT().LockUser(gomock.Any(), readerID).Return(model.User{ID: readerID}, nil)
	repo.EXPECT().CountUserLoans(gomock.Any(), readerID).Return(0, nil)
	repo.EXPECT().CreateLoan(gomock.Any(), gomock.Any()).Return(model.BookLoan{ID: 1, BookID: 1, UserID: readerID}, nil)
	repo.EXPECT().DecrementAvailableCopies(gomock.Any(), 1).Return(nil)

	_, err := svc.LendBook(context.Background(), model.BookLoanCreateRequest{BookID: 1, UserID: readerID})
	require.NoError(t, err)
	require.Len(t, events.events, 1)
}

func TestService_ReturnBook(t *testing.T) {
	t.Parallel()
	active := model.BookLoan{ID: 10, BookID: 1, UserID: readerID, LoanDate: fixedNow.AddDate(0, 0, -3)}
	returned := active
	returned.Returned = true
	returned.ReturnDate = fixedNow

	type mockBehavior func(r *repo_mocks.MockRepository)
	tests := []struct {
		name         string
		userID       uuid.UUID
		mockBehavior mockBehavior
		wantErr      error
	}{
		{
			name:   "ok",
			userID: readerID,
			mockBehavior: func(r *repo_mocks.MockRepository) {
				gomock.InOrder(
					expectTx(r),
					r.EXPECT().LockLoan(gomock.Any(), 10).Return(active, nil),
					r.EXPECT().LockBook(gomock.Any(), 1).Return(model.Book{ID: 1}, nil),
					r.EXPECT().MarkLoanReturned(gomock.Any(), 10, fixedNow).Return(returned, nil),
					r.EXPECT().IncrementAvailableCopies(gomock.Any(), 1).Return(nil),
				)
			},
		},
		{
			name:   "missing loan",
			userID: readerID,
			mockBehavior: func(r *repo_mocks.MockRepository) {
				expectTx(r)
				r.EXPECT().LockLoan(gomock.Any(), 10).Return(model.BookLoan{}, errs.ErrBookLoanNotFound)
			},
			wantErr: errs.ErrBookLoanNotFound,
		},
		{
			name:   "loan of another user",
			userID: otherID,
			mockBehavior: func(r *repo_mocks.MockRepository) {
				expectTx(r)
				r.EXPECT().LockLoan(gomock.Any(), 10).Return(active, nil)
			},
			wantErr: errs.ErrBookLoanNotFound,
		},
		{
			name:   "already returned",
			userID: readerID,
			mockBehavior: func(r *repo_mocks.MockRepository) {
				expectTx(r)
				r.EXPECT().LockLoan(gomock.Any(), 10).Return(returned, nil)
			},
			wantErr: errs.ErrBookLoanNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc, repo := newTestService(t)
			tt.mockBehavior(repo)

			got, err := svc.ReturnBook(context.Background(), 10, tt.userID)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				require.Equal(t, errs.ErrBookLoanNotFound.Error(), err.Error())
				return
			}
			require.NoError(t, err)
			require.True(t, got.Returned)
			require.Equal(t, fixedNow, got.ReturnDate)
		})
	}
}
