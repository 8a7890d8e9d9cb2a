package service

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Randazzz/LibraryAPI/library/internal/errs"
	"github.com/Randazzz/LibraryAPI/library/internal/model"
	libraryRepo "github.com/Randazzz/LibraryAPI/library/internal/repository"
)

// LendBook creates a loan and takes one copy of the book in a single transaction.
//
// Checks run in this order and the first failure wins: the book exists, it has an
// available copy, the user exists, the user has fewer loans than the limit. Every
// loan the user ever made counts towards the limit, returned ones included.
//
// The book row is locked first and the user row second, so concurrent lends of one
// book and concurrent lends by one user are serialised.
func (s *Service) LendBook(ctx context.Context, req model.BookLoanCreateRequest) (model.BookLoan, error) {
	now := s.now().UTC()

	var loan model.BookLoan
	err := s.repo.InTx(ctx, func(repo libraryRepo.Repository) error {
		book, err := repo.LockBook(ctx, req.BookID)
		if err != nil {
			return err
		}
		if book.AvailableCopies <= 0 {
			return errs.ErrBookCopyNotFound
		}
		if _, err := repo.LockUser(ctx, req.UserID); err != nil {
			return err
		}
		count, err := repo.CountUserLoans(ctx, req.UserID)
		if err != nil {
			return err
		}
		if count >= s.loanLimit {
			return errs.ErrBookLimitExceeded
		}

		loan, err = repo.CreateLoan(ctx, model.BookLoan{
			BookID:     book.ID,
			UserID:     req.UserID,
			LoanDate:   now,
			ReturnDate: now.Add(s.loanPeriod),
			Returned:   false,
		})
		if err != nil {
			return err
		}
		return repo.DecrementAvailableCopies(ctx, book.ID)
	})
	if err != nil {
		return model.BookLoan{}, err
	}

	s.publish(ctx, model.LoanEvent{
		Type:   model.LoanEventLent,
		LoanID: loan.ID,
		BookID: loan.BookID,
		UserID: loan.UserID,
		At:     now,
	})
	return loan, nil
}

// ReturnBook closes a loan of userID and puts the copy back. A loan of another
// user and an already returned loan fail exactly like a missing one.
//
// Locks are taken loan first, then book, before the loan row is modified.
func (s *Service) ReturnBook(ctx context.Context, loanID int, userID uuid.UUID) (model.BookLoan, error) {
	now := s.now().UTC()

	var loan model.BookLoan
	err := s.repo.InTx(ctx, func(repo libraryRepo.Repository) error {
		current, err := repo.LockLoan(ctx, loanID)
		if err != nil {
			return err
		}
		if current.UserID != userID || current.Returned {
			return errs.ErrBookLoanNotFound
		}
		if _, err := repo.LockBook(ctx, current.BookID); err != nil {
			return err
		}
		loan, err = repo.MarkLoanReturned(ctx, loanID, now)
		if err != nil {
			return err
		}
		return repo.IncrementAvailableCopies(ctx, loan.BookID)
	})
	if err != nil {
		return model.BookLoan{}, err
	}

	s.log.Debug("book returned", zap.Int("loan_id", loan.ID), zap.Int("book_id", loan.BookID))
	s.publish(ctx, model.LoanEvent{
		Type:   model.LoanEventReturned,
		LoanID: loan.ID,
		BookID: loan.BookID,
		UserID: loan.UserID,
		At:     now,
	})
	return loan, nil
}

func (s *Service) ListUserLoans(ctx context.Context, userID uuid.UUID, paging model.Paging) ([]model.BookLoan, error) {
	return s.repo.ListUserLoans(ctx, userID, paging)
}
