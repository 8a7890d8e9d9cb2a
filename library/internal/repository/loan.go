package repository

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/Randazzz/LibraryAPI/library/internal/errs"
	"github.com/Randazzz/LibraryAPI/library/internal/model"
)

var loanColumns = []string{"id", "book_id", "user_id", "loan_date", "return_date", "returned"}

func (r *repository) CreateLoan(ctx context.Context, loan model.BookLoan) (model.BookLoan, error) {
	q := qb.Insert(bookLoansTableName).
		Columns("book_id", "user_id", "loan_date", "return_date", "returned").
		Values(loan.BookID, loan.UserID, loan.LoanDate, loan.ReturnDate, loan.Returned).
		Suffix(returning(loanColumns))

	created, err := collectOne[model.BookLoan](ctx, r.db, q)
	if err != nil {
		switch {
		case isUniqueViolation(err):
			return model.BookLoan{}, errs.ErrBookLoanAlreadyExists
		case isForeignKeyViolation(err):
			return model.BookLoan{}, errs.ErrBookNotFound
		}
		return model.BookLoan{}, r.dbErr("CreateLoan", err)
	}
	return created, nil
}

// CountUserLoans counts every loan of the user, returned ones included.
func (r *repository) CountUserLoans(ctx context.Context, userID uuid.UUID) (int, error) {
	query, args, err := qb.Select("count(*)").
		From(bookLoansTableName).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return 0, err
	}
	var n int
	if err := r.db.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, r.dbErr("CountUserLoans", err)
	}
	return n, nil
}

// LockLoan selects the loan row FOR UPDATE. Only meaningful inside InTx.
func (r *repository) LockLoan(ctx context.Context, id int) (model.BookLoan, error) {
	q := qb.Select(loanColumns...).
		From(bookLoansTableName).
		Where(sq.Eq{"id": id}).
		Suffix("for update")

	loan, err := collectOne[model.BookLoan](ctx, r.db, q)
	if err != nil {
		return model.BookLoan{}, r.notFound("LockLoan", err, errs.ErrBookLoanNotFound)
	}
	return loan, nil
}

// MarkLoanReturned flips returned to true once. A loan already returned is reported as not found.
func (r *repository) MarkLoanReturned(ctx context.Context, id int, returnedAt time.Time) (model.BookLoan, error) {
	q := qb.Update(bookLoansTableName).
		Set("returned", true).
		Set("return_date", returnedAt).
		Where(sq.Eq{"id": id, "returned": false}).
		Suffix(returning(loanColumns))

	loan, err := collectOne[model.BookLoan](ctx, r.db, q)
	if err != nil {
		return model.BookLoan{}, r.notFound("MarkLoanReturned", err, errs.ErrBookLoanNotFound)
	}
	return loan, nil
}

func (r *repository) ListUserLoans(ctx context.Context, userID uuid.UUID, paging model.Paging) ([]model.BookLoan, error) {
	q := page(qb.Select(loanColumns...).
		From(bookLoansTableName).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("loan_date desc", "id desc"), paging)

	loans, err := collectAll[model.BookLoan](ctx, r.db, q)
	if err != nil {
		return nil, r.dbErr("ListUserLoans", err)
	}
	return loans, nil
}
