package repository

import (
	"context"

	"github.com/Randazzz/LibraryAPI/library/internal/model"
)

// PopularBooks counts loans per book. Books never lent are listed with a zero count.
func (r *repository) PopularBooks(ctx context.Context, paging model.Paging) ([]model.PopularBook, error) {
	q := page(qb.Select("b.id", "b.title", "count(l.id) as loan_count").
		From(booksTableName+" b").
		LeftJoin(bookLoansTableName+" l on l.book_id = b.id").
		GroupBy("b.id", "b.title").
		OrderBy("loan_count desc", "b.id asc"), paging)

	books, err := collectAll[model.PopularBook](ctx, r.db, q)
	if err != nil {
		return nil, r.dbErr("PopularBooks", err)
	}
	return books, nil
}

// ActiveUsers counts loans per user, users without loans included.
func (r *repository) ActiveUsers(ctx context.Context, paging model.Paging) ([]model.ActiveUser, error) {
	q := page(qb.Select("u.id", "u.email", "u.first_name", "u.last_name", "count(l.id) as loan_count").
		From(usersTableName+" u").
		LeftJoin(bookLoansTableName+" l on l.user_id = u.id").
		GroupBy("u.id").
		OrderBy("loan_count desc", "u.id asc"), paging)

	users, err := collectAll[model.ActiveUser](ctx, r.db, q)
	if err != nil {
		return nil, r.dbErr("ActiveUsers", err)
	}
	return users, nil
}
