package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/Randazzz/LibraryAPI/library/internal/errs"
	"github.com/Randazzz/LibraryAPI/library/internal/model"
)

var authorColumns = []string{"id", "name", "biography", "birth_date"}

func (r *repository) CreateAuthor(ctx context.Context, author model.Author) (model.Author, error) {
	q := qb.Insert(authorsTableName).
		Columns("name", "biography", "birth_date").
		Values(author.Name, author.Biography, author.BirthDate).
		Suffix(returning(authorColumns))

	created, err := collectOne[model.Author](ctx, r.db, q)
	if err != nil {
		if isUniqueViolation(err) {
			return model.Author{}, errs.ErrAuthorAlreadyExists
		}
		return model.Author{}, r.dbErr("CreateAuthor", err)
	}
	return created, nil
}

func (r *repository) GetAuthor(ctx context.Context, id int) (model.Author, error) {
	q := qb.Select(authorColumns...).
		From(authorsTableName).
		Where(sq.Eq{"id": id})

	author, err := collectOne[model.Author](ctx, r.db, q)
	if err != nil {
		return model.Author{}, r.notFound("GetAuthor", err, errs.ErrAuthorNotFound)
	}
	return author, nil
}

// GetAuthorsByIDs returns the authors that exist among ids, ordered by id.
func (r *repository) GetAuthorsByIDs(ctx context.Context, ids []int) ([]model.Author, error) {
	q := qb.Select(authorColumns...).
		From(authorsTableName).
		Where(sq.Eq{"id": ids}).
		OrderBy("id")

	authors, err := collectAll[model.Author](ctx, r.db, q)
	if err != nil {
		return nil, r.dbErr("GetAuthorsByIDs", err)
	}
	return authors, nil
}

func (r *repository) ListAuthors(ctx context.Context, paging model.Paging) ([]model.Author, error) {
	q := page(qb.Select(authorColumns...).
		From(authorsTableName).
		OrderBy("id"), paging)

	authors, err := collectAll[model.Author](ctx, r.db, q)
	if err != nil {
		return nil, r.dbErr("ListAuthors", err)
	}
	return authors, nil
}

func (r *repository) UpdateAuthor(ctx context.Context, author model.Author) (model.Author, error) {
	q := qb.Update(authorsTableName).
		SetMap(map[string]interface{}{
			"name":       author.Name,
			"biography":  author.Biography,
			"birth_date": author.BirthDate,
		}).
		Where(sq.Eq{"id": author.ID}).
		Suffix(returning(authorColumns))

	updated, err := collectOne[model.Author](ctx, r.db, q)
	if err != nil {
		if isUniqueViolation(err) {
			return model.Author{}, errs.ErrAuthorAlreadyExists
		}
		return model.Author{}, r.notFound("UpdateAuthor", err, errs.ErrAuthorNotFound)
	}
	return updated, nil
}

func (r *repository) DeleteAuthor(ctx context.Context, id int) error {
	n, err := r.exec(ctx, qb.Delete(authorsTableName).Where(sq.Eq{"id": id}))
	if err != nil {
		return r.dbErr("DeleteAuthor", err)
	}
	if n == 0 {
		return errs.ErrAuthorNotFound
	}
	return nil
}
