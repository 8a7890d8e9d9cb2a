package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/Randazzz/LibraryAPI/library/internal/errs"
	"github.com/Randazzz/LibraryAPI/library/internal/model"
)

var genreColumns = []string{"id", "name"}

func (r *repository) CreateGenre(ctx context.Context, genre model.Genre) (model.Genre, error) {
	q := qb.Insert(genresTableName).
		Columns("name").
		Values(genre.Name).
		Suffix(returning(genreColumns))

	created, err := collectOne[model.Genre](ctx, r.db, q)
	if err != nil {
		if isUniqueViolation(err) {
			return model.Genre{}, errs.ErrGenreAlreadyExists
		}
		return model.Genre{}, r.dbErr("CreateGenre", err)
	}
	return created, nil
}

func (r *repository) GetGenresByIDs(ctx context.Context, ids []int) ([]model.Genre, error) {
	q := qb.Select(genreColumns...).
		From(genresTableName).
		Where(sq.Eq{"id": ids}).
		OrderBy("id")

	genres, err := collectAll[model.Genre](ctx, r.db, q)
	if err != nil {
		return nil, r.dbErr("GetGenresByIDs", err)
	}
	return genres, nil
}

func (r *repository) ListGenres(ctx context.Context, paging model.Paging) ([]model.Genre, error) {
	q := page(qb.Select(genreColumns...).
		From(genresTableName).
		OrderBy("id"), paging)

	genres, err := collectAll[model.Genre](ctx, r.db, q)
	if err != nil {
		return nil, r.dbErr("ListGenres", err)
	}
	return genres, nil
}

func (r *repository) DeleteGenre(ctx context.Context, id int) error {
	n, err := r.exec(ctx, qb.Delete(genresTableName).Where(sq.Eq{"id": id}))
	if err != nil {
		return r.dbErr("DeleteGenre", err)
	}
	if n == 0 {
		return errs.ErrGenreNotFound
	}
	return nil
}
