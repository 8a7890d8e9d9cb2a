package service

import (
	"context"

	"github.com/Randazzz/LibraryAPI/library/internal/errs"
	"github.com/Randazzz/LibraryAPI/library/internal/model"
	libraryRepo "github.com/Randazzz/LibraryAPI/library/internal/repository"
)

func (s *Service) CreateGenre(ctx context.Context, req model.GenreCreateRequest) (model.Genre, error) {
	return s.repo.CreateGenre(ctx, model.Genre{Name: req.Name})
}

func (s *Service) ListGenres(ctx context.Context, paging model.Paging) ([]model.Genre, error) {
	return s.repo.ListGenres(ctx, paging)
}

func (s *Service) DeleteGenre(ctx context.Context, id int) error {
	return s.repo.DeleteGenre(ctx, id)
}

// GenresByIDs resolves every id or fails with errs.ErrGenreNotFound.
func (s *Service) GenresByIDs(ctx context.Context, ids []int) ([]model.Genre, error) {
	return genresByIDs(ctx, s.repo, ids)
}

func genresByIDs(ctx context.Context, repo libraryRepo.GenreRepository, ids []int) ([]model.Genre, error) {
	unique := model.IDList(ids).Unique()
	if len(unique) == 0 {
		return nil, errs.ErrGenreNotFound
	}
	genres, err := repo.GetGenresByIDs(ctx, unique)
	if err != nil {
		return nil, err
	}
	if len(genres) != len(unique) {
		return nil, errs.ErrGenreNotFound
	}
	return genres, nil
}
