package service

import (
	"context"

	"github.com/Randazzz/LibraryAPI/library/internal/errs"
	"github.com/Randazzz/LibraryAPI/library/internal/model"
	libraryRepo "github.com/Randazzz/LibraryAPI/library/internal/repository"
)

func (s *Service) CreateAuthor(ctx context.Context, req model.AuthorCreateRequest) (model.Author, error) {
	author := model.Author{
		Name:      req.Name,
		Biography: req.Biography,
	}
	if req.BirthDate != nil {
		author.BirthDate = *req.BirthDate
	}
	return s.repo.CreateAuthor(ctx, author)
}

func (s *Service) ListAuthors(ctx context.Context, paging model.Paging) ([]model.Author, error) {
	return s.repo.ListAuthors(ctx, paging)
}

// UpdateAuthor applies the fields present in req; a null biography clears it.
func (s *Service) UpdateAuthor(ctx context.Context, id int, req model.AuthorUpdateRequest) (model.Author, error) {
	author, err := s.repo.GetAuthor(ctx, id)
	if err != nil {
		return model.Author{}, err
	}
	if req.Name.Present() {
		author.Name = req.Name.Value
	}
	if req.Biography.Null {
		author.Biography = nil
	} else if req.Biography.Set {
		bio := req.Biography.Value
		author.Biography = &bio
	}
	if req.BirthDate.Present() {
		author.BirthDate = req.BirthDate.Value
	}
	return s.repo.UpdateAuthor(ctx, author)
}

func (s *Service) DeleteAuthor(ctx context.Context, id int) error {
	return s.repo.DeleteAuthor(ctx, id)
}

// AuthorsByIDs resolves every id or fails with errs.ErrAuthorNotFound.
func (s *Service) AuthorsByIDs(ctx context.Context, ids []int) ([]model.Author, error) {
	return authorsByIDs(ctx, s.repo, ids)
}

func authorsByIDs(ctx context.Context, repo libraryRepo.AuthorRepository, ids []int) ([]model.Author, error) {
	unique := model.IDList(ids).Unique()
	if len(unique) == 0 {
		return nil, errs.ErrAuthorNotFound
	}
	authors, err := repo.GetAuthorsByIDs(ctx, unique)
	if err != nil {
		return nil, err
	}
	if len(authors) != len(unique) {
		return nil, errs.ErrAuthorNotFound
	}
	return authors, nil
}
