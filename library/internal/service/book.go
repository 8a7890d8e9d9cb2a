package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/Randazzz/LibraryAPI/library/internal/model"
	libraryRepo "github.com/Randazzz/LibraryAPI/library/internal/repository"
)

// CreateBook resolves authors then genres and stores the book with both associations.
func (s *Service) CreateBook(ctx context.Context, req model.BookCreateRequest) (model.Book, error) {
	var book model.Book
	err := s.repo.InTx(ctx, func(repo libraryRepo.Repository) error {
		authors, err := authorsByIDs(ctx, repo, req.AuthorIDs)
		if err != nil {
			return err
		}
		genres, err := genresByIDs(ctx, repo, req.GenreIDs)
		if err != nil {
			return err
		}

		draft := model.Book{
			Title:           req.Title,
			Description:     req.Description,
			AvailableCopies: req.AvailableCopies,
		}
		if req.PublishedAt != nil {
			draft.PublishedAt = *req.PublishedAt
		}
		created, err := repo.CreateBook(ctx, draft)
		if err != nil {
			return err
		}
		if err := repo.ReplaceBookAuthors(ctx, created.ID, authorIDs(authors)); err != nil {
			return err
		}
		if err := repo.ReplaceBookGenres(ctx, created.ID, genreIDs(genres)); err != nil {
			return err
		}
		created.Authors, created.Genres = authors, genres
		book = created
		return nil
	})
	if err != nil {
		return model.Book{}, err
	}
	return book, nil
}

func (s *Service) GetBook(ctx context.Context, id int) (model.Book, error) {
	return s.repo.GetBook(ctx, id)
}

func (s *Service) ListBooks(ctx context.Context, req model.BookListRequest) ([]model.Book, error) {
	filter := model.BookFilter{
		Title:     req.Title,
		AuthorIDs: model.IDList(req.AuthorIDs).Unique(),
		GenreIDs:  model.IDList(req.GenreIDs).Unique(),
	}
	return s.repo.ListBooks(ctx, filter, req.Paging)
}

// UpdateBook applies a partial update. Non-empty author or genre id lists replace the
// association wholesale; scalar fields change only when present in req.
func (s *Service) UpdateBook(ctx context.Context, id int, req model.BookUpdateRequest) (model.Book, error) {
	var book model.Book
	err := s.repo.InTx(ctx, func(repo libraryRepo.Repository) error {
		current, err := repo.LockBook(ctx, id)
		if err != nil {
			return err
		}
		if len(req.AuthorIDs) > 0 {
			authors, err := authorsByIDs(ctx, repo, req.AuthorIDs)
			if err != nil {
				return err
			}
			if err := repo.ReplaceBookAuthors(ctx, id, authorIDs(authors)); err != nil {
				return err
			}
		}
		if len(req.GenreIDs) > 0 {
			genres, err := genresByIDs(ctx, repo, req.GenreIDs)
			if err != nil {
				return err
			}
			if err := repo.ReplaceBookGenres(ctx, id, genreIDs(genres)); err != nil {
				return err
			}
		}

		if applyBookUpdate(&current, req) {
			if err := repo.UpdateBook(ctx, current); err != nil {
				return err
			}
		}
		book, err = repo.GetBook(ctx, id)
		return err
	})
	if err != nil {
		return model.Book{}, err
	}
	return book, nil
}

// applyBookUpdate reports whether any scalar column changed.
func applyBookUpdate(book *model.Book, req model.BookUpdateRequest) bool {
	changed := false
	if req.Title.Present() {
		book.Title = req.Title.Value
		changed = true
	}
	if req.Description.Null {
		book.Description = nil
		changed = true
	} else if req.Description.Set {
		description := req.Description.Value
		book.Description = &description
		changed = true
	}
	if req.PublishedAt.Present() {
		book.PublishedAt = req.PublishedAt.Value
		changed = true
	}
	if req.AvailableCopies.Present() {
		book.AvailableCopies = req.AvailableCopies.Value
		changed = true
	}
	return changed
}

func (s *Service) DeleteBook(ctx context.Context, id int) error {
	return s.repo.InTx(ctx, func(repo libraryRepo.Repository) error {
		if _, err := repo.LockBook(ctx, id); err != nil {
			return err
		}
		if err := repo.DeleteBook(ctx, id); err != nil {
			return err
		}
		s.log.Debug("book deleted", zap.Int("book_id", id))
		return nil
	})
}

func authorIDs(authors []model.Author) []int {
	ids := make([]int, len(authors))
	for i := range authors {
		ids[i] = authors[i].ID
	}
	return ids
}

func genreIDs(genres []model.Genre) []int {
	ids := make([]int, len(genres))
	for i := range genres {
		ids[i] = genres[i].ID
	}
	return ids
}
