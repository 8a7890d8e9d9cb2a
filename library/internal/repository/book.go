package repository

import (
	"context"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"golang.org/x/sync/errgroup"

	"github.com/Randazzz/LibraryAPI/library/internal/errs"
	"github.com/Randazzz/LibraryAPI/library/internal/model"
)

var bookColumns = []string{"id", "title", "description", "published_at", "available_copies"}

type bookAuthor struct {
	BookID int `db:"book_id"`
	model.Author
}

type bookGenre struct {
	BookID int `db:"book_id"`
	model.Genre
}

// CreateBook inserts the book row only, associations are set with ReplaceBookAuthors/Genres.
func (r *repository) CreateBook(ctx context.Context, book model.Book) (model.Book, error) {
	q := qb.Insert(booksTableName).
		Columns("title", "description", "published_at", "available_copies").
		Values(book.Title, book.Description, book.PublishedAt, book.AvailableCopies).
		Suffix(returning(bookColumns))

	created, err := collectOne[model.Book](ctx, r.db, q)
	if err != nil {
		if isUniqueViolation(err) {
			return model.Book{}, errs.ErrBookAlreadyExists
		}
		return model.Book{}, r.dbErr("CreateBook", err)
	}
	return created, nil
}

// GetBook returns the book with its authors and genres.
func (r *repository) GetBook(ctx context.Context, id int) (model.Book, error) {
	q := qb.Select(bookColumns...).
		From(booksTableName).
		Where(sq.Eq{"id": id})

	book, err := collectOne[model.Book](ctx, r.db, q)
	if err != nil {
		return model.Book{}, r.notFound("GetBook", err, errs.ErrBookNotFound)
	}
	books := []model.Book{book}
	if err := r.hydrate(ctx, books); err != nil {
		return model.Book{}, err
	}
	return books[0], nil
}

// LockBook selects the bare book row FOR UPDATE. Only meaningful inside InTx.
func (r *repository) LockBook(ctx context.Context, id int) (model.Book, error) {
	q := qb.Select(bookColumns...).
		From(booksTableName).
		Where(sq.Eq{"id": id}).
		Suffix("for update")

	book, err := collectOne[model.Book](ctx, r.db, q)
	if err != nil {
		return model.Book{}, r.notFound("LockBook", err, errs.ErrBookNotFound)
	}
	return book, nil
}

func (r *repository) ListBooks(ctx context.Context, filter model.BookFilter, paging model.Paging) ([]model.Book, error) {
	q := qb.Select(bookColumns...).
		From(booksTableName).
		OrderBy("id")

	if filter.Title != "" {
		q = q.Where(sq.ILike{"title": "%" + escapeLike(filter.Title) + "%"})
	}
	if len(filter.AuthorIDs) > 0 {
		q = q.Where(sq.Expr("id in (select book_id from "+bookAuthorsTableName+" where author_id = any(?))", filter.AuthorIDs))
	}
	if len(filter.GenreIDs) > 0 {
		q = q.Where(sq.Expr("id in (select book_id from "+bookGenresTableName+" where genre_id = any(?))", filter.GenreIDs))
	}

	books, err := collectAll[model.Book](ctx, r.db, page(q, paging))
	if err != nil {
		return nil, r.dbErr("ListBooks", err)
	}
	if err := r.hydrate(ctx, books); err != nil {
		return nil, err
	}
	return books, nil
}

// UpdateBook writes the scalar columns of book.
func (r *repository) UpdateBook(ctx context.Context, book model.Book) error {
	q := qb.Update(booksTableName).
		SetMap(map[string]interface{}{
			"title":            book.Title,
			"description":      book.Description,
			"published_at":     book.PublishedAt,
			"available_copies": book.AvailableCopies,
		}).
		Where(sq.Eq{"id": book.ID})

	n, err := r.exec(ctx, q)
	if err != nil {
		if isUniqueViolation(err) {
			return errs.ErrBookAlreadyExists
		}
		return r.dbErr("UpdateBook", err)
	}
	if n == 0 {
		return errs.ErrBookNotFound
	}
	return nil
}

func (r *repository) ReplaceBookAuthors(ctx context.Context, bookID int, authorIDs []int) error {
	return r.replaceAssociation(ctx, bookAuthorsTableName, "author_id", bookID, authorIDs, errs.ErrAuthorNotFound)
}

func (r *repository) ReplaceBookGenres(ctx context.Context, bookID int, genreIDs []int) error {
	return r.replaceAssociation(ctx, bookGenresTableName, "genre_id", bookID, genreIDs, errs.ErrGenreNotFound)
}

// replaceAssociation swaps the whole id set linked to bookID. A dangling id fails with missing.
func (r *repository) replaceAssociation(ctx context.Context, table, column string, bookID int, ids []int, missing error) error {
	if _, err := r.exec(ctx, qb.Delete(table).Where(sq.Eq{"book_id": bookID})); err != nil {
		return r.dbErr("delete "+table, err)
	}
	if len(ids) == 0 {
		return nil
	}
	q := qb.Insert(table).Columns("book_id", column).Suffix("on conflict do nothing")
	for _, id := range ids {
		q = q.Values(bookID, id)
	}
	if _, err := r.exec(ctx, q); err != nil {
		if isForeignKeyViolation(err) {
			return missing
		}
		return r.dbErr("insert "+table, err)
	}
	return nil
}

// DeleteBook removes the book and its associations. A book referenced by loans is kept.
func (r *repository) DeleteBook(ctx context.Context, id int) error {
	n, err := r.exec(ctx, qb.Delete(booksTableName).Where(sq.Eq{"id": id}))
	if err != nil {
		if isForeignKeyViolation(err) {
			return errs.ErrBookHasLoans
		}
		return r.dbErr("DeleteBook", err)
	}
	if n == 0 {
		return errs.ErrBookNotFound
	}
	return nil
}

// DecrementAvailableCopies takes one copy, failing with errs.ErrBookCopyNotFound when none is left.
func (r *repository) DecrementAvailableCopies(ctx context.Context, bookID int) error {
	q := qb.Update(booksTableName).
		Set("available_copies", sq.Expr("available_copies - 1")).
		Where(sq.Eq{"id": bookID}).
		Where(sq.Gt{"available_copies": 0})

	n, err := r.exec(ctx, q)
	if err != nil {
		return r.dbErr("DecrementAvailableCopies", err)
	}
	if n == 0 {
		return errs.ErrBookCopyNotFound
	}
	return nil
}

func (r *repository) IncrementAvailableCopies(ctx context.Context, bookID int) error {
	q := qb.Update(booksTableName).
		Set("available_copies", sq.Expr("available_copies + 1")).
		Where(sq.Eq{"id": bookID})

	n, err := r.exec(ctx, q)
	if err != nil {
		return r.dbErr("IncrementAvailableCopies", err)
	}
	if n == 0 {
		return errs.ErrBookNotFound
	}
	return nil
}

// hydrate fills Authors and Genres of books in place. The two lookups run
// in parallel on the pool; a transaction connection serves one query at a time.
func (r *repository) hydrate(ctx context.Context, books []model.Book) error {
	if len(books) == 0 {
		return nil
	}
	ids := make([]int, len(books))
	for i := range books {
		ids[i] = books[i].ID
	}

	var (
		authors []bookAuthor
		genres  []bookGenre
	)
	loadAuthors := func(ctx context.Context) (err error) {
		q := qb.Select("ba.book_id", "a.id", "a.name", "a.biography", "a.birth_date").
			From(authorsTableName + " a").
			Join(bookAuthorsTableName + " ba on ba.author_id = a.id").
			Where(sq.Eq{"ba.book_id": ids}).
			OrderBy("a.id")
		authors, err = collectAll[bookAuthor](ctx, r.db, q)
		return r.dbErr("load authors", err)
	}
	loadGenres := func(ctx context.Context) (err error) {
		q := qb.Select("bg.book_id", "g.id", "g.name").
			From(genresTableName + " g").
			Join(bookGenresTableName + " bg on bg.genre_id = g.id").
			Where(sq.Eq{"bg.book_id": ids}).
			OrderBy("g.id")
		genres, err = collectAll[bookGenre](ctx, r.db, q)
		return r.dbErr("load genres", err)
	}

	if r.inTx {
		if err := loadAuthors(ctx); err != nil {
			return err
		}
		if err := loadGenres(ctx); err != nil {
			return err
		}
	} else {
		g, gCtx := errgroup.WithContext(ctx)
		g.Go(func() error { return loadAuthors(gCtx) })
		g.Go(func() error { return loadGenres(gCtx) })
		if err := g.Wait(); err != nil {
			return err
		}
	}

	byID := make(map[int]*model.Book, len(books))
	for i := range books {
		books[i].Authors = []model.Author{}
		books[i].Genres = []model.Genre{}
		byID[books[i].ID] = &books[i]
	}
	for _, a := range authors {
		if b, ok := byID[a.BookID]; ok {
			b.Authors = append(b.Authors, a.Author)
		}
	}
	for _, g := range genres {
		if b, ok := byID[g.BookID]; ok {
			b.Genres = append(b.Genres, g.Genre)
		}
	}
	return nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
