package repository

import (
	"context"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/Randazzz/LibraryAPI/library/internal/model"
)

//go:generate go run github.com/golang/mock/mockgen -destination=mocks/mock.go -package=mock_repository github.com/Randazzz/LibraryAPI/library/internal/repository Repository

type UserRepository interface {
	CreateUser(ctx context.Context, user model.User) (model.User, error)
	GetUser(ctx context.Context, id uuid.UUID) (model.User, error)
	GetUserByEmail(ctx context.Context, email string) (model.User, error)
	LockUser(ctx context.Context, id uuid.UUID) (model.User, error)
	ListUsers(ctx context.Context, paging model.Paging) ([]model.User, error)
	UpdateUser(ctx context.Context, user model.User) (model.User, error)
	UpdateUserRole(ctx context.Context, id uuid.UUID, role model.Role) (model.User, error)
}

type AuthorRepository interface {
	CreateAuthor(ctx context.Context, author model.Author) (model.Author, error)
	GetAuthor(ctx context.Context, id int) (model.Author, error)
	GetAuthorsByIDs(ctx context.Context, ids []int) ([]model.Author, error)
	ListAuthors(ctx context.Context, paging model.Paging) ([]model.Author, error)
	UpdateAuthor(ctx context.Context, author model.Author) (model.Author, error)
	DeleteAuthor(ctx context.Context, id int) error
}

type GenreRepository interface {
	CreateGenre(ctx context.Context, genre model.Genre) (model.Genre, error)
	GetGenresByIDs(ctx context.Context, ids []int) ([]model.Genre, error)
	ListGenres(ctx context.Context, paging model.Paging) ([]model.Genre, error)
	DeleteGenre(ctx context.Context, id int) error
}

type BookRepository interface {
	CreateBook(ctx context.Context, book model.Book) (model.Book, error)
	GetBook(ctx context.Context, id int) (model.Book, error)
	LockBook(ctx context.Context, id int) (model.Book, error)
	ListBooks(ctx context.Context, filter model.BookFilter, paging model.Paging) ([]model.Book, error)
	UpdateBook(ctx context.Context, book model.Book) error
	ReplaceBookAuthors(ctx context.Context, bookID int, authorIDs []int) error
	ReplaceBookGenres(ctx context.Context, bookID int, genreIDs []int) error
	DeleteBook(ctx context.Context, id int) error
	DecrementAvailableCopies(ctx context.Context, bookID int) error
	IncrementAvailableCopies(ctx context.Context, bookID int) error
}

type LoanRepository interface {
	CreateLoan(ctx context.Context, loan model.BookLoan) (model.BookLoan, error)
	CountUserLoans(ctx context.Context, userID uuid.UUID) (int, error)
	LockLoan(ctx context.Context, id int) (model.BookLoan, error)
	MarkLoanReturned(ctx context.Context, id int, returnedAt time.Time) (model.BookLoan, error)
	ListUserLoans(ctx context.Context, userID uuid.UUID, paging model.Paging) ([]model.BookLoan, error)
}

type StatsRepository interface {
	PopularBooks(ctx context.Context, paging model.Paging) ([]model.PopularBook, error)
	ActiveUsers(ctx context.Context, paging model.Paging) ([]model.ActiveUser, error)
}

type Repository interface {
	UserRepository
	AuthorRepository
	GenreRepository
	BookRepository
	LoanRepository
	StatsRepository

	// InTx runs fn in one READ COMMITTED transaction. The repo passed to fn is bound
	// to that transaction; fn returning an error rolls everything back.
	InTx(ctx context.Context, fn func(repo Repository) error) error
}

// Querier is satisfied by both *pgxpool.Pool and pgx.Tx.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type repository struct {
	pool *pgxpool.Pool
	db   Querier
	inTx bool
	log  *zap.Logger
}

func NewRepository(pool *pgxpool.Pool, log *zap.Logger) (*repository, error) {
	return &repository{
		pool: pool,
		db:   pool,
		log:  log.Named("repo"),
	}, nil
}

const (
	usersTableName       = `users`
	authorsTableName     = `authors`
	genresTableName      = `genres`
	booksTableName       = `books`
	bookAuthorsTableName = `book_author_association`
	bookGenresTableName  = `book_genre_association`
	bookLoansTableName   = `book_loans`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func (r *repository) InTx(ctx context.Context, fn func(repo Repository) error) error {
	if r.inTx {
		return fn(r)
	}
	err := pgx.BeginTxFunc(ctx, r.pool, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, func(tx pgx.Tx) error {
		return fn(&repository{pool: r.pool, db: tx, inTx: true, log: r.log})
	})
	return r.dbErr("InTx", err)
}

func collectOne[T any](ctx context.Context, db Querier, builder sq.Sqlizer) (T, error) {
	var zero T
	query, args, err := builder.ToSql()
	if err != nil {
		return zero, err
	}
	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return zero, err
	}
	return pgx.CollectOneRow(rows, pgx.RowToStructByName[T])
}

func collectAll[T any](ctx context.Context, db Querier, builder sq.Sqlizer) ([]T, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[T])
}

func (r *repository) exec(ctx context.Context, builder sq.Sqlizer) (int64, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return 0, err
	}
	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func page(b sq.SelectBuilder, paging model.Paging) sq.SelectBuilder {
	return b.Limit(uint64(paging.Limit)).Offset(uint64(paging.Offset))
}

func returning(columns []string) string {
	return "returning " + strings.Join(columns, ", ")
}
