package handler

import (
	"context"

	"github.com/google/uuid"

	"github.com/Randazzz/LibraryAPI/library/internal/model"
	"github.com/Randazzz/LibraryAPI/library/internal/service"
	"github.com/Randazzz/LibraryAPI/pkg/auth"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type LibraryService interface {
	Login(ctx context.Context, req model.UserLoginRequest) (model.TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (model.AccessToken, error)
	Identify(ctx context.Context, token string, typ auth.TokenType) (model.Identity, error)

	Register(ctx context.Context, req model.UserCreateRequest) (model.User, error)
	GetUser(ctx context.Context, id uuid.UUID) (model.User, error)
	ListUsers(ctx context.Context, paging model.Paging) ([]model.User, error)
	UpdateUser(ctx context.Context, id uuid.UUID, req model.UserUpdateRequest) (model.User, error)
	ChangeRole(ctx context.Context, id uuid.UUID, role model.Role) (model.User, error)
	ActiveUsers(ctx context.Context, paging model.Paging) ([]model.ActiveUser, error)

	CreateAuthor(ctx context.Context, req model.AuthorCreateRequest) (model.Author, error)
	ListAuthors(ctx context.Context, paging model.Paging) ([]model.Author, error)
	UpdateAuthor(ctx context.Context, id int, req model.AuthorUpdateRequest) (model.Author, error)
	DeleteAuthor(ctx context.Context, id int) error

	CreateGenre(ctx context.Context, req model.GenreCreateRequest) (model.Genre, error)
	ListGenres(ctx context.Context, paging model.Paging) ([]model.Genre, error)
	DeleteGenre(ctx context.Context, id int) error

	CreateBook(ctx context.Context, req model.BookCreateRequest) (model.Book, error)
	GetBook(ctx context.Context, id int) (model.Book, error)
	ListBooks(ctx context.Context, req model.BookListRequest) ([]model.Book, error)
	UpdateBook(ctx context.Context, id int, req model.BookUpdateRequest) (model.Book, error)
	DeleteBook(ctx context.Context, id int) error

	LendBook(ctx context.Context, req model.BookLoanCreateRequest) (model.BookLoan, error)
	ReturnBook(ctx context.Context, loanID int, userID uuid.UUID) (model.BookLoan, error)
	ListUserLoans(ctx context.Context, userID uuid.UUID, paging model.Paging) ([]model.BookLoan, error)
	PopularBooks(ctx context.Context, paging model.Paging) ([]model.PopularBook, error)
}

var _ LibraryService = (*service.Service)(nil)
