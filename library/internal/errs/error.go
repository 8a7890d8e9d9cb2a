package errs

import (
	"errors"
	"fmt"
)

// Kinds. Every domain error unwraps to exactly one of them.
var (
	ErrNotFound            = errors.New("not found")
	ErrAlreadyExists       = errors.New("already exists")
	ErrConflict            = errors.New("conflict")
	ErrPermissionDenied    = errors.New("permission denied")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrLimitExceeded       = errors.New("limit exceeded")
	ErrDatabaseUnavailable = errors.New("database unavailable")
)

// Error is a domain error with a fixed client facing message.
type Error struct {
	kind error
	msg  string
}

func New(kind error, msg string) *Error {
	return &Error{kind: kind, msg: msg}
}

func (e *Error) Error() string { return e.msg }

func (e *Error) Unwrap() error { return e.kind }

func (e *Error) Kind() error { return e.kind }

var (
	ErrUserNotFound     = New(ErrNotFound, "User not found")
	ErrAuthorNotFound   = New(ErrNotFound, "Author not found")
	ErrGenreNotFound    = New(ErrNotFound, "Genre not found")
	ErrBookNotFound     = New(ErrNotFound, "Book not found")
	ErrBookLoanNotFound = New(ErrNotFound, "Book loan not found")
	ErrBookCopyNotFound = New(ErrNotFound, "No available copies of this book")

	ErrUserAlreadyExists     = New(ErrAlreadyExists, "User with this email already exists")
	ErrAuthorAlreadyExists   = New(ErrAlreadyExists, "Author with this name already exists")
	ErrBookAlreadyExists     = New(ErrAlreadyExists, "Book with this title already exists")
	ErrGenreAlreadyExists    = New(ErrAlreadyExists, "Genre with this name already exists")
	ErrBookLoanAlreadyExists = New(ErrAlreadyExists, "This book is already lent to the user")

	ErrBookHasLoans = New(ErrConflict, "Book has loan records and cannot be deleted")

	ErrPermissionDeniedAccess = New(ErrPermissionDenied, "Permission denied")

	ErrInvalidToken       = New(ErrUnauthorized, "Invalid token")
	ErrInvalidCredentials = New(ErrUnauthorized, "Invalid credentials")

	ErrBookLimitExceeded = New(ErrLimitExceeded, "Book loan limit exceeded")

	ErrDatabaseConnection = New(ErrDatabaseUnavailable, "Database connection error")
)

func InvalidTokenType(got, want string) *Error {
	return New(ErrUnauthorized, fmt.Sprintf("Invalid token type '%s' expected '%s'", got, want))
}
