package model

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleReader Role = "reader"
	RoleAdmin  Role = "admin"
)

func (r Role) Valid() bool {
	return r == RoleReader || r == RoleAdmin
}

type User struct {
	ID             uuid.UUID `json:"id" db:"id"`
	Email          string    `json:"email" db:"email"`
	FirstName      string    `json:"first_name" db:"first_name"`
	LastName       string    `json:"last_name" db:"last_name"`
	HashedPassword []byte    `json:"-" db:"hashed_password"`
	Role           Role      `json:"role" db:"role"`
	IsSuperuser    bool      `json:"is_superuser" db:"is_superuser"`
}

// Identity is the caller resolved from a bearer token.
type Identity struct {
	ID          uuid.UUID
	Email       string
	Role        Role
	IsSuperuser bool
}

func (u User) Identity() Identity {
	return Identity{ID: u.ID, Email: u.Email, Role: u.Role, IsSuperuser: u.IsSuperuser}
}

type Author struct {
	ID        int     `json:"id" db:"id"`
	Name      string  `json:"name" db:"name"`
	Biography *string `json:"biography" db:"biography"`
	BirthDate Date    `json:"birth_date" db:"birth_date"`
}

type Genre struct {
	ID   int    `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

type Book struct {
	ID              int      `json:"id" db:"id"`
	Title           string   `json:"title" db:"title"`
	Description     *string  `json:"description" db:"description"`
	PublishedAt     Date     `json:"published_at" db:"published_at"`
	AvailableCopies int      `json:"available_copies" db:"available_copies"`
	Authors         []Author `json:"authors" db:"-"`
	Genres          []Genre  `json:"genres" db:"-"`
}

type BookLoan struct {
	ID         int       `json:"id" db:"id"`
	BookID     int       `json:"book_id" db:"book_id"`
	UserID     uuid.UUID `json:"user_id" db:"user_id"`
	LoanDate   time.Time `json:"loan_date" db:"loan_date"`
	ReturnDate time.Time `json:"return_date" db:"return_date"`
	Returned   bool      `json:"returned" db:"returned"`
}

type PopularBook struct {
	ID        int    `json:"id" db:"id"`
	Title     string `json:"title" db:"title"`
	LoanCount int    `json:"loan_count" db:"loan_count"`
}

type ActiveUser struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Email     string    `json:"email" db:"email"`
	FirstName string    `json:"first_name" db:"first_name"`
	LastName  string    `json:"last_name" db:"last_name"`
	LoanCount int       `json:"loan_count" db:"loan_count"`
}

// BookFilter narrows the book list. Empty fields do not filter.
type BookFilter struct {
	Title     string
	AuthorIDs []int
	GenreIDs  []int
}

type Paging struct {
	Limit  int `query:"limit" validate:"min=1,max=100"`
	Offset int `query:"offset" validate:"min=0"`
}

const (
	DefaultLimit = 10
	MaxLimit     = 100
)

func DefaultPaging() Paging {
	return Paging{Limit: DefaultLimit}
}

type MessageResponse struct {
	Message string `json:"message"`
}

type LoanEventType string

const (
	LoanEventLent     LoanEventType = "lent"
	LoanEventReturned LoanEventType = "returned"
)

// LoanEvent is published after a lend or return has been committed.
type LoanEvent struct {
	Type   LoanEventType `json:"type"`
	LoanID int           `json:"loan_id"`
	BookID int           `json:"book_id"`
	UserID uuid.UUID     `json:"user_id"`
	At     time.Time     `json:"at"`
}
