package model

import "github.com/google/uuid"

type UserCreateRequest struct {
	Email     string `json:"email" validate:"required,email,max=64"`
	FirstName string `json:"first_name" validate:"required,max=16"`
	LastName  string `json:"last_name" validate:"required,max=16"`
	Password  string `json:"password" validate:"required,password"`
}

type UserLoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UserUpdateRequest struct {
	Email     Optional[string] `json:"email" swaggertype:"string" validate:"omitempty,email,max=64"`
	FirstName Optional[string] `json:"first_name" swaggertype:"string" validate:"omitempty,min=1,max=16"`
	LastName  Optional[string] `json:"last_name" swaggertype:"string" validate:"omitempty,min=1,max=16"`
}

type ChangeRoleRequest struct {
	Role Role `json:"role" validate:"required,oneof=reader admin"`
}

type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type AccessToken struct {
	AccessToken string `json:"access_token"`
}

type AuthorCreateRequest struct {
	Name      string  `json:"name" validate:"required,max=32"`
	Biography *string `json:"biography" validate:"omitempty,max=1024"`
	BirthDate *Date   `json:"birth_date" swaggertype:"string" example:"2006-01-02" validate:"required"`
}

type AuthorUpdateRequest struct {
	Name      Optional[string] `json:"name" swaggertype:"string" validate:"omitempty,min=1,max=32"`
	Biography Optional[string] `json:"biography" swaggertype:"string" validate:"omitempty,max=1024"`
	BirthDate Optional[Date]   `json:"birth_date" swaggertype:"string" example:"2006-01-02"`
}

type GenreCreateRequest struct {
	Name string `json:"name" validate:"required,max=16"`
}

type BookCreateRequest struct {
	Title           string  `json:"title" validate:"required,max=64"`
	Description     *string `json:"description" validate:"omitempty,max=256"`
	PublishedAt     *Date   `json:"published_at" swaggertype:"string" example:"2006-01-02" validate:"required"`
	AvailableCopies int     `json:"available_copies" validate:"min=0"`
	AuthorIDs       IDList  `json:"author_ids" swaggertype:"array,integer" validate:"required,min=1,dive,gt=0"`
	GenreIDs        IDList  `json:"genre_ids" swaggertype:"array,integer" validate:"required,min=1,dive,gt=0"`
}

type BookUpdateRequest struct {
	Title           Optional[string] `json:"title" swaggertype:"string" validate:"omitempty,min=1,max=64"`
	Description     Optional[string] `json:"description" swaggertype:"string" validate:"omitempty,max=256"`
	PublishedAt     Optional[Date]   `json:"published_at" swaggertype:"string" example:"2006-01-02"`
	AvailableCopies Optional[int]    `json:"available_copies" swaggertype:"integer" validate:"omitempty,min=0"`
	AuthorIDs       IDList           `json:"author_ids" swaggertype:"array,integer" validate:"omitempty,dive,gt=0"`
	GenreIDs        IDList           `json:"genre_ids" swaggertype:"array,integer" validate:"omitempty,dive,gt=0"`
}

type BookLoanCreateRequest struct {
	BookID int       `json:"book_id" validate:"required,gt=0"`
	UserID uuid.UUID `json:"user_id" validate:"required"`
}

// BookListRequest is bound from the query string of GET /books.
type BookListRequest struct {
	Paging
	Title     string `query:"title" validate:"max=64"`
	AuthorIDs []int  `query:"author_ids" validate:"dive,gt=0"`
	GenreIDs  []int  `query:"genre_ids" validate:"dive,gt=0"`
}
