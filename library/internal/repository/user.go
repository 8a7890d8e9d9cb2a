package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/Randazzz/LibraryAPI/library/internal/errs"
	"github.com/Randazzz/LibraryAPI/library/internal/model"
)

var userColumns = []string{"id", "email", "first_name", "last_name", "hashed_password", "role", "is_superuser"}

func (r *repository) CreateUser(ctx context.Context, user model.User) (model.User, error) {
	q := qb.Insert(usersTableName).
		Columns(userColumns...).
		Values(user.ID, user.Email, user.FirstName, user.LastName, user.HashedPassword, user.Role, user.IsSuperuser).
		Suffix(returning(userColumns))

	created, err := collectOne[model.User](ctx, r.db, q)
	if err != nil {
		if isUniqueViolation(err) {
			return model.User{}, errs.ErrUserAlreadyExists
		}
		return model.User{}, r.dbErr("CreateUser", err)
	}
	return created, nil
}

func (r *repository) GetUser(ctx context.Context, id uuid.UUID) (model.User, error) {
	q := qb.Select(userColumns...).
		From(usersTableName).
		Where(sq.Eq{"id": id})

	user, err := collectOne[model.User](ctx, r.db, q)
	if err != nil {
		return model.User{}, r.notFound("GetUser", err, errs.ErrUserNotFound)
	}
	return user, nil
}

func (r *repository) GetUserByEmail(ctx context.Context, email string) (model.User, error) {
	q := qb.Select(userColumns...).
		From(usersTableName).
		Where(sq.Eq{"email": email})

	user, err := collectOne[model.User](ctx, r.db, q)
	if err != nil {
		return model.User{}, r.notFound("GetUserByEmail", err, errs.ErrUserNotFound)
	}
	return user, nil
}

// LockUser selects the user row FOR UPDATE. Only meaningful inside InTx.
func (r *repository) LockUser(ctx context.Context, id uuid.UUID) (model.User, error) {
	q := qb.Select(userColumns...).
		From(usersTableName).
		Where(sq.Eq{"id": id}).
		Suffix("for update")

	user, err := collectOne[model.User](ctx, r.db, q)
	if err != nil {
		return model.User{}, r.notFound("LockUser", err, errs.ErrUserNotFound)
	}
	return user, nil
}

func (r *repository) ListUsers(ctx context.Context, paging model.Paging) ([]model.User, error) {
	q := page(qb.Select(userColumns...).
		From(usersTableName).
		OrderBy("email"), paging)

	users, err := collectAll[model.User](ctx, r.db, q)
	if err != nil {
		return nil, r.dbErr("ListUsers", err)
	}
	return users, nil
}

// UpdateUser writes the profile fields. Role and superuser flag are left alone.
func (r *repository) UpdateUser(ctx context.Context, user model.User) (model.User, error) {
	q := qb.Update(usersTableName).
		SetMap(map[string]interface{}{
			"email":      user.Email,
			"first_name": user.FirstName,
			"last_name":  user.LastName,
		}).
		Where(sq.Eq{"id": user.ID}).
		Suffix(returning(userColumns))

	updated, err := collectOne[model.User](ctx, r.db, q)
	if err != nil {
		if isUniqueViolation(err) {
			return model.User{}, errs.ErrUserAlreadyExists
		}
		return model.User{}, r.notFound("UpdateUser", err, errs.ErrUserNotFound)
	}
	return updated, nil
}

func (r *repository) UpdateUserRole(ctx context.Context, id uuid.UUID, role model.Role) (model.User, error) {
	q := qb.Update(usersTableName).
		Set("role", role).
		Where(sq.Eq{"id": id}).
		Suffix(returning(userColumns))

	updated, err := collectOne[model.User](ctx, r.db, q)
	if err != nil {
		return model.User{}, r.notFound("UpdateUserRole", err, errs.ErrUserNotFound)
	}
	return updated, nil
}
