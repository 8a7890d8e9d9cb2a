package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/Randazzz/LibraryAPI/library/internal/model"
)

func (s *Service) Register(ctx context.Context, req model.UserCreateRequest) (model.User, error) {
	return s.createUser(ctx, req, model.RoleReader, false)
}

// CreateSuperuser creates an admin with the superuser flag set.
func (s *Service) CreateSuperuser(ctx context.Context, req model.UserCreateRequest) (model.User, error) {
	return s.createUser(ctx, req, model.RoleAdmin, true)
}

func (s *Service) createUser(ctx context.Context, req model.UserCreateRequest, role model.Role, superuser bool) (model.User, error) {
	hash, err := s.creds.HashPassword(req.Password)
	if err != nil {
		return model.User{}, err
	}
	return s.repo.CreateUser(ctx, model.User{
		ID:             uuid.New(),
		Email:          req.Email,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		HashedPassword: hash,
		Role:           role,
		IsSuperuser:    superuser,
	})
}

func (s *Service) GetUser(ctx context.Context, id uuid.UUID) (model.User, error) {
	return s.repo.GetUser(ctx, id)
}

func (s *Service) ListUsers(ctx context.Context, paging model.Paging) ([]model.User, error) {
	return s.repo.ListUsers(ctx, paging)
}

// UpdateUser applies the fields present in req. A null on a required field is ignored.
func (s *Service) UpdateUser(ctx context.Context, id uuid.UUID, req model.UserUpdateRequest) (model.User, error) {
	user, err := s.repo.GetUser(ctx, id)
	if err != nil {
		return model.User{}, err
	}
	changed := false
	if req.Email.Present() {
		user.Email = req.Email.Value
		changed = true
	}
	if req.FirstName.Present() {
		user.FirstName = req.FirstName.Value
		changed = true
	}
	if req.LastName.Present() {
		user.LastName = req.LastName.Value
		changed = true
	}
	if !changed {
		return user, nil
	}
	return s.repo.UpdateUser(ctx, user)
}

func (s *Service) ChangeRole(ctx context.Context, id uuid.UUID, role model.Role) (model.User, error) {
	return s.repo.UpdateUserRole(ctx, id, role)
}

// ActiveUsers ranks users by the number of loans they ever made.
func (s *Service) ActiveUsers(ctx context.Context, paging model.Paging) ([]model.ActiveUser, error) {
	key := fmt.Sprintf("active-users:%d:%d", paging.Limit, paging.Offset)
	return s.activeUsers.GetOrLoad(key, func() ([]model.ActiveUser, error) {
		return s.repo.ActiveUsers(ctx, paging)
	})
}
