package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/Randazzz/LibraryAPI/library/internal/errs"
	"github.com/Randazzz/LibraryAPI/library/internal/model"
	"github.com/Randazzz/LibraryAPI/pkg/auth"
)

func (s *Service) Login(ctx context.Context, req model.UserLoginRequest) (model.TokenPair, error) {
	user, err := s.repo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			return model.TokenPair{}, errs.ErrInvalidCredentials
		}
		return model.TokenPair{}, err
	}
	if !s.creds.VerifyPassword(user.HashedPassword, req.Password) {
		return model.TokenPair{}, errs.ErrInvalidCredentials
	}

	access, err := s.creds.Issue(user.ID.String(), auth.AccessToken)
	if err != nil {
		return model.TokenPair{}, err
	}
	refresh, err := s.creds.Issue(user.ID.String(), auth.RefreshToken)
	if err != nil {
		return model.TokenPair{}, err
	}
	return model.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// Refresh exchanges a refresh token for a new access token.
func (s *Service) Refresh(ctx context.Context, refreshToken string) (model.AccessToken, error) {
	identity, err := s.Identify(ctx, refreshToken, auth.RefreshToken)
	if err != nil {
		return model.AccessToken{}, err
	}
	access, err := s.creds.Issue(identity.ID.String(), auth.AccessToken)
	if err != nil {
		return model.AccessToken{}, err
	}
	return model.AccessToken{AccessToken: access}, nil
}

// Identify resolves a bearer token of type typ to the current state of its user.
func (s *Service) Identify(ctx context.Context, token string, typ auth.TokenType) (model.Identity, error) {
	subject, err := s.creds.Parse(token, typ)
	if err != nil {
		var typeErr *auth.TokenTypeError
		if errors.As(err, &typeErr) {
			return model.Identity{}, errs.InvalidTokenType(string(typeErr.Got), string(typeErr.Want))
		}
		return model.Identity{}, errs.ErrInvalidToken
	}
	id, err := uuid.Parse(subject)
	if err != nil {
		return model.Identity{}, errs.ErrInvalidToken
	}
	user, err := s.repo.GetUser(ctx, id)
	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			return model.Identity{}, errs.ErrInvalidToken
		}
		return model.Identity{}, err
	}
	return user.Identity(), nil
}
