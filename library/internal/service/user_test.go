package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/Randazzz/LibraryAPI/library/internal/errs"
	"github.com/Randazzz/LibraryAPI/library/internal/model"
	"github.com/Randazzz/LibraryAPI/library/internal/service"
	"github.com/Randazzz/LibraryAPI/pkg/auth"
	"github.com/Randazzz/LibraryAPI/pkg/cache"
)

func TestService_Register(t *testing.T) {
	t.Parallel()
	svc, repo := newTestService(t)
	req := model.UserCreateRequest{Email: "reader@mail.com", FirstName: "Ann", LastName: "Lee", Password: "Passw0rd!"}

	repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u model.User) (model.User, error) {
			require.Equal(t, model.RoleReader, u.Role)
			require.False(t, u.IsSuperuser)
			require.NotEmpty(t, u.ID)
			require.NotEqual(t, []byte(req.Password), u.HashedPassword)
			require.True(t, newTestCredentials().VerifyPassword(u.HashedPassword, req.Password))
			return u, nil
		})

	got, err := svc.Register(context.Background(), req)
	require.NoError(t, err)
	require.Equal(t, req.Email, got.Email)
}

func TestService_CreateSuperuser(t *testing.T) {
	t.Parallel()
	svc, repo := newTestService(t)
	repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u model.User) (model.User, error) {
			return u, nil
		})

	got, err := svc.CreateSuperuser(context.Background(), model.UserCreateRequest{Email: "root@mail.com", Password: "Passw0rd!"})
	require.NoError(t, err)
	require.Equal(t, model.RoleAdmin, got.Role)
	require.True(t, got.IsSuperuser)
}

func TestService_UpdateUser(t *testing.T) {
	t.Parallel()
	current := model.User{ID: readerID, Email: "a@mail.com", FirstName: "Ann", LastName: "Lee", Role: model.RoleReader}

	t.Run("present fields only", func(t *testing.T) {
		t.Parallel()
		svc, repo := newTestService(t)
		updated := current
		updated.FirstName = "Anna"
		repo.EXPECT().GetUser(gomock.Any(), readerID).Return(current, nil)
		repo.EXPECT().UpdateUser(gomock.Any(), updated).Return(updated, nil)

		got, err := svc.UpdateUser(context.Background(), readerID, model.UserUpdateRequest{
			FirstName: model.Some("Anna"),
			LastName:  model.Null[string](),
		})
		require.NoError(t, err)
		require.Equal(t, updated, got)
	})
	t.Run("nothing to change", func(t *testing.T) {
		t.Parallel()
		svc, repo := newTestService(t)
		repo.EXPECT().GetUser(gomock.Any(), readerID).Return(current, nil)

		got, err := svc.UpdateUser(context.Background(), readerID, model.UserUpdateRequest{})
		require.NoError(t, err)
		require.Equal(t, current, got)
	})
}

func TestService_Login(t *testing.T) {
	t.Parallel()
	hash, err := newTestCredentials().HashPassword("Passw0rd!")
	require.NoError(t, err)
	user := model.User{ID: readerID, Email: "a@mail.com", HashedPassword: hash, Role: model.RoleReader}

	tests := []struct {
		name     string
		password string
		user     model.User
		repoErr  error
		wantErr  error
	}{
		{name: "ok", password: "Passw0rd!", user: user},
		{name: "wrong password", password: "wrong", user: user, wantErr: errs.ErrInvalidCredentials},
		{name: "unknown email", password: "Passw0rd!", repoErr: errs.ErrUserNotFound, wantErr: errs.ErrInvalidCredentials},
		{name: "database down", password: "Passw0rd!", repoErr: errs.ErrDatabaseConnection, wantErr: errs.ErrDatabaseUnavailable},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc, repo := newTestService(t)
			repo.EXPECT().GetUserByEmail(gomock.Any(), "a@mail.com").Return(tt.user, tt.repoErr)

			pair, err := svc.Login(context.Background(), model.UserLoginRequest{Email: "a@mail.com", Password: tt.password})
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)

			sub, err := newTestCredentials().Parse(pair.AccessToken, auth.AccessToken)
			require.NoError(t, err)
			require.Equal(t, readerID.String(), sub)
			_, err = newTestCredentials().Parse(pair.RefreshToken, auth.RefreshToken)
			require.NoError(t, err)
		})
	}
}

func TestService_Identify(t *testing.T) {
	t.Parallel()
	creds := newTestCredentials()
	access, err := creds.Issue(readerID.String(), auth.AccessToken)
	require.NoError(t, err)
	refresh, err := creds.Issue(readerID.String(), auth.RefreshToken)
	require.NoError(t, err)
	foreign, err := creds.Issue("not-a-uuid", auth.AccessToken)
	require.NoError(t, err)

	t.Run("access token", func(t *testing.T) {
		t.Parallel()
		svc, repo := newTestService(t)
		repo.EXPECT().GetUser(gomock.Any(), readerID).
			Return(model.User{ID: readerID, Email: "a@mail.com", Role: model.RoleAdmin, IsSuperuser: true}, nil)

		id, err := svc.Identify(context.Background(), access, auth.AccessToken)
		require.NoError(t, err)
		require.Equal(t, model.Identity{ID: readerID, Email: "a@mail.com", Role: model.RoleAdmin, IsSuperuser: true}, id)
	})
	t.Run("refresh token used as access", func(t *testing.T) {
		t.Parallel()
		svc, _ := newTestService(t)
		_, err := svc.Identify(context.Background(), refresh, auth.AccessToken)
		require.ErrorIs(t, err, errs.ErrUnauthorized)
		require.Equal(t, "Invalid token type 'refresh' expected 'access'", err.Error())
	})
	t.Run("access token used for refresh", func(t *testing.T) {
		t.Parallel()
		svc, _ := newTestService(t)
		_, err := svc.Refresh(context.Background(), access)
		require.ErrorIs(t, err, errs.ErrUnauthorized)
		require.Equal(t, "Invalid token type 'access' expected 'refresh'", err.Error())
	})
	t.Run("garbage", func(t *testing.T) {
		t.Parallel()
		svc, _ := newTestService(t)
		_, err := svc.Identify(context.Background(), "garbage", auth.AccessToken)
		require.ErrorIs(t, err, errs.ErrInvalidToken)
	})
	t.Run("subject is not a user id", func(t *testing.T) {
		t.Parallel()
		svc, _ := newTestService(t)
		_, err := svc.Identify(context.Background(), foreign, auth.AccessToken)
		require.ErrorIs(t, err, errs.ErrInvalidToken)
	})
	t.Run("user gone", func(t *testing.T) {
		t.Parallel()
		svc, repo := newTestService(t)
		repo.EXPECT().GetUser(gomock.Any(), readerID).Return(model.User{}, errs.ErrUserNotFound)
		_, err := svc.Identify(context.Background(), access, auth.AccessToken)
		require.ErrorIs(t, err, errs.ErrInvalidToken)
	})
	t.Run("refresh issues a new access token", func(t *testing.T) {
		t.Parallel()
		svc, repo := newTestService(t)
		repo.EXPECT().GetUser(gomock.Any(), readerID).Return(model.User{ID: readerID}, nil)

		got, err := svc.Refresh(context.Background(), refresh)
		require.NoError(t, err)
		sub, err := creds.Parse(got.AccessToken, auth.AccessToken)
		require.NoError(t, err)
		require.Equal(t, readerID.String(), sub)
	})
}

func TestAccessPredicates(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name          string
		identity      model.Identity
		wantAdmin     error
		wantSuperuser error
	}{
		{
			name:          "reader",
			identity:      model.Identity{Role: model.RoleReader},
			wantAdmin:     errs.ErrPermissionDenied,
			wantSuperuser: errs.ErrPermissionDenied,
		},
		{
			name:          "admin",
			identity:      model.Identity{Role: model.RoleAdmin},
			wantSuperuser: errs.ErrPermissionDenied,
		},
		{
			name:      "superuser reader",
			identity:  model.Identity{Role: model.RoleReader, IsSuperuser: true},
			wantAdmin: errs.ErrPermissionDenied,
		},
		{
			name:     "superuser admin",
			identity: model.Identity{Role: model.RoleAdmin, IsSuperuser: true},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if tt.wantAdmin == nil {
				require.NoError(t, service.AdminRequired(tt.identity))
			} else {
				require.ErrorIs(t, service.AdminRequired(tt.identity), tt.wantAdmin)
			}
			if tt.wantSuperuser == nil {
				require.NoError(t, service.SuperuserRequired(tt.identity))
			} else {
				require.ErrorIs(t, service.SuperuserRequired(tt.identity), tt.wantSuperuser)
			}
		})
	}
}

func TestService_StatsCached(t *testing.T) {
	t.Parallel()
	cfg := cache.Config{Enable: true, TTL: time.Minute, MaxItems: 100}
	popular, err := cache.New[[]model.PopularBook](cfg)
	require.NoError(t, err)
	active, err := cache.New[[]model.ActiveUser](cfg)
	require.NoError(t, err)

	svc, repo := newTestService(t, service.WithStatsCache(popular, active))
	paging := model.Paging{Limit: 10}
	repo.EXPECT().PopularBooks(gomock.Any(), paging).Return([]model.PopularBook{{ID: 1, LoanCount: 3}}, nil).Times(1)
	repo.EXPECT().ActiveUsers(gomock.Any(), paging).Return([]model.ActiveUser{{ID: readerID, LoanCount: 2}}, nil).Times(1)

	for i := 0; i < 2; i++ {
		books, err := svc.PopularBooks(context.Background(), paging)
		require.NoError(t, err)
		require.Equal(t, 3, books[0].LoanCount)

		users, err := svc.ActiveUsers(context.Background(), paging)
		require.NoError(t, err)
		require.Equal(t, 2, users[0].LoanCount)
	}
}
