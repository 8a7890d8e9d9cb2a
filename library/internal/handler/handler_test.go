package handler_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Randazzz/LibraryAPI/library/internal/errs"
	"github.com/Randazzz/LibraryAPI/library/internal/handler"
	"github.com/Randazzz/LibraryAPI/library/internal/model"
	"github.com/Randazzz/LibraryAPI/pkg/auth"

	service_mocks "github.com/Randazzz/LibraryAPI/library/internal/handler/mocks"
)

const (
	adminToken  = "admin-token"
	readerToken = "reader-token"
)

var (
	adminID  = uuid.MustParse("9d1c7a52-33b1-4c0e-8a51-0e8f6b3f7a10")
	readerID = uuid.MustParse("5b3f3f8e-9a0c-4bd4-8f3b-5a2e7e0f1c11")

	admin  = model.Identity{ID: adminID, Email: "admin@mail.com", Role: model.RoleAdmin}
	reader = model.Identity{ID: readerID, Email: "reader@mail.com", Role: model.RoleReader}

	fixedNow = time.Date(2025, time.February, 17, 13, 12, 0, 0, time.UTC)
)

type response struct {
	expectedCode int
	expectedBody string
}

func newTestRouter(t *testing.T) (*echo.Echo, *service_mocks.MockLibraryService) {
	t.Helper()
	c := gomock.NewController(t)
	svc := service_mocks.NewMockLibraryService(c)
	return handler.New(svc, zap.NewNop()).NewRouter(), svc
}

func expectIdentity(svc *service_mocks.MockLibraryService, token string, id model.Identity) {
	svc.EXPECT().Identify(gomock.Any(), token, auth.AccessToken).Return(id, nil)
}

func serve(e *echo.Echo, method, target, token, body string) *httptest.ResponseRecorder {
	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, target, http.NoBody)
	} else {
		r = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		r.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)
	return w
}

func requireResponse(t *testing.T, want response, w *httptest.ResponseRecorder) {
	t.Helper()
	require.Equal(t, want.expectedCode, w.Code)
	require.Equal(t, want.expectedBody, strings.Trim(w.Body.String(), "\n"))
}

func TestHandler_Health(t *testing.T) {
	t.Parallel()
	e, _ := newTestRouter(t)
	w := serve(e, http.MethodGet, "/manage/health", "", "")
	requireResponse(t, response{expectedCode: http.StatusOK, expectedBody: "OK"}, w)
}

func TestHandler_SwaggerDoc(t *testing.T) {
	t.Parallel()
	e, _ := newTestRouter(t)
	w := serve(e, http.MethodGet, "/swagger/doc.json", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"/books/lend"`)
	require.Contains(t, w.Body.String(), `"basePath": "/api/v1"`)
}

func TestHandler_Authentication(t *testing.T) {
	t.Parallel()
	type mockBehavior func(r *service_mocks.MockLibraryService)

	tests := []struct {
		name         string
		header       string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name:         "no header",
			mockBehavior: func(r *service_mocks.MockLibraryService) {},
			response:     response{expectedCode: http.StatusUnauthorized, expectedBody: `{"message":"No Authorization Header"}`},
		},
		{
			name:         "not bearer",
			header:       "Basic abc",
			mockBehavior: func(r *service_mocks.MockLibraryService) {},
			response:     response{expectedCode: http.StatusUnauthorized, expectedBody: `{"message":"Invalid Authorization Header"}`},
		},
		{
			name:   "refresh token as access",
			header: "Bearer refresh",
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().Identify(gomock.Any(), "refresh", auth.AccessToken).
					Return(model.Identity{}, errs.InvalidTokenType("refresh", "access"))
			},
			response: response{expectedCode: http.StatusUnauthorized, expectedBody: `{"message":"Invalid token type 'refresh' expected 'access'"}`},
		},
		{
			name:   "ok",
			header: "Bearer " + readerToken,
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				expectIdentity(r, readerToken, reader)
				r.EXPECT().GetUser(gomock.Any(), readerID).
					Return(model.User{ID: readerID, Email: "reader@mail.com", FirstName: "Ann", LastName: "Lee", HashedPassword: []byte("secret"), Role: model.RoleReader}, nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"id":"5b3f3f8e-9a0c-4bd4-8f3b-5a2e7e0f1c11","email":"reader@mail.com","first_name":"Ann","last_name":"Lee","role":"reader","is_superuser":false}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e, svc := newTestRouter(t)
			tt.mockBehavior(svc)

			r := httptest.NewRequest(http.MethodGet, "/api/v1/users/me", http.NoBody)
			if tt.header != "" {
				r.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			w := httptest.NewRecorder()
			e.ServeHTTP(w, r)

			requireResponse(t, tt.response, w)
		})
	}
}

func TestHandler_Refresh(t *testing.T) {
	t.Parallel()
	type mockBehavior func(r *service_mocks.MockLibraryService)

	tests := []struct {
		name         string
		token        string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name:  "ok",
			token: "refresh",
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().Refresh(gomock.Any(), "refresh").Return(model.AccessToken{AccessToken: "new"}, nil)
			},
			response: response{expectedCode: http.StatusOK, expectedBody: `{"access_token":"new"}`},
		},
		{
			name:  "access token rejected",
			token: "access",
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().Refresh(gomock.Any(), "access").Return(model.AccessToken{}, errs.InvalidTokenType("access", "refresh"))
			},
			response: response{expectedCode: http.StatusUnauthorized, expectedBody: `{"message":"Invalid token type 'access' expected 'refresh'"}`},
		},
		{
			name:         "missing token",
			mockBehavior: func(r *service_mocks.MockLibraryService) {},
			response:     response{expectedCode: http.StatusUnauthorized, expectedBody: `{"message":"No Authorization Header"}`},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e, svc := newTestRouter(t)
			tt.mockBehavior(svc)
			requireResponse(t, tt.response, serve(e, http.MethodPost, "/api/v1/auth/refresh", tt.token, ""))
		})
	}
}

func TestHandler_Login(t *testing.T) {
	t.Parallel()
	type mockBehavior func(r *service_mocks.MockLibraryService)

	tests := []struct {
		name         string
		body         string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name: "ok",
			body: `{"email":"reader@mail.com","password":"Passw0rd!"}`,
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().Login(gomock.Any(), model.UserLoginRequest{Email: "reader@mail.com", Password: "Passw0rd!"}).
					Return(model.TokenPair{AccessToken: "a", RefreshToken: "r"}, nil)
			},
			response: response{expectedCode: http.StatusOK, expectedBody: `{"access_token":"a","refresh_token":"r"}`},
		},
		{
			name: "bad credentials",
			body: `{"email":"reader@mail.com","password":"nope"}`,
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().Login(gomock.Any(), gomock.Any()).Return(model.TokenPair{}, errs.ErrInvalidCredentials)
			},
			response: response{expectedCode: http.StatusUnauthorized, expectedBody: `{"message":"Invalid credentials"}`},
		},
		{
			name:         "malformed body",
			body:         `{"email":`,
			mockBehavior: func(r *service_mocks.MockLibraryService) {},
			response:     response{expectedCode: http.StatusBadRequest, expectedBody: `{"message":"request body is invalid"}`},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e, svc := newTestRouter(t)
			tt.mockBehavior(svc)
			requireResponse(t, tt.response, serve(e, http.MethodPost, "/api/v1/auth", "", tt.body))
		})
	}
}

func TestHandler_Register(t *testing.T) {
	t.Parallel()
	e, svc := newTestRouter(t)
	svc.EXPECT().Register(gomock.Any(), model.UserCreateRequest{Email: "a@mail.com", FirstName: "Ann", LastName: "Lee", Password: "Passw0rd!"}).
		Return(model.User{ID: readerID, Email: "a@mail.com", FirstName: "Ann", LastName: "Lee", Role: model.RoleReader}, nil)

	w := serve(e, http.MethodPost, "/api/v1/users/register", "",
		`{"email":"a@mail.com","first_name":"Ann","last_name":"Lee","password":"Passw0rd!"}`)
	requireResponse(t, response{
		expectedCode: http.StatusCreated,
		expectedBody: `{"id":"5b3f3f8e-9a0c-4bd4-8f3b-5a2e7e0f1c11","email":"a@mail.com","first_name":"Ann","last_name":"Lee","role":"reader","is_superuser":false}`,
	}, w)

	// weak password never reaches the service
	w = serve(e, http.MethodPost, "/api/v1/users/register", "",
		`{"email":"a@mail.com","first_name":"Ann","last_name":"Lee","password":"password"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ChangeRole(t *testing.T) {
	t.Parallel()
	superuser := admin
	superuser.IsSuperuser = true

	t.Run("superuser", func(t *testing.T) {
		t.Parallel()
		e, svc := newTestRouter(t)
		expectIdentity(svc, adminToken, superuser)
		svc.EXPECT().ChangeRole(gomock.Any(), readerID, model.RoleAdmin).
			Return(model.User{ID: readerID, Email: "reader@mail.com", Role: model.RoleAdmin}, nil)

		w := serve(e, http.MethodPatch, "/api/v1/users/"+readerID.String()+"/change-role", adminToken, `{"role":"admin"}`)
		require.Equal(t, http.StatusOK, w.Code)
	})
	t.Run("plain admin", func(t *testing.T) {
		t.Parallel()
		e, svc := newTestRouter(t)
		expectIdentity(svc, adminToken, admin)

		w := serve(e, http.MethodPatch, "/api/v1/users/"+readerID.String()+"/change-role", adminToken, `{"role":"admin"}`)
		requireResponse(t, response{expectedCode: http.StatusForbidden, expectedBody: `{"message":"Permission denied"}`}, w)
	})
	t.Run("unknown role", func(t *testing.T) {
		t.Parallel()
		e, svc := newTestRouter(t)
		expectIdentity(svc, adminToken, superuser)

		w := serve(e, http.MethodPatch, "/api/v1/users/"+readerID.String()+"/change-role", adminToken, `{"role":"root"}`)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandler_InternalErrorHidden(t *testing.T) {
	t.Parallel()
	e, svc := newTestRouter(t)
	svc.EXPECT().ListGenres(gomock.Any(), model.DefaultPaging()).Return(nil, errors.New("relation genres does not exist"))

	w := serve(e, http.MethodGet, "/api/v1/genres", "", "")
	requireResponse(t, response{expectedCode: http.StatusInternalServerError, expectedBody: `{"message":"Internal server error"}`}, w)
}

func TestHandler_Paging(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		query  string
		paging model.Paging
		code   int
	}{
		{name: "defaults", query: "", paging: model.Paging{Limit: 10}, code: http.StatusOK},
		{name: "explicit", query: "?limit=100&offset=20", paging: model.Paging{Limit: 100, Offset: 20}, code: http.StatusOK},
		{name: "limit too big", query: "?limit=101", code: http.StatusBadRequest},
		{name: "limit zero", query: "?limit=0", code: http.StatusBadRequest},
		{name: "negative offset", query: "?offset=-1", code: http.StatusBadRequest},
		{name: "not a number", query: "?limit=ten", code: http.StatusBadRequest},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e, svc := newTestRouter(t)
			if tt.code == http.StatusOK {
				svc.EXPECT().ListAuthors(gomock.Any(), tt.paging).Return([]model.Author{}, nil)
			}
			w := serve(e, http.MethodGet, "/api/v1/authors"+tt.query, "", "")
			require.Equal(t, tt.code, w.Code)
		})
	}
}
