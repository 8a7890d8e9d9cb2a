package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	libraryRepo "github.com/Randazzz/LibraryAPI/library/internal/repository"
	repo_mocks "github.com/Randazzz/LibraryAPI/library/internal/repository/mocks"
	"github.com/Randazzz/LibraryAPI/library/internal/service"
	"github.com/Randazzz/LibraryAPI/pkg/auth"
)

var fixedNow = time.Date(2025, time.February, 17, 13, 12, 0, 0, time.UTC)

func newTestCredentials() *auth.Manager {
	return auth.NewManager(auth.Config{
		SecretKey:  "test-secret",
		AccessTTL:  time.Minute,
		RefreshTTL: time.Hour,
		BcryptCost: bcrypt.MinCost,
	})
}

func newTestService(t *testing.T, opts ...service.Option) (*service.Service, *repo_mocks.MockRepository) {
	t.Helper()
	c := gomock.NewController(t)
	repo := repo_mocks.NewMockRepository(c)
	opts = append([]service.Option{service.WithClock(func() time.Time { return fixedNow })}, opts...)
	return service.NewService(repo, newTestCredentials(), zap.NewNop(), opts...), repo
}

// expectTx makes InTx run fn against the same mock.
func expectTx(repo *repo_mocks.MockRepository) *gomock.Call {
	return repo.EXPECT().InTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fn func(libraryRepo.Repository) error) error {
			return fn(repo)
		})
}

var (
	readerID = uuid.MustParse("5b3f3f8e-9a0c-4bd4-8f3b-5a2e7e0f1c11")
	otherID  = uuid.MustParse("0e7a4c3b-2d1f-4e5a-9b8c-7d6e5f4a3b2c")
)
