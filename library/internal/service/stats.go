package service

import (
	"context"
	"fmt"

	"github.com/Randazzz/LibraryAPI/library/internal/model"
)

// PopularBooks ranks books by the number of loans, cached for the configured ttl.
func (s *Service) PopularBooks(ctx context.Context, paging model.Paging) ([]model.PopularBook, error) {
	key := fmt.Sprintf("popular-books:%d:%d", paging.Limit, paging.Offset)
	return s.popularBooks.GetOrLoad(key, func() ([]model.PopularBook, error) {
		return s.repo.PopularBooks(ctx, paging)
	})
}
