package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/Randazzz/LibraryAPI/library/internal/model"
	libraryRepo "github.com/Randazzz/LibraryAPI/library/internal/repository"
	"github.com/Randazzz/LibraryAPI/pkg/auth"
	"github.com/Randazzz/LibraryAPI/pkg/cache"
)

const (
	DefaultLoanLimit  = 5
	DefaultLoanPeriod = 14 * 24 * time.Hour
)

// Credentials hashes passwords and issues bearer tokens.
type Credentials interface {
	Issue(subject string, typ auth.TokenType) (string, error)
	Parse(token string, want auth.TokenType) (string, error)
	HashPassword(password string) ([]byte, error)
	VerifyPassword(hash []byte, password string) bool
}

// EventPublisher delivers committed loan transitions. Delivery is best effort.
type EventPublisher interface {
	PublishLoanEvent(ctx context.Context, event model.LoanEvent) error
}

type Service struct {
	log   *zap.Logger
	repo  libraryRepo.Repository
	creds Credentials

	events       EventPublisher
	popularBooks *cache.Cache[[]model.PopularBook]
	activeUsers  *cache.Cache[[]model.ActiveUser]

	loanLimit  int
	loanPeriod time.Duration
	now        func() time.Time
}

type Option func(*Service)

func WithLoanLimit(limit int) Option {
	return func(s *Service) {
		if limit > 0 {
			s.loanLimit = limit
		}
	}
}

func WithLoanPeriod(period time.Duration) Option {
	return func(s *Service) {
		if period > 0 {
			s.loanPeriod = period
		}
	}
}

func WithEventPublisher(p EventPublisher) Option {
	return func(s *Service) {
		if p != nil {
			s.events = p
		}
	}
}

func WithStatsCache(popularBooks *cache.Cache[[]model.PopularBook], activeUsers *cache.Cache[[]model.ActiveUser]) Option {
	return func(s *Service) {
		s.popularBooks = popularBooks
		s.activeUsers = activeUsers
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func NewService(repo libraryRepo.Repository, creds Credentials, log *zap.Logger, opts ...Option) *Service {
	s := &Service{
		log:        log.Named("service"),
		repo:       repo,
		creds:      creds,
		events:     noopPublisher{},
		loanLimit:  DefaultLoanLimit,
		loanPeriod: DefaultLoanPeriod,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type noopPublisher struct{}

func (noopPublisher) PublishLoanEvent(context.Context, model.LoanEvent) error { return nil }

func (s *Service) publish(ctx context.Context, event model.LoanEvent) {
	if err := s.events.PublishLoanEvent(ctx, event); err != nil {
		s.log.Warn("publish loan event",
			zap.String("type", string(event.Type)),
			zap.Int("loan_id", event.LoanID),
			zap.Error(err))
	}
}
