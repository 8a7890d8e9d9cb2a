package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Randazzz/LibraryAPI/library/config"
	"github.com/Randazzz/LibraryAPI/library/internal/handler"
	"github.com/Randazzz/LibraryAPI/library/internal/model"
	"github.com/Randazzz/LibraryAPI/library/internal/queue"
	"github.com/Randazzz/LibraryAPI/library/internal/repository"
	"github.com/Randazzz/LibraryAPI/library/internal/server"
	"github.com/Randazzz/LibraryAPI/library/internal/service"
	"github.com/Randazzz/LibraryAPI/library/migrations"
	"github.com/Randazzz/LibraryAPI/pkg/auth"
	"github.com/Randazzz/LibraryAPI/pkg/cache"
	cb "github.com/Randazzz/LibraryAPI/pkg/circuit_breaker"
	"github.com/Randazzz/LibraryAPI/pkg/kafka"
	"github.com/Randazzz/LibraryAPI/pkg/logger"
	"github.com/Randazzz/LibraryAPI/pkg/postgres"
	"github.com/Randazzz/LibraryAPI/pkg/validate"
)

const shutdownTimeout = 5 * time.Second

func Run(cfg *config.Config) {
	log := logger.NewLogger(cfg.Log, "library")
	defer log.Sync() //nolint:errcheck

	db, err := postgres.NewPostgresDB(context.Background(), &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		log.Fatal("db init", zap.Error(err))
	}
	defer db.Close()

	repo, err := repository.NewRepository(db, log)
	if err != nil {
		log.Fatal("repo", zap.Error(err))
	}

	opts := []service.Option{
		service.WithLoanLimit(cfg.Loan.Limit),
		service.WithLoanPeriod(cfg.Loan.Period()),
	}

	popularBooks, err := cache.New[[]model.PopularBook](cfg.Cache)
	if err != nil {
		log.Fatal("cache", zap.Error(err))
	}
	defer popularBooks.Close()
	activeUsers, err := cache.New[[]model.ActiveUser](cfg.Cache)
	if err != nil {
		log.Fatal("cache", zap.Error(err))
	}
	defer activeUsers.Close()
	opts = append(opts, service.WithStatsCache(popularBooks, activeUsers))

	if cfg.Kafka.Enable {
		if err := kafka.EnsureTopic(cfg.Kafka, kafka.LoansTopic); err != nil {
			log.Warn("kafka.EnsureTopic", zap.Error(err))
		}
		producer, err := kafka.NewProducer(cfg.Kafka)
		if err != nil {
			log.Fatal("kafka.NewProducer", zap.Error(err))
		}
		breaker := cb.New(cfg.CircuitBreaker, cb.WithStateListener(queue.BreakerListener(log)))
		q := queue.NewEnqueuer(producer, breaker, kafka.LoansTopic, log)
		defer func() {
			if err := q.Close(); err != nil {
				log.Warn("producer close", zap.Error(err))
			}
		}()
		opts = append(opts, service.WithEventPublisher(q))
	}

	svc := service.NewService(repo, auth.NewManager(cfg.Auth), log, opts...)

	h := handler.New(svc, log)
	srv := server.NewServer(cfg.Server, h.NewRouter())
	log.Info("http server start ON: ", zap.String("addr", srv.Addr()))
	go func() {
		if err := srv.Run(); err != nil {
			log.Error("server run", zap.Error(err))
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	termSig := <-sig

	log.Debug("Graceful shutdown", zap.Any("signal", termSig))

	closeCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err = srv.Stop(closeCtx); err != nil {
		log.DPanic("srv.Stop", zap.Error(err))
	}
	log.Info("Graceful shutdown finished")
}

// Migrate applies a goose command to the configured database without running migrations on connect.
func Migrate(ctx context.Context, cfg *config.Config, command string) error {
	pool, err := postgres.NewPool(ctx, &cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()
	return postgres.Migrate(ctx, pool, migrations.MigrationFiles, command)
}

// CreateSuperuser bootstraps an admin account with the superuser flag.
// SuperuserInput is what create-superuser collects from flags and the prompt.
type SuperuserInput struct {
	Email     string
	FirstName string
	LastName  string
	Password  string
}

func (in SuperuserInput) request() model.UserCreateRequest {
	return model.UserCreateRequest{
		Email:     in.Email,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Password:  in.Password,
	}
}

// Validate applies the registration rules to the input.
func (in SuperuserInput) Validate() error {
	return validate.NewCustomValidator().Validate(in.request())
}

func CreateSuperuser(ctx context.Context, cfg *config.Config, in SuperuserInput) (model.User, error) {
	if err := in.Validate(); err != nil {
		return model.User{}, err
	}
	req := in.request()
	log := logger.NewLogger(cfg.Log, "library")
	pool, err := postgres.NewPostgresDB(ctx, &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		return model.User{}, err
	}
	defer pool.Close()

	repo, err := repository.NewRepository(pool, log)
	if err != nil {
		return model.User{}, errors.Wrap(err, "repository")
	}
	svc := service.NewService(repo, auth.NewManager(cfg.Auth), log)
	return svc.CreateSuperuser(ctx, req)
}
