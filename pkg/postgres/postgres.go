package postgres

import (
	"context"
	"embed"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pkg/errors"
	"github.com/pressly/goose/v3"
)

type DB struct {
	Host     string `yaml:"host" envconfig:"DATABASE_HOST" default:"localhost"`
	Port     int    `yaml:"port" envconfig:"DATABASE_PORT" default:"5432"`
	Username string `yaml:"user" envconfig:"DATABASE_USER" default:"postgres"`
	Password string `yaml:"password" envconfig:"DATABASE_PASSWORD"`
	NameDB   string `yaml:"dbname" envconfig:"DATABASE_NAME" default:"library"`
	SSLMode  string `yaml:"sslmode" envconfig:"DATABASE_SSLMODE" default:"disable"`

	MaxConns       int32         `yaml:"maxConns" envconfig:"DATABASE_MAX_CONNS" default:"10"`
	ConnectTimeout time.Duration `yaml:"connectTimeout" envconfig:"DATABASE_CONNECT_TIMEOUT" default:"5s"`
}

func (db *DB) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(db.Username, db.Password),
		Host:     net.JoinHostPort(db.Host, strconv.Itoa(db.Port)),
		Path:     db.NameDB,
		RawQuery: url.Values{"sslmode": []string{db.SSLMode}}.Encode(),
	}
	return u.String()
}

// NewPostgresDB opens a pool, checks connectivity and applies pending migrations.
func NewPostgresDB(ctx context.Context, cfg *DB, migrations embed.FS) (*pgxpool.Pool, error) {
	pool, err := NewPool(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if err := Migrate(ctx, pool, migrations, "up"); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}

// NewPool opens a pool and checks connectivity.
func NewPool(ctx context.Context, cfg *DB) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN())
	if err != nil {
		return nil, errors.Wrap(err, "pgxpool.ParseConfig")
	}
	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = cfg.MaxConns
	}
	poolCfg.ConnConfig.ConnectTimeout = cfg.ConnectTimeout

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, errors.Wrap(err, "pgxpool.NewWithConfig")
	}

	pingCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, errors.Wrap(err, "ping")
	}
	return pool, nil
}

// Migrate runs a goose command ("up", "down", "status") over the embedded sql files.
func Migrate(ctx context.Context, pool *pgxpool.Pool, migrations embed.FS, command string) error {
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	goose.SetBaseFS(migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return errors.Wrap(err, "goose.SetDialect")
	}

	var err error
	switch command {
	case "up":
		err = goose.UpContext(ctx, db, ".")
	case "down":
		err = goose.DownContext(ctx, db, ".")
	case "status":
		err = goose.StatusContext(ctx, db, ".")
	default:
		return fmt.Errorf("unknown migrate command %q", command)
	}
	if err != nil {
		return errors.Wrapf(err, "goose %s", command)
	}
	return nil
}
