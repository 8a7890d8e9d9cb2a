package config

import (
	"log"
	"sync"
	"time"

	"github.com/Randazzz/LibraryAPI/pkg/auth"
	"github.com/Randazzz/LibraryAPI/pkg/cache"
	"github.com/Randazzz/LibraryAPI/pkg/circuit_breaker"
	"github.com/Randazzz/LibraryAPI/pkg/kafka"
	"github.com/Randazzz/LibraryAPI/pkg/logger"
	"github.com/Randazzz/LibraryAPI/pkg/postgres"
	"github.com/kelseyhightower/envconfig"
)

type HTTPServer struct {
	Host         string        `yaml:"host" envconfig:"LIBRARY_HTTP_HOST" default:"0.0.0.0"`
	Port         string        `yaml:"port" envconfig:"LIBRARY_HTTP_PORT" default:"8000"`
	ReadTimeout  time.Duration `yaml:"readTimeout" envconfig:"HTTP_READ" default:"10s"`
	WriteTimeout time.Duration `yaml:"writeTimeout" envconfig:"HTTP_WRITE"`
}

type Loan struct {
	Limit int `yaml:"limit" envconfig:"BOOK_LOAN_LIMIT" default:"5"`
	Days  int `yaml:"days" envconfig:"BOOK_LOAN_DAYS" default:"14"`
}

func (l Loan) Period() time.Duration {
	return time.Duration(l.Days) * 24 * time.Hour
}

type Config struct {
	Server         HTTPServer             `yaml:"server"`
	Database       postgres.DB            `yaml:"db"`
	Log            logger.Log             `yaml:"log"`
	Auth           auth.Config            `yaml:"auth"`
	Kafka          kafka.Config           `yaml:"kafka"`
	CircuitBreaker circuit_breaker.Config `yaml:"circuitBreaker"`
	Cache          cache.Config           `yaml:"cache"`
	Loan           Loan                   `yaml:"loan"`
}

var (
	once sync.Once
	cfg  *Config
)

// NewConfig reads config from environment. Options are applied first, so env wins.
func NewConfig(ops ...Option) *Config {
	once.Do(func() {
		var config Config
		for _, op := range ops {
			op(&config)
		}
		err := envconfig.Process("", &config)
		if err != nil {
			log.Fatal("NewConfig ", err)
		}
		cfg = &config
	})

	return cfg
}
