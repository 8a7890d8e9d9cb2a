package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

type Config struct {
	SecretKey  string        `yaml:"secretKey" envconfig:"JWT_SECRET_KEY" required:"true"`
	AccessTTL  time.Duration `yaml:"accessTTL" envconfig:"JWT_ACCESS_TOKEN_TTL" default:"30m"`
	RefreshTTL time.Duration `yaml:"refreshTTL" envconfig:"JWT_REFRESH_TOKEN_TTL" default:"720h"`
	BcryptCost int           `yaml:"bcryptCost" envconfig:"BCRYPT_COST" default:"10"`
}

type TokenType string

const (
	AccessToken  TokenType = "access"
	RefreshToken TokenType = "refresh"
)

type Claims struct {
	Type TokenType `json:"type"`
	jwt.RegisteredClaims
}

var ErrInvalidToken = errors.New("invalid token")

// TokenTypeError is returned when a valid token of the wrong type is presented.
type TokenTypeError struct {
	Got, Want TokenType
}

func (e *TokenTypeError) Error() string {
	return fmt.Sprintf("Invalid token type '%s' expected '%s'", e.Got, e.Want)
}

type Manager struct {
	key        []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	cost       int
	now        func() time.Time
}

func NewManager(cfg Config) *Manager {
	cost := cfg.BcryptCost
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Manager{
		key:        []byte(cfg.SecretKey),
		accessTTL:  cfg.AccessTTL,
		refreshTTL: cfg.RefreshTTL,
		cost:       cost,
		now:        time.Now,
	}
}

// Issue signs a token of the given type for subject.
func (m *Manager) Issue(subject string, typ TokenType) (string, error) {
	ttl := m.accessTTL
	if typ == RefreshToken {
		ttl = m.refreshTTL
	}
	now := m.now()
	claims := &Claims{
		Type: typ,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.key)
	if err != nil {
		return "", errors.Wrap(err, "SignedString")
	}
	return token, nil
}

// Parse validates signature, expiry and the type claim and returns the subject.
func (m *Manager) Parse(tokenStr string, want TokenType) (string, error) {
	claims := new(Claims)
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	token, err := parser.ParseWithClaims(tokenStr, claims, func(*jwt.Token) (interface{}, error) {
		return m.key, nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}
	if claims.Type != want {
		return "", &TokenTypeError{Got: claims.Type, Want: want}
	}
	if claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}

func (m *Manager) HashPassword(password string) ([]byte, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), m.cost)
	if err != nil {
		return nil, errors.Wrap(err, "bcrypt.GenerateFromPassword")
	}
	return hash, nil
}

func (m *Manager) VerifyPassword(hash []byte, password string) bool {
	return bcrypt.CompareHashAndPassword(hash, []byte(password)) == nil
}
