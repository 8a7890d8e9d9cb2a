package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/time/rate"
)

const (
	AuthorizationHeader = "Authorization"
	bearer              = "Bearer "
)

var (
	ErrNoAuthorization      = echo.NewHTTPError(http.StatusUnauthorized, "No Authorization Header")
	ErrInvalidAuthorization = echo.NewHTTPError(http.StatusUnauthorized, "Invalid Authorization Header")
)

// BearerToken extracts the token from the Authorization header.
func BearerToken(c echo.Context) (string, error) {
	authorization := c.Request().Header.Get(AuthorizationHeader)
	if authorization == "" {
		return "", ErrNoAuthorization
	}
	if !strings.HasPrefix(authorization, bearer) {
		return "", ErrInvalidAuthorization
	}
	token := strings.TrimSpace(strings.TrimPrefix(authorization, bearer))
	if token == "" {
		return "", ErrInvalidAuthorization
	}
	return token, nil
}

func NewRateLimiter(rps rate.Limit) echo.MiddlewareFunc {
	return middleware.RateLimiter(middleware.NewRateLimiterMemoryStore(rps))
}

func RequestLoggerConfig(log *zap.Logger) middleware.RequestLoggerConfig {
	log = log.Named("echo")
	return middleware.RequestLoggerConfig{
		LogURI:       true,
		LogMethod:    true,
		LogStatus:    true,
		HandleError:  true,
		LogError:     true,
		LogLatency:   true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			level := zapcore.InfoLevel
			switch {
			case v.Status >= http.StatusInternalServerError:
				level = zapcore.ErrorLevel
			case v.Error != nil:
				level = zapcore.WarnLevel
			}
			log.Log(level, "request",
				zap.String("URI", v.URI),
				zap.String("Method", v.Method),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
				zap.Error(v.Error),
				zap.String("request_id", v.RequestID),
			)
			return nil
		},
	}
}
