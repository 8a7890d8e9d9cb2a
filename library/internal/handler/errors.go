package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Randazzz/LibraryAPI/library/internal/errs"
)

const internalErrorMessage = "Internal server error"

var statusByKind = []struct {
	kind   error
	status int
}{
	{errs.ErrNotFound, http.StatusNotFound},
	{errs.ErrAlreadyExists, http.StatusBadRequest},
	{errs.ErrLimitExceeded, http.StatusBadRequest},
	{errs.ErrUnauthorized, http.StatusUnauthorized},
	{errs.ErrPermissionDenied, http.StatusForbidden},
	{errs.ErrConflict, http.StatusConflict},
	{errs.ErrDatabaseUnavailable, http.StatusServiceUnavailable},
}

// statusOf returns the http status for a domain error, 500 for anything else.
func statusOf(err error) int {
	for _, s := range statusByKind {
		if errors.Is(err, s.kind) {
			return s.status
		}
	}
	return http.StatusInternalServerError
}

// fail converts err into an echo error. Unknown errors are logged and hidden from the client.
func (h *Handler) fail(c echo.Context, err error) error {
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}
	var domainErr *errs.Error
	status := statusOf(err)
	if status == http.StatusInternalServerError || !errors.As(err, &domainErr) {
		h.log.Error("internal error",
			zap.String("URI", c.Request().RequestURI),
			zap.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
			zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, internalErrorMessage)
	}
	return echo.NewHTTPError(status, domainErr.Error())
}
