package handler

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/Randazzz/LibraryAPI/library/internal/model"
	"github.com/Randazzz/LibraryAPI/pkg/auth"
	md "github.com/Randazzz/LibraryAPI/pkg/middleware"
)

const identityKey = "identity"

// authenticate resolves the bearer token to an identity and stores it in the context.
func (h *Handler) authenticate(typ auth.TokenType) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, err := md.BearerToken(c)
			if err != nil {
				return err
			}
			id, err := h.librarySvc.Identify(c.Request().Context(), token, typ)
			if err != nil {
				return h.fail(c, err)
			}
			c.Set(identityKey, id)
			return next(c)
		}
	}
}

// require gates a route on a predicate over the authenticated identity.
func (h *Handler) require(pred func(model.Identity) error) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if err := pred(identity(c)); err != nil {
				return h.fail(c, err)
			}
			return next(c)
		}
	}
}

func identity(c echo.Context) model.Identity {
	id, _ := c.Get(identityKey).(model.Identity)
	return id
}

func intParam(c echo.Context, name string) (int, error) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, name+" is invalid")
	}
	return id, nil
}

func uuidParam(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, name+" is invalid")
	}
	return id, nil
}

// bindBody decodes and validates the json body into v.
func bindBody(c echo.Context, v interface{}) error {
	if err := (&echo.DefaultBinder{}).BindBody(c, v); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "request body is invalid")
	}
	if err := c.Validate(v); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

// bindQuery decodes and validates query parameters into v, which should carry defaults.
func bindQuery(c echo.Context, v interface{}) error {
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, v); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "query parameters are invalid")
	}
	if err := c.Validate(v); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

func bindPaging(c echo.Context) (model.Paging, error) {
	paging := model.DefaultPaging()
	err := bindQuery(c, &paging)
	return paging, err
}
