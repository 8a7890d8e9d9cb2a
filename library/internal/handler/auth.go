package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Randazzz/LibraryAPI/library/internal/model"
	md "github.com/Randazzz/LibraryAPI/pkg/middleware"
)

func (h *Handler) Login(c echo.Context) error {
	var req model.UserLoginRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	pair, err := h.librarySvc.Login(c.Request().Context(), req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, pair)
}

// Refresh takes the refresh token from the Authorization header.
func (h *Handler) Refresh(c echo.Context) error {
	token, err := md.BearerToken(c)
	if err != nil {
		return err
	}
	access, err := h.librarySvc.Refresh(c.Request().Context(), token)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, access)
}
