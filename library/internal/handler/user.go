package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/Randazzz/LibraryAPI/library/internal/model"
)

func (h *Handler) Register(c echo.Context) error {
	var req model.UserCreateRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	user, err := h.librarySvc.Register(c.Request().Context(), req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusCreated, user)
}

func (h *Handler) ListUsers(c echo.Context) error {
	paging, err := bindPaging(c)
	if err != nil {
		return err
	}
	users, err := h.librarySvc.ListUsers(c.Request().Context(), paging)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, users)
}

func (h *Handler) GetMe(c echo.Context) error {
	user, err := h.librarySvc.GetUser(c.Request().Context(), identity(c).ID)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, user)
}

func (h *Handler) UpdateMe(c echo.Context) error {
	var req model.UserUpdateRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	user, err := h.librarySvc.UpdateUser(c.Request().Context(), identity(c).ID, req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, user)
}

func (h *Handler) ChangeRole(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}
	var req model.ChangeRoleRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	user, err := h.librarySvc.ChangeRole(c.Request().Context(), id, req.Role)
	if err != nil {
		return h.fail(c, err)
	}
	h.log.Info("role changed",
		zap.String("by", identity(c).Email),
		zap.String("user_id", id.String()),
		zap.String("role", string(user.Role)))
	return c.JSON(http.StatusOK, user)
}

func (h *Handler) ActiveUsers(c echo.Context) error {
	paging, err := bindPaging(c)
	if err != nil {
		return err
	}
	users, err := h.librarySvc.ActiveUsers(c.Request().Context(), paging)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, users)
}
