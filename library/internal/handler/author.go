package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/Randazzz/LibraryAPI/library/internal/model"
)

func (h *Handler) CreateAuthor(c echo.Context) error {
	var req model.AuthorCreateRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	author, err := h.librarySvc.CreateAuthor(c.Request().Context(), req)
	if err != nil {
		return h.fail(c, err)
	}
	h.log.Info("author created", zap.String("by", identity(c).Email), zap.Int("author_id", author.ID))
	return c.JSON(http.StatusCreated, author)
}

func (h *Handler) ListAuthors(c echo.Context) error {
	paging, err := bindPaging(c)
	if err != nil {
		return err
	}
	authors, err := h.librarySvc.ListAuthors(c.Request().Context(), paging)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, authors)
}

func (h *Handler) UpdateAuthor(c echo.Context) error {
	id, err := intParam(c, "id")
	if err != nil {
		return err
	}
	var req model.AuthorUpdateRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	author, err := h.librarySvc.UpdateAuthor(c.Request().Context(), id, req)
	if err != nil {
		return h.fail(c, err)
	}
	h.log.Info("author updated", zap.String("by", identity(c).Email), zap.Int("author_id", id))
	return c.JSON(http.StatusOK, author)
}

func (h *Handler) DeleteAuthor(c echo.Context) error {
	id, err := intParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.librarySvc.DeleteAuthor(c.Request().Context(), id); err != nil {
		return h.fail(c, err)
	}
	h.log.Info("author deleted", zap.String("by", identity(c).Email), zap.Int("author_id", id))
	return c.JSON(http.StatusOK, model.MessageResponse{Message: "Author deleted successfully"})
}
