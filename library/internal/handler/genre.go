package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/Randazzz/LibraryAPI/library/internal/model"
)

func (h *Handler) CreateGenre(c echo.Context) error {
	var req model.GenreCreateRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	genre, err := h.librarySvc.CreateGenre(c.Request().Context(), req)
	if err != nil {
		return h.fail(c, err)
	}
	h.log.Info("genre created", zap.String("by", identity(c).Email), zap.Int("genre_id", genre.ID))
	return c.JSON(http.StatusCreated, genre)
}

func (h *Handler) ListGenres(c echo.Context) error {
	paging, err := bindPaging(c)
	if err != nil {
		return err
	}
	genres, err := h.librarySvc.ListGenres(c.Request().Context(), paging)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, genres)
}

func (h *Handler) DeleteGenre(c echo.Context) error {
	id, err := intParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.librarySvc.DeleteGenre(c.Request().Context(), id); err != nil {
		return h.fail(c, err)
	}
	h.log.Info("genre deleted", zap.String("by", identity(c).Email), zap.Int("genre_id", id))
	return c.JSON(http.StatusOK, model.MessageResponse{Message: "Genre deleted successfully"})
}
