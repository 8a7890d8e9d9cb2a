package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/Randazzz/LibraryAPI/library/internal/model"
)

func (h *Handler) CreateBook(c echo.Context) error {
	var req model.BookCreateRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	book, err := h.librarySvc.CreateBook(c.Request().Context(), req)
	if err != nil {
		return h.fail(c, err)
	}
	h.log.Info("book created", zap.String("by", identity(c).Email), zap.Int("book_id", book.ID), zap.String("title", book.Title))
	return c.JSON(http.StatusCreated, book)
}

func (h *Handler) GetBook(c echo.Context) error {
	id, err := intParam(c, "id")
	if err != nil {
		return err
	}
	book, err := h.librarySvc.GetBook(c.Request().Context(), id)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, book)
}

func (h *Handler) ListBooks(c echo.Context) error {
	req := model.BookListRequest{Paging: model.DefaultPaging()}
	if err := bindQuery(c, &req); err != nil {
		return err
	}
	books, err := h.librarySvc.ListBooks(c.Request().Context(), req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, books)
}

func (h *Handler) UpdateBook(c echo.Context) error {
	id, err := intParam(c, "id")
	if err != nil {
		return err
	}
	var req model.BookUpdateRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	book, err := h.librarySvc.UpdateBook(c.Request().Context(), id, req)
	if err != nil {
		return h.fail(c, err)
	}
	h.log.Info("book updated", zap.String("by", identity(c).Email), zap.Int("book_id", id))
	return c.JSON(http.StatusOK, book)
}

func (h *Handler) DeleteBook(c echo.Context) error {
	id, err := intParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.librarySvc.DeleteBook(c.Request().Context(), id); err != nil {
		return h.fail(c, err)
	}
	h.log.Info("book deleted", zap.String("by", identity(c).Email), zap.Int("book_id", id))
	return c.JSON(http.StatusOK, model.MessageResponse{Message: "Book deleted successfully"})
}

func (h *Handler) PopularBooks(c echo.Context) error {
	paging, err := bindPaging(c)
	if err != nil {
		return err
	}
	books, err := h.librarySvc.PopularBooks(c.Request().Context(), paging)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, books)
}
