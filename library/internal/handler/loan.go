package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/Randazzz/LibraryAPI/library/internal/model"
)

func (h *Handler) LendBook(c echo.Context) error {
	var req model.BookLoanCreateRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	loan, err := h.librarySvc.LendBook(c.Request().Context(), req)
	if err != nil {
		return h.fail(c, err)
	}
	h.log.Info("book lent",
		zap.String("by", identity(c).Email),
		zap.Int("book_id", loan.BookID),
		zap.String("user_id", loan.UserID.String()))
	return c.JSON(http.StatusCreated, loan)
}

// ReturnBook returns a loan of the caller. Loans of other users look missing.
func (h *Handler) ReturnBook(c echo.Context) error {
	loanID, err := intParam(c, "loan_id")
	if err != nil {
		return err
	}
	loan, err := h.librarySvc.ReturnBook(c.Request().Context(), loanID, identity(c).ID)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, loan)
}

func (h *Handler) ListMyLoans(c echo.Context) error {
	paging, err := bindPaging(c)
	if err != nil {
		return err
	}
	loans, err := h.librarySvc.ListUserLoans(c.Request().Context(), identity(c).ID, paging)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, loans)
}
