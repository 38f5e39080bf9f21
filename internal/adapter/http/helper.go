package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"smartlend/internal/domain/loan"
	"smartlend/internal/domain/user"
	"smartlend/internal/storage"
	"smartlend/internal/usecase/auth"
)

// writeDomainError maps domain sentinels onto HTTP statuses. Unknown
// errors become an opaque 500 so storage internals never leak.
func writeDomainError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, user.ErrDuplicate),
		errors.Is(err, loan.ErrUnknownPeriod),
		errors.Is(err, loan.ErrInvalidTerms),
		errors.Is(err, storage.ErrBadExtension):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, auth.ErrInvalidCredentials):
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: err.Error()})
	case errors.Is(err, user.ErrForbidden):
		return c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})
	case errors.Is(err, loan.ErrNotFound),
		errors.Is(err, loan.ErrNoContract),
		errors.Is(err, storage.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, loan.ErrInvalidStatus),
		errors.Is(err, loan.ErrInvalidTransition):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}
