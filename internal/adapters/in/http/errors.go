package http

import (
	"errors"
	"net/http"

	"procurement/internal/core/domain/model/delivery"
	"procurement/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// writeError maps core errors onto HTTP status codes:
// not-found 404, validation 400, access denied 403, everything else 500.
// Internal detail never leaks for 500s.
func writeError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, errorResponse{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrAccessDenied):
		return ctx.JSON(http.StatusForbidden, errorResponse{
			Code:    http.StatusForbidden,
			Message: err.Error(),
		})
	case isValidationError(err):
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, errorResponse{
			Code:    http.StatusInternalServerError,
			Message: "internal error",
		})
	}
}

func isValidationError(err error) bool {
	var validationErrors validator.ValidationErrors
	return errors.Is(err, errs.ErrValueIsInvalid) ||
		errors.Is(err, errs.ErrValueIsRequired) ||
		errors.Is(err, errs.ErrValueIsOutOfRange) ||
		errors.Is(err, delivery.ErrBLAmountWithoutNumber) ||
		errors.As(err, &validationErrors)
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, errorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func forbidden(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusForbidden, errorResponse{
		Code:    http.StatusForbidden,
		Message: message,
	})
}
