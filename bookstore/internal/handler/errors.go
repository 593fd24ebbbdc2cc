package handler

import (
	"net/http"

	"github.com/kimnamhyeong01/bookstore-service/bookstore/internal/errs"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// fail maps service errors onto HTTP responses. Store failures are logged and
// answered with a generic message.
func (h *Handler) fail(c echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrInsufficientStock):
		return c.JSON(http.StatusConflict, errs.ErrorResponse{
			Message: err.Error(),
			Errors:  errs.LineErrors(err),
		})
	case errors.Is(err, errs.ErrNotFound), errors.Is(err, errs.ErrNoOpenBasket):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrOutOfStock),
		errors.Is(err, errs.ErrTimeConflict),
		errors.Is(err, errs.ErrAlreadyExists):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, errs.ErrInvalidArgument):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, errs.ErrInvalidCredentials):
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	case errors.Is(err, errs.ErrForbidden):
		return echo.NewHTTPError(http.StatusForbidden, err.Error())
	}
	h.log.Error("request failed",
		zap.String("path", c.Path()),
		zap.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
		zap.Error(err))
	return echo.NewHTTPError(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
}
