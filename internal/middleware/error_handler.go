package middleware

import (
	"errors"
	"net/http"

	"github.com/ekozlova/shareit/internal/dto"
	"github.com/ekozlova/shareit/internal/service"
	"github.com/labstack/echo/v4"
)

// ErrorHandler translates the domain error taxonomy into HTTP responses.
// Authorization failures map to 404 together with the not-found family, so a
// caller cannot distinguish "missing" from "not yours".
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	msg := "internal server error"

	switch {
	case errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrItemNotFound),
		errors.Is(err, service.ErrBookingNotFound),
		errors.Is(err, service.ErrRequestNotFound),
		errors.Is(err, service.ErrNotOwner):
		code = http.StatusNotFound
		msg = err.Error()
	case errors.Is(err, service.ErrNotAvailable),
		errors.Is(err, service.ErrUnknownState),
		errors.Is(err, service.ErrInvalidTimeRange),
		errors.Is(err, service.ErrUncompletedBooking):
		code = http.StatusBadRequest
		msg = err.Error()
	case errors.Is(err, service.ErrEmailConflict):
		code = http.StatusConflict
		msg = err.Error()
	default:
		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
			if m, ok := he.Message.(string); ok {
				msg = m
			}
		}
	}

	_ = c.JSON(code, dto.ErrorResponse{Error: msg})
}
