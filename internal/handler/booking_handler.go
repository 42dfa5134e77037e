package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/ekozlova/shareit/internal/dto"
	"github.com/ekozlova/shareit/internal/models"
	"github.com/ekozlova/shareit/internal/service"
	"github.com/labstack/echo/v4"
)

type BookingHandler struct {
	svc service.BookingService
}

func NewBookingHandler(svc service.BookingService) *BookingHandler {
	return &BookingHandler{svc: svc}
}

func (h *BookingHandler) RegisterRoutes(e *echo.Echo) {
	bookings := e.Group("/bookings")
	bookings.POST("", h.Create)
	bookings.GET("/owner", h.ListForOwner)
	bookings.GET("/:bookingId", h.Read)
	bookings.GET("", h.ListForBooker)
	bookings.PATCH("/:bookingId", h.UpdateStatus)
	bookings.DELETE("/:bookingId", h.Delete)
}

func (h *BookingHandler) Create(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}

	var req dto.CreateBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.ItemID == 0 || req.Start.IsZero() || req.End.IsZero() {
		return echo.NewHTTPError(http.StatusBadRequest, "itemId, start and end are required")
	}

	booking, err := h.svc.Create(c.Request().Context(), actor, req.Start, req.End, req.ItemID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func (h *BookingHandler) Read(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}
	bookingID, err := pathID(c, "bookingId")
	if err != nil {
		return err
	}

	booking, err := h.svc.Read(c.Request().Context(), actor, bookingID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *BookingHandler) ListForBooker(c echo.Context) error {
	return h.list(c, h.svc.ListForBooker)
}

func (h *BookingHandler) ListForOwner(c echo.Context) error {
	return h.list(c, h.svc.ListForOwner)
}

func (h *BookingHandler) UpdateStatus(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}
	bookingID, err := pathID(c, "bookingId")
	if err != nil {
		return err
	}

	var approved bool
	switch c.QueryParam("approved") {
	case "true":
		approved = true
	case "false":
		approved = false
	default:
		return echo.NewHTTPError(http.StatusBadRequest, "approved must be true or false")
	}

	booking, err := h.svc.UpdateStatus(c.Request().Context(), actor, bookingID, approved)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *BookingHandler) Delete(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}
	bookingID, err := pathID(c, "bookingId")
	if err != nil {
		return err
	}

	if err := h.svc.Delete(c.Request().Context(), actor, bookingID); err != nil {
		return err
	}
	return c.NoContent(http.StatusOK)
}

type listFn func(ctx context.Context, actorID uint, state models.BookingState, from, size int) ([]models.Booking, error)

func (h *BookingHandler) list(c echo.Context, fn listFn) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}
	from, size, err := pageParams(c)
	if err != nil {
		return err
	}

	state, ok := models.ParseBookingState(c.QueryParam("state"))
	if !ok {
		return fmt.Errorf("%w: %s", service.ErrUnknownState, c.QueryParam("state"))
	}

	bookings, err := fn(c.Request().Context(), actor, state, from, size)
	if err != nil {
		return err
	}

	resp := make([]dto.BookingResponse, 0, len(bookings))
	for i := range bookings {
		resp = append(resp, dto.ToBookingResponse(&bookings[i]))
	}
	return c.JSON(http.StatusOK, resp)
}
