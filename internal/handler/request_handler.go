package handler

import (
	"net/http"

	"github.com/ekozlova/shareit/internal/dto"
	"github.com/ekozlova/shareit/internal/service"
	"github.com/labstack/echo/v4"
)

type RequestHandler struct {
	svc service.RequestService
}

func NewRequestHandler(svc service.RequestService) *RequestHandler {
	return &RequestHandler{svc: svc}
}

func (h *RequestHandler) RegisterRoutes(e *echo.Echo) {
	requests := e.Group("/requests")
	requests.POST("", h.Create)
	requests.GET("/all", h.ReadAll)
	requests.GET("/:requestId", h.ReadOne)
	requests.GET("", h.Read)
}

func (h *RequestHandler) Create(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}

	var req dto.CreateItemRequestRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Description == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "description is required")
	}

	request, err := h.svc.Create(c.Request().Context(), actor, req.Description)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, dto.ToRequestResponse(&service.RequestDetails{Request: *request}))
}

func (h *RequestHandler) Read(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}

	details, err := h.svc.Read(c.Request().Context(), actor)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toRequestResponses(details))
}

func (h *RequestHandler) ReadOne(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}
	requestID, err := pathID(c, "requestId")
	if err != nil {
		return err
	}

	details, err := h.svc.ReadOne(c.Request().Context(), actor, requestID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.ToRequestResponse(details))
}

func (h *RequestHandler) ReadAll(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}
	from, size, err := pageParams(c)
	if err != nil {
		return err
	}

	details, err := h.svc.ReadAll(c.Request().Context(), actor, from, size)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toRequestResponses(details))
}

func toRequestResponses(details []service.RequestDetails) []dto.RequestResponse {
	resp := make([]dto.RequestResponse, 0, len(details))
	for i := range details {
		resp = append(resp, dto.ToRequestResponse(&details[i]))
	}
	return resp
}
