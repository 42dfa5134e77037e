package handler

import (
	"net/http"

	"github.com/ekozlova/shareit/internal/dto"
	"github.com/ekozlova/shareit/internal/models"
	"github.com/ekozlova/shareit/internal/service"
	"github.com/labstack/echo/v4"
)

type ItemHandler struct {
	svc service.ItemService
}

func NewItemHandler(svc service.ItemService) *ItemHandler {
	return &ItemHandler{svc: svc}
}

func (h *ItemHandler) RegisterRoutes(e *echo.Echo) {
	items := e.Group("/items")
	items.POST("", h.Create)
	items.GET("/search", h.Search)
	items.GET("/:itemId", h.Read)
	items.GET("", h.ReadAll)
	items.PATCH("/:itemId", h.Update)
	items.DELETE("/:itemId", h.Delete)
	items.POST("/:itemId/comment", h.CreateComment)
}

func (h *ItemHandler) Create(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}

	var req dto.CreateItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Name == "" || req.Description == "" || req.Available == nil {
		return echo.NewHTTPError(http.StatusBadRequest, "name, description and available are required")
	}

	item := &models.Item{
		Name:        req.Name,
		Description: req.Description,
		Available:   req.Available,
		RequestID:   req.RequestID,
	}
	created, err := h.svc.Create(c.Request().Context(), actor, item)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, dto.ToItemResponse(created))
}

func (h *ItemHandler) Read(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}
	itemID, err := pathID(c, "itemId")
	if err != nil {
		return err
	}

	details, err := h.svc.Read(c.Request().Context(), actor, itemID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.ToItemDetailsResponse(details))
}

func (h *ItemHandler) ReadAll(c echo.Context) error {
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

	resp := make([]dto.ItemResponse, 0, len(details))
	for i := range details {
		resp = append(resp, dto.ToItemDetailsResponse(&details[i]))
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *ItemHandler) Update(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}
	itemID, err := pathID(c, "itemId")
	if err != nil {
		return err
	}

	var req dto.UpdateItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	item, err := h.svc.Update(c.Request().Context(), actor, itemID, req.Name, req.Description, req.Available)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.ToItemResponse(item))
}

func (h *ItemHandler) Delete(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}
	itemID, err := pathID(c, "itemId")
	if err != nil {
		return err
	}

	if err := h.svc.Delete(c.Request().Context(), actor, itemID); err != nil {
		return err
	}
	return c.NoContent(http.StatusOK)
}

func (h *ItemHandler) Search(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}
	from, size, err := pageParams(c)
	if err != nil {
		return err
	}

	items, err := h.svc.Search(c.Request().Context(), actor, c.QueryParam("text"), from, size)
	if err != nil {
		return err
	}

	resp := make([]dto.ItemResponse, 0, len(items))
	for i := range items {
		resp = append(resp, dto.ToItemResponse(&items[i]))
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *ItemHandler) CreateComment(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}
	itemID, err := pathID(c, "itemId")
	if err != nil {
		return err
	}

	var req dto.CreateCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Text == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "text is required")
	}

	comment, err := h.svc.CreateComment(c.Request().Context(), actor, itemID, req.Text)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, dto.ToCommentResponse(comment))
}
