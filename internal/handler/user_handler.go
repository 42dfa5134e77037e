package handler

import (
	"net/http"

	"github.com/ekozlova/shareit/internal/dto"
	"github.com/ekozlova/shareit/internal/models"
	"github.com/ekozlova/shareit/internal/service"
	"github.com/labstack/echo/v4"
)

type UserHandler struct {
	svc service.UserService
}

func NewUserHandler(svc service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

func (h *UserHandler) RegisterRoutes(e *echo.Echo) {
	users := e.Group("/users")
	users.POST("", h.Create)
	users.GET("/:userId", h.Read)
	users.GET("", h.ReadAll)
	users.PATCH("/:userId", h.Update)
	users.DELETE("/:userId", h.Delete)
}

func (h *UserHandler) Create(c echo.Context) error {
	var req dto.CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Name == "" || req.Email == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "name and email are required")
	}

	user, err := h.svc.Create(c.Request().Context(), &models.User{Name: req.Name, Email: req.Email})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

func (h *UserHandler) Read(c echo.Context) error {
	id, err := pathID(c, "userId")
	if err != nil {
		return err
	}

	user, err := h.svc.Read(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

func (h *UserHandler) ReadAll(c echo.Context) error {
	users, err := h.svc.ReadAll(c.Request().Context())
	if err != nil {
		return err
	}

	resp := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		resp = append(resp, dto.ToUserResponse(&users[i]))
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *UserHandler) Update(c echo.Context) error {
	id, err := pathID(c, "userId")
	if err != nil {
		return err
	}

	var req dto.UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	user, err := h.svc.Update(c.Request().Context(), id, req.Name, req.Email)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

func (h *UserHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "userId")
	if err != nil {
		return err
	}

	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusOK)
}
