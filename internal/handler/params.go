package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

// HeaderUserID carries the acting user's id on every endpoint except user
// creation.
const HeaderUserID = "X-Sharer-User-Id"

func actorID(c echo.Context) (uint, error) {
	raw := c.Request().Header.Get(HeaderUserID)
	if raw == "" {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "missing "+HeaderUserID+" header")
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+HeaderUserID+" header")
	}
	return uint(id), nil
}

func pathID(c echo.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return uint(id), nil
}

// pageParams reads from/size with their defaults: from ≥ 0, size > 0.
func pageParams(c echo.Context) (from, size int, err error) {
	from, size = 0, 10

	if raw := c.QueryParam("from"); raw != "" {
		from, err = strconv.Atoi(raw)
		if err != nil || from < 0 {
			return 0, 0, echo.NewHTTPError(http.StatusBadRequest, "from must be a non-negative integer")
		}
	}
	if raw := c.QueryParam("size"); raw != "" {
		size, err = strconv.Atoi(raw)
		if err != nil || size <= 0 {
			return 0, 0, echo.NewHTTPError(http.StatusBadRequest, "size must be a positive integer")
		}
	}
	return from, size, nil
}
