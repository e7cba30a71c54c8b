package handler

import (
	"strings"

	"github.com/labstack/echo/v4"
)

func addressParam(c echo.Context, name string) string {
	return strings.TrimSpace(c.Param(name))
}
