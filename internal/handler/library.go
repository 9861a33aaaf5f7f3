package handler

import (
	"fmt"
	"net/http"

	"scriptmarket/internal/middleware"
	"scriptmarket/internal/service"

	"github.com/labstack/echo/v4"
)

type LibraryHandler struct {
	libraryService service.LibraryService
}

func NewLibraryHandler(libraryService service.LibraryService) *LibraryHandler {
	return &LibraryHandler{
		libraryService: libraryService,
	}
}

func (h *LibraryHandler) Download(c echo.Context) error {
	ctx := c.Request().Context()

	scriptID, err := scriptIDParam(c)
	if err != nil {
		return err
	}

	dl, err := h.libraryService.Download(ctx, middleware.UserID(c), scriptID)
	if err != nil {
		return toHTTPError(err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", dl.Filename))
	return c.Blob(http.StatusOK, "text/plain; charset=utf-8", dl.Content)
}

func (h *LibraryHandler) Library(c echo.Context) error {
	ctx := c.Request().Context()

	scripts, err := h.libraryService.Purchased(ctx, middleware.UserID(c))
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, scripts)
}
