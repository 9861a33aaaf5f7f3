package handler

import (
	"errors"
	"net/http"
	"strconv"

	"scriptmarket/internal/dto"
	"scriptmarket/internal/middleware"
	"scriptmarket/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

var errScriptIDRequired = echo.NewHTTPError(http.StatusBadRequest, "Script ID is required")

type FavoriteHandler struct {
	favoriteService service.FavoriteService
}

func NewFavoriteHandler(favoriteService service.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{
		favoriteService: favoriteService,
	}
}

func (h *FavoriteHandler) List(c echo.Context) error {
	ctx := c.Request().Context()

	ids, err := h.favoriteService.List(ctx, middleware.UserID(c))
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, &dto.FavoritesResponse{FavoriteIDs: ids})
}

// writeResult answers persistence failures with success=false so the UI keeps working.
func writeResult(c echo.Context, err error, msg string) error {
	if err == nil {
		return c.JSON(http.StatusOK, &dto.SuccessResponse{Success: true})
	}
	if errors.Is(err, service.ErrUnauthenticated) || errors.Is(err, service.ErrScriptNotFound) {
		return toHTTPError(err)
	}

	zerolog.Ctx(c.Request().Context()).Error().Err(err).Msg(msg)
	return c.JSON(http.StatusOK, &dto.SuccessResponse{Success: false})
}

func (h *FavoriteHandler) Add(c echo.Context) error {
	ctx := c.Request().Context()

	userID := middleware.UserID(c)
	if userID == "" {
		return toHTTPError(service.ErrUnauthenticated)
	}

	var req dto.FavoriteRequest
	if err := c.Bind(&req); err != nil || req.ScriptID <= 0 {
		return errScriptIDRequired
	}

	err := h.favoriteService.Add(ctx, userID, req.ScriptID.Int64())
	return writeResult(c, err, "add favorite failed")
}

func (h *FavoriteHandler) Remove(c echo.Context) error {
	ctx := c.Request().Context()

	userID := middleware.UserID(c)
	if userID == "" {
		return toHTTPError(service.ErrUnauthenticated)
	}

	scriptID, err := strconv.ParseInt(c.QueryParam("scriptId"), 10, 64)
	if err != nil || scriptID <= 0 {
		return errScriptIDRequired
	}

	err = h.favoriteService.Remove(ctx, userID, scriptID)
	return writeResult(c, err, "remove favorite failed")
}
