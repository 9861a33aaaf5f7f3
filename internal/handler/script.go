package handler

import (
	"net/http"
	"strconv"

	"scriptmarket/internal/middleware"
	"scriptmarket/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

const popularLimit = 3

type ScriptHandler struct {
	catalogService service.CatalogService
}

func NewScriptHandler(catalogService service.CatalogService) *ScriptHandler {
	return &ScriptHandler{
		catalogService: catalogService,
	}
}

func optionalDecimal(c echo.Context, name string) (*decimal.Decimal, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return &d, nil
}

func (h *ScriptHandler) List(c echo.Context) error {
	ctx := c.Request().Context()

	filter := service.CatalogFilter{
		Query:         c.QueryParam("q"),
		Category:      c.QueryParam("category"),
		Type:          c.QueryParam("type"),
		Languages:     c.QueryParams()["language"],
		Sort:          c.QueryParam("sort"),
		OnlyFavorites: c.QueryParam("favorites") == "true",
		UserID:        middleware.UserID(c),
	}

	var err error
	if filter.MinPrice, err = optionalDecimal(c, "minPrice"); err != nil {
		return err
	}
	if filter.MaxPrice, err = optionalDecimal(c, "maxPrice"); err != nil {
		return err
	}
	if raw := c.QueryParam("minRating"); raw != "" {
		if filter.MinRating, err = strconv.ParseFloat(raw, 64); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid minRating")
		}
	}

	scripts, err := h.catalogService.List(ctx, filter)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, scripts)
}

func (h *ScriptHandler) Get(c echo.Context) error {
	ctx := c.Request().Context()

	scriptID, err := scriptIDParam(c)
	if err != nil {
		return err
	}

	script, err := h.catalogService.Get(ctx, scriptID)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, script)
}

func (h *ScriptHandler) Popular(c echo.Context) error {
	ctx := c.Request().Context()

	scripts, err := h.catalogService.Popular(ctx, popularLimit)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, scripts)
}

func (h *ScriptHandler) Facets(c echo.Context) error {
	ctx := c.Request().Context()

	facets, err := h.catalogService.Facets(ctx)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, facets)
}
