package handler

import (
	"net/http"

	"scriptmarket/internal/dto"
	"scriptmarket/internal/middleware"
	"scriptmarket/internal/service"

	"github.com/labstack/echo/v4"
)

type CartHandler struct {
	cartService service.CartService
}

func NewCartHandler(cartService service.CartService) *CartHandler {
	return &CartHandler{
		cartService: cartService,
	}
}

func (h *CartHandler) respond(c echo.Context, cart *dto.CartResponse, err error) error {
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, cart)
}

func (h *CartHandler) Get(c echo.Context) error {
	cart, err := h.cartService.Get(c.Request().Context(), middleware.UserID(c))
	return h.respond(c, cart, err)
}

func (h *CartHandler) Replace(c echo.Context) error {
	var req dto.ReplaceCartRequest
	if err := c.Bind(&req); err != nil {
		return errInvalidBody
	}

	cart, err := h.cartService.Replace(c.Request().Context(), middleware.UserID(c), req.Items)
	return h.respond(c, cart, err)
}

func (h *CartHandler) AddItem(c echo.Context) error {
	var req dto.CartItemRequest
	if err := c.Bind(&req); err != nil || req.ID <= 0 {
		return errInvalidScriptID
	}

	cart, err := h.cartService.AddItem(c.Request().Context(), middleware.UserID(c), req.ID.Int64())
	return h.respond(c, cart, err)
}

func (h *CartHandler) UpdateQuantity(c echo.Context) error {
	scriptID, err := scriptIDParam(c)
	if err != nil {
		return err
	}

	var req dto.CartQuantityRequest
	if err := c.Bind(&req); err != nil {
		return errInvalidBody
	}

	cart, err := h.cartService.UpdateQuantity(c.Request().Context(), middleware.UserID(c), scriptID, req.Quantity)
	return h.respond(c, cart, err)
}

func (h *CartHandler) RemoveItem(c echo.Context) error {
	scriptID, err := scriptIDParam(c)
	if err != nil {
		return err
	}

	cart, err := h.cartService.RemoveItem(c.Request().Context(), middleware.UserID(c), scriptID)
	return h.respond(c, cart, err)
}

func (h *CartHandler) Clear(c echo.Context) error {
	if err := h.cartService.Clear(c.Request().Context(), middleware.UserID(c)); err != nil {
		return toHTTPError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
