package handler

import (
	"net/http"

	"scriptmarket/internal/dto"
	"scriptmarket/internal/middleware"
	"scriptmarket/internal/service"

	"github.com/labstack/echo/v4"
)

type CheckoutHandler struct {
	checkoutService service.CheckoutService
}

func NewCheckoutHandler(checkoutService service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutService: checkoutService,
	}
}

func (h *CheckoutHandler) CreateSession(c echo.Context) error {
	ctx := c.Request().Context()

	if err := h.checkoutService.Ready(); err != nil {
		return toHTTPError(err)
	}

	var req dto.CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return errInvalidBody
	}

	origin := c.Request().Header.Get(echo.HeaderOrigin)
	resp, err := h.checkoutService.CreateSession(ctx, middleware.UserID(c), req.Items, origin)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, resp)
}
