package handler

import (
	"errors"
	"net/http"
	"strconv"

	"scriptmarket/internal/service"

	"github.com/labstack/echo/v4"
)

var (
	errInvalidBody     = echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	errInvalidScriptID = echo.NewHTTPError(http.StatusBadRequest, "Invalid script ID")
)

// toHTTPError maps service errors to client-facing responses. Unknown errors pass through as 500s.
func toHTTPError(err error) error {
	switch {
	case errors.Is(err, service.ErrPaymentNotConfigured):
		return echo.NewHTTPError(http.StatusInternalServerError, "Payment system not configured").SetInternal(err)
	case errors.Is(err, service.ErrCheckoutFailed):
		return echo.NewHTTPError(http.StatusInternalServerError, "Checkout failed").SetInternal(err)
	case errors.Is(err, service.ErrNoItems):
		return echo.NewHTTPError(http.StatusBadRequest, "No items in cart")
	case errors.Is(err, service.ErrInvalidCartItem):
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid cart item")
	case errors.Is(err, service.ErrUnauthenticated):
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	case errors.Is(err, service.ErrInvalidCredentials):
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, service.ErrNotPurchased):
		return echo.NewHTTPError(http.StatusForbidden, "You have not purchased this script")
	case errors.Is(err, service.ErrScriptNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "Script not found")
	case errors.Is(err, service.ErrUserNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "User not found")
	case errors.Is(err, service.ErrUnknownProvider):
		return echo.NewHTTPError(http.StatusNotFound, "Unknown payment provider")
	case errors.Is(err, service.ErrEmailTaken):
		return echo.NewHTTPError(http.StatusConflict, "Email already registered")
	case errors.Is(err, service.ErrInvalidProfile):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrWebhookRejected):
		return echo.NewHTTPError(http.StatusBadRequest, "Webhook signature verification failed")
	case errors.Is(err, service.ErrInvalidWebhookPayload):
		return errInvalidBody
	}
	return err
}

func scriptIDParam(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errInvalidScriptID
	}
	return id, nil
}
